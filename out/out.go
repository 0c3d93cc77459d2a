// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of uniaxial results: series, ascii graphs, tables and figures
package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/epsolid/hardening/mdl/sld"
)

// Keys holds the keys of all series that can be extracted from results
var Keys = []string{"step", "eps", "sig", "D", "epsp", "alp"}

// Get returns the series corresponding to key
//  key -- "step", "eps", "sig", "D", "epsp" or "alp"
func Get(res []sld.Result, key string) (vals []float64, err error) {
	vals = make([]float64, len(res))
	for i, r := range res {
		switch key {
		case "step":
			vals[i] = float64(i)
		case "eps":
			vals[i] = r.Eps
		case "sig":
			vals[i] = r.Sig
		case "D":
			vals[i] = r.D
		case "epsp":
			vals[i] = r.EpsP
		case "alp":
			vals[i] = r.Alp
		default:
			return nil, chk.Err("cannot get series with key %q", key)
		}
	}
	return
}
