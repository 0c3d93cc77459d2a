// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/plt"
	"github.com/epsolid/hardening/mdl/sld"
)

// Plot plots the series ykey versus xkey
//  sty -- style; may be nil
func Plot(res []sld.Result, xkey, ykey string, sty *plt.A) (err error) {
	x, err := Get(res, xkey)
	if err != nil {
		return
	}
	y, err := Get(res, ykey)
	if err != nil {
		return
	}
	if sty == nil {
		sty = &plt.A{C: "b", M: ".", Ls: "-"}
	}
	plt.Plot(x, y, sty)
	plt.Gll(GetTexLabel(xkey, ""), GetTexLabel(ykey, ""), nil)
	return
}

// Save resets the figure, plots ykey versus xkey and saves figure
func Save(res []sld.Result, xkey, ykey, dirout, fnkey string) (err error) {
	plt.Reset(false, nil)
	err = Plot(res, xkey, ykey, nil)
	if err != nil {
		return
	}
	plt.Save(dirout, fnkey)
	return
}
