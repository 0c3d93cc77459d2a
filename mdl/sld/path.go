// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Path holds a strain path
//  Eps   -- key strains; the first one is the starting strain
//  Nincs -- number of increments between key strains; 0 or 1 means going straight to each key
type Path struct {
	Eps   []float64 `json:"eps" yaml:"eps"`
	Nincs int       `json:"nincs" yaml:"nincs"`
}

// Steps returns the strains for each step, including the first key strain
func (o *Path) Steps() (steps []float64, err error) {
	if len(o.Eps) < 1 {
		return nil, chk.Err("path must have at least one strain value")
	}
	nincs := o.Nincs
	if nincs < 1 {
		nincs = 1
	}
	steps = []float64{o.Eps[0]}
	for i := 1; i < len(o.Eps); i++ {
		seg := utl.LinSpace(o.Eps[i-1], o.Eps[i], nincs+1)
		steps = append(steps, seg[1:]...)
	}
	return
}
