// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// OnedLinElast implements a linear elastic uniaxial model
type OnedLinElast struct {
	Tag int     // tag of this material
	E   float64 // Young's modulus
	Eps float64 // trial strain
}

// add model to factory
func init() {
	allocators["oned-elast"] = func() Uniaxial { return new(OnedLinElast) }
}

// Init initialises model
func (o *OnedLinElast) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "tag":
			o.Tag = int(p.V)
		case "E":
			o.E = p.V
		default:
			return chk.Err("oned-elast: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o OnedLinElast) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 2.0000e+08},
	}
}

// Free frees memory
func (o *OnedLinElast) Free() {
}

// GetTag returns the tag of this material
func (o *OnedLinElast) GetTag() int { return o.Tag }

// SetTrialStrain sets trial strain
func (o *OnedLinElast) SetTrialStrain(ε float64) error {
	o.Eps = ε
	return nil
}

// GetStrain returns the trial strain
func (o *OnedLinElast) GetStrain() float64 { return o.Eps }

// GetStress returns the trial stress
func (o *OnedLinElast) GetStress() float64 { return o.E * o.Eps }

// GetTangent returns D = dσ/dε
func (o *OnedLinElast) GetTangent() float64 { return o.E }

// GetInitialTangent returns D = dσ/dε
func (o *OnedLinElast) GetInitialTangent() float64 { return o.E }

// CommitState does nothing
func (o *OnedLinElast) CommitState() error { return nil }

// RevertToLastCommit does nothing
func (o *OnedLinElast) RevertToLastCommit() error { return nil }

// RevertToStart zeroes the strain
func (o *OnedLinElast) RevertToStart() error {
	o.Eps = 0
	return nil
}

// GetCopy returns a copy of this model
func (o *OnedLinElast) GetCopy() Uniaxial {
	other := *o
	return &other
}
