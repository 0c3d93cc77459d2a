// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/epsolid/hardening/mdl/sld"
)

// Sweeper computes and commits sensitivities for all parameters of a domain
type Sweeper struct {
	Domain     *Domain                          // parameters
	StrainSens func(tag, gradIndex int) float64 // dε/dθ for parameter; nil => 0
}

// activate deactivates all materials and activates parameter
func (o *Sweeper) activate(tag int, mats []sld.Sensitive) (err error) {
	for _, m := range mats {
		err = m.ActivateParameter(0)
		if err != nil {
			return
		}
	}
	return o.Domain.Activate(tag)
}

// deactivate deactivates all parameters and materials
func (o *Sweeper) deactivate(mats []sld.Sensitive) (err error) {
	for _, m := range mats {
		err = m.ActivateParameter(0)
		if err != nil {
			return
		}
	}
	return o.Domain.Deactivate()
}

// Stress returns the conditional stress sensitivities: sens[imat][gradIndex]
func (o *Sweeper) Stress(mats []sld.Sensitive) (sens [][]float64, err error) {
	tags := o.Domain.Tags()
	sens = make([][]float64, len(mats))
	for i := range mats {
		sens[i] = make([]float64, len(tags))
	}
	for g, tag := range tags {
		err = o.activate(tag, mats)
		if err != nil {
			return nil, chk.Err("cannot activate parameter %d:\n%v", tag, err)
		}
		for i, m := range mats {
			sens[i][g] = m.GetStressSensitivity(g, true)
		}
	}
	err = o.deactivate(mats)
	return
}

// Commit commits the history sensitivities of all materials, parameter by parameter
func (o *Sweeper) Commit(mats []sld.Sensitive) (err error) {
	tags := o.Domain.Tags()
	ngrads := len(tags)
	for g, tag := range tags {
		err = o.activate(tag, mats)
		if err != nil {
			return chk.Err("cannot activate parameter %d:\n%v", tag, err)
		}
		dεdθ := 0.0
		if o.StrainSens != nil {
			dεdθ = o.StrainSens(tag, g)
		}
		for _, m := range mats {
			err = m.CommitSensitivity(dεdθ, g, ngrads)
			if err != nil {
				return chk.Err("cannot commit sensitivity of parameter %d:\n%v", tag, err)
			}
		}
	}
	return o.deactivate(mats)
}
