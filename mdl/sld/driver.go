// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
)

// Result holds the converged state at one step of a Driver run
type Result struct {
	Eps     float64 // total strain
	Sig     float64 // stress
	D       float64 // tangent
	EpsP    float64 // plastic strain (models with internal variables only)
	Alp     float64 // hardening variable (models with internal variables only)
	Loading bool    // plastic branch (models with internal variables only)
}

// Internal defines models reporting their trial internal variables
type Internal interface {
	InternalVars() (εp, α float64, loading bool)
}

// Driver runs a model through a strain path, emulating a host that converges in one iteration
type Driver struct {

	// input
	CheckD bool                 // check D against a central-difference tangent
	TolD   float64              // tolerance for checking D
	HstD   float64              // step size for the numerical tangent
	VerD   bool                 // verbose check of D
	Sens   func(step int) error // called after each converged step and before CommitState

	// results
	Res []Result // results; one per step

	// model
	model Uniaxial
}

// Init initialises driver
func (o *Driver) Init(model Uniaxial) {
	o.model = model
	o.TolD = 1e-8
	o.HstD = 1e-7
}

// Model returns the model driven by this driver
func (o *Driver) Model() Uniaxial {
	return o.model
}

// Run runs the model through the strain path
func (o *Driver) Run(pth *Path) (err error) {

	// check
	if o.model == nil {
		return chk.Err("driver: model must be set with Init")
	}

	// steps
	steps, err := pth.Steps()
	if err != nil {
		return
	}

	// loop
	o.Res = make([]Result, 0, len(steps))
	for k, ε := range steps {

		// trial update
		err = o.model.SetTrialStrain(ε)
		if err != nil {
			return chk.Err("driver: SetTrialStrain failed at step %d:\n%v", k, err)
		}

		// check D
		if o.CheckD {
			err = o.checkD(k)
			if err != nil {
				return
			}
		}

		// sensitivities
		if o.Sens != nil {
			err = o.Sens(k)
			if err != nil {
				return chk.Err("driver: sensitivities failed at step %d:\n%v", k, err)
			}
		}

		// results
		res := Result{Eps: o.model.GetStrain(), Sig: o.model.GetStress(), D: o.model.GetTangent()}
		if m, ok := o.model.(Internal); ok {
			res.EpsP, res.Alp, res.Loading = m.InternalVars()
		}
		o.Res = append(o.Res, res)

		// commit
		err = o.model.CommitState()
		if err != nil {
			return chk.Err("driver: CommitState failed at step %d:\n%v", k, err)
		}
	}
	return
}

// checkD compares D with the numerical tangent computed on copies of the model
func (o *Driver) checkD(k int) (err error) {
	ε := o.model.GetStrain()
	dana := o.model.GetTangent()
	dnum := num.DerivCen5(ε, o.HstD, func(x float64) float64 {
		tmp := o.model.GetCopy()
		if e := tmp.SetTrialStrain(x); e != nil {
			err = e
			return math.NaN()
		}
		return tmp.GetStress()
	})
	if err != nil {
		return chk.Err("driver: cannot compute numerical D at step %d:\n%v", k, err)
	}
	diff := math.Abs(dana-dnum) / math.Max(1, math.Abs(dana))
	if o.VerD {
		io.Pforan("step %3d: D_ana = %23.15e  D_num = %23.15e  diff = %g\n", k, dana, dnum, diff)
	}
	if diff > o.TolD || math.IsNaN(diff) {
		return chk.Err("driver: D is inconsistent at step %d: ana=%g num=%g diff=%g", k, dana, dnum, diff)
	}
	return
}
