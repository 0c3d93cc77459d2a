// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import (
	"fmt"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// MACHEPS is the machine epsilon used by the elastic/plastic branch selection
const MACHEPS = 2.220446049250313e-16

// Hardening implements a uniaxial elastoplastic model with combined linear isotropic and
// kinematic hardening. The return mapping is closed-form since hardening is linear.
//  Yield function:  f = |σ - Hkin εp| - (σy + Hiso α)
//  Note: E + Hiso + Hkin must not be zero (not checked by NewHardening)
type Hardening struct {

	// parameters
	Tag   int     // tag of this material
	DbTag int     // database tag used by the channel
	E     float64 // Young's modulus
	SigY  float64 // σy: yield stress
	Hiso  float64 // isotropic hardening modulus
	Hkin  float64 // kinematic hardening modulus
	Log   Logger  // diagnostics; nil means DefaultLogger

	// state
	C History // committed history
	T Trial   // trial state

	// auxiliary
	loading bool     // last update took the plastic branch
	active  PrmKind  // parameter being differentiated
	sens    SensHist // sensitivities of committed history
}

// add model to factory
func init() {
	allocators["hardening"] = func() Uniaxial { return new(Hardening) }
}

// NewHardening returns a new model in its initial (zero history) state
func NewHardening(tag int, E, σy, Hiso, Hkin float64) (o *Hardening) {
	o = &Hardening{Tag: tag, E: E, SigY: σy, Hiso: Hiso, Hkin: Hkin}
	o.RevertToStart()
	return
}

// Init initialises model
func (o *Hardening) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		if p.N == "tag" {
			o.Tag = int(p.V)
			continue
		}
		kind, e := ParsePrmKind(p.N)
		if e != nil {
			return fmt.Errorf("hardening: parameter named %q is incorrect: %w", p.N, e)
		}
		o.set(kind, p.V)
	}
	if o.E+o.Hiso+o.Hkin == 0 {
		return chk.Err("hardening: E + Hiso + Hkin must not be zero. E=%g Hiso=%g Hkin=%g", o.E, o.Hiso, o.Hkin)
	}
	o.RevertToStart()
	return
}

// GetPrms gets (an example) of parameters
func (o Hardening) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 29000},
		&dbf.P{N: "sigmaY", V: 60},
		&dbf.P{N: "Hiso", V: 290},
		&dbf.P{N: "Hkin", V: 290},
	}
}

// Free frees memory
func (o *Hardening) Free() {
	o.sens.Free()
}

// GetTag returns the tag of this material
func (o *Hardening) GetTag() int {
	return o.Tag
}

// SetTrialStrain computes trial stress and tangent for the total strain ε
//  Note: requests with the same strain as the previous trial are ignored
func (o *Hardening) SetTrialStrain(ε float64) (err error) {

	// same iterate
	if math.Abs(o.T.Eps-ε) < MACHEPS {
		return
	}
	o.T.Eps = ε

	// trial values
	σtr, ξ, ftr := o.trial()

	// elastic update
	if ftr <= -MACHEPS*o.E {
		o.T.Sig = σtr
		o.T.D = o.E
		o.T.History.Set(&o.C)
		o.loading = false
		return
	}

	// plastic update
	Δγ := ftr / (o.E + o.Hiso + o.Hkin)
	n := sgn(ξ)
	o.T.Sig = σtr - Δγ*o.E*n
	o.T.EpsP = o.C.EpsP + Δγ*n
	o.T.Alp = o.C.Alp + Δγ
	o.T.D = o.E * (o.Hkin + o.Hiso) / (o.E + o.Hkin + o.Hiso)
	o.loading = true
	return
}

// GetStrain returns the trial strain
func (o *Hardening) GetStrain() float64 { return o.T.Eps }

// GetStress returns the trial stress
func (o *Hardening) GetStress() float64 { return o.T.Sig }

// GetTangent returns the algorithmic tangent
func (o *Hardening) GetTangent() float64 { return o.T.D }

// GetInitialTangent returns the elastic tangent
func (o *Hardening) GetInitialTangent() float64 { return o.E }

// Loading tells whether the last update took the plastic branch
func (o *Hardening) Loading() bool { return o.loading }

// InternalVars returns the trial plastic strain, the trial hardening variable and the loading flag
func (o *Hardening) InternalVars() (εp, α float64, loading bool) {
	return o.T.EpsP, o.T.Alp, o.loading
}

// CommitState commits trial history
func (o *Hardening) CommitState() error {
	o.C.Set(&o.T.History)
	return nil
}

// RevertToLastCommit does nothing: the next SetTrialStrain recomputes the trial state
// from the committed history
func (o *Hardening) RevertToLastCommit() error {
	return nil
}

// RevertToStart zeroes history and trial state and the history sensitivities
func (o *Hardening) RevertToStart() error {
	o.C.Zero()
	o.T.History.Zero()
	o.T.Eps = 0
	o.T.Sig = 0
	o.T.D = o.E
	o.loading = false
	o.sens.Zero()
	return nil
}

// GetCopy returns a copy with the same parameters, committed history and trial state
//  Note: sensitivities and the active parameter are not copied
func (o *Hardening) GetCopy() Uniaxial {
	other := &Hardening{
		Tag:   o.Tag,
		DbTag: o.DbTag,
		E:     o.E,
		SigY:  o.SigY,
		Hiso:  o.Hiso,
		Hkin:  o.Hkin,
		Log:   o.Log,
	}
	other.C.Set(&o.C)
	other.T.Set(&o.T)
	other.loading = o.loading
	return other
}

// YieldFunc evaluates the yield function at σ using the trial history
func (o *Hardening) YieldFunc(σ float64) float64 {
	return math.Abs(σ-o.Hkin*o.T.EpsP) - (o.SigY + o.Hiso*o.T.Alp)
}

// trial computes the elastic trial stress, the relative stress ξ and the trial yield function
// for the current trial strain and the committed history
func (o *Hardening) trial() (σtr, ξ, ftr float64) {
	σtr = o.E * (o.T.Eps - o.C.EpsP)
	ξ = σtr - o.Hkin*o.C.EpsP
	ftr = math.Abs(ξ) - (o.SigY + o.Hiso*o.C.Alp)
	return
}

// set sets parameter value
func (o *Hardening) set(kind PrmKind, v float64) {
	switch kind {
	case PrmSigY:
		o.SigY = v
	case PrmE:
		o.E = v
	case PrmHkin:
		o.Hkin = v
	case PrmHiso:
		o.Hiso = v
	}
}

// get returns parameter value
func (o *Hardening) get(kind PrmKind) float64 {
	switch kind {
	case PrmSigY:
		return o.SigY
	case PrmE:
		return o.E
	case PrmHkin:
		return o.Hkin
	case PrmHiso:
		return o.Hiso
	}
	return 0
}

// sgn returns -1 if x < 0 and +1 otherwise
func sgn(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
