// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import "fmt"

// SetParameter resolves a parameter name to its id and returns its current value
//  Recognised names: sigmaY|fy|Fy, E, H_kin|Hkin, H_iso|Hiso
func (o *Hardening) SetParameter(name string) (id int, value float64, err error) {
	kind, err := ParsePrmKind(name)
	if err != nil {
		return -1, 0, err
	}
	return int(kind), o.get(kind), nil
}

// UpdateParameter sets the value of the parameter with the given id
func (o *Hardening) UpdateParameter(id int, value float64) error {
	kind := PrmKind(id)
	if kind == PrmNone || !kind.valid() {
		return fmt.Errorf("%w: id %d cannot be updated", ErrUnknownParam, id)
	}
	o.set(kind, value)
	return nil
}

// ActivateParameter selects the parameter to be differentiated; 0 means none
func (o *Hardening) ActivateParameter(id int) error {
	kind := PrmKind(id)
	if !kind.valid() {
		return fmt.Errorf("%w: id %d cannot be activated", ErrUnknownParam, id)
	}
	o.active = kind
	return nil
}

// Active returns the parameter being differentiated
func (o *Hardening) Active() PrmKind {
	return o.active
}

// Sens returns the history sensitivities (dεp/dθ, dα/dθ) at gradIndex
func (o *Hardening) Sens(gradIndex int) (dεp, dα float64) {
	return o.sens.Get(SensEpsP, gradIndex), o.sens.Get(SensAlp, gradIndex)
}

// GetStressSensitivity returns dσ/dθ for the current trial strain, with θ the active parameter,
// conditioned on a fixed total strain
//  Note: conditional is kept for compatibility with the host interface; the strain
//        sensitivity only enters through CommitSensitivity
func (o *Hardening) GetStressSensitivity(gradIndex int, conditional bool) float64 {
	dεpC, dαC := o.Sens(gradIndex)
	dσ, _, _ := o.ddm(0, dεpC, dαC)
	return dσ
}

// GetTangentSensitivity returns dD/dθ for the current trial strain
func (o *Hardening) GetTangentSensitivity(gradIndex int) float64 {
	if o.active < PrmE || o.active > PrmHiso {
		return 0
	}

	// elastic
	_, _, ftr := o.trial()
	if ftr <= -MACHEPS*o.E {
		if o.active == PrmE {
			return 1
		}
		return 0
	}

	// plastic: D = E H / (E + H) with H = Hkin + Hiso
	H := o.Hkin + o.Hiso
	EHK := o.E + H
	EHK2 := EHK * EHK
	if o.active == PrmE {
		return (EHK*H - o.E*H) / EHK2
	}
	return (EHK*o.E - o.E*H) / EHK2
}

// GetInitialTangentSensitivity returns dE/dθ
func (o *Hardening) GetInitialTangentSensitivity(gradIndex int) float64 {
	if o.active == PrmE {
		return 1
	}
	return 0
}

// CommitSensitivity accumulates the sensitivities of the history variables at gradIndex
//  dεdθ     -- sensitivity of the total strain (from the host's sensitivity solver)
//  numGrads -- number of gradients; the container grows to numGrads columns if needed
//  Note: gradIndex outside [0, numGrads) is ignored
func (o *Hardening) CommitSensitivity(dεdθ float64, gradIndex, numGrads int) error {
	o.sens.Ensure(numGrads)
	if gradIndex < 0 || gradIndex >= o.sens.Cols() {
		return nil
	}
	dεpC, dαC := o.Sens(gradIndex)
	_, dΔγ, n := o.ddm(dεdθ, dεpC, dαC)
	o.sens.Add(gradIndex, dΔγ*n, dΔγ)
	return nil
}

// ddm differentiates the return mapping w.r.t the active parameter
//  dε   -- sensitivity of the total strain
//  dεpC -- sensitivity of committed plastic strain
//  dαC  -- sensitivity of committed hardening variable
//  returns dσ, dΔγ (zero if elastic) and n = sign(ξ)
func (o *Hardening) ddm(dε, dεpC, dαC float64) (dσ, dΔγ, n float64) {

	// explicit derivatives of parameters
	dσy, dE, dHkin, dHiso := o.active.seeds()

	// trial values
	εpC, αC := o.C.EpsP, o.C.Alp
	_, ξ, ftr := o.trial()
	dσtr := dE*(o.T.Eps-εpC) + o.E*(dε-dεpC)
	n = sgn(ξ)

	// elastic
	if ftr <= -MACHEPS*o.E {
		return dσtr, 0, n
	}

	// plastic
	EHK := o.E + o.Hkin + o.Hiso
	dEHK := dE + dHkin + dHiso
	Δγ := ftr / EHK
	dback := dHkin*εpC + o.Hkin*dεpC
	df := (dσtr-dback)*n - dσy - dHiso*αC - o.Hiso*dαC
	dΔγ = (df*EHK - ftr*dEHK) / (EHK * EHK)
	dσ = dσtr - dΔγ*o.E*n - Δγ*dE*n
	return
}
