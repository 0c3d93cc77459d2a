// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

// History holds the internal (history) variables of the hardening model
type History struct {
	EpsP float64 // εp: plastic strain; back stress = Hkin * εp
	Alp  float64 // α: isotropic hardening variable (accumulated Δγ)
}

// Set copies history
func (o *History) Set(other *History) {
	o.EpsP = other.EpsP
	o.Alp = other.Alp
}

// Zero resets history
func (o *History) Zero() {
	o.EpsP, o.Alp = 0, 0
}

// Trial holds the trial state recomputed by SetTrialStrain
//  Note: the trial state is a function of the committed history, the parameters and
//        the strain only; nothing is carried forward except through CommitState
type Trial struct {
	History
	Eps float64 // ε: total strain
	Sig float64 // σ: stress
	D   float64 // D = dσ/dε: algorithmic tangent
}

// Set copies trial state
func (o *Trial) Set(other *Trial) {
	o.History.Set(&other.History)
	o.Eps = other.Eps
	o.Sig = other.Sig
	o.D = other.D
}
