// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sld implements uniaxial (1D) constitutive models for solids
/*
 *   host (FE engine)            model
 *  ==================================================
 *   SetTrialStrain(ε)    =>   σ, D = dσ/dε (trial)
 *   CommitState()        =>   trial history -> committed
 *   RevertToStart()      =>   zero history
 *  --------------------------------------------------
 *   ActivateParameter(θ)
 *   GetStressSensitivity =>   dσ/dθ (conditional)
 *   CommitSensitivity    =>   d(history)/dθ += ...
 */
package sld

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines the interface for uniaxial models that can be built by name
type Model interface {
	Init(prms dbf.Params) error // initialises model
	GetPrms() dbf.Params        // gets (an example) of parameters
	Free()                      // frees memory
}

// Uniaxial defines the state machine driven by the host during equilibrium iterations
type Uniaxial interface {
	Model
	GetTag() int                    // returns the tag of this material
	SetTrialStrain(ε float64) error // computes trial stress and tangent for given total strain
	GetStrain() float64             // returns the trial strain
	GetStress() float64             // returns the trial stress
	GetTangent() float64            // returns D = dσ/dε consistent with SetTrialStrain
	GetInitialTangent() float64     // returns the elastic tangent
	CommitState() error             // commits trial history
	RevertToLastCommit() error      // discards trial state
	RevertToStart() error           // returns to the just-constructed state
	GetCopy() Uniaxial              // returns an independent copy
}

// Sensitive defines models implementing the direct differentiation method (DDM)
type Sensitive interface {
	Uniaxial
	SetParameter(name string) (id int, value float64, err error)   // resolves parameter name to id
	UpdateParameter(id int, value float64) error                   // sets parameter value
	ActivateParameter(id int) error                                // selects the differentiated parameter
	GetStressSensitivity(gradIndex int, conditional bool) float64  // dσ/dθ
	GetTangentSensitivity(gradIndex int) float64                   // dD/dθ
	GetInitialTangentSensitivity(gradIndex int) float64            // dE/dθ
	CommitSensitivity(dεdθ float64, gradIndex, numGrads int) error // accumulates history sensitivities
}

// New returns new uniaxial model
func New(name string) (model Uniaxial, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'sld' database", name)
	}
	return allocator(), nil
}

// allocators holds all available uniaxial models; modelname => allocator
var allocators = map[string]func() Uniaxial{}
