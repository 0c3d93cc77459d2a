// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_path01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("path01")

	pth := Path{Eps: []float64{0, 0.004, -0.002}, Nincs: 2}
	steps, err := pth.Steps()
	if err != nil {
		tst.Errorf("Steps failed: %v\n", err)
		return
	}
	correct := []float64{0, 0.002, 0.004, 0.001, -0.002}
	if len(steps) != len(correct) {
		tst.Errorf("number of steps is incorrect: %d\n", len(steps))
		return
	}
	for i := range steps {
		chk.Float64(tst, "ε", 1e-15, steps[i], correct[i])
	}

	_, err = new(Path).Steps()
	if err == nil {
		tst.Errorf("empty path should have failed\n")
	}
}

func Test_driver01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("driver01. hardening model with D check")

	m := NewHardening(1, 29000, 60, 1000, 2000)
	var drv Driver
	drv.Init(m)
	drv.CheckD = true
	drv.VerD = chk.Verbose
	pth := Path{Eps: []float64{0, 0.001, 0.004, 0.006, 0.003, -0.004, -0.002, 0.005}}
	err := drv.Run(&pth)
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	sigs := []float64{0, 29, 65.25, 70.6875, -16.3125, -71.70703125, -13.70703125, 77.194091796875}
	loading := []bool{false, false, true, true, false, true, false, true}
	for i, r := range drv.Res {
		io.Pforan("ε = %7.4f  σ = %12.6f  εp = %10.7f  α = %10.7f\n", r.Eps, r.Sig, r.EpsP, r.Alp)
		chk.Float64(tst, "σ", 1e-10, r.Sig, sigs[i])
		if r.Loading != loading[i] {
			tst.Errorf("loading flag at step %d is incorrect\n", i)
		}
	}
	chk.Float64(tst, "εp", 1e-15, drv.Res[7].EpsP, 0.002338134765625)
	chk.Float64(tst, "α", 1e-15, drv.Res[7].Alp, 0.012517822265625)

	ε, σ := Curves(drv.Res)
	chk.Float64(tst, "ε", 1e-17, ε[3], 0.006)
	chk.Float64(tst, "σ", 1e-17, σ[3], drv.Res[3].Sig)
}

func Test_driver02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("driver02. sensitivities driven after each step")

	m := NewHardening(1, 29000, 60, 1000, 2000)
	m.ActivateParameter(int(PrmSigY))
	var drv Driver
	drv.Init(m)
	var dσ []float64
	drv.Sens = func(step int) error {
		dσ = append(dσ, m.GetStressSensitivity(0, true))
		return m.CommitSensitivity(0, 0, 1)
	}
	err := drv.Run(&Path{Eps: []float64{0, 0.001, 0.004, 0.006, 0.003, -0.004, -0.002, 0.005}})
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	correct := []float64{0, 0, 0.90625, 0.90625, 0.90625, -0.849609375, -0.849609375, 0.7965087890625}
	for i := range correct {
		chk.Float64(tst, io.Sf("dσ/dσy @ %d", i), 1e-12, dσ[i], correct[i])
	}
}

func Test_driver03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("driver03. linear elastic model and errors")

	mdl, _ := New("oned-elast")
	mdl.Init(mdl.GetPrms())
	var drv Driver
	err := drv.Run(&Path{Eps: []float64{0}})
	if err == nil {
		tst.Errorf("Run without model should have failed\n")
	}
	drv.Init(mdl)
	drv.CheckD = true
	drv.TolD = 1e-6
	err = drv.Run(&Path{Eps: []float64{0, 1e-3}, Nincs: 4})
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	if len(drv.Res) != 5 {
		tst.Errorf("number of results is incorrect: %d\n", len(drv.Res))
		return
	}
	chk.Float64(tst, "σ", 1e-8, drv.Res[4].Sig, 2e5)
	chk.Float64(tst, "D", 1e-8, drv.Res[2].D, 2e8)
}

// elastWithVars is a linear elastic model reporting fixed internal variables
type elastWithVars struct {
	OnedLinElast
}

func (o *elastWithVars) InternalVars() (εp, α float64, loading bool) {
	return 0.5, 0.25, true
}

// brokenCopy is a linear elastic model whose copies cannot be updated
type brokenCopy struct {
	OnedLinElast
}

func (o *brokenCopy) GetCopy() Uniaxial {
	return &failing{}
}

type failing struct {
	OnedLinElast
}

func (o *failing) SetTrialStrain(ε float64) error {
	return chk.Err("cannot update strain")
}

func Test_driver04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("driver04. internal variables and failing D check")

	// any model reporting internal variables
	var drv Driver
	drv.Init(&elastWithVars{OnedLinElast{E: 100}})
	err := drv.Run(&Path{Eps: []float64{0, 1e-3}})
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	chk.Float64(tst, "εp", 1e-17, drv.Res[1].EpsP, 0.5)
	chk.Float64(tst, "α", 1e-17, drv.Res[1].Alp, 0.25)
	if !drv.Res[1].Loading {
		tst.Errorf("loading flag should be reported\n")
	}

	// models without internal variables
	drv.Init(&OnedLinElast{E: 100})
	err = drv.Run(&Path{Eps: []float64{0, 1e-3}})
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	if drv.Res[1].EpsP != 0 || drv.Res[1].Loading {
		tst.Errorf("elastic model should not report internal variables\n")
	}

	// errors of copies are reported by the D check
	drv.Init(&brokenCopy{OnedLinElast{E: 100}})
	drv.CheckD = true
	err = drv.Run(&Path{Eps: []float64{0, 1e-3}})
	if err == nil {
		tst.Errorf("D check with failing copy should have failed\n")
	}
	if math.IsNaN(drv.Model().GetStress()) {
		tst.Errorf("the driven model should not be touched by the D check\n")
	}
}
