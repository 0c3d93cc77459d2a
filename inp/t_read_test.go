// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/epsolid/hardening/mdl/sld"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func checkSteel(tst *testing.T, mdb *MatDb) {
	mat := mdb.Get("steel")
	if mat == nil {
		tst.Errorf("cannot find steel\n")
		return
	}
	m, ok := mat.Solid.(*sld.Hardening)
	if !ok {
		tst.Errorf("steel should be a hardening model\n")
		return
	}
	io.Pforan("%v", m)
	if m.Tag != 1 {
		tst.Errorf("tag should be 1, got %d\n", m.Tag)
	}
	chk.Float64(tst, "E", 1e-17, m.E, 29000)
	chk.Float64(tst, "σy", 1e-17, m.SigY, 60)
	chk.Float64(tst, "Hiso", 1e-17, m.Hiso, 290)
	chk.Float64(tst, "Hkin", 1e-17, m.Hkin, 290)
	chk.Float64(tst, "D", 1e-17, m.GetTangent(), 29000)
}

func Test_mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat01")

	mdb, err := ReadMat("data", "steel.mat")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	defer mdb.Free()
	if len(mdb.Materials) != 2 {
		tst.Errorf("there should be 2 materials, got %d\n", len(mdb.Materials))
		return
	}
	checkSteel(tst, mdb)

	rubber := mdb.Get("rubber")
	if rubber == nil {
		tst.Errorf("cannot find rubber\n")
		return
	}
	if rubber.Solid.GetTag() != 2 {
		tst.Errorf("tag of rubber should be 2\n")
	}
	chk.Float64(tst, "E(rubber)", 1e-17, rubber.Solid.GetInitialTangent(), 100)

	if mdb.Get("wood") != nil {
		tst.Errorf("wood should not be found\n")
	}
}

func Test_mat02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat02")

	mdb, err := ReadMatYaml("data", "steel.yaml")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	defer mdb.Free()
	checkSteel(tst, mdb)
	if mdb.Get("steel").Extra != "A36 steel; units: ksi" {
		tst.Errorf("extra is incorrect: %q\n", mdb.Get("steel").Extra)
	}
}

func Test_mat03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat03")

	if _, err := ReadMat("data", "badtype.mat"); err == nil {
		tst.Errorf("wrong material type should have failed\n")
	}
	if _, err := ReadMatYaml("data", "badprm.yaml"); err == nil {
		tst.Errorf("wrong parameter should have failed\n")
	}
	if _, err := ReadMat("data", "notfound.mat"); err == nil {
		tst.Errorf("missing file should have failed\n")
	}
	if _, err := ReadMatYaml("data", "notfound.yaml"); err == nil {
		tst.Errorf("missing file should have failed\n")
	}
	if _, err := ReadPath("data/notfound.json"); err == nil {
		tst.Errorf("missing file should have failed\n")
	}
	b, err := readFile("data/cyclic.json")
	if err != nil {
		tst.Errorf("readFile failed:\n%v", err)
		return
	}
	if len(b) == 0 {
		tst.Errorf("readFile should have read cyclic.json\n")
	}
}

func Test_path01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("path01")

	for _, fn := range []string{"data/cyclic.json", "data/cyclic.yaml"} {
		pth, err := ReadPath(fn)
		if err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
		if pth.Nincs != 3 || len(pth.Eps) != 4 {
			tst.Errorf("%s: path is incorrect: %v\n", fn, pth)
			return
		}
		steps, err := pth.Steps()
		if err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
		io.Pforan("steps = %v\n", steps)
		if len(steps) != 10 {
			tst.Errorf("%s: there should be 10 steps, got %d\n", fn, len(steps))
			return
		}
		chk.Float64(tst, "ε[1]", 1e-15, steps[1], 0.001)
		chk.Float64(tst, "ε[3]", 1e-15, steps[3], 0.003)
		chk.Float64(tst, "ε[6]", 1e-15, steps[6], -0.003)
	}

	if _, err := ReadPath("data/steel.mat"); err == nil {
		tst.Errorf("path without strains should have failed\n")
	}
}
