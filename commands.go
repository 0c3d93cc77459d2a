// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
	"github.com/epsolid/hardening/chn"
	"github.com/epsolid/hardening/chn/mpichn"
	"github.com/epsolid/hardening/inp"
	"github.com/epsolid/hardening/mdl/sld"
	"github.com/epsolid/hardening/out"
	"github.com/epsolid/hardening/prm"
	"github.com/spf13/cobra"
)

// readMaterial reads the materials file (JSON or YAML) and returns the named material
func readMaterial(matfile, name string) (mat *inp.Material, err error) {
	dir, fn := filepath.Split(matfile)
	var mdb *inp.MatDb
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".yaml", ".yml":
		mdb, err = inp.ReadMatYaml(dir, fn)
	default:
		mdb, err = inp.ReadMat(dir, fn)
	}
	if err != nil {
		return
	}
	mat = mdb.Get(name)
	if mat == nil {
		return nil, chk.Err("cannot find material %q in %q", name, matfile)
	}
	return
}

// hardening returns the hardening model of material
func hardening(mat *inp.Material) (*sld.Hardening, error) {
	m, ok := mat.Solid.(*sld.Hardening)
	if !ok {
		return nil, chk.Err("material %q must use the hardening model; got %q", mat.Name, mat.Model)
	}
	return m, nil
}

// runPath runs model through strain path
func runPath(model sld.Uniaxial, pth *sld.Path, check bool) (drv *sld.Driver, err error) {
	drv = new(sld.Driver)
	drv.Init(model)
	drv.CheckD = check
	err = drv.Run(pth)
	return
}

// sensitivities runs model through strain path and returns dσ/dθ at each step for each parameter
func sensitivities(model *sld.Hardening, pth *sld.Path, names []string) (grads [][]float64, err error) {
	dom := prm.NewDomain()
	for i, name := range names {
		_, err = dom.New(i+1, model, name)
		if err != nil {
			return
		}
	}
	mats := []sld.Sensitive{model}
	sw := &prm.Sweeper{Domain: dom}
	drv := new(sld.Driver)
	drv.Init(model)
	drv.Sens = func(step int) (e error) {
		sens, e := sw.Stress(mats)
		if e != nil {
			return
		}
		grads = append(grads, sens[0])
		return sw.Commit(mats)
	}
	err = drv.Run(pth)
	return
}

// roundTrip sends the state of model and receives it into a new model
func roundTrip(model *sld.Hardening, ch sld.Channel) (recv *sld.Hardening, err error) {
	err = model.SendSelf(0, ch)
	if err != nil {
		return
	}
	recv = sld.NewHardening(0, 0, 0, 0, 0)
	recv.Log = model.Log
	err = recv.RecvSelf(0, ch)
	return
}

func runCommand(cmd *cobra.Command, args []string) (err error) {
	mat, err := readMaterial(args[0], args[1])
	if err != nil {
		return
	}
	pth, err := inp.ReadPath(args[2])
	if err != nil {
		return
	}
	drv, err := runPath(mat.Solid, pth, checkD)
	if err != nil {
		return
	}
	io.Pf("%s\n", out.TitleStyle.Render(io.Sf("material %q (%s)", mat.Name, mat.Model)))
	io.Pf("%s\n", out.Table(drv.Res))
	io.Pf("%s\n", out.PlotAscii(drv.Res, height, width))
	if figDir != "" {
		plr := sld.Plotter{DirOut: figDir, FnKey: mat.Name}
		plr.Plot(drv.Res)
		for _, xy := range xyKeys {
			keys := strings.Split(xy, ":")
			if len(keys) != 2 {
				return chk.Err("figure keys must be given as x:y; got %q", xy)
			}
			err = out.Save(drv.Res, keys[0], keys[1], figDir, io.Sf("%s-%s-%s", mat.Name, keys[0], keys[1]))
			if err != nil {
				return
			}
		}
	}
	return
}

func sensCommand(cmd *cobra.Command, args []string) (err error) {
	mat, err := readMaterial(args[0], args[1])
	if err != nil {
		return
	}
	model, err := hardening(mat)
	if err != nil {
		return
	}
	pth, err := inp.ReadPath(args[2])
	if err != nil {
		return
	}
	grads, err := sensitivities(model, pth, prmList)
	if err != nil {
		return
	}
	io.Pf("%s\n", out.TitleStyle.Render(io.Sf("stress sensitivities of %q", mat.Name)))
	io.Pf("%s\n", out.SensTable(prmList, grads))
	return
}

func printCommand(cmd *cobra.Command, args []string) (err error) {
	mat, err := readMaterial(args[0], args[1])
	if err != nil {
		return
	}
	model, err := hardening(mat)
	if err != nil {
		return
	}
	if asJson {
		io.Pf("%s\n", model.Json())
		return
	}
	io.Pf("%v", model)
	return
}

func sendCommand(cmd *cobra.Command, args []string) (err error) {
	mat, err := readMaterial(args[0], args[1])
	if err != nil {
		return
	}
	model, err := hardening(mat)
	if err != nil {
		return
	}
	if !useMpi {
		recv, e := roundTrip(model, chn.NewMemory())
		if e != nil {
			return e
		}
		io.Pf("sent     = %v\n", model.Pack())
		io.Pf("received = %v\n", recv.Pack())
		return
	}

	// MPI: rank 0 sends to rank 1
	mpi.Start()
	defer mpi.Stop()
	rank := mpi.WorldRank()
	if rank > 1 {
		return
	}
	ch, err := mpichn.NewMpi(1 - rank)
	if err != nil {
		return
	}
	if rank == 0 {
		err = model.SendSelf(0, ch)
		if err == nil {
			io.Pf("rank 0: sent     = %v\n", model.Pack())
		}
		return
	}
	recv := sld.NewHardening(0, 0, 0, 0, 0)
	err = recv.RecvSelf(0, ch)
	if err == nil {
		io.Pf("rank 1: received = %v\n", recv.Pack())
	}
	return
}
