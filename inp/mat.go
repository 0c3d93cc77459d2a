// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input of material databases and strain paths
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/epsolid/hardening/mdl/sld"
	"gopkg.in/yaml.v3"
)

// Material holds material data
type Material struct {

	// input
	Name  string     `json:"name"`  // name of material
	Type  string     `json:"type"`  // type of material; only "solid"
	Model string     `json:"model"` // name of model; e.g. "hardening", "oned-elast"
	Extra string     `json:"extra"` // extra information about this material
	Prms  dbf.Params `json:"prms"`  // prms holds all model parameters for this material

	// derived
	Solid sld.Uniaxial // pointer to actual uniaxial model
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {
	Materials MatsData `json:"materials"` // all materials
}

// yamlMat mirrors Material in YAML files
type yamlMat struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Model string `yaml:"model"`
	Extra string `yaml:"extra"`
	Prms  []struct {
		N string  `yaml:"n"`
		V float64 `yaml:"v"`
	} `yaml:"prms"`
}

// Free frees resources
func (o *MatDb) Free() {
	for _, mat := range o.Materials {
		if mat.Solid != nil {
			mat.Solid.Free()
		}
	}
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// read file
	b, err := readFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	mdb = new(MatDb)
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, chk.Err("cannot decode materials file %q:\n%v", fn, err)
	}
	err = mdb.init()
	return
}

// ReadMatYaml reads all materials data from a YAML file
func ReadMatYaml(dir, fn string) (mdb *MatDb, err error) {

	// read file
	b, err := readFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	var data struct {
		Materials []yamlMat `yaml:"materials"`
	}
	err = yaml.Unmarshal(b, &data)
	if err != nil {
		return nil, chk.Err("cannot decode materials file %q:\n%v", fn, err)
	}

	// convert
	mdb = new(MatDb)
	for _, m := range data.Materials {
		mat := &Material{Name: m.Name, Type: m.Type, Model: m.Model, Extra: m.Extra}
		for _, p := range m.Prms {
			mat.Prms = append(mat.Prms, &dbf.P{N: p.N, V: p.V})
		}
		mdb.Materials = append(mdb.Materials, mat)
	}
	err = mdb.init()
	return
}

// init allocates and initialises models
func (o *MatDb) init() (err error) {
	names := make(map[string]bool)
	for _, m := range o.Materials {
		if names[m.Name] {
			return chk.Err("material %q is repeated", m.Name)
		}
		names[m.Name] = true
		if m.Type != "solid" {
			return chk.Err("material type %q is incorrect; the only option is \"solid\"", m.Type)
		}
		m.Solid, err = sld.New(m.Model)
		if err != nil {
			return chk.Err("cannot allocate model of material %q:\n%v", m.Name, err)
		}
		err = m.Solid.Init(m.Prms)
		if err != nil {
			return chk.Err("cannot initialise model of material %q:\n%v", m.Name, err)
		}
	}
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}
