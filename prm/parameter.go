// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package prm implements a registry of parameters shared by materials, used to update
// parameter values and to drive sensitivity analyses
package prm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Object defines objects exposing parameters
type Object interface {
	SetParameter(name string) (id int, value float64, err error) // resolves parameter name to id
	UpdateParameter(id int, value float64) error                 // sets parameter value
	ActivateParameter(id int) error                              // selects the differentiated parameter
}

// component connects a parameter to one object
type component struct {
	obj  Object // object
	name string // name of parameter in object
	id   int    // id returned by object
}

// Parameter holds a value shared by components of one or more objects
type Parameter struct {
	Tag   int          // tag of parameter
	P     *dbf.P       // value; P.N is the name of the first component
	comps []*component // components
}

// newParameter returns a blank parameter
func newParameter(tag int, value float64) *Parameter {
	return &Parameter{Tag: tag, P: &dbf.P{N: "", V: value}}
}

// AddComponent connects the parameter named name of obj
//  Note: the first component defines the value of the parameter
func (o *Parameter) AddComponent(obj Object, name string) (err error) {
	id, value, err := obj.SetParameter(name)
	if err != nil {
		return chk.Err("parameter %d: cannot add component %q:\n%v", o.Tag, name, err)
	}
	if len(o.comps) == 0 {
		o.P.N = name
		o.P.Set(value)
	}
	o.comps = append(o.comps, &component{obj, name, id})
	return
}

// Connect connects a host variable to the value of this parameter
func (o *Parameter) Connect(v *float64) {
	o.P.Connect(v)
}

// Value returns the current value
func (o *Parameter) Value() float64 {
	return o.P.V
}

// NumComponents returns the number of components
func (o *Parameter) NumComponents() int {
	return len(o.comps)
}

// Update sets value in all components
func (o *Parameter) Update(value float64) (err error) {
	o.P.Set(value)
	for _, c := range o.comps {
		err = c.obj.UpdateParameter(c.id, value)
		if err != nil {
			return chk.Err("parameter %d: cannot update component %q:\n%v", o.Tag, c.name, err)
		}
	}
	return
}

// Activate activates (or deactivates) this parameter in all components
func (o *Parameter) Activate(on bool) (err error) {
	for _, c := range o.comps {
		id := 0
		if on {
			id = c.id
		}
		err = c.obj.ActivateParameter(id)
		if err != nil {
			return chk.Err("parameter %d: cannot activate component %q:\n%v", o.Tag, c.name, err)
		}
	}
	return
}
