// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prm

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Domain holds all parameters; parameter tag => parameter
type Domain struct {
	params map[int]*Parameter
}

// NewDomain returns a new registry
func NewDomain() *Domain {
	return &Domain{params: make(map[int]*Parameter)}
}

// Add adds a blank parameter with given value
func (o *Domain) Add(tag int, value float64) (p *Parameter, err error) {
	if _, ok := o.params[tag]; ok {
		return nil, chk.Err("parameter with tag %d already exists", tag)
	}
	p = newParameter(tag, value)
	o.params[tag] = p
	return
}

// New adds a new parameter connected to the parameter named name of obj
func (o *Domain) New(tag int, obj Object, name string) (p *Parameter, err error) {
	p, err = o.Add(tag, 0)
	if err != nil {
		return
	}
	err = p.AddComponent(obj, name)
	if err != nil {
		delete(o.params, tag)
		return nil, err
	}
	return
}

// AddToParameter connects another object to parameter; the parameter is created if not found
func (o *Domain) AddToParameter(tag int, obj Object, name string) (err error) {
	p, ok := o.params[tag]
	if !ok {
		_, err = o.New(tag, obj, name)
		return
	}
	return p.AddComponent(obj, name)
}

// Get returns parameter or nil if not found
func (o *Domain) Get(tag int) *Parameter {
	return o.params[tag]
}

// Update sets the value of parameter
func (o *Domain) Update(tag int, value float64) (err error) {
	p, ok := o.params[tag]
	if !ok {
		return chk.Err("parameter with tag %d not found", tag)
	}
	return p.Update(value)
}

// Activate activates parameter and deactivates all others
func (o *Domain) Activate(tag int) (err error) {
	p, ok := o.params[tag]
	if !ok {
		return chk.Err("parameter with tag %d not found", tag)
	}
	err = o.Deactivate()
	if err != nil {
		return
	}
	return p.Activate(true)
}

// Deactivate deactivates all parameters
func (o *Domain) Deactivate() (err error) {
	for _, tag := range o.Tags() {
		err = o.params[tag].Activate(false)
		if err != nil {
			return
		}
	}
	return
}

// Tags returns the sorted tags of all parameters
func (o *Domain) Tags() (tags []int) {
	tags = make([]int, 0, len(o.params))
	for tag := range o.params {
		tags = append(tags, tag)
	}
	sort.Ints(tags)
	return
}

// GradIndex returns the gradient index of parameter (position in Tags) or -1
func (o *Domain) GradIndex(tag int) int {
	for i, t := range o.Tags() {
		if t == tag {
			return i
		}
	}
	return -1
}

// NumGrads returns the number of gradients (parameters)
func (o *Domain) NumGrads() int {
	return len(o.params)
}
