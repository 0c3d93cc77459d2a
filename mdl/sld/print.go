// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import (
	"bytes"
	"encoding/json"

	"github.com/cpmech/gosl/io"
)

// report holds the fields of the structured report
type report struct {
	Name int     `json:"name"`
	Type string  `json:"type"`
	E    float64 `json:"E"`
	Fy   float64 `json:"fy"`
	Hiso float64 `json:"Hiso"`
	Hkin float64 `json:"Hkin"`
}

// String returns a labeled multi-line report of the parameters
func (o *Hardening) String() string {
	var b bytes.Buffer
	io.Ff(&b, "HardeningMaterial, tag: %d\n", o.Tag)
	io.Ff(&b, "  E: %g\n", o.E)
	io.Ff(&b, "  sigmaY: %g\n", o.SigY)
	io.Ff(&b, "  Hiso: %g\n", o.Hiso)
	io.Ff(&b, "  Hkin: %g\n", o.Hkin)
	return b.String()
}

// MarshalJSON returns the structured report of the parameters
func (o *Hardening) MarshalJSON() ([]byte, error) {
	return json.Marshal(report{
		Name: o.Tag,
		Type: "HardeningMaterial",
		E:    o.E,
		Fy:   o.SigY,
		Hiso: o.Hiso,
		Hkin: o.Hkin,
	})
}

// Json returns the structured report as a string
func (o *Hardening) Json() string {
	b, err := o.MarshalJSON()
	if err != nil {
		return ""
	}
	return string(b)
}
