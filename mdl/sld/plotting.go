// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import "github.com/cpmech/gosl/plt"

// Plotter plots stress-strain results
type Plotter struct {
	DirOut string // output directory
	FnKey  string // filename key (without extension)
	Clr    string // colour of curve
	Mrk    string // marker
}

// Plot plots σ versus ε and saves figure
func (o *Plotter) Plot(res []Result) {
	if o.Clr == "" {
		o.Clr = "r"
	}
	if o.Mrk == "" {
		o.Mrk = "."
	}
	ε, σ := Curves(res)
	plt.Reset(false, nil)
	plt.Plot(ε, σ, &plt.A{C: o.Clr, M: o.Mrk, Ls: "-"})
	plt.Gll("$\\varepsilon$", "$\\sigma$", nil)
	plt.Save(o.DirOut, o.FnKey)
}

// Curves returns the strain and stress series of results
func Curves(res []Result) (ε, σ []float64) {
	ε = make([]float64, len(res))
	σ = make([]float64, len(res))
	for i, r := range res {
		ε[i] = r.Eps
		σ[i] = r.Sig
	}
	return
}
