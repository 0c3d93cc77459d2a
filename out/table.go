// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cpmech/gosl/io"
	"github.com/epsolid/hardening/mdl/sld"
)

// column width
const colw = 14

// row renders one row of a table
func row(sty lipgloss.Style, cells ...string) string {
	rendered := make([]string, len(cells))
	for i, c := range cells {
		rendered[i] = sty.Width(colw).Render(c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// Table returns a table with all results; plastic steps are highlighted
func Table(res []sld.Result) string {
	var b strings.Builder
	hdr := make([]string, len(Keys))
	for i, key := range Keys {
		hdr[i] = GetLabel(key)
	}
	b.WriteString(row(HeaderStyle, hdr...) + "\n")
	for i, r := range res {
		sty := CellStyle
		if r.Loading {
			sty = LoadingStyle
		}
		b.WriteString(row(sty, io.Sf("%d", i), io.Sf("%.6g", r.Eps), io.Sf("%.6g", r.Sig),
			io.Sf("%.6g", r.D), io.Sf("%.6g", r.EpsP), io.Sf("%.6g", r.Alp)) + "\n")
	}
	return b.String()
}

// SensTable returns a table with the stress sensitivities at each step
//  names -- names of parameters
//  grads -- grads[step][gradIndex]
func SensTable(names []string, grads [][]float64) string {
	var b strings.Builder
	hdr := []string{"step"}
	for _, name := range names {
		hdr = append(hdr, "dσ/d"+name)
	}
	b.WriteString(row(HeaderStyle, hdr...) + "\n")
	for i, g := range grads {
		cells := []string{io.Sf("%d", i)}
		for _, v := range g {
			cells = append(cells, io.Sf("%.6g", v))
		}
		b.WriteString(row(CellStyle, cells...) + "\n")
	}
	return b.String()
}
