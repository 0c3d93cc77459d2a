// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/epsolid/hardening/mdl/sld"
	"github.com/guptarohit/asciigraph"
)

// PlotAscii returns an ascii graph of the stress at each step
func PlotAscii(res []sld.Result, height, width int) string {
	if len(res) == 0 {
		return ""
	}
	σ, _ := Get(res, "sig")
	return asciigraph.Plot(σ,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("σ vs step"),
	)
}
