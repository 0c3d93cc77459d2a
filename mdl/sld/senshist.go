// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import "github.com/cpmech/gosl/utl"

// indices of rows in SensHist
const (
	SensEpsP = 0 // row of dεp/dθ
	SensAlp  = 1 // row of dα/dθ
)

// SensHist holds the sensitivities of the committed history variables; one column per gradient
//  Resize contract:
//   1) Ensure(n) grows the number of columns to n; existing columns are preserved and
//      new columns are zero; the container never shrinks
//   2) reading outside the allocated columns returns zero
//   3) values are running totals; only Zero (i.e. RevertToStart) resets them
type SensHist struct {
	V [][]float64 // [2][ncols] values
}

// Cols returns the number of allocated columns
func (o *SensHist) Cols() int {
	if len(o.V) == 0 {
		return 0
	}
	return len(o.V[0])
}

// Ensure makes sure that at least n columns are allocated
func (o *SensHist) Ensure(n int) {
	ncols := o.Cols()
	if n <= ncols {
		return
	}
	v := utl.Alloc(2, n)
	for i := 0; i < len(o.V); i++ {
		copy(v[i], o.V[i])
	}
	o.V = v
}

// Get returns the value at (row, col) or zero if col is not allocated
func (o *SensHist) Get(row, col int) float64 {
	if col < 0 || col >= o.Cols() {
		return 0
	}
	return o.V[row][col]
}

// Add accumulates dεp and dα into column col; it returns false if col is not allocated
func (o *SensHist) Add(col int, dεp, dα float64) bool {
	if col < 0 || col >= o.Cols() {
		return false
	}
	o.V[SensEpsP][col] += dεp
	o.V[SensAlp][col] += dα
	return true
}

// Zero sets all values to zero keeping the allocation
func (o *SensHist) Zero() {
	for i := 0; i < len(o.V); i++ {
		for j := 0; j < len(o.V[i]); j++ {
			o.V[i][j] = 0
		}
	}
}

// Free releases the allocation
func (o *SensHist) Free() {
	o.V = nil
}
