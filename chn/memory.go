// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package chn implements channels to move numeric records between processes
package chn

import "github.com/cpmech/gosl/chk"

// key identifies a record
type key struct {
	dbTag     int
	commitTag int
}

// Memory implements an in-process channel; records are stored by (dbTag, commitTag)
//  Note: Memory is not safe for concurrent use
type Memory struct {
	Fail bool // simulates a broken transport: all operations fail

	data map[key][]float64
}

// NewMemory returns a new in-process channel
func NewMemory() *Memory {
	return &Memory{data: make(map[key][]float64)}
}

// SendVector stores a copy of data
func (o *Memory) SendVector(dbTag, commitTag int, data []float64) error {
	if o.Fail {
		return chk.Err("memory channel: cannot send record (%d,%d)", dbTag, commitTag)
	}
	if o.data == nil {
		o.data = make(map[key][]float64)
	}
	o.data[key{dbTag, commitTag}] = append([]float64{}, data...)
	return nil
}

// RecvVector copies the stored record into data
func (o *Memory) RecvVector(dbTag, commitTag int, data []float64) error {
	if o.Fail {
		return chk.Err("memory channel: cannot receive record (%d,%d)", dbTag, commitTag)
	}
	rec, ok := o.data[key{dbTag, commitTag}]
	if !ok {
		return chk.Err("memory channel: record (%d,%d) is not available", dbTag, commitTag)
	}
	if len(rec) != len(data) {
		return chk.Err("memory channel: record (%d,%d) has %d values; %d were requested", dbTag, commitTag, len(rec), len(data))
	}
	copy(data, rec)
	return nil
}

// Len returns the number of stored records
func (o *Memory) Len() int {
	return len(o.data)
}
