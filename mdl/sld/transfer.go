// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import (
	"fmt"

	"github.com/cpmech/gosl/io"
)

// RecordSize is the number of slots in the state record sent through a Channel
//  [tag, E, σy, Hiso, Hkin, reserved, εp_c, α_c, ε, σ, D]
const RecordSize = 11

// Logger prints diagnostic messages
type Logger func(msg string, prm ...interface{})

// DefaultLogger prints diagnostics in red to the standard output
var DefaultLogger Logger = io.PfRed

// Quiet discards diagnostics
func Quiet(msg string, prm ...interface{}) {}

// Channel moves numeric records between processes
//  Note: the channel does not synchronise with concurrent mutation of the material
type Channel interface {
	SendVector(dbTag, commitTag int, data []float64) error // sends data
	RecvVector(dbTag, commitTag int, data []float64) error // receives into data; len(data) is the expected size
}

// Pack writes parameters, committed history and trial state into a new record
func (o *Hardening) Pack() (data []float64) {
	data = make([]float64, RecordSize)
	data[0] = float64(o.Tag)
	data[1] = o.E
	data[2] = o.SigY
	data[3] = o.Hiso
	data[4] = o.Hkin
	data[6] = o.C.EpsP
	data[7] = o.C.Alp
	data[8] = o.T.Eps
	data[9] = o.T.Sig
	data[10] = o.T.D
	return
}

// Unpack reads a record written by Pack
//  Note: the trial history is set equal to the received committed history
func (o *Hardening) Unpack(data []float64) error {
	if len(data) != RecordSize {
		return fmt.Errorf("%w: record has %d slots; %d are required", ErrTransfer, len(data), RecordSize)
	}
	o.Tag = int(data[0])
	o.E = data[1]
	o.SigY = data[2]
	o.Hiso = data[3]
	o.Hkin = data[4]
	o.C.EpsP = data[6]
	o.C.Alp = data[7]
	o.T.Eps = data[8]
	o.T.Sig = data[9]
	o.T.D = data[10]
	o.T.History.Set(&o.C)
	return nil
}

// SendSelf sends this material through the channel
func (o *Hardening) SendSelf(commitTag int, ch Channel) error {
	err := ch.SendVector(o.DbTag, commitTag, o.Pack())
	if err != nil {
		o.log()("Hardening.SendSelf: failed to send data: %v\n", err)
		return fmt.Errorf("%w: %v", ErrTransfer, err)
	}
	return nil
}

// RecvSelf receives this material from the channel
//  Note: on failure, E and Tag are zeroed so that a half-received material is not used
func (o *Hardening) RecvSelf(commitTag int, ch Channel) error {
	data := make([]float64, RecordSize)
	err := ch.RecvVector(o.DbTag, commitTag, data)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrTransfer, err)
	} else {
		err = o.Unpack(data)
	}
	if err != nil {
		o.log()("Hardening.RecvSelf: failed to receive data: %v\n", err)
		o.E = 0
		o.Tag = 0
	}
	return err
}

// log returns the logger
func (o *Hardening) log() Logger {
	if o.Log == nil {
		return DefaultLogger
	}
	return o.Log
}
