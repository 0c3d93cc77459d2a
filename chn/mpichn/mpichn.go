// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mpichn implements a channel between MPI processes
package mpichn

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/mpi"
)

// Mpi implements a channel between two MPI processes
//  Note: dbTag and commitTag are not sent; both processes must call Send/Recv in the same order
type Mpi struct {
	Comm *mpi.Communicator // communicator
	Peer int               // rank of the other process
}

// NewMpi returns a new channel to peer using the world communicator
func NewMpi(peer int) (o *Mpi, err error) {
	if !mpi.IsOn() {
		return nil, chk.Err("mpi channel: MPI is not running")
	}
	o = &Mpi{Comm: mpi.NewCommunicator(nil), Peer: peer}
	if peer < 0 || peer >= o.Comm.Size() || peer == o.Comm.Rank() {
		return nil, chk.Err("mpi channel: peer rank %d is invalid. size=%d rank=%d", peer, o.Comm.Size(), o.Comm.Rank())
	}
	return
}

// SendVector sends data to peer
func (o *Mpi) SendVector(dbTag, commitTag int, data []float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("mpi channel: send to %d failed: %v", o.Peer, r)
		}
	}()
	o.Comm.Send(data, o.Peer)
	return
}

// RecvVector receives data from peer
func (o *Mpi) RecvVector(dbTag, commitTag int, data []float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("mpi channel: receive from %d failed: %v", o.Peer, r)
		}
	}()
	o.Comm.Recv(data, o.Peer)
	return
}
