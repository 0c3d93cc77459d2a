// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import (
	"errors"
	"fmt"
)

// PrmKind identifies a parameter of the hardening model that can be updated or differentiated
//  Note: the integer values are the ids handed to the parameter registry
type PrmKind int

const (
	PrmNone PrmKind = iota // no active parameter
	PrmSigY                // σy: yield stress
	PrmE                   // E: Young's modulus
	PrmHkin                // Hkin: kinematic hardening modulus
	PrmHiso                // Hiso: isotropic hardening modulus
)

// prmAliases maps the recognised names to parameter kinds
var prmAliases = map[string]PrmKind{
	"sigmaY": PrmSigY,
	"fy":     PrmSigY,
	"Fy":     PrmSigY,
	"E":      PrmE,
	"H_kin":  PrmHkin,
	"Hkin":   PrmHkin,
	"H_iso":  PrmHiso,
	"Hiso":   PrmHiso,
}

// ErrUnknownParam is returned for unrecognised parameter names or ids
var ErrUnknownParam = errors.New("unknown parameter")

// ErrTransfer is returned when the channel fails to send or receive a state record
var ErrTransfer = errors.New("transfer failed")

// ParsePrmKind resolves a parameter name (or alias) to its kind
func ParsePrmKind(name string) (PrmKind, error) {
	if k, ok := prmAliases[name]; ok {
		return k, nil
	}
	return PrmNone, fmt.Errorf("%w: name %q is not one of sigmaY|fy|Fy, E, H_kin|Hkin, H_iso|Hiso", ErrUnknownParam, name)
}

// String returns the canonical name of the parameter
func (o PrmKind) String() string {
	switch o {
	case PrmNone:
		return "none"
	case PrmSigY:
		return "sigmaY"
	case PrmE:
		return "E"
	case PrmHkin:
		return "Hkin"
	case PrmHiso:
		return "Hiso"
	}
	return "invalid"
}

// valid tells whether the kind is one of the recognised ids (including PrmNone)
func (o PrmKind) valid() bool {
	return o >= PrmNone && o <= PrmHiso
}

// seeds returns the explicit derivatives {dσy, dE, dHkin, dHiso} w.r.t the active parameter
func (o PrmKind) seeds() (dσy, dE, dHkin, dHiso float64) {
	switch o {
	case PrmSigY:
		dσy = 1
	case PrmE:
		dE = 1
	case PrmHkin:
		dHkin = 1
	case PrmHiso:
		dHiso = 1
	}
	return
}

// Status converts an error into the integer status convention of the host
//   0 -- success
//  -1 -- unrecognised parameter name or id
//  -2 -- transfer failure
//  -3 -- any other failure
func Status(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUnknownParam):
		return -1
	case errors.Is(err, ErrTransfer):
		return -2
	}
	return -3
}
