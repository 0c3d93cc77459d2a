// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/epsolid/hardening/mdl/sld"
	"gopkg.in/yaml.v3"
)

// readFile reads file; the panic of io.ReadFile on a missing file is returned as an error
func readFile(fn string) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, chk.Err("cannot read file %q:\n%v", fn, r)
		}
	}()
	b = io.ReadFile(fn)
	return
}

// ReadPath reads a strain path from a JSON file or, if the extension is .yaml or .yml, a YAML file
func ReadPath(fn string) (pth *sld.Path, err error) {
	b, err := readFile(fn)
	if err != nil {
		return nil, err
	}
	pth = new(sld.Path)
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, pth)
	default:
		err = json.Unmarshal(b, pth)
	}
	if err != nil {
		return nil, chk.Err("cannot decode path file %q:\n%v", fn, err)
	}
	if len(pth.Eps) < 1 {
		return nil, chk.Err("path file %q has no strains", fn)
	}
	return
}
