// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import "github.com/charmbracelet/lipgloss"

// styles of tables
var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")).Align(lipgloss.Right)
	CellStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Align(lipgloss.Right)
	LoadingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Align(lipgloss.Right)
)

// GetLabel returns the plain text label corresponding to key
func GetLabel(key string) string {
	switch key {
	case "eps":
		return "ε"
	case "sig":
		return "σ"
	case "epsp":
		return "εp"
	case "alp":
		return "α"
	}
	return key
}

// GetTexLabel returns the TeX label corresponding to key
func GetTexLabel(key, unit string) string {
	l := "$"
	switch key {
	case "step":
		l += "\\mathrm{step}"
	case "eps":
		l += "\\varepsilon"
	case "sig":
		l += "\\sigma"
	case "D":
		l += "D"
	case "epsp":
		l += "\\varepsilon^p"
	case "alp":
		l += "\\alpha"
	default:
		l += key
	}
	if unit != "" {
		l += "\\;" + unit
	}
	l += "$"
	return l
}
