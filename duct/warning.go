// Copyright 2025 The EngiVault Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package duct

import (
	"github.com/cpmech/gosl/io"
)

// warning codes
const (
	WarnGammaEstimated = "gamma-estimated" // γ taken from the built-in catalog
	WarnZedEstimated   = "zed-estimated"   // Z estimated from P, T and Mw
	WarnZedUnusual     = "zed-unusual"     // Z outside the usual range
	WarnHighMach       = "high-mach"       // inlet Mach number above 0.3
	WarnNearSonic      = "near-sonic"      // inlet Mach number above 0.9
	WarnChoked         = "choked"          // flow reached the sonic limit
)

// Warning is an advisory note attached to a result. A warning never aborts a
// calculation; choking in particular is reported this way together with the
// Choked flag of the result.
type Warning struct {
	Code string `json:"code"` // stable identifier; e.g. "choked"
	Msg  string `json:"msg"`  // human-readable detail
}

// newWarning creates a warning with a formatted message
func newWarning(code, msg string, args ...interface{}) *Warning {
	return &Warning{Code: code, Msg: io.Sf(msg, args...)}
}
