// Copyright 2025 The EngiVault Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gas implements property records and estimators for single-species gases
package gas

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// constants
const (
	UniversalR = 8314.46 // universal gas constant [J/(kmol・K)]
	MwAir      = 28.97   // molecular weight of standard air [kg/kmol]
)

// Composition holds the properties of a single gas species. Gam and Zed are
// optional; zero means absent and a downstream calculation may estimate them.
type Composition struct {
	Name string  `json:"name"` // gas name; e.g. "air", "methane"
	Rho  float64 `json:"rho"`  // density at reference conditions [kg/m³]
	Mu   float64 `json:"mu"`   // dynamic viscosity [Pa・s]
	Mw   float64 `json:"mw"`   // molecular weight [kg/kmol]
	Gam  float64 `json:"gam"`  // specific heat ratio γ = cp/cv
	Zed  float64 `json:"zed"`  // compressibility factor Z
}

// Validate checks the composition data
func (o *Composition) Validate() (err error) {
	if o.Rho <= 0 || o.Mu <= 0 || o.Mw <= 0 {
		return chk.Err("gas %q: rho=%g [kg/m³], mu=%g [Pa・s] and mw=%g [kg/kmol] must all be positive", o.Name, o.Rho, o.Mu, o.Mw)
	}
	if o.Gam != 0 && o.Gam <= 1 {
		return chk.Err("gas %q: given γ=%g must be greater than 1", o.Name, o.Gam)
	}
	if o.Zed < 0 {
		return chk.Err("gas %q: given Z=%g must be positive when given", o.Name, o.Zed)
	}
	return
}

// String returns a one-line description of the composition
func (o *Composition) String() string {
	return io.Sf("{%q rho=%g mu=%g mw=%g gam=%g zed=%g}", o.Name, o.Rho, o.Mu, o.Mw, o.Gam, o.Zed)
}

// State holds the thermodynamic state of a flowing gas at one duct station
type State struct {
	P    float64 `json:"p"`    // static pressure [Pa]
	T    float64 `json:"t"`    // static temperature [K]
	Rho  float64 `json:"rho"`  // density [kg/m³]
	V    float64 `json:"v"`    // bulk velocity [m/s]
	Mach float64 `json:"mach"` // Mach number
	P0   float64 `json:"p0"`   // stagnation pressure [Pa]
	T0   float64 `json:"t0"`   // stagnation temperature [K]
}

// gammas holds specific heat ratios of common gases at ambient conditions
var gammas = map[string]float64{
	"air":             1.40,
	"nitrogen":        1.40,
	"oxygen":          1.40,
	"hydrogen":        1.41,
	"helium":          1.67,
	"argon":           1.67,
	"methane":         1.32,
	"ethane":          1.19,
	"propane":         1.13,
	"carbon dioxide":  1.29,
	"carbon monoxide": 1.40,
	"steam":           1.33,
	"ammonia":         1.31,
	"natural gas":     1.27,
}

// aliases maps alternative gas names to catalog entries
var aliases = map[string]string{
	"co2":   "carbon dioxide",
	"co":    "carbon monoxide",
	"n2":    "nitrogen",
	"o2":    "oxygen",
	"h2":    "hydrogen",
	"ch4":   "methane",
	"water": "steam",
}

// DefaultGamma returns the specific heat ratio of a named gas from the
// built-in catalog. found is false when the name is unknown.
func DefaultGamma(name string) (γ float64, found bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := aliases[key]; ok {
		key = alias
	}
	γ, found = gammas[key]
	return
}
