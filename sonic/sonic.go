// Copyright 2025 The EngiVault Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sonic implements speed of sound models and Mach number relations
package sonic

import (
	"math"

	"github.com/Luqman-Ismat/engivault-api-sub003/gas"
	"github.com/cpmech/gosl/chk"
)

// Isothermal computes the isothermal speed of sound
//
//	a = sqrt(Z・R・T / Mw)
//
//	Input:
//	  Z  -- compressibility factor
//	  T  -- temperature [K]
//	  Mw -- molecular weight [kg/kmol]
//	Output:
//	  a -- speed of sound [m/s]
func Isothermal(Z, T, Mw float64) (a float64, err error) {
	if Z <= 0 || T <= 0 || Mw <= 0 {
		return 0, chk.Err("isothermal sound speed requires positive arguments: Z=%g, T=%g [K], Mw=%g [kg/kmol]", Z, T, Mw)
	}
	a = math.Sqrt(Z * gas.UniversalR * T / Mw)
	return
}

// Adiabatic computes the adiabatic speed of sound
//
//	a = sqrt(γ・Z・R・T / Mw)
func Adiabatic(γ, Z, T, Mw float64) (a float64, err error) {
	if γ <= 1 {
		return 0, chk.Err("adiabatic sound speed requires γ=%g greater than 1", γ)
	}
	if Z <= 0 || T <= 0 || Mw <= 0 {
		return 0, chk.Err("adiabatic sound speed requires positive arguments: Z=%g, T=%g [K], Mw=%g [kg/kmol]", Z, T, Mw)
	}
	a = math.Sqrt(γ * Z * gas.UniversalR * T / Mw)
	return
}

// MachNumber computes M = v / a
//
//	Input:
//	  v -- bulk velocity [m/s]
//	  a -- speed of sound [m/s]
func MachNumber(v, a float64) (M float64, err error) {
	if a <= 0 {
		return 0, chk.Err("mach number requires a positive sound speed: a=%g [m/s]", a)
	}
	if v < 0 {
		return 0, chk.Err("mach number requires a non-negative velocity: v=%g [m/s]", v)
	}
	M = v / a
	return
}
