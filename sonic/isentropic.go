// Copyright 2025 The EngiVault Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sonic

import (
	"math"

	"github.com/Luqman-Ismat/engivault-api-sub003/gas"
	"github.com/cpmech/gosl/chk"
)

// IsenTratio returns the isentropic temperature ratio T/T0
//
//	T/T0 = 1 / (1 + (γ-1)/2・M²)
func IsenTratio(M, γ float64) float64 {
	return 1.0 / (1.0 + 0.5*(γ-1.0)*M*M)
}

// IsenPratio returns the isentropic pressure ratio P/P0
//
//	P/P0 = (T/T0)^(γ/(γ-1))
func IsenPratio(M, γ float64) float64 {
	return math.Pow(IsenTratio(M, γ), γ/(γ-1.0))
}

// IsenRratio returns the isentropic density ratio ρ/ρ0
//
//	ρ/ρ0 = (T/T0)^(1/(γ-1))
func IsenRratio(M, γ float64) float64 {
	return math.Pow(IsenTratio(M, γ), 1.0/(γ-1.0))
}

// StateAtMach builds the complete gas state at a given Mach number from
// stagnation conditions using the ideal-gas isentropic relations (Z = 1).
// At M = 0 the static values equal the stagnation values and V = 0.
//
//	Input:
//	  M  -- Mach number
//	  γ  -- specific heat ratio
//	  P0 -- stagnation pressure [Pa]
//	  T0 -- stagnation temperature [K]
//	  Mw -- molecular weight [kg/kmol]
func StateAtMach(M, γ, P0, T0, Mw float64) (s *gas.State, err error) {
	if M < 0 {
		return nil, chk.Err("state at mach requires a non-negative Mach number: M=%g", M)
	}
	if γ <= 1 {
		return nil, chk.Err("state at mach requires γ=%g greater than 1", γ)
	}
	if P0 <= 0 || T0 <= 0 || Mw <= 0 {
		return nil, chk.Err("state at mach requires positive stagnation conditions: P0=%g [Pa], T0=%g [K], Mw=%g [kg/kmol]", P0, T0, Mw)
	}
	s = &gas.State{Mach: M, P0: P0, T0: T0}
	s.T = T0 * IsenTratio(M, γ)
	s.P = P0 * IsenPratio(M, γ)
	s.Rho = s.P * Mw / (gas.UniversalR * s.T)
	if M > 0 {
		a, e := Adiabatic(γ, 1.0, s.T, Mw)
		if e != nil {
			return nil, e
		}
		s.V = M * a
	}
	return
}
