// Copyright 2025 The EngiVault Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// EstimateZfactor estimates the compressibility factor of a gas from pressure,
// temperature and molecular weight. Standing's correlations give the
// pseudo-critical point from the gas gravity and Papay's expression gives Z
// from the pseudo-reduced coordinates:
//
//	gg  = Mw / MwAir
//	Tpc = (168 + 325・gg - 12.5・gg²) / 1.8                 [K]
//	Ppc = 6894.757・(677 + 15・gg - 37.5・gg²)              [Pa]
//	Z   = 1 - 3.52・Ppr/10^(0.9813・Tpr) + 0.274・Ppr²/10^(0.8157・Tpr)
//
// The estimate approaches 1 at low pressure and falls as pressure rises.
//
//	Input:
//	  P  -- absolute pressure [Pa]
//	  T  -- temperature [K]
//	  Mw -- molecular weight [kg/kmol]
func EstimateZfactor(P, T, Mw float64) (Z float64, err error) {
	if P <= 0 || T <= 0 || Mw <= 0 {
		return 0, chk.Err("z-factor estimate requires positive arguments: P=%g [Pa], T=%g [K], Mw=%g [kg/kmol]", P, T, Mw)
	}
	gg := Mw / MwAir
	Tpc := (168.0 + 325.0*gg - 12.5*gg*gg) / 1.8
	Ppc := 6894.757 * (677.0 + 15.0*gg - 37.5*gg*gg)
	Tpr := T / Tpc
	Ppr := P / Ppc
	Z = 1.0 - 3.52*Ppr/math.Pow(10.0, 0.9813*Tpr) + 0.274*Ppr*Ppr/math.Pow(10.0, 0.8157*Tpr)
	return
}
