// Copyright 2025 The EngiVault Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package duct

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// ReynoldsNumber computes Re from the mass flux
//
//	Re = G・D / μ
//
//	Input:
//	  G  -- mass flux ρ・v [kg/(m²・s)]
//	  D  -- internal diameter [m]
//	  μ  -- dynamic viscosity [Pa・s]
func ReynoldsNumber(G, D, μ float64) (Re float64, err error) {
	if G <= 0 || D <= 0 || μ <= 0 {
		return 0, chk.Err("reynolds number requires positive arguments: G=%g [kg/(m²・s)], D=%g [m], μ=%g [Pa・s]", G, D, μ)
	}
	Re = G * D / μ
	return
}

// FrictionFactor computes the Darcy friction factor with Churchill's
// full-regime expression; the laminar limit 64/Re is recovered automatically
// and no regime branching is needed
//
//	f = 8・[ (8/Re)¹² + 1/(A+B)^1.5 ]^(1/12)
//	A = [ 2.457・ln(1/((7/Re)^0.9 + 0.27・ε/D)) ]¹⁶
//	B = (37530/Re)¹⁶
//
//	Input:
//	  Re       -- Reynolds number
//	  relRough -- relative roughness ε/D
func FrictionFactor(Re, relRough float64) (f float64, err error) {
	if Re <= 0 {
		return 0, chk.Err("friction factor requires a positive Reynolds number: Re=%g", Re)
	}
	if relRough < 0 {
		return 0, chk.Err("friction factor requires a non-negative relative roughness: ε/D=%g", relRough)
	}
	A := math.Pow(2.457*math.Log(1.0/(math.Pow(7.0/Re, 0.9)+0.27*relRough)), 16.0)
	B := math.Pow(37530.0/Re, 16.0)
	f = 8.0 * math.Pow(math.Pow(8.0/Re, 12.0)+1.0/math.Pow(A+B, 1.5), 1.0/12.0)
	return
}
