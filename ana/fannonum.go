// Copyright 2025 The EngiVault Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/ode"
)

// FannoNumerical integrates the fanno line ODE for the Mach number along a
// duct, independently of the closed-form friction parameter. With y := M²
// and the friction coordinate ξ := 4・f・x/D:
//
//	dy/dξ = γ・y²・(1 + (γ-1)/2・y) / (1 - y)
//
// The equation is singular at y = 1, so the integration must stop short of
// the sonic section.
type FannoNumerical struct {
	Gam float64     // specific heat ratio
	sol *ode.Solver // ODE solver
}

// Init initialises the solver
func (o *FannoNumerical) Init(γ float64) {
	o.Gam = γ
	β := (γ - 1.0) / 2.0
	fcn := func(f la.Vector, dξ, ξ float64, y la.Vector) {
		u := y[0]
		f[0] = o.Gam * u * u * (1.0 + β*u) / (1.0 - u)
	}
	jac := func(dfdy *la.Triplet, dξ, ξ float64, y la.Vector) {
		if dfdy.Max() == 0 {
			dfdy.Init(1, 1, 1)
		}
		u := y[0]
		J := o.Gam * u * ((2.0+3.0*β*u)*(1.0-u) + u*(1.0+β*u)) / ((1.0 - u) * (1.0 - u))
		dfdy.Start()
		dfdy.Put(0, 0, J)
	}
	conf := ode.NewConfig("radau5", "", nil)
	conf.SetTols(1e-12, 1e-9)
	o.sol = ode.NewSolver(1, conf, fcn, jac, nil)
}

// MachAfter computes the Mach number after marching a friction length
// ξ = 4・f・Δx/D from an initial subsonic Mach number M0
func (o *FannoNumerical) MachAfter(M0, ξ float64) (M float64, err error) {
	if M0 <= 0 || M0 >= 1 {
		return 0, chk.Err("numerical fanno integration requires a subsonic start: M0=%g", M0)
	}
	if ξ < 0 {
		return 0, chk.Err("numerical fanno integration requires a non-negative friction length: ξ=%g", ξ)
	}
	if ξ == 0 {
		return M0, nil
	}
	y := la.Vector{M0 * M0}
	o.sol.Solve(y, 0, ξ)
	M = math.Sqrt(y[0])
	return
}
