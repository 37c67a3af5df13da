// Copyright 2025 The EngiVault Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package duct

import (
	"math"

	"github.com/Luqman-Ismat/engivault-api-sub003/gas"
	"github.com/Luqman-Ismat/engivault-api-sub003/sonic"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// FannoFld returns the friction parameter 4・f・Lmax/D of the fanno line;
// i.e. the non-dimensional duct length needed to accelerate (or decelerate)
// the flow from Mach number M to the sonic section
//
//	fld(M) = (1-M²)/(γ・M²) + (γ+1)/(2・γ)・ln[ (γ+1)・M² / (2+(γ-1)・M²) ]
func FannoFld(M, γ float64) float64 {
	M2 := M * M
	return (1.0-M2)/(γ*M2) + (γ+1.0)/(2.0*γ)*math.Log((γ+1.0)*M2/(2.0+(γ-1.0)*M2))
}

// FannoTratio returns T/T* of the fanno line
func FannoTratio(M, γ float64) float64 {
	return (γ + 1.0) / (2.0 + (γ-1.0)*M*M)
}

// FannoPratio returns P/P* of the fanno line
func FannoPratio(M, γ float64) float64 {
	return math.Sqrt(FannoTratio(M, γ)) / M
}

// FannoVratio returns v/v* of the fanno line
func FannoVratio(M, γ float64) float64 {
	return M * math.Sqrt(FannoTratio(M, γ))
}

// FannoP0ratio returns P0/P0* of the fanno line
func FannoP0ratio(M, γ float64) float64 {
	r := (2.0 + (γ-1.0)*M*M) / (γ + 1.0)
	return math.Pow(r, (γ+1.0)/(2.0*(γ-1.0))) / M
}

// Fanno marches an adiabatic flow with wall friction along a constant-area
// duct. Only the subsonic branch is handled: friction drives the Mach number
// up towards unity, so M and v grow monotonically along the duct while P, T
// and ρ fall. When the duct is longer than Lmax the flow is choked: the march
// stops at the sonic section and the result is flagged, not failed.
type Fanno struct {

	// input
	S1   *gas.State // inlet state
	L    float64    // duct length [m]
	D    float64    // internal diameter [m]
	Fric float64    // Darcy friction factor
	Gam  float64    // specific heat ratio
	Mw   float64    // molecular weight [kg/kmol]
	Nsta int        // number of stations sampled along the duct

	// derived
	Fld1 float64 // friction parameter 4・f・Lmax/D at the inlet
	Lmax float64 // distance from the inlet to the sonic section [m]
}

// FannoResult holds the sampled states along the duct
type FannoResult struct {
	States   []*gas.State `json:"states"`   // state at each station
	X        []float64    `json:"x"`        // station positions from the inlet [m]
	Lmax     float64      `json:"lmax"`     // distance from the inlet to the sonic section [m]
	Choked   bool         `json:"choked"`   // duct longer than Lmax; march clamped at the sonic section
	Warnings []*Warning   `json:"warnings"` // advisory notes
}

// Init checks the input and computes the sonic-limit quantities.
// nsta = 0 selects the default number of stations.
func (o *Fanno) Init(s1 *gas.State, L, D, f, γ, Mw float64, nsta int) (err error) {
	if s1 == nil {
		return chk.Err("fanno marcher requires an inlet state")
	}
	if s1.Mach >= 1 {
		return chk.Err("fanno marcher requires a subsonic inlet: M1=%g ≥ 1", s1.Mach)
	}
	if s1.Mach <= 0 || s1.P <= 0 || s1.T <= 0 || s1.Rho <= 0 || s1.V <= 0 {
		return chk.Err("fanno marcher requires a moving inlet state with positive P, T, ρ and v: %+v", s1)
	}
	if L <= 0 || D <= 0 || f <= 0 {
		return chk.Err("all input parameters must be positive")
	}
	if γ <= 1 {
		return chk.Err("fanno marcher requires γ=%g greater than 1", γ)
	}
	if Mw <= 0 {
		return chk.Err("fanno marcher requires a positive molecular weight: Mw=%g", Mw)
	}
	if nsta == 0 {
		nsta = defNsta
	}
	if nsta < 2 {
		return chk.Err("at least 2 stations are required: nsta=%d", nsta)
	}
	o.S1, o.L, o.D, o.Fric, o.Gam, o.Mw, o.Nsta = s1, L, D, f, γ, Mw, nsta
	o.Fld1 = FannoFld(s1.Mach, γ)
	o.Lmax = o.Fld1 * D / (4.0 * f)
	return
}

// March samples the flow at Nsta stations uniformly spaced between the inlet
// and min(L, Lmax). The local Mach number at each station inverts the
// friction parameter with bounded bisection; the remaining properties follow
// from the fanno ratios anchored at the inlet state, so mass flux is
// conserved exactly along the samples.
func (o *Fanno) March() (res *FannoResult, err error) {
	res = &FannoResult{Lmax: o.Lmax}
	if o.S1.Mach > 0.9 {
		res.Warnings = append(res.Warnings, newWarning(WarnNearSonic, "inlet Mach number %g is close to unity; the duct chokes after %g [m]", o.S1.Mach, o.Lmax))
	}
	Lend := o.L
	if o.L >= o.Lmax {
		Lend = o.Lmax
		res.Choked = true
		res.Warnings = append(res.Warnings, newWarning(WarnChoked, "duct length L=%g [m] is beyond Lmax=%g [m]; flow is choked at the exit", o.L, o.Lmax))
	}
	res.X = utl.LinSpace(0, Lend, o.Nsta)
	res.States = make([]*gas.State, o.Nsta)

	M := o.S1.Mach
	for i, x := range res.X {

		// inlet and sonic stations are known without inversion
		switch {
		case i == 0:
			s := *o.S1
			res.States[i] = &s
			continue
		case res.Choked && i == o.Nsta-1:
			M = 1.0
		default:
			rem := o.Fld1 - 4.0*o.Fric*x/o.D
			M, err = bisect(func(m float64) float64 { return FannoFld(m, o.Gam) - rem }, M, 1.0)
			if err != nil {
				return nil, chk.Err("fanno inversion at x=%g [m] failed: %v", x, err)
			}
		}
		res.States[i] = o.stateAt(M)
	}
	return
}

// stateAt recovers the full state at Mach number M from the inlet anchors
func (o *Fanno) stateAt(M float64) *gas.State {
	M1 := o.S1.Mach
	vr := FannoVratio(M, o.Gam) / FannoVratio(M1, o.Gam)
	return &gas.State{
		Mach: M,
		T:    o.S1.T0 * sonic.IsenTratio(M, o.Gam),
		P:    o.S1.P * FannoPratio(M, o.Gam) / FannoPratio(M1, o.Gam),
		Rho:  o.S1.Rho / vr,
		V:    o.S1.V * vr,
		P0:   o.S1.P0 * FannoP0ratio(M, o.Gam) / FannoP0ratio(M1, o.Gam),
		T0:   o.S1.T0,
	}
}
