// Copyright 2025 The EngiVault Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package duct

import (
	"math"

	"github.com/Luqman-Ismat/engivault-api-sub003/gas"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// bisection brackets for the rayleigh inversion
const (
	mFloor = 1e-12 // lower Mach bound on the subsonic branch
	mCap   = 1e3   // upper Mach bound on the supersonic branch
)

// RayleighT0ratio returns T0/T0* of the rayleigh line
//
//	θ(M) = (γ+1)・M²・(2+(γ-1)・M²) / (1+γ・M²)²
//
// θ grows towards 1 on the subsonic branch and falls towards 1 on the
// supersonic branch; heat addition therefore drives M towards unity from
// either side.
func RayleighT0ratio(M, γ float64) float64 {
	M2 := M * M
	d := 1.0 + γ*M2
	return (γ + 1.0) * M2 * (2.0 + (γ-1.0)*M2) / (d * d)
}

// RayleighTratio returns T/T* of the rayleigh line
func RayleighTratio(M, γ float64) float64 {
	M2 := M * M
	d := 1.0 + γ*M2
	return M2 * (γ + 1.0) * (γ + 1.0) / (d * d)
}

// RayleighPratio returns P/P* of the rayleigh line
func RayleighPratio(M, γ float64) float64 {
	return (γ + 1.0) / (1.0 + γ*M*M)
}

// RayleighVratio returns v/v* of the rayleigh line
func RayleighVratio(M, γ float64) float64 {
	M2 := M * M
	return (γ + 1.0) * M2 / (1.0 + γ*M2)
}

// RayleighP0ratio returns P0/P0* of the rayleigh line
func RayleighP0ratio(M, γ float64) float64 {
	return RayleighPratio(M, γ) * math.Pow((2.0+(γ-1.0)*M*M)/(γ+1.0), γ/(γ-1.0))
}

// Rayleigh marches a frictionless constant-area flow exchanging heat with the
// surroundings. Both branches are handled: heating drives the Mach number
// towards unity and cooling away from it. Heating beyond the choking limit
// Qmax clamps the march at the sonic section and flags the result; heat
// removal beyond what the branch admits is rejected during Init.
//
// Qdot and Qmax are heat-transfer rates per unit cross-sectional area of the
// duct [W/m²]; multiply by π・D²/4 (or use Mdot) to convert to watts.
type Rayleigh struct {

	// input
	S1   *gas.State // inlet state
	Qdot float64    // requested heat per unit cross-sectional area [W/m²]; negative removes heat
	D    float64    // internal diameter [m]
	Gam  float64    // specific heat ratio
	Mw   float64    // molecular weight [kg/kmol]
	Nsta int        // number of stations sampled along the duct

	// derived
	G    float64 // mass flux ρ・v [kg/(m²・s)]
	Cp   float64 // specific heat at constant pressure [J/(kg・K)]
	T0s  float64 // stagnation temperature at the sonic section T0* [K]
	Qmax float64 // heat addition that chokes the flow [W/m²]
	Mdot float64 // mass flow rate through the duct [kg/s]
}

// RayleighResult holds the sampled states along the heated duct
type RayleighResult struct {
	States   []*gas.State `json:"states"`   // state at each station
	Q        []float64    `json:"q"`        // cumulative heat per unit cross-section at each station [W/m²]
	Qmax     float64      `json:"qmax"`     // heat addition that would choke the flow [W/m²]
	Mdot     float64      `json:"mdot"`     // mass flow rate through the duct [kg/s]
	Choked   bool         `json:"choked"`   // requested heating reached Qmax; march clamped at the sonic section
	Warnings []*Warning   `json:"warnings"` // advisory notes
}

// Init checks the input, computes the choking quantities and rejects heat
// removal requests that have no solution on the inlet branch.
// nsta = 0 selects the default number of stations.
func (o *Rayleigh) Init(s1 *gas.State, Qdot, D, γ, Mw float64, nsta int) (err error) {
	if s1 == nil {
		return chk.Err("rayleigh marcher requires an inlet state")
	}
	if s1.Mach == 1 {
		return chk.Err("rayleigh marcher cannot start at the sonic point: M1=1")
	}
	if s1.Mach <= 0 || s1.P <= 0 || s1.T <= 0 || s1.Rho <= 0 || s1.V <= 0 {
		return chk.Err("rayleigh marcher requires a moving inlet state with positive P, T, ρ and v: %+v", s1)
	}
	if D <= 0 {
		return chk.Err("all input parameters must be positive")
	}
	if γ <= 1 {
		return chk.Err("rayleigh marcher requires γ=%g greater than 1", γ)
	}
	if Mw <= 0 {
		return chk.Err("rayleigh marcher requires a positive molecular weight: Mw=%g", Mw)
	}
	if nsta == 0 {
		nsta = defNsta
	}
	if nsta < 2 {
		return chk.Err("at least 2 stations are required: nsta=%d", nsta)
	}
	o.S1, o.Qdot, o.D, o.Gam, o.Mw, o.Nsta = s1, Qdot, D, γ, Mw, nsta
	o.G = s1.Rho * s1.V
	o.Cp = γ * gas.UniversalR / ((γ - 1.0) * Mw)
	o.T0s = s1.T0 / RayleighT0ratio(s1.Mach, γ)
	o.Qmax = o.G * o.Cp * (o.T0s - s1.T0)
	o.Mdot = o.G * math.Pi * D * D / 4.0

	// heat removal limits
	if Qdot < 0 {
		T0end := s1.T0 + Qdot/(o.G*o.Cp)
		if s1.Mach < 1 {
			if T0end <= 0 {
				return chk.Err("heat removal %g [W/m²] would exhaust the stagnation enthalpy: the stagnation temperature would reach %g [K]", Qdot, T0end)
			}
		} else if T0end/o.T0s < RayleighT0ratio(mCap, γ) {
			T0min := o.T0s * (γ*γ - 1.0) / (γ * γ)
			return chk.Err("heat removal %g [W/m²] is beyond the supersonic cooling limit: the stagnation temperature cannot drop below %g [K]", Qdot, T0min)
		}
	}
	return
}

// March samples the flow at Nsta stations uniformly spaced in cumulative
// heat. The local Mach number at each station inverts the stagnation
// temperature ratio with bounded bisection on the inlet branch; the remaining
// properties follow from the rayleigh ratios anchored at the inlet state, so
// mass flux is conserved exactly along the samples.
func (o *Rayleigh) March() (res *RayleighResult, err error) {
	res = &RayleighResult{Qmax: o.Qmax, Mdot: o.Mdot}
	if o.S1.Mach < 1 && o.S1.Mach > 0.9 && o.Qdot > 0 {
		res.Warnings = append(res.Warnings, newWarning(WarnNearSonic, "inlet Mach number %g is close to unity; the flow chokes after %g [W/m²]", o.S1.Mach, o.Qmax))
	}
	Qend := o.Qdot
	if o.Qdot >= o.Qmax {
		Qend = o.Qmax
		res.Choked = true
		res.Warnings = append(res.Warnings, newWarning(WarnChoked, "requested heat %g [W/m²] is beyond the choking limit Qmax=%g [W/m²]; march clamped at the sonic section", o.Qdot, o.Qmax))
	}
	res.Q = utl.LinSpace(0, Qend, o.Nsta)
	res.States = make([]*gas.State, o.Nsta)

	M := o.S1.Mach
	heating := o.Qdot > 0
	for i, q := range res.Q {
		T0i := o.S1.T0 + q/(o.G*o.Cp)

		// inlet and sonic stations are known without inversion
		switch {
		case i == 0:
			s := *o.S1
			res.States[i] = &s
			continue
		case res.Choked && i == o.Nsta-1:
			M = 1.0
		default:
			θ := T0i / o.T0s
			fn := func(m float64) float64 { return RayleighT0ratio(m, o.Gam) - θ }
			switch {
			case o.S1.Mach < 1 && heating:
				M, err = bisect(fn, M, 1.0)
			case o.S1.Mach < 1:
				M, err = bisect(fn, mFloor, M)
			case heating:
				M, err = bisect(fn, 1.0, M)
			default:
				M, err = bisect(fn, M, mCap)
			}
			if err != nil {
				return nil, chk.Err("rayleigh inversion at q=%g [W/m²] failed: %v", q, err)
			}
		}
		res.States[i] = o.stateAt(M, T0i)
	}
	return
}

// stateAt recovers the full state at Mach number M from the inlet anchors
func (o *Rayleigh) stateAt(M, T0 float64) *gas.State {
	M1 := o.S1.Mach
	vr := RayleighVratio(M, o.Gam) / RayleighVratio(M1, o.Gam)
	return &gas.State{
		Mach: M,
		T:    o.S1.T * RayleighTratio(M, o.Gam) / RayleighTratio(M1, o.Gam),
		P:    o.S1.P * RayleighPratio(M, o.Gam) / RayleighPratio(M1, o.Gam),
		Rho:  o.S1.Rho / vr,
		V:    o.S1.V * vr,
		P0:   o.S1.P0 * RayleighP0ratio(M, o.Gam) / RayleighP0ratio(M1, o.Gam),
		T0:   T0,
	}
}
