// Copyright 2025 The EngiVault Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package duct

import (
	"math"

	"github.com/Luqman-Ismat/engivault-api-sub003/gas"
	"github.com/Luqman-Ismat/engivault-api-sub003/sonic"
	"github.com/cpmech/gosl/chk"
)

// PressureDrop computes the outlet pressure of a duct segment passing a fixed
// mass flow of compressible gas
//
//	isothermal:  P1² - P2² = G²・(Z・R・T/Mw)・(4・f・L/D)
//	adiabatic:   P1² - P2² = G²・(γ・Z・R・T/Mw)・(4・f・L/D)
//
// with G = mdot/(π・D²/4). When the pressure drop demanded by the friction
// term reaches or exceeds the inlet pressure the segment cannot pass mdot:
// the flow is choked, P2 is zero and choked is true. Choking is not an error.
//
//	Input:
//	  model -- thermodynamic path (Isothermal or Adiabatic)
//	  P1    -- inlet pressure [Pa]
//	  mdot  -- mass flow rate [kg/s]
//	  L     -- segment length [m]
//	  D     -- internal diameter [m]
//	  f     -- Darcy friction factor
//	  Z     -- compressibility factor
//	  T     -- flowing temperature [K]
//	  Mw    -- molecular weight [kg/kmol]
//	  γ     -- specific heat ratio; ignored by the isothermal model
func PressureDrop(model FlowModel, P1, mdot, L, D, f, Z, T, Mw, γ float64) (P2 float64, choked bool, err error) {
	if P1 <= 0 || mdot <= 0 || L <= 0 || D <= 0 {
		err = chk.Err("all input parameters must be positive")
		return
	}
	if f <= 0 || Z <= 0 || T <= 0 || Mw <= 0 {
		err = chk.Err("all physical parameters must be positive")
		return
	}
	c2 := Z * gas.UniversalR * T / Mw
	switch model {
	case Isothermal:
	case Adiabatic:
		if γ <= 1 {
			err = chk.Err("adiabatic model requires γ=%g greater than 1", γ)
			return
		}
		c2 *= γ
	default:
		err = chk.Err("flow model %q is not available; options are \"isothermal\" and \"adiabatic\"", model)
		return
	}
	G := mdot / (math.Pi * D * D / 4.0)
	drop := G * G * c2 * 4.0 * f * L / D
	if drop >= P1*P1 {
		choked = true
		return
	}
	P2 = math.Sqrt(P1*P1 - drop)
	return
}

// FlowInput holds a one-shot pressure drop query
type FlowInput struct {
	Gas   *gas.Composition // flowing gas properties
	Pipe  *Pipe            // segment geometry
	Model FlowModel        // thermodynamic path
	Pin   float64          // inlet pressure [Pa]
	Mdot  float64          // mass flow rate [kg/s]
	T     float64          // flowing temperature [K]
}

// FlowResult holds the outcome of a one-shot pressure drop query
type FlowResult struct {
	Pout     float64    `json:"pout"`     // outlet pressure [Pa]; zero when choked
	DeltaP   float64    `json:"deltap"`   // pressure drop [Pa]
	DropPct  float64    `json:"droppct"`  // pressure drop as a percentage of the inlet pressure
	Choked   bool       `json:"choked"`   // segment cannot pass the requested flow
	Vin      float64    `json:"vin"`      // inlet bulk velocity [m/s]
	Mach     float64    `json:"mach"`     // inlet Mach number
	Sonic    float64    `json:"sonic"`    // speed of sound used [m/s]
	Re       float64    `json:"re"`       // Reynolds number
	Fric     float64    `json:"fric"`     // Darcy friction factor
	Gam      float64    `json:"gam"`      // specific heat ratio used; zero for isothermal runs
	Zed      float64    `json:"zed"`      // compressibility factor used
	GamEst   bool       `json:"gamest"`   // γ came from the built-in catalog
	ZedEst   bool       `json:"zedest"`   // Z was estimated from P, T and Mw
	Warnings []*Warning `json:"warnings"` // advisory notes
}

// CalcFlow runs a complete pressure drop calculation: it resolves γ and Z
// from the gas record (estimating what is absent), computes the Reynolds
// number and the friction factor from the pipe roughness, solves for the
// outlet pressure and fills the inlet velocity and Mach number.
func CalcFlow(in *FlowInput) (res *FlowResult, err error) {

	// validate input
	if in == nil || in.Gas == nil || in.Pipe == nil {
		return nil, chk.Err("flow input must define the gas and the pipe segment")
	}
	err = in.Gas.Validate()
	if err != nil {
		return
	}
	err = in.Pipe.Validate()
	if err != nil {
		return
	}
	if in.Pin <= 0 || in.Mdot <= 0 || in.T <= 0 {
		return nil, chk.Err("all input parameters must be positive")
	}
	res = new(FlowResult)

	// resolve γ
	γ := in.Gas.Gam
	if in.Model == Adiabatic && γ == 0 {
		var found bool
		γ, found = gas.DefaultGamma(in.Gas.Name)
		if !found {
			return nil, chk.Err("gas %q: γ is not given and the name is not in the catalog", in.Gas.Name)
		}
		res.GamEst = true
		res.Warnings = append(res.Warnings, newWarning(WarnGammaEstimated, "γ=%g estimated from the catalog entry for %q", γ, in.Gas.Name))
	}
	if in.Model == Adiabatic {
		res.Gam = γ
	}

	// resolve Z
	Z := in.Gas.Zed
	if Z == 0 {
		Z, err = gas.EstimateZfactor(in.Pin, in.T, in.Gas.Mw)
		if err != nil {
			return nil, err
		}
		res.ZedEst = true
		res.Warnings = append(res.Warnings, newWarning(WarnZedEstimated, "Z=%g estimated at P=%g [Pa] and T=%g [K]", Z, in.Pin, in.T))
	}
	res.Zed = Z
	if Z < 0.8 || Z > 1.2 {
		res.Warnings = append(res.Warnings, newWarning(WarnZedUnusual, "Z=%g is outside the usual range [0.8, 1.2]", Z))
	}

	// friction factor
	G := in.Mdot / in.Pipe.Area()
	res.Re, err = ReynoldsNumber(G, in.Pipe.D, in.Gas.Mu)
	if err != nil {
		return nil, err
	}
	res.Fric, err = FrictionFactor(res.Re, in.Pipe.Rough/in.Pipe.D)
	if err != nil {
		return nil, err
	}

	// outlet pressure
	res.Pout, res.Choked, err = PressureDrop(in.Model, in.Pin, in.Mdot, in.Pipe.L, in.Pipe.D, res.Fric, Z, in.T, in.Gas.Mw, γ)
	if err != nil {
		return nil, err
	}
	res.DeltaP = in.Pin - res.Pout
	res.DropPct = 100.0 * res.DeltaP / in.Pin
	if res.Choked {
		res.Warnings = append(res.Warnings, newWarning(WarnChoked, "required pressure drop exceeds the inlet pressure; flow is choked"))
	}

	// inlet velocity and Mach number
	ρ1 := in.Pin * in.Gas.Mw / (Z * gas.UniversalR * in.T)
	res.Vin = G / ρ1
	if in.Model == Adiabatic {
		res.Sonic, err = sonic.Adiabatic(γ, Z, in.T, in.Gas.Mw)
	} else {
		res.Sonic, err = sonic.Isothermal(Z, in.T, in.Gas.Mw)
	}
	if err != nil {
		return nil, err
	}
	res.Mach, err = sonic.MachNumber(res.Vin, res.Sonic)
	if err != nil {
		return nil, err
	}
	if res.Mach > 0.3 {
		res.Warnings = append(res.Warnings, newWarning(WarnHighMach, "inlet Mach number %g exceeds 0.3; compressibility effects are strong", res.Mach))
	}
	return
}
