// Copyright 2025 The EngiVault Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the post-processing of duct flow results: text
// reports, JSON saving and profile plots
package out

import (
	"bytes"
	"encoding/json"

	"github.com/Luqman-Ismat/engivault-api-sub003/duct"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// ReportFlow returns a fixed-width text report of one pressure drop result
func ReportFlow(desc string, in *duct.FlowInput, res *duct.FlowResult) string {
	l := io.Sf("%s\n", desc)
	l += io.Sf("  gas=%q model=%q d=%g [m] l=%g [m]\n", in.Gas.Name, in.Model, in.Pipe.D, in.Pipe.L)
	l += io.Sf("  %-22s%14.6e [Pa]\n", "inlet pressure", in.Pin)
	l += io.Sf("  %-22s%14.6e [Pa]\n", "outlet pressure", res.Pout)
	l += io.Sf("  %-22s%14.6e [Pa] (%.2f%%)\n", "pressure drop", res.DeltaP, res.DropPct)
	l += io.Sf("  %-22s%14.6f [m/s]\n", "inlet velocity", res.Vin)
	l += io.Sf("  %-22s%14.6f [m/s]\n", "speed of sound", res.Sonic)
	l += io.Sf("  %-22s%14.6f\n", "mach number", res.Mach)
	l += io.Sf("  %-22s%14.6e\n", "reynolds number", res.Re)
	l += io.Sf("  %-22s%14.6f\n", "friction factor", res.Fric)
	if res.Gam > 0 {
		l += io.Sf("  %-22s%14.6f (estimated=%v)\n", "γ", res.Gam, res.GamEst)
	}
	l += io.Sf("  %-22s%14.6f (estimated=%v)\n", "Z", res.Zed, res.ZedEst)
	l += io.Sf("  %-22s%v\n", "choked", res.Choked)
	for _, w := range res.Warnings {
		l += io.Sf("  warning %q: %s\n", w.Code, w.Msg)
	}
	return l
}

// ReportFanno returns a fixed-width station table of a fanno march
func ReportFanno(res *duct.FannoResult) string {
	l := io.Sf("fanno line: lmax=%g [m] choked=%v\n", res.Lmax, res.Choked)
	l += io.Sf("%12s%10s%14s%10s%12s%10s\n", "x [m]", "M", "P [Pa]", "T [K]", "ρ [kg/m³]", "v [m/s]")
	for i, s := range res.States {
		l += io.Sf("%12.4f%10.5f%14.2f%10.3f%12.5f%10.3f\n", res.X[i], s.Mach, s.P, s.T, s.Rho, s.V)
	}
	for _, w := range res.Warnings {
		l += io.Sf("  warning %q: %s\n", w.Code, w.Msg)
	}
	return l
}

// ReportRayleigh returns a fixed-width station table of a rayleigh march
func ReportRayleigh(res *duct.RayleighResult) string {
	l := io.Sf("rayleigh line: qmax=%g [W/m²] mdot=%g [kg/s] choked=%v\n", res.Qmax, res.Mdot, res.Choked)
	l += io.Sf("%14s%10s%10s%14s%10s%12s\n", "q [W/m²]", "M", "T0 [K]", "P [Pa]", "T [K]", "v [m/s]")
	for i, s := range res.States {
		l += io.Sf("%14.4e%10.5f%10.3f%14.2f%10.3f%12.3f\n", res.Q[i], s.Mach, s.T0, s.P, s.T, s.V)
	}
	for _, w := range res.Warnings {
		l += io.Sf("  warning %q: %s\n", w.Code, w.Msg)
	}
	return l
}

// SaveJSON saves any result record as an indented JSON file in dirout
func SaveJSON(dirout, fnkey string, result interface{}) (err error) {
	b, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return chk.Err("cannot marshal result %q: %v", fnkey, err)
	}
	io.WriteFileD(dirout, fnkey+".json", bytes.NewBuffer(b))
	return
}
