// Copyright 2025 The EngiVault Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sonic

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_sonic01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sonic01. speed of sound in air and natural gas")

	// air at 25°C, ideal
	a, err := Isothermal(1.0, 298.15, 28.97)
	if err != nil {
		tst.Errorf("isothermal failed:\n%v", err)
		return
	}
	io.Pforan("a_iso (air) = %v [m/s]\n", a)
	chk.Float64(tst, "a_iso air", 1e-11, a, 292.52311091206695)

	a, err = Adiabatic(1.4, 1.0, 298.15, 28.97)
	if err != nil {
		tst.Errorf("adiabatic failed:\n%v", err)
		return
	}
	io.Pforan("a_adi (air) = %v [m/s]\n", a)
	chk.Float64(tst, "a_adi air", 1e-11, a, 346.11801251125723)

	// methane-rich gas at 20°C with Z = 0.95
	a, err = Isothermal(0.95, 293.15, 16.04)
	if err != nil {
		tst.Errorf("isothermal failed:\n%v", err)
		return
	}
	chk.Float64(tst, "a_iso ch4", 1e-11, a, 379.945752752007)

	a, err = Adiabatic(1.32, 0.95, 293.15, 16.04)
	if err != nil {
		tst.Errorf("adiabatic failed:\n%v", err)
		return
	}
	chk.Float64(tst, "a_adi ch4", 1e-11, a, 436.5244357939906)

	// invalid input
	_, err = Isothermal(0, 298.15, 28.97)
	if err == nil {
		tst.Errorf("Z = 0 must fail\n")
		return
	}
	_, err = Adiabatic(1.0, 1.0, 298.15, 28.97)
	if err == nil {
		tst.Errorf("γ = 1 must fail\n")
	}
}

func Test_sonic02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sonic02. mach number")

	M, err := MachNumber(100.0, 346.11801251125723)
	if err != nil {
		tst.Errorf("mach failed:\n%v", err)
		return
	}
	io.Pforan("M = %v\n", M)
	chk.Float64(tst, "M", 1e-12, M, 0.28891879759290934)

	M, err = MachNumber(0, 340.0)
	if err != nil {
		tst.Errorf("v = 0 must be valid:\n%v", err)
		return
	}
	chk.Float64(tst, "M at rest", 1e-17, M, 0)

	_, err = MachNumber(100.0, 0)
	if err == nil {
		tst.Errorf("a = 0 must fail\n")
		return
	}
	_, err = MachNumber(-1.0, 340.0)
	if err == nil {
		tst.Errorf("negative velocity must fail\n")
	}
}

func Test_isen01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("isen01. isentropic ratios and state construction")

	// classic γ=1.4 values at M=2
	chk.Float64(tst, "T/T0 M=2", 1e-6, IsenTratio(2.0, 1.4), 0.555556)
	chk.Float64(tst, "P/P0 M=2", 1e-6, IsenPratio(2.0, 1.4), 0.127805)
	chk.Float64(tst, "ρ/ρ0 M=2", 1e-6, IsenRratio(2.0, 1.4), 0.230048)

	// derivative of P/P0 with respect to M at M=0.5
	dana := -0.5620127836150354
	chk.DerivScaSca(tst, "d(P/P0)/dM", 1e-8, dana, 0.5, 1e-3, chk.Verbose, func(x float64) float64 {
		return IsenPratio(x, 1.4)
	})

	// full state at M=0.5
	s, err := StateAtMach(0.5, 1.4, 2e5, 350.0, 28.97)
	if err != nil {
		tst.Errorf("state at mach failed:\n%v", err)
		return
	}
	io.Pforan("s = %+v\n", s)
	chk.Float64(tst, "T", 1e-10, s.T, 333.3333333333333)
	chk.Float64(tst, "P", 1e-8, s.P, 168603.83508451062)
	chk.Float64(tst, "ρ", 1e-11, s.Rho, 1.7623945881265677)
	chk.Float64(tst, "v", 1e-10, s.V, 182.98528693354083)
	chk.Float64(tst, "M", 1e-17, s.Mach, 0.5)
	chk.Float64(tst, "P0", 1e-17, s.P0, 2e5)
	chk.Float64(tst, "T0", 1e-17, s.T0, 350.0)

	// at rest: static equals stagnation
	s, err = StateAtMach(0, 1.4, 2e5, 350.0, 28.97)
	if err != nil {
		tst.Errorf("state at rest failed:\n%v", err)
		return
	}
	chk.Float64(tst, "T = T0", 1e-17, s.T, s.T0)
	chk.Float64(tst, "P = P0", 1e-17, s.P, s.P0)
	chk.Float64(tst, "v = 0", 1e-17, s.V, 0)

	// supersonic
	s, err = StateAtMach(2.0, 1.4, 8e5, 600.0, 28.97)
	if err != nil {
		tst.Errorf("supersonic state failed:\n%v", err)
		return
	}
	chk.Float64(tst, "T M=2", 1e-10, s.T, 333.33333333333337)
	chk.Float64(tst, "P M=2", 1e-8, s.P, 102243.62037036075)
	chk.Float64(tst, "v M=2", 1e-9, s.V, 731.9411477341633)

	// invalid input
	_, err = StateAtMach(-0.1, 1.4, 2e5, 350.0, 28.97)
	if err == nil {
		tst.Errorf("negative M must fail\n")
		return
	}
	_, err = StateAtMach(0.5, 1.4, 2e5, -350.0, 28.97)
	if err == nil {
		tst.Errorf("negative T0 must fail\n")
	}
}
