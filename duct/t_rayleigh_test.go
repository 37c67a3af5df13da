// Copyright 2025 The EngiVault Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package duct

import (
	"testing"

	"github.com/Luqman-Ismat/engivault-api-sub003/ana"
	"github.com/Luqman-Ismat/engivault-api-sub003/sonic"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_rayleigh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rayleigh01. stagnation-temperature ratio and sonic-section ratios")

	// classic γ=1.4 checkpoints
	chk.Float64(tst, "T0/T0* M=0.3", 1e-6, RayleighT0ratio(0.3, 1.4), 0.346860)
	chk.Float64(tst, "T0/T0* M=1", 1e-15, RayleighT0ratio(1.0, 1.4), 1.0)
	chk.Float64(tst, "T0/T0* M=2", 1e-6, RayleighT0ratio(2.0, 1.4), 0.793388)
	chk.Float64(tst, "T/T* M=0.5", 1e-6, RayleighTratio(0.5, 1.4), 0.790123)
	chk.Float64(tst, "P/P* M=0.5", 1e-6, RayleighPratio(0.5, 1.4), 1.777778)
	chk.Float64(tst, "v/v* M=0.5", 1e-6, RayleighVratio(0.5, 1.4), 0.444444)
	chk.Float64(tst, "P0/P0* M=0.5", 1e-6, RayleighP0ratio(0.5, 1.4), 1.114053)

	// full table sweep
	for _, e := range ana.RayleighAir() {
		chk.Float64(tst, io.Sf("T0/T0* M=%g", e.M), 5e-6, RayleighT0ratio(e.M, 1.4), e.T0)
		chk.Float64(tst, io.Sf("T/T* M=%g", e.M), 5e-6, RayleighTratio(e.M, 1.4), e.T)
		chk.Float64(tst, io.Sf("P/P* M=%g", e.M), 5e-6, RayleighPratio(e.M, 1.4), e.P)
		chk.Float64(tst, io.Sf("v/v* M=%g", e.M), 5e-6, RayleighVratio(e.M, 1.4), e.V)
		chk.Float64(tst, io.Sf("P0/P0* M=%g", e.M), 5e-6, RayleighP0ratio(e.M, 1.4), e.P0)
	}
}

func Test_rayleigh02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rayleigh02. subsonic heating up to half the choking limit")

	s1, err := sonic.StateAtMach(0.3, 1.4, 2e5, 300.0, 28.97)
	if err != nil {
		tst.Errorf("inlet state failed:\n%v", err)
		return
	}

	var ray Rayleigh
	err = ray.Init(s1, 130135157.58338802/2.0, 0.1, 1.4, 28.97, 0)
	if err != nil {
		tst.Errorf("init failed:\n%v", err)
		return
	}
	chk.Float64(tst, "G", 1e-9, ray.G, 229.33404452123634)
	chk.Float64(tst, "cp", 1e-10, ray.Cp, 1004.5084570245082)
	chk.Float64(tst, "T0*", 1e-9, ray.T0s, 864.9012224405151)
	chk.Float64(tst, "Qmax", 1e-3, ray.Qmax, 130135157.58338802)
	chk.Float64(tst, "mdot", 1e-10, ray.Mdot, 1.8011853737148766)

	res, err := ray.March()
	if err != nil {
		tst.Errorf("march failed:\n%v", err)
		return
	}
	if res.Choked {
		tst.Errorf("half of Qmax must not choke the flow\n")
		return
	}
	chk.IntAssert(len(res.States), 11)
	chk.IntAssert(len(res.Q), 11)

	// exit state
	se := res.States[10]
	io.Pforan("exit = %+v\n", se)
	chk.Float64(tst, "M2", 1e-9, se.Mach, 0.48792401669424673)
	chk.Float64(tst, "T02", 1e-8, se.T0, 582.4506112202575)
	chk.Float64(tst, "T2", 1e-6, se.T, 555.9782785806051)
	chk.Float64(tst, "P2", 1e-4, se.P, 158680.6627606945)
	chk.Float64(tst, "ρ2", 1e-9, se.Rho, 0.9944446784693551)
	chk.Float64(tst, "v2", 1e-6, se.V, 230.61518602947956)
	chk.Float64(tst, "P02", 1e-4, se.P0, 186736.1878320599)

	// heating: T0 and M grow monotonically towards the sonic section
	for i := 1; i < len(res.States); i++ {
		a, b := res.States[i-1], res.States[i]
		if b.T0 <= a.T0 {
			tst.Errorf("heating must raise the stagnation temperature (station %d)\n", i)
			return
		}
		if b.Mach <= a.Mach || b.Mach > 1 {
			tst.Errorf("heating must drive M towards unity (station %d)\n", i)
			return
		}
	}

	// mass flux is conserved along the samples
	for i, s := range res.States {
		chk.Float64(tst, io.Sf("G station %d", i), 1e-9, s.Rho*s.V, ray.G)
	}
}

func Test_rayleigh03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rayleigh03. heating beyond Qmax chokes; cooling moves M away from unity")

	s1, err := sonic.StateAtMach(0.3, 1.4, 2e5, 300.0, 28.97)
	if err != nil {
		tst.Errorf("inlet state failed:\n%v", err)
		return
	}

	// heating twice the limit: clamp at the sonic section
	var ray Rayleigh
	err = ray.Init(s1, 2.0*130135157.58338802, 0.1, 1.4, 28.97, 0)
	if err != nil {
		tst.Errorf("init failed:\n%v", err)
		return
	}
	res, err := ray.March()
	if err != nil {
		tst.Errorf("march failed:\n%v", err)
		return
	}
	if !res.Choked {
		tst.Errorf("twice Qmax must choke the flow\n")
		return
	}
	se := res.States[10]
	io.Pforan("sonic section = %+v\n", se)
	chk.Float64(tst, "M*", 1e-15, se.Mach, 1.0)
	chk.Float64(tst, "T0*", 1e-9, se.T0, 864.9012224405151)
	chk.Float64(tst, "T*", 1e-6, se.T, 720.7510187004291)
	chk.Float64(tst, "P*", 1e-4, se.P, 88153.57337535516)
	chk.Float64(tst, "v*", 1e-6, se.V, 538.1451453627024)
	chk.Float64(tst, "Q end", 1e-3, res.Q[10], 130135157.58338802)
	found := false
	for _, w := range res.Warnings {
		io.Pfyel("  warning %q: %v\n", w.Code, w.Msg)
		if w.Code == WarnChoked {
			found = true
		}
	}
	if !found {
		tst.Errorf("choked warning must be present\n")
		return
	}

	// cooling by 20% of the inlet stagnation enthalpy: M falls
	Qcool := -0.2 * ray.G * ray.Cp * s1.T0
	err = ray.Init(s1, Qcool, 0.1, 1.4, 28.97, 0)
	if err != nil {
		tst.Errorf("cooling init failed:\n%v", err)
		return
	}
	res, err = ray.March()
	if err != nil {
		tst.Errorf("cooling march failed:\n%v", err)
		return
	}
	if res.Choked {
		tst.Errorf("cooling must not choke\n")
		return
	}
	se = res.States[10]
	io.Pforan("cooled exit = %+v\n", se)
	chk.Float64(tst, "M2 cooled", 1e-9, se.Mach, 0.2617054011461186)
	chk.Float64(tst, "T02 cooled", 1e-9, se.T0, 240.0)
	for i := 1; i < len(res.States); i++ {
		a, b := res.States[i-1], res.States[i]
		if b.T0 >= a.T0 || b.Mach >= a.Mach {
			tst.Errorf("cooling must lower T0 and M (station %d)\n", i)
			return
		}
	}
}

func Test_rayleigh04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rayleigh04. supersonic branch: heating decelerates towards unity")

	s1, err := sonic.StateAtMach(2.0, 1.4, 8e5, 600.0, 28.97)
	if err != nil {
		tst.Errorf("inlet state failed:\n%v", err)
		return
	}

	var ray Rayleigh
	err = ray.Init(s1, 122778325.75702628/2.0, 0.1, 1.4, 28.97, 0)
	if err != nil {
		tst.Errorf("init failed:\n%v", err)
		return
	}
	chk.Float64(tst, "T0*", 1e-9, ray.T0s, 756.25)
	chk.Float64(tst, "Qmax", 1e-3, ray.Qmax, 122778325.75702628)

	res, err := ray.March()
	if err != nil {
		tst.Errorf("march failed:\n%v", err)
		return
	}
	if res.Choked {
		tst.Errorf("half of Qmax must not choke the flow\n")
		return
	}
	se := res.States[10]
	io.Pforan("exit = %+v\n", se)
	chk.Float64(tst, "M2", 1e-9, se.Mach, 1.5499894538054977)
	chk.Float64(tst, "T02", 1e-9, se.T0, 678.125)

	// heating raises T0 but lowers M on the supersonic branch
	for i := 1; i < len(res.States); i++ {
		a, b := res.States[i-1], res.States[i]
		if b.T0 <= a.T0 {
			tst.Errorf("heating must raise the stagnation temperature (station %d)\n", i)
			return
		}
		if b.Mach >= a.Mach || b.Mach < 1 {
			tst.Errorf("supersonic heating must lower M towards unity (station %d)\n", i)
			return
		}
	}
}

func Test_rayleigh05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rayleigh05. preconditions and cooling limits")

	s1, err := sonic.StateAtMach(0.3, 1.4, 2e5, 300.0, 28.97)
	if err != nil {
		tst.Errorf("inlet state failed:\n%v", err)
		return
	}

	// geometry and gas constraints
	var ray Rayleigh
	err = ray.Init(s1, 1e6, 0, 1.4, 28.97, 0)
	if err == nil {
		tst.Errorf("D = 0 must fail\n")
		return
	}
	chk.String(tst, err.Error(), "all input parameters must be positive")
	err = ray.Init(s1, 1e6, 0.1, 1.0, 28.97, 0)
	if err == nil {
		tst.Errorf("γ = 1 must fail\n")
		return
	}
	err = ray.Init(s1, 1e6, 0.1, 1.4, 0, 0)
	if err == nil {
		tst.Errorf("Mw = 0 must fail\n")
		return
	}

	// sonic inlet is singular
	ss, err := sonic.StateAtMach(1.0, 1.4, 2e5, 300.0, 28.97)
	if err != nil {
		tst.Errorf("sonic state failed:\n%v", err)
		return
	}
	err = ray.Init(ss, 1e6, 0.1, 1.4, 28.97, 0)
	if err == nil {
		tst.Errorf("sonic inlet must fail\n")
		return
	}

	// subsonic cooling cannot exhaust the stagnation enthalpy
	G := s1.Rho * s1.V
	cp := 1.4 * 8314.46 / (0.4 * 28.97)
	err = ray.Init(s1, -1.1*G*cp*s1.T0, 0.1, 1.4, 28.97, 0)
	if err == nil {
		tst.Errorf("cooling below T0 = 0 must fail\n")
		return
	}
	io.Pf("err = %v\n", err)

	// supersonic cooling cannot push T0 below the branch asymptote
	s2, err := sonic.StateAtMach(2.0, 1.4, 8e5, 600.0, 28.97)
	if err != nil {
		tst.Errorf("supersonic state failed:\n%v", err)
		return
	}
	G2 := s2.Rho * s2.V
	err = ray.Init(s2, -0.5*G2*cp*s2.T0, 0.1, 1.4, 28.97, 0)
	if err == nil {
		tst.Errorf("cooling beyond the supersonic limit must fail\n")
		return
	}
	io.Pf("err = %v\n", err)
}
