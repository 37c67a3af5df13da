// Copyright 2025 The EngiVault Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_tables01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tables01. cross-column identities of the γ=1.4 tables")

	// isentropic: ρ/ρ0 = (P/P0)/(T/T0)
	for _, e := range IsenAir() {
		chk.Float64(tst, io.Sf("isen M=%g: ρ=P/T", e.M), 5e-6, e.Rho, e.P/e.T)
	}

	// fanno: P/P* = sqrt(T/T*)/M and v/v* = M・sqrt(T/T*)
	for _, e := range FannoAir() {
		chk.Float64(tst, io.Sf("fanno M=%g: P", e.M), 5e-6, e.P, math.Sqrt(e.T)/e.M)
		chk.Float64(tst, io.Sf("fanno M=%g: v", e.M), 5e-6, e.V, e.M*math.Sqrt(e.T))
	}

	// rayleigh: T/T* = (M・P/P*)² and v/v* = M²・P/P*
	for _, e := range RayleighAir() {
		chk.Float64(tst, io.Sf("rayleigh M=%g: T", e.M), 5e-6, e.T, e.M*e.M*e.P*e.P)
		chk.Float64(tst, io.Sf("rayleigh M=%g: v", e.M), 5e-6, e.V, e.M*e.M*e.P)
	}

	// sonic rows
	n := len(FannoAir())
	for i, e := range FannoAir() {
		if e.M == 1.0 {
			chk.Float64(tst, "fanno fld at M=1", 1e-15, e.Fld, 0)
			chk.Float64(tst, "fanno P0/P0* at M=1", 1e-15, e.P0, 1)
		}
		if i > 0 && e.M < 1.0 && FannoAir()[i-1].Fld <= e.Fld {
			tst.Errorf("fld must decrease towards the sonic section\n")
			return
		}
	}
	chk.IntAssert(n, 13)
}

func Test_fannonum01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fannonum01. ODE integration of the fanno line")

	var num FannoNumerical
	num.Init(1.4)

	// friction length between the table checkpoints M=0.5 and M=0.8
	ξ := 1.069060 - 0.072290
	M, err := num.MachAfter(0.5, ξ)
	if err != nil {
		tst.Errorf("integration failed:\n%v", err)
		return
	}
	io.Pforan("M(0.5 -> ξ=%g) = %v\n", ξ, M)
	chk.Float64(tst, "M", 1e-5, M, 0.8)

	// duct march checkpoint: M=0.3, f=0.02, D=0.1 [m], L=5 [m]
	M, err = num.MachAfter(0.3, 4.0*0.02*5.0/0.1)
	if err != nil {
		tst.Errorf("integration failed:\n%v", err)
		return
	}
	io.Pforan("M(0.3 -> ξ=4) = %v\n", M)
	chk.Float64(tst, "M march", 1e-7, M, 0.4744474547628774)

	// zero friction length is a no-op
	M, err = num.MachAfter(0.3, 0)
	if err != nil {
		tst.Errorf("integration failed:\n%v", err)
		return
	}
	chk.Float64(tst, "M no-op", 1e-14, M, 0.3)

	// invalid input
	_, err = num.MachAfter(1.2, 1.0)
	if err == nil {
		tst.Errorf("supersonic start must fail\n")
	}
}
