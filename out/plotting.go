// Copyright 2025 The EngiVault Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/Luqman-Ismat/engivault-api-sub003/duct"
	"github.com/cpmech/gosl/plt"
)

// PlotFanno plots Mach number, pressure and temperature profiles of a fanno
// march along the duct
func PlotFanno(res *duct.FannoResult, dirout, fnkey string) {

	n := len(res.States)
	M := make([]float64, n)
	P := make([]float64, n)
	T := make([]float64, n)
	for i, s := range res.States {
		M[i] = s.Mach
		P[i] = s.P
		T[i] = s.T
	}

	plt.Reset(false, nil)

	plt.Subplot(3, 1, 1)
	plt.Plot(res.X, M, &plt.A{C: "b", Ls: "-", M: "."})
	plt.Gll("$x$", "$M$", nil)

	plt.Subplot(3, 1, 2)
	plt.Plot(res.X, P, &plt.A{C: "r", Ls: "-", M: "."})
	plt.Gll("$x$", "$P$", nil)

	plt.Subplot(3, 1, 3)
	plt.Plot(res.X, T, &plt.A{C: "g", Ls: "-", M: "."})
	plt.Gll("$x$", "$T$", nil)

	plt.Save(dirout, fnkey)
}

// PlotRayleigh plots Mach number and stagnation/static temperature profiles of
// a rayleigh march over the cumulative heat
func PlotRayleigh(res *duct.RayleighResult, dirout, fnkey string) {

	n := len(res.States)
	M := make([]float64, n)
	T0 := make([]float64, n)
	T := make([]float64, n)
	for i, s := range res.States {
		M[i] = s.Mach
		T0[i] = s.T0
		T[i] = s.T
	}

	plt.Reset(false, nil)

	plt.Subplot(2, 1, 1)
	plt.Plot(res.Q, M, &plt.A{C: "b", Ls: "-", M: "."})
	plt.Gll("$q$", "$M$", nil)

	plt.Subplot(2, 1, 2)
	plt.Plot(res.Q, T0, &plt.A{C: "r", Ls: "-", M: ".", L: "$T_0$"})
	plt.Plot(res.Q, T, &plt.A{C: "g", Ls: "-", M: ".", L: "$T$"})
	plt.Gll("$q$", "$T$", nil)

	plt.Save(dirout, fnkey)
}
