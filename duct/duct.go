// Copyright 2025 The EngiVault Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package duct implements compressible gas flow processes in constant-area ducts:
// the one-shot choked pressure drop solver, the fanno line marcher (adiabatic
// flow with friction) and the rayleigh line marcher (flow with heat exchange)
package duct

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// iteration control
const (
	nmaxIt  = 100   // maximum number of bisection iterations
	xtol    = 1e-14 // tolerance on the Mach number interval
	ftol    = 1e-13 // tolerance on residuals
	defNsta = 11    // default number of stations along a marched duct
)

// Pipe holds the geometry of one duct segment
type Pipe struct {
	D     float64 `json:"d"`     // internal diameter [m]
	L     float64 `json:"l"`     // length [m]
	Rough float64 `json:"rough"` // absolute roughness [m]
}

// Validate checks the segment geometry
func (o *Pipe) Validate() (err error) {
	if o.D <= 0 || o.L <= 0 || o.Rough <= 0 {
		return chk.Err("pipe: d=%g [m], l=%g [m] and rough=%g [m] must all be positive", o.D, o.L, o.Rough)
	}
	return
}

// Area returns the cross-sectional area [m²]
func (o *Pipe) Area() float64 {
	return math.Pi * o.D * o.D / 4.0
}

// bisect finds the root of fn within [lo, hi] with a bounded number of
// interval halvings. fn(lo) and fn(hi) must have opposite signs.
func bisect(fn func(M float64) float64, lo, hi float64) (m float64, err error) {
	flo := fn(lo)
	fhi := fn(hi)
	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}
	if flo*fhi > 0 {
		return 0, chk.Err("bisection cannot bracket the root: f(%g)=%g and f(%g)=%g have the same sign", lo, flo, hi, fhi)
	}
	var it int
	for it = 0; it < nmaxIt; it++ {
		m = 0.5 * (lo + hi)
		fm := fn(m)
		if math.IsNaN(fm) {
			return 0, chk.Err("NaN found: f(%g)=NaN", m)
		}
		if math.Abs(fm) < ftol || hi-lo < xtol {
			return m, nil
		}
		if flo*fm < 0 {
			hi = m
		} else {
			lo = m
			flo = fm
		}
	}
	return 0, chk.Err("bisection failed after %d iterations", it)
}
