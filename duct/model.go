// Copyright 2025 The EngiVault Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package duct

import (
	"github.com/cpmech/gosl/chk"
)

// FlowModel selects the thermodynamic path of a duct flow calculation
type FlowModel int

// available flow models
const (
	Isothermal FlowModel = iota // constant temperature along the duct
	Adiabatic                   // no heat exchange with the surroundings
)

// ModelByName returns the flow model corresponding to name
func ModelByName(name string) (model FlowModel, err error) {
	switch name {
	case "isothermal":
		model = Isothermal
	case "adiabatic":
		model = Adiabatic
	default:
		err = chk.Err("flow model %q is not available; options are \"isothermal\" and \"adiabatic\"", name)
	}
	return
}

// String returns the name of the flow model
func (o FlowModel) String() string {
	switch o {
	case Isothermal:
		return "isothermal"
	case Adiabatic:
		return "adiabatic"
	}
	return "unknown"
}
