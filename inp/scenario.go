// Copyright 2025 The EngiVault Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the scenario data read from a (.sce) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/Luqman-Ismat/engivault-api-sub003/duct"
	"github.com/Luqman-Ismat/engivault-api-sub003/gas"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// GasDef holds one user-defined gas of a scenario file. Properties come as a
// parameter list so scenarios read like material definitions; "gam" and "zed"
// may be omitted and are then resolved by the flow calculation.
type GasDef struct {
	Name string     `json:"name"` // gas name; e.g. "methane"
	Prms dbf.Params `json:"prms"` // properties: "rho", "mu", "mw", "gam", "zed"
}

// Composition builds the gas record from the parameter list
func (o *GasDef) Composition() (g *gas.Composition, err error) {
	g = &gas.Composition{Name: o.Name}
	for _, p := range o.Prms {
		switch strings.ToLower(p.N) {
		case "rho":
			g.Rho = p.V
		case "mu":
			g.Mu = p.V
		case "mw":
			g.Mw = p.V
		case "gam":
			g.Gam = p.V
		case "zed":
			g.Zed = p.V
		default:
			return nil, chk.Err("gas %q: parameter named %q is incorrect", o.Name, p.N)
		}
	}
	err = g.Validate()
	if err != nil {
		return nil, err
	}
	return
}

// FlowCase holds one pressure drop query of a scenario file
type FlowCase struct {

	// input
	Desc  string    `json:"desc"`  // description of this case
	Model string    `json:"model"` // flow model name; "isothermal" or "adiabatic"
	Gas   string    `json:"gas"`   // name of the flowing gas
	Pipe  duct.Pipe `json:"pipe"`  // segment geometry
	Pin   float64   `json:"pin"`   // inlet pressure [Pa]
	Mdot  float64   `json:"mdot"`  // mass flow rate [kg/s]
	Temp  float64   `json:"temp"`  // flowing temperature [K]

	// derived
	Mdl duct.FlowModel `json:"-"` // parsed flow model
}

// Scenario holds all data of a calculation scenario
type Scenario struct {

	// input
	Desc   string      `json:"desc"`   // description of scenario
	DirOut string      `json:"dirout"` // directory for output; e.g. /tmp/engivault
	Gases  []*GasDef   `json:"gases"`  // user-defined gases
	Cases  []*FlowCase `json:"cases"`  // pressure drop queries

	// derived
	Key   string                      // scenario filename key
	GasDb map[string]*gas.Composition // gases by name
}

// ReadScenario reads a scenario from a (.sce) JSON file
//  Note: this function panics on errors
func ReadScenario(scefilepath string) *Scenario {

	// new scenario
	var o Scenario

	// read file
	b := io.ReadFile(scefilepath)

	// decode
	err := json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadScenario: cannot unmarshal scenario file %q", scefilepath)
	}

	// filename key and output directory
	fn := filepath.Base(scefilepath)
	o.Key = io.FnKey(fn)
	if o.DirOut == "" {
		o.DirOut = "/tmp/engivault/" + o.Key
	}
	o.DirOut = os.ExpandEnv(o.DirOut)

	// gas database
	o.GasDb = make(map[string]*gas.Composition)
	for _, gd := range o.Gases {
		if _, ok := o.GasDb[gd.Name]; ok {
			chk.Panic("ReadScenario: gas %q is defined twice", gd.Name)
		}
		g, err := gd.Composition()
		if err != nil {
			chk.Panic("ReadScenario: cannot build gas %q: %v", gd.Name, err)
		}
		o.GasDb[gd.Name] = g
	}

	// parse models and check cases
	for i, c := range o.Cases {
		c.Mdl, err = duct.ModelByName(c.Model)
		if err != nil {
			chk.Panic("ReadScenario: case %d (%q): %v", i, c.Desc, err)
		}
		if _, ok := o.GasDb[c.Gas]; !ok {
			chk.Panic("ReadScenario: case %d (%q): gas %q is not defined in this scenario", i, c.Desc, c.Gas)
		}
	}
	return &o
}

// FlowInput builds the input record of one case
func (o *Scenario) FlowInput(idx int) (in *duct.FlowInput, err error) {
	if idx < 0 || idx >= len(o.Cases) {
		return nil, chk.Err("there is no case number %d in this scenario", idx)
	}
	c := o.Cases[idx]
	p := c.Pipe
	return &duct.FlowInput{
		Gas:   o.GasDb[c.Gas],
		Pipe:  &p,
		Model: c.Mdl,
		Pin:   c.Pin,
		Mdot:  c.Mdot,
		T:     c.Temp,
	}, nil
}

// String returns a one-line description of one case
func (o *FlowCase) String() string {
	return io.Sf("{%q %s gas=%q d=%g l=%g pin=%g mdot=%g temp=%g}", o.Desc, o.Model, o.Gas, o.Pipe.D, o.Pipe.L, o.Pin, o.Mdot, o.Temp)
}

// String returns a multi-line description of the scenario
func (o *Scenario) String() string {
	l := io.Sf("scenario %q: %s\n", o.Key, o.Desc)
	for name, g := range o.GasDb {
		l += io.Sf("  gas %q: %v\n", name, g)
	}
	for i, c := range o.Cases {
		l += io.Sf("  case %d: %v\n", i, c)
	}
	return l
}
