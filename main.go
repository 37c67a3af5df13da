// Copyright 2025 The EngiVault Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/Luqman-Ismat/engivault-api-sub003/duct"
	"github.com/Luqman-Ismat/engivault-api-sub003/inp"
	"github.com/Luqman-Ismat/engivault-api-sub003/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			if chk.Verbose {
				for i := 5; i > 3; i-- {
					chk.CallerInfo(i)
				}
			}
		}
	}()

	// read input parameters
	scefilepath, _ := io.ArgToFilename(0, "data/trunkline.sce", ".sce", true)
	verbose := io.ArgToBool(1, true)
	saveJSON := io.ArgToBool(2, true)

	// message
	if verbose {
		io.PfWhite("\nEngiVault -- compressible gas duct flow\n\n")
		io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"scenario filename path", "scefilepath", scefilepath,
			"show messages", "verbose", verbose,
			"save results as JSON", "saveJSON", saveJSON,
		))
	}

	// read scenario
	sce := inp.ReadScenario(scefilepath)
	if verbose {
		io.Pf("%v\n", sce)
	}

	// run cases
	for i, c := range sce.Cases {
		in, err := sce.FlowInput(i)
		if err != nil {
			chk.Panic("cannot build input of case %d: %v", i, err)
		}
		res, err := duct.CalcFlow(in)
		if err != nil {
			chk.Panic("case %d (%q) failed: %v", i, c.Desc, err)
		}
		if verbose {
			io.Pf("\n%v", out.ReportFlow(io.Sf("case %d: %s", i, c.Desc), in, res))
		}
		if saveJSON {
			err = out.SaveJSON(sce.DirOut, io.Sf("%s-case%d", sce.Key, i), res)
			if err != nil {
				chk.Panic("cannot save results of case %d: %v", i, err)
			}
		}
	}

	// final message
	if verbose {
		io.PfGreen("\nSuccess: %d case(s) computed\n", len(sce.Cases))
	}
}
