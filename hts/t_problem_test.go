// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hts

import (
	"errors"
	"testing"

	"github.com/CarlosHernando16/gohts/errs"
	"github.com/CarlosHernando16/gohts/inp"
	"github.com/CarlosHernando16/gohts/wf"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_problem01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("problem01. run simulation read from JSON file")

	sim, err := inp.ReadSim("../inp/data/square.sim")
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	prob, err := NewProblem(sim)
	if err != nil {
		tst.Errorf("NewProblem failed:\n%v", err)
		return
	}
	chk.String(tst, prob.Kind.String(), "ta")
	chk.Int(tst, "ndim", prob.Cfg.Ndim, 2)
	chk.Int(tst, "exponent", prob.Material.Exponent(), 5)
	chk.Ints(tst, "schedule", prob.Schedule, []int{5})

	res, err := Run(prob)
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	chk.String(tst, res.State.String(), "converged")
	T := res.Sol.NodalValues("t")
	chk.Array(tst, "T", 1e-12, T, []float64{1.5, 0, 0, 1.5})
	for i, v := range res.Sol.Field("a") {
		chk.Float64(tst, io.Sf("a%d", i), 1e-12, v, 0)
	}
}

func Test_problem02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("problem02. problem read from YAML file")

	sim, err := inp.ReadSim("../inp/data/slab.yaml")
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	prob, err := NewProblem(sim)
	if err != nil {
		tst.Errorf("NewProblem failed:\n%v", err)
		return
	}
	chk.Float64(tst, "μ⁻¹", 1e-15, prob.Cfg.MuInv, 2)
	chk.Int(tst, "sctag", prob.Cfg.ScTag, inp.TagSc)
	chk.Ints(tst, "schedule", prob.Schedule, []int{5, 10})
	chk.Ints(tst, "T tags", prob.Cfg.BcT.Tags, []int{inp.TagScBoundary})
	if prob.Cfg.Coords != wf.Cartesian2D || !prob.Cfg.RequireScTag {
		tst.Errorf("coordinates or requiresctag are incorrect")
	}
	if !prob.Material.FieldDependent() {
		tst.Errorf("kim model should be field dependent")
	}
	chk.Int(tst, "exponent", prob.Material.Exponent(), 10)
	if prob.Cfg.Source == nil {
		tst.Errorf("source is missing")
		return
	}
	f := []float64{-1}
	prob.Cfg.Source.Fcn(f, []float64{1, 0.5})
	chk.Float64(tst, "f", 1e-15, f[0], 0)

	// T-A requires a material
	sim.Material = nil
	if _, err = NewProblem(sim); !errors.Is(err, errs.ErrInvalidParameter) {
		tst.Errorf("missing material should be invalid. err = %v", err)
	}

	// unknown formulation
	sim.Data.Formulation = "h"
	if _, err = NewProblem(sim); !errors.Is(err, errs.ErrUnsupportedCombination) {
		tst.Errorf("unknown formulation should be unsupported. err = %v", err)
	}
}
