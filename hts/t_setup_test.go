// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hts

import (
	"errors"
	"math"
	"testing"

	"github.com/CarlosHernando16/gohts/ana"
	"github.com/CarlosHernando16/gohts/errs"
	"github.com/CarlosHernando16/gohts/inp"
	"github.com/CarlosHernando16/gohts/mdl/sc"
	"github.com/CarlosHernando16/gohts/nonlin"
	"github.com/CarlosHernando16/gohts/tests"
	"github.com/CarlosHernando16/gohts/wf"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// coords returns the coordinates of all vertices
func coords(msh *inp.Mesh) (X [][]float64) {
	for _, v := range msh.Verts {
		X = append(X, v.C)
	}
	return
}

// solverData returns the default Newton-Raphson data
func solverData() (cfg nonlin.Config) {
	cfg.SetDefault()
	cfg.ShowR = chk.Verbose
	return
}

func Test_config01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("config01. formulation configuration")

	good := FormulationConfig{Ndim: 2, Coords: wf.Cartesian2D, MuInv: 1}
	if err := good.Check(); err != nil {
		tst.Errorf("configuration should be valid:\n%v", err)
		return
	}
	cases := []struct {
		change func(c *FormulationConfig)
		target error
	}{
		{func(c *FormulationConfig) { c.Ndim = 1 }, errs.ErrInvalidParameter},
		{func(c *FormulationConfig) { c.MuInv = 0 }, errs.ErrInvalidParameter},
		{func(c *FormulationConfig) { c.MuInv = math.NaN() }, errs.ErrInvalidParameter},
		{func(c *FormulationConfig) { c.Coords = wf.CoordSys(9) }, errs.ErrUnsupportedCombination},
		{func(c *FormulationConfig) { c.Coords = wf.ThreeD }, errs.ErrUnsupportedCombination},
		{func(c *FormulationConfig) { c.Source = &SourceConfig{} }, errs.ErrInvalidParameter},
		{func(c *FormulationConfig) { c.RequireScTag = true }, errs.ErrInvalidParameter},
		{func(c *FormulationConfig) {
			c.Ndim, c.Coords = 3, wf.ThreeD
			c.BcA.Fcn = func(x []float64) float64 { return 1 }
		}, errs.ErrUnsupportedCombination},
	}
	for i, c := range cases {
		cfg := good
		c.change(&cfg)
		err := cfg.Check()
		if !errors.Is(err, c.target) {
			tst.Errorf("case %d: error should be %v. err = %v", i, c.target, err)
		}
	}

	// dispatch
	if _, err := ParseKind("maxwell"); !errors.Is(err, errs.ErrUnsupportedCombination) {
		tst.Errorf("unknown formulation should be unsupported. err = %v", err)
	}
	if _, err := Run(&Problem{Kind: Kind(5)}); !errors.Is(err, errs.ErrUnsupportedCombination) {
		tst.Errorf("unknown kind should be unsupported. err = %v", err)
	}
	kind, _ := ParseKind("TA")
	chk.String(tst, kind.String(), "ta")
}

func Test_setup01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("setup01. fields and essential conditions")

	msh, err := inp.GenRect(4, 2, 0, 2, 0, 1, []float64{0.5, 1.5, 0, 1})
	if err != nil {
		tst.Errorf("GenRect failed:\n%v", err)
		return
	}

	// A: all outer faces; 12 of 15 vertices are on the boundary
	cfg := FormulationConfig{Ndim: 2, Coords: wf.Cartesian2D, MuInv: 1}
	sa, err := SetupA(cfg, msh, 0)
	if err != nil {
		tst.Errorf("SetupA failed:\n%v", err)
		return
	}
	chk.Int(tst, "A: ny", sa.Dom.Ny, 15)
	chk.Int(tst, "A: nλ", sa.Ebcs.Nlam(), 12)
	chk.Int(tst, "A: T", sa.T, -1)
	if sa.Full == nil {
		tst.Errorf("A: region of the whole domain is missing")
		return
	}
	chk.Int(tst, "A: full elems", len(sa.Full.Elems), 16)

	// T-A: T on the superconductor with default tags (interfaces x=0.5 and x=1.5)
	cfg.ScTag = inp.TagSc
	sta, err := SetupTA(cfg, msh, 0)
	if err != nil {
		tst.Errorf("SetupTA failed:\n%v", err)
		return
	}
	chk.Int(tst, "TA: ny", sta.Dom.Ny, 15+9)
	chk.Int(tst, "TA: nλ", sta.Ebcs.Nlam(), 12+6)
	chk.Int(tst, "TA: sc elems", len(sta.Sc.Elems), 8)

	// T-A without tagged terminals
	msh2, _ := inp.GenRect(2, 2, 0, 1, 0, 1, nil)
	cfg.ScTag = 0
	_, err = SetupTA(cfg, msh2, 0)
	if !errors.Is(err, errs.ErrInvalidParameter) {
		tst.Errorf("missing T terminals should be invalid. err = %v", err)
	}

	// wrong dimension
	cfg.Ndim, cfg.Coords = 3, wf.ThreeD
	_, err = SetupA(cfg, msh, 0)
	if !errors.Is(err, errs.ErrInvalidParameter) {
		tst.Errorf("2D mesh with 3D formulation should be invalid. err = %v", err)
	}

	// source on nonexistent region
	cfg = FormulationConfig{Ndim: 2, Coords: wf.Cartesian2D, MuInv: 1, Source: &SourceConfig{wf.ConstSource(1), -99}}
	_, err = SetupA(cfg, msh, 0)
	if !errors.Is(err, errs.ErrUnsupportedCombination) {
		tst.Errorf("source on nonexistent region should be unsupported. err = %v", err)
	}

	// T-A requires a material
	if _, err = sta.System(nil); !errors.Is(err, errs.ErrInvalidParameter) {
		tst.Errorf("T-A without material should be invalid. err = %v", err)
	}
}

func Test_slabA01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("slabA01. single-field slab with uniform source")

	msh, err := inp.GenRect(8, 2, 0, 2, 0, 0.5, nil)
	if err != nil {
		tst.Errorf("GenRect failed:\n%v", err)
		return
	}
	prob := &Problem{
		Kind: KindA,
		Cfg: FormulationConfig{
			Ndim:   2,
			Coords: wf.Cartesian2D,
			MuInv:  2,
			BcA: Dirichlet{
				Tags: []int{inp.TagLeft, inp.TagRight},
				Fcn:  func(x []float64) float64 { return x[0] / 2 },
			},
			Source: &SourceConfig{Fcn: wf.ConstSource(4)},
		},
		Mesh:    msh,
		Solver:  solverData(),
		Verbose: chk.Verbose,
	}
	res, err := Run(prob)
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	chk.String(tst, res.State.String(), "converged")
	chk.Int(tst, "nsteps", len(res.Steps), 1)

	var sla ana.SlabPotential
	sla.Init(dbf.Params{
		&dbf.P{N: "muinv", V: 2},
		&dbf.P{N: "f", V: 4},
		&dbf.P{N: "l", V: 2},
		&dbf.P{N: "a1", V: 1},
	})
	sla.CheckA(tst, res.Sol.NodalValues("a"), coords(msh), 1e-12, chk.Verbose)
}

func Test_zero01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("zero01. single-field with zero data")

	msh2, _ := inp.GenRect(3, 3, 0, 1, 0, 1, nil)
	msh3, _ := inp.GenBox([]int{2, 2, 2}, []float64{0, 1, 0, 1, 0, 1}, nil)
	for _, msh := range []*inp.Mesh{msh2, msh3} {
		cfg := FormulationConfig{Ndim: msh.Ndim, Coords: wf.Cartesian2D, MuInv: 1, Source: &SourceConfig{Fcn: wf.ConstSource(0)}}
		if msh.Ndim == 3 {
			cfg.Coords = wf.ThreeD
		}
		res, err := Run(&Problem{Kind: KindA, Cfg: cfg, Mesh: msh, Solver: solverData()})
		if err != nil {
			tst.Errorf("Run failed:\n%v", err)
			return
		}
		io.Pforan("%dD: |a| = %v\n", msh.Ndim, res.Sol.Norm())
		chk.Float64(tst, io.Sf("%dD: |a|", msh.Ndim), 1e-12, res.Sol.Norm(), 0)
	}
}

func Test_curlcurl01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("curlcurl01. 3D single-field with divergence-free source")

	msh, err := inp.GenBox([]int{2, 2, 2}, []float64{0, 1, 0, 1, 0, 1}, nil)
	if err != nil {
		tst.Errorf("GenBox failed:\n%v", err)
		return
	}
	cfg := FormulationConfig{Ndim: 3, Coords: wf.ThreeD, MuInv: 1, Source: &SourceConfig{Fcn: wf.ConstSource(0, 0, 1)}}
	res, err := Run(&Problem{Kind: KindA, Cfg: cfg, Mesh: msh, Solver: solverData()})
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	st := res.Steps[0]
	io.Pforan("|R0| = %v  |R| = %v  |a| = %v\n", st.ResNorm0, st.ResNorm, res.Sol.Norm())
	if st.ResNorm > 1e-10*math.Max(1, st.ResNorm0) {
		tst.Errorf("residual is too large: %v", st.ResNorm)
	}
	if !(res.Sol.Norm() > 0) {
		tst.Errorf("solution should not be zero")
	}

	// B = curl A is available at every cell
	B, err := res.Sol.CellCurl("a")
	if err != nil {
		tst.Errorf("CellCurl failed:\n%v", err)
		return
	}
	chk.Int(tst, "ncells", len(B), len(msh.Cells))
}

func Test_jacobian01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("jacobian01. augmented T-A Jacobian")

	msh, err := inp.GenRect(3, 2, 0, 1.5, 0, 1, []float64{0.5, 1.5, 0, 1})
	if err != nil {
		tst.Errorf("GenRect failed:\n%v", err)
		return
	}
	cfg := FormulationConfig{Ndim: 2, Coords: wf.Axisymmetric2D, MuInv: 1.2, ScTag: inp.TagSc, RequireScTag: true,
		BcT: Dirichlet{Fcn: func(x []float64) float64 { return 0.1 + x[1] }}}
	setup, err := SetupTA(cfg, msh, 0)
	if err != nil {
		tst.Errorf("SetupTA failed:\n%v", err)
		return
	}
	kim, _ := sc.NewKim(1, 2)
	fd, _ := sc.NewFieldDependent(1, 4, kim)
	sys, err := setup.System(fd)
	if err != nil {
		tst.Errorf("System failed:\n%v", err)
		return
	}
	y := make([]float64, sys.Size())
	for i := range y {
		y[i] = 0.3 + 0.2*math.Cos(0.7*float64(i))
	}
	kb := tests.Kb{Tst: tst, Tol: 1e-6, Verb: chk.Verbose}
	kb.Check("Kb", sys, y)
}
