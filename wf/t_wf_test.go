// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wf

import (
	"errors"
	"math"
	"testing"

	"github.com/CarlosHernando16/gohts/errs"
	"github.com/CarlosHernando16/gohts/fem"
	"github.com/CarlosHernando16/gohts/inp"
	"github.com/CarlosHernando16/gohts/mdl/sc"
	"github.com/CarlosHernando16/gohts/tests"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// coupled returns a T-A system without essential conditions
func coupled(tst *testing.T, msh *inp.Mesh, cs CoordSys, mdl sc.Model) *fem.System {
	aspace := fem.Lagrange
	if msh.Ndim == 3 {
		aspace = fem.Nedelec
	}
	dom, err := fem.NewDomain(msh, []*fem.FieldDef{
		{Key: "a", Space: aspace},
		{Key: "t", Space: fem.Lagrange, Support: inp.TagSc},
	}, 0)
	if err != nil {
		tst.Fatalf("NewDomain failed:\n%v", err)
	}
	full, _ := dom.Region(0)
	scr, _ := dom.Region(inp.TagSc)
	b, err := NewBuilder(cs, 0.8)
	if err != nil {
		tst.Fatalf("NewBuilder failed:\n%v", err)
	}
	a, t := dom.FieldIndex("a"), dom.FieldIndex("t")
	ebcs := fem.NewEssentialBcs(dom.Ny)
	sys, err := fem.NewSystem(dom, ebcs, false,
		b.CurlCurl(full, a),
		b.Source(full, a, ConstSource(0.3)),
		b.PowerLawT(scr, t, a, mdl),
	)
	if err != nil {
		tst.Fatalf("NewSystem failed:\n%v", err)
	}
	return sys
}

// state returns a smooth non-trivial vector of unknowns
func state(n int) (y []float64) {
	y = make([]float64, n)
	for i := range y {
		y[i] = 0.5 + 0.2*math.Sin(1.3*float64(i)+0.2)
	}
	return
}

func Test_weight01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("weight01. coordinate weighting")

	cart, err := NewWeight(Cartesian2D)
	if err != nil {
		tst.Errorf("NewWeight failed:\n%v", err)
		return
	}
	axi, _ := NewWeight(Axisymmetric2D)
	three, _ := NewWeight(ThreeD)
	for _, x := range [][]float64{{0, 0}, {1, 2}, {-3, 7}} {
		chk.Float64(tst, "cartesian", 1e-17, cart(x), 1)
	}
	chk.Float64(tst, "3d", 1e-17, three([]float64{1, 2, 3}), 1)

	w0 := axi([]float64{0, 5})
	io.Pforan("w(r=0) = %v\n", w0)
	if !(w0 > 0) || math.IsInf(w0, 0) {
		tst.Errorf("axisymmetric weight at r=0 must be finite and positive. w = %v", w0)
	}
	chk.Float64(tst, "w(r=0)", 1e-25, w0, 2*math.Pi*RFloor)
	chk.Float64(tst, "w(r=2)", 1e-14, axi([]float64{2, -1}), 4*math.Pi)

	if _, err = NewWeight(CoordSys(7)); !errors.Is(err, errs.ErrUnsupportedCombination) {
		tst.Errorf("unknown coordinate system should be unsupported. err = %v", err)
	}
}

func Test_coords01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("coords01. coordinate systems")

	for name, cs := range map[string]CoordSys{"cartesian2d": Cartesian2D, "Axisymmetric": Axisymmetric2D, "3d": ThreeD} {
		res, err := ParseCoordSys(name)
		if err != nil {
			tst.Errorf("ParseCoordSys failed:\n%v", err)
			return
		}
		chk.String(tst, res.String(), cs.String())
	}
	chk.Int(tst, "ndim axisym", Axisymmetric2D.Ndim(), 2)
	chk.Int(tst, "ndim 3d", ThreeD.Ndim(), 3)
	if _, err := ParseCoordSys("spherical"); !errors.Is(err, errs.ErrUnsupportedCombination) {
		tst.Errorf("spherical should be unsupported. err = %v", err)
	}
	if _, err := NewBuilder(Cartesian2D, 0); !errors.Is(err, errs.ErrInvalidParameter) {
		tst.Errorf("μ⁻¹ = 0 should be invalid. err = %v", err)
	}
}

func Test_source01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("source01. integral of weighted source")

	msh, err := inp.GenRect(3, 2, 0, 1, 0, 1, nil)
	if err != nil {
		tst.Errorf("GenRect failed:\n%v", err)
		return
	}
	dom, err := fem.NewDomain(msh, []*fem.FieldDef{{Key: "a"}}, 0)
	if err != nil {
		tst.Errorf("NewDomain failed:\n%v", err)
		return
	}
	full, _ := dom.Region(0)

	// Σ_m l(φ_m) = ∫ w f since Σ φ_m = 1
	for _, cs := range []CoordSys{Cartesian2D, Axisymmetric2D} {
		b, _ := NewBuilder(cs, 1)
		r := make([]float64, dom.Ny)
		err = dom.AddToRhs(r, make([]float64, dom.Ny), []*fem.Form{b.Source(full, 0, ConstSource(2))})
		if err != nil {
			tst.Errorf("AddToRhs failed:\n%v", err)
			return
		}
		correct := -2.0
		if cs == Axisymmetric2D {
			correct = -2.0 * math.Pi
		}
		io.Pforan("%v: Σr = %v\n", cs, floats.Sum(r))
		chk.Float64(tst, "Σr "+cs.String(), 1e-13, floats.Sum(r), correct)
	}
}

func Test_jacobian01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("jacobian01. T-A Jacobian in 2D")

	msh, err := inp.GenRect(3, 2, 0, 1, 0, 1, []float64{0, 0.7, 0, 1})
	if err != nil {
		tst.Errorf("GenRect failed:\n%v", err)
		return
	}
	pl, _ := sc.NewPowerLaw(1, 1, 5)
	kim, _ := sc.NewKim(1, 5)
	fd, _ := sc.NewFieldDependent(1, 3, kim)
	for _, cs := range []CoordSys{Cartesian2D, Axisymmetric2D} {
		for _, mdl := range []sc.Model{pl, fd} {
			sys := coupled(tst, msh, cs, mdl)
			kb := tests.Kb{Tst: tst, Tol: 1e-6, Verb: chk.Verbose}
			kb.Check(io.Sf("%s-%s K", cs, mdl.Name()), sys, state(sys.Size()))
		}
	}

	// cross block dR_T/dA
	sys := coupled(tst, msh, Cartesian2D, fd)
	y := state(sys.Size())
	rows, cols := tests.FieldEqs(sys.Dom, "t", nil), tests.FieldEqs(sys.Dom, "a", nil)
	K := mat.NewDense(sys.Size(), sys.Size(), nil)
	if err = sys.Jacobian(K, y); err != nil {
		tst.Errorf("Jacobian failed:\n%v", err)
		return
	}
	kmax := 0.0
	for _, I := range rows {
		for _, J := range cols {
			kmax = math.Max(kmax, math.Abs(K.At(I, J)))
		}
	}
	if kmax == 0 {
		tst.Errorf("cross block must not vanish for field-dependent materials")
	}
	kb := tests.Kb{Tst: tst, Tol: 1e-6, Verb: chk.Verbose, Rows: rows, Cols: cols}
	kb.Check("KTA", sys, y)
}

func Test_jacobian02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("jacobian02. T-A Jacobian in 3D with edge elements")

	msh, err := inp.GenBox([]int{1, 1, 1}, []float64{0, 1, 0, 1, 0, 1}, nil)
	if err != nil {
		tst.Errorf("GenBox failed:\n%v", err)
		return
	}
	kim, _ := sc.NewKim(1, 5)
	fd, _ := sc.NewFieldDependent(1, 3, kim)
	sys := coupled(tst, msh, ThreeD, fd)
	kb := tests.Kb{Tst: tst, Tol: 1e-6, Verb: chk.Verbose}
	kb.Check("3d K", sys, state(sys.Size()))
}
