// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sc

import (
	"errors"
	"math"
	"testing"

	"github.com/CarlosHernando16/gohts/errs"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/floats"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_powerlaw01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("powerlaw01. resistivity and electric field")

	mdl, err := NewPowerLaw(1e-4, 1e9, 25)
	if err != nil {
		tst.Errorf("NewPowerLaw failed:\n%v", err)
		return
	}

	// ρ(jc) = ec/jc
	chk.Float64(tst, "ρ(jc)", 1e-28, mdl.Rho(1e9, nil), 1e-13)

	// |E| at |J| = jc
	e := make([]float64, 2)
	mdl.E(e, []float64{1e9, 0}, nil)
	chk.Float64(tst, "|E(jc)|", 1e-15, math.Hypot(e[0], e[1]), 1e-4)

	// floor
	chk.Float64(tst, "ρ(0)", 1e-300, mdl.Rho(0, nil), mdl.Rho(Eps, nil))
	if mdl.Rho(0, nil) < 0 {
		tst.Errorf("ρ must be non-negative")
	}

	// ρ is increasing for n > 1
	if !(mdl.Rho(0.5e9, nil) < mdl.Rho(1e9, nil) && mdl.Rho(1e9, nil) < mdl.Rho(2e9, nil)) {
		tst.Errorf("ρ should increase with J")
	}

	// derivative
	J, δ := 1e9, 1e3
	num := (mdl.Rho(J+δ, nil) - mdl.Rho(J-δ, nil)) / (2 * δ)
	ana := mdl.DrhoDj(J, nil)
	io.Pforan("dρ/dJ: ana = %v  num = %v\n", ana, num)
	chk.Float64(tst, "dρ/dJ (relative)", 1e-6, num/ana, 1)
}

func Test_powerlaw02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("powerlaw02. validation and immutability")

	for _, c := range []struct {
		ec, jc float64
		n      int
	}{{0, 1e9, 25}, {1e-4, -1, 25}, {1e-4, 1e9, 0}} {
		_, err := NewPowerLaw(c.ec, c.jc, c.n)
		if !errors.Is(err, errs.ErrInvalidParameter) {
			tst.Errorf("NewPowerLaw(%g,%g,%d) should fail with invalid parameter. err = %v", c.ec, c.jc, c.n, err)
			return
		}
	}

	mdl, _ := NewPowerLaw(1e-4, 1e9, 25)
	m5, err := mdl.WithExponent(5)
	if err != nil {
		tst.Errorf("WithExponent failed:\n%v", err)
		return
	}
	chk.Int(tst, "n (new)", m5.Exponent(), 5)
	chk.Int(tst, "n (old)", mdl.Exponent(), 25)
	if _, err = mdl.WithExponent(-1); !errors.Is(err, errs.ErrInvalidParameter) {
		tst.Errorf("negative exponent should fail. err = %v", err)
	}
}

func Test_kim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kim01. field dependent critical current density")

	kim, err := NewKim(1e10, 0.1)
	if err != nil {
		tst.Errorf("NewKim failed:\n%v", err)
		return
	}
	chk.Float64(tst, "jc(0)", 1e6, kim.Jc([]float64{0, 0}), 1e10)
	chk.Float64(tst, "jc(b0)", 1e6, kim.Jc([]float64{0.1, 0}), 5e9)

	mdl, err := NewFieldDependent(1e-4, 25, kim)
	if err != nil {
		tst.Errorf("NewFieldDependent failed:\n%v", err)
		return
	}

	// ∂ρ/∂J
	b := []float64{0.03, -0.04, 0}
	J, δ := 1e9, 1e3
	num := (mdl.Rho(J+δ, b) - mdl.Rho(J-δ, b)) / (2 * δ)
	chk.Float64(tst, "∂ρ/∂J (relative)", 1e-6, num/mdl.DrhoDj(J, b), 1)

	// ∂ρ/∂B scaled by ρ
	ρ0 := mdl.Rho(J, b)
	dρdb := make([]float64, 3)
	mdl.DrhoDb(dρdb, b, J)
	for i := range dρdb {
		dρdb[i] /= ρ0
	}
	chk.DerivScaVec(tst, "∂ρ/∂B/ρ", 1e-5, dρdb, b, 1e-4, chk.Verbose, func(x []float64) float64 {
		return mdl.Rho(J, x) / ρ0
	})

	// ρ grows with |B| because jc decreases
	if !(mdl.Rho(J, []float64{0.5, 0, 0}) > mdl.Rho(J, []float64{0.1, 0, 0})) {
		tst.Errorf("ρ should increase with |B|")
	}
}

func Test_kim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kim02. jc decreases with |B|")

	kim, _ := NewKim(1e10, 0.1)
	mdl, _ := NewFieldDependent(1e-4, 25, kim)
	jcOld := math.Inf(1)
	for _, bn := range utl.LinSpace(0, 2, 41) {
		jc := mdl.Kim().Jc([]float64{0.6 * bn, -0.8 * bn, 0})
		io.Pforan("|B| = %5.2f  jc = %v\n", bn, jc)
		if !(jc < jcOld) {
			tst.Errorf("jc must decrease strictly. |B| = %g: jc = %g >= %g", bn, jc, jcOld)
			return
		}
		jcOld = jc
	}
}

// checkParallel checks that E is parallel to J and that |E| = ec when |J| = jc
func checkParallel(tst *testing.T, mdl Model, ec, jc float64, j, b []float64) {
	e := make([]float64, len(j))
	mdl.E(e, j, b)
	ĵ := make([]float64, len(j))
	floats.ScaleTo(ĵ, 1/floats.Norm(j, 2), j)
	perp := make([]float64, len(j))
	floats.AddScaledTo(perp, e, -floats.Dot(e, ĵ), ĵ)
	io.Pforan("%s: E = %v\n", mdl.Name(), e)
	chk.Float64(tst, mdl.Name()+": |E⊥|/|E|", 1e-14, floats.Norm(perp, 2)/floats.Norm(e, 2), 0)
	if floats.Dot(e, ĵ) <= 0 {
		tst.Errorf("%s: E must point along J", mdl.Name())
	}
	floats.Scale(jc, ĵ)
	mdl.E(e, ĵ, b)
	chk.Float64(tst, mdl.Name()+": |E(jc)|", 1e-15, floats.Norm(e, 2), ec)
}

func Test_efield01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("efield01. electric field along an off-axis J")

	j := []float64{3e8, -4e8, 1e8}
	b := []float64{0.03, -0.04, 0.01}

	pl, _ := NewPowerLaw(1e-4, 1e9, 25)
	checkParallel(tst, pl, pl.Ec(), pl.Jc(), j, b)

	kim, _ := NewKim(1e10, 0.1)
	fd, _ := NewFieldDependent(1e-4, 25, kim)
	checkParallel(tst, fd, 1e-4, fd.Kim().Jc(b), j, b)
}

func Test_factory01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("factory01. allocate models by name")

	mdl, err := New("powerlaw", dbf.Params{
		&dbf.P{N: "ec", V: 1e-4},
		&dbf.P{N: "jc", V: 1e9},
		&dbf.P{N: "n", V: 25},
	})
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	chk.Int(tst, "n", mdl.Exponent(), 25)
	chk.Float64(tst, "ρ(jc)", 1e-28, mdl.Rho(1e9, nil), 1e-13)

	mdl, err = New("kim", dbf.Params{
		&dbf.P{N: "ec", V: 1e-4},
		&dbf.P{N: "n", V: 20},
		&dbf.P{N: "jc0", V: 1e10},
		&dbf.P{N: "b0", V: 0.1},
	})
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	if !mdl.FieldDependent() {
		tst.Errorf("kim model must depend on B")
	}

	_, err = New("bean", nil)
	if !errors.Is(err, errs.ErrUnsupportedCombination) {
		tst.Errorf("unknown model should be unsupported. err = %v", err)
	}
	_, err = New("powerlaw", dbf.Params{&dbf.P{N: "jc", V: 1e9}, &dbf.P{N: "n", V: 2.5}, &dbf.P{N: "ec", V: 1}})
	if !errors.Is(err, errs.ErrInvalidParameter) {
		tst.Errorf("non-integer exponent should be invalid. err = %v", err)
	}
}

func Test_plot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plot01. material curves")

	mdl, _ := NewPowerLaw(1e-4, 1e9, 25)
	err := Plot(mdl, tst.TempDir(), "powerlaw.png", 1e8, 2e9, 0, 41)
	if err != nil {
		tst.Errorf("Plot failed:\n%v", err)
	}
	if Plot(mdl, tst.TempDir(), "x.png", 0, 1, 0, 41) == nil {
		tst.Errorf("Plot should reject jmin = 0")
	}
}
