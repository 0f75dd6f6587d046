// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"errors"
	"testing"

	"github.com/CarlosHernando16/gohts/errs"
	"github.com/CarlosHernando16/gohts/mdl/sc"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_slab01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("slab01. potential across slab")

	var sla SlabPotential
	err := sla.Init(dbf.Params{
		&dbf.P{N: "muinv", V: 2},
		&dbf.P{N: "f", V: 4},
		&dbf.P{N: "l", V: 2},
		&dbf.P{N: "a1", V: 1},
	})
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}

	// boundary values and maximum of the parabola
	chk.Float64(tst, "A(0)", 1e-15, sla.A([]float64{0, 3}), 0)
	chk.Float64(tst, "A(L)", 1e-15, sla.A([]float64{2, 3}), 1)
	chk.Float64(tst, "A(L/2)", 1e-15, sla.A([]float64{1, 0}), 1+0.5)

	// -μ⁻¹ A'' = f with central differences
	h := 1e-3
	for _, x := range utl.LinSpace(0.1, 1.9, 7) {
		d2 := (sla.A([]float64{x + h}) - 2*sla.A([]float64{x}) + sla.A([]float64{x - h})) / (h * h)
		chk.AnaNum(tst, io.Sf("f @ %.2f", x), 1e-6, -sla.MuInv*d2, sla.F, chk.Verbose)
	}

	err = sla.Init(dbf.Params{&dbf.P{N: "mu", V: 1}})
	if !errors.Is(err, errs.ErrInvalidParameter) {
		tst.Errorf("wrong parameter name should be invalid. err = %v", err)
	}
}

func Test_slab02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("slab02. uniform current across slab")

	var slc SlabCurrent
	err := slc.Init(dbf.Params{&dbf.P{N: "t0", V: 1.5}})
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	chk.Float64(tst, "J", 1e-15, slc.J(), 1.5)
	chk.Float64(tst, "T(0.5)", 1e-15, slc.T([]float64{0.5, 0}), 0.75)

	// |E| = ec when |J| = jc
	mdl, _ := sc.NewPowerLaw(1e-4, 1.5, 25)
	chk.Float64(tst, "E(J=jc)", 1e-17, slc.E(mdl), 1e-4)
}
