// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"
	"testing"

	"github.com/CarlosHernando16/gohts/errs"
	"github.com/CarlosHernando16/gohts/mdl/sc"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// SlabPotential computes the magnetic vector potential across a slab with uniform source
//
//        A = A0            -μ⁻¹ A'' = f             A = A1
//     x=0 o------------------------------------------o x=L
//
//   A(x) = f x (L - x) / (2 μ⁻¹) + A0 + (A1 - A0) x / L
//
type SlabPotential struct {
	MuInv  float64 // inverse permeability
	F      float64 // source
	L      float64 // width
	A0, A1 float64 // potential at x=0 and x=L
}

// Init initialises this structure
//  prms -- muinv, f, l, a0, a1; missing => 1, 1, 1, 0, 0
func (o *SlabPotential) Init(prms dbf.Params) (err error) {

	// default values
	o.MuInv, o.F, o.L, o.A0, o.A1 = 1, 1, 1, 0, 0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "muinv":
			o.MuInv = p.V
		case "f":
			o.F = p.V
		case "l":
			o.L = p.V
		case "a0":
			o.A0 = p.V
		case "a1":
			o.A1 = p.V
		default:
			return errs.Invalid("slab: parameter named %q is incorrect", p.N)
		}
	}
	if !(o.MuInv > 0) || !(o.L > 0) {
		return errs.Invalid("slab: muinv and l must be positive. muinv=%g l=%g", o.MuInv, o.L)
	}
	return
}

// A computes the potential at x (x[0] is the coordinate across the slab)
func (o SlabPotential) A(x []float64) float64 {
	ξ := x[0]
	return o.F*ξ*(o.L-ξ)/(2.0*o.MuInv) + o.A0 + (o.A1-o.A0)*ξ/o.L
}

// CheckA checks nodal values of A
//  X -- [nverts][ndim] coordinates
func (o SlabPotential) CheckA(tst *testing.T, A []float64, X [][]float64, tol float64, verbose bool) {
	for i, x := range X {
		chk.AnaNum(tst, io.Sf("A @ %v", x), tol, A[i], o.A(x), verbose)
	}
}

// SlabCurrent computes the uniform current flowing across a superconducting slab
// when T is prescribed on both faces
//
//        T = T0           ∇・(ρ(|J|) ∇T) = 0          T = T1
//     x=0 o------------------------------------------o x=L
//
//   T(x) = T0 + (T1 - T0) x / L,  J = (T0 - T1) / L,  E = ρ(|J|) J
//
type SlabCurrent struct {
	T0, T1 float64 // T at x=0 and x=L
	L      float64 // width
}

// Init initialises this structure
//  prms -- t0, t1, l; missing => 1, 0, 1
func (o *SlabCurrent) Init(prms dbf.Params) (err error) {
	o.T0, o.T1, o.L = 1, 0, 1
	for _, p := range prms {
		switch p.N {
		case "t0":
			o.T0 = p.V
		case "t1":
			o.T1 = p.V
		case "l":
			o.L = p.V
		default:
			return errs.Invalid("slab: parameter named %q is incorrect", p.N)
		}
	}
	if !(o.L > 0) {
		return errs.Invalid("slab: l must be positive. l=%g", o.L)
	}
	return
}

// T computes the current vector potential at x
func (o SlabCurrent) T(x []float64) float64 {
	return o.T0 + (o.T1-o.T0)*x[0]/o.L
}

// J returns the current density along x
func (o SlabCurrent) J() float64 {
	return (o.T0 - o.T1) / o.L
}

// E returns the electric field along x for a given material
func (o SlabCurrent) E(mdl sc.Model) float64 {
	j := o.J()
	return mdl.Rho(math.Abs(j), nil) * j
}

// CheckT checks nodal values of T
//  X -- [nverts][ndim] coordinates; NaN entries in T (vertices without T) are skipped
func (o SlabCurrent) CheckT(tst *testing.T, T []float64, X [][]float64, tol float64, verbose bool) {
	for i, x := range X {
		if math.IsNaN(T[i]) {
			continue
		}
		chk.AnaNum(tst, io.Sf("T @ %v", x), tol, T[i], o.T(x), verbose)
	}
}
