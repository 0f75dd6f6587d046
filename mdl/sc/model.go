// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sc implements constitutive models for superconductors (E-J power laws)
package sc

import (
	"math"

	"github.com/CarlosHernando16/gohts/errs"
	"github.com/cpmech/gosl/fun/dbf"
)

// Eps is the floor applied to |J| in the resistivity and the regularisation in RegNorm
const Eps = 1e-12

// Model defines the resistivity law of a superconducting material
//
//   E = ρ(|J|, B) J
//
//  Notes:
//   1) models are immutable; WithExponent returns a new value
//   2) b may be nil for models that do not depend on the magnetic flux density
type Model interface {
	Name() string                              // model name
	Exponent() int                             // power-law exponent n
	Rho(jnorm float64, b []float64) float64    // resistivity ρ
	DrhoDj(jnorm float64, b []float64) float64 // dρ/d|J|
	DrhoDb(dρdb, b []float64, jnorm float64)   // ∂ρ/∂B (zero if independent of B)
	E(e, j, b []float64)                       // electric field E = ρ(|J|reg) J
	WithExponent(n int) (Model, error)         // returns a copy with a new exponent
	FieldDependent() bool                      // whether ρ depends on B
}

// New allocates a model by name and initialises it with parameters
//  powerlaw -- ec, jc, n
//  kim      -- ec, n, jc0, b0
func New(name string, prms dbf.Params) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, errs.Unsupported("model %q is not available in 'sc' database", name)
	}
	return allocator(prms)
}

// allocators holds all available models
var allocators = map[string]func(prms dbf.Params) (Model, error){}

// RegNorm computes the regularised norm sqrt(v・v + Eps)
func RegNorm(v []float64) float64 {
	s := Eps
	for _, x := range v {
		s += x * x
	}
	return math.Sqrt(s)
}

// floor applies the lower limit Eps to |J|
func floor(jnorm float64) float64 {
	if jnorm < Eps {
		return Eps
	}
	return jnorm
}

// efield computes e := ρ(|j|reg) j
func efield(o Model, e, j, b []float64) {
	ρ := o.Rho(RegNorm(j), b)
	for i := range j {
		e[i] = ρ * j[i]
	}
}
