// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sc

import (
	"math"
	"strings"

	"github.com/CarlosHernando16/gohts/errs"
	"github.com/cpmech/gosl/fun/dbf"
)

// Kim implements the Kim model for the field dependence of the critical current density
//
//   jc(B) = jc0 / (1 + |B|reg/b0)
//
type Kim struct {
	Jc0 float64 // critical current density at zero field
	B0  float64 // characteristic field
}

// NewKim returns a new Kim model
func NewKim(jc0, b0 float64) (*Kim, error) {
	if !(jc0 > 0) {
		return nil, errs.Invalid("kim: jc0 must be positive. jc0 = %g", jc0)
	}
	if !(b0 > 0) {
		return nil, errs.Invalid("kim: b0 must be positive. b0 = %g", b0)
	}
	return &Kim{jc0, b0}, nil
}

// Jc computes the critical current density
func (o Kim) Jc(b []float64) float64 {
	return o.Jc0 / (1.0 + RegNorm(b)/o.B0)
}

// DjcDb computes ∂jc/∂B = -(jc²/(jc0 b0)) B/|B|reg
func (o Kim) DjcDb(djcdb, b []float64) {
	bn := RegNorm(b)
	jc := o.Jc0 / (1.0 + bn/o.B0)
	c := -jc * jc / (o.Jc0 * o.B0 * bn)
	for i := range djcdb {
		djcdb[i] = c * b[i]
	}
}

// FieldDependent implements the power law with a field-dependent critical current density
//
//   ρ(J,B) = (ec/jc(B)) (max(J,ε)/jc(B))^(n-1)
//
type FieldDependent struct {
	ec  float64 // critical electric field
	n   int     // exponent
	kim Kim     // field dependence
}

// add model to factory
func init() {
	allocators["kim"] = func(prms dbf.Params) (Model, error) {
		var ec, n, jc0, b0 float64
		for _, p := range prms {
			switch strings.ToLower(p.N) {
			case "ec":
				ec = p.V
			case "n":
				n = p.V
			case "jc0":
				jc0 = p.V
			case "b0":
				b0 = p.V
			default:
				return nil, errs.Invalid("kim: parameter named %q is incorrect", p.N)
			}
		}
		if n != math.Trunc(n) {
			return nil, errs.Invalid("kim: exponent must be an integer. n = %g", n)
		}
		kim, err := NewKim(jc0, b0)
		if err != nil {
			return nil, err
		}
		mdl, err := NewFieldDependent(ec, int(n), kim)
		if err != nil {
			return nil, err
		}
		return mdl, nil
	}
}

// NewFieldDependent returns a new field-dependent power law
func NewFieldDependent(ec float64, n int, kim *Kim) (*FieldDependent, error) {
	if !(ec > 0) {
		return nil, errs.Invalid("kim: ec must be positive. ec = %g", ec)
	}
	if n <= 0 {
		return nil, errs.Invalid("kim: n must be positive. n = %d", n)
	}
	if kim == nil {
		return nil, errs.Invalid("kim: field dependence is missing")
	}
	return &FieldDependent{ec, n, *kim}, nil
}

// Name returns the model name
func (o *FieldDependent) Name() string { return "kim" }

// Exponent returns n
func (o *FieldDependent) Exponent() int { return o.n }

// Kim returns the field dependence
func (o *FieldDependent) Kim() Kim { return o.kim }

// FieldDependent returns true
func (o *FieldDependent) FieldDependent() bool { return true }

// Rho computes ρ(J,B)
func (o *FieldDependent) Rho(jnorm float64, b []float64) float64 {
	jc := o.kim.Jc(b)
	return o.ec / jc * math.Pow(floor(jnorm)/jc, float64(o.n-1))
}

// DrhoDj computes ∂ρ/∂J with jc evaluated at B
func (o *FieldDependent) DrhoDj(jnorm float64, b []float64) float64 {
	jc := o.kim.Jc(b)
	return o.ec / (jc * jc) * float64(o.n-1) * math.Pow(floor(jnorm)/jc, float64(o.n-2))
}

// DrhoDb computes ∂ρ/∂B = -(n ρ/jc) ∂jc/∂B
func (o *FieldDependent) DrhoDb(dρdb, b []float64, jnorm float64) {
	jc := o.kim.Jc(b)
	c := -float64(o.n) * o.Rho(jnorm, b) / jc
	o.kim.DjcDb(dρdb, b)
	for i := range dρdb {
		dρdb[i] *= c
	}
}

// E computes the electric field
func (o *FieldDependent) E(e, j, b []float64) { efield(o, e, j, b) }

// WithExponent returns a copy with exponent n
func (o *FieldDependent) WithExponent(n int) (Model, error) {
	kim := o.kim
	mdl, err := NewFieldDependent(o.ec, n, &kim)
	if err != nil {
		return nil, err
	}
	return mdl, nil
}
