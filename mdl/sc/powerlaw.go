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

// PowerLaw implements the E-J power law with constant critical current density
//
//   ρ(J) = (ec/jc) (max(J,ε)/jc)^(n-1)
//
type PowerLaw struct {
	ec float64 // critical electric field [V/m]
	jc float64 // critical current density [A/m²]
	n  int     // exponent
}

// add model to factory
func init() {
	allocators["powerlaw"] = func(prms dbf.Params) (Model, error) {
		var ec, jc, n float64
		for _, p := range prms {
			switch strings.ToLower(p.N) {
			case "ec":
				ec = p.V
			case "jc":
				jc = p.V
			case "n":
				n = p.V
			default:
				return nil, errs.Invalid("powerlaw: parameter named %q is incorrect", p.N)
			}
		}
		if n != math.Trunc(n) {
			return nil, errs.Invalid("powerlaw: exponent must be an integer. n = %g", n)
		}
		mdl, err := NewPowerLaw(ec, jc, int(n))
		if err != nil {
			return nil, err
		}
		return mdl, nil
	}
}

// NewPowerLaw returns a new power-law model
func NewPowerLaw(ec, jc float64, n int) (*PowerLaw, error) {
	if !(ec > 0) {
		return nil, errs.Invalid("powerlaw: ec must be positive. ec = %g", ec)
	}
	if !(jc > 0) {
		return nil, errs.Invalid("powerlaw: jc must be positive. jc = %g", jc)
	}
	if n <= 0 {
		return nil, errs.Invalid("powerlaw: n must be positive. n = %d", n)
	}
	return &PowerLaw{ec, jc, n}, nil
}

// Name returns the model name
func (o *PowerLaw) Name() string { return "powerlaw" }

// Exponent returns n
func (o *PowerLaw) Exponent() int { return o.n }

// Jc returns the critical current density
func (o *PowerLaw) Jc() float64 { return o.jc }

// Ec returns the critical electric field
func (o *PowerLaw) Ec() float64 { return o.ec }

// FieldDependent returns false
func (o *PowerLaw) FieldDependent() bool { return false }

// Rho computes ρ(J)
func (o *PowerLaw) Rho(jnorm float64, b []float64) float64 {
	return o.ec / o.jc * math.Pow(floor(jnorm)/o.jc, float64(o.n-1))
}

// DrhoDj computes dρ/dJ = (ec/jc²) (n-1) (max(J,ε)/jc)^(n-2)
func (o *PowerLaw) DrhoDj(jnorm float64, b []float64) float64 {
	return o.ec / (o.jc * o.jc) * float64(o.n-1) * math.Pow(floor(jnorm)/o.jc, float64(o.n-2))
}

// DrhoDb sets ∂ρ/∂B = 0
func (o *PowerLaw) DrhoDb(dρdb, b []float64, jnorm float64) {
	for i := range dρdb {
		dρdb[i] = 0
	}
}

// E computes the electric field
func (o *PowerLaw) E(e, j, b []float64) { efield(o, e, j, b) }

// WithExponent returns a copy with exponent n
func (o *PowerLaw) WithExponent(n int) (Model, error) {
	mdl, err := NewPowerLaw(o.ec, o.jc, n)
	if err != nil {
		return nil, err
	}
	return mdl, nil
}
