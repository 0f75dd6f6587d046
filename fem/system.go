// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// System holds the weak forms and essential conditions of a discretised problem.
// It implements the augmented nonlinear system
//
//   rb(yb) = { R(y) + At λ ,  A y - c }    with    yb = {y, λ}
//
type System struct {
	Dom    *Domain       // discretisation
	Forms  []*Form       // weak forms
	Ebcs   *EssentialBcs // essential conditions
	Linear bool          // R is affine in y
}

// NewSystem returns a new System
func NewSystem(dom *Domain, ebcs *EssentialBcs, linear bool, forms ...*Form) (o *System, err error) {
	if ebcs.Ny != dom.Ny {
		return nil, chk.Err("essential conditions were set for %d equations but domain has %d", ebcs.Ny, dom.Ny)
	}
	for _, f := range forms {
		if f.Region == nil {
			return nil, chk.Err("form %q has no region", f.Name)
		}
	}
	return &System{dom, forms, ebcs, linear}, nil
}

// Size returns the number of equations ny + nλ
func (o *System) Size() int {
	return o.Dom.Ny + o.Ebcs.Nlam()
}

// Residual computes rb := rb(yb)
func (o *System) Residual(rb, yb []float64) (err error) {
	for i := range rb {
		rb[i] = 0
	}
	ny := o.Dom.Ny
	err = o.Dom.AddToRhs(rb[:ny], yb[:ny], o.Forms)
	if err != nil {
		return
	}
	o.Ebcs.AddToRhs(rb, yb)
	return
}

// Jacobian computes Kb := drb/dyb
func (o *System) Jacobian(Kb *mat.Dense, yb []float64) (err error) {
	Kb.Zero()
	err = o.Dom.AddToKb(Kb, yb[:o.Dom.Ny], o.Forms)
	if err != nil {
		return
	}
	o.Ebcs.AddToKb(Kb)
	return
}
