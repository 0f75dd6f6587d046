// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/CarlosHernando16/gohts/errs"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// EssentialBc holds information about essential bounday conditions such as constrained nodes.
// Lagrange multipliers are used to implement single-point constraints.
//  In general, essential bcs / constraints are defined by means of:
//
//      A・y = c
//
//  The resulting Kb matrix will then have the following form:
//      _       _
//     |  K  At  | / δy \     / R + At*λ \
//     |         | |    | = - |          |
//     |_ A   0 _| \ δλ /     \  A*y - c /
//         Kb       δyb           rb
//
type EssentialBc struct {
	Key   string    // key such as 'a', 't'
	Eqs   []int     // equations numbers
	ValsA []float64 // values for matrix A
	C     float64   // value of "c" in  A・y = c
}

// EbcArray is an array of EssentialBc's
type EbcArray []*EssentialBc

// EssentialBcs implements a structure to record the definition of essential bcs / constraints.
// Each constraint will have a unique Lagrange multiplier index.
type EssentialBcs struct {
	Ny  int      // number of equations, except λ
	Bcs EbcArray // active essential bcs / constraints
}

// NewEssentialBcs returns a new structure for a system with ny equations
func NewEssentialBcs(ny int) *EssentialBcs {
	return &EssentialBcs{Ny: ny}
}

// Nlam returns the number of Lagrange multipliers
func (o *EssentialBcs) Nlam() int { return len(o.Bcs) }

// Build sorts the constraints so that Lagrange multipliers are numbered by equation
func (o *EssentialBcs) Build() {
	sort.Sort(o.Bcs)
}

// AddToRhs adds the essential bcs / constraints terms to the augmented residual rb
//  yb = {y, λ}
func (o *EssentialBcs) AddToRhs(rb, yb []float64) {
	ny := o.Ny
	for i, bc := range o.Bcs {
		λ := yb[ny+i]
		rb[ny+i] = -bc.C
		for j, eq := range bc.Eqs {
			rb[eq] += bc.ValsA[j] * λ        // rb += At * λ
			rb[ny+i] += bc.ValsA[j] * yb[eq] // rc = A * y - c
		}
	}
}

// AddToKb adds A and At to the augmented Jacobian
func (o *EssentialBcs) AddToKb(Kb *mat.Dense) {
	ny := o.Ny
	for i, bc := range o.Bcs {
		for j, eq := range bc.Eqs {
			Kb.Set(ny+i, eq, bc.ValsA[j])
			Kb.Set(eq, ny+i, bc.ValsA[j])
		}
	}
}

// SetNodes sets single-point constraints at nodes
//  key -- dof key; nodes without this key are skipped
//  fcn -- function of space giving c; nil => zero
func (o *EssentialBcs) SetNodes(key string, nodes []*Node, fcn func(x []float64) float64) {
	for _, nod := range nodes {

		// get DOF
		d := nod.GetDof(key)
		if d == nil {
			continue // node doesn't have key. ex: t outside the superconductor
		}

		// set constraint
		c := 0.0
		if fcn != nil {
			c = fcn(nod.Vert.C)
		}
		o.setEqs(key, []int{d.Eq}, []float64{1}, c)
	}
}

// SetEdges sets homogeneous tangential constraints at edges
//  key -- dof key; edges without this key are skipped
//  fcn -- must be nil; only homogeneous conditions are available for edge dofs
func (o *EssentialBcs) SetEdges(key string, edges []*Edge, fcn func(x []float64) float64) error {
	if fcn != nil {
		return errs.Unsupported("non-homogeneous essential conditions on edge dofs (key %q) are not available", key)
	}
	for _, edge := range edges {
		eq := edge.GetEq(key)
		if eq < 0 {
			continue
		}
		o.setEqs(key, []int{eq}, []float64{1}, 0)
	}
	return nil
}

// List returns a simple list logging bcs
func (o *EssentialBcs) List() (l string) {
	l = "\n==================================================\n"
	l += io.Sf("%8s%8s%25s\n", "eq", "key", "value")
	l += "--------------------------------------------------\n"
	sort.Sort(o.Bcs)
	for _, bc := range o.Bcs {
		l += io.Sf("%8d%8s%25.13f\n", bc.Eqs[0], bc.Key, bc.C)
	}
	l += "==================================================\n"
	return
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////////

// setEqs sets/replace constraint and equations
func (o *EssentialBcs) setEqs(key string, eqs []int, valsA []float64, c float64) {

	// replace existent
	for _, eq := range eqs {
		for _, bc := range o.Bcs {
			for _, eqOld := range bc.Eqs {
				if eqOld == eq {
					bc.Key, bc.Eqs, bc.ValsA, bc.C = key, eqs, valsA, c
					return
				}
			}
		}
	}

	// add new
	o.Bcs = append(o.Bcs, &EssentialBc{key, eqs, valsA, c})
}

// functions to implement Sort interface
func (o EbcArray) Len() int      { return len(o) }
func (o EbcArray) Swap(i, j int) { o[i], o[j] = o[j], o[i] }
func (o EbcArray) Less(i, j int) bool {
	sort.Ints(o[i].Eqs)
	sort.Ints(o[j].Eqs)
	return o[i].Eqs[0] < o[j].Eqs[0]
}
