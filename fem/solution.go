// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Solution holds the solution data.
//
//        / a \         / a \
//        |   | => y =  |   |
//  yb =  | t |         \ t / (ny x 1)
//        |   |
//        \ λ / (nyb x 1)
//
//  A Solution owns its slices; use Clone to pass it on
type Solution struct {
	Dom *Domain   // discretisation
	Y   []float64 // DOFs (solution variables); e.g. y = {a, t}
	L   []float64 // Lagrange multipliers
}

// NewSolution copies yb = {y, λ} into a new Solution
func NewSolution(dom *Domain, yb []float64) *Solution {
	o := &Solution{Dom: dom}
	o.Y = append([]float64{}, yb[:dom.Ny]...)
	o.L = append([]float64{}, yb[dom.Ny:]...)
	return o
}

// Clone returns a deep copy
func (o *Solution) Clone() *Solution {
	return &Solution{o.Dom, append([]float64{}, o.Y...), append([]float64{}, o.L...)}
}

// Yb returns a new slice with {y, λ}
func (o *Solution) Yb() []float64 {
	yb := make([]float64, 0, len(o.Y)+len(o.L))
	return append(append(yb, o.Y...), o.L...)
}

// Norm returns max |y_i| (λ excluded)
func (o *Solution) Norm() (res float64) {
	for _, v := range o.Y {
		res = math.Max(res, math.Abs(v))
	}
	return
}

// Field returns the values of the dofs of a field in the order of their equations
func (o *Solution) Field(key string) (vals []float64) {
	for _, eq := range o.Dom.Field2eqs[key] {
		vals = append(vals, o.Y[eq])
	}
	return
}

// NodalValues returns the values of a Lagrange field at all vertices; NaN where the field does not exist
func (o *Solution) NodalValues(key string) (vals []float64) {
	vals = make([]float64, len(o.Dom.Msh.Verts))
	for i := range vals {
		vals[i] = math.NaN()
		if nod := o.Dom.Vid2node[i]; nod != nil {
			if eq := nod.GetEq(key); eq >= 0 {
				vals[i] = o.Y[eq]
			}
		}
	}
	return
}

// CellCurl returns the curl of a field at the first integration point of each cell;
// nil entries mark cells where the field does not exist
//  2D Lagrange: (∂u/∂y, -∂u/∂x, 0);  3D Nédélec: curl u
func (o *Solution) CellCurl(key string) (curl [][]float64, err error) {
	idx := o.Dom.FieldIndex(key)
	if idx < 0 {
		return nil, chk.Err("cannot find field %q", key)
	}
	curl = make([][]float64, len(o.Dom.Elems))
	for i, e := range o.Dom.Elems {
		p, err := e.CalcIp(0, o.Y)
		if err != nil {
			return nil, err
		}
		fld := p.Fields[idx]
		if fld.Active {
			curl[i] = append([]float64{}, fld.Curl...)
		}
	}
	return
}
