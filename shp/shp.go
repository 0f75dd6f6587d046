// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape structures/routines
package shp

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// constants
const MINDET = 1.0e-14 // minimum determinant allowed for dxdR

// ShpFunc is the shape functions callback type
type ShpFunc func(S []float64, dSdR [][]float64, r []float64, derivs bool)

// Shape holds geometry data
type Shape struct {

	// geometry
	Type           string      // name; e.g. "tri3"
	Func           ShpFunc     // shape/derivs function callback function
	Gndim          int         // geometry of shape; e.g. "tri3" => gnd == 2
	Nverts         int         // number of vertices in cell; e.g. "tri3" => 3
	VtkCode        int         // VTK code
	FaceType       string      // face shape; e.g. "tri3" => "lin2"
	NatCoords      [][]float64 // natural coordinates [gndim][nverts]
	FaceLocalVerts [][]int     // face local vertices [nfaces][nfaceverts]
	EdgeLocalVerts [][]int     // edge local vertices [nedges][2]

	// integration
	NipDefault int // default number of integration points

	// scratchpad: volume
	S    []float64   // [nverts] shape functions
	G    [][]float64 // [nverts][gndim] G == dSdx. derivative of shape function
	J    float64     // Jacobian: determinant of dxdr
	DSdR [][]float64 // [nverts][gndim] derivatives of S w.r.t natural coordinates
	DxdR [][]float64 // [gndim][gndim] derivatives of real coordinates w.r.t natural coordinates
	DRdx [][]float64 // [gndim][gndim] dRdx == inverse(dxdR)
}

// factory holds all Shapes available
var factory = map[string]*Shape{}

// Get returns an existent Shape structure
//  Note: 1) returns nil on errors
//        2) use a new copy per element since the scratchpad is shared otherwise
func Get(geoType string) *Shape {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	var o Shape
	o = *s
	o.S = make([]float64, o.Nverts)
	o.G = alloc(o.Nverts, o.Gndim)
	o.DSdR = alloc(o.Nverts, o.Gndim)
	o.DxdR = alloc(o.Gndim, o.Gndim)
	o.DRdx = alloc(o.Gndim, o.Gndim)
	return &o
}

// CalcAtIp calculates volume data such as S and G at natural coordinate r
//  Input:
//   x[ndim][nverts] -- coordinates matrix of solid element
//   r               -- natural coordinates
//   derivs          -- also compute derivatives
//  Output:
//   S, DSdR, DxdR, DRdx, G, and J
func (o *Shape) CalcAtIp(x [][]float64, r []float64, derivs bool) (err error) {

	// S and dSdR
	o.Func(o.S, o.DSdR, r, derivs)
	if !derivs {
		return
	}

	// dxdR := sum_n x * dSdR   =>  dx_i/dR_j := sum_n x^n_i * dS^n/dR_j
	n := o.Gndim
	dxdr := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			o.DxdR[i][j] = 0.0
			for m := 0; m < o.Nverts; m++ {
				o.DxdR[i][j] += x[i][m] * o.DSdR[m][j]
			}
			dxdr.Set(i, j, o.DxdR[i][j])
		}
	}

	// dRdx := inv(dxdR)
	o.J = mat.Det(dxdr)
	if o.J < MINDET {
		return chk.Err("inverse of dx/dR failed: invalid determinant (negative or too small). J = %g", o.J)
	}
	var drdx mat.Dense
	err = drdx.Inverse(dxdr)
	if err != nil {
		return chk.Err("inverse of dx/dR failed:\n%v", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			o.DRdx[i][j] = drdx.At(i, j)
		}
	}

	// G == dSdx := dSdR * dRdx  =>  dS^m/dR_i := sum_i dS^m/dR_i * dR_i/dx_j
	for m := 0; m < o.Nverts; m++ {
		for j := 0; j < n; j++ {
			o.G[m][j] = 0.0
			for i := 0; i < n; i++ {
				o.G[m][j] += o.DSdR[m][i] * o.DRdx[i][j]
			}
		}
	}
	return
}

// IpRealCoords returns the real coordinates (y) of an integration point
func (o *Shape) IpRealCoords(x [][]float64, ip *Ipoint) (y []float64) {
	ndim := len(x)
	y = make([]float64, ndim)
	o.Func(o.S, o.DSdR, []float64{ip.R, ip.S, ip.T}, false)
	for i := 0; i < ndim; i++ {
		for m := 0; m < o.Nverts; m++ {
			y[i] += o.S[m] * x[i][m]
		}
	}
	return
}

// alloc allocates a matrix
func alloc(m, n int) (a [][]float64) {
	a = make([][]float64, m)
	for i := range a {
		a[i] = make([]float64, n)
	}
	return
}
