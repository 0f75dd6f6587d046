// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// CheckShape checks that shape functions evaluate to 1.0 @ nodes
func CheckShape(tst *testing.T, shape *Shape, tol float64, verbose bool) {

	// loop over all vertices
	errS := 0.0
	r := []float64{0, 0, 0}
	for n := 0; n < shape.Nverts; n++ {

		// natural coordinates @ vertex
		for i := 0; i < shape.Gndim; i++ {
			r[i] = shape.NatCoords[i][n]
		}

		// compute function
		shape.Func(shape.S, shape.DSdR, r, false)

		// check
		if verbose {
			io.Pf("S = %v\n", shape.S)
		}
		for m := 0; m < shape.Nverts; m++ {
			if n == m {
				errS += math.Abs(shape.S[m] - 1.0)
			} else {
				errS += math.Abs(shape.S[m])
			}
		}
	}

	// error
	if errS > tol {
		tst.Errorf("%s failed with err = %g\n", shape.Type, errS)
		return
	}
}

// CheckShapeFace checks shape functions @ faces
//  functions of vertices not on a face must vanish at the face vertices
func CheckShapeFace(tst *testing.T, shape *Shape, tol float64, verbose bool) {

	// loop over face vertices
	errS := 0.0
	r := []float64{0, 0, 0}
	for k := range shape.FaceLocalVerts {
		for _, n := range shape.FaceLocalVerts[k] {

			// natural coordinates @ vertex
			for i := 0; i < shape.Gndim; i++ {
				r[i] = shape.NatCoords[i][n]
			}

			// compute function
			shape.Func(shape.S, shape.DSdR, r, false)

			// check
			if verbose {
				io.Pforan("S = %v\n", shape.S)
			}
			for m := 0; m < shape.Nverts; m++ {
				if n == m {
					errS += math.Abs(shape.S[m] - 1.0)
				} else {
					errS += math.Abs(shape.S[m])
				}
			}
		}
	}

	// error
	if verbose {
		io.Pforan("%g\n", errS)
	}
	if errS > tol {
		tst.Errorf("%s failed with err = %g\n", shape.Type, errS)
		return
	}
}

// CheckDSdR checks dSdR derivatives of shape structures with central differences
func CheckDSdR(tst *testing.T, shape *Shape, r []float64, tol float64, verbose bool) {

	// analytical
	shape.Func(shape.S, shape.DSdR, r, true)
	ana := make([][]float64, shape.Nverts)
	for m := range ana {
		ana[m] = append([]float64{}, shape.DSdR[m]...)
	}

	// numerical
	h := 1e-3
	Sp := make([]float64, shape.Nverts)
	Sm := make([]float64, shape.Nverts)
	tmp := make([]float64, len(r))
	for j := 0; j < shape.Gndim; j++ {
		copy(tmp, r)
		tmp[j] = r[j] + h
		shape.Func(Sp, nil, tmp, false)
		tmp[j] = r[j] - h
		shape.Func(Sm, nil, tmp, false)
		for m := 0; m < shape.Nverts; m++ {
			num := (Sp[m] - Sm[m]) / (2 * h)
			chk.AnaNum(tst, io.Sf("dS%d/dR%d", m, j), tol, ana[m][j], num, verbose)
		}
	}
}

// CheckGrad checks that G reproduces the gradient of the coordinates: sum_m x_i^m G^m_j = δ_ij
//  x[ndim][nverts] -- coordinates matrix
func CheckGrad(tst *testing.T, shape *Shape, x [][]float64, r []float64, tol float64) {
	err := shape.CalcAtIp(x, r, true)
	if err != nil {
		tst.Errorf("CalcAtIp failed:\n%v", err)
		return
	}
	for i := 0; i < shape.Gndim; i++ {
		for j := 0; j < shape.Gndim; j++ {
			res := 0.0
			for m := 0; m < shape.Nverts; m++ {
				res += x[i][m] * shape.G[m][j]
			}
			δ := 0.0
			if i == j {
				δ = 1.0
			}
			chk.Float64(tst, io.Sf("dx%d/dx%d", i, j), tol, res, δ)
		}
	}
}
