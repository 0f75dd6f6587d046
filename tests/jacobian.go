// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests implements structures and functions to test assembled systems
package tests

import (
	"testing"

	"github.com/CarlosHernando16/gohts/nonlin"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// Kb helps on checking Jacobian matrices of nonlinear systems
type Kb struct {

	// input (must)
	Tst  *testing.T // testing structure
	Tol  float64    // tolerance to compare K's
	Step float64    // step for finite differences method
	Verb bool       // verbose: show results
	Rows []int      // equations (rows) to be tested; nil means all
	Cols []int      // unknowns (columns) to be tested; nil means all

	// derived
	rp, rm []float64 // residuals at y ± step
}

// Check compares the Jacobian of sys at y with central differences of the residual
//  label -- prefix of messages; e.g. "Ktt"
//  y is not modified
func (o *Kb) Check(label string, sys nonlin.System, y []float64) {

	// analytical Jacobian
	n := sys.Size()
	if len(y) != n {
		chk.Panic("Kb: y has wrong size: %d != %d", len(y), n)
	}
	K := mat.NewDense(n, n, nil)
	err := sys.Jacobian(K, y)
	if err != nil {
		o.Tst.Errorf("Kb: Jacobian failed:\n%v", err)
		return
	}

	// auxiliary
	if o.Step < 1e-14 {
		o.Step = 1e-6
	}
	rows, cols := o.Rows, o.Cols
	if rows == nil {
		rows = allEqs(n)
	}
	if cols == nil {
		cols = allEqs(n)
	}
	o.rp, o.rm = make([]float64, n), make([]float64, n)
	yy := append([]float64{}, y...)

	// central differences, one column at a time
	for _, J := range cols {
		tmp := yy[J]
		yy[J] = tmp + o.Step
		err = sys.Residual(o.rp, yy)
		if err == nil {
			yy[J] = tmp - o.Step
			err = sys.Residual(o.rm, yy)
		}
		yy[J] = tmp
		if err != nil {
			o.Tst.Errorf("Kb: Residual failed:\n%v", err)
			return
		}
		for _, I := range rows {
			dnum := (o.rp[I] - o.rm[I]) / (2.0 * o.Step)
			chk.AnaNum(o.Tst, io.Sf(label+"%3d%3d", I, J), o.Tol, K.At(I, J), dnum, o.Verb)
		}
	}
}

// allEqs returns {0, 1, ..., n-1}
func allEqs(n int) (eqs []int) {
	eqs = make([]int, n)
	for i := range eqs {
		eqs[i] = i
	}
	return
}
