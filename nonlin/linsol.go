// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nonlin

import (
	"errors"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// LinSol defines dense linear solvers
type LinSol interface {
	Fact(K *mat.Dense) error    // factorise K
	Solve(x, b []float64) error // solve K x = b with the last factorisation
}

// GetSolver returns a new linear solver; empty name => "lu"
func GetSolver(name string) (LinSol, error) {
	if name == "" {
		name = "lu"
	}
	allocator, ok := lsAllocators[name]
	if !ok {
		return nil, chk.Err("linear solver %q is not available", name)
	}
	return allocator(), nil
}

// lsAllocators holds all available linear solvers
var lsAllocators = map[string]func() LinSol{
	"lu":  func() LinSol { return new(luSolver) },
	"svd": func() LinSol { return &svdSolver{Rcond: 1e-12} },
}

// luSolver implements LinSol with an LU factorisation with partial pivoting
type luSolver struct {
	lu mat.LU
}

// Fact factorises K
func (o *luSolver) Fact(K *mat.Dense) error {
	o.lu.Factorize(K)
	return nil
}

// Solve solves K x = b
//  Note: ill-conditioned systems only produce a warning
func (o *luSolver) Solve(x, b []float64) (err error) {
	dst := mat.NewVecDense(len(x), x)
	err = o.lu.SolveVecTo(dst, false, mat.NewVecDense(len(b), b))
	var cond mat.Condition
	if errors.As(err, &cond) && !math.IsInf(float64(cond), 1) {
		if io.Verbose {
			io.Pfyel("warning: ill-conditioned Jacobian. cond = %g\n", float64(cond))
		}
		err = nil
	}
	if err != nil {
		return chk.Err("LU solver failed: %v", err)
	}
	return finite(x)
}

// svdSolver implements LinSol with a singular value decomposition
//  It returns the minimum-norm least-squares solution, which handles operators with a non-trivial
//  kernel such as the curl-curl operator discretised with edge elements
type svdSolver struct {
	Rcond float64 // singular values below Rcond・σmax are discarded
	svd   mat.SVD
	rank  int
}

// Fact factorises K
func (o *svdSolver) Fact(K *mat.Dense) error {
	if !o.svd.Factorize(K, mat.SVDThin) {
		return chk.Err("SVD factorisation failed")
	}
	o.rank = o.svd.Rank(o.Rcond)
	if o.rank == 0 {
		return chk.Err("SVD solver: matrix is zero")
	}
	return nil
}

// Solve solves K x = b in the least-squares sense
func (o *svdSolver) Solve(x, b []float64) error {
	dst := mat.NewVecDense(len(x), x)
	o.svd.SolveVecTo(dst, mat.NewVecDense(len(b), b), o.rank)
	return finite(x)
}

// finite checks that x has no NaN or Inf entries
func finite(x []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return chk.Err("linear solver produced an invalid value: x[%d] = %v", i, v)
		}
	}
	return nil
}
