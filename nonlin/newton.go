// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package nonlin implements a Newton-Raphson solver for assembled nonlinear systems
package nonlin

import (
	"math"

	"github.com/CarlosHernando16/gohts/errs"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// System defines a nonlinear system R(y) = 0 and its Jacobian dR/dy
type System interface {
	Size() int                                // number of unknowns
	Residual(r, y []float64) error            // computes r := R(y)
	Jacobian(K *mat.Dense, y []float64) error // computes K := dR/dy(y)
}

// Stats holds diagnostics of one solve
type Stats struct {
	Its      int       // number of Newton updates
	ResNorm0 float64   // initial residual norm
	ResNorm  float64   // final residual norm
	History  []float64 // residual norm before each update and at exit
}

// ConvergenceError is returned when the residual does not reach the tolerance
type ConvergenceError struct {
	It       int     // number of updates performed
	ResNorm  float64 // last residual norm
	ResNorm0 float64 // initial residual norm
	Cause    error   // numerical breakdown, if any
}

// Error returns the error message
func (o *ConvergenceError) Error() string {
	msg := io.Sf("%v: max number of iterations reached: it = %d, |R| = %g, |R0| = %g", errs.ErrConvergenceFailure, o.It, o.ResNorm, o.ResNorm0)
	if o.Cause != nil {
		msg = io.Sf("%v: breakdown at it = %d, |R| = %g: %v", errs.ErrConvergenceFailure, o.It, o.ResNorm, o.Cause)
	}
	return msg
}

// Unwrap returns ErrConvergenceFailure and the cause of the breakdown
func (o *ConvergenceError) Unwrap() []error {
	if o.Cause != nil {
		return []error{errs.ErrConvergenceFailure, o.Cause}
	}
	return []error{errs.ErrConvergenceFailure}
}

// Solve solves R(y) = 0 with the Newton-Raphson method
//  y0 -- initial iterate (warm start); nil => zero (cold start). y0 is not modified
//  Convergence is reached when |R|∞ ≤ max(Atol, Rtol・|R0|∞); it is checked before each update,
//  thus at most cfg.MaxIt updates are performed. The returned y never aliases y0.
func Solve(sys System, cfg Config, y0 []float64) (y []float64, st Stats, err error) {

	// check
	err = cfg.Check()
	if err != nil {
		return
	}
	n := sys.Size()
	if y0 != nil && len(y0) != n {
		err = errs.Invalid("warm start has wrong size: %d != %d", len(y0), n)
		return
	}
	ls, err := GetSolver(cfg.LinSol)
	if err != nil {
		return
	}

	// initial iterate
	y = make([]float64, n)
	if y0 != nil {
		copy(y, y0)
	}

	// auxiliary
	r := make([]float64, n)
	δy := make([]float64, n)
	K := mat.NewDense(n, n, nil)
	var tol float64

	// iterations
	if cfg.ShowR {
		io.Pf("\n%4s%23s\n", "it", "|R|∞")
	}
	for it := 0; ; it++ {

		// residual
		err = sys.Residual(r, y)
		if err != nil {
			return nil, st, err
		}
		largR := floats.Norm(r, math.Inf(1))
		if it == 0 {
			st.ResNorm0 = largR
			tol = math.Max(cfg.Atol, cfg.Rtol*largR)
		}
		st.Its, st.ResNorm = it, largR
		st.History = append(st.History, largR)
		if cfg.ShowR {
			io.Pf("%4d%23.15e\n", it, largR)
		}

		// check convergence
		if math.IsNaN(largR) || math.IsInf(largR, 0) {
			return nil, st, &ConvergenceError{it, largR, st.ResNorm0, chk.Err("invalid residual")}
		}
		if largR <= tol {
			return
		}
		if it == cfg.MaxIt {
			return nil, st, &ConvergenceError{it, largR, st.ResNorm0, nil}
		}

		// Jacobian and linear solve: K δy = -R
		err = sys.Jacobian(K, y)
		if err != nil {
			return nil, st, err
		}
		err = ls.Fact(K)
		if err == nil {
			err = ls.Solve(δy, r)
		}
		if err != nil {
			return nil, st, &ConvergenceError{it, largR, st.ResNorm0, err}
		}

		// update
		floats.Sub(y, δy)
	}
}

// SolveLinear solves a linear system R(y) = K y - f = 0 with one assembly and one linear solve
//  Stats report the residual before and after the solve; no tolerance is checked
func SolveLinear(sys System, cfg Config) (y []float64, st Stats, err error) {

	// auxiliary
	n := sys.Size()
	ls, err := GetSolver(cfg.LinSol)
	if err != nil {
		return
	}
	y = make([]float64, n)
	r := make([]float64, n)
	δy := make([]float64, n)
	K := mat.NewDense(n, n, nil)

	// R(0) and K
	err = sys.Residual(r, y)
	if err != nil {
		return nil, st, err
	}
	st.ResNorm0 = floats.Norm(r, math.Inf(1))
	err = sys.Jacobian(K, y)
	if err != nil {
		return nil, st, err
	}

	// solve K δy = R(0) and set y = -δy
	err = ls.Fact(K)
	if err == nil {
		err = ls.Solve(δy, r)
	}
	if err != nil {
		return nil, st, chk.Err("linear solve failed:\n%v", err)
	}
	floats.ScaleTo(y, -1, δy)

	// final residual
	err = sys.Residual(r, y)
	if err != nil {
		return nil, st, err
	}
	st.Its = 1
	st.ResNorm = floats.Norm(r, math.Inf(1))
	st.History = []float64{st.ResNorm0, st.ResNorm}
	if cfg.ShowR {
		io.Pf("linear solve: |R0|∞ = %g  |R|∞ = %g\n", st.ResNorm0, st.ResNorm)
	}
	return
}
