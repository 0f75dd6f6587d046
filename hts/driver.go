// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hts

import (
	"time"

	"github.com/CarlosHernando16/gohts/errs"
	"github.com/CarlosHernando16/gohts/fem"
	"github.com/CarlosHernando16/gohts/mdl/sc"
	"github.com/CarlosHernando16/gohts/nonlin"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// State defines the state of the continuation driver
type State int

// states
const (
	Initialized State = iota // schedule set; nothing solved yet
	Stepping                 // solving the steps of the schedule
	Converged                // all steps converged
	Failed                   // one step failed; later steps were not attempted
)

// String returns the name of the state
func (o State) String() string {
	switch o {
	case Initialized:
		return "initialized"
	case Stepping:
		return "stepping"
	case Converged:
		return "converged"
	case Failed:
		return "failed"
	}
	return io.Sf("state(%d)", int(o))
}

// StepInfo holds diagnostics of one continuation step
type StepInfo struct {
	Index    int           `json:"index"`    // step index (1-based)
	Exponent int           `json:"exponent"` // power-law exponent
	Its      int           `json:"its"`      // number of Newton updates
	ResNorm0 float64       `json:"resnorm0"` // initial residual norm
	ResNorm  float64       `json:"resnorm"`  // final residual norm
	History  []float64     `json:"history"`  // residual norms
	Elapsed  time.Duration `json:"elapsed"`  // wall time
	Ok       bool          `json:"ok"`       // step converged
}

// StepError reports the continuation step that failed
type StepError struct {
	Index    int   // step index (1-based)
	Exponent int   // exponent of the failed step
	Err      error // solver error
}

// Error returns the error message
func (o *StepError) Error() string {
	return io.Sf("continuation step %d (n = %d) failed: %v", o.Index, o.Exponent, o.Err)
}

// Unwrap returns the solver error
func (o *StepError) Unwrap() error { return o.Err }

// Driver solves a sequence of T-A problems with increasing exponents, each one warm-started
// from the solution of the previous step
type Driver struct {

	// input
	Setup    *Setup        // formulation; must be KindTA
	Base     sc.Model      // material; the exponent is replaced at each step
	Schedule []int         // exponents
	Solver   nonlin.Config // Newton-Raphson data
	Verbose  bool          // show messages

	// results
	State         State         // current state
	Steps         []StepInfo    // diagnostics of attempted steps
	Warnings      []string      // non-fatal inconsistencies in the input
	LastConverged *fem.Solution // last converged solution; history only when Failed
	Err           *StepError    // failed step
}

// NewDriver returns a new continuation driver in the Initialized state
//  schedule -- exponents in solving order; empty => {base.Exponent()}
func NewDriver(setup *Setup, base sc.Model, schedule []int, solver nonlin.Config) (o *Driver, err error) {

	// check
	if setup == nil || setup.Kind != KindTA {
		return nil, errs.Invalid("continuation requires a T-A setup")
	}
	if base == nil {
		return nil, errs.Invalid("continuation requires a material")
	}
	err = solver.Check()
	if err != nil {
		return
	}
	if len(schedule) == 0 {
		schedule = []int{base.Exponent()}
	}
	for i, n := range schedule {
		if n <= 0 {
			return nil, errs.Invalid("exponents must be positive. schedule[%d] = %d", i, n)
		}
	}

	// driver
	o = &Driver{Setup: setup, Base: base, Schedule: append([]int{}, schedule...), Solver: solver}
	last := o.Schedule[len(o.Schedule)-1]
	if last != base.Exponent() {
		o.Warnings = append(o.Warnings, io.Sf("last exponent of schedule (%d) differs from material exponent (%d)", last, base.Exponent()))
	}
	return
}

// Run solves all steps of the schedule
//  On failure, the state becomes Failed, Err holds the failed step and the returned solution is nil
func (o *Driver) Run() (sol *fem.Solution, err error) {

	// check
	if o.State != Initialized {
		chk.Panic("continuation driver can only run once. state = %v", o.State)
	}
	if o.Verbose {
		for _, w := range o.Warnings {
			io.Pfyel("warning: %s\n", w)
		}
	}

	// steps
	o.State = Stepping
	var y0 []float64
	for i, n := range o.Schedule {
		info := StepInfo{Index: i + 1, Exponent: n}
		cputime := time.Now()

		// material and system
		var sys *fem.System
		mdl, err := o.Base.WithExponent(n)
		if err == nil {
			sys, err = o.Setup.System(mdl)
		}

		// solve
		var yb []float64
		if err == nil {
			var st nonlin.Stats
			yb, st, err = nonlin.Solve(sys, o.Solver, y0)
			info.Its, info.ResNorm0, info.ResNorm, info.History = st.Its, st.ResNorm0, st.ResNorm, st.History
		}
		info.Elapsed = time.Since(cputime)
		info.Ok = err == nil
		o.Steps = append(o.Steps, info)

		// failure: abort the remaining schedule
		if err != nil {
			o.State = Failed
			o.Err = &StepError{i + 1, n, err}
			if o.Verbose {
				io.Pfred("step %d: n = %3d failed: %v\n", i+1, n, err)
			}
			return nil, o.Err
		}

		// next warm start
		if o.Verbose {
			io.Pf("step %d: n = %3d its = %2d |R| = %13.6e (%v)\n", i+1, n, info.Its, info.ResNorm, info.Elapsed)
		}
		o.LastConverged = fem.NewSolution(o.Setup.Dom, yb)
		y0 = yb
	}
	o.State = Converged
	return o.LastConverged.Clone(), nil
}
