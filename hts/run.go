// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hts

import (
	"time"

	"github.com/CarlosHernando16/gohts/errs"
	"github.com/CarlosHernando16/gohts/fem"
	"github.com/CarlosHernando16/gohts/inp"
	"github.com/CarlosHernando16/gohts/mdl/sc"
	"github.com/CarlosHernando16/gohts/nonlin"
	"github.com/CarlosHernando16/gohts/wf"
	"github.com/cpmech/gosl/io"
)

// Problem holds all data needed to solve one formulation
type Problem struct {
	Kind     Kind              // formulation
	Cfg      FormulationConfig // configuration
	Mesh     *inp.Mesh         // mesh
	Nip      int               // number of integration points; 0 => default
	Material sc.Model          // superconductor (T-A only)
	Solver   nonlin.Config     // Newton-Raphson data
	Schedule []int             // exponents (T-A only); empty => material exponent
	Verbose  bool              // show messages
}

// Result holds the solution and diagnostics
type Result struct {
	Kind     Kind          // formulation
	State    State         // Converged or Failed
	Sol      *fem.Solution // solution; nil if Failed
	Setup    *Setup        // discretisation used to compute Sol
	Steps    []StepInfo    // diagnostics per step; a single step for KindA
	Warnings []string      // non-fatal inconsistencies in the input
	Failed   *StepError    // failed step
	Elapsed  time.Duration // wall time
}

// runner solves one formulation
type runner func(p *Problem) (*Result, error)

// runners maps formulations to their solvers
var runners = map[Kind]runner{
	KindA:  runA,
	KindTA: runTA,
}

// Run solves a problem
//  On failure of a continuation step, both the Result (with diagnostics) and the error are returned
func Run(p *Problem) (res *Result, err error) {
	run, ok := runners[p.Kind]
	if !ok {
		return nil, errs.Unsupported("formulation %v is not available", p.Kind)
	}
	cputime := time.Now()
	res, err = run(p)
	if res != nil {
		res.Elapsed = time.Since(cputime)
	}
	return
}

// runA solves the single-field formulation; a linear problem
func runA(p *Problem) (res *Result, err error) {
	setup, err := SetupA(p.Cfg, p.Mesh, p.Nip)
	if err != nil {
		return
	}
	sys, err := setup.System(nil)
	if err != nil {
		return
	}
	cputime := time.Now()
	yb, st, err := nonlin.SolveLinear(sys, solverConfig(p))
	if err != nil {
		return
	}
	if p.Verbose {
		io.Pf("a: linear solve |R0| = %g |R| = %g\n", st.ResNorm0, st.ResNorm)
	}
	res = &Result{Kind: KindA, State: Converged, Setup: setup, Sol: fem.NewSolution(setup.Dom, yb)}
	res.Steps = []StepInfo{{Index: 1, Its: st.Its, ResNorm0: st.ResNorm0, ResNorm: st.ResNorm,
		History: st.History, Elapsed: time.Since(cputime), Ok: true}}
	return
}

// runTA solves the coupled formulation with continuation
func runTA(p *Problem) (res *Result, err error) {
	setup, err := SetupTA(p.Cfg, p.Mesh, p.Nip)
	if err != nil {
		return
	}
	drv, err := NewDriver(setup, p.Material, p.Schedule, solverConfig(p))
	if err != nil {
		return
	}
	drv.Verbose = p.Verbose
	sol, err := drv.Run()
	res = &Result{Kind: KindTA, State: drv.State, Sol: sol, Setup: setup, Steps: drv.Steps, Warnings: drv.Warnings, Failed: drv.Err}
	return
}

// solverConfig returns the solver data with the default linear solver of the dimension
//  3D: the curl-curl operator of edge elements has a kernel (gradients) => minimum-norm "svd"
func solverConfig(p *Problem) nonlin.Config {
	cfg := p.Solver
	if cfg.LinSol == "" {
		cfg.LinSol = "lu"
		if p.Cfg.Ndim == 3 {
			cfg.LinSol = "svd"
		}
	}
	return cfg
}

// NewProblem converts simulation input data into a problem
func NewProblem(sim *inp.Simulation) (o *Problem, err error) {

	// formulation
	o = &Problem{Mesh: sim.Msh, Nip: sim.Data.Nip, Solver: sim.Solver, Verbose: io.Verbose || sim.Solver.ShowR}
	o.Kind, err = ParseKind(sim.Data.Formulation)
	if err != nil {
		return nil, err
	}
	if sim.Msh == nil {
		return nil, errs.Invalid("simulation has no mesh")
	}
	o.Cfg.Ndim = sim.Msh.Ndim
	o.Cfg.Coords, err = wf.ParseCoordSys(sim.Data.Coords)
	if err != nil {
		return nil, err
	}
	if o.Cfg.Ndim == 3 {
		o.Cfg.Coords = wf.ThreeD
	}
	o.Cfg.MuInv = sim.Data.MuInv
	o.Cfg.ScTag = sim.Data.ScTag
	o.Cfg.RequireScTag = sim.Data.RequireScTag

	// boundary conditions
	o.Cfg.BcA, err = dirichlet(sim, sim.Bcs.A)
	if err != nil {
		return nil, err
	}
	o.Cfg.BcT, err = dirichlet(sim, sim.Bcs.T)
	if err != nil {
		return nil, err
	}

	// source
	if sim.Source != nil && len(sim.Source.Funcs) > 0 {
		fcns := make([]inp.Func, len(sim.Source.Funcs))
		for i, name := range sim.Source.Funcs {
			fcns[i], err = sim.Functions.Get(name)
			if err != nil {
				return nil, err
			}
		}
		o.Cfg.Source = &SourceConfig{Tag: sim.Source.Tag, Fcn: func(f, x []float64) {
			for i := range f {
				if len(fcns) == 1 {
					f[i] = fcns[0].F(0, x)
				} else {
					f[i] = fcns[i].F(0, x)
				}
			}
		}}
		ncomp := 1
		if o.Cfg.Ndim == 3 {
			ncomp = 3
		}
		if len(fcns) != 1 && len(fcns) != ncomp {
			return nil, errs.Invalid("source needs 1 or %d functions. %d were given", ncomp, len(fcns))
		}
	}

	// material and continuation
	if o.Kind == KindTA {
		if sim.Material == nil {
			return nil, errs.Invalid("T-A formulation requires a material")
		}
		o.Material, err = sc.New(sim.Material.Model, sim.Material.Prms)
		if err != nil {
			return nil, err
		}
		o.Schedule = sim.Continuation.Schedule
	}
	return
}

// dirichlet converts boundary condition data
func dirichlet(sim *inp.Simulation, bc inp.BcData) (res Dirichlet, err error) {
	res.Tags = bc.Tags
	if bc.Func == "" || bc.Func == "zero" || bc.Func == "none" {
		return
	}
	fcn, err := sim.Functions.Get(bc.Func)
	if err != nil {
		return
	}
	res.Fcn = func(x []float64) float64 { return fcn.F(0, x) }
	return
}
