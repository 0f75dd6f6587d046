// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/CarlosHernando16/gohts/hts"
	"github.com/CarlosHernando16/gohts/inp"
	"github.com/CarlosHernando16/gohts/mdl/sc"
	"github.com/CarlosHernando16/gohts/out"
	"github.com/caarlos0/env/v11"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

// envConfig holds settings that may be given by environment variables
type envConfig struct {
	DirOut  string `env:"GOHTS_DIROUT"`  // overrides the output directory of .sim files
	Verbose bool   `env:"GOHTS_VERBOSE"` // show messages
	ShowR   bool   `env:"GOHTS_SHOWR"`   // show residuals
}

var (
	envcfg  envConfig
	verbose bool

	// plotmat flags
	matModel string
	matPrms  []string
	matDir   string
	matJmin  float64
	matJmax  float64
	matBnorm float64
	matNp    int
)

var rootCmd = &cobra.Command{
	Use:   "gohts",
	Short: "Nonlinear finite element solver for high-temperature superconductors",
	Long: `Solves magnetostatic problems with high-temperature superconductors
using the A formulation or the coupled T-A formulation with
continuation on the power-law exponent.

Environment:
  GOHTS_DIROUT   output directory (overrides .sim files)
  GOHTS_VERBOSE  show messages
  GOHTS_SHOWR    show residuals during Newton updates`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := env.Parse(&envcfg); err != nil {
			return chk.Err("cannot parse environment:\n%v", err)
		}
		io.Verbose = verbose || envcfg.Verbose
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run <simfile>",
	Short: "Run a simulation given in a .sim (JSON) or .yaml file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSim(args[0])
	},
}

var plotmatCmd = &cobra.Command{
	Use:   "plotmat",
	Short: "Plot resistivity and electric field of a superconductor model",
	Example: `  gohts plotmat --model kim --prm ec=1e-4 --prm n=25 --prm jc0=1e8 --prm b0=0.1 \
      --jmin 1e6 --jmax 1e9 --bnorm 0.5`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		prms, err := parsePrms(matPrms)
		if err != nil {
			return err
		}
		mdl, err := sc.New(matModel, prms)
		if err != nil {
			return err
		}
		dirout := matDir
		if envcfg.DirOut != "" {
			dirout = envcfg.DirOut
		}
		return sc.Plot(mdl, dirout, "mat-"+matModel, matJmin, matJmax, matBnorm, matNp)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show messages")
	f := plotmatCmd.Flags()
	f.StringVar(&matModel, "model", "powerlaw", "model name: powerlaw or kim")
	f.StringArrayVar(&matPrms, "prm", nil, "parameter as name=value; may be repeated")
	f.StringVar(&matDir, "dirout", "/tmp/gohts", "output directory")
	f.Float64Var(&matJmin, "jmin", 1e6, "min current density")
	f.Float64Var(&matJmax, "jmax", 1e9, "max current density")
	f.Float64Var(&matBnorm, "bnorm", 0, "norm of magnetic flux density")
	f.IntVar(&matNp, "np", 101, "number of points")
	rootCmd.AddCommand(runCmd, plotmatCmd)
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runSim reads, solves and saves one simulation
func runSim(simfile string) (err error) {

	// input
	cputime := time.Now()
	sim, err := inp.ReadSim(simfile)
	if err != nil {
		return
	}
	if envcfg.DirOut != "" {
		sim.DirOut = envcfg.DirOut
	}
	if envcfg.ShowR {
		sim.Solver.ShowR = true
	}
	io.Pf("\n%s: %s\n", sim.Key, sim.Data.Desc)

	// solve
	prob, err := hts.NewProblem(sim)
	if err != nil {
		return
	}
	res, errRun := hts.Run(prob)
	if res == nil {
		return errRun
	}

	// output; also for failed runs
	if _, err = out.SaveResults(sim.DirOut, sim.Key, res); err != nil {
		return
	}
	if len(res.Steps) > 0 {
		if _, err = out.PlotHistory(sim.DirOut, sim.Key, res.Steps); err != nil {
			return
		}
	}
	for _, w := range res.Warnings {
		io.Pfyel("warning: %s\n", w)
	}
	if errRun != nil {
		return errRun
	}
	io.Pfgreen("%s: %v after %d step(s)\n", sim.Key, res.State, len(res.Steps))
	io.Pf("cpu time = %v\n", time.Since(cputime))
	return
}

// parsePrms parses "name=value" pairs
func parsePrms(pairs []string) (prms dbf.Params, err error) {
	for _, s := range pairs {
		kv := strings.SplitN(s, "=", 2)
		if len(kv) != 2 {
			return nil, chk.Err("parameter %q must be given as name=value", s)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(kv[1]), 64)
		if err != nil {
			return nil, chk.Err("parameter %q has an invalid value:\n%v", s, err)
		}
		prms = append(prms, &dbf.P{N: strings.TrimSpace(kv[0]), V: v})
	}
	return
}
