// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nonlin

import (
	"math"

	"github.com/CarlosHernando16/gohts/errs"
)

// Config holds Newton-Raphson solver data
type Config struct {
	MaxIt  int     `json:"maxit" yaml:"maxit"`   // max number of Newton updates
	Rtol   float64 `json:"rtol" yaml:"rtol"`     // relative tolerance on the residual norm
	Atol   float64 `json:"atol" yaml:"atol"`     // absolute tolerance on the residual norm
	LinSol string  `json:"linsol" yaml:"linsol"` // linear solver: "lu" or "svd"; empty => chosen by caller ("lu" in GetSolver)
	ShowR  bool    `json:"showr" yaml:"showr"`   // show residual at each iteration
}

// SetDefault sets default values
func (o *Config) SetDefault() {
	o.MaxIt = 20
	o.Rtol = 1e-8
	o.Atol = 1e-10
	o.LinSol = ""
}

// Check validates the configuration
func (o *Config) Check() error {
	if o.MaxIt <= 0 {
		return errs.Invalid("solver: maxit must be positive. maxit = %d", o.MaxIt)
	}
	if !(o.Rtol > 0) || math.IsInf(o.Rtol, 0) {
		return errs.Invalid("solver: rtol must be positive. rtol = %g", o.Rtol)
	}
	if !(o.Atol > 0) || math.IsInf(o.Atol, 0) {
		return errs.Invalid("solver: atol must be positive. atol = %g", o.Atol)
	}
	if o.LinSol == "" {
		return nil
	}
	if _, ok := lsAllocators[o.LinSol]; !ok {
		return errs.Unsupported("solver: linear solver %q is not available", o.LinSol)
	}
	return nil
}
