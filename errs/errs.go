// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errs defines the error kinds shared by the solver packages
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter flags a material, configuration or mesh value outside its valid domain
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnsupportedCombination flags an unknown coordinate system, dimension or formulation kind
	ErrUnsupportedCombination = errors.New("unsupported combination")

	// ErrConvergenceFailure flags a nonlinear solve that did not reach its tolerance
	ErrConvergenceFailure = errors.New("convergence failure")
)

// Invalid returns an error wrapping ErrInvalidParameter
func Invalid(msg string, prm ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(msg, prm...))
}

// Unsupported returns an error wrapping ErrUnsupportedCombination
func Unsupported(msg string, prm ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedCombination, fmt.Sprintf(msg, prm...))
}
