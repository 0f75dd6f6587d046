// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package hts implements the A and T-A formulations for high-temperature superconductors
// and the continuation driver over the power-law exponent
package hts

import (
	"github.com/CarlosHernando16/gohts/errs"
	"github.com/CarlosHernando16/gohts/inp"
	"github.com/CarlosHernando16/gohts/wf"
)

// DefaultTagsT holds the face tags where T is prescribed when no tags are given
var DefaultTagsT = []int{inp.TagScBoundary}

// Dirichlet holds essential boundary conditions of one field
type Dirichlet struct {
	Tags []int                      // face tags; empty => default tags
	Fcn  func(x []float64) float64 // prescribed value; nil => zero
}

// SourceConfig holds the source term of the A equation
type SourceConfig struct {
	Fcn wf.Source // source function
	Tag int       // cell tag where the source acts; 0 => whole domain
}

// FormulationConfig holds the configuration of a formulation
type FormulationConfig struct {
	Ndim         int           // space dimension: 2 or 3
	Coords       wf.CoordSys   // coordinate system
	MuInv        float64       // inverse magnetic permeability
	BcA          Dirichlet     // essential conditions of A; empty tags => all outer boundary tags
	BcT          Dirichlet     // essential conditions of T; empty tags => DefaultTagsT
	Source       *SourceConfig // source term; nil => none
	ScTag        int           // cell tag of the superconductor; 0 => whole domain
	RequireScTag bool          // fail if ScTag is not given
}

// Check validates the configuration
func (o *FormulationConfig) Check() error {
	if o.Ndim != 2 && o.Ndim != 3 {
		return errs.Invalid("space dimension must be 2 or 3. ndim = %d", o.Ndim)
	}
	if !(o.MuInv > 0) {
		return errs.Invalid("inverse permeability must be positive. μ⁻¹ = %g", o.MuInv)
	}
	if _, err := wf.NewWeight(o.Coords); err != nil {
		return err
	}
	if o.Coords.Ndim() != o.Ndim {
		return errs.Unsupported("coordinate system %v cannot be used in %dD", o.Coords, o.Ndim)
	}
	if o.Ndim == 3 && o.BcA.Fcn != nil {
		return errs.Unsupported("non-homogeneous essential conditions of A are not available in 3D")
	}
	if o.Source != nil && o.Source.Fcn == nil {
		return errs.Invalid("source term requires a function")
	}
	if o.RequireScTag && o.ScTag == 0 {
		return errs.Invalid("the superconducting cell tag is required but was not given")
	}
	return nil
}
