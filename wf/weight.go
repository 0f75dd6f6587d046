// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package wf implements the weak forms of the A and T-A formulations
package wf

import (
	"math"
	"strings"

	"github.com/CarlosHernando16/gohts/errs"
	"github.com/cpmech/gosl/io"
)

// RFloor is the lower limit of the radius in the axisymmetric weight
const RFloor = 1e-12

// CoordSys defines the coordinate system of the integration
type CoordSys int

// coordinate systems
const (
	Cartesian2D    CoordSys = iota // plane (x,y); A is the out-of-plane component
	Axisymmetric2D                 // meridian plane (r,z) of a body of revolution
	ThreeD                         // 3D (x,y,z); A is a vector field
)

// String returns the name of the coordinate system
func (o CoordSys) String() string {
	switch o {
	case Cartesian2D:
		return "cartesian2d"
	case Axisymmetric2D:
		return "axisymmetric2d"
	case ThreeD:
		return "3d"
	}
	return io.Sf("coordsys(%d)", int(o))
}

// Ndim returns the space dimension required by the coordinate system
func (o CoordSys) Ndim() int {
	if o == ThreeD {
		return 3
	}
	return 2
}

// ParseCoordSys returns the coordinate system with a given name
func ParseCoordSys(name string) (CoordSys, error) {
	switch strings.ToLower(name) {
	case "cartesian2d", "cartesian", "plane":
		return Cartesian2D, nil
	case "axisymmetric2d", "axisymmetric", "axisym":
		return Axisymmetric2D, nil
	case "3d", "threed":
		return ThreeD, nil
	}
	return 0, errs.Unsupported("coordinate system %q is not available", name)
}

// Weight is the scalar weight multiplying every integrand
type Weight func(x []float64) float64

// NewWeight returns the weight of a coordinate system
//  Cartesian2D and ThreeD: 1
//  Axisymmetric2D:         2π max(r, RFloor) with r = x[0]
func NewWeight(cs CoordSys) (Weight, error) {
	switch cs {
	case Cartesian2D, ThreeD:
		return func(x []float64) float64 { return 1 }, nil
	case Axisymmetric2D:
		return func(x []float64) float64 { return 2.0 * math.Pi * math.Max(x[0], RFloor) }, nil
	}
	return nil, errs.Unsupported("weight of coordinate system %v is not available", cs)
}
