// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "github.com/cpmech/gosl/chk"

// Ipoint holds integration point data: natural coordinates and weight
type Ipoint struct {
	R, S, T float64 // natural coordinates
	W       float64 // weight
}

// IpsTri holds integration points for triangles
var IpsTri = map[int][]*Ipoint{
	1: {
		{1.0 / 3.0, 1.0 / 3.0, 0, 1.0 / 2.0},
	},
	3: {
		{1.0 / 6.0, 1.0 / 6.0, 0, 1.0 / 6.0},
		{2.0 / 3.0, 1.0 / 6.0, 0, 1.0 / 6.0},
		{1.0 / 6.0, 2.0 / 3.0, 0, 1.0 / 6.0},
	},
}

// IpsTet holds integration points for tetrahedra
var IpsTet = map[int][]*Ipoint{
	1: {
		{1.0 / 4.0, 1.0 / 4.0, 1.0 / 4.0, 1.0 / 6.0},
	},
	4: {
		{0.1381966011250105, 0.1381966011250105, 0.1381966011250105, 1.0 / 24.0},
		{0.5854101966249685, 0.1381966011250105, 0.1381966011250105, 1.0 / 24.0},
		{0.1381966011250105, 0.5854101966249685, 0.1381966011250105, 1.0 / 24.0},
		{0.1381966011250105, 0.1381966011250105, 0.5854101966249685, 1.0 / 24.0},
	},
}

// GetIps returns a set of integration points
//  If the number of integration points (nip) is zero, the default is returned
func GetIps(geoType string, nip int) (ips []*Ipoint, err error) {
	s, ok := factory[geoType]
	if !ok {
		return nil, chk.Err("cannot find integration points: shape %q is not available", geoType)
	}
	if nip == 0 {
		nip = s.NipDefault
	}
	db := IpsTri
	if s.Gndim == 3 {
		db = IpsTet
	}
	ips, ok = db[nip]
	if !ok {
		return nil, chk.Err("cannot find integration points set for %q with nip=%d", geoType, nip)
	}
	return
}
