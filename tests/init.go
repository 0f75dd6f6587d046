// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tests

import (
	"github.com/CarlosHernando16/gohts/fem"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

// FieldEqs returns the equations of a field with a given key, restricted to vertices in vids (nil => all)
func FieldEqs(dom *fem.Domain, key string, vids []int) (eqs []int) {
	if vids == nil {
		return append(eqs, dom.Field2eqs[key]...)
	}
	for _, vid := range vids {
		if nod := dom.Vid2node[vid]; nod != nil {
			if eq := nod.GetEq(key); eq >= 0 {
				eqs = append(eqs, eq)
			}
		}
	}
	return
}
