// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Func defines a function of time and space
type Func interface {
	F(t float64, x []float64) float64
}

// FuncData holds function definition
type FuncData struct {
	Name string     `json:"name" yaml:"name"` // name of function. ex: zero, current, myfunction1, etc.
	Type string     `json:"type" yaml:"type"` // type of function. ex: cte, lin
	Prms dbf.Params `json:"prms" yaml:"prms"` // parameters
}

// FuncsData holds functions
type FuncsData []*FuncData

// Get returns function by name
func (o FuncsData) Get(name string) (fcn Func, err error) {
	if name == "zero" || name == "none" || name == "" {
		return &Cte{}, nil
	}
	for _, f := range o {
		if f.Name == name {
			fcn, err = NewFunc(f.Type, f.Prms)
			if err != nil {
				err = chk.Err("cannot get function named %q because of the following error:\n%v", name, err)
			}
			return
		}
	}
	err = chk.Err("cannot find function named %q\n", name)
	return
}

// NewFunc allocates a function by type
//  cte -- c            F = c
//  lin -- c, gx,gy,gz  F = c + g・x
func NewFunc(typ string, prms dbf.Params) (Func, error) {
	switch typ {
	case "cte":
		var f Cte
		for _, p := range prms {
			switch strings.ToLower(p.N) {
			case "c":
				f.C = p.V
			default:
				return nil, chk.Err("cte: parameter named %q is incorrect", p.N)
			}
		}
		return &f, nil
	case "lin":
		var f Lin
		f.G = make([]float64, 3)
		for _, p := range prms {
			switch strings.ToLower(p.N) {
			case "c":
				f.C = p.V
			case "gx":
				f.G[0] = p.V
			case "gy":
				f.G[1] = p.V
			case "gz":
				f.G[2] = p.V
			default:
				return nil, chk.Err("lin: parameter named %q is incorrect", p.N)
			}
		}
		return &f, nil
	}
	return nil, chk.Err("function type %q is not available", typ)
}

// Cte implements a constant function
type Cte struct {
	C float64
}

// F returns c
func (o *Cte) F(t float64, x []float64) float64 { return o.C }

// Lin implements a function that is linear in space: c + g・x
type Lin struct {
	C float64
	G []float64
}

// F returns c + g・x
func (o *Lin) F(t float64, x []float64) (res float64) {
	res = o.C
	for i := range x {
		res += o.G[i] * x[i]
	}
	return
}
