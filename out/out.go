// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output of results of simulations
package out

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"github.com/CarlosHernando16/gohts/fem"
	"github.com/CarlosHernando16/gohts/hts"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// FailedStep holds data of a failed continuation step
type FailedStep struct {
	Index    int    `json:"index"`    // step index (1-based)
	Exponent int    `json:"exponent"` // exponent
	Error    string `json:"error"`    // error message
}

// Results holds results to be saved in a JSON file
//  Nodal values are null where the field does not exist (e.g. T outside the superconductor)
type Results struct {
	Key      string         `json:"key"`      // simulation key
	Kind     string         `json:"kind"`     // formulation
	State    string         `json:"state"`    // final state
	Elapsed  float64        `json:"elapsed"`  // wall time [s]
	Verts    [][]float64    `json:"verts"`    // [nverts][ndim] coordinates
	A        []*float64     `json:"a"`        // [nverts] nodal A (Lagrange A only)
	T        []*float64     `json:"t"`        // [nverts] nodal T (T-A only)
	B        [][]float64    `json:"b"`        // [ncells][3] curl A at cell centres
	Steps    []hts.StepInfo `json:"steps"`    // diagnostics; -1 marks NaN or Inf residuals
	Warnings []string       `json:"warnings"` // non-fatal inconsistencies
	Failed   *FailedStep    `json:"failed"`   // failed step
}

// NewResults collects results
func NewResults(key string, res *hts.Result) (o *Results, err error) {
	o = &Results{Key: key, Kind: res.Kind.String(), State: res.State.String(), Elapsed: res.Elapsed.Seconds()}
	o.Steps, o.Warnings = finiteSteps(res.Steps), res.Warnings
	if res.Failed != nil {
		o.Failed = &FailedStep{res.Failed.Index, res.Failed.Exponent, res.Failed.Err.Error()}
	}
	if res.Setup != nil {
		for _, v := range res.Setup.Dom.Msh.Verts {
			o.Verts = append(o.Verts, v.C)
		}
	}
	if res.Sol == nil {
		return
	}
	dom := res.Sol.Dom
	if dom.Fields[dom.FieldIndex("a")].Space == fem.Lagrange {
		o.A = nullable(res.Sol.NodalValues("a"))
	}
	if dom.FieldIndex("t") >= 0 {
		o.T = nullable(res.Sol.NodalValues("t"))
	}
	o.B, err = res.Sol.CellCurl("a")
	return
}

// SaveResults saves results to dirout/key-results.json
func SaveResults(dirout, key string, res *hts.Result) (fn string, err error) {
	o, err := NewResults(key, res)
	if err != nil {
		return
	}
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return "", chk.Err("cannot encode results:\n%v", err)
	}
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return
	}
	fn = filepath.Join(dirout, key+"-results.json")
	err = os.WriteFile(fn, b, 0644)
	if err != nil {
		return "", chk.Err("cannot write results file %q:\n%v", fn, err)
	}
	io.Pfblue2("file <%s> written\n", fn)
	return
}

// LoadResults reads results saved by SaveResults
func LoadResults(fn string) (o *Results, err error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("cannot read results file %q:\n%v", fn, err)
	}
	o = new(Results)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot decode results file %q:\n%v", fn, err)
	}
	return
}

// nullable converts NaN entries to nil
func nullable(vals []float64) (res []*float64) {
	res = make([]*float64, len(vals))
	for i := range vals {
		if !math.IsNaN(vals[i]) {
			res[i] = &vals[i]
		}
	}
	return
}

// finiteSteps returns a copy of steps with non-finite residuals replaced by -1
func finiteSteps(steps []hts.StepInfo) (res []hts.StepInfo) {
	fix := func(v float64) float64 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return -1
		}
		return v
	}
	res = make([]hts.StepInfo, len(steps))
	for i, st := range steps {
		res[i] = st
		res[i].ResNorm0, res[i].ResNorm = fix(st.ResNorm0), fix(st.ResNorm)
		res[i].History = make([]float64, len(st.History))
		for j, v := range st.History {
			res[i].History[j] = fix(v)
		}
	}
	return
}
