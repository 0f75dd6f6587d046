// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"os"
	"path/filepath"

	"github.com/CarlosHernando16/gohts/hts"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// MinRes is the smallest residual shown in log scale
const MinRes = 1e-20

// PlotHistory plots the residual norm versus Newton update for every continuation step
//  the figure is saved to dirout/key-history.png
func PlotHistory(dirout, key string, steps []hts.StepInfo) (fn string, err error) {
	if len(steps) == 0 {
		return "", chk.Err("cannot plot history: there are no steps")
	}
	p := plot.New()
	p.Title.Text = key + ": residual history"
	p.X.Label.Text = "update"
	p.Y.Label.Text = "|R|∞"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	var args []interface{}
	for _, st := range steps {
		var pts plotter.XYs
		for i, r := range st.History {
			if math.IsNaN(r) || math.IsInf(r, 0) {
				continue
			}
			pts = append(pts, plotter.XY{X: float64(i), Y: math.Max(r, MinRes)})
		}
		lbl := io.Sf("step %d: n=%d", st.Index, st.Exponent)
		if !st.Ok {
			lbl += " (failed)"
		}
		args = append(args, lbl, pts)
	}
	err = plotutil.AddLinePoints(p, args...)
	if err != nil {
		return
	}
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return
	}
	fn = filepath.Join(dirout, key+"-history.png")
	err = p.Save(6*vg.Inch, 4*vg.Inch, fn)
	return
}
