// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sc

import (
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Plot plots ρ(J) and |E|(J) in log-log scale for J in [jmin, jmax] at |B| = bnorm
//  the figure is saved to dirout/fname (the extension selects the format)
func Plot(o Model, dirout, fname string, jmin, jmax, bnorm float64, np int) (err error) {
	if !(jmin > 0) || !(jmax > jmin) || np < 2 {
		return chk.Err("cannot plot: J range must be positive and increasing with np ≥ 2. jmin=%g jmax=%g np=%d", jmin, jmax, np)
	}
	X := utl.LinSpace(math.Log10(jmin), math.Log10(jmax), np)
	b := []float64{bnorm, 0, 0}
	rho := make(plotter.XYs, np)
	ele := make(plotter.XYs, np)
	for i := 0; i < np; i++ {
		J := math.Pow(10, X[i])
		ρ := o.Rho(J, b)
		rho[i].X, rho[i].Y = J, ρ
		ele[i].X, ele[i].Y = J, ρ*J
	}

	p := plot.New()
	p.Title.Text = o.Name() + " model"
	p.X.Label.Text = "J [A/m²]"
	p.Y.Label.Text = "ρ [Ωm] , |E| [V/m]"
	p.X.Scale, p.Y.Scale = plot.LogScale{}, plot.LogScale{}
	p.X.Tick.Marker, p.Y.Tick.Marker = plot.LogTicks{Prec: -1}, plot.LogTicks{Prec: -1}
	err = plotutil.AddLines(p, "ρ", rho, "|E|", ele)
	if err != nil {
		return
	}

	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return
	}
	return p.Save(5*vg.Inch, 4*vg.Inch, filepath.Join(dirout, fname))
}
