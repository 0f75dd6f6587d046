// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// ResFunc adds the contribution of one integration point to the local residual r [nloc]
type ResFunc func(r []float64, p *Ip)

// JacFunc adds the contribution of one integration point to the local Jacobian K [nloc][nloc]
type JacFunc func(K [][]float64, p *Ip)

// Form holds the integrands of a weak form over a region
//  Res or Jac may be nil; e.g. a source term has no Jacobian
type Form struct {
	Name   string  // name for messages; e.g. "curlcurl"
	Region *Region // where the integrands are evaluated
	Res    ResFunc // residual integrand
	Jac    JacFunc // Jacobian integrand
}

// AddToRhs assembles the residual of all forms into r [ny]
//  y -- global vector of unknowns (without λ)
func (o *Domain) AddToRhs(r, y []float64, forms []*Form) (err error) {
	for _, f := range forms {
		if f.Res == nil {
			continue
		}
		for _, e := range f.Region.Elems {
			rloc := make([]float64, e.Nloc)
			for idx := range e.Ips {
				p, err := e.CalcIp(idx, y)
				if err != nil {
					return chk.Err("form %q: %v", f.Name, err)
				}
				f.Res(rloc, p)
			}
			for i, I := range e.Umap {
				r[I] += rloc[i]
			}
		}
	}
	return
}

// AddToKb assembles the Jacobian of all forms into K [ny+nλ][ny+nλ]
//  y -- global vector of unknowns (without λ)
func (o *Domain) AddToKb(K *mat.Dense, y []float64, forms []*Form) (err error) {
	for _, f := range forms {
		if f.Jac == nil {
			continue
		}
		for _, e := range f.Region.Elems {
			Kloc := alloc(e.Nloc, e.Nloc)
			for idx := range e.Ips {
				p, err := e.CalcIp(idx, y)
				if err != nil {
					return chk.Err("form %q: %v", f.Name, err)
				}
				f.Jac(Kloc, p)
			}
			for i, I := range e.Umap {
				for j, J := range e.Umap {
					if Kloc[i][j] != 0 {
						K.Set(I, J, K.At(I, J)+Kloc[i][j])
					}
				}
			}
		}
	}
	return
}
