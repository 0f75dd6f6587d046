// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wf

import (
	"github.com/CarlosHernando16/gohts/errs"
	"github.com/CarlosHernando16/gohts/fem"
	"github.com/CarlosHernando16/gohts/mdl/sc"
	"gonum.org/v1/gonum/floats"
)

// Source computes the source term f at x
//  f -- [1] in 2D (out-of-plane component) or [3] in 3D
type Source func(f, x []float64)

// ConstSource returns a source with constant values; a single value is broadcast to all components
func ConstSource(vals ...float64) Source {
	return func(f, x []float64) {
		for i := range f {
			if len(vals) == 1 {
				f[i] = vals[0]
			} else {
				f[i] = vals[i]
			}
		}
	}
}

// Builder builds the integrands of the weak forms
//  Fields are referred to by their index in fem.Ip.Fields. In 2D, A is a Lagrange field;
//  in 3D, A is a Nédélec field. T is always a Lagrange field
type Builder struct {
	Ndim  int     // space dimension
	MuInv float64 // inverse of the magnetic permeability
	W     Weight  // integration weight
}

// NewBuilder returns a new Builder
func NewBuilder(cs CoordSys, muInv float64) (o *Builder, err error) {
	if !(muInv > 0) {
		return nil, errs.Invalid("inverse permeability must be positive. μ⁻¹ = %g", muInv)
	}
	w, err := NewWeight(cs)
	if err != nil {
		return
	}
	return &Builder{cs.Ndim(), muInv, w}, nil
}

// CurlCurl returns the bilinear form of the A equation
//  2D: a(A,v) = ∫ w μ⁻¹ ∇A・∇v
//  3D: a(A,v) = ∫ μ⁻¹ curl A・curl v
func (o *Builder) CurlCurl(reg *fem.Region, a int) *fem.Form {
	f := &fem.Form{Name: "curlcurl", Region: reg}
	f.Res = func(r []float64, p *fem.Ip) {
		A := p.Fields[a]
		if !A.Active {
			return
		}
		c := o.coef(p) * o.MuInv
		val := o.rot(A)
		for m := 0; m < A.Nb; m++ {
			r[A.Off+m] += c * floats.Dot(o.rotBasis(A, m), val)
		}
	}
	f.Jac = func(K [][]float64, p *fem.Ip) {
		A := p.Fields[a]
		if !A.Active {
			return
		}
		c := o.coef(p) * o.MuInv
		for m := 0; m < A.Nb; m++ {
			for n := 0; n < A.Nb; n++ {
				K[A.Off+m][A.Off+n] += c * floats.Dot(o.rotBasis(A, m), o.rotBasis(A, n))
			}
		}
	}
	return f
}

// Source returns the linear form l(v) = ∫ w f・v subtracted from the residual of field a
func (o *Builder) Source(reg *fem.Region, a int, src Source) *fem.Form {
	ncomp := 1
	if o.Ndim == 3 {
		ncomp = 3
	}
	fval := make([]float64, ncomp)
	f := &fem.Form{Name: "source", Region: reg}
	f.Res = func(r []float64, p *fem.Ip) {
		A := p.Fields[a]
		if !A.Active {
			return
		}
		c := o.coef(p)
		src(fval, p.X)
		for m := 0; m < A.Nb; m++ {
			if ncomp == 1 {
				r[A.Off+m] -= c * fval[0] * A.S[m]
			} else {
				r[A.Off+m] -= c * floats.Dot(fval, A.W[m])
			}
		}
	}
	return f
}

// PowerLawT returns the nonlinear form of the T equation over the superconducting region
//
//   R_T = ∫ w ρ(|J|) J・∇v    with    J = -∇T  and  |J| = sqrt(J・J + ε)
//
//  The Jacobian is exact:
//
//   dR_T = ∫ w [ρ dJ・∇v + dρ/d|J| (J・dJ)/|J| (J・∇v) + (∂ρ/∂B・curl dA)(J・∇v)]
//
//  where dJ = -∇dT. The last term only exists for models depending on B = curl A;
//  a < 0 means that B is not available (B = nil)
func (o *Builder) PowerLawT(reg *fem.Region, t, a int, mdl sc.Model) *fem.Form {
	J := make([]float64, o.Ndim)
	JG := make([]float64, 0, 4)
	dρdb := make([]float64, 3)
	curlφ := make([]float64, 3)
	withB := mdl.FieldDependent() && a >= 0

	// current density and flux density
	state := func(p *fem.Ip) (T *fem.IpField, jn float64, b []float64) {
		T = p.Fields[t]
		for i := 0; i < o.Ndim; i++ {
			J[i] = -T.Grad[i]
		}
		if a >= 0 && p.Fields[a].Active {
			b = p.Fields[a].Curl
		}
		return T, sc.RegNorm(J), b
	}

	f := &fem.Form{Name: "powerlaw-t", Region: reg}
	f.Res = func(r []float64, p *fem.Ip) {
		if !p.Fields[t].Active {
			return
		}
		T, jn, b := state(p)
		cρ := o.coef(p) * mdl.Rho(jn, b)
		for m := 0; m < T.Nb; m++ {
			r[T.Off+m] += cρ * floats.Dot(J, T.G[m])
		}
	}
	f.Jac = func(K [][]float64, p *fem.Ip) {
		if !p.Fields[t].Active {
			return
		}
		T, jn, b := state(p)
		c := o.coef(p)
		ρ := mdl.Rho(jn, b)
		dρ := mdl.DrhoDj(jn, b)
		JG = JG[:0]
		for m := 0; m < T.Nb; m++ {
			JG = append(JG, floats.Dot(J, T.G[m]))
		}
		for m := 0; m < T.Nb; m++ {
			for n := 0; n < T.Nb; n++ {
				K[T.Off+m][T.Off+n] -= c * (ρ*floats.Dot(T.G[n], T.G[m]) + dρ*JG[n]*JG[m]/jn)
			}
		}
		if !withB || b == nil {
			return
		}
		A := p.Fields[a]
		mdl.DrhoDb(dρdb, b, jn)
		for n := 0; n < A.Nb; n++ {
			if o.Ndim == 2 {
				curlφ[0], curlφ[1], curlφ[2] = A.G[n][1], -A.G[n][0], 0
			} else {
				copy(curlφ, A.C[n])
			}
			dρn := floats.Dot(dρdb, curlφ)
			for m := 0; m < T.Nb; m++ {
				K[T.Off+m][A.Off+n] += c * dρn * JG[m]
			}
		}
	}
	return f
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////////

// coef returns the quadrature coefficient times the weight
func (o *Builder) coef(p *fem.Ip) float64 {
	return p.Coef * o.W(p.X)
}

// rot returns ∇A in 2D and curl A in 3D
func (o *Builder) rot(A *fem.IpField) []float64 {
	if o.Ndim == 2 {
		return A.Grad
	}
	return A.Curl
}

// rotBasis returns ∇φ_m in 2D and curl φ_m in 3D
func (o *Builder) rotBasis(A *fem.IpField, m int) []float64 {
	if o.Ndim == 2 {
		return A.G[m]
	}
	return A.C[m]
}
