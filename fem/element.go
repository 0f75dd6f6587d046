// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/CarlosHernando16/gohts/inp"
	"github.com/CarlosHernando16/gohts/shp"
	"github.com/cpmech/gosl/chk"
)

// IpField holds the basis functions of one field and the interpolated field at an integration point
//  Lagrange: S, G, Val, Grad and, in 2D, Curl = (∂u/∂y, -∂u/∂x, 0)
//  Nedelec:  W, C, Vec and Curl
type IpField struct {
	Def    *FieldDef   // field definition
	Active bool        // field exists in this element
	Off    int         // offset of this field in the local vectors/matrices
	Nb     int         // number of basis functions
	S      []float64   // [nb] scalar basis
	G      [][]float64 // [nb][ndim] gradients of scalar basis
	W      [][]float64 // [nb][3] vector (edge) basis
	C      [][]float64 // [nb][3] curl of vector basis
	Val    float64     // scalar field
	Grad   []float64   // [ndim] gradient of scalar field
	Vec    []float64   // [3] vector field
	Curl   []float64   // [3] curl of field
}

// Ip holds data at one integration point
type Ip struct {
	X      []float64  // real coordinates
	Coef   float64    // det(dx/dR) times quadrature weight
	Fields []*IpField // one entry per field of the domain
}

// Elem holds the data of one cell required to integrate weak forms
type Elem struct {

	// basic data
	Cell *inp.Cell     // the cell structure
	X    [][]float64   // matrix of nodal coordinates [ndim][nverts]
	Ndim int           // space dimension
	Shp  *shp.Shape    // shape structure (own copy)
	Ips  []*shp.Ipoint // integration points
	Umap []int         // assembly map (location array/element equations) of active fields
	Sgn  [][]float64   // [nfields][nedges] orientation of edges (Nédélec fields)
	Nloc int           // number of local equations

	// scratchpad
	ip   *Ip       // data at integration point
	rnat []float64 // natural coordinates
}

// newElem allocates a new element
func newElem(dom *Domain, cell *inp.Cell, nip int) (o *Elem, err error) {

	// basic data
	o = &Elem{Cell: cell, Ndim: dom.Ndim}
	o.X = dom.Msh.ExtractCellCoords(cell.Id)
	o.Shp, err = shape(cell)
	if err != nil {
		return
	}
	o.Ips, err = shp.GetIps(cell.Type, nip)
	if err != nil {
		return
	}
	o.rnat = make([]float64, 3)

	// integration point data and location array
	nverts := o.Shp.Nverts
	nedges := len(o.Shp.EdgeLocalVerts)
	o.ip = &Ip{X: make([]float64, o.Ndim)}
	o.Sgn = make([][]float64, len(dom.Fields))
	for i, f := range dom.Fields {
		fld := &IpField{Def: f, Off: o.Nloc}
		o.ip.Fields = append(o.ip.Fields, fld)
		fld.Active = f.Support == 0 || f.Support == cell.Tag
		if !fld.Active {
			continue
		}
		switch f.Space {
		case Lagrange:
			fld.Nb = nverts
			fld.S = make([]float64, nverts)
			fld.G = alloc(nverts, o.Ndim)
			fld.Grad = make([]float64, o.Ndim)
			fld.Curl = make([]float64, 3)
			for _, vid := range cell.Verts {
				eq := -1
				if nod := dom.Vid2node[vid]; nod != nil {
					eq = nod.GetEq(f.Key)
				}
				if eq < 0 {
					return nil, chk.Err("cannot find equation of field %q at vertex %d of cell %d", f.Key, vid, cell.Id)
				}
				o.Umap = append(o.Umap, eq)
			}
		case Nedelec:
			fld.Nb = nedges
			fld.W = alloc(nedges, 3)
			fld.C = alloc(nedges, 3)
			fld.Vec = make([]float64, 3)
			fld.Curl = make([]float64, 3)
			o.Sgn[i] = make([]float64, nedges)
			for e, lv := range o.Shp.EdgeLocalVerts {
				key, sgn := edgeKey(cell.Verts[lv[0]], cell.Verts[lv[1]])
				eq := -1
				if edge := dom.edges[key]; edge != nil {
					eq = edge.GetEq(f.Key)
				}
				if eq < 0 {
					return nil, chk.Err("cannot find equation of field %q at edge %v of cell %d", f.Key, key, cell.Id)
				}
				o.Umap = append(o.Umap, eq)
				o.Sgn[i][e] = sgn
			}
		}
		o.Nloc += fld.Nb
	}
	return
}

// CalcIp computes basis functions and interpolates the fields at integration point idx
//  y -- global vector of unknowns (without λ)
//  Note: the returned Ip is a scratchpad owned by the element
func (o *Elem) CalcIp(idx int, y []float64) (p *Ip, err error) {

	// shape functions and derivatives
	ip := o.Ips[idx]
	o.rnat[0], o.rnat[1], o.rnat[2] = ip.R, ip.S, ip.T
	err = o.Shp.CalcAtIp(o.X, o.rnat, true)
	if err != nil {
		return nil, chk.Err("cell %d: %v", o.Cell.Id, err)
	}
	p = o.ip
	p.Coef = o.Shp.J * ip.W
	for i := 0; i < o.Ndim; i++ {
		p.X[i] = 0
		for m := 0; m < o.Shp.Nverts; m++ {
			p.X[i] += o.Shp.S[m] * o.X[i][m]
		}
	}

	// fields
	for i, fld := range p.Fields {
		if !fld.Active {
			continue
		}
		umap := o.Umap[fld.Off : fld.Off+fld.Nb]
		switch fld.Def.Space {
		case Lagrange:
			copy(fld.S, o.Shp.S)
			fld.Val = 0
			for j := 0; j < o.Ndim; j++ {
				fld.Grad[j] = 0
			}
			for m := 0; m < fld.Nb; m++ {
				copy(fld.G[m], o.Shp.G[m])
				fld.Val += fld.S[m] * y[umap[m]]
				for j := 0; j < o.Ndim; j++ {
					fld.Grad[j] += fld.G[m][j] * y[umap[m]]
				}
			}
			if o.Ndim == 2 {
				fld.Curl[0], fld.Curl[1], fld.Curl[2] = fld.Grad[1], -fld.Grad[0], 0
			}
		case Nedelec:
			o.Shp.Nedelec(fld.W, fld.C, o.Sgn[i])
			for j := 0; j < 3; j++ {
				fld.Vec[j], fld.Curl[j] = 0, 0
			}
			for e := 0; e < fld.Nb; e++ {
				for j := 0; j < 3; j++ {
					fld.Vec[j] += fld.W[e][j] * y[umap[e]]
					fld.Curl[j] += fld.C[e][j] * y[umap[e]]
				}
			}
		}
	}
	return
}

// alloc allocates a matrix
func alloc(m, n int) (a [][]float64) {
	a = make([][]float64, m)
	for i := range a {
		a[i] = make([]float64, n)
	}
	return
}
