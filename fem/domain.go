// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the discretisation of fields over simplex meshes: degrees of freedom,
// integration points, assembly of weak forms and essential boundary conditions
package fem

import (
	"sort"

	"github.com/CarlosHernando16/gohts/errs"
	"github.com/CarlosHernando16/gohts/inp"
	"github.com/CarlosHernando16/gohts/shp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Space defines the type of finite element space of a field
type Space int

// spaces
const (
	Lagrange Space = iota // continuous piecewise linear; one dof per vertex
	Nedelec               // lowest-order Nédélec (first kind); one dof per edge (tet4 only)
)

// String returns the name of the space
func (o Space) String() string {
	switch o {
	case Lagrange:
		return "lagrange"
	case Nedelec:
		return "nedelec"
	}
	return io.Sf("space(%d)", int(o))
}

// FieldDef defines an unknown field
type FieldDef struct {
	Key     string // key; e.g. "a", "t"
	Space   Space  // finite element space
	Support int    // cell tag where the field lives; 0 => whole domain
}

// Dof holds information about a degree-of-freedom == solution variable
type Dof struct {
	Key string // primary variable key. e.g. "a"
	Eq  int    // equation number
}

// Node holds node dofs information
type Node struct {
	Vert *inp.Vert // pointer to Vertex
	Dofs []*Dof    // dofs
}

// GetDof returns the Dof structure for given Dof name (key)
//  Note: returns nil if key is not found
func (o *Node) GetDof(key string) *Dof {
	for _, d := range o.Dofs {
		if d.Key == key {
			return d
		}
	}
	return nil
}

// GetEq returns the equation number for given Dof name (key)
//  Note: returns -1 if key is not found
func (o *Node) GetEq(key string) int {
	if d := o.GetDof(key); d != nil {
		return d.Eq
	}
	return -1
}

// Edge holds an oriented mesh edge (from vertex A to vertex B, A < B) and its dofs
type Edge struct {
	A, B int    // vertices ids
	Dofs []*Dof // dofs
}

// Domain holds the fields, nodes, edges and elements of a discretised mesh
type Domain struct {

	// input
	Msh    *inp.Mesh   // mesh data
	Ndim   int         // space dimension
	Fields []*FieldDef // unknown fields

	// nodes and edges
	Nodes    []*Node          // nodes with at least one dof
	Vid2node []*Node          // [nverts] VertexId => node. Vertices without dofs are 'nil'
	Edges    []*Edge          // edges with at least one dof
	edges    map[[2]int]*Edge // (A,B) => edge

	// elements
	Elems    []*Elem // all elements
	Cid2elem []*Elem // [ncells] CellId => element

	// dimensions
	Ny        int              // total number of dofs, except λ
	Field2eqs map[string][]int // field key => equations
}

// NewDomain allocates dofs for the given fields and creates one element per cell
//  nip -- number of integration points; 0 => default
func NewDomain(msh *inp.Mesh, fields []*FieldDef, nip int) (o *Domain, err error) {

	// check
	if len(fields) == 0 {
		return nil, errs.Invalid("domain needs at least one field")
	}
	keys := make(map[string]bool)
	for _, f := range fields {
		if keys[f.Key] {
			return nil, errs.Invalid("field %q is defined more than once", f.Key)
		}
		keys[f.Key] = true
		if f.Space == Nedelec && msh.Ndim != 3 {
			return nil, errs.Unsupported("field %q: Nédélec space requires 3D (tet4) meshes", f.Key)
		}
		if f.Support != 0 && len(msh.CellTag2cells[f.Support]) == 0 {
			return nil, errs.Invalid("field %q: there are no cells with tag %d", f.Key, f.Support)
		}
	}

	// new domain
	o = &Domain{Msh: msh, Ndim: msh.Ndim, Fields: fields}
	o.Vid2node = make([]*Node, len(msh.Verts))
	o.edges = make(map[[2]int]*Edge)
	o.Field2eqs = make(map[string][]int)

	// equations: field by field
	for _, f := range fields {
		switch f.Space {
		case Lagrange:
			for _, vert := range msh.Verts {
				if !o.inSupport(vert, f) {
					continue
				}
				nod := o.Vid2node[vert.Id]
				if nod == nil {
					nod = &Node{Vert: vert}
					o.Vid2node[vert.Id] = nod
					o.Nodes = append(o.Nodes, nod)
				}
				nod.Dofs = append(nod.Dofs, &Dof{f.Key, o.Ny})
				o.Field2eqs[f.Key] = append(o.Field2eqs[f.Key], o.Ny)
				o.Ny++
			}
		case Nedelec:
			for _, cell := range msh.Cells {
				if f.Support != 0 && cell.Tag != f.Support {
					continue
				}
				for _, lv := range cell.Shp.EdgeLocalVerts {
					key, _ := edgeKey(cell.Verts[lv[0]], cell.Verts[lv[1]])
					edge := o.edges[key]
					if edge == nil {
						edge = &Edge{A: key[0], B: key[1]}
						o.edges[key] = edge
						o.Edges = append(o.Edges, edge)
					}
					if edge.GetEq(f.Key) >= 0 {
						continue
					}
					edge.Dofs = append(edge.Dofs, &Dof{f.Key, o.Ny})
					o.Field2eqs[f.Key] = append(o.Field2eqs[f.Key], o.Ny)
					o.Ny++
				}
			}
		default:
			return nil, errs.Unsupported("field %q: space %v is not available", f.Key, f.Space)
		}
	}

	// elements
	o.Cid2elem = make([]*Elem, len(msh.Cells))
	for _, cell := range msh.Cells {
		var e *Elem
		e, err = newElem(o, cell, nip)
		if err != nil {
			return nil, err
		}
		o.Elems = append(o.Elems, e)
		o.Cid2elem[cell.Id] = e
	}
	return
}

// FieldIndex returns the index of a field in Fields or -1 if not found
func (o *Domain) FieldIndex(key string) int {
	for i, f := range o.Fields {
		if f.Key == key {
			return i
		}
	}
	return -1
}

// Region returns the elements of cells with a given tag; tag == 0 => all elements
func (o *Domain) Region(tag int) (reg *Region, err error) {
	reg = &Region{Tag: tag}
	if tag == 0 {
		reg.Elems = o.Elems
		return
	}
	for _, cell := range o.Msh.CellTag2cells[tag] {
		reg.Elems = append(reg.Elems, o.Cid2elem[cell.Id])
	}
	if len(reg.Elems) == 0 {
		return nil, errs.Invalid("there are no cells with tag %d", tag)
	}
	return
}

// FaceTagNodes returns the nodes on faces with a given tag
func (o *Domain) FaceTagNodes(tag int) (nodes []*Node, err error) {
	vids, ok := o.Msh.FaceTag2verts[tag]
	if !ok {
		return nil, errs.Invalid("there are no faces with tag %d", tag)
	}
	for _, vid := range vids {
		if nod := o.Vid2node[vid]; nod != nil {
			nodes = append(nodes, nod)
		}
	}
	return
}

// FaceTagEdges returns the edges on faces with a given tag
func (o *Domain) FaceTagEdges(tag int) (edges []*Edge, err error) {
	cfs, ok := o.Msh.FaceTag2cells[tag]
	if !ok {
		return nil, errs.Invalid("there are no faces with tag %d", tag)
	}
	found := make(map[*Edge]bool)
	for _, cf := range cfs {
		fverts := cf.C.Shp.FaceLocalVerts[cf.Fid]
		for i := 0; i < len(fverts); i++ {
			j := (i + 1) % len(fverts)
			key, _ := edgeKey(cf.C.Verts[fverts[i]], cf.C.Verts[fverts[j]])
			if edge := o.edges[key]; edge != nil && !found[edge] {
				found[edge] = true
				edges = append(edges, edge)
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].A == edges[j].A {
			return edges[i].B < edges[j].B
		}
		return edges[i].A < edges[j].A
	})
	return
}

// GetEq returns the equation number of a given key or -1 if not found
func (o *Edge) GetEq(key string) int {
	for _, d := range o.Dofs {
		if d.Key == key {
			return d.Eq
		}
	}
	return -1
}

// Region holds a set of elements where weak forms are integrated
type Region struct {
	Tag   int     // cell tag; 0 => whole domain
	Elems []*Elem // elements
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////////

// inSupport tells whether a vertex belongs to a cell in the support of a field
func (o *Domain) inSupport(vert *inp.Vert, f *FieldDef) bool {
	if f.Support == 0 {
		return len(vert.SharedBy) > 0
	}
	for _, cid := range vert.SharedBy {
		if o.Msh.Cells[cid].Tag == f.Support {
			return true
		}
	}
	return false
}

// edgeKey returns the global (sorted) vertices of an edge and the orientation of (a,b) w.r.t it
func edgeKey(a, b int) (key [2]int, sgn float64) {
	if a < b {
		return [2]int{a, b}, 1
	}
	return [2]int{b, a}, -1
}

// shape returns a new shape structure for a cell
func shape(cell *inp.Cell) (*shp.Shape, error) {
	s := shp.Get(cell.Type)
	if s == nil {
		return nil, chk.Err("cannot find shape type == %q", cell.Type)
	}
	return s, nil
}
