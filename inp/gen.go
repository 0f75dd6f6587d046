// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/CarlosHernando16/gohts/errs"
	"github.com/CarlosHernando16/gohts/shp"
)

// GenRect generates a structured mesh of tri3 cells over [xmin,xmax]×[ymin,ymax]
//  nx, ny -- number of divisions along x and y; each rectangle is split into two triangles
//  sc     -- [xa, xb, ya, yb] superconducting box: cells with centroid inside are tagged TagSc and
//            the others TagAir; nil means all cells are superconducting
//  Face tags: bottom=TagBottom, right=TagRight, top=TagTop, left=TagLeft; interior faces between
//  superconducting and air cells are tagged TagScBoundary on the superconducting side
func GenRect(nx, ny int, xmin, xmax, ymin, ymax float64, sc []float64) (o *Mesh, err error) {

	// check
	if nx < 1 || ny < 1 {
		return nil, errs.Invalid("number of divisions must be positive. nx=%d ny=%d", nx, ny)
	}
	if !(xmax > xmin) || !(ymax > ymin) {
		return nil, errs.Invalid("limits must be increasing. x=[%g,%g] y=[%g,%g]", xmin, xmax, ymin, ymax)
	}
	if sc != nil && len(sc) != 4 {
		return nil, errs.Invalid("superconducting box must have 4 values. %v", sc)
	}

	// vertices
	o = new(Mesh)
	dx, dy := (xmax-xmin)/float64(nx), (ymax-ymin)/float64(ny)
	vid := func(i, j int) int { return j*(nx+1) + i }
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			o.Verts = append(o.Verts, &Vert{Id: vid(i, j), C: []float64{xmin + float64(i)*dx, ymin + float64(j)*dy}})
		}
	}

	// cells
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			v0, v1, v2, v3 := vid(i, j), vid(i+1, j), vid(i+1, j+1), vid(i, j+1)
			ta := &Cell{Type: "tri3", Verts: []int{v0, v1, v2}, FTags: []int{0, 0, 0}}
			tb := &Cell{Type: "tri3", Verts: []int{v0, v2, v3}, FTags: []int{0, 0, 0}}
			if j == 0 {
				ta.FTags[0] = TagBottom
			}
			if i == nx-1 {
				ta.FTags[1] = TagRight
			}
			if j == ny-1 {
				tb.FTags[1] = TagTop
			}
			if i == 0 {
				tb.FTags[2] = TagLeft
			}
			for _, c := range []*Cell{ta, tb} {
				c.Id = len(o.Cells)
				c.Tag = cellTag(o, c, sc)
				o.Cells = append(o.Cells, c)
			}
		}
	}

	// interfaces
	err = finishGen(o, sc)
	return
}

// GenBox generates a structured mesh of tet4 cells over lims = [xmin,xmax, ymin,ymax, zmin,zmax]
//  n  -- [nx, ny, nz] number of divisions; each brick is split into six tetrahedra (Kuhn split)
//  sc -- [xa,xb, ya,yb, za,zb] superconducting box or nil (all cells superconducting)
//  Face tags: TagXmin, TagXmax, TagYmin, TagYmax, TagZmin, TagZmax and TagScBoundary as in GenRect
func GenBox(n []int, lims, sc []float64) (o *Mesh, err error) {

	// check
	if len(n) != 3 || len(lims) != 6 {
		return nil, errs.Invalid("box generator needs 3 divisions and 6 limits. n=%v lims=%v", n, lims)
	}
	nx, ny, nz := n[0], n[1], n[2]
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, errs.Invalid("number of divisions must be positive. n=%v", n)
	}
	for i := 0; i < 3; i++ {
		if !(lims[2*i+1] > lims[2*i]) {
			return nil, errs.Invalid("limits must be increasing. lims=%v", lims)
		}
	}
	if sc != nil && len(sc) != 6 {
		return nil, errs.Invalid("superconducting box must have 6 values. %v", sc)
	}

	// vertices
	o = new(Mesh)
	d := []float64{(lims[1] - lims[0]) / float64(nx), (lims[3] - lims[2]) / float64(ny), (lims[5] - lims[4]) / float64(nz)}
	vid := func(i, j, k int) int { return (k*(ny+1)+j)*(nx+1) + i }
	ijk := make([][3]int, 0, (nx+1)*(ny+1)*(nz+1))
	for k := 0; k <= nz; k++ {
		for j := 0; j <= ny; j++ {
			for i := 0; i <= nx; i++ {
				o.Verts = append(o.Verts, &Vert{Id: vid(i, j, k), C: []float64{
					lims[0] + float64(i)*d[0],
					lims[2] + float64(j)*d[1],
					lims[4] + float64(k)*d[2],
				}})
				ijk = append(ijk, [3]int{i, j, k})
			}
		}
	}

	// Kuhn paths from corner 000 to corner 111
	perms := [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	nmax := [3]int{nx, ny, nz}
	lo := [3]int{TagXmin, TagYmin, TagZmin}
	hi := [3]int{TagXmax, TagYmax, TagZmax}
	tet := shp.Get("tet4")

	// cells
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				for _, p := range perms {
					b := [3]int{i, j, k}
					verts := []int{vid(b[0], b[1], b[2])}
					for _, axis := range p {
						b[axis]++
						verts = append(verts, vid(b[0], b[1], b[2]))
					}
					c := &Cell{Id: len(o.Cells), Type: "tet4", Verts: verts, FTags: []int{0, 0, 0, 0}}
					if orient3d(o, verts) < 0 {
						c.Verts[1], c.Verts[2] = c.Verts[2], c.Verts[1]
					}

					// faces on the outer boundary
					for fid, lverts := range tet.FaceLocalVerts {
						for axis := 0; axis < 3; axis++ {
							allLo, allHi := true, true
							for _, l := range lverts {
								q := ijk[c.Verts[l]][axis]
								allLo = allLo && q == 0
								allHi = allHi && q == nmax[axis]
							}
							if allLo {
								c.FTags[fid] = lo[axis]
							}
							if allHi {
								c.FTags[fid] = hi[axis]
							}
						}
					}
					c.Tag = cellTag(o, c, sc)
					o.Cells = append(o.Cells, c)
				}
			}
		}
	}

	// interfaces
	err = finishGen(o, sc)
	return
}

// cellTag returns TagSc if the centroid of c is inside the box sc (or if sc is nil) and TagAir otherwise
func cellTag(o *Mesh, c *Cell, sc []float64) int {
	if sc == nil {
		return TagSc
	}
	ndim := len(sc) / 2
	for i := 0; i < ndim; i++ {
		xc := 0.0
		for _, vid := range c.Verts {
			xc += o.Verts[vid].C[i]
		}
		xc /= float64(len(c.Verts))
		if xc < sc[2*i] || xc > sc[2*i+1] {
			return TagAir
		}
	}
	return TagSc
}

// orient3d returns the signed volume (times 6) of a tetrahedron
func orient3d(o *Mesh, verts []int) float64 {
	a, b, c, d := o.Verts[verts[0]].C, o.Verts[verts[1]].C, o.Verts[verts[2]].C, o.Verts[verts[3]].C
	u := []float64{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
	v := []float64{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
	w := []float64{d[0] - a[0], d[1] - a[1], d[2] - a[2]}
	return u[0]*(v[1]*w[2]-v[2]*w[1]) - u[1]*(v[0]*w[2]-v[2]*w[0]) + u[2]*(v[0]*w[1]-v[1]*w[0])
}

// finishGen initialises the mesh and tags the superconductor/air interfaces
func finishGen(o *Mesh, sc []float64) (err error) {
	err = o.Init()
	if err != nil || sc == nil {
		return
	}
	owner := make(map[[3]int][]*Cell)
	for _, c := range o.Cells {
		for fid := range c.Shp.FaceLocalVerts {
			key := faceKey(c, fid)
			owner[key] = append(owner[key], c)
		}
	}
	changed := false
	for _, c := range o.Cells {
		if c.Tag != TagSc {
			continue
		}
		for fid := range c.Shp.FaceLocalVerts {
			cells := owner[faceKey(c, fid)]
			if len(cells) == 2 && cells[0].Tag != cells[1].Tag && c.FTags[fid] == 0 {
				c.FTags[fid] = TagScBoundary
				changed = true
			}
		}
	}
	if changed {
		err = o.Init()
	}
	return
}
