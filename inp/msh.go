// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/CarlosHernando16/gohts/errs"
	"github.com/CarlosHernando16/gohts/shp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// cell tags
const (
	TagAir = -1 // cells outside the superconductor
	TagSc  = -2 // superconducting cells
)

// face tags set by the generators
const (
	TagBottom = -10 // 2D: y = ymin
	TagRight  = -11 // 2D: x = xmax
	TagTop    = -12 // 2D: y = ymax
	TagLeft   = -13 // 2D: x = xmin

	TagXmin = -30 // 3D
	TagXmax = -31 // 3D
	TagYmin = -32 // 3D
	TagYmax = -33 // 3D
	TagZmin = -34 // 3D
	TagZmax = -35 // 3D

	TagScBoundary = -20 // faces of superconducting cells shared with air cells
)

// Vert holds vertex data
type Vert struct {
	Id  int       `json:"id"`  // id
	Tag int       `json:"tag"` // tag
	C   []float64 `json:"c"`   // coordinates (size==2 or 3)

	// derived
	SharedBy []int `json:"-"` // cells sharing this vertex
}

// Cell holds cell data
type Cell struct {
	Id    int    `json:"id"`    // id
	Tag   int    `json:"tag"`   // tag
	Type  string `json:"type"`  // geometry type; e.g. "tri3", "tet4"
	Verts []int  `json:"verts"` // vertices
	FTags []int  `json:"ftags"` // edge (2D) or face (3D) tags; 0 == no tag

	// derived
	Shp *shp.Shape `json:"-"` // shape structure
}

// CellFaceId structure
type CellFaceId struct {
	C   *Cell // cell
	Fid int   // face id
}

// Mesh holds a mesh for FE analyses
type Mesh struct {

	// from JSON
	Verts []*Vert `json:"verts"` // vertices
	Cells []*Cell `json:"cells"` // cells

	// derived
	Ndim          int                  // space dimension
	Xmin          float64              // min(x) value
	Xmax          float64              // max(x) value
	Ymin          float64              // min(y) value
	Ymax          float64              // max(y) value
	Zmin          float64              // min(z) value
	Zmax          float64              // max(z) value
	CellTag2cells map[int][]*Cell      // cell tag => set of cells
	FaceTag2cells map[int][]CellFaceId // face tag => set of cells
	FaceTag2verts map[int][]int        // face tag => vertices on tagged faces (sorted, unique)
}

// ReadMsh reads a mesh for FE analyses
//  Note: returns error
func ReadMsh(dir, fn string) (o *Mesh, err error) {

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read mesh file %q:\n%v", fn, err)
	}

	// decode
	o = new(Mesh)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal mesh file %q:\n%v", fn, err)
	}

	// check and compute derived data
	err = o.Init()
	return
}

// Init checks the mesh and computes derived data
func (o *Mesh) Init() (err error) {

	// check
	if len(o.Verts) < 2 {
		return errs.Invalid("mesh must have at least 2 vertices")
	}
	if len(o.Cells) < 1 {
		return errs.Invalid("mesh must have at least 1 cell")
	}

	// vertices and limits
	o.Ndim = len(o.Verts[0].C)
	if o.Ndim < 2 || o.Ndim > 3 {
		return errs.Unsupported("space dimension must be 2 or 3. ndim = %d", o.Ndim)
	}
	o.Xmin, o.Ymin, o.Zmin = math.Inf(1), math.Inf(1), math.Inf(1)
	o.Xmax, o.Ymax, o.Zmax = math.Inf(-1), math.Inf(-1), math.Inf(-1)
	for i, v := range o.Verts {
		if i != v.Id {
			return errs.Invalid("vertices ids must coincide with order in \"verts\" list. %d != %d", i, v.Id)
		}
		if len(v.C) != o.Ndim {
			return errs.Invalid("vertex %d has %d coordinates; all must have %d", v.Id, len(v.C), o.Ndim)
		}
		v.SharedBy = nil
		o.Xmin, o.Xmax = math.Min(o.Xmin, v.C[0]), math.Max(o.Xmax, v.C[0])
		o.Ymin, o.Ymax = math.Min(o.Ymin, v.C[1]), math.Max(o.Ymax, v.C[1])
		if o.Ndim == 3 {
			o.Zmin, o.Zmax = math.Min(o.Zmin, v.C[2]), math.Max(o.Zmax, v.C[2])
		} else {
			o.Zmin, o.Zmax = 0, 0
		}
	}

	// cells
	o.CellTag2cells = make(map[int][]*Cell)
	o.FaceTag2cells = make(map[int][]CellFaceId)
	o.FaceTag2verts = make(map[int][]int)
	ftagVerts := make(map[int]map[int]bool)
	for i, c := range o.Cells {
		if i != c.Id {
			return errs.Invalid("cells ids must coincide with order in \"cells\" list. %d != %d", i, c.Id)
		}
		c.Shp = shp.Get(c.Type)
		if c.Shp == nil {
			return errs.Unsupported("cannot find shape type == %q", c.Type)
		}
		if c.Shp.Gndim != o.Ndim {
			return errs.Unsupported("cell %d of type %q cannot be used in %dD meshes", c.Id, c.Type, o.Ndim)
		}
		if len(c.Verts) != c.Shp.Nverts {
			return errs.Invalid("cell %d of type %q must have %d vertices", c.Id, c.Type, c.Shp.Nverts)
		}
		for _, vid := range c.Verts {
			if vid < 0 || vid >= len(o.Verts) {
				return errs.Invalid("cell %d refers to nonexistent vertex %d", c.Id, vid)
			}
			o.Verts[vid].SharedBy = append(o.Verts[vid].SharedBy, c.Id)
		}
		o.CellTag2cells[c.Tag] = append(o.CellTag2cells[c.Tag], c)
		if len(c.FTags) == 0 {
			continue
		}
		if len(c.FTags) != len(c.Shp.FaceLocalVerts) {
			return errs.Invalid("cell %d must have %d face tags", c.Id, len(c.Shp.FaceLocalVerts))
		}
		for fid, ftag := range c.FTags {
			if ftag >= 0 {
				continue
			}
			o.FaceTag2cells[ftag] = append(o.FaceTag2cells[ftag], CellFaceId{c, fid})
			if ftagVerts[ftag] == nil {
				ftagVerts[ftag] = make(map[int]bool)
			}
			for _, l := range c.Shp.FaceLocalVerts[fid] {
				ftagVerts[ftag][c.Verts[l]] = true
			}
		}
	}
	for ftag, set := range ftagVerts {
		vids := make([]int, 0, len(set))
		for vid := range set {
			vids = append(vids, vid)
		}
		sort.Ints(vids)
		o.FaceTag2verts[ftag] = vids
	}
	return
}

// FaceTags returns all face tags in ascending order
func (o *Mesh) FaceTags() (tags []int) {
	for tag := range o.FaceTag2cells {
		tags = append(tags, tag)
	}
	sort.Ints(tags)
	return
}

// ExtractCellCoords extracts cell coordinates
//   X -- matrix with coordinates [ndim][nverts]
func (o *Mesh) ExtractCellCoords(cellId int) (X [][]float64) {
	c := o.Cells[cellId]
	X = make([][]float64, o.Ndim)
	for i := 0; i < o.Ndim; i++ {
		X[i] = make([]float64, len(c.Verts))
		for m, vid := range c.Verts {
			X[i][m] = o.Verts[vid].C[i]
		}
	}
	return
}

// BoundaryTags returns the face tags whose faces all lie on the outer boundary (ascending)
func (o *Mesh) BoundaryTags() (tags []int) {
	count := o.faceCount()
	for _, tag := range o.FaceTags() {
		outer := true
		for _, cf := range o.FaceTag2cells[tag] {
			if count[faceKey(cf.C, cf.Fid)] != 1 {
				outer = false
				break
			}
		}
		if outer {
			tags = append(tags, tag)
		}
	}
	return
}

// String returns a summary of the mesh
func (o *Mesh) String() string {
	return io.Sf("ndim=%d nverts=%d ncells=%d lims=[%g, %g, %g, %g, %g, %g] ftags=%v",
		o.Ndim, len(o.Verts), len(o.Cells), o.Xmin, o.Xmax, o.Ymin, o.Ymax, o.Zmin, o.Zmax, o.FaceTags())
}

// faceCount returns the number of cells sharing each face
func (o *Mesh) faceCount() (count map[[3]int]int) {
	count = make(map[[3]int]int)
	for _, c := range o.Cells {
		for fid := range c.Shp.FaceLocalVerts {
			count[faceKey(c, fid)]++
		}
	}
	return
}

// faceKey returns the sorted global vertices of a cell face; unused entries are -1
func faceKey(c *Cell, fid int) (key [3]int) {
	key = [3]int{-1, -1, -1}
	lverts := c.Shp.FaceLocalVerts[fid]
	vids := make([]int, len(lverts))
	for i, l := range lverts {
		vids[i] = c.Verts[l]
	}
	sort.Ints(vids)
	copy(key[:], vids)
	return
}
