// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON or YAML file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/CarlosHernando16/gohts/errs"
	"github.com/CarlosHernando16/gohts/nonlin"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// Data holds global data for simulations
type Data struct {
	Desc         string  `json:"desc" yaml:"desc"`                 // description of simulation
	DirOut       string  `json:"dirout" yaml:"dirout"`             // directory for output; e.g. /tmp/gohts
	Formulation  string  `json:"formulation" yaml:"formulation"`   // "a" (single field) or "ta" (coupled T-A)
	Coords       string  `json:"coords" yaml:"coords"`             // "cartesian2d", "axisymmetric2d" or "3d"
	MuInv        float64 `json:"muinv" yaml:"muinv"`               // inverse magnetic permeability
	ScTag        int     `json:"sctag" yaml:"sctag"`               // cell tag of the superconductor; 0 => whole domain
	RequireScTag bool    `json:"requiresctag" yaml:"requiresctag"` // fail if ScTag is not given
	Nip          int     `json:"nip" yaml:"nip"`                   // number of integration points; 0 => default
}

// MeshData holds data to read or generate the mesh
type MeshData struct {
	File string    `json:"file" yaml:"file"` // mesh file path (relative to .sim file)
	Gen  string    `json:"gen" yaml:"gen"`   // generator: "rect" or "box"
	N    []int     `json:"n" yaml:"n"`       // generator: number of divisions
	Lims []float64 `json:"lims" yaml:"lims"` // generator: limits [xmin,xmax, ymin,ymax(, zmin,zmax)]
	Sc   []float64 `json:"sc" yaml:"sc"`     // generator: superconducting box; nil => everything
}

// BcData holds Dirichlet boundary conditions for one field
type BcData struct {
	Tags []int  `json:"tags" yaml:"tags"` // face tags; empty => default tags
	Func string `json:"func" yaml:"func"` // name of function; empty => zero
}

// BcsData holds all Dirichlet boundary conditions
type BcsData struct {
	A BcData `json:"a" yaml:"a"` // magnetic vector potential
	T BcData `json:"t" yaml:"t"` // current vector potential
}

// SourceData holds the source term of the A-equation
type SourceData struct {
	Funcs []string `json:"funcs" yaml:"funcs"` // one function (broadcast) or one per component
	Tag   int      `json:"tag" yaml:"tag"`     // cell tag; 0 => whole domain
}

// MatData holds material data
type MatData struct {
	Name  string     `json:"name" yaml:"name"`   // material name
	Model string     `json:"model" yaml:"model"` // model name; e.g. "powerlaw", "kim"
	Prms  dbf.Params `json:"prms" yaml:"prms"`   // parameters
}

// ContinuationData holds the schedule of exponents
type ContinuationData struct {
	Schedule []int `json:"schedule" yaml:"schedule"` // exponents; empty => material exponent only
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data         Data             `json:"data" yaml:"data"`                 // stores global simulation data
	Mesh         MeshData         `json:"mesh" yaml:"mesh"`                 // mesh file or generator
	Functions    FuncsData        `json:"functions" yaml:"functions"`       // stores all functions
	Bcs          BcsData          `json:"bcs" yaml:"bcs"`                   // Dirichlet boundary conditions
	Source       *SourceData      `json:"source" yaml:"source"`             // source term; nil => none
	Material     *MatData         `json:"material" yaml:"material"`         // superconductor
	Solver       nonlin.Config    `json:"solver" yaml:"solver"`             // nonlinear solver data
	Continuation ContinuationData `json:"continuation" yaml:"continuation"` // exponent schedule

	// derived
	Key    string // simulation key; e.g. mysim01.sim => mysim01
	DirOut string // directory to save results
	Msh    *Mesh  // the mesh
}

// ReadSim reads all simulation data from a .sim (JSON) or .yaml/.yml file
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// new sim
	o = new(Simulation)

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// set default values
	o.Data.SetDefault()
	o.Solver.SetDefault()

	// decode
	ext := strings.ToLower(filepath.Ext(simfilepath))
	if ext == ".yaml" || ext == ".yml" {
		err = yaml.Unmarshal(b, o)
	} else {
		err = json.Unmarshal(b, o)
	}
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// input directory and filename key
	dir := os.ExpandEnv(filepath.Dir(simfilepath))
	o.Key = io.FnKey(filepath.Base(simfilepath))

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = filepath.Join(os.TempDir(), "gohts", o.Key)
	}

	// mesh
	err = o.Mesh.PostProcess(dir)
	if err != nil {
		return nil, err
	}
	o.Msh, err = o.Mesh.Get(dir)
	return
}

// SetDefault sets default values
func (o *Data) SetDefault() {
	o.Formulation = "ta"
	o.Coords = "cartesian2d"
	o.MuInv = 1.0
}

// PostProcess checks the mesh data
func (o *MeshData) PostProcess(dir string) (err error) {
	if o.File != "" && o.Gen != "" {
		return errs.Invalid("mesh: either a file or a generator must be given, not both")
	}
	if o.File == "" && o.Gen == "" {
		return errs.Invalid("mesh: a file or a generator must be given")
	}
	if o.File != "" && !filepath.IsAbs(o.File) {
		o.File = filepath.Join(dir, o.File)
	}
	return
}

// Get reads or generates the mesh
func (o *MeshData) Get(dir string) (msh *Mesh, err error) {
	if o.File != "" {
		return ReadMsh(filepath.Dir(o.File), filepath.Base(o.File))
	}
	switch o.Gen {
	case "rect":
		if len(o.N) != 2 || len(o.Lims) != 4 {
			return nil, errs.Invalid("mesh: rect generator needs n=[nx,ny] and lims=[xmin,xmax,ymin,ymax]")
		}
		return GenRect(o.N[0], o.N[1], o.Lims[0], o.Lims[1], o.Lims[2], o.Lims[3], o.Sc)
	case "box":
		return GenBox(o.N, o.Lims, o.Sc)
	}
	return nil, errs.Unsupported("mesh: generator %q is not available", o.Gen)
}
