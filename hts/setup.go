// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hts

import (
	"strings"

	"github.com/CarlosHernando16/gohts/errs"
	"github.com/CarlosHernando16/gohts/fem"
	"github.com/CarlosHernando16/gohts/inp"
	"github.com/CarlosHernando16/gohts/mdl/sc"
	"github.com/CarlosHernando16/gohts/wf"
	"github.com/cpmech/gosl/io"
)

// Kind defines the formulation
type Kind int

// formulations
const (
	KindA  Kind = iota // single field A (linear)
	KindTA             // coupled T-A (nonlinear)
)

// String returns the name of the formulation
func (o Kind) String() string {
	switch o {
	case KindA:
		return "a"
	case KindTA:
		return "ta"
	}
	return io.Sf("kind(%d)", int(o))
}

// ParseKind returns the formulation with a given name
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(name) {
	case "a":
		return KindA, nil
	case "ta", "t-a":
		return KindTA, nil
	}
	return 0, errs.Unsupported("formulation %q is not available", name)
}

// Setup holds the discretisation and the essential conditions of a formulation
//  The material is not part of a Setup; System builds a new system for each material
type Setup struct {
	Kind    Kind              // formulation
	Cfg     FormulationConfig // configuration
	Dom     *fem.Domain       // fields and elements
	Full    *fem.Region       // whole domain
	Sc      *fem.Region       // superconductor (T-A only)
	Src     *fem.Region       // region of the source term (nil => no source)
	Builder *wf.Builder       // weak forms builder
	Ebcs    *fem.EssentialBcs // essential conditions
	A, T    int               // field indices; T < 0 for KindA
}

// SetupA sets the single-field formulation
//  2D: A is a scalar (Lagrange) field; 3D: A is a vector (Nédélec) field
func SetupA(cfg FormulationConfig, msh *inp.Mesh, nip int) (o *Setup, err error) {
	o, err = newSetup(KindA, cfg, msh, nip, []*fem.FieldDef{aField(cfg.Ndim)})
	if err != nil {
		return nil, err
	}
	return
}

// SetupTA sets the coupled T-A formulation
//  T is a Lagrange field living on the superconductor (ScTag) or on the whole domain (ScTag = 0)
func SetupTA(cfg FormulationConfig, msh *inp.Mesh, nip int) (o *Setup, err error) {
	tfield := &fem.FieldDef{Key: "t", Space: fem.Lagrange, Support: cfg.ScTag}
	o, err = newSetup(KindTA, cfg, msh, nip, []*fem.FieldDef{aField(cfg.Ndim), tfield})
	if err != nil {
		return nil, err
	}
	return
}

// System returns a new system for a given material snapshot
//  mdl is ignored by the A formulation
func (o *Setup) System(mdl sc.Model) (*fem.System, error) {
	forms := []*fem.Form{o.Builder.CurlCurl(o.Full, o.A)}
	if o.Src != nil {
		forms = append(forms, o.Builder.Source(o.Src, o.A, o.Cfg.Source.Fcn))
	}
	if o.Kind == KindA {
		return fem.NewSystem(o.Dom, o.Ebcs, true, forms...)
	}
	if mdl == nil {
		return nil, errs.Invalid("T-A formulation requires a material")
	}
	forms = append(forms, o.Builder.PowerLawT(o.Sc, o.T, o.A, mdl))
	return fem.NewSystem(o.Dom, o.Ebcs, false, forms...)
}

// newSetup allocates domain, regions and essential conditions
func newSetup(kind Kind, cfg FormulationConfig, msh *inp.Mesh, nip int, fields []*fem.FieldDef) (o *Setup, err error) {

	// check
	err = cfg.Check()
	if err != nil {
		return
	}
	if msh == nil {
		return nil, errs.Invalid("mesh is missing")
	}
	if msh.Ndim != cfg.Ndim {
		return nil, errs.Invalid("mesh is %dD but formulation is %dD", msh.Ndim, cfg.Ndim)
	}

	// domain
	o = &Setup{Kind: kind, Cfg: cfg, T: -1}
	o.Dom, err = fem.NewDomain(msh, fields, nip)
	if err != nil {
		return nil, err
	}
	o.A = o.Dom.FieldIndex("a")
	o.Full, err = o.Dom.Region(0)
	if err != nil {
		return nil, err
	}
	o.Builder, err = wf.NewBuilder(cfg.Coords, cfg.MuInv)
	if err != nil {
		return nil, err
	}

	// source
	if cfg.Source != nil {
		o.Src, err = o.Dom.Region(cfg.Source.Tag)
		if err != nil {
			return nil, errs.Unsupported("source: %v", err)
		}
	}

	// essential conditions of A
	o.Ebcs = fem.NewEssentialBcs(o.Dom.Ny)
	tags := cfg.BcA.Tags
	if len(tags) == 0 {
		tags = msh.BoundaryTags()
	}
	for _, tag := range tags {
		if cfg.Ndim == 3 {
			edges, err := o.Dom.FaceTagEdges(tag)
			if err == nil {
				err = o.Ebcs.SetEdges("a", edges, cfg.BcA.Fcn)
			}
			if err != nil {
				return nil, err
			}
			continue
		}
		nodes, err := o.Dom.FaceTagNodes(tag)
		if err != nil {
			return nil, err
		}
		o.Ebcs.SetNodes("a", nodes, cfg.BcA.Fcn)
	}

	// T-A: superconductor and essential conditions of T
	if kind == KindTA {
		o.T = o.Dom.FieldIndex("t")
		o.Sc, err = o.Dom.Region(cfg.ScTag)
		if err != nil {
			return nil, err
		}
		tags = cfg.BcT.Tags
		if len(tags) == 0 {
			tags = DefaultTagsT
		}
		nset := 0
		for _, tag := range tags {
			nodes, err := o.Dom.FaceTagNodes(tag)
			if err != nil {
				return nil, err
			}
			before := o.Ebcs.Nlam()
			o.Ebcs.SetNodes("t", nodes, cfg.BcT.Fcn)
			nset += o.Ebcs.Nlam() - before
		}
		if nset == 0 {
			return nil, errs.Invalid("T has no essential conditions on faces %v", tags)
		}
	}
	o.Ebcs.Build()
	return
}

// aField returns the definition of A
func aField(ndim int) *fem.FieldDef {
	if ndim == 3 {
		return &fem.FieldDef{Key: "a", Space: fem.Nedelec}
	}
	return &fem.FieldDef{Key: "a", Space: fem.Lagrange}
}
