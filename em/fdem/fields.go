// Copyright 2018 The Simpeg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fdem implements frequency-domain electromagnetic field containers:
// given the native unknown of a forward solve, one per source, they
// reconstruct every supported field quantity together with its forward and
// transposed sensitivities with respect to the solution and the model
package fdem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Container is the query surface shared by the four field containers. A
// container is bound to one problem and one ordered list of sources; once a
// forward solve deposits the native solution, any supported quantity can be
// reconstructed for any subset of the sources, in any order.
type Container interface {
	Variant() string    // concrete container name, e.g. "FieldsB"
	NativeName() string // label of the native unknown, e.g. "bSolution"
	NativeSpace() Space // where the native unknown lives
	Sources() []Source  // bound sources; their order fixes solution columns

	SetSolution(u *la.MatrixC) error
	SolutionOf(src Source) (la.VectorC, error)

	Get(srcs []Source, name FieldName) (*la.MatrixC, error)
	GetOne(src Source, name FieldName) (la.VectorC, error)

	Deriv(name FieldName, src Source, du, v la.VectorC) (la.VectorC, error)
	DerivTr(name FieldName, src Source, w la.VectorC) (uBar, mBar la.VectorC, err error)
}

// New returns a field container of the named variant ("e", "b", "h" or "j")
// bound to prb and srcs
func New(variant string, prb Problem, srcs []Source) (Container, error) {
	allocator, ok := allocators[variant]
	if !ok {
		return nil, chk.Err("field container %q is not available in 'fdem' database", variant)
	}
	return allocator(prb, srcs)
}

// allocators holds all available field containers
var allocators = map[string]func(Problem, []Source) (Container, error){}

// accessor types ////////////////////////////////////////////////////////////

// matAccessor reconstructs one part of a quantity for a set of solution
// columns, one column per source in the given order
type matAccessor func(u *la.MatrixC, srcs []Source) (*la.MatrixC, error)

// vecDeriv applies one derivative map, or its plain transpose, for one source
type vecDeriv func(src Source, x la.VectorC, adjoint bool) (la.VectorC, error)

// quartet bundles the accessors serving one quantity: the primary and
// secondary reconstructions and the derivative maps of the total with
// respect to the solution and the model
type quartet struct {
	space     Space
	primary   matAccessor
	secondary matAccessor
	derivU    vecDeriv
	derivM    vecDeriv
}

// Fields ////////////////////////////////////////////////////////////////////

// Fields holds what all containers share: the bound problem and sources, the
// native solution and the per-quantity accessor table. The composition laws
// live here once: a total is primary plus secondary, and a derivative is the
// solution part plus the model part.
type Fields struct {
	prb     Problem
	srcs    []Source
	pos     map[Source]int // source to solution column
	u       *la.MatrixC    // native solution, one column per source
	nU      int            // native space dimension
	variant string         // concrete container name for messages
	native  string         // label of the native unknown
	space   Space          // space of the native unknown
	curl    Op             // captured discrete curl

	// primaryModelDep declares whether primary fields may depend on the
	// model. The containers here treat primaries as fixed background, so
	// model derivatives of primaries are exact zeros of the right size.
	primaryModelDep bool

	quartets [4]*quartet // indexed by quantity; nil means unsupported
}

// startup binds problem and sources and validates them
func (o *Fields) startup(prb Problem, srcs []Source, variant, native string, space Space, form Formulation) (err error) {
	o.variant, o.native, o.space = variant, native, space
	if prb == nil {
		return chk.Err("%s needs a problem", variant)
	}
	if prb.Formulation() != form {
		return chk.Err("%s needs a %v problem. got %v", variant, form, prb.Formulation())
	}
	if len(srcs) < 1 {
		return chk.Err("%s needs at least one source", variant)
	}
	o.pos = make(map[Source]int)
	for i, src := range srcs {
		if src == nil {
			return chk.Err("%s: source %d is nil", variant, i)
		}
		if src.Freq() <= 0 {
			return chk.Err("%s: source %d has frequency %g; zero frequency is not representable here", variant, i, src.Freq())
		}
		if _, dup := o.pos[src]; dup {
			return chk.Err("%s: source %d is bound twice", variant, i)
		}
		o.pos[src] = i
	}
	o.prb, o.srcs = prb, srcs
	o.curl = prb.EdgeCurl()
	if o.curl == nil {
		return chk.Err("%s needs the discrete curl from the problem", variant)
	}
	o.nU = prb.NumEdges()
	if space == Faces {
		o.nU = prb.NumFaces()
	}
	return
}

// Variant returns the concrete container name
func (o *Fields) Variant() string { return o.variant }

// NativeName returns the label of the native unknown
func (o *Fields) NativeName() string { return o.native }

// NativeSpace returns where the native unknown lives
func (o *Fields) NativeSpace() Space { return o.space }

// Sources returns the bound sources
func (o *Fields) Sources() []Source { return o.srcs }

// SetSolution deposits the native solution, one column per bound source in
// source order. The container keeps the matrix; callers must not modify it
// afterwards.
func (o *Fields) SetSolution(u *la.MatrixC) error {
	if u == nil {
		return chk.Err("%s: solution matrix is nil", o.variant)
	}
	if u.M != o.nU || u.N != len(o.srcs) {
		return chk.Err("%s: solution matrix is %d×%d but %s needs %d×%d", o.variant, u.M, u.N, o.native, o.nU, len(o.srcs))
	}
	o.u = u
	return nil
}

// colOf maps a source to its solution column
func (o *Fields) colOf(src Source) (j int, err error) {
	j, ok := o.pos[src]
	if !ok {
		err = chk.Err("%s: source is not bound to this container", o.variant)
	}
	return
}

// SolutionOf returns a copy of the native solution column of src
func (o *Fields) SolutionOf(src Source) (u la.VectorC, err error) {
	if o.u == nil {
		err = chk.Err("%s has no solution set", o.variant)
		return
	}
	j, err := o.colOf(src)
	if err != nil {
		return
	}
	u = la.NewVectorC(o.nU)
	copy(u, col(o.u, j))
	return
}

// solutionFor gathers the solution columns of the requested sources
func (o *Fields) solutionFor(srcs []Source) (u *la.MatrixC, err error) {
	u = la.NewMatrixC(o.nU, len(srcs))
	for i, src := range srcs {
		j, e := o.colOf(src)
		if e != nil {
			return nil, e
		}
		copy(col(u, i), col(o.u, j))
	}
	return
}

// queries ///////////////////////////////////////////////////////////////////

// Get reconstructs the named field for the given sources, one column per
// source in request order. Totals are assembled as primary plus secondary.
func (o *Fields) Get(srcs []Source, name FieldName) (F *la.MatrixC, err error) {
	if o.u == nil {
		err = chk.Err("%s has no solution set", o.variant)
		return
	}
	if len(srcs) < 1 {
		err = chk.Err("%s: at least one source must be requested", o.variant)
		return
	}
	qa, err := o.lookup(name)
	if err != nil {
		return
	}
	usub, err := o.solutionFor(srcs)
	if err != nil {
		return
	}
	switch name.part() {
	case ptPrimary:
		return qa.primary(usub, srcs)
	case ptSecondary:
		return qa.secondary(usub, srcs)
	}
	F, err = qa.primary(usub, srcs)
	if err != nil {
		return
	}
	S, err := qa.secondary(usub, srcs)
	if err != nil {
		return
	}
	for i := range F.Data {
		F.Data[i] += S.Data[i]
	}
	return
}

// GetOne reconstructs the named field for a single source
func (o *Fields) GetOne(src Source, name FieldName) (f la.VectorC, err error) {
	F, err := o.Get([]Source{src}, name)
	if err != nil {
		return
	}
	f = col(F, 0)
	return
}

// Deriv applies the forward linearization of the named total field for one
// source: the solution part evaluated at du plus the model part at v
func (o *Fields) Deriv(name FieldName, src Source, du, v la.VectorC) (y la.VectorC, err error) {
	qa, err := o.derivLookup(name)
	if err != nil {
		return
	}
	if _, err = o.colOf(src); err != nil {
		return
	}
	if len(du) != o.nU {
		err = chk.Err("%s: solution perturbation has size %d but %s has size %d", o.variant, len(du), o.native, o.nU)
		return
	}
	if len(v) != o.prb.NumModel() {
		err = chk.Err("%s: model perturbation has size %d but the model has size %d", o.variant, len(v), o.prb.NumModel())
		return
	}
	y, err = qa.derivU(src, du, false)
	if err != nil {
		return
	}
	ym, err := qa.derivM(src, v, false)
	if err != nil {
		return
	}
	for i := range y {
		y[i] += ym[i]
	}
	return
}

// DerivTr applies the transposed linearization of the named total field for
// one source, pulling the field covector w back to solution space and model
// space. Transposes are plain, without conjugation.
func (o *Fields) DerivTr(name FieldName, src Source, w la.VectorC) (uBar, mBar la.VectorC, err error) {
	qa, err := o.derivLookup(name)
	if err != nil {
		return
	}
	if _, err = o.colOf(src); err != nil {
		return
	}
	if n := o.sizeOf(qa.space); len(w) != n {
		err = chk.Err("%s: field covector has size %d but %q lives on %v with size %d", o.variant, len(w), name.String(), qa.space, n)
		return
	}
	uBar, err = qa.derivU(src, w, true)
	if err != nil {
		return
	}
	mBar, err = qa.derivM(src, w, true)
	return
}

// lookup resolves a value request against the quartet table
func (o *Fields) lookup(name FieldName) (qa *quartet, err error) {
	if !name.valid() {
		err = chk.Err("%s: invalid field name %d", o.variant, int(name))
		return
	}
	qa = o.quartets[name.quantity()]
	if qa == nil {
		err = chk.Err("getting %q from %s is not implemented", name.String(), o.variant)
	}
	return
}

// derivLookup resolves a derivative request; only totals have derivatives
func (o *Fields) derivLookup(name FieldName) (qa *quartet, err error) {
	if o.u == nil {
		err = chk.Err("%s has no solution set", o.variant)
		return
	}
	if !name.valid() {
		err = chk.Err("%s: invalid field name %d", o.variant, int(name))
		return
	}
	if name.part() != ptTotal {
		err = chk.Err("derivatives are defined for total fields only. got %q", name.String())
		return
	}
	qa = o.quartets[name.quantity()]
	if qa == nil || qa.derivU == nil || qa.derivM == nil {
		err = chk.Err("getting %vDerivs from %s is not implemented", name.quantity(), o.variant)
		qa = nil
	}
	return
}

// sizeOf returns the dimension of a dof space
func (o *Fields) sizeOf(s Space) int {
	if s == Edges {
		return o.prb.NumEdges()
	}
	return o.prb.NumFaces()
}

// shared accessors //////////////////////////////////////////////////////////

// primaries sums per-source primary fields into columns of size n
func (o *Fields) primaries(srcs []Source, n int, get func(Source) (la.VectorC, error)) (F *la.MatrixC, err error) {
	F = la.NewMatrixC(n, len(srcs))
	for i, src := range srcs {
		p, e := get(src)
		if e != nil {
			return nil, e
		}
		copy(col(F, i), p)
	}
	return
}

// nativeSecondary copies the solution columns: the native unknown of every
// container is the secondary field
func (o *Fields) nativeSecondary(u *la.MatrixC, srcs []Source) (F *la.MatrixC, err error) {
	F = la.NewMatrixC(u.M, u.N)
	copy(F.Data, u.Data)
	return
}

// nativeDerivU is the identity: the total is primary plus the solution
func (o *Fields) nativeDerivU(src Source, x la.VectorC, adjoint bool) (y la.VectorC, err error) {
	y = la.NewVectorC(len(x))
	copy(y, x)
	return
}

// nativeDerivM vanishes exactly under the fixed-primary policy
func (o *Fields) nativeDerivM(src Source, v la.VectorC, adjoint bool) (y la.VectorC, err error) {
	if o.primaryModelDep {
		err = chk.Err("%s: model-dependent primary fields are not supported", o.variant)
		return
	}
	if adjoint {
		y = la.NewVectorC(o.prb.NumModel())
		return
	}
	y = la.NewVectorC(o.nU)
	return
}

// col views column j of the column-major matrix A
func col(A *la.MatrixC, j int) la.VectorC {
	return la.VectorC(A.Data[j*A.M : (j+1)*A.M])
}
