// Copyright 2018 The Simpeg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdem

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cpmech/gosl/la"

	"github.com/ishuihan/simpeg/em"
	"github.com/ishuihan/simpeg/msh"
)

// dotC is the bilinear (unconjugated) dot product the adjoint pairing is
// written against
func dotC(a, b la.VectorC) (res complex128) {
	for i := range a {
		res += a[i] * b[i]
	}
	return
}

// maxAbsC returns the largest entry magnitude
func maxAbsC(v la.VectorC) (m float64) {
	for _, x := range v {
		if a := cmplx.Abs(x); a > m {
			m = a
		}
	}
	return
}

// cvec fills a deterministic complex vector of size n seeded by s
func cvec(n int, s float64) (v la.VectorC) {
	v = la.NewVectorC(n)
	for i := range v {
		v[i] = complex(math.Sin(s+1.3*float64(i)), math.Cos(2.1*s+0.7*float64(i)))
	}
	return
}

// rvec fills a deterministic real vector of size n seeded by s, offset so
// all entries stay positive
func rvec(n int, s float64) (v la.Vector) {
	v = la.NewVector(n)
	for i := range v {
		v[i] = 1.5 + math.Sin(s+0.9*float64(i))
	}
	return
}

// spOpFromRows assembles a dense table of real entries into a sparse operator
func spOpFromRows(rows [][]float64) Op {
	m, n := len(rows), len(rows[0])
	t := la.NewTripletC(m, n, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			t.Put(i, j, complex(rows[i][j], 0))
		}
	}
	return NewSpOp(m, n, t)
}

// zeroOp is an all-zero operator
func zeroOp(m, n int) Op {
	t := la.NewTripletC(m, n, 1)
	t.Put(0, 0, 0)
	return NewSpOp(m, n, t)
}

// detOp builds a dense deterministic operator with entries in [-1,1]
func detOp(m, n int, s float64) Op {
	t := la.NewTripletC(m, n, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			t.Put(i, j, complex(math.Sin(s+1.7*float64(i)+0.31*float64(j)), 0))
		}
	}
	return NewSpOp(m, n, t)
}

// fieldSize returns the dof count of the space a field name lives on
func fieldSize(prb Problem, name FieldName) int {
	if name.quantity().space() == Edges {
		return prb.NumEdges()
	}
	return prb.NumFaces()
}

// nativeSize returns the dof count of a container's native unknown
func nativeSize(prb Problem, f Container) int {
	if f.NativeSpace() == Edges {
		return prb.NumEdges()
	}
	return prb.NumFaces()
}

// toyCurl is the 2-face/3-edge curl used by the hand-checked scenarios
func toyCurl() Op {
	return spOpFromRows([][]float64{
		{1, -1, 0},
		{0, 1, -1},
	})
}

// toyProblemId has identity inner products, for exact hand checks
func toyProblemId(form Formulation) *OpsProblem {
	return &OpsProblem{
		Form: form, NE: 3, NF: 2, NM: 2,
		Curl: toyCurl(),
		SigI: NewIdOp(3), MuiF: NewIdOp(2), Rho: NewIdOp(2), MuiE: NewIdOp(3), Ie: NewIdOp(3),
		DSigI: func(base la.VectorC) Op { return zeroOp(3, 2) },
		DRho:  func(base la.VectorC) Op { return zeroOp(2, 2) },
	}
}

// toyProblem has non-trivial diagonal inner products and linear-in-base
// material linearizations, for adjoint consistency checks
func toyProblem(form Formulation) *OpsProblem {
	pe := spOpFromRows([][]float64{{1, 0}, {2, 1}, {0, 3}})
	pf := spOpFromRows([][]float64{{1, 2}, {0.5, 0}})
	return &OpsProblem{
		Form: form, NE: 3, NF: 2, NM: 2,
		Curl: toyCurl(),
		SigI: NewDiagOpReal([]float64{2, 0.5, 4}),
		MuiF: NewDiagOpReal([]float64{3, 0.25}),
		Rho:  NewDiagOpReal([]float64{1.5, 5}),
		MuiE: NewDiagOpReal([]float64{0.2, 2, 1}),
		Ie:   NewDiagOpReal([]float64{1.1, 0.9, 1.3}),
		DSigI: func(base la.VectorC) Op {
			return NewMulOp(NewDiagOp(base), pe)
		},
		DRho: func(base la.VectorC) Op {
			return NewMulOp(NewDiagOp(base), pf)
		},
	}
}

// testMesh builds a small graded mesh centred near the origin
func testMesh(tst *testing.T) *msh.Mesh {
	m, err := msh.NewMesh([]float64{1, 1.5}, []float64{1, 0.8}, []float64{1.2, 1}, []float64{-1.25, -0.9, -1.1})
	if err != nil {
		tst.Fatalf("NewMesh failed: %v", err)
	}
	return m
}

// fvProblemOn builds a finite-volume problem with varying materials on a
// given mesh
func fvProblemOn(tst *testing.T, m *msh.Mesh, form Formulation) *FVProblem {
	σ := la.NewVector(m.Nc)
	µ := la.NewVector(m.Nc)
	for i := 0; i < m.Nc; i++ {
		σ[i] = 0.01 * (1.0 + 0.4*float64(i%5)) * (1.0 + 0.05*float64(i))
		µ[i] = em.MuZero * (1.0 + 0.1*float64(i%3))
	}
	prb, err := NewFVProblem(m, σ, µ, form)
	if err != nil {
		tst.Fatalf("NewFVProblem failed: %v", err)
	}
	return prb
}

// fvProblem builds a finite-volume problem on the standard small mesh
func fvProblem(tst *testing.T, form Formulation) *FVProblem {
	return fvProblemOn(tst, testMesh(tst), form)
}

// setSolution deposits a deterministic solution matrix and returns it
func setSolution(tst *testing.T, f Container, nU, nsrc int, seed float64) *la.MatrixC {
	U := la.NewMatrixC(nU, nsrc)
	for j := 0; j < nsrc; j++ {
		copy(col(U, j), cvec(nU, seed+float64(j)))
	}
	if err := f.SetSolution(U); err != nil {
		tst.Fatalf("SetSolution failed: %v", err)
	}
	return U
}

// mdlSrc is a source whose raw source terms depend linearly on the model;
// it exercises the source sensitivity paths of the containers
type mdlSrc struct {
	freq           float64
	sm, se         la.VectorC
	gsm, gse       Op // model to term-space maps; nil means no dependence
	ep, bp, hp, jp la.VectorC
}

func (o *mdlSrc) Freq() float64 { return o.freq }

func (o *mdlSrc) EPrimary(prb Problem) (la.VectorC, error) {
	return orZero(o.ep, prb.NumEdges()), nil
}

func (o *mdlSrc) BPrimary(prb Problem) (la.VectorC, error) {
	return orZero(o.bp, fluxSize(prb)), nil
}

func (o *mdlSrc) HPrimary(prb Problem) (la.VectorC, error) {
	return orZero(o.hp, fluxSize(prb)), nil
}

func (o *mdlSrc) JPrimary(prb Problem) (la.VectorC, error) {
	return orZero(o.jp, prb.NumFaces()), nil
}

func (o *mdlSrc) Eval(prb Problem) (sm, se la.VectorC, err error) {
	nm, ne := termSizes(prb)
	return orZero(o.sm, nm), orZero(o.se, ne), nil
}

func (o *mdlSrc) EvalDeriv(prb Problem, v la.VectorC, adjoint bool) (dsm, dse la.VectorC, err error) {
	nm, ne := termSizes(prb)
	if adjoint {
		dsm = la.NewVectorC(prb.NumModel())
		dse = la.NewVectorC(prb.NumModel())
		if o.gsm != nil && len(v) == nm {
			o.gsm.MatTrVecMul(dsm, v)
		}
		if o.gse != nil && len(v) == ne {
			o.gse.MatTrVecMul(dse, v)
		}
		return
	}
	dsm = la.NewVectorC(nm)
	dse = la.NewVectorC(ne)
	if o.gsm != nil {
		o.gsm.MatVecMul(dsm, v)
	}
	if o.gse != nil {
		o.gse.MatVecMul(dse, v)
	}
	return
}
