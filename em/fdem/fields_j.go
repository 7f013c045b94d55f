// Copyright 2018 The Simpeg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/ishuihan/simpeg/em"
)

// FieldsJ serves current densities and magnetic fields reconstructed from a
// forward solve for the secondary current density on faces
type FieldsJ struct {
	Fields
	meMuI      Op
	mfRho      Op
	me         Op
	mfRhoDeriv func(base la.VectorC) Op
}

// NewFieldsJ creates a container for the current-density formulation
func NewFieldsJ(prb Problem, srcs []Source) (o *FieldsJ, err error) {
	o = new(FieldsJ)
	if err = o.startup(prb, srcs, "FieldsJ", "jSolution", Faces, HJ); err != nil {
		return nil, err
	}
	o.meMuI, o.mfRho, o.me = prb.MeMuI(), prb.MfRho(), prb.Me()
	if o.meMuI == nil || o.mfRho == nil || o.me == nil {
		return nil, chk.Err("FieldsJ needs the MeMuI, MfRho and Me inner products from the problem")
	}
	o.mfRhoDeriv = prb.MfRhoDeriv
	o.quartets[qJ] = &quartet{space: Faces, primary: o.jPrimary, secondary: o.nativeSecondary, derivU: o.nativeDerivU, derivM: o.nativeDerivM}
	o.quartets[qH] = &quartet{space: Edges, primary: o.hPrimary, secondary: o.hSecondary, derivU: o.hDerivU, derivM: o.hDerivM}
	return
}

func init() {
	allocators["j"] = func(prb Problem, srcs []Source) (Container, error) {
		o, err := NewFieldsJ(prb, srcs)
		if err != nil {
			return nil, err
		}
		return o, nil
	}
}

// jPrimary sums the sources' primary current densities
func (o *FieldsJ) jPrimary(u *la.MatrixC, srcs []Source) (*la.MatrixC, error) {
	return o.primaries(srcs, o.prb.NumFaces(), func(s Source) (la.VectorC, error) { return s.JPrimary(o.prb) })
}

// hPrimary sums the sources' primary magnetic fields
func (o *FieldsJ) hPrimary(u *la.MatrixC, srcs []Source) (*la.MatrixC, error) {
	return o.primaries(srcs, o.prb.NumEdges(), func(s Source) (la.VectorC, error) { return s.HPrimary(o.prb) })
}

// hSecondary reconstructs the secondary magnetic field from Ampère's law:
// Mμ⁻¹·(Cᵀ·(Mρ·j)) scaled by -1/(iω), plus the integrated magnetic source
// term scaled by 1/(iω)
func (o *FieldsJ) hSecondary(u *la.MatrixC, srcs []Source) (Hm *la.MatrixC, err error) {
	nE, nF := o.prb.NumEdges(), o.prb.NumFaces()
	Hm = la.NewMatrixC(nE, u.N)
	wf := la.NewVectorC(nF)
	t := la.NewVectorC(nE)
	for i, src := range srcs {
		h := col(Hm, i)
		o.mfRho.MatVecMul(wf, col(u, i))
		o.curl.MatTrVecMul(t, wf)
		o.meMuI.MatVecMul(h, t)
		sm, _, errSrc := src.Eval(o.prb)
		if errSrc != nil {
			return nil, errSrc
		}
		o.meMuI.MatVecMul(t, sm)
		iω := complex(0, em.Omega(src.Freq()))
		for r := range h {
			h[r] = (t[r] - h[r]) / iω
		}
	}
	return
}

// hDerivU chains -1/(iω)·Mμ⁻¹·Cᵀ·Mρ forward; the adjoint reverses the
// order and transposes every factor
func (o *FieldsJ) hDerivU(src Source, x la.VectorC, adjoint bool) (y la.VectorC, err error) {
	nE, nF := o.prb.NumEdges(), o.prb.NumFaces()
	iω := complex(0, em.Omega(src.Freq()))
	if adjoint {
		t := la.NewVectorC(nE)
		o.meMuI.MatTrVecMul(t, x)
		wf := la.NewVectorC(nF)
		o.curl.MatVecMul(wf, t)
		y = la.NewVectorC(nF)
		o.mfRho.MatTrVecMul(y, wf)
	} else {
		wf := la.NewVectorC(nF)
		o.mfRho.MatVecMul(wf, x)
		t := la.NewVectorC(nE)
		o.curl.MatTrVecMul(t, wf)
		y = la.NewVectorC(nE)
		o.meMuI.MatVecMul(y, t)
	}
	for r := range y {
		y[r] = -y[r] / iω
	}
	return
}

// hDerivM linearizes the resistivity dependence about the stored current
// solution of this very source and adds the magnetic source-term
// sensitivity, integrated with the plain edge inner product
func (o *FieldsJ) hDerivM(src Source, v la.VectorC, adjoint bool) (y la.VectorC, err error) {
	u, err := o.SolutionOf(src)
	if err != nil {
		return
	}
	dop := o.mfRhoDeriv(u)
	nE, nF := o.prb.NumEdges(), o.prb.NumFaces()
	iω := complex(0, em.Omega(src.Freq()))
	if adjoint {
		t := la.NewVectorC(nE)
		o.meMuI.MatTrVecMul(t, v)
		wf := la.NewVectorC(nF)
		o.curl.MatVecMul(wf, t)
		y = la.NewVectorC(o.prb.NumModel())
		dop.MatTrVecMul(y, wf)
		t2 := la.NewVectorC(nE)
		o.me.MatTrVecMul(t2, t)
		dsm, _, errSrc := src.EvalDeriv(o.prb, t2, true)
		if errSrc != nil {
			return nil, errSrc
		}
		for r := range y {
			y[r] = (dsm[r] - y[r]) / iω
		}
		return
	}
	dsm, _, err := src.EvalDeriv(o.prb, v, false)
	if err != nil {
		return
	}
	t := la.NewVectorC(nE)
	o.me.MatVecMul(t, dsm)
	wf := la.NewVectorC(nF)
	dop.MatVecMul(wf, v)
	t2 := la.NewVectorC(nE)
	o.curl.MatTrVecMul(t2, wf)
	for r := range t {
		t[r] -= t2[r]
	}
	y = la.NewVectorC(nE)
	o.meMuI.MatVecMul(y, t)
	for r := range y {
		y[r] /= iω
	}
	return
}
