// Copyright 2018 The Simpeg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// FieldsB serves electric fields and magnetic flux densities reconstructed
// from a forward solve for the secondary flux density on faces
type FieldsB struct {
	Fields
	meSigmaI      Op
	mfMui         Op
	me            Op
	meSigmaIDeriv func(base la.VectorC) Op
}

// NewFieldsB creates a container for the flux-density formulation
func NewFieldsB(prb Problem, srcs []Source) (o *FieldsB, err error) {
	o = new(FieldsB)
	if err = o.startup(prb, srcs, "FieldsB", "bSolution", Faces, EB); err != nil {
		return nil, err
	}
	o.meSigmaI, o.mfMui, o.me = prb.MeSigmaI(), prb.MfMui(), prb.Me()
	if o.meSigmaI == nil || o.mfMui == nil || o.me == nil {
		return nil, chk.Err("FieldsB needs the MeSigmaI, MfMui and Me inner products from the problem")
	}
	o.meSigmaIDeriv = prb.MeSigmaIDeriv
	o.quartets[qB] = &quartet{space: Faces, primary: o.bPrimary, secondary: o.nativeSecondary, derivU: o.nativeDerivU, derivM: o.nativeDerivM}
	o.quartets[qE] = &quartet{space: Edges, primary: o.ePrimary, secondary: o.eSecondary, derivU: o.eDerivU, derivM: o.eDerivM}
	return
}

func init() {
	allocators["b"] = func(prb Problem, srcs []Source) (Container, error) {
		o, err := NewFieldsB(prb, srcs)
		if err != nil {
			return nil, err
		}
		return o, nil
	}
}

// bPrimary sums the sources' primary flux densities
func (o *FieldsB) bPrimary(u *la.MatrixC, srcs []Source) (*la.MatrixC, error) {
	return o.primaries(srcs, o.prb.NumFaces(), func(s Source) (la.VectorC, error) { return s.BPrimary(o.prb) })
}

// ePrimary sums the sources' primary electric fields
func (o *FieldsB) ePrimary(u *la.MatrixC, srcs []Source) (*la.MatrixC, error) {
	return o.primaries(srcs, o.prb.NumEdges(), func(s Source) (la.VectorC, error) { return s.EPrimary(o.prb) })
}

// eSecondary reconstructs the secondary electric field from the flux
// solution: Mσ⁻¹·(Cᵀ·(Mμ⁻¹·b)) minus Mσ⁻¹ applied to the electric source
// term
func (o *FieldsB) eSecondary(u *la.MatrixC, srcs []Source) (E *la.MatrixC, err error) {
	nE, nF := o.prb.NumEdges(), o.prb.NumFaces()
	E = la.NewMatrixC(nE, u.N)
	wf := la.NewVectorC(nF)
	t := la.NewVectorC(nE)
	for i, src := range srcs {
		e := col(E, i)
		o.mfMui.MatVecMul(wf, col(u, i))
		o.curl.MatTrVecMul(t, wf)
		o.meSigmaI.MatVecMul(e, t)
		_, se, errSrc := src.Eval(o.prb)
		if errSrc != nil {
			return nil, errSrc
		}
		o.meSigmaI.MatVecMul(t, se)
		for r := range e {
			e[r] -= t[r]
		}
	}
	return
}

// eDerivU chains Mσ⁻¹·Cᵀ·Mμ⁻¹ forward; the adjoint reverses the order and
// transposes every factor
func (o *FieldsB) eDerivU(src Source, x la.VectorC, adjoint bool) (y la.VectorC, err error) {
	nE, nF := o.prb.NumEdges(), o.prb.NumFaces()
	if adjoint {
		t := la.NewVectorC(nE)
		o.meSigmaI.MatTrVecMul(t, x)
		w := la.NewVectorC(nF)
		o.curl.MatVecMul(w, t)
		y = la.NewVectorC(nF)
		o.mfMui.MatTrVecMul(y, w)
		return
	}
	w := la.NewVectorC(nF)
	o.mfMui.MatVecMul(w, x)
	t := la.NewVectorC(nE)
	o.curl.MatTrVecMul(t, w)
	y = la.NewVectorC(nE)
	o.meSigmaI.MatVecMul(y, t)
	return
}

// eDerivM linearizes the conductivity dependence about the base vector
// w = Cᵀ·(Mμ⁻¹·b) - Me·S_e, recomputed here from the stored solution of
// this very source, then subtracts the electric source-term sensitivity.
// The adjoint applies the exact transpose of each forward factor.
func (o *FieldsB) eDerivM(src Source, v la.VectorC, adjoint bool) (y la.VectorC, err error) {
	u, err := o.SolutionOf(src)
	if err != nil {
		return
	}
	_, se, err := src.Eval(o.prb)
	if err != nil {
		return
	}
	nE, nF := o.prb.NumEdges(), o.prb.NumFaces()
	wf := la.NewVectorC(nF)
	o.mfMui.MatVecMul(wf, u)
	w := la.NewVectorC(nE)
	o.curl.MatTrVecMul(w, wf)
	t := la.NewVectorC(nE)
	if adjoint {
		o.me.MatTrVecMul(t, se)
	} else {
		o.me.MatVecMul(t, se)
	}
	for r := range w {
		w[r] -= t[r]
	}
	dop := o.meSigmaIDeriv(w)
	if adjoint {
		y = la.NewVectorC(o.prb.NumModel())
		dop.MatTrVecMul(y, v)
		o.meSigmaI.MatTrVecMul(t, v)
		_, dse, errSrc := src.EvalDeriv(o.prb, t, true)
		if errSrc != nil {
			return nil, errSrc
		}
		for r := range y {
			y[r] -= dse[r]
		}
		return
	}
	y = la.NewVectorC(nE)
	dop.MatVecMul(y, v)
	_, dse, errSrc := src.EvalDeriv(o.prb, v, false)
	if errSrc != nil {
		return nil, errSrc
	}
	o.meSigmaI.MatVecMul(t, dse)
	for r := range y {
		y[r] -= t[r]
	}
	return
}
