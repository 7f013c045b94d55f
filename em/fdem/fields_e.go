// Copyright 2018 The Simpeg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdem

import (
	"github.com/cpmech/gosl/la"

	"github.com/ishuihan/simpeg/em"
)

// FieldsE serves electric fields and magnetic flux densities reconstructed
// from a forward solve for the secondary electric field on edges
type FieldsE struct {
	Fields
}

// NewFieldsE creates a container for the electric-field formulation
func NewFieldsE(prb Problem, srcs []Source) (o *FieldsE, err error) {
	o = new(FieldsE)
	if err = o.startup(prb, srcs, "FieldsE", "eSolution", Edges, EB); err != nil {
		return nil, err
	}
	o.quartets[qE] = &quartet{space: Edges, primary: o.ePrimary, secondary: o.nativeSecondary, derivU: o.nativeDerivU, derivM: o.nativeDerivM}
	o.quartets[qB] = &quartet{space: Faces, primary: o.bPrimary, secondary: o.bSecondary, derivU: o.bDerivU, derivM: o.bDerivM}
	return
}

func init() {
	allocators["e"] = func(prb Problem, srcs []Source) (Container, error) {
		o, err := NewFieldsE(prb, srcs)
		if err != nil {
			return nil, err
		}
		return o, nil
	}
}

// ePrimary sums the sources' primary electric fields
func (o *FieldsE) ePrimary(u *la.MatrixC, srcs []Source) (*la.MatrixC, error) {
	return o.primaries(srcs, o.prb.NumEdges(), func(s Source) (la.VectorC, error) { return s.EPrimary(o.prb) })
}

// bPrimary sums the sources' primary flux densities
func (o *FieldsE) bPrimary(u *la.MatrixC, srcs []Source) (*la.MatrixC, error) {
	return o.primaries(srcs, o.prb.NumFaces(), func(s Source) (la.VectorC, error) { return s.BPrimary(o.prb) })
}

// bSecondary reconstructs the secondary flux density from Faraday's law:
// the curl of the electric solution and the magnetic source term, scaled by
// -1/(iω) and 1/(iω)
func (o *FieldsE) bSecondary(u *la.MatrixC, srcs []Source) (B *la.MatrixC, err error) {
	B = la.NewMatrixC(o.prb.NumFaces(), u.N)
	for i, src := range srcs {
		b := col(B, i)
		o.curl.MatVecMul(b, col(u, i))
		sm, _, e := src.Eval(o.prb)
		if e != nil {
			return nil, e
		}
		iω := complex(0, em.Omega(src.Freq()))
		for r := range b {
			b[r] = (sm[r] - b[r]) / iω
		}
	}
	return
}

// bDerivU is the flux sensitivity to the solution: -1/(iω)·C forward and
// -1/(iω)·Cᵀ adjoint
func (o *FieldsE) bDerivU(src Source, x la.VectorC, adjoint bool) (y la.VectorC, err error) {
	if adjoint {
		y = la.NewVectorC(o.prb.NumEdges())
		o.curl.MatTrVecMul(y, x)
	} else {
		y = la.NewVectorC(o.prb.NumFaces())
		o.curl.MatVecMul(y, x)
	}
	iω := complex(0, em.Omega(src.Freq()))
	for r := range y {
		y[r] = -y[r] / iω
	}
	return
}

// bDerivM carries only the magnetic source-term dependence: dS_m/(iω)
func (o *FieldsE) bDerivM(src Source, v la.VectorC, adjoint bool) (y la.VectorC, err error) {
	y, _, err = src.EvalDeriv(o.prb, v, adjoint)
	if err != nil {
		return
	}
	iω := complex(0, em.Omega(src.Freq()))
	for r := range y {
		y[r] /= iω
	}
	return
}
