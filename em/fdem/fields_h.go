// Copyright 2018 The Simpeg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdem

import (
	"github.com/cpmech/gosl/la"
)

// FieldsH serves magnetic fields and current densities reconstructed from a
// forward solve for the secondary magnetic field on edges
type FieldsH struct {
	Fields
}

// NewFieldsH creates a container for the magnetic-field formulation
func NewFieldsH(prb Problem, srcs []Source) (o *FieldsH, err error) {
	o = new(FieldsH)
	if err = o.startup(prb, srcs, "FieldsH", "hSolution", Edges, HJ); err != nil {
		return nil, err
	}
	o.quartets[qH] = &quartet{space: Edges, primary: o.hPrimary, secondary: o.nativeSecondary, derivU: o.nativeDerivU, derivM: o.nativeDerivM}
	o.quartets[qJ] = &quartet{space: Faces, primary: o.jPrimary, secondary: o.jSecondary, derivU: o.jDerivU, derivM: o.jDerivM}
	return
}

func init() {
	allocators["h"] = func(prb Problem, srcs []Source) (Container, error) {
		o, err := NewFieldsH(prb, srcs)
		if err != nil {
			return nil, err
		}
		return o, nil
	}
}

// hPrimary sums the sources' primary magnetic fields
func (o *FieldsH) hPrimary(u *la.MatrixC, srcs []Source) (*la.MatrixC, error) {
	return o.primaries(srcs, o.prb.NumEdges(), func(s Source) (la.VectorC, error) { return s.HPrimary(o.prb) })
}

// jPrimary sums the sources' primary current densities
func (o *FieldsH) jPrimary(u *la.MatrixC, srcs []Source) (*la.MatrixC, error) {
	return o.primaries(srcs, o.prb.NumFaces(), func(s Source) (la.VectorC, error) { return s.JPrimary(o.prb) })
}

// jSecondary reconstructs the secondary current density from Ampère's law:
// the curl of the magnetic solution minus the electric source term
func (o *FieldsH) jSecondary(u *la.MatrixC, srcs []Source) (Jm *la.MatrixC, err error) {
	Jm = la.NewMatrixC(o.prb.NumFaces(), u.N)
	for i, src := range srcs {
		j := col(Jm, i)
		o.curl.MatVecMul(j, col(u, i))
		_, se, errSrc := src.Eval(o.prb)
		if errSrc != nil {
			return nil, errSrc
		}
		for r := range j {
			j[r] -= se[r]
		}
	}
	return
}

// jDerivU is the current sensitivity to the solution: C forward, Cᵀ adjoint
func (o *FieldsH) jDerivU(src Source, x la.VectorC, adjoint bool) (y la.VectorC, err error) {
	if adjoint {
		y = la.NewVectorC(o.prb.NumEdges())
		o.curl.MatTrVecMul(y, x)
		return
	}
	y = la.NewVectorC(o.prb.NumFaces())
	o.curl.MatVecMul(y, x)
	return
}

// jDerivM carries only the electric source-term dependence: -dS_e
func (o *FieldsH) jDerivM(src Source, v la.VectorC, adjoint bool) (y la.VectorC, err error) {
	_, y, err = src.EvalDeriv(o.prb, v, adjoint)
	if err != nil {
		return
	}
	for r := range y {
		y[r] = -y[r]
	}
	return
}
