// Copyright 2018 The Simpeg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Op is a linear operator on complex vectors with an explicit transpose
// action. MatTrVecMul applies the plain transpose, without conjugation; this
// is the pairing all adjoint sensitivities in this package are written
// against.
type Op interface {
	Size() (m, n int)            // rows, columns
	MatVecMul(y, x la.VectorC)   // y := A·x
	MatTrVecMul(y, x la.VectorC) // y := Aᵀ·x
}

// SpOp //////////////////////////////////////////////////////////////////////

// SpOp wraps an m×n compressed-column sparse matrix
type SpOp struct {
	m, n int
	mat  *la.CCMatrixC
}

// NewSpOp assembles a sparse operator from triplet form
func NewSpOp(m, n int, t *la.TripletC) (o *SpOp) {
	return &SpOp{m: m, n: n, mat: t.ToMatrix(nil)}
}

// Size returns the number of rows and columns
func (o *SpOp) Size() (m, n int) {
	return o.m, o.n
}

// MatVecMul computes y := A·x
func (o *SpOp) MatVecMul(y, x la.VectorC) {
	la.SpMatVecMulC(y, 1, o.mat, x)
}

// MatTrVecMul computes y := Aᵀ·x
func (o *SpOp) MatTrVecMul(y, x la.VectorC) {
	la.SpMatTrVecMulC(y, 1, o.mat, x)
}

// DiagOp ////////////////////////////////////////////////////////////////////

// DiagOp is a square diagonal operator; it equals its own transpose
type DiagOp struct {
	d la.VectorC
}

// NewDiagOp wraps the given diagonal, without copying
func NewDiagOp(d la.VectorC) (o *DiagOp) {
	return &DiagOp{d: d}
}

// NewDiagOpReal wraps a real diagonal
func NewDiagOpReal(d la.Vector) (o *DiagOp) {
	dc := la.NewVectorC(len(d))
	for i, v := range d {
		dc[i] = complex(v, 0)
	}
	return &DiagOp{d: dc}
}

// NewIdOp returns the n×n identity
func NewIdOp(n int) (o *DiagOp) {
	d := la.NewVectorC(n)
	for i := range d {
		d[i] = 1
	}
	return &DiagOp{d: d}
}

// Size returns the number of rows and columns
func (o *DiagOp) Size() (m, n int) {
	return len(o.d), len(o.d)
}

// MatVecMul computes y := diag(d)·x
func (o *DiagOp) MatVecMul(y, x la.VectorC) {
	for i, d := range o.d {
		y[i] = d * x[i]
	}
}

// MatTrVecMul computes y := diag(d)·x
func (o *DiagOp) MatTrVecMul(y, x la.VectorC) {
	o.MatVecMul(y, x)
}

// MulOp /////////////////////////////////////////////////////////////////////

// MulOp is the product A·B of two operators; its transpose applies the
// transposed factors in reverse order
type MulOp struct {
	a, b Op
}

// NewMulOp builds A·B, checking that the inner dimensions agree
func NewMulOp(a, b Op) (o *MulOp) {
	_, na := a.Size()
	mb, _ := b.Size()
	if na != mb {
		chk.Panic("operator product needs matching inner dimensions. %d != %d", na, mb)
	}
	return &MulOp{a: a, b: b}
}

// Size returns the number of rows and columns
func (o *MulOp) Size() (m, n int) {
	m, _ = o.a.Size()
	_, n = o.b.Size()
	return
}

// MatVecMul computes y := A·(B·x)
func (o *MulOp) MatVecMul(y, x la.VectorC) {
	mb, _ := o.b.Size()
	t := la.NewVectorC(mb)
	o.b.MatVecMul(t, x)
	o.a.MatVecMul(y, t)
}

// MatTrVecMul computes y := Bᵀ·(Aᵀ·x)
func (o *MulOp) MatTrVecMul(y, x la.VectorC) {
	_, na := o.a.Size()
	t := la.NewVectorC(na)
	o.a.MatTrVecMul(t, x)
	o.b.MatTrVecMul(y, t)
}
