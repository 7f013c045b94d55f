// Copyright 2018 The Simpeg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

func Test_fieldsb01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fieldsb01. flux-density container on a hand-checked toy")

	// diagonal inner products: Mσ⁻¹ = {2, 0.5, 4}, Mμ⁻¹ = {3, 0.25}
	prb := toyProblem(EB)
	src := &RawSrc{
		Frequency: 50,
		Sm:        la.VectorC{1, 1},
		Se:        la.VectorC{1i, 2, 0},
		Ep:        la.VectorC{1, 1, 1},
		Bp:        la.VectorC{0, -1i},
	}
	f, err := New("b", prb, []Source{src})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.String(tst, f.Variant(), "FieldsB")
	chk.String(tst, f.NativeName(), "bSolution")
	if f.NativeSpace() != Faces {
		tst.Errorf("bSolution must live on faces\n")
		return
	}

	U := la.NewMatrixC(2, 1)
	copy(col(U, 0), la.VectorC{2i, 4})
	if err = f.SetSolution(U); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// native: total flux is primary plus the solution itself
	b, err := f.GetOne(src, B)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.ArrayC(tst, "b", 1e-15, b, []complex128{2i, 4 - 1i})

	// e = Mσ⁻¹·(Cᵀ·(Mμ⁻¹·b)) - Mσ⁻¹·S_e, by hand:
	//   Mμ⁻¹·u   = {6i, 1}
	//   Cᵀ·(...) = {6i, 1-6i, -1}
	//   Mσ⁻¹·(...) = {12i, 0.5-3i, -4}
	//   Mσ⁻¹·S_e  = {2i, 1, 0}
	esec, err := f.GetOne(src, ESecondary)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pf("eSecondary = %v\n", esec)
	chk.ArrayC(tst, "eSecondary", 1e-15, esec, []complex128{10i, -0.5 - 3i, -4})
	e, err := f.GetOne(src, E)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.ArrayC(tst, "e", 1e-15, e, []complex128{1 + 10i, 0.5 - 3i, -3})

	// solution sensitivity of e: Mσ⁻¹·Cᵀ·Mμ⁻¹ acting on a flux perturbation
	du, v := cvec(2, 0.7), la.NewVectorC(2)
	y, err := f.Deriv(E, src, du, v)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	m0, m1 := 3*du[0], 0.25*du[1]
	exp := la.VectorC{2 * m0, 0.5 * (m1 - m0), 4 * (-m1)}
	chk.ArrayC(tst, "eDeriv du", 1e-15, y, exp)

	// the flux itself: identity in the solution, no model dependence
	y, err = f.Deriv(B, src, du, cvec(2, 0.9))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.ArrayC(tst, "bDeriv", 1e-17, y, du)
}

func Test_fieldsb02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fieldsb02. conductivity and source sensitivities of e")

	prb := toyProblem(EB)
	src := &mdlSrc{
		freq: 20,
		se:   la.VectorC{1, -1i, 2},
		gse:  spOpFromRows([][]float64{{1, 1}, {2, 0}, {0, 1}}),
	}
	f, err := New("b", prb, []Source{src})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	U := la.NewMatrixC(2, 1)
	copy(col(U, 0), la.VectorC{1 - 1i, 3i})
	if err = f.SetSolution(U); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// base vector of the conductivity linearization:
	// w = Cᵀ·(Mμ⁻¹·u) - Me·S_e = {1.9-3i, -3+4.65i, -2.6-0.75i}
	w := la.VectorC{1.9 - 3i, -3 + 4.65i, -2.6 - 0.75i}

	// forward model part alone: diag(w)·(Pe·v) - Mσ⁻¹·(Gse·v)
	v := cvec(2, 1.4)
	y, err := f.Deriv(E, src, la.NewVectorC(2), v)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	pev := la.VectorC{v[0], 2*v[0] + v[1], 3 * v[1]}
	dse := la.VectorC{v[0] + v[1], 2 * v[0], v[1]}
	exp := la.VectorC{
		w[0]*pev[0] - 2*dse[0],
		w[1]*pev[1] - 0.5*dse[1],
		w[2]*pev[2] - 4*dse[2],
	}
	chk.ArrayC(tst, "eDeriv dm", 1e-14, y, exp)

	// adjoint: Peᵀ·(w∘wc) - Gseᵀ·(Mσ⁻¹·wc) to the model,
	// Mμ⁻¹·(C·(Mσ⁻¹·wc)) back to the flux solution
	wc := cvec(3, 2.8)
	uBar, mBar, err := f.DerivTr(E, src, wc)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	t := la.VectorC{2 * wc[0], 0.5 * wc[1], 4 * wc[2]}
	expU := la.VectorC{3 * (t[0] - t[1]), 0.25 * (t[1] - t[2])}
	q := la.VectorC{w[0] * wc[0], w[1] * wc[1], w[2] * wc[2]}
	expM := la.VectorC{
		q[0] + 2*q[1] - (t[0] + 2*t[1]),
		q[1] + 3*q[2] - (t[0] + t[2]),
	}
	chk.ArrayC(tst, "eDerivTr u", 1e-14, uBar, expU)
	chk.ArrayC(tst, "eDerivTr m", 1e-14, mBar, expM)

	// a problem without the needed inner products is rejected outright
	bad := toyProblemId(EB)
	bad.SigI = nil
	_, err = New("b", bad, []Source{&RawSrc{Frequency: 1}})
	if err == nil {
		tst.Errorf("missing inner products must fail\n")
		return
	}
	chk.String(tst, err.Error(), "FieldsB needs the MeSigmaI, MfMui and Me inner products from the problem")
}
