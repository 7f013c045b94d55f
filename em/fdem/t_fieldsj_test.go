// Copyright 2018 The Simpeg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/ishuihan/simpeg/em"
)

func Test_fieldsj01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fieldsj01. current-density container on a hand-checked toy")

	// diagonal inner products: Mμ⁻¹ = {0.2, 2, 1} on edges, Mρ = {1.5, 5}
	prb := toyProblem(HJ)
	src := &RawSrc{
		Frequency: 10,
		Sm:        la.VectorC{2, 1i, 0},
		Hp:        la.VectorC{0, 0, 1},
		Jp:        la.VectorC{1, 0},
	}
	f, err := New("j", prb, []Source{src})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.String(tst, f.Variant(), "FieldsJ")
	chk.String(tst, f.NativeName(), "jSolution")
	if f.NativeSpace() != Faces {
		tst.Errorf("jSolution must live on faces\n")
		return
	}

	U := la.NewMatrixC(2, 1)
	copy(col(U, 0), la.VectorC{1 + 1i, -2})
	if err = f.SetSolution(U); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	j, err := f.GetOne(src, J)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.ArrayC(tst, "j", 1e-15, j, []complex128{2 + 1i, -2})

	// h = (Mμ⁻¹·S_m - Mμ⁻¹·(Cᵀ·(Mρ·j)))/(iω), S_m being handed over
	// in integrated form already, by hand:
	//   Mρ·u        = {1.5+1.5i, -10}
	//   Cᵀ·(...)    = {1.5+1.5i, -11.5-1.5i, 10}
	//   Mμ⁻¹·(...)  = {0.3+0.3i, -23-3i, 10}
	//   Mμ⁻¹·S_m    = {0.4, 2i, 0}
	iω := complex(0, em.Omega(src.Freq()))
	hsec, err := f.GetOne(src, HSecondary)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pf("hSecondary = %v\n", hsec)
	expH := la.VectorC{(0.1 - 0.3i) / iω, (23 + 5i) / iω, -10 / iω}
	chk.ArrayC(tst, "hSecondary", 1e-15, hsec, expH)
	h, err := f.GetOne(src, H)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	expH[2] += 1
	chk.ArrayC(tst, "h", 1e-15, h, expH)

	// solution sensitivity of h: -Mμ⁻¹·Cᵀ·Mρ/(iω) on a current perturbation
	du := cvec(2, 0.5)
	y, err := f.Deriv(H, src, du, la.NewVectorC(2))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	r0, r1 := 1.5*du[0], 5*du[1]
	exp := la.VectorC{-0.2 * r0 / iω, -2 * (r1 - r0) / iω, r1 / iω}
	chk.ArrayC(tst, "hDeriv du", 1e-14, y, exp)
}

func Test_fieldsj02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fieldsj02. resistivity and source sensitivities of h")

	prb := toyProblem(HJ)
	src := &mdlSrc{
		freq: 40,
		sm:   la.VectorC{1, 0, -1i},
		gsm:  spOpFromRows([][]float64{{1, 0}, {2, 1}, {0, 3}}),
	}
	f, err := New("j", prb, []Source{src})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	u := la.VectorC{1 + 1i, -2}
	U := la.NewMatrixC(2, 1)
	copy(col(U, 0), u)
	if err = f.SetSolution(U); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// forward model part alone, for the linearization about the stored j:
	// (Mμ⁻¹·(Me·(Gsm·v)) - Mμ⁻¹·(Cᵀ·(diag(u)·Pf·v)))/(iω)
	iω := complex(0, em.Omega(src.freq))
	v := cvec(2, 3.1)
	y, err := f.Deriv(H, src, la.NewVectorC(2), v)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	d := la.VectorC{u[0] * (v[0] + 2*v[1]), u[1] * 0.5 * v[0]}
	dsm := la.VectorC{v[0], 2*v[0] + v[1], 3 * v[1]}
	num := la.VectorC{
		1.1*dsm[0] - d[0],
		0.9*dsm[1] - (d[1] - d[0]),
		1.3*dsm[2] + d[1],
	}
	exp := la.VectorC{0.2 * num[0] / iω, 2 * num[1] / iω, num[2] / iω}
	chk.ArrayC(tst, "hDeriv dm", 1e-14, y, exp)

	// adjoint pulls the same chain back: Pfᵀ·(u∘(C·t)) and Gsmᵀ·(Me·t)
	// with t = Mμ⁻¹·w
	wc := cvec(3, 1.7)
	uBar, mBar, err := f.DerivTr(H, src, wc)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	t := la.VectorC{0.2 * wc[0], 2 * wc[1], wc[2]}
	wf := la.VectorC{t[0] - t[1], t[1] - t[2]}
	expU := la.VectorC{-1.5 * wf[0] / iω, -5 * wf[1] / iω}
	q := la.VectorC{u[0] * wf[0], u[1] * wf[1]}
	t2 := la.VectorC{1.1 * t[0], 0.9 * t[1], 1.3 * t[2]}
	dsmA := la.VectorC{t2[0] + 2*t2[1], t2[1] + 3*t2[2]}
	expM := la.VectorC{
		(dsmA[0] - (q[0] + 0.5*q[1])) / iω,
		(dsmA[1] - 2*q[0]) / iω,
	}
	chk.ArrayC(tst, "hDerivTr u", 1e-14, uBar, expU)
	chk.ArrayC(tst, "hDerivTr m", 1e-14, mBar, expM)

	// a problem without the needed inner products is rejected outright
	bad := toyProblemId(HJ)
	bad.MuiE = nil
	_, err = New("j", bad, []Source{&RawSrc{Frequency: 1}})
	if err == nil {
		tst.Errorf("missing inner products must fail\n")
		return
	}
	chk.String(tst, err.Error(), "FieldsJ needs the MeMuI, MfRho and Me inner products from the problem")
}
