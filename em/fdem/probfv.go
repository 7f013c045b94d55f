// Copyright 2018 The Simpeg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/ishuihan/simpeg/msh"
)

// FVProblem assembles the discrete operators of a finite-volume tensor-mesh
// discretization with isotropic conductivity and permeability per cell. The
// inversion model is the cell conductivity; the conductivity and resistivity
// linearizations therefore map cell perturbations to edge resp. face vectors
// through the mesh projections.
type FVProblem struct {
	mesh *msh.Mesh
	form Formulation
	sig  la.Vector // cell conductivities (the model)
	mu   la.Vector // cell permeabilities

	curl     *SpOp
	pe, pf   *SpOp     // cell-to-edge and cell-to-face projections
	dSig     la.Vector // edge diagonal of the conductivity inner product
	me       *DiagOp
	meSigmaI *DiagOp
	mfMui    *DiagOp
	mfRho    *DiagOp
	meMuI    *DiagOp
}

// NewFVProblem builds the operator set on mesh m with cell conductivities
// sig [S/m] and permeabilities mu [H/m]
func NewFVProblem(m *msh.Mesh, sig, mu la.Vector, form Formulation) (o *FVProblem, err error) {
	if m == nil {
		err = chk.Err("finite-volume problem needs a mesh")
		return
	}
	if len(sig) != m.Nc || len(mu) != m.Nc {
		err = chk.Err("material arrays need one value per cell. len(sig)=%d, len(mu)=%d, ncells=%d", len(sig), len(mu), m.Nc)
		return
	}
	for i := 0; i < m.Nc; i++ {
		if sig[i] <= 0 || mu[i] <= 0 {
			err = chk.Err("conductivity and permeability must be positive. sig[%d]=%g, mu[%d]=%g", i, sig[i], i, mu[i])
			return
		}
	}
	o = &FVProblem{mesh: m, form: form, sig: sig, mu: mu}
	o.curl = NewSpOp(m.Nf, m.Ne, m.EdgeCurl())
	o.pe = NewSpOp(m.Ne, m.Nc, m.EdgeProjection())
	o.pf = NewSpOp(m.Nf, m.Nc, m.FaceProjection())

	ones := la.NewVector(m.Nc)
	muInv := la.NewVector(m.Nc)
	sigInv := la.NewVector(m.Nc)
	for i := 0; i < m.Nc; i++ {
		ones[i] = 1
		muInv[i] = 1.0 / mu[i]
		sigInv[i] = 1.0 / sig[i]
	}
	o.me = NewDiagOpReal(m.ProjectToEdges(ones))
	o.dSig = m.ProjectToEdges(sig)
	invSig := la.NewVector(m.Ne)
	for i := range invSig {
		invSig[i] = 1.0 / o.dSig[i]
	}
	o.meSigmaI = NewDiagOpReal(invSig)
	o.mfMui = NewDiagOpReal(m.ProjectToFaces(muInv))
	o.mfRho = NewDiagOpReal(m.ProjectToFaces(sigInv))
	dMu := m.ProjectToEdges(mu)
	invMu := la.NewVector(m.Ne)
	for i := range invMu {
		invMu[i] = 1.0 / dMu[i]
	}
	o.meMuI = NewDiagOpReal(invMu)
	return
}

// Mesh returns the underlying tensor mesh
func (o *FVProblem) Mesh() *msh.Mesh { return o.mesh }

// Formulation returns the native unknown pair
func (o *FVProblem) Formulation() Formulation { return o.form }

// NumEdges returns the number of edge dofs
func (o *FVProblem) NumEdges() int { return o.mesh.Ne }

// NumFaces returns the number of face dofs
func (o *FVProblem) NumFaces() int { return o.mesh.Nf }

// NumModel returns the number of model parameters, one conductivity per cell
func (o *FVProblem) NumModel() int { return o.mesh.Nc }

// EdgeCurl returns the discrete curl
func (o *FVProblem) EdgeCurl() Op { return o.curl }

// MeSigmaI returns the inverse conductivity inner product on edges
func (o *FVProblem) MeSigmaI() Op { return o.meSigmaI }

// MfMui returns the inverse permeability inner product on faces
func (o *FVProblem) MfMui() Op { return o.mfMui }

// MfRho returns the resistivity inner product on faces
func (o *FVProblem) MfRho() Op { return o.mfRho }

// MeMuI returns the inverse permeability inner product on edges
func (o *FVProblem) MeMuI() Op { return o.meMuI }

// Me returns the plain inner product on edges
func (o *FVProblem) Me() Op { return o.me }

// MeSigmaIDeriv linearizes MeSigmaI·base about the current conductivity.
// The edge diagonal is 1/(Pe·σ), hence the result is -diag(base/(Pe·σ)²)·Pe.
func (o *FVProblem) MeSigmaIDeriv(base la.VectorC) Op {
	d := la.NewVectorC(o.mesh.Ne)
	for i := range d {
		d[i] = -base[i] / complex(o.dSig[i]*o.dSig[i], 0)
	}
	return NewMulOp(NewDiagOp(d), o.pe)
}

// MfRhoDeriv linearizes MfRho·base with respect to the conductivity model
// through the resistivity chain rule ρ = 1/σ: diag(base)·Pf·diag(-1/σ²)
func (o *FVProblem) MfRhoDeriv(base la.VectorC) Op {
	neg := la.NewVectorC(o.mesh.Nc)
	for i := range neg {
		neg[i] = complex(-1.0/(o.sig[i]*o.sig[i]), 0)
	}
	return NewMulOp(NewDiagOp(base), NewMulOp(o.pf, NewDiagOp(neg)))
}
