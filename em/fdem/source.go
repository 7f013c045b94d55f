// Copyright 2018 The Simpeg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/ishuihan/simpeg/em"
	"github.com/ishuihan/simpeg/msh"
)

// Source defines one frequency-domain excitation: its frequency, its primary
// fields and the source terms entering the discrete equations. Spaces follow
// the owning problem: under EB the magnetic term lives on faces and the
// electric term on edges; under HJ the spaces swap, and the same duality
// applies to the primary flux density and magnetic field.
//
// Eval returns the terms as consumed by the discrete equations, already
// integrated where the formulation requires it. EvalDeriv returns the
// linearization of the raw densities instead; the field containers apply the
// remaining integration operators themselves.
//
// With adjoint true, v is the covector of whichever term the caller is
// differentiating and each returned component is its model-space pullback
// under the plain transpose; a component whose term space does not match
// len(v) is returned as model-space zeros. Containers consume exactly one
// component per call. Returned vectors are owned by the caller.
type Source interface {
	Freq() float64 // frequency [Hz], strictly positive

	EPrimary(prb Problem) (la.VectorC, error) // primary electric field on edges
	BPrimary(prb Problem) (la.VectorC, error) // primary flux density
	HPrimary(prb Problem) (la.VectorC, error) // primary magnetic field
	JPrimary(prb Problem) (la.VectorC, error) // primary current density on faces

	Eval(prb Problem) (sm, se la.VectorC, err error)
	EvalDeriv(prb Problem, v la.VectorC, adjoint bool) (dsm, dse la.VectorC, err error)
}

// RawSrc ////////////////////////////////////////////////////////////////////

// RawSrc carries explicitly given source terms and primary fields. Nil
// vectors evaluate to zero of the right size. Every term is model
// independent, so the derivatives vanish identically.
type RawSrc struct {
	Frequency      float64
	Sm, Se         la.VectorC // source terms; nil means zero
	Ep, Bp, Hp, Jp la.VectorC // primary fields; nil means zero
}

// Freq returns the source frequency
func (o *RawSrc) Freq() float64 { return o.Frequency }

// EPrimary returns the primary electric field on edges
func (o *RawSrc) EPrimary(prb Problem) (la.VectorC, error) {
	return orZero(o.Ep, prb.NumEdges()), nil
}

// BPrimary returns the primary flux density
func (o *RawSrc) BPrimary(prb Problem) (la.VectorC, error) {
	return orZero(o.Bp, fluxSize(prb)), nil
}

// HPrimary returns the primary magnetic field
func (o *RawSrc) HPrimary(prb Problem) (la.VectorC, error) {
	return orZero(o.Hp, fluxSize(prb)), nil
}

// JPrimary returns the primary current density on faces
func (o *RawSrc) JPrimary(prb Problem) (la.VectorC, error) {
	return orZero(o.Jp, prb.NumFaces()), nil
}

// Eval returns the stored source terms
func (o *RawSrc) Eval(prb Problem) (sm, se la.VectorC, err error) {
	nm, ne := termSizes(prb)
	return orZero(o.Sm, nm), orZero(o.Se, ne), nil
}

// EvalDeriv returns zeros of the right sizes
func (o *RawSrc) EvalDeriv(prb Problem, v la.VectorC, adjoint bool) (dsm, dse la.VectorC, err error) {
	if adjoint {
		return la.NewVectorC(prb.NumModel()), la.NewVectorC(prb.NumModel()), nil
	}
	nm, ne := termSizes(prb)
	return la.NewVectorC(nm), la.NewVectorC(ne), nil
}

// fluxSize returns where magnetic quantities live: faces under EB, edges
// under HJ
func fluxSize(prb Problem) int {
	if prb.Formulation() == HJ {
		return prb.NumEdges()
	}
	return prb.NumFaces()
}

// termSizes returns the sizes of the magnetic and electric source terms
func termSizes(prb Problem) (nm, ne int) {
	if prb.Formulation() == HJ {
		return prb.NumEdges(), prb.NumFaces()
	}
	return prb.NumFaces(), prb.NumEdges()
}

// orZero returns v, or a fresh zero vector of length n when v is nil
func orZero(v la.VectorC, n int) la.VectorC {
	if v == nil {
		return la.NewVectorC(n)
	}
	return v
}

// MagDipole /////////////////////////////////////////////////////////////////

// MagDipole is a harmonic magnetic point dipole. The primary flux is the
// discrete curl of the free-space vector potential sampled on the mesh, so
// it is divergence free to rounding; the secondary problem then carries all
// conduction effects. The source terms do not depend on the model.
type MagDipole struct {
	freq     float64
	mom, loc []float64
	aE       la.VectorC // vector potential integrated along edges
	aF       la.VectorC // vector potential integrated across faces (HJ duality)
}

// NewMagDipole creates a dipole with moment mom [A·m²] at loc, sampled on
// mesh m. The location must not coincide with any edge or face centre.
func NewMagDipole(freq float64, mom, loc []float64, m *msh.Mesh) (o *MagDipole, err error) {
	if freq <= 0 {
		err = chk.Err("dipole frequency must be positive. freq=%g", freq)
		return
	}
	if len(mom) != 3 || len(loc) != 3 {
		err = chk.Err("dipole moment and location must have 3 components. len(mom)=%d, len(loc)=%d", len(mom), len(loc))
		return
	}
	o = &MagDipole{freq: freq, mom: mom, loc: loc}
	ec, et := m.EdgeCenters(), m.EdgeTangents()
	o.aE = la.NewVectorC(m.Ne)
	for e := 0; e < m.Ne; e++ {
		if ec[e][0] == loc[0] && ec[e][1] == loc[1] && ec[e][2] == loc[2] {
			err = chk.Err("dipole location (%g,%g,%g) coincides with an edge centre", loc[0], loc[1], loc[2])
			return
		}
		A := em.DipoleVectorPotential(mom, loc, ec[e])
		o.aE[e] = complex(A[0]*et[e][0]+A[1]*et[e][1]+A[2]*et[e][2], 0)
	}
	fc, fn := m.FaceCenters(), m.FaceNormals()
	o.aF = la.NewVectorC(m.Nf)
	for f := 0; f < m.Nf; f++ {
		if fc[f][0] == loc[0] && fc[f][1] == loc[1] && fc[f][2] == loc[2] {
			err = chk.Err("dipole location (%g,%g,%g) coincides with a face centre", loc[0], loc[1], loc[2])
			return
		}
		A := em.DipoleVectorPotential(mom, loc, fc[f])
		o.aF[f] = complex(A[0]*fn[f][0]+A[1]*fn[f][1]+A[2]*fn[f][2], 0)
	}
	return
}

// Freq returns the source frequency
func (o *MagDipole) Freq() float64 { return o.freq }

// EPrimary returns zero; the free-space electric field plays no role here
func (o *MagDipole) EPrimary(prb Problem) (la.VectorC, error) {
	return la.NewVectorC(prb.NumEdges()), nil
}

// BPrimary returns the curl of the sampled vector potential: C·a on faces
// for EB problems and Cᵀ·a on edges for HJ problems
func (o *MagDipole) BPrimary(prb Problem) (bp la.VectorC, err error) {
	curl := prb.EdgeCurl()
	if prb.Formulation() == HJ {
		if len(o.aF) != prb.NumFaces() {
			err = chk.Err("dipole was sampled on a different mesh. %d != %d faces", len(o.aF), prb.NumFaces())
			return
		}
		bp = la.NewVectorC(prb.NumEdges())
		curl.MatTrVecMul(bp, o.aF)
		return
	}
	if len(o.aE) != prb.NumEdges() {
		err = chk.Err("dipole was sampled on a different mesh. %d != %d edges", len(o.aE), prb.NumEdges())
		return
	}
	bp = la.NewVectorC(prb.NumFaces())
	curl.MatVecMul(bp, o.aE)
	return
}

// HPrimary returns the primary flux divided by the free-space permeability
func (o *MagDipole) HPrimary(prb Problem) (hp la.VectorC, err error) {
	hp, err = o.BPrimary(prb)
	if err != nil {
		return
	}
	for i := range hp {
		hp[i] /= complex(em.MuZero, 0)
	}
	return
}

// JPrimary returns zero
func (o *MagDipole) JPrimary(prb Problem) (la.VectorC, error) {
	return la.NewVectorC(prb.NumFaces()), nil
}

// Eval returns the magnetic source term -iω·bPrimary, integrated with the
// plain edge inner product under HJ; the electric term is zero
func (o *MagDipole) Eval(prb Problem) (sm, se la.VectorC, err error) {
	var bp la.VectorC
	bp, err = o.BPrimary(prb)
	if err != nil {
		return
	}
	iω := complex(0, em.Omega(o.freq))
	if prb.Formulation() == HJ {
		me := prb.Me()
		if me == nil {
			err = chk.Err("HJ dipole sources need the plain edge inner product from the problem")
			return
		}
		sm = la.NewVectorC(prb.NumEdges())
		me.MatVecMul(sm, bp)
		for i := range sm {
			sm[i] *= -iω
		}
		se = la.NewVectorC(prb.NumFaces())
		return
	}
	sm = bp
	for i := range sm {
		sm[i] *= -iω
	}
	se = la.NewVectorC(prb.NumEdges())
	return
}

// EvalDeriv returns zeros: dipole source terms do not depend on the model
func (o *MagDipole) EvalDeriv(prb Problem, v la.VectorC, adjoint bool) (dsm, dse la.VectorC, err error) {
	if adjoint {
		return la.NewVectorC(prb.NumModel()), la.NewVectorC(prb.NumModel()), nil
	}
	nm, ne := termSizes(prb)
	return la.NewVectorC(nm), la.NewVectorC(ne), nil
}
