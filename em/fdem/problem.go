// Copyright 2018 The Simpeg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Problem supplies the discrete operators of a frequency-domain
// electromagnetic system: the edge curl, the material inner products and
// their linearizations about a base vector. All operators act on complex
// vectors. Operators a given formulation never touches may be left nil.
//
// The linearizations are taken with respect to the model parameters, so
// MeSigmaIDeriv(base) maps model vectors to edge vectors and its transpose
// pulls edge covectors back to model space.
type Problem interface {
	Formulation() Formulation // native unknown pair the system is assembled for
	NumEdges() int            // number of edge dofs
	NumFaces() int            // number of face dofs
	NumModel() int            // number of model parameters

	EdgeCurl() Op // Nf×Ne discrete curl

	MeSigmaI() Op // Ne×Ne inverse conductivity inner product on edges
	MfMui() Op    // Nf×Nf inverse permeability inner product on faces
	MfRho() Op    // Nf×Nf resistivity inner product on faces
	MeMuI() Op    // Ne×Ne inverse permeability inner product on edges
	Me() Op       // Ne×Ne plain inner product on edges

	MeSigmaIDeriv(base la.VectorC) Op // d(MeSigmaI·base)/dm, Ne×NumModel
	MfRhoDeriv(base la.VectorC) Op    // d(MfRho·base)/dm, Nf×NumModel
}

// OpsProblem bundles explicitly given operators into a Problem. It suits
// small hand-assembled systems and tests; fields mirror the interface.
type OpsProblem struct {
	Form   Formulation
	NE, NF int // numbers of edge and face dofs
	NM     int // number of model parameters

	Curl Op // Nf×Ne discrete curl
	SigI Op // inverse conductivity inner product on edges
	MuiF Op // inverse permeability inner product on faces
	Rho  Op // resistivity inner product on faces
	MuiE Op // inverse permeability inner product on edges
	Ie   Op // plain inner product on edges

	DSigI func(base la.VectorC) Op // linearization of SigI·base
	DRho  func(base la.VectorC) Op // linearization of Rho·base
}

// Formulation returns the native unknown pair
func (o *OpsProblem) Formulation() Formulation { return o.Form }

// NumEdges returns the number of edge dofs
func (o *OpsProblem) NumEdges() int { return o.NE }

// NumFaces returns the number of face dofs
func (o *OpsProblem) NumFaces() int { return o.NF }

// NumModel returns the number of model parameters
func (o *OpsProblem) NumModel() int { return o.NM }

// EdgeCurl returns the discrete curl
func (o *OpsProblem) EdgeCurl() Op { return o.Curl }

// MeSigmaI returns the inverse conductivity inner product on edges
func (o *OpsProblem) MeSigmaI() Op { return o.SigI }

// MfMui returns the inverse permeability inner product on faces
func (o *OpsProblem) MfMui() Op { return o.MuiF }

// MfRho returns the resistivity inner product on faces
func (o *OpsProblem) MfRho() Op { return o.Rho }

// MeMuI returns the inverse permeability inner product on edges
func (o *OpsProblem) MeMuI() Op { return o.MuiE }

// Me returns the plain inner product on edges
func (o *OpsProblem) Me() Op { return o.Ie }

// MeSigmaIDeriv returns the linearization of MeSigmaI·base
func (o *OpsProblem) MeSigmaIDeriv(base la.VectorC) Op {
	if o.DSigI == nil {
		chk.Panic("problem provides no conductivity linearization")
	}
	return o.DSigI(base)
}

// MfRhoDeriv returns the linearization of MfRho·base
func (o *OpsProblem) MfRhoDeriv(base la.VectorC) Op {
	if o.DRho == nil {
		chk.Panic("problem provides no resistivity linearization")
	}
	return o.DRho(base)
}
