// Copyright 2018 The Simpeg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdem

import "github.com/cpmech/gosl/chk"

// FieldName identifies one of the four frequency-domain field quantities or
// one of its primary/secondary parts. The set is closed: every container
// answers each name either with a value or with an explicit error.
type FieldName int

// field names. the iota layout is total, primary, secondary per quantity
const (
	E FieldName = iota // total electric field
	EPrimary
	ESecondary
	B // total magnetic flux density
	BPrimary
	BSecondary
	H // total magnetic field
	HPrimary
	HSecondary
	J // total current density
	JPrimary
	JSecondary
)

// labels follows the FieldName iota order
var labels = []string{
	"e", "ePrimary", "eSecondary",
	"b", "bPrimary", "bSecondary",
	"h", "hPrimary", "hSecondary",
	"j", "jPrimary", "jSecondary",
}

// String returns the conventional label, e.g. "bSecondary"
func (o FieldName) String() string {
	if !o.valid() {
		return "invalid"
	}
	return labels[o]
}

// ParseFieldName converts a label such as "bSecondary" into a FieldName
func ParseFieldName(label string) (name FieldName, err error) {
	for i, l := range labels {
		if l == label {
			return FieldName(i), nil
		}
	}
	err = chk.Err("unknown field name %q", label)
	return
}

func (o FieldName) valid() bool {
	return o >= E && o <= JSecondary
}

// quantity and part split a FieldName into what is measured and which piece
type quantity int
type part int

const (
	qE quantity = iota
	qB
	qH
	qJ
)

const (
	ptTotal part = iota
	ptPrimary
	ptSecondary
)

func (o FieldName) quantity() quantity { return quantity(o / 3) }
func (o FieldName) part() part         { return part(o % 3) }

func (o quantity) String() string {
	return [...]string{"e", "b", "h", "j"}[o]
}

// space returns where a quantity is discretized; electric and magnetic
// fields ride on edges, flux and current densities on faces
func (o quantity) space() Space {
	if o == qE || o == qH {
		return Edges
	}
	return Faces
}

// Space says on which mesh entities a discretized quantity lives
type Space int

// spaces
const (
	Edges Space = iota
	Faces
)

// String returns "edges" or "faces"
func (o Space) String() string {
	if o == Edges {
		return "edges"
	}
	return "faces"
}

// Formulation selects the pair of native unknowns a problem is assembled
// for: EB problems discretize the electric field and magnetic flux density,
// HJ problems the magnetic field and current density. Source terms are
// integrated accordingly.
type Formulation int

// formulations
const (
	EB Formulation = iota
	HJ
)

// String returns "EB" or "HJ"
func (o Formulation) String() string {
	if o == EB {
		return "EB"
	}
	return "HJ"
}
