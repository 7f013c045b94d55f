// Copyright 2018 The Simpeg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package em

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// DipoleVectorPotential returns the static vector potential
//
//	A(x) = μ0/(4π) · m × r / |r|³    with r = x - loc
//
// of a magnetic dipole with moment mom [A·m²] located at loc. The evaluation
// point must not coincide with the dipole location.
func DipoleVectorPotential(mom, loc, x []float64) (A []float64) {
	r0, r1, r2, r3 := relpos(mom, loc, x)
	s := MuZero / (4.0 * math.Pi * r3 * r3 * r3)
	A = []float64{
		s * (mom[1]*r2 - mom[2]*r1),
		s * (mom[2]*r0 - mom[0]*r2),
		s * (mom[0]*r1 - mom[1]*r0),
	}
	return
}

// DipoleB returns the static flux density
//
//	B(x) = μ0/(4π) · (3·r̂·(m·r̂) - m) / |r|³    with r = x - loc
//
// of a magnetic dipole with moment mom [A·m²] located at loc
func DipoleB(mom, loc, x []float64) (B []float64) {
	r0, r1, r2, r3 := relpos(mom, loc, x)
	u0, u1, u2 := r0/r3, r1/r3, r2/r3
	mdotu := mom[0]*u0 + mom[1]*u1 + mom[2]*u2
	s := MuZero / (4.0 * math.Pi * r3 * r3 * r3)
	B = []float64{
		s * (3.0*u0*mdotu - mom[0]),
		s * (3.0*u1*mdotu - mom[1]),
		s * (3.0*u2*mdotu - mom[2]),
	}
	return
}

// relpos computes r = x - loc and its norm, checking inputs
func relpos(mom, loc, x []float64) (r0, r1, r2, r3 float64) {
	if len(mom) != 3 || len(loc) != 3 || len(x) != 3 {
		chk.Panic("dipole fields need 3D vectors. len(mom)=%d, len(loc)=%d, len(x)=%d", len(mom), len(loc), len(x))
	}
	r0, r1, r2 = x[0]-loc[0], x[1]-loc[1], x[2]-loc[2]
	r3 = math.Sqrt(r0*r0 + r1*r1 + r2*r2)
	if r3 == 0 {
		chk.Panic("dipole fields are singular at the dipole location (%g,%g,%g)", loc[0], loc[1], loc[2])
	}
	return
}
