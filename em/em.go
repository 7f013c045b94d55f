// Copyright 2018 The Simpeg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package em provides shared physics helpers for electromagnetic modelling
package em

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// free-space constants
const (
	MuZero  = 4.0e-7 * math.Pi // magnetic permeability [H/m]
	EpsZero = 8.854187817e-12  // electric permittivity [F/m]
)

// Omega returns the angular frequency [rad/s] corresponding to freq [Hz]
func Omega(freq float64) float64 {
	return 2.0 * math.Pi * freq
}

// SkinDepth returns the plane-wave skin depth [m] in a uniform medium with
// conductivity sig [S/m] at frequency freq [Hz]
func SkinDepth(sig, freq float64) float64 {
	if sig <= 0 || freq <= 0 {
		chk.Panic("skin depth requires positive conductivity and frequency. sig=%g, freq=%g", sig, freq)
	}
	return math.Sqrt(2.0 / (Omega(freq) * MuZero * sig))
}
