// Copyright 2018 The Simpeg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package simpeg implements tools for geophysical electromagnetic
// simulation and inversion on structured finite-volume meshes. Package em
// holds shared physics helpers, package msh the tensor-mesh discretization,
// and package em/fdem the frequency-domain field containers and their
// sensitivity machinery.
package simpeg
