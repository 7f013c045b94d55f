// Copyright 2018 The Simpeg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msh implements structured 3D tensor-product meshes with staggered
// edge and face degrees of freedom for finite-volume discretizations
package msh

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// Mesh holds a 3D tensor-product grid. Cell widths along each axis are given
// explicitly, therefore the grid may be graded. Degrees of freedom follow a
// fixed global numbering: within each block the x index runs fastest, then y,
// then z; edge blocks are ordered Ex, Ey, Ez and face blocks Fx, Fy, Fz.
type Mesh struct {

	// input
	Hx []float64 // cell widths along x
	Hy []float64 // cell widths along y
	Hz []float64 // cell widths along z
	X0 []float64 // coordinates of the first node

	// derived counts
	Nx, Ny, Nz    int // number of cells along each axis
	Nn, Nc        int // total numbers of nodes and cells
	Ne, Nf        int // total numbers of edges and faces
	NeX, NeY, NeZ int // edges per orientation
	NfX, NfY, NfZ int // faces per orientation

	// derived coordinates
	xn, yn, zn []float64 // node coordinates per axis
	xc, yc, zc []float64 // cell-centre coordinates per axis
}

// NewMesh creates a tensor mesh from the cell widths along each axis.
// x0 holds the coordinates of the first node and may be nil for the origin.
func NewMesh(hx, hy, hz, x0 []float64) (o *Mesh, err error) {
	if len(hx) < 1 || len(hy) < 1 || len(hz) < 1 {
		err = chk.Err("mesh needs at least one cell per axis. nx=%d, ny=%d, nz=%d", len(hx), len(hy), len(hz))
		return
	}
	if x0 == nil {
		x0 = []float64{0, 0, 0}
	}
	if len(x0) != 3 {
		err = chk.Err("x0 must have 3 components. len(x0)=%d", len(x0))
		return
	}
	for _, h := range [][]float64{hx, hy, hz} {
		for _, w := range h {
			if w <= 0 {
				err = chk.Err("cell widths must be positive. found h=%g", w)
				return
			}
		}
	}
	o = new(Mesh)
	o.Hx, o.Hy, o.Hz, o.X0 = hx, hy, hz, x0
	o.Nx, o.Ny, o.Nz = len(hx), len(hy), len(hz)
	o.Nn = (o.Nx + 1) * (o.Ny + 1) * (o.Nz + 1)
	o.Nc = o.Nx * o.Ny * o.Nz
	o.NeX = o.Nx * (o.Ny + 1) * (o.Nz + 1)
	o.NeY = (o.Nx + 1) * o.Ny * (o.Nz + 1)
	o.NeZ = (o.Nx + 1) * (o.Ny + 1) * o.Nz
	o.Ne = o.NeX + o.NeY + o.NeZ
	o.NfX = (o.Nx + 1) * o.Ny * o.Nz
	o.NfY = o.Nx * (o.Ny + 1) * o.Nz
	o.NfZ = o.Nx * o.Ny * (o.Nz + 1)
	o.Nf = o.NfX + o.NfY + o.NfZ
	o.xn, o.xc = axisCoords(x0[0], hx)
	o.yn, o.yc = axisCoords(x0[1], hy)
	o.zn, o.zc = axisCoords(x0[2], hz)
	return
}

// axisCoords computes node and centre coordinates along one axis
func axisCoords(start float64, h []float64) (nodes, centres []float64) {
	nodes = make([]float64, len(h)+1)
	centres = make([]float64, len(h))
	nodes[0] = start
	for i, w := range h {
		nodes[i+1] = nodes[i] + w
		centres[i] = nodes[i] + w/2.0
	}
	return
}

// global indices ////////////////////////////////////////////////////////////

func (o *Mesh) nodeIdx(i, j, k int) int {
	return i + j*(o.Nx+1) + k*(o.Nx+1)*(o.Ny+1)
}

func (o *Mesh) exIdx(i, j, k int) int {
	return i + j*o.Nx + k*o.Nx*(o.Ny+1)
}

func (o *Mesh) eyIdx(i, j, k int) int {
	return o.NeX + i + j*(o.Nx+1) + k*(o.Nx+1)*o.Ny
}

func (o *Mesh) ezIdx(i, j, k int) int {
	return o.NeX + o.NeY + i + j*(o.Nx+1) + k*(o.Nx+1)*(o.Ny+1)
}

func (o *Mesh) fxIdx(i, j, k int) int {
	return i + j*(o.Nx+1) + k*(o.Nx+1)*o.Ny
}

func (o *Mesh) fyIdx(i, j, k int) int {
	return o.NfX + i + j*o.Nx + k*o.Nx*(o.Ny+1)
}

func (o *Mesh) fzIdx(i, j, k int) int {
	return o.NfX + o.NfY + i + j*o.Nx + k*o.Nx*o.Ny
}

func (o *Mesh) cellIdx(i, j, k int) int {
	return i + j*o.Nx + k*o.Nx*o.Ny
}

// geometry //////////////////////////////////////////////////////////////////

// EdgeLengths returns the length of every edge in global numbering
func (o *Mesh) EdgeLengths() (L la.Vector) {
	L = la.NewVector(o.Ne)
	for k := 0; k <= o.Nz; k++ {
		for j := 0; j <= o.Ny; j++ {
			for i := 0; i < o.Nx; i++ {
				L[o.exIdx(i, j, k)] = o.Hx[i]
			}
		}
	}
	for k := 0; k <= o.Nz; k++ {
		for j := 0; j < o.Ny; j++ {
			for i := 0; i <= o.Nx; i++ {
				L[o.eyIdx(i, j, k)] = o.Hy[j]
			}
		}
	}
	for k := 0; k < o.Nz; k++ {
		for j := 0; j <= o.Ny; j++ {
			for i := 0; i <= o.Nx; i++ {
				L[o.ezIdx(i, j, k)] = o.Hz[k]
			}
		}
	}
	return
}

// FaceAreas returns the area of every face in global numbering
func (o *Mesh) FaceAreas() (A la.Vector) {
	A = la.NewVector(o.Nf)
	for k := 0; k < o.Nz; k++ {
		for j := 0; j < o.Ny; j++ {
			for i := 0; i <= o.Nx; i++ {
				A[o.fxIdx(i, j, k)] = o.Hy[j] * o.Hz[k]
			}
		}
	}
	for k := 0; k < o.Nz; k++ {
		for j := 0; j <= o.Ny; j++ {
			for i := 0; i < o.Nx; i++ {
				A[o.fyIdx(i, j, k)] = o.Hx[i] * o.Hz[k]
			}
		}
	}
	for k := 0; k <= o.Nz; k++ {
		for j := 0; j < o.Ny; j++ {
			for i := 0; i < o.Nx; i++ {
				A[o.fzIdx(i, j, k)] = o.Hx[i] * o.Hy[j]
			}
		}
	}
	return
}

// CellVols returns the volume of every cell in global numbering
func (o *Mesh) CellVols() (V la.Vector) {
	V = la.NewVector(o.Nc)
	for k := 0; k < o.Nz; k++ {
		for j := 0; j < o.Ny; j++ {
			for i := 0; i < o.Nx; i++ {
				V[o.cellIdx(i, j, k)] = o.Hx[i] * o.Hy[j] * o.Hz[k]
			}
		}
	}
	return
}

// EdgeCenters returns the midpoint of every edge; the result is Ne×3
func (o *Mesh) EdgeCenters() (C [][]float64) {
	C = utl.Alloc(o.Ne, 3)
	for k := 0; k <= o.Nz; k++ {
		for j := 0; j <= o.Ny; j++ {
			for i := 0; i < o.Nx; i++ {
				e := o.exIdx(i, j, k)
				C[e][0], C[e][1], C[e][2] = o.xc[i], o.yn[j], o.zn[k]
			}
		}
	}
	for k := 0; k <= o.Nz; k++ {
		for j := 0; j < o.Ny; j++ {
			for i := 0; i <= o.Nx; i++ {
				e := o.eyIdx(i, j, k)
				C[e][0], C[e][1], C[e][2] = o.xn[i], o.yc[j], o.zn[k]
			}
		}
	}
	for k := 0; k < o.Nz; k++ {
		for j := 0; j <= o.Ny; j++ {
			for i := 0; i <= o.Nx; i++ {
				e := o.ezIdx(i, j, k)
				C[e][0], C[e][1], C[e][2] = o.xn[i], o.yn[j], o.zc[k]
			}
		}
	}
	return
}

// EdgeTangents returns the unit tangent of every edge; the result is Ne×3
func (o *Mesh) EdgeTangents() (T [][]float64) {
	T = utl.Alloc(o.Ne, 3)
	for e := 0; e < o.NeX; e++ {
		T[e][0] = 1
	}
	for e := o.NeX; e < o.NeX+o.NeY; e++ {
		T[e][1] = 1
	}
	for e := o.NeX + o.NeY; e < o.Ne; e++ {
		T[e][2] = 1
	}
	return
}

// FaceCenters returns the centroid of every face; the result is Nf×3
func (o *Mesh) FaceCenters() (C [][]float64) {
	C = utl.Alloc(o.Nf, 3)
	for k := 0; k < o.Nz; k++ {
		for j := 0; j < o.Ny; j++ {
			for i := 0; i <= o.Nx; i++ {
				f := o.fxIdx(i, j, k)
				C[f][0], C[f][1], C[f][2] = o.xn[i], o.yc[j], o.zc[k]
			}
		}
	}
	for k := 0; k < o.Nz; k++ {
		for j := 0; j <= o.Ny; j++ {
			for i := 0; i < o.Nx; i++ {
				f := o.fyIdx(i, j, k)
				C[f][0], C[f][1], C[f][2] = o.xc[i], o.yn[j], o.zc[k]
			}
		}
	}
	for k := 0; k <= o.Nz; k++ {
		for j := 0; j < o.Ny; j++ {
			for i := 0; i < o.Nx; i++ {
				f := o.fzIdx(i, j, k)
				C[f][0], C[f][1], C[f][2] = o.xc[i], o.yc[j], o.zn[k]
			}
		}
	}
	return
}

// FaceNormals returns the unit normal of every face; the result is Nf×3
func (o *Mesh) FaceNormals() (N [][]float64) {
	N = utl.Alloc(o.Nf, 3)
	for f := 0; f < o.NfX; f++ {
		N[f][0] = 1
	}
	for f := o.NfX; f < o.NfX+o.NfY; f++ {
		N[f][1] = 1
	}
	for f := o.NfX + o.NfY; f < o.Nf; f++ {
		N[f][2] = 1
	}
	return
}

// CellCenters returns the centroid of every cell; the result is Nc×3
func (o *Mesh) CellCenters() (C [][]float64) {
	C = utl.Alloc(o.Nc, 3)
	for k := 0; k < o.Nz; k++ {
		for j := 0; j < o.Ny; j++ {
			for i := 0; i < o.Nx; i++ {
				c := o.cellIdx(i, j, k)
				C[c][0], C[c][1], C[c][2] = o.xc[i], o.yc[j], o.zc[k]
			}
		}
	}
	return
}
