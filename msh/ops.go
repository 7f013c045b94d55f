// Copyright 2018 The Simpeg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Discrete operators are assembled as complex triplets because the
// downstream frequency-domain algebra is complex; entries are real-valued.

// EdgeCurl returns the discrete curl mapping edge circulations to face
// normal components. Each row integrates the tangential dofs around one face
// boundary and divides by the face area (Stokes). The result is Nf×Ne.
func (o *Mesh) EdgeCurl() (C *la.TripletC) {
	C = la.NewTripletC(o.Nf, o.Ne, 4*o.Nf)
	for k := 0; k < o.Nz; k++ {
		for j := 0; j < o.Ny; j++ {
			for i := 0; i <= o.Nx; i++ {
				f := o.fxIdx(i, j, k)
				a := o.Hy[j] * o.Hz[k]
				C.Put(f, o.eyIdx(i, j, k), complex(o.Hy[j]/a, 0))
				C.Put(f, o.ezIdx(i, j+1, k), complex(o.Hz[k]/a, 0))
				C.Put(f, o.eyIdx(i, j, k+1), complex(-o.Hy[j]/a, 0))
				C.Put(f, o.ezIdx(i, j, k), complex(-o.Hz[k]/a, 0))
			}
		}
	}
	for k := 0; k < o.Nz; k++ {
		for j := 0; j <= o.Ny; j++ {
			for i := 0; i < o.Nx; i++ {
				f := o.fyIdx(i, j, k)
				a := o.Hx[i] * o.Hz[k]
				C.Put(f, o.ezIdx(i, j, k), complex(o.Hz[k]/a, 0))
				C.Put(f, o.exIdx(i, j, k+1), complex(o.Hx[i]/a, 0))
				C.Put(f, o.ezIdx(i+1, j, k), complex(-o.Hz[k]/a, 0))
				C.Put(f, o.exIdx(i, j, k), complex(-o.Hx[i]/a, 0))
			}
		}
	}
	for k := 0; k <= o.Nz; k++ {
		for j := 0; j < o.Ny; j++ {
			for i := 0; i < o.Nx; i++ {
				f := o.fzIdx(i, j, k)
				a := o.Hx[i] * o.Hy[j]
				C.Put(f, o.exIdx(i, j, k), complex(o.Hx[i]/a, 0))
				C.Put(f, o.eyIdx(i+1, j, k), complex(o.Hy[j]/a, 0))
				C.Put(f, o.exIdx(i, j+1, k), complex(-o.Hx[i]/a, 0))
				C.Put(f, o.eyIdx(i, j, k), complex(-o.Hy[j]/a, 0))
			}
		}
	}
	return
}

// NodalGrad returns the discrete gradient mapping nodal potentials to edge
// tangential components, i.e. the head-tail difference divided by the edge
// length. The result is Ne×Nn and EdgeCurl·NodalGrad vanishes identically.
func (o *Mesh) NodalGrad() (G *la.TripletC) {
	G = la.NewTripletC(o.Ne, o.Nn, 2*o.Ne)
	for k := 0; k <= o.Nz; k++ {
		for j := 0; j <= o.Ny; j++ {
			for i := 0; i < o.Nx; i++ {
				e := o.exIdx(i, j, k)
				G.Put(e, o.nodeIdx(i+1, j, k), complex(1.0/o.Hx[i], 0))
				G.Put(e, o.nodeIdx(i, j, k), complex(-1.0/o.Hx[i], 0))
			}
		}
	}
	for k := 0; k <= o.Nz; k++ {
		for j := 0; j < o.Ny; j++ {
			for i := 0; i <= o.Nx; i++ {
				e := o.eyIdx(i, j, k)
				G.Put(e, o.nodeIdx(i, j+1, k), complex(1.0/o.Hy[j], 0))
				G.Put(e, o.nodeIdx(i, j, k), complex(-1.0/o.Hy[j], 0))
			}
		}
	}
	for k := 0; k < o.Nz; k++ {
		for j := 0; j <= o.Ny; j++ {
			for i := 0; i <= o.Nx; i++ {
				e := o.ezIdx(i, j, k)
				G.Put(e, o.nodeIdx(i, j, k+1), complex(1.0/o.Hz[k], 0))
				G.Put(e, o.nodeIdx(i, j, k), complex(-1.0/o.Hz[k], 0))
			}
		}
	}
	return
}

// FaceDiv returns the discrete divergence mapping face normal components to
// cell averages, i.e. the net outward flux divided by the cell volume. The
// result is Nc×Nf and FaceDiv·EdgeCurl vanishes identically.
func (o *Mesh) FaceDiv() (D *la.TripletC) {
	D = la.NewTripletC(o.Nc, o.Nf, 6*o.Nc)
	for k := 0; k < o.Nz; k++ {
		for j := 0; j < o.Ny; j++ {
			for i := 0; i < o.Nx; i++ {
				c := o.cellIdx(i, j, k)
				v := o.Hx[i] * o.Hy[j] * o.Hz[k]
				ax, ay, az := o.Hy[j]*o.Hz[k], o.Hx[i]*o.Hz[k], o.Hx[i]*o.Hy[j]
				D.Put(c, o.fxIdx(i+1, j, k), complex(ax/v, 0))
				D.Put(c, o.fxIdx(i, j, k), complex(-ax/v, 0))
				D.Put(c, o.fyIdx(i, j+1, k), complex(ay/v, 0))
				D.Put(c, o.fyIdx(i, j, k), complex(-ay/v, 0))
				D.Put(c, o.fzIdx(i, j, k+1), complex(az/v, 0))
				D.Put(c, o.fzIdx(i, j, k), complex(-az/v, 0))
			}
		}
	}
	return
}

// cellEdges collects the 12 edge indices of cell (i,j,k)
func (o *Mesh) cellEdges(i, j, k int) [12]int {
	return [12]int{
		o.exIdx(i, j, k), o.exIdx(i, j+1, k), o.exIdx(i, j, k+1), o.exIdx(i, j+1, k+1),
		o.eyIdx(i, j, k), o.eyIdx(i+1, j, k), o.eyIdx(i, j, k+1), o.eyIdx(i+1, j, k+1),
		o.ezIdx(i, j, k), o.ezIdx(i+1, j, k), o.ezIdx(i, j+1, k), o.ezIdx(i+1, j+1, k),
	}
}

// cellFaces collects the 6 face indices of cell (i,j,k)
func (o *Mesh) cellFaces(i, j, k int) [6]int {
	return [6]int{
		o.fxIdx(i, j, k), o.fxIdx(i+1, j, k),
		o.fyIdx(i, j, k), o.fyIdx(i, j+1, k),
		o.fzIdx(i, j, k), o.fzIdx(i, j, k+1),
	}
}

// EdgeProjection returns the volume-weighted projection from cell values to
// edge dofs: each cell spreads a quarter of its volume onto each of its four
// parallel edges per orientation. The result is Ne×Nc; applied to a material
// property it yields the diagonal of the corresponding edge inner product.
func (o *Mesh) EdgeProjection() (P *la.TripletC) {
	P = la.NewTripletC(o.Ne, o.Nc, 12*o.Nc)
	for k := 0; k < o.Nz; k++ {
		for j := 0; j < o.Ny; j++ {
			for i := 0; i < o.Nx; i++ {
				c := o.cellIdx(i, j, k)
				w := complex(o.Hx[i]*o.Hy[j]*o.Hz[k]/4.0, 0)
				for _, e := range o.cellEdges(i, j, k) {
					P.Put(e, c, w)
				}
			}
		}
	}
	return
}

// FaceProjection returns the volume-weighted projection from cell values to
// face dofs: each cell spreads half of its volume onto each of its two
// parallel faces per orientation. The result is Nf×Nc.
func (o *Mesh) FaceProjection() (P *la.TripletC) {
	P = la.NewTripletC(o.Nf, o.Nc, 6*o.Nc)
	for k := 0; k < o.Nz; k++ {
		for j := 0; j < o.Ny; j++ {
			for i := 0; i < o.Nx; i++ {
				c := o.cellIdx(i, j, k)
				w := complex(o.Hx[i]*o.Hy[j]*o.Hz[k]/2.0, 0)
				for _, f := range o.cellFaces(i, j, k) {
					P.Put(f, c, w)
				}
			}
		}
	}
	return
}

// ProjectToEdges applies the edge projection to real cell values. The result
// carries the same weights as EdgeProjection.
func (o *Mesh) ProjectToEdges(c la.Vector) (d la.Vector) {
	if len(c) != o.Nc {
		chk.Panic("cell array has wrong size. %d != %d", len(c), o.Nc)
	}
	d = la.NewVector(o.Ne)
	for k := 0; k < o.Nz; k++ {
		for j := 0; j < o.Ny; j++ {
			for i := 0; i < o.Nx; i++ {
				w := o.Hx[i] * o.Hy[j] * o.Hz[k] / 4.0 * c[o.cellIdx(i, j, k)]
				for _, e := range o.cellEdges(i, j, k) {
					d[e] += w
				}
			}
		}
	}
	return
}

// ProjectToFaces applies the face projection to real cell values. The result
// carries the same weights as FaceProjection.
func (o *Mesh) ProjectToFaces(c la.Vector) (d la.Vector) {
	if len(c) != o.Nc {
		chk.Panic("cell array has wrong size. %d != %d", len(c), o.Nc)
	}
	d = la.NewVector(o.Nf)
	for k := 0; k < o.Nz; k++ {
		for j := 0; j < o.Ny; j++ {
			for i := 0; i < o.Nx; i++ {
				w := o.Hx[i] * o.Hy[j] * o.Hz[k] / 2.0 * c[o.cellIdx(i, j, k)]
				for _, f := range o.cellFaces(i, j, k) {
					d[f] += w
				}
			}
		}
	}
	return
}
