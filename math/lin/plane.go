// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Plane is the cached per-face plane used by the projector: an origin point
// in 3D plus an orthonormal in-plane basis (E1, E2) and the face normal.
// A point p on the face projects to 2D as (dot(p-Origin, E1), dot(p-Origin, E2)).
type Plane struct {
	Origin V3
	E1     V3
	E2     V3
	Normal V3
}

// NewPlane builds the plane for a face given its origin vertex and two
// vectors spanning the face (e.g. v1-v0 and v2-v0 of a convex, planar face).
// e1 is taken along the first edge; e2 completes a right-handed in-plane
// basis via the face normal, so (E1, E2, Normal) is orthonormal.
// Returns nil if the two spanning vectors are parallel (degenerate face).
func NewPlane(origin *V3, edge1, edge2 *V3) *Plane {
	normal := NewV3().Cross(edge1, edge2)
	if normal.LenSqr() < Epsilon*Epsilon {
		return nil
	}
	normal.Unit()
	e1 := NewV3().Set(edge1).Unit()
	e2 := NewV3().Cross(normal, e1)
	return &Plane{Origin: *origin, E1: *e1, E2: *e2, Normal: *normal}
}

// Project returns the 2D coordinates of 3D point p within this plane's
// basis, scaled by the given world-units-to-mm scale factor.
func (pl *Plane) Project(p *V3, scale float64) V2 {
	d := NewV3().Sub(p, &pl.Origin)
	return V2{X: d.Dot(&pl.E1) * scale, Y: d.Dot(&pl.E2) * scale}
}
