// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "math"

// Affine is a 2D affine transform, stored in the six-value form used by
// both the SVG `matrix(a b c d e f)` attribute and the PDF `cm` operator:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
//
// Affine plays the same role for the flattened page space that T plays for
// 3D transforms elsewhere in this library: a composable rigid (or general
// affine) transform with Mult to compose and Apply/Inverse to act on points.
type Affine struct {
	A, B, C, D, E, F float64
}

// AffineI returns the identity affine transform.
func AffineI() *Affine { return &Affine{A: 1, D: 1} }

// Translation returns the affine transform that translates by (tx, ty).
func Translation(tx, ty float64) *Affine {
	return &Affine{A: 1, D: 1, E: tx, F: ty}
}

// Rotation returns the affine transform that rotates by radians about the
// origin.
func Rotation(radians float64) *Affine {
	s, c := math.Sin(radians), math.Cos(radians)
	return &Affine{A: c, B: s, C: -s, D: c}
}

// Reflection returns the affine transform that mirrors across the line
// through the origin at the given angle (radians) to the X axis. Unfolding
// a hinge fold reflects the far face through the shared edge; composing a
// Reflection with a Rotation+Translation produces that flip (see traverse.go).
func Reflection(radians float64) *Affine {
	s2, c2 := math.Sin(2*radians), math.Cos(2*radians)
	return &Affine{A: c2, B: s2, C: s2, D: -c2}
}

// Eq (==) returns true if all the elements in a match those of b.
func (a *Affine) Eq(b *Affine) bool {
	return a.A == b.A && a.B == b.B && a.C == b.C && a.D == b.D && a.E == b.E && a.F == b.F
}

// Aeq (~=) almost-equals returns true if all elements of a and b are
// essentially the same value.
func (a *Affine) Aeq(b *Affine) bool {
	return Aeq(a.A, b.A) && Aeq(a.B, b.B) && Aeq(a.C, b.C) &&
		Aeq(a.D, b.D) && Aeq(a.E, b.E) && Aeq(a.F, b.F)
}

// Set (=, copy) assigns the elements of b into a. The updated a is returned.
func (a *Affine) Set(b *Affine) *Affine {
	*a = *b
	return a
}

// Mult (*) sets m to be the composition of transforms a then b: applying m
// to a point is the same as applying a first, then b. m may alias a or b.
// This is "outer multiplication" in the sense used by the traversal engine:
// full_mx = Mult(localFaceTransform, islandPose).
func (m *Affine) Mult(a, b *Affine) *Affine {
	na := a.A*b.A + a.B*b.C
	nb := a.A*b.B + a.B*b.D
	nc := a.C*b.A + a.D*b.C
	nd := a.C*b.B + a.D*b.D
	ne := a.E*b.A + a.F*b.C + b.E
	nf := a.E*b.B + a.F*b.D + b.F
	m.A, m.B, m.C, m.D, m.E, m.F = na, nb, nc, nd, ne, nf
	return m
}

// Apply returns the image of point p under transform a.
func (a *Affine) Apply(p *V2) *V2 {
	return &V2{X: a.A*p.X + a.C*p.Y + a.E, Y: a.B*p.X + a.D*p.Y + a.F}
}

// ApplyS applies transform a to scalar point (x, y).
func (a *Affine) ApplyS(x, y float64) (ox, oy float64) {
	return a.A*x + a.C*y + a.E, a.B*x + a.D*y + a.F
}

// Det returns the determinant of the linear part of a (ignoring translation).
// A value near zero means a maps the plane onto a line (or point): the
// degenerate case the UV solver must detect.
func (a *Affine) Det() float64 { return a.A*a.D - a.B*a.C }

// Inverse returns the inverse of a, or nil if a is singular (Det within
// Epsilon of zero).
func (a *Affine) Inverse() *Affine {
	det := a.Det()
	if AeqZ(det) {
		return nil
	}
	inv := 1 / det
	na := a.D * inv
	nb := -a.B * inv
	nc := -a.C * inv
	nd := a.A * inv
	ne := -(a.E*na + a.F*nc)
	nf := -(a.E*nb + a.F*nd)
	return &Affine{A: na, B: nb, C: nc, D: nd, E: ne, F: nf}
}
