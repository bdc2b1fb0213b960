// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package papercraft

// pose.go combines a 2D location and a rotation to give an island's rigid
// placement on the page grid (the 2D analog of pov.go's 3D Loc+Rot pair).

import (
	"github.com/gazed/papercraft/math/lin"
)

// pose is a 2D location and rotation (radians) used to place an island's
// root face on the global page canvas.
//
//	pose.Loc   : translation - where the island's root origin sits.
//	pose.Angle : rotation    - which way the island is turned.
type pose struct {
	Loc   lin.V2
	Angle float64
}

func newPose() pose { return pose{} }

// Set assigns a's values to p.
func (p *pose) Set(a *pose) {
	p.Loc = a.Loc
	p.Angle = a.Angle
}

// Move translates the pose by (dx, dy) in global coordinates
// (island_translate, 4.D/F').
func (p *pose) Move(dx, dy float64) {
	p.Loc.X += dx
	p.Loc.Y += dy
}

// Spin rotates the pose by the given radians about center, a point in
// global coordinates (island_rotate, 4.D/F').
func (p *pose) Spin(radians float64, center *lin.V2) {
	d := lin.NewV2().Sub(&p.Loc, center)
	d.Rotate(d, radians)
	p.Loc.X = center.X + d.X
	p.Loc.Y = center.Y + d.Y
	p.Angle += radians
}

// Affine returns the 2D rigid transform this pose represents: rotate then
// translate, the "outer multiplication" 4.F's traversal composes with each
// face's local hinge-unfold matrix.
func (p *pose) Affine() *lin.Affine {
	rot := lin.Rotation(p.Angle)
	tr := lin.Translation(p.Loc.X, p.Loc.Y)
	return lin.AffineI().Mult(rot, tr)
}
