// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package papercraft

// flap.go is the glue-flap geometry (component I): a trapezoidal paper
// extension protruding from one side of a cut edge.

import (
	"github.com/gazed/papercraft/math/lin"
)

const flapTaper = 0.15

// flapQuad returns the four corners of the glue flap trapezoid for the cut
// edge p0->p1 (page coordinates, mm), given the configured flap width.
// The flap extends along n = perp(p1-p0), the left of p0->p1 in X-right,
// Y-up terms; callers pass the endpoints in the order that puts that side
// outside the island (see renderIslandLocked).
func flapQuad(p0, p1 *lin.V2, width float64) [4]lin.V2 {
	dir := lin.NewV2().Sub(p1, p0)
	length := dir.Len()
	if length == 0 {
		return [4]lin.V2{*p0, *p1, *p1, *p0}
	}
	tangent := lin.NewV2().Set(dir).Div(length)
	normal := lin.NewV2().Perp(tangent)

	w := width
	if maxW := 0.4 * length; w > maxW {
		w = maxW
	}
	taper := flapTaper * length

	farP1 := lin.NewV2().Add(p1, lin.NewV2().Scale(normal, w))
	farP1.Sub(farP1, lin.NewV2().Scale(tangent, taper))

	farP0 := lin.NewV2().Add(p0, lin.NewV2().Scale(normal, w))
	farP0.Add(farP0, lin.NewV2().Scale(tangent, taper))

	return [4]lin.V2{*p0, *p1, *farP1, *farP0}
}
