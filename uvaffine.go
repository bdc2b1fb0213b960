// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package papercraft

// uvaffine.go is the UV-to-page affine solver (component J): the unique
// 2D affine mapping a triangle's UV coordinates onto its laid-out page
// points, used by the SVG/PDF emitters to place a tiling texture pattern.

import (
	"log/slog"

	"github.com/gazed/papercraft/math/lin"
)

// uvToPageAffine returns the affine M such that M.Apply(u_i) == p_i for
// each of the triangle's three (uv, page-point) correspondences, or nil
// if the UV triangle is degenerate (§3 invariant 6 / §7 DegenerateGeometry:
// caller skips the triangle).
func uvToPageAffine(u0, u1, u2, p0, p1, p2 lin.V2) *lin.Affine {
	duA := lin.NewV2().Sub(&u1, &u0)
	duB := lin.NewV2().Sub(&u2, &u0)
	dpA := lin.NewV2().Sub(&p1, &p0)
	dpB := lin.NewV2().Sub(&p2, &p0)

	du := &lin.Affine{A: duA.X, B: duA.Y, C: duB.X, D: duB.Y}
	duInv := du.Inverse()
	if duInv == nil {
		slog.Default().Debug("degenerate UV triangle, skipping texture fill", "u0", u0, "u1", u1, "u2", u2)
		return nil
	}
	dp := &lin.Affine{A: dpA.X, B: dpA.Y, C: dpB.X, D: dpB.Y}

	m := lin.AffineI().Mult(duInv, dp) // linear part only; translation still 0.
	t := m.Apply(&u0)
	m.E = p0.X - t.X
	m.F = p0.Y - t.Y
	return m
}

// texturePixelUV rescales a normalized UV coordinate to texture pixel
// space, matching the raster origin convention (v grows downward in
// pixel space, upward in UV space): (u*W, (1-v)*H).
func texturePixelUV(uv lin.V2, texW, texH int) lin.V2 {
	return lin.V2{X: uv.X * float64(texW), Y: (1 - uv.Y) * float64(texH)}
}

// UVToPageAffine exposes the UV→page affine solver (component J) to the
// export/svg and export/pdf packages, which need it per textured triangle
// and have no other way to reach this package's unexported geometry.
func UVToPageAffine(u0, u1, u2, p0, p1, p2 lin.V2) *lin.Affine {
	return uvToPageAffine(u0, u1, u2, p0, p1, p2)
}

// TexturePixelUV exposes texturePixelUV to the export packages.
func TexturePixelUV(uv lin.V2, texW, texH int) lin.V2 {
	return texturePixelUV(uv, texW, texH)
}
