// Copyright © 2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package papercraft

import (
	"image"
)

// texture.go deals with the 2D raster pictures mapped onto faces during
// export. Unlike the 3D engine this is adapted from, nothing here is bound
// to a graphics card: a Texture is plain CPU-side pixel data consumed
// directly by the SVG/PDF emitters.

// Texture is a raster image mapped onto faces whose material selects it.
// Width/Height are always known (even for a texture absent pixel data, a
// placeholder emitted untextured per invariant 6); Pixels is nil when
// HasPixels is false.
type Texture struct {
	Name      string
	Width     int
	Height    int
	Pixels    []byte // RGBA8, row-major, top-left origin; len == Width*Height*4.
	HasPixels bool
}

// NewTexture builds a Texture from a decoded image, converting it to a
// dense RGBA8 buffer in the process (importer/png.go decodes the source
// file format; this normalizes whatever image.Image it produces).
func NewTexture(name string, img image.Image) *Texture {
	if img == nil {
		return &Texture{Name: name}
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pixels := make([]byte, w*h*4)
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			pixels[i+0] = byte(r >> 8)
			pixels[i+1] = byte(g >> 8)
			pixels[i+2] = byte(bl >> 8)
			pixels[i+3] = byte(a >> 8)
			i += 4
		}
	}
	return &Texture{Name: name, Width: w, Height: h, Pixels: pixels, HasPixels: true}
}
