// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package papercraft

// material.go holds the mesh's surface appearance: which texture, if any,
// a face's material selects. Materials are set once by the importer and
// read thereafter by the projector, traversal and emitters.

// TextureIndex addresses a Texture within a Mesh.Textures slice.
type TextureIndex int

// Material names a face's appearance and, optionally, the texture it maps
// onto. A nil Texture means the material paints faces with the paper color
// (invariant 6: a material pointing at a texture without pixel data falls
// back the same way — see Texture.HasPixels).
type Material struct {
	Name    string
	Texture *TextureIndex
}

// NewMaterial returns an untextured material with the given name.
func NewMaterial(name string) *Material {
	return &Material{Name: name}
}

// WithTexture returns m with its texture index set to ti.
func (m *Material) WithTexture(ti TextureIndex) *Material {
	m.Texture = &ti
	return m
}

// RGBA holds colour information where each field ranges 0.0 to 1.0.
// Used for PaperOptions' paper/cut/fold/tab colors. For example:
//
//	black := RGBA{0, 0, 0, 1}   white := RGBA{1, 1, 1, 1}
type RGBA struct {
	R, G, B, A float64
}
