// Copyright © 2024 Galvanized Logic Inc.

package papercraft

import "github.com/gazed/papercraft/math/lin"

// fixtures_test.go builds small meshes shared across this package's test
// files: a standalone helper function, not a *_test.go per component, since
// the geometry (which faces, which shared edge) is the same fixture several
// components independently exercise.

// hingeMesh returns two unit squares sharing one edge, folded 90 degrees:
// face 0 lies in the Z=0 plane, face 1 in the X=1 plane. Unfolding face 1
// flat against face 0 should produce a 1x2 rectangle in 2D.
//
//	3-------2-------4
//	|       |       |
//	|   A   |   B   |
//	|       |       |
//	0-------1-------5
func hingeMesh() *Mesh {
	m := NewMesh(1)
	m.Verts = []Vertex{
		{Pos: lin.V3{X: 0, Y: 0, Z: 0}}, // 0
		{Pos: lin.V3{X: 1, Y: 0, Z: 0}}, // 1 shared
		{Pos: lin.V3{X: 1, Y: 1, Z: 0}}, // 2 shared
		{Pos: lin.V3{X: 0, Y: 1, Z: 0}}, // 3
		{Pos: lin.V3{X: 1, Y: 1, Z: 1}}, // 4
		{Pos: lin.V3{X: 1, Y: 0, Z: 1}}, // 5
	}
	m.Faces = []Face{
		{Verts: []VertexIndex{0, 1, 2, 3}, Material: -1},
		{Verts: []VertexIndex{1, 5, 4, 2}, Material: -1},
	}
	m.BuildAdjacency()
	return m
}

// sharedEdgeForTest returns the EdgeIndex of hingeMesh's shared edge (1-2).
func (m *Mesh) sharedEdgeForTest() EdgeIndex {
	for i, e := range m.Edges {
		if e.HasTwoFaces() {
			return EdgeIndex(i)
		}
	}
	return -1
}

// triangleMesh returns a single flat triangle, the minimal valid mesh.
func triangleMesh() *Mesh {
	m := NewMesh(1)
	m.Verts = []Vertex{
		{Pos: lin.V3{X: 0, Y: 0, Z: 0}},
		{Pos: lin.V3{X: 1, Y: 0, Z: 0}},
		{Pos: lin.V3{X: 0, Y: 1, Z: 0}},
	}
	m.Faces = []Face{{Verts: []VertexIndex{0, 1, 2}, Material: -1}}
	m.BuildAdjacency()
	return m
}
