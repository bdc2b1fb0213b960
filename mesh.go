// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package papercraft

import (
	"log/slog"

	"github.com/gazed/papercraft/math/lin"
)

// mesh.go holds the 3D model data the papercraft engine unfolds: vertices,
// edges and faces addressed by dense, stable integer indices. A mesh is
// built once by an importer and is immutable thereafter except for the
// per-edge status tracked separately in edge.go.

// VertexIndex addresses a Vertex within a Mesh. Stable for the mesh's lifetime.
type VertexIndex int

// EdgeIndex addresses an Edge within a Mesh. Stable for the mesh's lifetime.
type EdgeIndex int

// FaceIndex addresses a Face within a Mesh. Stable for the mesh's lifetime.
type FaceIndex int

// Vertex is an immutable 3D mesh point: position, normal, and UV.
type Vertex struct {
	Pos    lin.V3
	Normal lin.V3
	UV     lin.V2
}

// Edge is an unordered pair of adjacent faces sharing two endpoint vertices,
// plus the signed fold angle (radians) used when the edge is Joined: angle
// sign determines mountain (>= 0) vs valley (< 0).
//
// FaceB is -1 for a boundary edge belonging to only one face (invariant 1).
type Edge struct {
	V0, V1     VertexIndex
	FaceA      FaceIndex
	FaceB      FaceIndex // -1 if this edge only borders one face.
	FoldAngle  float64
}

// HasTwoFaces reports whether this edge borders two faces (invariant 2
// requires this before it can be Joined).
func (e *Edge) HasTwoFaces() bool { return e.FaceB >= 0 }

// OtherFace returns the face on the opposite side of this edge from f,
// or -1 if f does not border the edge or the edge is a boundary edge.
func (e *Edge) OtherFace(f FaceIndex) FaceIndex {
	switch f {
	case e.FaceA:
		return e.FaceB
	case e.FaceB:
		return e.FaceA
	}
	return -1
}

// Face is an ordered, winding-preserving list of vertex indices (>= 3,
// assumed convex), a material index, and the plane its vertices lie in.
// Triangulation, where needed for texture mapping, fans from Verts[0].
type Face struct {
	Verts    []VertexIndex
	Material int
	plane    *lin.Plane // cached; computed lazily by facePlane.
	edges    []EdgeIndex
}

// Mesh is the indexed storage for a papercraft model: vertices, edges and
// faces addressed by dense integer indices, plus the adjacency derived from
// them (edge->faces is stored on Edge; face->edges is stored on Face).
type Mesh struct {
	Verts     []Vertex
	Edges     []Edge
	Faces     []Face
	Materials []Material
	Textures  []Texture
	Scale     float64 // world-units -> mm, applied by the face-plane projector.
}

// NewMesh allocates an empty mesh with the given world-units-to-mm scale.
func NewMesh(scale float64) *Mesh {
	if scale <= 0 {
		scale = 1
	}
	return &Mesh{Scale: scale}
}

// FacePlane returns the cached plane (origin, in-plane basis, normal) for
// face f, computing it from the face's first non-degenerate edge pair on
// first use. Returns nil if the face is degenerate (all points collinear).
func (m *Mesh) FacePlane(f FaceIndex) *lin.Plane {
	face := &m.Faces[f]
	if face.plane != nil {
		return face.plane
	}
	verts := face.Verts
	if len(verts) < 3 {
		return nil
	}
	origin := m.Verts[verts[0]].Pos
	for i := 1; i+1 < len(verts); i++ {
		e1 := lin.NewV3().Sub(&m.Verts[verts[i]].Pos, &origin)
		e2 := lin.NewV3().Sub(&m.Verts[verts[i+1]].Pos, &origin)
		if pl := lin.NewPlane(&origin, e1, e2); pl != nil {
			face.plane = pl
			return pl
		}
	}
	return nil
}

// VerticesOfEdge returns the endpoints of edge e in face f's winding order
// (V0, V1 as face f traverses them), or ok=false if e is not an edge of f.
func (m *Mesh) VerticesOfEdge(f FaceIndex, e EdgeIndex) (v0, v1 VertexIndex, ok bool) {
	face := &m.Faces[f]
	n := len(face.Verts)
	for i, ei := range face.edges {
		if ei == e {
			return face.Verts[i], face.Verts[(i+1)%n], true
		}
	}
	return 0, 0, false
}

// FaceBySign returns the face whose winding traverses edge e in the given
// direction: sign > 0 selects the face that walks e.V0 -> e.V1, sign < 0
// selects the face that walks e.V1 -> e.V0. Returns -1 if no such face.
func (m *Mesh) FaceBySign(e EdgeIndex, sign int) FaceIndex {
	edge := &m.Edges[e]
	for _, f := range []FaceIndex{edge.FaceA, edge.FaceB} {
		if f < 0 {
			continue
		}
		v0, v1, ok := m.VerticesOfEdge(f, e)
		if !ok {
			continue
		}
		forward := v0 == edge.V0 && v1 == edge.V1
		if (sign > 0) == forward {
			return f
		}
	}
	return -1
}

// BuildAdjacency derives Face.edges and Edge.FaceA/FaceB from Face.Verts.
// Called once by importers after Verts/Faces are populated; every edge
// (unordered vertex pair) is deduplicated across faces, enforcing
// invariant 1 (at most two faces per edge is the caller's responsibility —
// a third face sharing an edge simply does not get linked and is logged).
func (m *Mesh) BuildAdjacency() {
	type key struct{ a, b VertexIndex }
	index := map[key]EdgeIndex{}
	normKey := func(a, b VertexIndex) key {
		if a > b {
			a, b = b, a
		}
		return key{a, b}
	}
	m.Edges = m.Edges[:0]
	for fi := range m.Faces {
		face := &m.Faces[fi]
		n := len(face.Verts)
		face.edges = make([]EdgeIndex, n)
		for i := 0; i < n; i++ {
			v0, v1 := face.Verts[i], face.Verts[(i+1)%n]
			k := normKey(v0, v1)
			ei, seen := index[k]
			if !seen {
				ei = EdgeIndex(len(m.Edges))
				m.Edges = append(m.Edges, Edge{V0: v0, V1: v1, FaceA: FaceIndex(fi), FaceB: -1})
				index[k] = ei
			} else {
				edge := &m.Edges[ei]
				switch {
				case edge.FaceB < 0 && edge.FaceA != FaceIndex(fi):
					edge.FaceB = FaceIndex(fi)
				case edge.FaceB >= 0 && edge.FaceA != FaceIndex(fi) && edge.FaceB != FaceIndex(fi):
					slog.Default().Debug("edge already has two faces, leaving third face unlinked",
						"edge", ei, "faceA", edge.FaceA, "faceB", edge.FaceB, "face", fi)
				}
			}
			face.edges[i] = ei
		}
	}
}
