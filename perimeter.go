// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package papercraft

// perimeter.go is the perimeter walker (component G): the ordered cut/hidden
// edge contour bounding one island.

// PerimeterEntry pairs an edge with the sign of the island face that owns
// it: +1 if that face walks the edge V0->V1, -1 if V1->V0.
type PerimeterEntry struct {
	Edge EdgeIndex
	Sign int
}

func (m *Mesh) edgeIndexInFace(f FaceIndex, e EdgeIndex) int {
	for i, ei := range m.Faces[f].edges {
		if ei == e {
			return i
		}
	}
	return -1
}

func signOf(m *Mesh, f FaceIndex, e EdgeIndex) int {
	if m.FaceBySign(e, 1) == f {
		return 1
	}
	return -1
}

// islandPerimeter walks the ordered cut/hidden edge contour around isl,
// starting from any non-joined edge of any face in the island. At each
// corner vertex it takes the next edge in the current face's winding
// order; if that edge is Joined, it hops across to the neighbor face
// sharing it and keeps rotating around the same vertex until a non-joined
// edge is found (4.G).
func (m *Mesh) islandPerimeter(isl *Island, status edgeStatusFunc) []PerimeterEntry {
	var startFace FaceIndex = -1
	var startEdge EdgeIndex = -1
	for _, f := range isl.Faces() {
		for _, ei := range m.Faces[f].edges {
			if !status(ei).Joined() {
				startFace, startEdge = f, ei
				break
			}
		}
		if startFace >= 0 {
			break
		}
	}
	if startFace < 0 {
		return nil // no cut edges: a fully joined, unbounded island (degenerate input).
	}

	startSign := signOf(m, startFace, startEdge)
	var out []PerimeterEntry
	curFace, curEdge := startFace, startEdge
	for {
		sign := signOf(m, curFace, curEdge)
		out = append(out, PerimeterEntry{Edge: curEdge, Sign: sign})

		face := &m.Faces[curFace]
		n := len(face.edges)
		idx := m.edgeIndexInFace(curFace, curEdge)
		nextEdge := face.edges[(idx+1)%n]
		nextFace := curFace
		for status(nextEdge).Joined() {
			edge := &m.Edges[nextEdge]
			other := edge.OtherFace(nextFace)
			if other < 0 {
				break // boundary edge mis-marked Joined; stop hopping (invariant 2 repair).
			}
			nextFace = other
			of := &m.Faces[nextFace]
			j := m.edgeIndexInFace(nextFace, nextEdge)
			nextEdge = of.edges[(j+1)%len(of.edges)]
		}
		curFace, curEdge = nextFace, nextEdge

		if curEdge == startEdge && signOf(m, curFace, curEdge) == startSign {
			break
		}
	}
	return out
}
