// Copyright © 2024 Galvanized Logic Inc.

package papercraft

import "testing"

func TestBuildAdjacencySharedEdge(t *testing.T) {
	m := hingeMesh()
	if len(m.Edges) != 7 {
		t.Fatalf("edges = %d, want 7 (4+4 sides - 1 shared)", len(m.Edges))
	}
	shared := 0
	for _, e := range m.Edges {
		if e.HasTwoFaces() {
			shared++
		}
	}
	if shared != 1 {
		t.Fatalf("shared edges = %d, want 1", shared)
	}
}

func TestEdgeOtherFace(t *testing.T) {
	m := hingeMesh()
	e := m.sharedEdgeForTest()
	edge := &m.Edges[e]
	if edge.OtherFace(edge.FaceA) != edge.FaceB {
		t.Error("OtherFace(FaceA) != FaceB")
	}
	if edge.OtherFace(edge.FaceB) != edge.FaceA {
		t.Error("OtherFace(FaceB) != FaceA")
	}
	if edge.OtherFace(99) != -1 {
		t.Error("OtherFace of an unrelated face should be -1")
	}
}

func TestVerticesOfEdgeWindingOrder(t *testing.T) {
	m := hingeMesh()
	e := m.sharedEdgeForTest()
	v0, v1, ok := m.VerticesOfEdge(0, e)
	if !ok {
		t.Fatal("expected edge to belong to face 0")
	}
	if v0 != 1 || v1 != 2 {
		t.Errorf("face 0 winds edge as (%d,%d), want (1,2)", v0, v1)
	}
	// face 1 winds the same edge in the opposite direction.
	v0b, v1b, ok := m.VerticesOfEdge(1, e)
	if !ok {
		t.Fatal("expected edge to belong to face 1")
	}
	if v0b != 2 || v1b != 1 {
		t.Errorf("face 1 winds edge as (%d,%d), want (2,1)", v0b, v1b)
	}
}

func TestFaceBySign(t *testing.T) {
	m := hingeMesh()
	e := m.sharedEdgeForTest()
	edge := &m.Edges[e]
	forward := m.FaceBySign(e, 1)
	backward := m.FaceBySign(e, -1)
	if forward == backward {
		t.Fatal("forward and backward faces must differ")
	}
	v0, v1, _ := m.VerticesOfEdge(forward, e)
	if v0 != edge.V0 || v1 != edge.V1 {
		t.Errorf("FaceBySign(1) face winds (%d,%d), want (%d,%d)", v0, v1, edge.V0, edge.V1)
	}
}

func TestFacePlaneCached(t *testing.T) {
	m := triangleMesh()
	p1 := m.FacePlane(0)
	p2 := m.FacePlane(0)
	if p1 != p2 {
		t.Error("FacePlane should cache and return the same pointer on a second call")
	}
}

func TestFacePlaneDegenerate(t *testing.T) {
	m := NewMesh(1)
	m.Verts = []Vertex{{}, {}, {}}
	m.Faces = []Face{{Verts: []VertexIndex{0, 1, 2}}}
	if pl := m.FacePlane(0); pl != nil {
		t.Error("expected nil plane for three coincident points")
	}
}
