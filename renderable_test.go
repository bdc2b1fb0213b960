// Copyright © 2024 Galvanized Logic Inc.

package papercraft

import "testing"

func TestRenderableStandaloneTriangle(t *testing.T) {
	pc, _ := FromModel(triangleMesh(), DefaultOptions())
	rp, err := pc.Renderable()
	if err != nil {
		t.Fatalf("Renderable: %v", err)
	}
	if len(rp.Islands) != 1 {
		t.Fatalf("len(Islands) = %d, want 1", len(rp.Islands))
	}
	isl := rp.Islands[0]
	if len(isl.Faces) != 1 || len(isl.Faces[0].Verts) != 3 {
		t.Fatalf("Faces = %+v, want one triangular face", isl.Faces)
	}
	if len(isl.Edges) != 3 {
		t.Fatalf("len(Edges) = %d, want 3", len(isl.Edges))
	}
	for _, e := range isl.Edges {
		if e.Kind != EdgeKindCut {
			t.Errorf("edge %d kind = %v, want EdgeKindCut (everything starts cut)", e.Edge, e.Kind)
		}
	}
	if len(isl.Flaps) != 0 {
		t.Errorf("len(Flaps) = %d, want 0 (no flap side set)", len(isl.Flaps))
	}
}

func TestRenderableJoinedHingeClassifiesFoldEdge(t *testing.T) {
	pc, _ := FromModel(hingeMesh(), DefaultOptions())
	shared := pc.mesh.sharedEdgeForTest()
	if err := pc.EdgeJoin(shared, nil); err != nil {
		t.Fatalf("EdgeJoin: %v", err)
	}
	rp, err := pc.Renderable()
	if err != nil {
		t.Fatalf("Renderable: %v", err)
	}
	if len(rp.Islands) != 1 {
		t.Fatalf("len(Islands) = %d, want 1 after join", len(rp.Islands))
	}
	isl := rp.Islands[0]
	if len(isl.Faces) != 2 {
		t.Fatalf("len(Faces) = %d, want 2", len(isl.Faces))
	}
	var foundJoined bool
	for _, e := range isl.Edges {
		if e.Edge == shared {
			foundJoined = true
			if e.Kind != EdgeKindJoined {
				t.Errorf("shared edge kind = %v, want EdgeKindJoined", e.Kind)
			}
		}
	}
	if !foundJoined {
		t.Error("shared edge missing from rendered edge list")
	}
	// 4 sides per square with the shared edge counted once = 7 (six cut
	// boundary edges plus the joined fold).
	if len(isl.Edges) != 7 {
		t.Errorf("len(Edges) = %d, want 7", len(isl.Edges))
	}
}

func TestRenderableFlapAppearsWhenSet(t *testing.T) {
	pc, _ := FromModel(triangleMesh(), DefaultOptions())
	if err := pc.EdgeToggleFlap(0, FlapNext); err != nil {
		t.Fatalf("EdgeToggleFlap: %v", err)
	}
	rp, err := pc.Renderable()
	if err != nil {
		t.Fatalf("Renderable: %v", err)
	}
	isl := rp.Islands[0]
	if len(isl.Flaps) != 1 {
		t.Fatalf("len(Flaps) = %d, want 1 after setting a flap on edge 0", len(isl.Flaps))
	}
	if isl.Flaps[0].Edge != 0 {
		t.Errorf("flap edge = %d, want 0", isl.Flaps[0].Edge)
	}
}

func TestRenderableUnknownIslandNotPresent(t *testing.T) {
	pc, _ := FromModel(triangleMesh(), DefaultOptions())
	rp, err := pc.Renderable()
	if err != nil {
		t.Fatalf("Renderable: %v", err)
	}
	for _, isl := range rp.Islands {
		if isl.Key == 9999 {
			t.Fatal("unexpected island key present")
		}
	}
}
