// Copyright © 2024 Galvanized Logic Inc.

package papercraft

import "testing"

func TestIslandPerimeterSingleFace(t *testing.T) {
	m := triangleMesh()
	isl := newIsland(0, 0, "x")
	entries := m.islandPerimeter(isl, func(EdgeIndex) EdgeStatus { return statusCutFn() })
	if len(entries) != 3 {
		t.Fatalf("perimeter entries = %d, want 3 for a standalone triangle", len(entries))
	}
	seen := map[EdgeIndex]bool{}
	for _, e := range entries {
		seen[e.Edge] = true
	}
	if len(seen) != 3 {
		t.Errorf("expected 3 distinct edges, got %d", len(seen))
	}
}

func TestIslandPerimeterExcludesJoinedEdge(t *testing.T) {
	m := hingeMesh()
	isl := newIsland(0, 0, "x")
	isl.faces[1] = true
	shared := m.sharedEdgeForTest()

	status := func(e EdgeIndex) EdgeStatus {
		if e == shared {
			return statusJoin()
		}
		return statusCutFn()
	}
	entries := m.islandPerimeter(isl, status)
	if len(entries) != 6 {
		t.Fatalf("perimeter entries = %d, want 6 (4+4 sides - 2 for the shared joined edge)", len(entries))
	}
	for _, e := range entries {
		if e.Edge == shared {
			t.Error("perimeter must not include the joined (interior) edge")
		}
	}
}

func TestIslandPerimeterEmptyWhenFullyJoined(t *testing.T) {
	m := triangleMesh()
	isl := newIsland(0, 0, "x")
	entries := m.islandPerimeter(isl, allJoined)
	if entries != nil {
		t.Errorf("expected nil perimeter for a fully-joined (boundary-less) island, got %v", entries)
	}
}
