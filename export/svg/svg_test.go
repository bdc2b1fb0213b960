// Copyright © 2024 Galvanized Logic Inc.

package svg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gazed/papercraft"
	"github.com/gazed/papercraft/math/lin"
)

func triangleProject(t *testing.T) *papercraft.Papercraft {
	t.Helper()
	m := papercraft.NewMesh(1)
	m.Verts = []papercraft.Vertex{
		{Pos: lin.V3{X: 0, Y: 0, Z: 0}},
		{Pos: lin.V3{X: 1, Y: 0, Z: 0}},
		{Pos: lin.V3{X: 0, Y: 1, Z: 0}},
	}
	m.Faces = []papercraft.Face{{Verts: []papercraft.VertexIndex{0, 1, 2}, Material: -1}}
	m.BuildAdjacency()
	pc, err := papercraft.FromModel(m, papercraft.DefaultOptions())
	if err != nil {
		t.Fatalf("FromModel: %v", err)
	}
	return pc
}

// TestGenerateTriangleOnePageOneFace covers spec.md scenario S1: a single
// imported triangle produces one page, one filled face, one cut contour,
// and no fold or texture markup.
func TestGenerateTriangleOnePageOneFace(t *testing.T) {
	pc := triangleProject(t)
	doc, err := Generate(pc, true)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	s := string(doc)

	if !strings.HasPrefix(s, "<?xml") {
		t.Errorf("document does not start with an XML declaration")
	}
	if strings.Count(s, "<g id=\"page_") != 1 {
		t.Errorf("want exactly one page group, got document:\n%s", s)
	}
	if strings.Count(s, "<polygon") != 1 {
		t.Errorf("want exactly one face polygon (untextured triangle), got document:\n%s", s)
	}
	if !strings.Contains(s, "<path d=\"M") {
		t.Errorf("want a cut contour path, got document:\n%s", s)
	}
	if strings.Contains(s, "<pattern") {
		t.Errorf("untextured material must not emit a pattern fill")
	}
	if strings.Contains(s, "stroke-dasharray") {
		t.Errorf("standalone triangle has no joined edges, want no fold lines")
	}
}

func TestGenerateWithEdgeIDsDrawsLabelPerCutEdge(t *testing.T) {
	m := papercraft.NewMesh(1)
	m.Verts = []papercraft.Vertex{
		{Pos: lin.V3{X: 0, Y: 0, Z: 0}},
		{Pos: lin.V3{X: 1, Y: 0, Z: 0}},
		{Pos: lin.V3{X: 0, Y: 1, Z: 0}},
	}
	m.Faces = []papercraft.Face{{Verts: []papercraft.VertexIndex{0, 1, 2}, Material: -1}}
	m.BuildAdjacency()
	opts := papercraft.NewOptions(papercraft.EdgeIDs(papercraft.EdgeIDOutside, 4))
	pc, err := papercraft.FromModel(m, opts)
	if err != nil {
		t.Fatalf("FromModel: %v", err)
	}
	doc, err := Generate(pc, true)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	s := string(doc)
	if strings.Count(s, "<text") < 3 {
		t.Errorf("want at least one edge-id <text> per cut edge (3 edges), got document:\n%s", s)
	}
}

func TestGenerateWithEdgeIDNoneDrawsNoEdgeLabels(t *testing.T) {
	m := papercraft.NewMesh(1)
	m.Verts = []papercraft.Vertex{
		{Pos: lin.V3{X: 0, Y: 0, Z: 0}},
		{Pos: lin.V3{X: 1, Y: 0, Z: 0}},
		{Pos: lin.V3{X: 0, Y: 1, Z: 0}},
	}
	m.Faces = []papercraft.Face{{Verts: []papercraft.VertexIndex{0, 1, 2}, Material: -1}}
	m.BuildAdjacency()
	opts := papercraft.NewOptions(papercraft.Signature(false, false))
	pc, err := papercraft.FromModel(m, opts)
	if err != nil {
		t.Fatalf("FromModel: %v", err)
	}
	doc, err := Generate(pc, true)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if strings.Contains(string(doc), "<text") {
		t.Errorf("EdgeIDNone (the default) must draw no edge-id labels, got document:\n%s", doc)
	}
}

func TestGenerateEmptyProjectStillValidSVG(t *testing.T) {
	m := papercraft.NewMesh(1)
	pc, err := papercraft.FromModel(m, papercraft.DefaultOptions())
	if err != nil {
		t.Fatalf("FromModel: %v", err)
	}
	doc, err := Generate(pc, true)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.Contains(doc, []byte("</svg>")) {
		t.Errorf("expected a closed <svg> root even with no faces")
	}
}

func TestGenerateWithoutTexturesSkipsDefs(t *testing.T) {
	pc := triangleProject(t)
	doc, err := Generate(pc, false)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if strings.Contains(string(doc), "<image") {
		t.Errorf("withTextures=false must not embed any texture image")
	}
}

func TestHexColorFormatsRGBA(t *testing.T) {
	got := hexColor(papercraft.RGBA{R: 1, G: 0, B: 0, A: 1})
	if got != "#ff0000" {
		t.Errorf("hexColor(red) = %s, want #ff0000", got)
	}
}

func TestPolyPointsFormatsEachVertex(t *testing.T) {
	got := polyPoints([]lin.V2{{X: 0, Y: 0}, {X: 1, Y: 2}})
	want := "0.0000,0.0000 1.0000,2.0000"
	if got != want {
		t.Errorf("polyPoints = %q, want %q", got, want)
	}
}
