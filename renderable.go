// Copyright © 2024 Galvanized Logic Inc.

package papercraft

// renderable.go produces RenderablePapercraft (SPEC_FULL "SUPPLEMENTED
// FEATURES"): a pure, already-projected read model for the out-of-scope
// HTTP façade (spec.md §6) to serialize, with nothing left for a client to
// compute — every vertex, fold line and flap is already in page-space mm.

import (
	"github.com/gazed/papercraft/math/lin"
)

// EdgeKind classifies a rendered edge the way its EdgeStatus does, without
// exposing the mutable status type itself to read-only consumers.
type EdgeKind int

const (
	EdgeKindJoined EdgeKind = iota
	EdgeKindCut
	EdgeKindHidden
)

// FoldDirection is only meaningful for an EdgeKindJoined edge: the fold
// line is drawn as a mountain or valley crease per the edge's FoldAngle sign.
type FoldDirection int

const (
	FoldNone FoldDirection = iota
	FoldMountain
	FoldValley
)

// RenderableFace is one face's final 2D vertex loop (page-space mm, in the
// mesh's own winding order) plus the material/UV data an SVG/PDF emitter
// needs to fill it.
type RenderableFace struct {
	Index    FaceIndex
	Material int
	Verts    []lin.V2
	UV       []lin.V2
}

// RenderableEdge is one edge's page-space endpoints and classification.
type RenderableEdge struct {
	Edge EdgeIndex
	Kind EdgeKind
	Fold FoldDirection
	P0   lin.V2
	P1   lin.V2
}

// RenderableFlap is one glue-flap's page-space trapezoid.
type RenderableFlap struct {
	Edge EdgeIndex
	Side FlapSide
	Quad [4]lin.V2
}

// RenderableIsland is one island's complete projection.
type RenderableIsland struct {
	Key   IslandKey
	Name  string
	Faces []RenderableFace
	Edges []RenderableEdge
	Flaps []RenderableFlap
}

// RenderablePapercraft is the full, paginated, projected project.
type RenderablePapercraft struct {
	Islands []RenderableIsland
}

// Renderable projects the whole project (every island's faces, fold/cut/
// hidden edges and flaps) into page-space millimeters.
func (pc *Papercraft) Renderable() (*RenderablePapercraft, error) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	out := &RenderablePapercraft{}
	for _, key := range pc.sortedIslandKeysLocked() {
		isl := pc.islands[key]
		ri, err := pc.renderIslandLocked(isl)
		if err != nil {
			return nil, err
		}
		out.Islands = append(out.Islands, *ri)
	}
	return out, nil
}

func (pc *Papercraft) renderIslandLocked(isl *Island) (*RenderableIsland, error) {
	ri := &RenderableIsland{Key: isl.Key, Name: isl.Name}

	faceAffine := map[FaceIndex]*lin.Affine{}
	poseAffine := isl.Pose.Affine()
	pc.mesh.traverseFaces(isl, pc.statusFn(), func(f FaceIndex, face *Face, m *lin.Affine) TraverseResult {
		full := new(lin.Affine)
		full.Mult(m, poseAffine)
		faceAffine[f] = full

		plane := pc.mesh.FacePlane(f)
		rf := RenderableFace{Index: f, Material: face.Material}
		for _, vi := range face.Verts {
			local := plane.Project(&pc.mesh.Verts[vi].Pos, pc.mesh.Scale)
			rf.Verts = append(rf.Verts, *full.Apply(&local))
			rf.UV = append(rf.UV, pc.mesh.Verts[vi].UV)
		}
		ri.Faces = append(ri.Faces, rf)
		return Continue
	})

	seen := map[EdgeIndex]bool{}
	for _, f := range isl.Faces() {
		full, ok := faceAffine[f]
		if !ok {
			continue
		}
		plane := pc.mesh.FacePlane(f)
		for _, ei := range pc.mesh.Faces[f].edges {
			if seen[ei] {
				continue
			}
			seen[ei] = true
			v0, v1, ok := pc.mesh.VerticesOfEdge(f, ei)
			if !ok {
				continue
			}
			p0l := plane.Project(&pc.mesh.Verts[v0].Pos, pc.mesh.Scale)
			p1l := plane.Project(&pc.mesh.Verts[v1].Pos, pc.mesh.Scale)
			re := RenderableEdge{Edge: ei, P0: *full.Apply(&p0l), P1: *full.Apply(&p1l)}
			status := pc.status[ei]
			switch {
			case status.Joined():
				re.Kind = EdgeKindJoined
				if pc.mesh.Edges[ei].FoldAngle < 0 {
					re.Fold = FoldValley
				} else {
					re.Fold = FoldMountain
				}
			case status.Hidden():
				re.Kind = EdgeKindHidden
			default:
				re.Kind = EdgeKindCut
			}
			if re.Kind != EdgeKindJoined && full.Det() > 0 {
				// f keeps its counter-clockwise projected winding here, so
				// reverse the edge to make Perp(P1-P0) point out of f.
				re.P0, re.P1 = re.P1, re.P0
			}
			ri.Edges = append(ri.Edges, re)
		}
	}

	perimeter := pc.mesh.islandPerimeter(isl, pc.statusFn())
	for _, entry := range perimeter {
		side, ok := pc.status[entry.Edge].Cut()
		if !ok || side == FlapNone || !flapVisible(side, entry.Sign) {
			continue
		}
		f := pc.mesh.FaceBySign(entry.Edge, entry.Sign)
		full, ok := faceAffine[f]
		if !ok {
			continue
		}
		v0, v1, ok := pc.mesh.VerticesOfEdge(f, entry.Edge)
		if !ok {
			continue
		}
		plane := pc.mesh.FacePlane(f)
		p0l := plane.Project(&pc.mesh.Verts[v0].Pos, pc.mesh.Scale)
		p1l := plane.Project(&pc.mesh.Verts[v1].Pos, pc.mesh.Scale)
		p0, p1 := full.Apply(&p0l), full.Apply(&p1l)
		if full.Det() > 0 {
			// f's interior lies on the Perp(p1-p0) side; walk the edge the
			// other way so the flap lands outside the island.
			p0, p1 = p1, p0
		}
		quad := flapQuad(p0, p1, pc.opts.FlapWidth)
		ri.Flaps = append(ri.Flaps, RenderableFlap{Edge: entry.Edge, Side: side, Quad: quad})
	}

	return ri, nil
}
