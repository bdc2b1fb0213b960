// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package papercraft converts a 3D polygonal model into a flat papercraft
// layout: islands of connected faces joined along fold edges and cut along
// outer boundaries, with optional glue flaps and textured faces, paginated
// onto printable sheets and exported as SVG or PDF.
//
// Papercraft dependencies are:
//   - gopkg.in/yaml.v3 for reading PaperOptions from a project file.
//   - image/png for decoding texture files (see package importer).
package papercraft

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"sync"

	"github.com/gazed/papercraft/grid"
	"github.com/gazed/papercraft/math/lin"
	"github.com/gazed/papercraft/physics"
)

// Papercraft is a process-wide project: one mesh, its per-edge cut/fold
// state, the island registry derived from it, and the export options.
// Every mutating method acquires mu for its full duration (§5: one
// operation at a time, no suspension points while held).
type Papercraft struct {
	mu sync.Mutex

	mesh     *Mesh
	status   []EdgeStatus
	islands  map[IslandKey]*Island
	islandOf []IslandKey
	keys     islandKeys
	opts     PaperOptions

	log *slog.Logger
}

// FromModel builds a Papercraft project from an imported mesh and a set of
// export options. Every edge starts Cut (one island per face); an importer
// that wants preset folds calls EdgeJoin afterward for each one.
func FromModel(mesh *Mesh, opts PaperOptions) (*Papercraft, error) {
	if mesh == nil {
		return nil, invalidOperationf("from_model: nil mesh")
	}
	pc := &Papercraft{
		mesh:    mesh,
		islands: map[IslandKey]*Island{},
		opts:    opts,
		log:     slog.Default(),
	}
	pc.status = make([]EdgeStatus, len(mesh.Edges))
	for i := range pc.status {
		pc.status[i] = statusCutFn()
	}
	pc.islandOf = make([]IslandKey, len(mesh.Faces))
	for f := range mesh.Faces {
		key := pc.keys.create()
		pc.islands[key] = newIsland(key, FaceIndex(f), fmt.Sprintf("island-%d", key))
		pc.islandOf[f] = key
	}
	return pc, nil
}

func (pc *Papercraft) validEdge(e EdgeIndex) bool { return e >= 0 && int(e) < len(pc.status) }
func (pc *Papercraft) validFace(f FaceIndex) bool { return f >= 0 && int(f) < len(pc.mesh.Faces) }
func (pc *Papercraft) statusFn() edgeStatusFunc {
	return func(e EdgeIndex) EdgeStatus { return pc.status[e] }
}

// EdgeStatus reports the current status of edge e.
func (pc *Papercraft) EdgeStatus(e EdgeIndex) (EdgeStatus, error) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.validEdge(e) {
		return EdgeStatus{}, unknownKeyf("edge %d", e)
	}
	return pc.status[e], nil
}

// EdgeCut sets edge e to Cut(None). If e was Joined and removing it
// disconnects its island, the island splits: the component not containing
// the surviving root gets a freshly-keyed island whose pose preserves its
// pre-cut global placement (4.D/F'). offset, if given, additionally
// translates the new island by that many millimeters along the outward
// normal of the cut edge.
func (pc *Papercraft) EdgeCut(e EdgeIndex, offset *float64) error {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.validEdge(e) {
		return unknownKeyf("edge %d", e)
	}
	was := pc.status[e]
	if !was.Joined() {
		pc.status[e] = statusCutFn()
		return nil
	}
	edge := &pc.mesh.Edges[e]
	if !edge.HasTwoFaces() {
		pc.status[e] = statusCutFn()
		return nil
	}

	key := pc.islandOf[edge.FaceA]
	isl := pc.islands[key]
	oldRoot := isl.Root
	fullA, fullB := pc.faceFullTransforms(isl, edge.FaceA, edge.FaceB)

	pc.status[e] = statusCutFn()

	rootSet := pc.connectedFaces(oldRoot)
	if len(rootSet) == len(isl.faces) {
		return nil // e was redundant within a cycle; island stays whole.
	}

	var otherFaces map[FaceIndex]bool
	var anchor FaceIndex
	var anchorFull *lin.Affine
	if rootSet[edge.FaceA] {
		otherFaces = pc.connectedFaces(edge.FaceB)
		anchor, anchorFull = edge.FaceB, fullB
	} else {
		otherFaces = pc.connectedFaces(edge.FaceA)
		anchor, anchorFull = edge.FaceA, fullA
	}

	newKey := pc.keys.create()
	newIsl := newIsland(newKey, anchor, fmt.Sprintf("island-%d", newKey))
	newIsl.faces = otherFaces
	newIsl.Pose.Angle = math.Atan2(anchorFull.B, anchorFull.A)
	newIsl.Pose.Loc = lin.V2{X: anchorFull.E, Y: anchorFull.F}
	if offset != nil {
		pc.nudgeAlongEdge(e, anchor, anchorFull, *offset, &newIsl.Pose)
	}

	for f := range otherFaces {
		delete(isl.faces, f)
		pc.islandOf[f] = newKey
	}
	pc.islands[newKey] = newIsl
	return nil
}

// faceFullTransforms runs one traversal of isl and returns the global
// (pose-composed) affine of faces a and b, whichever are reached.
func (pc *Papercraft) faceFullTransforms(isl *Island, a, b FaceIndex) (fa, fb *lin.Affine) {
	poseAffine := isl.Pose.Affine()
	pc.mesh.traverseFaces(isl, pc.statusFn(), func(f FaceIndex, _ *Face, m *lin.Affine) TraverseResult {
		if f == a {
			fa = new(lin.Affine)
			fa.Mult(m, poseAffine)
		}
		if f == b {
			fb = new(lin.Affine)
			fb.Mult(m, poseAffine)
		}
		if fa != nil && fb != nil {
			return Break
		}
		return Continue
	})
	return fa, fb
}

// connectedFaces returns the set of faces reachable from start over
// currently-Joined edges.
func (pc *Papercraft) connectedFaces(start FaceIndex) map[FaceIndex]bool {
	seen := map[FaceIndex]bool{start: true}
	queue := []FaceIndex{start}
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		for _, ei := range pc.mesh.Faces[f].edges {
			edge := &pc.mesh.Edges[ei]
			if !edge.HasTwoFaces() || !pc.status[ei].Joined() {
				continue
			}
			nf := edge.OtherFace(f)
			if nf >= 0 && !seen[nf] {
				seen[nf] = true
				queue = append(queue, nf)
			}
		}
	}
	return seen
}

// nudgeAlongEdge translates pose by offset millimeters along the outward
// normal of edge e as seen on face (pre-cut global transform full).
func (pc *Papercraft) nudgeAlongEdge(e EdgeIndex, face FaceIndex, full *lin.Affine, offset float64, p *pose) {
	v0, v1, ok := pc.mesh.VerticesOfEdge(face, e)
	if !ok {
		return
	}
	plane := pc.mesh.FacePlane(face)
	p0l := plane.Project(&pc.mesh.Verts[v0].Pos, pc.mesh.Scale)
	p1l := plane.Project(&pc.mesh.Verts[v1].Pos, pc.mesh.Scale)
	p0 := full.Apply(&p0l)
	p1 := full.Apply(&p1l)
	dir := lin.NewV2().Sub(p1, p0).Unit()
	n := lin.NewV2().Perp(dir)
	p.Move(n.X*offset, n.Y*offset)
}

// EdgeJoin sets edge e, which must have two adjacent faces, to Joined,
// merging the two faces' islands if they differ. The surviving key is
// that of the island containing priority (if given), else the smaller key
// (4.D/F', invariant 5).
func (pc *Papercraft) EdgeJoin(e EdgeIndex, priority *FaceIndex) error {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.validEdge(e) {
		return unknownKeyf("edge %d", e)
	}
	if pc.status[e].Joined() {
		return nil
	}
	edge := &pc.mesh.Edges[e]
	if !edge.HasTwoFaces() {
		return invalidOperationf("edge_join: edge %d has no opposing face", e)
	}
	keyA, keyB := pc.islandOf[edge.FaceA], pc.islandOf[edge.FaceB]
	pc.status[e] = statusJoin()
	if keyA == keyB {
		return nil
	}
	survivor, absorbed := keyA, keyB
	if keyB < keyA {
		survivor, absorbed = keyB, keyA
	}
	if priority != nil && pc.validFace(*priority) {
		switch pc.islandOf[*priority] {
		case keyA:
			survivor, absorbed = keyA, keyB
		case keyB:
			survivor, absorbed = keyB, keyA
		}
	}
	pc.mergeIslands(survivor, absorbed)
	return nil
}

// mergeIslands absorbs absorbed's faces into survivor. Poses are not
// recomputed: every face's placement is derived lazily from its island's
// Root + Pose on each traversal, so the absorbed faces are correctly
// re-unfolded relative to the surviving frame the next time anyone walks
// the island (4.D/F').
func (pc *Papercraft) mergeIslands(survivor, absorbed IslandKey) {
	surv, abs := pc.islands[survivor], pc.islands[absorbed]
	for f := range abs.faces {
		surv.faces[f] = true
		pc.islandOf[f] = survivor
	}
	pc.keys.retire(absorbed)
	delete(pc.islands, absorbed)
}

// EdgeToggleFlap cycles the FlapSide of a cut edge. Invalid on an edge
// that is not currently Cut.
func (pc *Papercraft) EdgeToggleFlap(e EdgeIndex, action FlapAction) error {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.validEdge(e) {
		return unknownKeyf("edge %d", e)
	}
	side, ok := pc.status[e].Cut()
	if !ok {
		return invalidOperationf("edge_toggle_flap: edge %d is not cut", e)
	}
	pc.status[e] = EdgeStatus{kind: statusCut, flap: nextFlap(side, action)}
	return nil
}

// IslandTranslate moves island k by (dx, dy) millimeters in global coordinates.
func (pc *Papercraft) IslandTranslate(k IslandKey, dx, dy float64) error {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	isl, ok := pc.islands[k]
	if !ok {
		return unknownKeyf("island %d", k)
	}
	isl.Pose.Move(dx, dy)
	return nil
}

// IslandRotate rotates island k by radians about center (global coordinates).
func (pc *Papercraft) IslandRotate(k IslandKey, radians float64, center lin.V2) error {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	isl, ok := pc.islands[k]
	if !ok {
		return unknownKeyf("island %d", k)
	}
	isl.Pose.Spin(radians, &center)
	return nil
}

// SetOptions replaces the project's export options wholesale. If relocate
// is true, pack_islands runs immediately after.
func (pc *Papercraft) SetOptions(opts PaperOptions, relocate bool) error {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.opts = opts
	if relocate {
		return pc.packIslandsLocked()
	}
	return nil
}

// Options returns a copy of the project's current export options.
func (pc *Papercraft) Options() PaperOptions {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.opts
}

// MaterialTexture returns the texture mapped by material index mi and its
// index within the mesh's texture table, or ok=false if mi is out of range,
// the material is untextured, its texture index is itself out of range, or
// the texture has no pixel data (invariant 6: every one of these cases
// falls back to the paper color the same way).
func (pc *Papercraft) MaterialTexture(mi int) (ti TextureIndex, tex *Texture, ok bool) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if mi < 0 || mi >= len(pc.mesh.Materials) {
		pc.log.Debug("material index out of range, falling back to paper color", "material", mi)
		return 0, nil, false
	}
	mat := pc.mesh.Materials[mi]
	if mat.Texture == nil {
		return 0, nil, false
	}
	idx := *mat.Texture
	if int(idx) < 0 || int(idx) >= len(pc.mesh.Textures) {
		pc.log.Debug("material's texture index out of range, falling back to paper color", "material", mi, "texture", idx)
		return 0, nil, false
	}
	t := &pc.mesh.Textures[idx]
	if !t.HasPixels {
		pc.log.Debug("texture has no pixel data, falling back to paper color", "texture", idx)
		return 0, nil, false
	}
	return idx, t, true
}

// PackIslands bin-packs every island onto the page grid by
// first-fit-decreasing bounding-box height (4.D'/H).
func (pc *Papercraft) PackIslands() error {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.packIslandsLocked()
}

func (pc *Papercraft) packIslandsLocked() error {
	keys := pc.sortedIslandKeysLocked()
	contentW := pc.opts.PageWidth - pc.opts.Margins.Left - pc.opts.Margins.Right
	contentH := pc.opts.PageHeight - pc.opts.Margins.Top - pc.opts.Margins.Bottom

	items := make([]grid.Item, 0, len(keys))
	for _, k := range keys {
		isl := pc.islands[k]
		minX, minY, maxX, maxY, ok := pc.islandBBoxLocked(isl)
		if !ok {
			continue
		}
		items = append(items, grid.Item{Key: uint32(k), W: maxX - minX, H: maxY - minY, MinX: minX, MinY: minY})
	}

	slots := grid.Pack(items, contentW, contentH)
	for _, s := range slots {
		isl := pc.islands[IslandKey(s.Key)]
		px, py := grid.PagePosition(s.Page, pc.opts.Columns, pc.opts.PageWidth, pc.opts.PageHeight)
		dx := px + pc.opts.Margins.Left + s.DX
		dy := py + pc.opts.Margins.Top + s.DY
		isl.Pose.Move(dx, dy) // s.DX/DY already subtract the bbox min corner.
	}
	return nil
}

// islandBBoxLocked returns isl's axis-aligned bounding box at its current
// pose (rotation baked in for the bbox-at-rotation-0 step, since pack
// always measures the already-applied rotation: rotating further is an
// explicit island_rotate call, not something pack_islands performs).
func (pc *Papercraft) islandBBoxLocked(isl *Island) (minX, minY, maxX, maxY float64, ok bool) {
	poseAffine := isl.Pose.Affine()
	first := true
	pc.mesh.traverseFaces(isl, pc.statusFn(), func(f FaceIndex, face *Face, m *lin.Affine) TraverseResult {
		full := new(lin.Affine)
		full.Mult(m, poseAffine)
		plane := pc.mesh.FacePlane(f)
		for _, vi := range face.Verts {
			local := plane.Project(&pc.mesh.Verts[vi].Pos, pc.mesh.Scale)
			p := full.Apply(&local)
			if first {
				minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
				first = false
			}
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
		return Continue
	})
	return minX, minY, maxX, maxY, !first
}

func (pc *Papercraft) sortedIslandKeysLocked() []IslandKey {
	keys := make([]IslandKey, 0, len(pc.islands))
	for k := range pc.islands {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Islands returns every live island key in deterministic ascending order.
func (pc *Papercraft) Islands() []IslandKey {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.sortedIslandKeysLocked()
}

// TraverseFaces walks island k's hinge-unfold DFS (4.F), calling cb with
// each face's full global affine (island pose already composed in).
func (pc *Papercraft) TraverseFaces(k IslandKey, cb func(FaceIndex, *Face, *lin.Affine) TraverseResult) error {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	isl, ok := pc.islands[k]
	if !ok {
		return unknownKeyf("island %d", k)
	}
	poseAffine := isl.Pose.Affine()
	pc.mesh.traverseFaces(isl, pc.statusFn(), func(f FaceIndex, face *Face, m *lin.Affine) TraverseResult {
		full := new(lin.Affine)
		full.Mult(m, poseAffine)
		return cb(f, face, full)
	})
	return nil
}

// IslandPerimeter returns island k's ordered cut-edge contour (4.G).
func (pc *Papercraft) IslandPerimeter(k IslandKey) ([]PerimeterEntry, error) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	isl, ok := pc.islands[k]
	if !ok {
		return nil, unknownKeyf("island %d", k)
	}
	return pc.mesh.islandPerimeter(isl, pc.statusFn()), nil
}

// overlapBoxes returns, for diagnostics/tests, every island's page-space
// bounding box tagged with the page its center falls on; feed it to
// physics.OverlapPairs to find intersecting pairs (none after PackIslands; S4).
func (pc *Papercraft) overlapBoxes() []physics.Box {
	keys := pc.sortedIslandKeysLocked()
	cols := pc.opts.Columns
	boxes := make([]physics.Box, 0, len(keys))
	for _, k := range keys {
		isl := pc.islands[k]
		minX, minY, maxX, maxY, ok := pc.islandBBoxLocked(isl)
		if !ok {
			continue
		}
		cx, cy := (minX+maxX)/2, (minY+maxY)/2
		row, col := grid.GlobalToPage(cx, cy, pc.opts.PageWidth, pc.opts.PageHeight)
		page := row*cols + col
		boxes = append(boxes, physics.Box{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY, Page: page})
	}
	return boxes
}
