// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package papercraft

// traverse.go is the hinge-unfold DFS (component F): given an island and
// its root face, produce every face's local 2D affine by walking joined
// edges and reflecting each neighbor open across the shared fold.

import (
	"math"
	"sort"

	"github.com/gazed/papercraft/math/lin"
)

// TraverseResult is returned by a traverseFaces callback to continue or
// stop the walk early.
type TraverseResult int

const (
	Continue TraverseResult = iota
	Break
)

// edgeStatusFunc looks up the current EdgeStatus of an edge. Passed in
// rather than read from a package-level map so traverse.go has no
// dependency on how Papercraft stores edge state.
type edgeStatusFunc func(EdgeIndex) EdgeStatus

// traverseFaces visits every face of isl exactly once via DFS across
// Joined edges from isl.Root, calling cb with each face's local 2D affine
// (the island pose is not yet applied; callers compose isl.Pose.Affine()
// separately — see Papercraft.TraverseFaces and renderable.go).
//
// Neighbor order is by FaceIndex ascending (deterministic per 4.F). An
// edge marked Joined whose edge lacks two adjacent faces is treated as
// cut (invariant 2 repair) rather than trusted blindly.
func (m *Mesh) traverseFaces(isl *Island, status edgeStatusFunc, cb func(FaceIndex, *Face, *lin.Affine) TraverseResult) {
	visited := map[FaceIndex]bool{}
	type frame struct {
		face FaceIndex
		m    *lin.Affine
	}
	stack := []frame{{isl.Root, lin.AffineI()}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[top.face] {
			continue // cycle in joined graph: second visit skipped.
		}
		visited[top.face] = true
		face := &m.Faces[top.face]
		if cb(top.face, face, top.m) == Break {
			return
		}

		type nbr struct {
			edge EdgeIndex
			face FaceIndex
		}
		var neighbors []nbr
		for _, ei := range face.edges {
			edge := &m.Edges[ei]
			if !edge.HasTwoFaces() || !status(ei).Joined() {
				continue
			}
			nf := edge.OtherFace(top.face)
			if nf < 0 || visited[nf] {
				continue
			}
			neighbors = append(neighbors, nbr{ei, nf})
		}
		sort.Slice(neighbors, func(i, j int) bool { return neighbors[i].face < neighbors[j].face })
		for i := len(neighbors) - 1; i >= 0; i-- { // push descending so ascending pops first.
			n := neighbors[i]
			mb := m.hingeUnfold(top.face, n.face, n.edge, top.m)
			stack = append(stack, frame{n.face, mb})
		}
	}
}

// hingeUnfold computes the local affine for face b, given face a's already
// resolved affine ma and the joined edge e between them: project e's
// endpoints in both faces' local frames, then find the rigid transform
// that translates/rotates/reflects b's frame so the shared edge lines up
// exactly with a's placement of it (4.F steps 1-3).
func (m *Mesh) hingeUnfold(a, b FaceIndex, e EdgeIndex, ma *lin.Affine) *lin.Affine {
	planeA := m.FacePlane(a)
	planeB := m.FacePlane(b)
	v0, v1, _ := m.VerticesOfEdge(a, e)
	p0a := planeA.Project(&m.Verts[v0].Pos, m.Scale)
	p1a := planeA.Project(&m.Verts[v1].Pos, m.Scale)
	p0 := ma.Apply(&p0a)
	p1 := ma.Apply(&p1a)

	// v0/v1 are mesh-wide vertex indices shared by both faces at this edge,
	// so projecting them through b's plane directly gives matching endpoints
	// without needing b's own winding order.
	p0b := planeB.Project(&m.Verts[v0].Pos, m.Scale)
	p1b := planeB.Project(&m.Verts[v1].Pos, m.Scale)

	angleB := math.Atan2(p1b.Y-p0b.Y, p1b.X-p0b.X)
	angleTarget := math.Atan2(p1.Y-p0.Y, p1.X-p0.X)

	toOrigin := lin.Translation(-p0b.X, -p0b.Y)
	align := lin.Rotation(angleTarget - angleB)
	flip := lin.Reflection(angleTarget)
	toPlace := lin.Translation(p0.X, p0.Y)

	mb := lin.AffineI()
	mb.Mult(toOrigin, align)
	mb.Mult(mb, flip)
	mb.Mult(mb, toPlace)
	return mb
}
