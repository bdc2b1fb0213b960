// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package papercraft

import "sort"

// island.go is the island registry (component D): a maximal connected
// component of faces joined by fold edges, laid out as one rigid body.

// Island is a connected component of faces under the Joined relation, with
// a stable key, a root face used as the origin for hinge-unfold traversal,
// a rigid 2D pose, and a display name.
type Island struct {
	Key   IslandKey
	Root  FaceIndex
	Pose  pose
	Name  string
	faces map[FaceIndex]bool
}

func newIsland(key IslandKey, root FaceIndex, name string) *Island {
	return &Island{Key: key, Root: root, Name: name, faces: map[FaceIndex]bool{root: true}}
}

// Faces returns the face indices belonging to this island, in ascending
// order (deterministic iteration for traversal/export).
func (isl *Island) Faces() []FaceIndex {
	out := make([]FaceIndex, 0, len(isl.faces))
	for f := range isl.faces {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Contains reports whether f belongs to this island.
func (isl *Island) Contains(f FaceIndex) bool { return isl.faces[f] }
