// Copyright © 2024 Galvanized Logic Inc.

// Package physics checks for overlap between packed island bounding boxes.
// Adapted from the teacher's broad-phase collision pairing + union-find:
// same two-stage shape (pairwise overlap test, then union-find grouping),
// applied to axis-aligned layout boxes instead of bounding spheres.
package physics

import (
	"log/slog"
)

// bid indexes a Box within the slice passed to OverlapPairs/OverlapGroups.
type bid uint32

// Box is an axis-aligned bounding box on the page canvas, in millimeters.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
	Page                   int
}

func (b *Box) overlaps(o *Box) bool {
	if b.Page != o.Page {
		return false
	}
	return b.MinX < o.MaxX && o.MinX < b.MaxX && b.MinY < o.MaxY && o.MinY < b.MaxY
}

// overlapPair names two boxes, by index into the caller's slice, whose
// bounds intersect on the same page.
type overlapPair struct {
	b1id, b2id bid
}

// OverlapPairs returns every pair of boxes (same page) whose bounds
// intersect. Used by pack_islands tests to assert the packer's
// non-overlap invariant (spec.md S4): a correct pack produces zero pairs.
func OverlapPairs(boxes []Box) []overlapPair {
	pairs := []overlapPair{}
	for i := 0; i < len(boxes); i++ {
		b1 := &boxes[i]
		for j := i + 1; j < len(boxes); j++ {
			b2 := &boxes[j]
			if b1.overlaps(b2) {
				pairs = append(pairs, overlapPair{bid(i), bid(j)})
			}
		}
	}
	return pairs
}

func ufFind(parent map[bid]bid, x bid) bid {
	p, ok := parent[x]
	if !ok {
		slog.Error("missing box parent", "box_id", x)
		return x
	}
	if p == x {
		return x
	}
	return ufFind(parent, p)
}

func ufUnion(parent map[bid]bid, x, y bid) {
	parent[ufFind(parent, y)] = ufFind(parent, x)
}

// OverlapGroups partitions boxes into connected components under the
// "overlaps" relation: each returned slice holds the indices (into boxes)
// of one maximal set of mutually-reachable overlapping boxes. A
// non-overlapping pack yields len(boxes) singleton groups.
func OverlapGroups(boxes []Box) [][]int {
	parent := map[bid]bid{}
	for i := range boxes {
		parent[bid(i)] = bid(i)
	}
	for _, pair := range OverlapPairs(boxes) {
		ufUnion(parent, pair.b1id, pair.b2id)
	}

	groupIdx := map[bid]int{}
	groups := [][]int{}
	for i := range boxes {
		root := ufFind(parent, bid(i))
		idx, ok := groupIdx[root]
		if !ok {
			idx = len(groups)
			groups = append(groups, []int{})
			groupIdx[root] = idx
		}
		groups[idx] = append(groups[idx], i)
	}
	return groups
}
