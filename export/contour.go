// Copyright © 2024 Galvanized Logic Inc.

package export

import (
	"math"

	"github.com/gazed/papercraft"
	"github.com/gazed/papercraft/math/lin"
)

// IslandContour stitches isl's page-local cut/hidden edges into one ordered
// polyline, using pc's topology-aware perimeter walk (component G) for edge
// order and matching each edge's nearest endpoint to the running point to
// pick its direction. Returns ok=false if isl has no boundary at all.
func IslandContour(pc *papercraft.Papercraft, isl papercraft.RenderableIsland) ([]lin.V2, bool) {
	entries, err := pc.IslandPerimeter(isl.Key)
	if err != nil || len(entries) == 0 {
		return nil, false
	}

	byEdge := map[papercraft.EdgeIndex][2]lin.V2{}
	for _, e := range isl.Edges {
		if e.Kind == papercraft.EdgeKindJoined {
			continue
		}
		byEdge[e.Edge] = [2]lin.V2{e.P0, e.P1}
	}

	var pts []lin.V2
	var cur lin.V2
	have := false
	for _, entry := range entries {
		seg, ok := byEdge[entry.Edge]
		if !ok {
			continue
		}
		if !have {
			pts = append(pts, seg[0], seg[1])
			cur = seg[1]
			have = true
			continue
		}
		if dist(cur, seg[0]) <= dist(cur, seg[1]) {
			pts = append(pts, seg[1])
			cur = seg[1]
		} else {
			pts = append(pts, seg[0])
			cur = seg[0]
		}
	}
	return pts, len(pts) > 0
}

func dist(a, b lin.V2) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return math.Hypot(dx, dy)
}
