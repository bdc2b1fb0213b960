// Copyright © 2024 Galvanized Logic Inc.

package export

import (
	"sort"

	"github.com/gazed/papercraft"
	"github.com/gazed/papercraft/grid"
	"github.com/gazed/papercraft/math/lin"
)

// Page is one output page's geometry, every coordinate already translated
// from the global canvas into page-local millimeters (0,0 at the page's
// own top-left corner, before margins are applied).
type Page struct {
	Index   int
	Islands []papercraft.RenderableIsland
}

// Paginate assigns each island to the page containing its bounding-box
// center (spec.md §4.H), widening the column count first if any island's
// center falls past opts.Columns, then translates every coordinate of that
// island into the assigned page's local space.
func Paginate(rp *papercraft.RenderablePapercraft, opts papercraft.PaperOptions) []Page {
	cols := ResolvedColumns(rp, opts)

	byPage := map[int]*Page{}
	for _, isl := range rp.Islands {
		minX, minY, maxX, maxY, ok := islandBounds(&isl)
		if !ok {
			continue
		}
		cx, cy := (minX+maxX)/2, (minY+maxY)/2
		row, col := grid.GlobalToPage(cx, cy, opts.PageWidth, opts.PageHeight)
		page := row*cols + col
		ox, oy := grid.PagePosition(page, cols, opts.PageWidth, opts.PageHeight)

		p, ok := byPage[page]
		if !ok {
			p = &Page{Index: page}
			byPage[page] = p
		}
		p.Islands = append(p.Islands, translateIsland(isl, -ox, -oy))
	}

	indices := make([]int, 0, len(byPage))
	for idx := range byPage {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	pages := make([]Page, 0, len(indices))
	for _, idx := range indices {
		pages = append(pages, *byPage[idx])
	}
	return pages
}

// ResolvedColumns returns opts.Columns widened, if needed, so that every
// island's bbox center falls within the grid (spec.md §4.H) — the same
// widening Paginate applies internally, exposed so the SVG/PDF emitters can
// size their canvas and namedview metadata consistently with the actual
// page placement.
func ResolvedColumns(rp *papercraft.RenderablePapercraft, opts papercraft.PaperOptions) int {
	cols := opts.Columns
	if cols < 1 {
		cols = 1
	}
	maxCol := 0
	for _, isl := range rp.Islands {
		minX, _, maxX, _, ok := islandBounds(&isl)
		if !ok {
			continue
		}
		cx := (minX + maxX) / 2
		_, col := grid.GlobalToPage(cx, 0, opts.PageWidth, opts.PageHeight)
		if col > maxCol {
			maxCol = col
		}
	}
	return grid.WidenCols(cols, maxCol)
}

// islandBounds returns isl's axis-aligned bounding box over every face
// vertex, or ok=false if the island has no faces (e.g. every face was
// dropped for degenerate geometry).
func islandBounds(isl *papercraft.RenderableIsland) (minX, minY, maxX, maxY float64, ok bool) {
	first := true
	for _, f := range isl.Faces {
		for _, v := range f.Verts {
			if first {
				minX, maxX, minY, maxY = v.X, v.X, v.Y, v.Y
				first = false
				continue
			}
			if v.X < minX {
				minX = v.X
			}
			if v.X > maxX {
				maxX = v.X
			}
			if v.Y < minY {
				minY = v.Y
			}
			if v.Y > maxY {
				maxY = v.Y
			}
		}
	}
	return minX, minY, maxX, maxY, !first
}

func translateV2(v lin.V2, dx, dy float64) lin.V2 { return lin.V2{X: v.X + dx, Y: v.Y + dy} }

// translateIsland returns a copy of isl with every coordinate shifted by
// (dx, dy); the renderable projection is immutable once produced, so
// pagination never mutates the source island in place.
func translateIsland(isl papercraft.RenderableIsland, dx, dy float64) papercraft.RenderableIsland {
	out := papercraft.RenderableIsland{Key: isl.Key, Name: isl.Name}

	out.Faces = make([]papercraft.RenderableFace, len(isl.Faces))
	for i, f := range isl.Faces {
		nf := papercraft.RenderableFace{Index: f.Index, Material: f.Material, UV: f.UV}
		nf.Verts = make([]lin.V2, len(f.Verts))
		for j, v := range f.Verts {
			nf.Verts[j] = translateV2(v, dx, dy)
		}
		out.Faces[i] = nf
	}

	out.Edges = make([]papercraft.RenderableEdge, len(isl.Edges))
	for i, e := range isl.Edges {
		ne := e
		ne.P0 = translateV2(e.P0, dx, dy)
		ne.P1 = translateV2(e.P1, dx, dy)
		out.Edges[i] = ne
	}

	out.Flaps = make([]papercraft.RenderableFlap, len(isl.Flaps))
	for i, fl := range isl.Flaps {
		nfl := fl
		for j, v := range fl.Quad {
			nfl.Quad[j] = translateV2(v, dx, dy)
		}
		out.Flaps[i] = nfl
	}

	return out
}
