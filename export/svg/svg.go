// Copyright © 2024 Galvanized Logic Inc.

// Package svg renders a Papercraft project to a single multi-page SVG
// document (spec.md §4.K), grounded on the teacher pack's plain
// io.Writer/fmt.Fprintf SVG-building idiom rather than a templating
// library or DOM builder.
package svg

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/gazed/papercraft"
	"github.com/gazed/papercraft/export"
	"github.com/gazed/papercraft/grid"
	"github.com/gazed/papercraft/math/lin"
)

// edgeIDOffsetMM is how far an edge-id label is pushed off the cut line
// along the edge's outward normal (spec.md supplement: "a few mm").
const edgeIDOffsetMM = 2.0

// Generate renders pc's current project to a standalone SVG document.
// withTextures controls whether textured faces fill with their tiling
// texture pattern (true) or the plain paper color (false, a fast preview).
func Generate(pc *papercraft.Papercraft, withTextures bool) ([]byte, error) {
	rp, err := pc.Renderable()
	if err != nil {
		return nil, err
	}
	opts := pc.Options()
	pages := export.Paginate(rp, opts)
	cols := export.ResolvedColumns(rp, opts)

	maxPage := opts.Pages - 1
	for _, pg := range pages {
		if pg.Index > maxPage {
			maxPage = pg.Index
		}
	}
	rows := maxPage/cols + 1
	canvasW := float64(cols)*opts.PageWidth + float64(cols-1)*grid.Gap
	canvasH := float64(rows)*opts.PageHeight + float64(rows-1)*grid.Gap

	var b bytes.Buffer
	fmt.Fprintf(&b, "<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"no\"?>\n")
	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" xmlns:xlink=\"http://www.w3.org/1999/xlink\" "+
		"xmlns:inkscape=\"http://www.inkscape.org/namespaces/inkscape\" "+
		"xmlns:sodipodi=\"http://sodipodi.sourceforge.net/DTD/sodipodi-0.0.dtd\" "+
		"width=\"%.4fmm\" height=\"%.4fmm\" viewBox=\"0 0 %.4f %.4f\">\n", canvasW, canvasH, canvasW, canvasH)

	textures, err := writeDefs(&b, pc, pages, withTextures)
	if err != nil {
		return nil, err
	}
	writeNamedView(&b, maxPage+1, cols, opts)

	for _, pg := range pages {
		ox, oy := grid.PagePosition(pg.Index, cols, opts.PageWidth, opts.PageHeight)
		fmt.Fprintf(&b, "<g id=\"page_%d\" transform=\"translate(%.4f,%.4f)\">\n", pg.Index, ox, oy)
		writePage(&b, pc, opts, pg, textures)
		fmt.Fprintf(&b, "</g>\n")
	}

	fmt.Fprintf(&b, "</svg>\n")
	return b.Bytes(), nil
}

// writeDefs emits <defs> with a base64 PNG <image> per distinct texture
// referenced by a material with pixel data, returning the set of texture
// indices written so the face-fill code knows which ids exist.
func writeDefs(b *bytes.Buffer, pc *papercraft.Papercraft, pages []export.Page, withTextures bool) (map[papercraft.TextureIndex]bool, error) {
	written := map[papercraft.TextureIndex]bool{}
	fmt.Fprintf(b, "<defs>\n")
	if withTextures {
		seen := map[papercraft.TextureIndex]bool{}
		for _, pg := range pages {
			for _, isl := range pg.Islands {
				for _, f := range isl.Faces {
					ti, tex, ok := pc.MaterialTexture(f.Material)
					if !ok || seen[ti] {
						continue
					}
					seen[ti] = true
					data, err := encodePNG(tex)
					if err != nil {
						return nil, err
					}
					fmt.Fprintf(b, "<image id=\"tex_%d\" width=\"%d\" height=\"%d\" "+
						"xlink:href=\"data:image/png;base64,%s\"/>\n",
						ti, tex.Width, tex.Height, base64.StdEncoding.EncodeToString(data))
					written[ti] = true
				}
			}
		}
	}
	fmt.Fprintf(b, "</defs>\n")
	return written, nil
}

// encodePNG rasterizes a Texture's packed RGBA bytes into a PNG.
func encodePNG(tex *papercraft.Texture) ([]byte, error) {
	img := image.NewNRGBA(image.Rect(0, 0, tex.Width, tex.Height))
	copy(img.Pix, tex.Pixels)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode texture png: %w", err)
	}
	return buf.Bytes(), nil
}

// writeNamedView emits the Inkscape multi-page metadata: one
// <inkscape:page> per configured page so Inkscape's page tool lines up
// with the layout this package computed.
func writeNamedView(b *bytes.Buffer, pageCount, cols int, opts papercraft.PaperOptions) {
	fmt.Fprintf(b, "<sodipodi:namedview id=\"namedview1\">\n")
	for p := 0; p < pageCount; p++ {
		ox, oy := grid.PagePosition(p, cols, opts.PageWidth, opts.PageHeight)
		fmt.Fprintf(b, "<inkscape:page x=\"%.4f\" y=\"%.4f\" width=\"%.4f\" height=\"%.4f\"/>\n",
			ox, oy, opts.PageWidth, opts.PageHeight)
	}
	fmt.Fprintf(b, "</sodipodi:namedview>\n")
}

func writePage(b *bytes.Buffer, pc *papercraft.Papercraft, opts papercraft.PaperOptions, pg export.Page, textures map[papercraft.TextureIndex]bool) {
	fmt.Fprintf(b, "<g inkscape:label=\"Faces\" inkscape:groupmode=\"layer\" id=\"faces_%d\">\n", pg.Index)
	for _, isl := range pg.Islands {
		for _, f := range isl.Faces {
			writeFace(b, pc, opts, pg.Index, f, textures)
		}
	}
	fmt.Fprintf(b, "</g>\n")

	fmt.Fprintf(b, "<g inkscape:label=\"Flaps\" inkscape:groupmode=\"layer\" id=\"flaps_%d\">\n", pg.Index)
	for _, isl := range pg.Islands {
		for _, fl := range isl.Flaps {
			if opts.FlapStyle == papercraft.FlapStyleNoneHidden || opts.FlapStyle == papercraft.FlapStyleNone {
				continue
			}
			fmt.Fprintf(b, "<polygon points=\"%s\" fill=\"#d9d9d9\" stroke=\"%s\" stroke-width=\"0.2\"/>\n",
				polyPoints(fl.Quad[:]), hexColor(opts.TabColor))
		}
	}
	fmt.Fprintf(b, "</g>\n")

	fmt.Fprintf(b, "<g inkscape:label=\"Fold-Mountain\" inkscape:groupmode=\"layer\" id=\"foldm_%d\">\n", pg.Index)
	writeFoldLayer(b, pg, papercraft.FoldMountain, opts.FoldColor, "")
	fmt.Fprintf(b, "</g>\n")

	fmt.Fprintf(b, "<g inkscape:label=\"Fold-Valley\" inkscape:groupmode=\"layer\" id=\"foldv_%d\">\n", pg.Index)
	writeFoldLayer(b, pg, papercraft.FoldValley, opts.FoldColor, "1,1")
	fmt.Fprintf(b, "</g>\n")

	fmt.Fprintf(b, "<g inkscape:label=\"Cut\" inkscape:groupmode=\"layer\" id=\"cut_%d\">\n", pg.Index)
	for _, isl := range pg.Islands {
		writeCutContour(b, pc, isl, opts.CutColor)
	}
	fmt.Fprintf(b, "</g>\n")

	fmt.Fprintf(b, "<g inkscape:label=\"Text\" inkscape:groupmode=\"layer\" id=\"text_%d\">\n", pg.Index)
	writeTextBlock(b, pg, opts)
	writeEdgeLabels(b, pg, opts)
	fmt.Fprintf(b, "</g>\n")
}

func writeFoldLayer(b *bytes.Buffer, pg export.Page, dir papercraft.FoldDirection, color papercraft.RGBA, dash string) {
	for _, isl := range pg.Islands {
		for _, e := range isl.Edges {
			if e.Kind != papercraft.EdgeKindJoined || e.Fold != dir {
				continue
			}
			attrs := ""
			if dash != "" {
				attrs = fmt.Sprintf(" stroke-dasharray=\"%s\"", dash)
			}
			fmt.Fprintf(b, "<line x1=\"%.4f\" y1=\"%.4f\" x2=\"%.4f\" y2=\"%.4f\" stroke=\"%s\" stroke-width=\"0.2\"%s/>\n",
				e.P0.X, e.P0.Y, e.P1.X, e.P1.Y, hexColor(color), attrs)
		}
	}
}

// writeCutContour walks each island's perimeter and draws one closed path
// per contour found; flap toggles and the like never change topology here
// since the perimeter is purely geometric (derived from cut-edge status).
func writeCutContour(b *bytes.Buffer, pc *papercraft.Papercraft, isl papercraft.RenderableIsland, color papercraft.RGBA) {
	pts, ok := export.IslandContour(pc, isl)
	if !ok || len(pts) < 2 {
		return
	}
	var path bytes.Buffer
	fmt.Fprintf(&path, "M%.4f,%.4f", pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		fmt.Fprintf(&path, " L%.4f,%.4f", p.X, p.Y)
	}
	fmt.Fprintf(&path, " Z")
	fmt.Fprintf(b, "<path d=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"0.3\"/>\n", path.String(), hexColor(color))
}

func writeTextBlock(b *bytes.Buffer, pg export.Page, opts papercraft.PaperOptions) {
	y := opts.PageHeight - opts.Margins.Bottom/2
	if opts.ShowPageNum {
		label := fmt.Sprintf("%d", pg.Index+1)
		x := opts.PageWidth/2 + export.TextOffset(export.AlignCenter, 8, label)
		fmt.Fprintf(b, "<text x=\"%.4f\" y=\"%.4f\" font-size=\"8\" font-family=\"Helvetica\">%s</text>\n", x, y, label)
	}
	if opts.ShowSignature {
		label := "made with papercraft"
		x := opts.Margins.Left
		fmt.Fprintf(b, "<text x=\"%.4f\" y=\"%.4f\" font-size=\"6\" font-family=\"Helvetica\">%s</text>\n", x, y, label)
	}
}

// writeEdgeLabels draws each cut edge's index at its midpoint, offset along
// the outward normal (Perp of the edge's own P0->P1 tangent) toward Outside
// or against it toward Inside, per PaperOptions.EdgeIDPos/EdgeIDSize.
func writeEdgeLabels(b *bytes.Buffer, pg export.Page, opts papercraft.PaperOptions) {
	if opts.EdgeIDPos == papercraft.EdgeIDNone {
		return
	}
	sign := 1.0
	if opts.EdgeIDPos == papercraft.EdgeIDInside {
		sign = -1
	}
	for _, isl := range pg.Islands {
		for _, e := range isl.Edges {
			if e.Kind != papercraft.EdgeKindCut {
				continue
			}
			tangent := lin.V2{X: e.P1.X - e.P0.X, Y: e.P1.Y - e.P0.Y}
			n := lin.NewV2().Perp(&tangent)
			length := math.Hypot(n.X, n.Y)
			if length == 0 {
				continue
			}
			midX, midY := (e.P0.X+e.P1.X)/2, (e.P0.Y+e.P1.Y)/2
			x := midX + sign*edgeIDOffsetMM*n.X/length
			y := midY + sign*edgeIDOffsetMM*n.Y/length
			fmt.Fprintf(b, "<text x=\"%.4f\" y=\"%.4f\" font-size=\"%.4f\" font-family=\"Helvetica\">%d</text>\n",
				x, y, opts.EdgeIDSize, e.Edge)
		}
	}
}

// writeFace emits one <polygon>, textured (fan-triangulated into one
// <pattern> per triangle) when withTextures resolved pixel data for its
// material, or a flat paper-color fill otherwise.
func writeFace(b *bytes.Buffer, pc *papercraft.Papercraft, opts papercraft.PaperOptions, pageIdx int, f papercraft.RenderableFace, textures map[papercraft.TextureIndex]bool) {
	ti, tex, ok := pc.MaterialTexture(f.Material)
	if !ok || !textures[ti] || len(f.Verts) < 3 {
		fmt.Fprintf(b, "<polygon points=\"%s\" fill=\"%s\" stroke=\"none\"/>\n",
			polyPoints(f.Verts), hexColor(opts.PaperColor))
		return
	}

	for i := 1; i+1 < len(f.Verts); i++ {
		p0, p1, p2 := f.Verts[0], f.Verts[i], f.Verts[i+1]
		u0, u1, u2 := f.UV[0], f.UV[i], f.UV[i+1]
		pixU0 := papercraft.TexturePixelUV(u0, tex.Width, tex.Height)
		pixU1 := papercraft.TexturePixelUV(u1, tex.Width, tex.Height)
		pixU2 := papercraft.TexturePixelUV(u2, tex.Width, tex.Height)
		m := papercraft.UVToPageAffine(pixU0, pixU1, pixU2, p0, p1, p2)
		patID := fmt.Sprintf("pat_%d_%d_%d", pageIdx, f.Index, i)
		if m == nil {
			fmt.Fprintf(b, "<polygon points=\"%s\" fill=\"%s\"/>\n",
				polyPoints([]lin.V2{p0, p1, p2}), hexColor(opts.PaperColor))
			continue
		}
		fmt.Fprintf(b, "<pattern id=\"%s\" patternUnits=\"userSpaceOnUse\" width=\"%d\" height=\"%d\" "+
			"patternTransform=\"matrix(%.6f,%.6f,%.6f,%.6f,%.6f,%.6f)\">\n",
			patID, tex.Width, tex.Height, m.A, m.B, m.C, m.D, m.E, m.F)
		fmt.Fprintf(b, "<use xlink:href=\"#tex_%d\"/>\n", ti)
		fmt.Fprintf(b, "</pattern>\n")
		fmt.Fprintf(b, "<polygon points=\"%s\" fill=\"url(#%s)\"/>\n", polyPoints([]lin.V2{p0, p1, p2}), patID)
	}
}

func polyPoints(verts []lin.V2) string {
	var b bytes.Buffer
	for i, v := range verts {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.4f,%.4f", v.X, v.Y)
	}
	return b.String()
}

func hexColor(c papercraft.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", clamp255(c.R), clamp255(c.G), clamp255(c.B))
}

func clamp255(v float64) int {
	n := int(v*255 + 0.5)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}
