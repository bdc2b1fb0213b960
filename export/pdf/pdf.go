// Copyright © 2024 Galvanized Logic Inc.

// Package pdf renders a Papercraft project to a PDF 1.4 document (spec.md
// §4.L): one page per configured page, raw tiling-Pattern XObjects for
// textured faces, a hand-rolled object table and cross-reference section.
// Grounded on the low-level object/offset/xref bookkeeping shape common to
// from-scratch PDF writers in the retrieval pack, not a wrapper library —
// §4.L's tiling patterns and raw image XObjects need direct control over
// PDF internals that a high-level PDF library does not expose a path to.
package pdf

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"math"

	"github.com/gazed/papercraft"
	"github.com/gazed/papercraft/export"
	"github.com/gazed/papercraft/math/lin"
)

const mmToPt = 72.0 / 25.4

// edgeIDOffsetMM is how far an edge-id label is pushed off the cut line
// along the edge's outward normal (spec.md supplement: "a few mm").
const edgeIDOffsetMM = 2.0

// writer accumulates PDF objects and their byte offsets so the trailing
// cross-reference table can point back at each one.
type writer struct {
	buf     bytes.Buffer
	offsets []int
}

func newWriter() *writer {
	w := &writer{}
	fmt.Fprintf(&w.buf, "%%PDF-1.4\n%%\xe2\xe3\xcf\xd3\n")
	return w
}

// newobj reserves the next object number and records its starting offset;
// the caller writes the object body and must finish with "endobj".
func (w *writer) newobj() int {
	w.offsets = append(w.offsets, w.buf.Len())
	id := len(w.offsets)
	fmt.Fprintf(&w.buf, "%d 0 obj\n", id)
	return id
}

func (w *writer) outf(format string, args ...any) { fmt.Fprintf(&w.buf, format, args...) }

func (w *writer) endobj() { fmt.Fprintf(&w.buf, "endobj\n") }

// finish writes the cross-reference table, trailer, and EOF marker and
// returns the complete document bytes.
func (w *writer) finish(rootObj int, infoObj int) []byte {
	xrefStart := w.buf.Len()
	fmt.Fprintf(&w.buf, "xref\n0 %d\n", len(w.offsets)+1)
	fmt.Fprintf(&w.buf, "0000000000 65535 f \n")
	for _, off := range w.offsets {
		fmt.Fprintf(&w.buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&w.buf, "trailer\n<< /Size %d /Root %d 0 R /Info %d 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(w.offsets)+1, rootObj, infoObj, xrefStart)
	return w.buf.Bytes()
}

// Generate renders pc's current project to a PDF document. withTextures
// mirrors svg.Generate: false paints every face with the plain paper color.
func Generate(pc *papercraft.Papercraft, withTextures bool) ([]byte, error) {
	rp, err := pc.Renderable()
	if err != nil {
		return nil, err
	}
	opts := pc.Options()
	pages := export.Paginate(rp, opts)

	w := newWriter()

	fontObj := w.newobj()
	w.outf("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\n")
	w.endobj()

	imgObjs, patObjs, err := writeTextureObjects(w, pc, pages, withTextures)
	if err != nil {
		return nil, err
	}

	resourcesObj := w.newobj()
	writeResourcesDict(w, imgObjs, patObjs, fontObj)
	w.endobj()

	pageCount := opts.Pages
	byIndex := map[int]export.Page{}
	for _, pg := range pages {
		byIndex[pg.Index] = pg
		if pg.Index+1 > pageCount {
			pageCount = pg.Index + 1
		}
	}

	// Every page (configured, or reached by an island) contributes exactly
	// two objects (page dict, content stream), laid out back to back right
	// after the resources dict; the Pages dict itself, written only once
	// every Kid is known, therefore lands at resourcesObj + 2*pageCount + 1.
	// Computing that up front lets each page dict's /Parent reference it
	// before it exists on disk. A page with no islands is emitted blank.
	pagesObj := resourcesObj + 2*pageCount + 1

	var kids []int
	for idx := 0; idx < pageCount; idx++ {
		pg, ok := byIndex[idx]
		if !ok {
			pg = export.Page{Index: idx}
		}
		widthPt := opts.PageWidth * mmToPt
		heightPt := opts.PageHeight * mmToPt
		content := renderPageContent(pc, opts, pg, imgObjs, patObjs, heightPt)

		pageObj := w.newobj()
		contentObj := pageObj + 1
		w.outf("<< /Type /Page /Parent %d 0 R /MediaBox [0 0 %.4f %.4f] "+
			"/Resources %d 0 R /Contents %d 0 R >>\n", pagesObj, widthPt, heightPt, resourcesObj, contentObj)
		w.endobj()

		w.newobj()
		w.outf("<< /Length %d >>\nstream\n", len(content))
		w.buf.Write(content)
		w.outf("\nendstream\n")
		w.endobj()

		kids = append(kids, pageObj)
	}

	w.newobj()
	w.outf("<< /Type /Pages /Kids [")
	for i, k := range kids {
		if i > 0 {
			w.outf(" ")
		}
		w.outf("%d 0 R", k)
	}
	w.outf("] /Count %d >>\n", len(kids))
	w.endobj()

	rootObj := w.newobj()
	w.outf("<< /Type /Catalog /Pages %d 0 R >>\n", pagesObj)
	w.endobj()

	infoObj := w.newobj()
	w.outf("<< /Producer (papercraft) /CreationDate (D:19700101000000Z) >>\n")
	w.endobj()

	return w.finish(rootObj, infoObj), nil
}

func flate(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("flate content stream: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("flate content stream: %w", err)
	}
	return buf.Bytes(), nil
}

// writeTextureObjects emits one Image XObject and one tiling Pattern per
// distinct texture referenced by a material with pixel data (§4.L step 2).
func writeTextureObjects(w *writer, pc *papercraft.Papercraft, pages []export.Page, withTextures bool) (map[papercraft.TextureIndex]int, map[papercraft.TextureIndex]int, error) {
	imgObjs := map[papercraft.TextureIndex]int{}
	patObjs := map[papercraft.TextureIndex]int{}
	if !withTextures {
		return imgObjs, patObjs, nil
	}

	seen := map[papercraft.TextureIndex]bool{}
	for _, pg := range pages {
		for _, isl := range pg.Islands {
			for _, f := range isl.Faces {
				ti, tex, ok := pc.MaterialTexture(f.Material)
				if !ok || seen[ti] {
					continue
				}
				seen[ti] = true

				rgb := stripAlpha(tex.Pixels, tex.Width, tex.Height)
				compressed, err := flate(rgb)
				if err != nil {
					return nil, nil, err
				}

				imgObj := w.newobj()
				w.outf("<< /Type /XObject /Subtype /Image /Width %d /Height %d /ColorSpace /DeviceRGB "+
					"/BitsPerComponent 8 /Filter /FlateDecode /Length %d >>\nstream\n", tex.Width, tex.Height, len(compressed))
				w.buf.Write(compressed)
				w.outf("\nendstream\n")
				w.endobj()
				imgObjs[ti] = imgObj

				patContent := []byte(fmt.Sprintf("q %d 0 0 %d 0 0 cm /Im%d Do Q", tex.Width, tex.Height, ti))
				patObj := w.newobj()
				w.outf("<< /Type /Pattern /PatternType 1 /PaintType 1 /TilingType 1 "+
					"/BBox [0 0 %d %d] /XStep %d /YStep %d /Resources << /XObject << /Im%d %d 0 R >> >> "+
					"/Length %d >>\nstream\n%s\nendstream\n",
					tex.Width, tex.Height, tex.Width, tex.Height, ti, imgObj, len(patContent), patContent)
				w.endobj()
				patObjs[ti] = patObj
			}
		}
	}
	return imgObjs, patObjs, nil
}

func stripAlpha(rgba []byte, w, h int) []byte {
	out := make([]byte, 0, w*h*3)
	for i := 0; i+3 < len(rgba); i += 4 {
		out = append(out, rgba[i], rgba[i+1], rgba[i+2])
	}
	return out
}

func writeResourcesDict(w *writer, imgObjs, patObjs map[papercraft.TextureIndex]int, fontObj int) {
	w.outf("<< /Font << /F1 %d 0 R >>", fontObj)
	if len(imgObjs) > 0 {
		w.outf(" /XObject <<")
		for ti, obj := range imgObjs {
			w.outf(" /Im%d %d 0 R", ti, obj)
		}
		w.outf(" >>")
	}
	if len(patObjs) > 0 {
		w.outf(" /Pattern <<")
		for ti, obj := range patObjs {
			w.outf(" /Pat%d %d 0 R", ti, obj)
		}
		w.outf(" >>")
	}
	w.outf(" >>\n")
}

// renderPageContent builds the content stream for one page: faces (pattern
// or flat-filled), fold/flap strokes, the perimeter cut path, then text
// (§4.L step order). pdfY flips mm-down-from-top into PDF's up-from-bottom
// point space.
func renderPageContent(pc *papercraft.Papercraft, opts papercraft.PaperOptions, pg export.Page, imgObjs, patObjs map[papercraft.TextureIndex]int, heightPt float64) []byte {
	var c bytes.Buffer
	pdfY := func(y float64) float64 { return heightPt - y*mmToPt }

	for _, isl := range pg.Islands {
		for _, f := range isl.Faces {
			ti, tex, ok := pc.MaterialTexture(f.Material)
			_, hasPat := patObjs[ti]
			if ok && hasPat && len(f.Verts) >= 3 {
				writeTexturedFace(&c, f, tex, ti, opts, heightPt, pdfY)
				continue
			}
			setFillRGB(&c, opts.PaperColor)
			writePolygonPath(&c, f.Verts, pdfY)
			fmt.Fprintf(&c, "f\n")
		}
	}

	setStrokeRGB(&c, opts.TabColor)
	fmt.Fprintf(&c, "0.2 w\n")
	for _, isl := range pg.Islands {
		for _, fl := range isl.Flaps {
			if opts.FlapStyle == papercraft.FlapStyleNone || opts.FlapStyle == papercraft.FlapStyleNoneHidden {
				continue
			}
			writePolygonPath(&c, fl.Quad[:], pdfY)
			fmt.Fprintf(&c, "S\n")
		}
	}

	setStrokeRGB(&c, opts.FoldColor)
	for _, isl := range pg.Islands {
		for _, e := range isl.Edges {
			if e.Kind != papercraft.EdgeKindJoined {
				continue
			}
			if e.Fold == papercraft.FoldValley {
				fmt.Fprintf(&c, "[1 1] 0 d\n")
			} else {
				fmt.Fprintf(&c, "[] 0 d\n")
			}
			fmt.Fprintf(&c, "%.4f %.4f m %.4f %.4f l S\n",
				e.P0.X*mmToPt, pdfY(e.P0.Y), e.P1.X*mmToPt, pdfY(e.P1.Y))
		}
	}
	fmt.Fprintf(&c, "[] 0 d\n")

	setStrokeRGB(&c, opts.CutColor)
	for _, isl := range pg.Islands {
		pts, ok := export.IslandContour(pc, isl)
		if !ok || len(pts) < 2 {
			continue
		}
		fmt.Fprintf(&c, "%.4f %.4f m\n", pts[0].X*mmToPt, pdfY(pts[0].Y))
		for _, p := range pts[1:] {
			fmt.Fprintf(&c, "%.4f %.4f l\n", p.X*mmToPt, pdfY(p.Y))
		}
		fmt.Fprintf(&c, "h S\n")
	}

	writeTextBlock(&c, pg, opts, pdfY)
	writeEdgeLabels(&c, pg, opts, pdfY)

	return c.Bytes()
}

// writeEdgeLabels draws each cut edge's index at its midpoint, offset along
// the outward normal (Perp of the edge's own P0->P1 tangent) toward Outside
// or against it toward Inside, per PaperOptions.EdgeIDPos/EdgeIDSize.
func writeEdgeLabels(c *bytes.Buffer, pg export.Page, opts papercraft.PaperOptions, pdfY func(float64) float64) {
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
			writeText(c, fmt.Sprintf("%d", e.Edge), x, y, opts.EdgeIDSize, pdfY)
		}
	}
}

// writeTexturedFace fan-triangulates f (§4.L step 1) and, per triangle,
// solves the UV→page affine (component J) and bakes the mm→pt scale and
// Y-flip into it (b'=-b·k, d'=-d·k, f'=(H-f)·k, k=mmToPt) so a single `cm`
// maps the pattern's pixel space directly onto the triangle in PDF point
// space, mirroring export/svg's per-triangle patternTransform. A degenerate
// triangle (nil affine, already logged by the solver) falls back to a flat
// paper-color fill so the page still shows the face's outline.
func writeTexturedFace(c *bytes.Buffer, f papercraft.RenderableFace, tex *papercraft.Texture, ti papercraft.TextureIndex, opts papercraft.PaperOptions, heightPt float64, pdfY func(float64) float64) {
	for i := 1; i+1 < len(f.Verts); i++ {
		p0, p1, p2 := f.Verts[0], f.Verts[i], f.Verts[i+1]
		u0, u1, u2 := f.UV[0], f.UV[i], f.UV[i+1]
		pixU0 := papercraft.TexturePixelUV(u0, tex.Width, tex.Height)
		pixU1 := papercraft.TexturePixelUV(u1, tex.Width, tex.Height)
		pixU2 := papercraft.TexturePixelUV(u2, tex.Width, tex.Height)
		m := papercraft.UVToPageAffine(pixU0, pixU1, pixU2, p0, p1, p2)
		if m == nil {
			setFillRGB(c, opts.PaperColor)
			writePolygonPath(c, []lin.V2{p0, p1, p2}, pdfY)
			fmt.Fprintf(c, "f\n")
			continue
		}

		k := mmToPt
		a, b := k*m.A, -k*m.B
		cc, d := k*m.C, -k*m.D
		e, ff := k*m.E, heightPt-k*m.F
		fmt.Fprintf(c, "q %.6f %.6f %.6f %.6f %.6f %.6f cm /Pattern cs /Pat%d scn\n", a, b, cc, d, e, ff, ti)
		fmt.Fprintf(c, "%.4f %.4f m %.4f %.4f l %.4f %.4f l h\n", pixU0.X, pixU0.Y, pixU1.X, pixU1.Y, pixU2.X, pixU2.Y)
		fmt.Fprintf(c, "f Q\n")
	}
}

func writePolygonPath(c *bytes.Buffer, verts []lin.V2, pdfY func(float64) float64) {
	for i, v := range verts {
		op := "l"
		if i == 0 {
			op = "m"
		}
		fmt.Fprintf(c, "%.4f %.4f %s\n", v.X*mmToPt, pdfY(v.Y), op)
	}
	fmt.Fprintf(c, "h\n")
}

func setFillRGB(c *bytes.Buffer, rgb papercraft.RGBA)   { fmt.Fprintf(c, "%.4f %.4f %.4f rg\n", rgb.R, rgb.G, rgb.B) }
func setStrokeRGB(c *bytes.Buffer, rgb papercraft.RGBA) { fmt.Fprintf(c, "%.4f %.4f %.4f RG\n", rgb.R, rgb.G, rgb.B) }

func writeTextBlock(c *bytes.Buffer, pg export.Page, opts papercraft.PaperOptions, pdfY func(float64) float64) {
	y := opts.PageHeight - opts.Margins.Bottom/2
	if opts.ShowPageNum {
		label := fmt.Sprintf("%d", pg.Index+1)
		size := 8.0
		x := opts.PageWidth/2 + export.TextOffset(export.AlignCenter, size, label)
		writeText(c, label, x, y, size, pdfY)
	}
	if opts.ShowSignature {
		writeText(c, "made with papercraft", opts.Margins.Left, y, 6, pdfY)
	}
}

func writeText(c *bytes.Buffer, text string, xmm, ymm, sizePt float64, pdfY func(float64) float64) {
	fmt.Fprintf(c, "BT /F1 %.4f Tf %.4f %.4f Td (%s) Tj ET\n",
		sizePt, xmm*mmToPt, pdfY(ymm), escapeText(text))
}

func escapeText(s string) string {
	var b bytes.Buffer
	for _, r := range s {
		switch r {
		case '(', ')', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
