// Copyright © 2024 Galvanized Logic Inc.

// Package export holds the pieces shared by the SVG and PDF emitters
// (subpackages svg and pdf): text alignment and page-assignment of a
// Papercraft's renderable geometry. Rewritten from the teacher's form.go,
// which divides a 2D area into named sections the same way this divides a
// text run into an anchor-relative offset.
package export

// TextAlign selects how a text block is anchored relative to its x position.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// charWidthHeuristic approximates a Helvetica glyph's advance width as a
// fraction of point size, per spec.md §4.L (no font metrics are embedded).
const charWidthHeuristic = 0.5

// TextOffset returns the x shift to apply to a text run's anchor so that,
// once shifted, the run is aligned per align: Left shifts nothing, Center
// shifts back by half the estimated run width, Right shifts back by the
// whole estimated run width.
func TextOffset(align TextAlign, sizePt float64, text string) float64 {
	width := charWidthHeuristic * sizePt * float64(len(text))
	switch align {
	case AlignCenter:
		return -width / 2
	case AlignRight:
		return -width
	default:
		return 0
	}
}
