// Copyright © 2024 Galvanized Logic Inc.

// Package grid lays out pages on the conceptual multi-page canvas
// (component H) and bin-packs islands onto those pages (component D').
// Rewritten from the teacher's maze/dungeon page-grid generators into an
// axis-aligned layout grid: same "divide a canvas into addressable cells"
// shape, different cell contents.
package grid

import "math"

// Gap is the fixed separator, in millimeters, between adjacent pages both
// horizontally and vertically on the conceptual canvas (4.H).
const Gap = 10

// PagePosition returns the top-left offset, in global canvas millimeters,
// of page p within a cols-wide page grid of pageW x pageH pages.
func PagePosition(p, cols int, pageW, pageH float64) (ox, oy float64) {
	if cols < 1 {
		cols = 1
	}
	row, col := p/cols, p%cols
	return float64(col) * (pageW + Gap), float64(row) * (pageH + Gap)
}

// GlobalToPage returns the page-grid row and column containing the global
// point (x, y).
func GlobalToPage(x, y, pageW, pageH float64) (row, col int) {
	row = int(math.Floor(y / (pageH + Gap)))
	col = int(math.Floor(x / (pageW + Gap)))
	return
}

// WidenCols returns the column count needed so that column maxCol is not
// wrapped incorrectly: max(cols, maxCol+1). Used during export when an
// island's center falls past the configured page_cols (4.H).
func WidenCols(cols, maxCol int) int {
	if maxCol+1 > cols {
		return maxCol + 1
	}
	return cols
}
