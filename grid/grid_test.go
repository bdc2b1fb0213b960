// Copyright © 2024 Galvanized Logic Inc.

package grid

import "testing"

func TestPagePositionOrigin(t *testing.T) {
	ox, oy := PagePosition(0, 2, 210, 297)
	if ox != 0 || oy != 0 {
		t.Errorf("PagePosition(0,...) = (%v,%v), want (0,0)", ox, oy)
	}
}

func TestPagePositionAdvancesByGap(t *testing.T) {
	ox, oy := PagePosition(1, 2, 210, 297)
	if ox != 210+Gap || oy != 0 {
		t.Errorf("PagePosition(1, cols=2) = (%v,%v), want (%v,0)", ox, oy, 210+float64(Gap))
	}
}

func TestPagePositionWrapsToNextRow(t *testing.T) {
	ox, oy := PagePosition(2, 2, 210, 297)
	if ox != 0 || oy != 297+Gap {
		t.Errorf("PagePosition(2, cols=2) = (%v,%v), want (0,%v)", ox, oy, 297+float64(Gap))
	}
}

func TestPagePositionClampsColsBelowOne(t *testing.T) {
	ox, oy := PagePosition(1, 0, 210, 297)
	if ox != 0 || oy != 297+Gap {
		t.Errorf("PagePosition(1, cols=0) = (%v,%v), want cols treated as 1: (0,%v)", ox, oy, 297+float64(Gap))
	}
}

func TestGlobalToPageRoundTripsPagePosition(t *testing.T) {
	for _, p := range []int{0, 1, 2, 3} {
		ox, oy := PagePosition(p, 2, 210, 297)
		row, col := GlobalToPage(ox+1, oy+1, 210, 297)
		wantRow, wantCol := p/2, p%2
		if row != wantRow || col != wantCol {
			t.Errorf("page %d: GlobalToPage(%v,%v) = (%d,%d), want (%d,%d)", p, ox, oy, row, col, wantRow, wantCol)
		}
	}
}

func TestWidenColsKeepsWiderValue(t *testing.T) {
	if got := WidenCols(4, 1); got != 4 {
		t.Errorf("WidenCols(4,1) = %d, want 4", got)
	}
}

func TestWidenColsGrowsForOverflow(t *testing.T) {
	if got := WidenCols(2, 4); got != 5 {
		t.Errorf("WidenCols(2,4) = %d, want 5", got)
	}
}
