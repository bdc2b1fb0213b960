// Copyright © 2024 Galvanized Logic Inc.

package grid

import "testing"

func TestPackSingleItemAtOrigin(t *testing.T) {
	items := []Item{{Key: 1, W: 50, H: 30, MinX: 0, MinY: 0}}
	slots := Pack(items, 200, 200)
	if len(slots) != 1 {
		t.Fatalf("len(slots) = %d, want 1", len(slots))
	}
	s := slots[0]
	if s.Page != 0 || s.DX != 0 || s.DY != 0 {
		t.Errorf("slot = %+v, want page 0 at (0,0)", s)
	}
}

func TestPackOrdersByHeightThenWidthThenKey(t *testing.T) {
	items := []Item{
		{Key: 3, W: 10, H: 10},
		{Key: 1, W: 10, H: 30},
		{Key: 2, W: 20, H: 30},
	}
	slots := Pack(items, 1000, 1000)
	// Expected placement order: key 1 (H30,W10) and key 2 (H30,W20) tie on
	// height, key 2 sorts first on width; then key 3 (H10).
	order := map[uint32]int{}
	for i, s := range slots {
		order[s.Key] = i
	}
	if order[2] != 0 || order[1] != 1 || order[3] != 2 {
		t.Errorf("placement order = %v, want key 2, then 1, then 3", order)
	}
}

func TestPackWrapsRowWhenWidthExceeded(t *testing.T) {
	items := []Item{
		{Key: 1, W: 60, H: 10},
		{Key: 2, W: 60, H: 10},
	}
	slots := Pack(items, 100, 1000) // only one 60-wide item fits per row.
	byKey := map[uint32]Slot{}
	for _, s := range slots {
		byKey[s.Key] = s
	}
	if byKey[1].DY != 0 {
		t.Errorf("first item DY = %v, want 0", byKey[1].DY)
	}
	if byKey[2].DY == byKey[1].DY {
		t.Errorf("second item should wrap to a new row: DY %v == first item's DY %v", byKey[2].DY, byKey[1].DY)
	}
	if byKey[2].Page != byKey[1].Page {
		t.Errorf("wrapping rows should stay on the same page, got pages %d and %d", byKey[1].Page, byKey[2].Page)
	}
}

func TestPackWrapsPageWhenHeightExceeded(t *testing.T) {
	// contentW forces each item onto its own row (no room for two side by
	// side); once on separate rows, the second row's height overflows
	// contentH and the item moves to a new page.
	items := []Item{
		{Key: 1, W: 10, H: 60},
		{Key: 2, W: 10, H: 60},
	}
	slots := Pack(items, 10, 100)
	byKey := map[uint32]Slot{}
	for _, s := range slots {
		byKey[s.Key] = s
	}
	if byKey[1].Page != 0 {
		t.Errorf("first item page = %d, want 0", byKey[1].Page)
	}
	if byKey[2].Page != 1 {
		t.Errorf("second item page = %d, want 1 (its row overflowed contentH)", byKey[2].Page)
	}
}

func TestPackDeltaMovesItemsOwnMinCornerToSlot(t *testing.T) {
	// An item whose own bbox min corner is not at its local origin should
	// get a delta that accounts for the offset.
	items := []Item{{Key: 1, W: 10, H: 10, MinX: 5, MinY: 7}}
	slots := Pack(items, 100, 100)
	s := slots[0]
	if s.DX != -5 || s.DY != -7 {
		t.Errorf("slot delta = (%v,%v), want (-5,-7) to move MinX/MinY to the origin slot", s.DX, s.DY)
	}
}

func TestPackEmptyInput(t *testing.T) {
	if slots := Pack(nil, 100, 100); len(slots) != 0 {
		t.Errorf("Pack(nil,...) = %v, want empty", slots)
	}
}
