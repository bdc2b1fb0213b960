// Copyright © 2024 Galvanized Logic Inc.

package grid

import "sort"

// Item is one island's axis-aligned bounding box at rotation 0, as input
// to Pack (4.D' pack_islands). MinX/MinY is the bbox's own minimum corner
// in whatever frame the caller measured it, used to compute the
// translation delta needed to move that corner to its assigned slot.
type Item struct {
	Key        uint32
	W, H       float64
	MinX, MinY float64
}

// Slot is where Pack placed one Item: a page index and the translation
// to apply (in the island's original frame) so its bbox's min corner
// lands at the slot's content-relative position.
type Slot struct {
	Key  uint32
	Page int
	DX   float64
	DY   float64
}

// Pack bin-packs items into pages of contentW x contentH (page size minus
// margins) using first-fit-decreasing row packing: items are sorted by
// height descending, then width descending, then Key ascending (the
// deterministic tie-break 4.D' requires), then placed left-to-right in
// rows, wrapping to a new row when a row would overflow contentW and to a
// new page when a page would overflow contentH.
func Pack(items []Item, contentW, contentH float64) []Slot {
	sorted := append([]Item(nil), items...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].H != sorted[j].H {
			return sorted[i].H > sorted[j].H
		}
		if sorted[i].W != sorted[j].W {
			return sorted[i].W > sorted[j].W
		}
		return sorted[i].Key < sorted[j].Key
	})

	slots := make([]Slot, 0, len(sorted))
	page := 0
	cursorX, rowY, rowH := 0.0, 0.0, 0.0
	for _, it := range sorted {
		if cursorX > 0 && cursorX+it.W > contentW {
			cursorX = 0
			rowY += rowH
			rowH = 0
		}
		if rowY > 0 && rowY+it.H > contentH {
			page++
			cursorX, rowY, rowH = 0, 0, 0
		}
		slots = append(slots, Slot{
			Key:  it.Key,
			Page: page,
			DX:   cursorX - it.MinX,
			DY:   rowY - it.MinY,
		})
		cursorX += it.W
		if it.H > rowH {
			rowH = it.H
		}
	}
	return slots
}
