package grid

import (
	"math"
	"slices"
)

// Position is a horizontal span of grid columns on one row.
type Position struct {
	Row    int `json:"row"`
	Column int `json:"column"`
	Width  int `json:"width"`
}

// End returns the column just past the span.
func (p Position) End() int { return p.Column + p.Width }

// Overlaps reports whether p and q share at least one cell.
func (p Position) Overlaps(q Position) bool {
	return p.Row == q.Row && p.Column < q.End() && q.Column < p.End()
}

// Size is an item's pixel size.
type Size struct {
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
}

// FindAvailablePosition returns the first position, scanning rows from 0 and
// columns left to right, where requiredWidth free columns are contiguous.
// requiredWidth is clamped to [1, columns]. The result is deterministic for a
// given occupancy.
func FindAvailablePosition(items []Item, requiredWidth, columns int) Position {
	return findAvailable(items, requiredWidth, columns, "")
}

// findAvailable is FindAvailablePosition ignoring the item with id skip.
func findAvailable(items []Item, requiredWidth, columns int, skip string) Position {
	if columns < 1 {
		columns = 1
	}
	requiredWidth = max(1, min(requiredWidth, columns))

	// Every item can block at most one row, so a free row exists at or
	// below len(items).
	for row := 0; row <= len(items); row++ {
		occupied := rowOccupancy(items, row, columns, skip)
		start, run := -1, 0
		for col := 0; col < columns; col++ {
			if occupied[col] {
				start, run = -1, 0
				continue
			}
			if start == -1 {
				start = col
			}
			run++
			if run >= requiredWidth {
				return Position{Row: row, Column: start, Width: requiredWidth}
			}
		}
	}
	return Position{Row: len(items), Column: 0, Width: requiredWidth}
}

// rowOccupancy marks the columns of row taken by items other than skip.
func rowOccupancy(items []Item, row, columns int, skip string) []bool {
	occupied := make([]bool, columns)
	for _, it := range items {
		if it.ID == skip || it.Position.Row != row {
			continue
		}
		for c := max(0, it.Position.Column); c < min(columns, it.Position.End()); c++ {
			occupied[c] = true
		}
	}
	return occupied
}

// Quantize converts a pixel width to a number of grid columns.
func Quantize(pixelWidth, columnPixelWidth, gap float64) int {
	unit := columnPixelWidth + gap
	if unit <= 0 {
		return 0
	}
	return int(math.Round(pixelWidth / unit))
}

// ClampWidth bounds a quantized width for an item starting at column.
// The lower bound is minWidth, the upper bound is the space left on the row;
// the upper bound wins when they conflict, and the result is at least 1.
func ClampWidth(width, column, minWidth, columns int) int {
	upper := columns - column
	w := max(width, minWidth)
	w = min(w, upper)
	return max(w, 1)
}

// SortRowMajor orders items top-to-bottom, then left-to-right. Items on the
// same cell keep their relative order.
func SortRowMajor(items []Item) {
	slices.SortStableFunc(items, func(a, b Item) int {
		if a.Position.Row != b.Position.Row {
			return a.Position.Row - b.Position.Row
		}
		return a.Position.Column - b.Position.Column
	})
}
