// Package grid implements the free-grid board: a single canvas with a fixed
// number of columns and an unbounded number of rows.
//
// # Placement
//
// [FindAvailablePosition] is a deterministic first-fit, row-major,
// left-to-right heuristic. Starting at row 0 it builds an occupancy array of
// the row's columns and returns the first run of free columns long enough for
// the requested width. If no row has room the row index keeps growing: rows
// are never exhausted, so placement cannot fail.
//
//	occupied 0-5, free 6-11, width 6  ->  {row 0, column 6, width 6}
//	row 0 full,                width 6  ->  {row 1, column 0, width 6}
//
// The requested width is clamped to [1, Columns] only. MinColumnWidth applies
// to resizing, so added, imported and patched items may be narrower.
//
// # Store
//
// [Store] is the single source of truth for the items on a canvas. It owns
// position assignment: callers describe intents (add, update, relocate,
// resize, remove) and the store decides. Every mutating method returns a
// [Change] reporting whether the intent was applied, and every applied change
// is pushed to subscribers as a [Snapshot]. Rejected intents leave state
// untouched.
//
// Invariants held by the store:
//   - no two items on the same row have intersecting column ranges
//   - every item lies inside [0, Columns)
//   - item ids are unique and never change
//
// # Resizing
//
// A pixel width is re-quantized to columns with
// round(pixelWidth / (columnPixelWidth + gap)) and clamped to
// [MinColumnWidth, Columns - column]. The column offset of an item never
// changes on resize; when the remaining space is smaller than MinColumnWidth
// the upper bound wins, and a resize never grows into a neighbour on the same
// row.
package grid
