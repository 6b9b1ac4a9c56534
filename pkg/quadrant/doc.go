// Package quadrant implements the quadrant board: a book of pages, each split
// into four fixed regions, fed from a pool of unplaced exhibits.
//
// # Regions
//
// Regions are laid out two by two. Region1 and Region2 share the top row,
// Region3 and Region4 the bottom row; each row forms a pair whose left region
// is the anchor:
//
//	+---------+---------+
//	| quad1 * | quad2   |
//	+---------+---------+
//	| quad3 * | quad4   |
//	+---------+---------+
//	          * anchor
//
// A region holds at most one exhibit. A FULLPAGE exhibit may only sit in an
// anchor whose pair is empty; while it is there the pair is [StateDisabled].
//
// # Acceptance
//
// [Page.CanAccept] is the single decision function for drops. It accepts an
// exhibit of a layout class into a region when the region is [StateEmpty] and,
// for FULLPAGE, the region is an anchor with an empty pair. A FULLPAGE drop on
// an anchor whose pair holds an exhibit is rejected; nothing is evicted.
//
// # Book
//
// [Book] owns the pages and the [Pool]. Placing moves an exhibit from the
// pool to a region of the current page, removing returns it to the pool, and
// moving relocates it between regions of the current page. Rejected intents
// leave pages and pool exactly as they were.
package quadrant
