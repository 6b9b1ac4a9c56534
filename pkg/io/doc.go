// Package io provides JSON import and export for boards and event logs.
//
// # Board Documents
//
// A document describes one board. The "variant" field selects the shape:
//
//	{
//	  "variant": "grid",
//	  "grid": {"columns": 12, "min_width": 6, ...},
//	  "items": [
//	    {"id": "a", "kind": "table", "title": "Sales",
//	     "position": {"row": 0, "column": 0, "width": 6},
//	     "size": {"width": 400, "height": 300},
//	     "data": {"columns": [...], "rows": [...]}}
//	  ]
//	}
//
//	{
//	  "variant": "quadrant",
//	  "current": 0,
//	  "pool": [{"id": "4", "kind": "table", "title": "Item 4", "layout": "QUAD"}],
//	  "pages": [{"placements": [{"region": "quad1", "exhibit": {...}}]}]
//	}
//
// Reading re-validates everything the stores enforce: unique ids, in-bounds
// non-overlapping grid positions, payloads that match their kind, and region
// constraints. Exporting a board and importing it again reproduces identical
// positions, kinds and data.
//
// Use [WriteGrid]/[ReadGrid] and [WriteBook]/[ReadBook] on streams,
// [ExportGrid]/[ImportGrid] and friends on files, or [ReadDocument] when the
// variant is not known in advance.
//
// # Event Logs
//
// [ReadEvents] accepts either a JSON array of events or one JSON event per
// line. [WriteEvents] writes one event per line.
package io
