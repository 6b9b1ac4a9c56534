// Package pkg provides the core libraries for Exhibitboard report layouts.
//
// # Overview
//
// Exhibitboard places report exhibits (tables, charts and images) on a page
// and exports the result. Two layout variants are supported:
//
//  1. [grid] - A 12 column canvas with first-fit placement and column-snapped
//     resizing.
//  2. [quadrant] - A multi-page book where every page is split into four
//     regions and full-page exhibits claim a whole row pair.
//
// # Architecture
//
// The typical data flow through Exhibitboard:
//
//	Palette / Source pool ([exhibit])
//	         ↓
//	    [board] events (place, move, resize, delete, pages)
//	         ↓
//	    [grid] store or [quadrant] book
//	         ↓
//	    [export] (summary, sheets, SVG/PDF/PNG/JSON)
//
// # Quick Start
//
// Place two exhibits on a grid and render the report:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/exhibitboard/pkg/board"
//	    "github.com/matzehuels/exhibitboard/pkg/exhibit"
//	    "github.com/matzehuels/exhibitboard/pkg/export"
//	    "github.com/matzehuels/exhibitboard/pkg/grid"
//	)
//
//	// 1. Create a canvas and a handler
//	store, _ := grid.NewStore(grid.DefaultConfig())
//	cat := exhibit.DefaultCatalog()
//	h := board.NewGridHandler(store, cat, nil)
//
//	// 2. Drop exhibits from the palette
//	for _, e := range cat.All()[:2] {
//	    h.Handle(ctx, board.PlaceNewItem(e, "", 0))
//	}
//
//	// 3. Export
//	doc := export.FromGrid(store.Items(), export.DefaultPageConfig())
//	svg, _ := export.Render(ctx, doc, export.FormatSVG)
//
// # Main Packages
//
// ## Layout
//
// [exhibit] - Exhibit kinds, layout classes, typed payloads and the default
// palette.
//
// [grid] - Item store for the grid variant. Positions are quantized to
// columns, never overlap and are always within the canvas.
//
// [quadrant] - Pages, regions and the source pool for the quadrant variant.
// A FULLPAGE exhibit occupies an anchor and disables its pair.
//
// [board] - Typed board events and handlers that apply them to either
// variant, reporting an [board.Outcome] per event.
//
// ## Output
//
// [export] - Textual summaries, row-major entries, pagination into sheets and
// rendering to SVG, PDF, PNG and JSON.
//
// [io] - JSON board documents and event streams.
//
// ## Infrastructure
//
// [cache] - Artifact caching with file, Redis and null backends.
//
// [config] - TOML configuration for geometry, export, cache and preview.
//
// [preview] - HTTP server that renders the board on request.
//
// [observability] - Hooks for board events, exports, cache access and HTTP.
//
// [errors] - Coded errors shared by every package.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/quadrant/...  # Specific package
//	go test -run Example        # Examples only
//
// [exhibit]: https://pkg.go.dev/github.com/matzehuels/exhibitboard/pkg/exhibit
// [grid]: https://pkg.go.dev/github.com/matzehuels/exhibitboard/pkg/grid
// [quadrant]: https://pkg.go.dev/github.com/matzehuels/exhibitboard/pkg/quadrant
// [board]: https://pkg.go.dev/github.com/matzehuels/exhibitboard/pkg/board
// [board.Outcome]: https://pkg.go.dev/github.com/matzehuels/exhibitboard/pkg/board#Outcome
// [export]: https://pkg.go.dev/github.com/matzehuels/exhibitboard/pkg/export
// [io]: https://pkg.go.dev/github.com/matzehuels/exhibitboard/pkg/io
// [cache]: https://pkg.go.dev/github.com/matzehuels/exhibitboard/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/exhibitboard/pkg/config
// [preview]: https://pkg.go.dev/github.com/matzehuels/exhibitboard/pkg/preview
// [observability]: https://pkg.go.dev/github.com/matzehuels/exhibitboard/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/exhibitboard/pkg/errors
package pkg
