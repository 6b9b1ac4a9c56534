package board

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/exhibitboard/pkg/errors"
	"github.com/matzehuels/exhibitboard/pkg/exhibit"
	"github.com/matzehuels/exhibitboard/pkg/grid"
)

// GridHandler applies events to a free-grid store.
type GridHandler struct {
	Store   *grid.Store
	Catalog *exhibit.Catalog
	Logger  *log.Logger
}

// NewGridHandler creates a handler for store. A nil catalog uses the default
// palette; a nil logger discards output.
func NewGridHandler(store *grid.Store, catalog *exhibit.Catalog, logger *log.Logger) *GridHandler {
	if catalog == nil {
		catalog = exhibit.DefaultCatalog()
	}
	return &GridHandler{Store: store, Catalog: catalog, Logger: orDiscard(logger)}
}

// Variant returns "grid".
func (h *GridHandler) Variant() string { return "grid" }

// Handle applies e. Region fields are ignored; a move with a position patches
// the item's position, a move without one re-runs first-fit.
func (h *GridHandler) Handle(ctx context.Context, e Event) Outcome {
	start := time.Now()
	if err := e.Validate(); err != nil {
		return finish(ctx, h.Logger, h.Variant(), start, rejected(e, e.ItemID, err))
	}

	var ch grid.Change
	switch e.Type {
	case TypePlace:
		item, err := h.newItem(e)
		if err != nil {
			return finish(ctx, h.Logger, h.Variant(), start, rejected(e, e.ItemID, err))
		}
		width := e.Width
		if width == 0 {
			width = h.Store.Config().DefaultWidth
		}
		var placed grid.Item
		placed, ch = h.Store.Add(item, width)
		return finish(ctx, h.Logger, h.Variant(), start, outcome(e, ch), "position", placed.Position)
	case TypeMove:
		if e.Position != nil {
			p := *e.Position
			ch = h.Store.Update(e.ItemID, grid.Patch{Position: &grid.PositionPatch{Row: &p.Row, Column: &p.Column, Width: &p.Width}})
		} else {
			ch = h.Store.Relocate(e.ItemID)
		}
	case TypeResize:
		ch = h.Store.Resize(e.ItemID, e.PixelWidth, e.PixelHeight)
	case TypeDelete:
		ch = h.Store.Remove(e.ItemID)
	case TypeSelect:
		ch = h.Store.Select(e.ItemID)
	default:
		err := errors.New(errors.ErrCodeUnsupported, "%s is not supported on a grid board", e.Type)
		return finish(ctx, h.Logger, h.Variant(), start, rejected(e, e.ItemID, err))
	}
	return finish(ctx, h.Logger, h.Variant(), start, outcome(e, ch))
}

// newItem resolves the palette exhibit, falling back to the event's kind.
func (h *GridHandler) newItem(e Event) (grid.Item, error) {
	ex, ok := h.Catalog.Get(e.ExhibitID)
	if !ok {
		if e.Kind == "" {
			return grid.Item{}, errors.New(errors.ErrCodeUnknownItem, "exhibit %q is not in the palette", e.ExhibitID)
		}
		ex = exhibit.Exhibit{ID: e.ExhibitID, Kind: e.Kind}
	}
	if e.Kind != "" && e.Kind != ex.Kind {
		return grid.Item{}, errors.New(errors.ErrCodeInvalidKind, "exhibit %s is a %s, not a %s", ex.ID, ex.Kind, e.Kind)
	}
	title := ex.Title
	if e.Title != "" {
		title = e.Title
	}
	return grid.Item{
		ID:        e.ItemID,
		ExhibitID: ex.ID,
		Kind:      ex.Kind,
		Title:     title,
		Data:      exhibit.SampleData(ex.Kind),
	}, nil
}

func outcome(e Event, ch grid.Change) Outcome {
	return Outcome{Type: e.Type, ItemID: ch.ItemID, Applied: ch.Applied, Reason: ch.Reason}
}
