package board

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/exhibitboard/pkg/errors"
	"github.com/matzehuels/exhibitboard/pkg/quadrant"
)

// QuadrantHandler applies events to a quadrant book.
type QuadrantHandler struct {
	Book   *quadrant.Book
	Logger *log.Logger
}

// NewQuadrantHandler creates a handler for book. A nil logger discards output.
func NewQuadrantHandler(book *quadrant.Book, logger *log.Logger) *QuadrantHandler {
	return &QuadrantHandler{Book: book, Logger: orDiscard(logger)}
}

// Variant returns "quadrant".
func (h *QuadrantHandler) Variant() string { return "quadrant" }

// Handle applies e to the current page. The pooled exhibit is authoritative
// for kind and layout class; the event's copies are only checked for
// agreement. Resize and select are not supported.
func (h *QuadrantHandler) Handle(ctx context.Context, e Event) Outcome {
	start := time.Now()
	if err := e.Validate(); err != nil {
		return finish(ctx, h.Logger, h.Variant(), start, rejected(e, e.ItemID, err))
	}

	var ch quadrant.Change
	switch e.Type {
	case TypePlace:
		if pooled, ok := h.Book.Pooled(e.ExhibitID); ok && e.Layout != "" && e.Layout.OrDefault() != pooled.Layout.OrDefault() {
			err := errors.New(errors.ErrCodeInvalidLayout, "exhibit %s is %s, event says %s", pooled.ID, pooled.Layout, e.Layout)
			return finish(ctx, h.Logger, h.Variant(), start, rejected(e, e.ExhibitID, err))
		}
		ch = h.Book.Place(e.ExhibitID, e.Region)
	case TypeMove:
		ch = h.Book.Move(e.ItemID, e.From, e.To)
	case TypeDelete:
		ch = h.Book.Remove(e.ItemID)
	case TypeAddPage:
		ch = h.Book.AddPage()
	case TypeNextPage:
		ch = h.Book.NextPage()
	case TypePrevPage:
		ch = h.Book.PrevPage()
	default:
		err := errors.New(errors.ErrCodeUnsupported, "%s is not supported on a quadrant board", e.Type)
		return finish(ctx, h.Logger, h.Variant(), start, rejected(e, e.ItemID, err))
	}
	out := Outcome{Type: e.Type, ItemID: ch.ItemID, Applied: ch.Applied, Reason: ch.Reason}
	return finish(ctx, h.Logger, h.Variant(), start, out, "region", ch.Region, "page", ch.Page+1)
}
