package board

import (
	"github.com/matzehuels/exhibitboard/pkg/errors"
	"github.com/matzehuels/exhibitboard/pkg/exhibit"
	"github.com/matzehuels/exhibitboard/pkg/grid"
	"github.com/matzehuels/exhibitboard/pkg/quadrant"
)

// Type names an event.
type Type string

const (
	TypePlace  Type = "place"
	TypeMove   Type = "move"
	TypeResize Type = "resize"
	TypeDelete Type = "delete"

	// Editor events.
	TypeSelect   Type = "select"
	TypeAddPage  Type = "add_page"
	TypeNextPage Type = "next_page"
	TypePrevPage Type = "prev_page"
)

// Types lists every known event type.
var Types = []Type{TypePlace, TypeMove, TypeResize, TypeDelete, TypeSelect, TypeAddPage, TypeNextPage, TypePrevPage}

// Event is one intent from the drag layer. Only the fields relevant to Type
// are read.
type Event struct {
	Type Type `json:"type"`

	// Place: the palette exhibit and its target. For the grid variant an
	// explicit ItemID makes the placement reproducible.
	ExhibitID string              `json:"exhibit_id,omitempty"`
	Kind      exhibit.Kind        `json:"kind,omitempty"`
	Layout    exhibit.LayoutClass `json:"layout,omitempty"`
	Title     string              `json:"title,omitempty"`
	Region    quadrant.Region     `json:"region,omitempty"`
	Width     int                 `json:"width,omitempty"`

	// Move, resize, delete, select.
	ItemID string `json:"item_id,omitempty"`

	// Move: quadrant regions, or a target grid position. A grid move
	// without a position re-runs first-fit for the item.
	From     quadrant.Region `json:"from,omitempty"`
	To       quadrant.Region `json:"to,omitempty"`
	Position *grid.Position  `json:"position,omitempty"`

	// Resize, in pixels.
	PixelWidth  float64 `json:"pixel_width,omitempty"`
	PixelHeight float64 `json:"pixel_height,omitempty"`
}

// PlaceNewItem drops a palette exhibit on region (quadrant) or at the first
// free position of the given width (grid).
func PlaceNewItem(e exhibit.Exhibit, region quadrant.Region, width int) Event {
	return Event{
		Type:      TypePlace,
		ExhibitID: e.ID,
		Kind:      e.Kind,
		Layout:    e.Layout,
		Title:     e.Title,
		Region:    region,
		Width:     width,
	}
}

// MoveItem moves a placed item between quadrant regions.
func MoveItem(itemID string, from, to quadrant.Region) Event {
	return Event{Type: TypeMove, ItemID: itemID, From: from, To: to}
}

// ResizeItem resizes a grid item to a pixel size.
func ResizeItem(itemID string, pixelWidth, pixelHeight float64) Event {
	return Event{Type: TypeResize, ItemID: itemID, PixelWidth: pixelWidth, PixelHeight: pixelHeight}
}

// DeleteItem removes a placed item.
func DeleteItem(itemID string) Event {
	return Event{Type: TypeDelete, ItemID: itemID}
}

// Validate checks that the fields required by the event type are present.
func (e Event) Validate() error {
	switch e.Type {
	case TypePlace:
		if e.ExhibitID == "" && e.Kind == "" {
			return errors.New(errors.ErrCodeInvalidInput, "place event needs exhibit_id or kind")
		}
		if e.Kind != "" && !e.Kind.Valid() {
			return errors.New(errors.ErrCodeInvalidKind, "unknown exhibit kind: %q", e.Kind)
		}
		if e.Layout != "" && !e.Layout.Valid() {
			return errors.New(errors.ErrCodeInvalidLayout, "unknown layout class: %q", e.Layout)
		}
		if e.Width < 0 {
			return errors.New(errors.ErrCodeInvalidInput, "width cannot be negative")
		}
	case TypeMove, TypeDelete:
		if e.ItemID == "" {
			return errors.New(errors.ErrCodeInvalidInput, "%s event needs item_id", e.Type)
		}
	case TypeResize:
		if e.ItemID == "" {
			return errors.New(errors.ErrCodeInvalidInput, "resize event needs item_id")
		}
		if !grid.ValidPixelSize(e.PixelWidth, e.PixelHeight) {
			return errors.New(errors.ErrCodeInvalidInput, "resize needs a finite positive pixel size, got %vx%v", e.PixelWidth, e.PixelHeight)
		}
	case TypeSelect, TypeAddPage, TypeNextPage, TypePrevPage:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown event type: %q", e.Type)
	}
	return nil
}
