package grid

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/matzehuels/exhibitboard/pkg/errors"
	"github.com/matzehuels/exhibitboard/pkg/exhibit"
)

// Item is an exhibit placed on the canvas.
type Item struct {
	ID        string       `json:"id"`
	ExhibitID string       `json:"exhibit_id,omitempty"`
	Kind      exhibit.Kind `json:"kind"`
	Title     string       `json:"title,omitempty"`
	Position  Position     `json:"position"`
	Size      Size         `json:"size"`
	Data      exhibit.Data `json:"-"`
}

// DisplayTitle returns the title or the kind's default title.
func (it Item) DisplayTitle() string {
	return exhibit.Title(it.Title, it.Kind)
}

func (it Item) clone() Item {
	if it.Data != nil {
		it.Data = it.Data.Clone()
	}
	return it
}

func (it Item) validate() error {
	if err := errors.ValidateItemID(it.ID); err != nil {
		return err
	}
	if err := errors.ValidateTitle(it.Title); err != nil {
		return err
	}
	return exhibit.Validate(it.Kind, it.Data)
}

// NewItemID returns a fresh identifier of the form "<kind>-<uuid>".
func NewItemID(k exhibit.Kind) string {
	return fmt.Sprintf("%s-%s", k, uuid.NewString())
}

// Patch is a partial update. Nil fields are left unchanged; Position and
// Size are merged field by field.
type Patch struct {
	Title    *string
	Position *PositionPatch
	Size     *SizePatch
	Data     exhibit.Data
}

// PositionPatch updates individual position fields.
type PositionPatch struct {
	Row    *int
	Column *int
	Width  *int
}

// SizePatch updates individual size fields.
type SizePatch struct {
	Width  *float64
	Height *float64
}

func (p *PositionPatch) apply(pos Position) Position {
	if p == nil {
		return pos
	}
	if p.Row != nil {
		pos.Row = *p.Row
	}
	if p.Column != nil {
		pos.Column = *p.Column
	}
	if p.Width != nil {
		pos.Width = *p.Width
	}
	return pos
}

func (p *SizePatch) apply(s Size) Size {
	if p == nil {
		return s
	}
	if p.Width != nil {
		s.Width = *p.Width
	}
	if p.Height != nil {
		s.Height = *p.Height
	}
	return s
}
