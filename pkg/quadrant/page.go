package quadrant

import (
	"github.com/matzehuels/exhibitboard/pkg/errors"
	"github.com/matzehuels/exhibitboard/pkg/exhibit"
)

// Placement is an exhibit sitting in a region.
type Placement struct {
	Region  Region          `json:"region"`
	Exhibit exhibit.Exhibit `json:"exhibit"`
}

// Page is one sheet of four regions. The zero value is an empty page.
// Page is a value type; copies are independent.
type Page struct {
	slots [4]exhibit.Exhibit
}

// NewPage builds a page from placements, rejecting any set that could not
// have been produced by accepted drops.
func NewPage(placements ...Placement) (Page, error) {
	var p Page
	for _, pl := range placements {
		if !pl.Region.Valid() {
			return Page{}, errors.New(errors.ErrCodeInvalidRegion, "unknown region: %q", pl.Region)
		}
		if err := pl.Exhibit.Validate(); err != nil {
			return Page{}, err
		}
		if !p.CanAccept(pl.Region, pl.Exhibit.Layout) {
			return Page{}, errors.New(errors.ErrCodePlacementRejected,
				"%s cannot hold %s exhibit %s (state %s)", pl.Region.Name(), pl.Exhibit.Layout, pl.Exhibit.ID, p.State(pl.Region))
		}
		p.put(pl.Region, pl.Exhibit)
	}
	return p, nil
}

// At returns the exhibit in r.
func (p Page) At(r Region) (exhibit.Exhibit, bool) {
	i := r.index()
	if i < 0 || p.slots[i].ID == "" {
		return exhibit.Exhibit{}, false
	}
	return p.slots[i], true
}

// State derives the state of r from the page contents.
func (p Page) State(r Region) State {
	if e, ok := p.At(r); ok {
		if e.Layout == exhibit.LayoutFullPage {
			return StateOccupiedFull
		}
		return StateOccupiedQuad
	}
	if e, ok := p.At(r.Pair()); ok && e.Layout == exhibit.LayoutFullPage {
		return StateDisabled
	}
	return StateEmpty
}

// CanAccept reports whether an exhibit of class c may be dropped into r.
func (p Page) CanAccept(r Region, c exhibit.LayoutClass) bool {
	if p.State(r) != StateEmpty {
		return false
	}
	switch c {
	case exhibit.LayoutQuad, "":
		return true
	case exhibit.LayoutFullPage:
		return r.Anchor() && p.State(r.Pair()) == StateEmpty
	}
	return false
}

// Placements returns the occupied regions in row-major order.
func (p Page) Placements() []Placement {
	var out []Placement
	for i, e := range p.slots {
		if e.ID != "" {
			out = append(out, Placement{Region: Regions[i], Exhibit: e})
		}
	}
	return out
}

// Len returns the number of exhibits on the page.
func (p Page) Len() int {
	n := 0
	for _, e := range p.slots {
		if e.ID != "" {
			n++
		}
	}
	return n
}

// Empty reports whether no region holds an exhibit.
func (p Page) Empty() bool { return p.Len() == 0 }

// Find returns the region holding the exhibit with the given id.
func (p Page) Find(id string) (Region, bool) {
	for i, e := range p.slots {
		if id != "" && e.ID == id {
			return Regions[i], true
		}
	}
	return "", false
}

func (p *Page) put(r Region, e exhibit.Exhibit) { p.slots[r.index()] = e }

func (p *Page) clear(r Region) { p.slots[r.index()] = exhibit.Exhibit{} }
