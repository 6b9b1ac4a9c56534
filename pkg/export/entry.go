package export

import (
	"github.com/matzehuels/exhibitboard/pkg/exhibit"
	"github.com/matzehuels/exhibitboard/pkg/grid"
	"github.com/matzehuels/exhibitboard/pkg/quadrant"
)

// Entry is one placed item as seen by renderers.
type Entry struct {
	ID       string              `json:"id"`
	Kind     exhibit.Kind        `json:"kind"`
	Title    string              `json:"title"`
	Page     int                 `json:"page"`
	Region   quadrant.Region     `json:"region,omitempty"`
	Layout   exhibit.LayoutClass `json:"layout,omitempty"`
	Position grid.Position       `json:"position"`
}

// GridEntries returns the items of a grid in row-major order.
func GridEntries(items []grid.Item) []Entry {
	sorted := make([]grid.Item, len(items))
	copy(sorted, items)
	grid.SortRowMajor(sorted)

	out := make([]Entry, len(sorted))
	for i, it := range sorted {
		out[i] = Entry{
			ID:       it.ID,
			Kind:     it.Kind,
			Title:    it.DisplayTitle(),
			Position: it.Position,
		}
	}
	return out
}

// BookEntries returns the placements of every page, page by page and region
// by region. Positions are expressed on a 12 column grid: a region spans six
// columns and a FULLPAGE exhibit spans the whole row.
func BookEntries(pages []quadrant.Page) []Entry {
	var out []Entry
	for i, p := range pages {
		for _, pl := range p.Placements() {
			out = append(out, Entry{
				ID:       pl.Exhibit.ID,
				Kind:     pl.Exhibit.Kind,
				Title:    pl.Exhibit.DisplayTitle(),
				Page:     i,
				Region:   pl.Region,
				Layout:   pl.Exhibit.Layout.OrDefault(),
				Position: regionPosition(pl.Region, pl.Exhibit.Layout),
			})
		}
	}
	return out
}

func regionPosition(r quadrant.Region, c exhibit.LayoutClass) grid.Position {
	half := grid.DefaultColumns / 2
	p := grid.Position{Row: r.Row(), Column: r.Column() * half, Width: half}
	if c == exhibit.LayoutFullPage {
		p.Width = grid.DefaultColumns
	}
	return p
}
