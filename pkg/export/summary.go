package export

import (
	"fmt"
	"strings"

	"github.com/matzehuels/exhibitboard/pkg/grid"
	"github.com/matzehuels/exhibitboard/pkg/quadrant"
)

const summaryHeader = "Layout Summary:\n\n"

// BookSummary lists the non-empty pages of a book:
//
//	Layout Summary:
//
//	Page 1:
//	  Quadrant 1:
//	    • Item 3 (FULLPAGE)
//
// Each page is followed by a blank line.
func BookSummary(pages []quadrant.Page) string {
	var b strings.Builder
	b.WriteString(summaryHeader)
	for i, p := range pages {
		if p.Empty() {
			continue
		}
		fmt.Fprintf(&b, "Page %d:\n", i+1)
		for _, pl := range p.Placements() {
			fmt.Fprintf(&b, "  %s:\n", pl.Region.Name())
			fmt.Fprintf(&b, "    • %s (%s)\n", pl.Exhibit.DisplayTitle(), pl.Exhibit.Layout.OrDefault())
		}
		b.WriteString("\n")
	}
	return b.String()
}

// GridSummary lists grid items row by row with their column span (1-based).
func GridSummary(items []grid.Item) string {
	var b strings.Builder
	b.WriteString(summaryHeader)
	row := -1
	for _, e := range GridEntries(items) {
		if e.Position.Row != row {
			if row >= 0 {
				b.WriteString("\n")
			}
			row = e.Position.Row
			fmt.Fprintf(&b, "Row %d:\n", row+1)
		}
		fmt.Fprintf(&b, "  • %s (%s, columns %d-%d)\n", e.Title, e.Kind, e.Position.Column+1, e.Position.End())
	}
	if row >= 0 {
		b.WriteString("\n")
	}
	return b.String()
}
