package exhibit

import (
	"slices"

	"github.com/matzehuels/exhibitboard/pkg/errors"
)

// Catalog is an ordered palette of exhibits.
type Catalog struct {
	exhibits []Exhibit
}

// NewCatalog validates the exhibits and returns a catalog preserving their order.
func NewCatalog(exhibits ...Exhibit) (*Catalog, error) {
	seen := make(map[string]bool, len(exhibits))
	for _, e := range exhibits {
		if err := e.Validate(); err != nil {
			return nil, err
		}
		if seen[e.ID] {
			return nil, errors.New(errors.ErrCodeInvalidInput, "duplicate exhibit id %q", e.ID)
		}
		seen[e.ID] = true
	}
	return &Catalog{exhibits: slices.Clone(exhibits)}, nil
}

// DefaultCatalog returns the built-in palette.
func DefaultCatalog() *Catalog {
	return &Catalog{exhibits: []Exhibit{
		{ID: "table1", Kind: KindTable, Title: "Sales Report", Icon: "Table"},
		{ID: "pie1", Kind: KindPie, Title: "Market Share", Icon: "PieChart"},
		{ID: "bar1", Kind: KindBar, Title: "Revenue Growth", Icon: "BarChart"},
		{ID: "image1", Kind: KindImage, Title: "Product Overview", Icon: "Image"},
	}}
}

// All returns a copy of the palette.
func (c *Catalog) All() []Exhibit {
	return slices.Clone(c.exhibits)
}

// Len returns the number of exhibits.
func (c *Catalog) Len() int { return len(c.exhibits) }

// Get looks up an exhibit by id.
func (c *Catalog) Get(id string) (Exhibit, bool) {
	for _, e := range c.exhibits {
		if e.ID == id {
			return e, true
		}
	}
	return Exhibit{}, false
}

// QuadrantSeed returns the items the quadrant source pool starts with.
// Items 3 and 5 are full-page exhibits.
func QuadrantSeed() []Exhibit {
	kinds := []Kind{KindTable, KindPie, KindBar, KindImage}
	out := make([]Exhibit, 8)
	for i := range out {
		layout := LayoutQuad
		if i == 2 || i == 4 {
			layout = LayoutFullPage
		}
		id := string(rune('1' + i))
		out[i] = Exhibit{
			ID:     id,
			Kind:   kinds[i%len(kinds)],
			Title:  "Item " + id,
			Layout: layout,
		}
	}
	return out
}

// SampleData returns a fresh sample payload for k.
func SampleData(k Kind) Data {
	switch k {
	case KindTable:
		return TableData{
			Columns: []Column{
				{ID: "col1", Title: "Product", Field: "product", Visible: true},
				{ID: "col2", Title: "Sales", Field: "sales", Visible: true},
				{ID: "col3", Title: "Revenue", Field: "revenue", Visible: true},
				{ID: "col4", Title: "Growth", Field: "growth", Visible: true},
			},
			// Numbers are float64, the type JSON decoding yields.
			Rows: []map[string]any{
				{"product": "Product A", "sales": 150.0, "revenue": 15000.0, "growth": "10%"},
				{"product": "Product B", "sales": 200.0, "revenue": 20000.0, "growth": "15%"},
				{"product": "Product C", "sales": 180.0, "revenue": 18000.0, "growth": "12%"},
			},
		}
	case KindPie:
		return ChartData{
			Labels: []string{"Product A", "Product B", "Product C"},
			Values: []float64{30, 45, 25},
		}
	case KindBar:
		return ChartData{
			Labels: []string{"Jan", "Feb", "Mar", "Apr"},
			Values: []float64{1200, 1900, 1500, 2100},
		}
	case KindImage:
		return ImageData{
			Source: "https://images.unsplash.com/photo-1551288049-bebda4e38f71?auto=format&fit=crop&w=800",
			Alt:    "Demo",
		}
	}
	return nil
}

var disclaimers = map[Kind]string{
	KindTable: "This report contains confidential sales data. Do not distribute.",
	KindPie:   "Market share data is based on internal analysis.",
	KindBar:   "Revenue figures are subject to audit.",
	KindImage: "Product images are for illustration purposes only.",
}

// Disclaimer returns the footer disclaimer printed for exhibits of kind k.
func Disclaimer(k Kind) string {
	return disclaimers[k]
}
