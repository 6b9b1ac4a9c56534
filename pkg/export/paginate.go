package export

import (
	"math"

	"github.com/matzehuels/exhibitboard/pkg/errors"
	"github.com/matzehuels/exhibitboard/pkg/exhibit"
	"github.com/matzehuels/exhibitboard/pkg/grid"
	"github.com/matzehuels/exhibitboard/pkg/quadrant"
)

// Page geometry defaults, in millimetres (landscape A4).
const (
	DefaultTitle            = "Dynamic Report Dashboard"
	DefaultPageWidth        = 297.0
	DefaultPageHeight       = 210.0
	DefaultMargin           = 10.0
	DefaultDisclaimerHeight = 20.0
	DefaultRowSpacing       = 15.0

	// headerHeight is the space under the top margin reserved for the title.
	headerHeight = 15.0
	// titleGap separates an exhibit's caption from its body.
	titleGap = 5.0
	// disclaimerBand is the distance from the bottom margin to the rule
	// above the disclaimers.
	disclaimerBand = 25.0
	// disclaimerLine is the line pitch of the disclaimer list.
	disclaimerLine = 4.0
)

// PageConfig describes the exported sheet.
type PageConfig struct {
	Title            string  `toml:"title" json:"title"`
	Width            float64 `toml:"page_width" json:"page_width"`
	Height           float64 `toml:"page_height" json:"page_height"`
	Margin           float64 `toml:"margin" json:"margin"`
	DisclaimerHeight float64 `toml:"disclaimer_height" json:"disclaimer_height"`
	RowSpacing       float64 `toml:"row_spacing" json:"row_spacing"`
	Columns          int     `toml:"-" json:"columns"`
}

// DefaultPageConfig returns a landscape A4 sheet on a 12 column grid.
func DefaultPageConfig() PageConfig {
	return PageConfig{
		Title:            DefaultTitle,
		Width:            DefaultPageWidth,
		Height:           DefaultPageHeight,
		Margin:           DefaultMargin,
		DisclaimerHeight: DefaultDisclaimerHeight,
		RowSpacing:       DefaultRowSpacing,
		Columns:          grid.DefaultColumns,
	}
}

// Validate checks that the sheet leaves room for content.
func (c PageConfig) Validate() error {
	if c.Width <= 2*c.Margin || c.Height <= 2*c.Margin+headerHeight+c.DisclaimerHeight {
		return errors.New(errors.ErrCodeInvalidInput, "page %.0fx%.0fmm is too small for margin %.0fmm", c.Width, c.Height, c.Margin)
	}
	if c.Margin < 0 || c.DisclaimerHeight < 0 || c.RowSpacing < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "page margins and spacing cannot be negative")
	}
	if c.Columns < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "columns must be at least 1")
	}
	return nil
}

func (c PageConfig) columnWidth() float64 {
	return (c.Width - 2*c.Margin) / float64(c.Columns)
}

// contentTop is the y of the first row caption.
func (c PageConfig) contentTop() float64 { return c.Margin + headerHeight }

// ruleY is the y of the rule above the disclaimers.
func (c PageConfig) ruleY() float64 { return c.Height - c.Margin - disclaimerBand }

// Block is an exhibit drawn on a sheet. Y is the caption baseline; the body
// starts titleGap below it.
type Block struct {
	ID     string       `json:"id"`
	Kind   exhibit.Kind `json:"kind"`
	Title  string       `json:"title"`
	X      float64      `json:"x"`
	Y      float64      `json:"y"`
	Width  float64      `json:"width"`
	Height float64      `json:"height"`
	Data   exhibit.Data `json:"-"`
}

// Disclaimer is one line of the disclaimer list, already positioned.
type Disclaimer struct {
	Title string  `json:"title"`
	Text  string  `json:"text"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Line returns "<title>: <text>".
func (d Disclaimer) Line() string { return d.Title + ": " + d.Text }

// Sheet is one exported page.
type Sheet struct {
	Number      int          `json:"number"`
	Blocks      []Block      `json:"blocks"`
	Disclaimers []Disclaimer `json:"disclaimers,omitempty"`
}

// Paginate lays grid items onto sheets. Rows are kept whole and in order;
// items keep their column offset. A row starts a new sheet when
// y + rowHeight + DisclaimerHeight exceeds the page height, unless the
// current sheet is still empty.
func Paginate(items []grid.Item, cfg PageConfig) []Sheet {
	colW := cfg.columnWidth()
	sorted := make([]grid.Item, len(items))
	copy(sorted, items)
	grid.SortRowMajor(sorted)

	var (
		sheets []Sheet
		cur    = Sheet{Number: 1}
		y      = cfg.contentTop()
	)
	for start := 0; start < len(sorted); {
		end := start
		for end < len(sorted) && sorted[end].Position.Row == sorted[start].Position.Row {
			end++
		}
		row := sorted[start:end]
		start = end

		rowHeight := 0.0
		blocks := make([]Block, len(row))
		for i, it := range row {
			w := colW * float64(it.Position.Width)
			h := bodyHeight(it.Size, w)
			rowHeight = math.Max(rowHeight, h)
			blocks[i] = Block{
				ID:     it.ID,
				Kind:   it.Kind,
				Title:  it.DisplayTitle(),
				X:      cfg.Margin + float64(it.Position.Column)*colW,
				Width:  w,
				Height: h,
				Data:   it.Data,
			}
		}

		if y+rowHeight+cfg.DisclaimerHeight > cfg.Height && len(cur.Blocks) > 0 {
			sheets = append(sheets, finishSheet(cur, cfg))
			cur = Sheet{Number: cur.Number + 1}
			y = cfg.contentTop()
		}
		for i := range blocks {
			blocks[i].Y = y
		}
		cur.Blocks = append(cur.Blocks, blocks...)
		y += rowHeight + cfg.RowSpacing
	}
	if len(cur.Blocks) > 0 || len(sheets) == 0 {
		sheets = append(sheets, finishSheet(cur, cfg))
	}
	return sheets
}

// PaginateBook renders each non-empty book page as one sheet. Regions split
// the content area into a two by two grid; a FULLPAGE exhibit spans its row.
func PaginateBook(pages []quadrant.Page, cfg PageConfig) []Sheet {
	top := cfg.contentTop()
	rowH := (cfg.ruleY() - top - cfg.RowSpacing) / 2
	halfW := (cfg.Width - 2*cfg.Margin) / 2

	var sheets []Sheet
	for _, p := range pages {
		if p.Empty() {
			continue
		}
		sheet := Sheet{Number: len(sheets) + 1}
		for _, pl := range p.Placements() {
			w := halfW
			if pl.Exhibit.Layout == exhibit.LayoutFullPage {
				w = 2 * halfW
			}
			sheet.Blocks = append(sheet.Blocks, Block{
				ID:     pl.Exhibit.ID,
				Kind:   pl.Exhibit.Kind,
				Title:  pl.Exhibit.DisplayTitle(),
				X:      cfg.Margin + float64(pl.Region.Column())*halfW,
				Y:      top + float64(pl.Region.Row())*(rowH+cfg.RowSpacing),
				Width:  w,
				Height: rowH - titleGap,
				Data:   exhibit.SampleData(pl.Exhibit.Kind),
			})
		}
		sheets = append(sheets, finishSheet(sheet, cfg))
	}
	if len(sheets) == 0 {
		sheets = append(sheets, Sheet{Number: 1})
	}
	return sheets
}

// bodyHeight keeps the on-screen aspect ratio of an item at width w.
func bodyHeight(s grid.Size, w float64) float64 {
	if s.Width <= 0 || s.Height <= 0 {
		s = grid.Size{Width: grid.DefaultItemPixelW, Height: grid.DefaultItemPixelH}
	}
	return s.Height * w / s.Width
}

// finishSheet lays out the disclaimers of the blocks on s: the first half in
// the left column, the rest starting at the page centre.
func finishSheet(s Sheet, cfg PageConfig) Sheet {
	n := len(s.Blocks)
	if n == 0 {
		return s
	}
	half := (n + 1) / 2
	base := cfg.ruleY() + titleGap
	s.Disclaimers = make([]Disclaimer, n)
	for i, b := range s.Blocks {
		x := cfg.Margin
		if i >= half {
			x = cfg.Width / 2
		}
		s.Disclaimers[i] = Disclaimer{
			Title: b.Title,
			Text:  exhibit.Disclaimer(b.Kind),
			X:     x,
			Y:     base + float64(i%half+1)*disclaimerLine,
		}
	}
	return s
}
