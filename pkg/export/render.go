package export

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/matzehuels/exhibitboard/pkg/errors"
	"github.com/matzehuels/exhibitboard/pkg/grid"
	"github.com/matzehuels/exhibitboard/pkg/observability"
	"github.com/matzehuels/exhibitboard/pkg/quadrant"
)

// Format is an output format.
type Format string

const (
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatPDF  Format = "pdf"
	FormatJSON Format = "json"
	FormatText Format = "txt"
)

// Formats lists every supported format.
var Formats = []Format{FormatSVG, FormatPNG, FormatPDF, FormatJSON, FormatText}

// ParseFormat accepts a format name, case-insensitively. "text" is an alias
// for "txt".
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "text" {
		f = FormatText
	}
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %q (use svg, png, pdf, json or txt)", s)
}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	switch f {
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatPDF:
		return "application/pdf"
	case FormatJSON:
		return "application/json"
	}
	return "text/plain; charset=utf-8"
}

// Document is a board prepared for rendering.
type Document struct {
	Variant string     `json:"variant"`
	Page    PageConfig `json:"page"`
	Entries []Entry    `json:"entries"`
	Sheets  []Sheet    `json:"sheets"`
	Summary string     `json:"summary"`
}

// FromGrid prepares grid items for rendering.
func FromGrid(items []grid.Item, cfg PageConfig) Document {
	return Document{
		Variant: "grid",
		Page:    cfg,
		Entries: GridEntries(items),
		Sheets:  Paginate(items, cfg),
		Summary: GridSummary(items),
	}
}

// FromBook prepares book pages for rendering.
func FromBook(pages []quadrant.Page, cfg PageConfig) Document {
	return Document{
		Variant: "quadrant",
		Page:    cfg,
		Entries: BookEntries(pages),
		Sheets:  PaginateBook(pages, cfg),
		Summary: BookSummary(pages),
	}
}

// Option configures [Render].
type Option func(*renderer)

type renderer struct {
	scale float64
}

// WithScale sets the PNG scale factor (default 2.0).
func WithScale(s float64) Option {
	return func(r *renderer) { r.scale = s }
}

// Render produces doc in format f.
func Render(ctx context.Context, doc Document, f Format, opts ...Option) ([]byte, error) {
	r := renderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	if err := doc.Page.Validate(); err != nil {
		return nil, err
	}

	formats := []string{string(f)}
	observability.Export().OnRenderStart(ctx, formats)
	start := time.Now()

	var (
		out []byte
		err error
	)
	switch f {
	case FormatSVG:
		out = RenderSVG(doc.Sheets, doc.Page)
	case FormatPNG:
		out, err = RenderPNG(doc.Sheets, doc.Page, r.scale)
	case FormatPDF:
		out, err = RenderPDF(ctx, doc.Sheets, doc.Page)
	case FormatJSON:
		out, err = json.MarshalIndent(doc, "", "  ")
	case FormatText:
		out = []byte(doc.Summary)
	default:
		err = errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %q", f)
	}

	observability.Export().OnRenderComplete(ctx, formats, len(doc.Sheets), time.Since(start), err)
	return out, err
}
