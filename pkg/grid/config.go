package grid

import (
	"github.com/matzehuels/exhibitboard/pkg/errors"
)

// Default geometry of the canvas.
const (
	DefaultColumns        = 12
	DefaultMinColumnWidth = 6
	DefaultItemWidth      = 6
	DefaultGap            = 16.0
	DefaultCanvasWidth    = 1200.0
	DefaultItemPixelW     = 400.0
	DefaultItemPixelH     = 300.0
	DefaultMinHeight      = 200.0
	DefaultMaxHeight      = 600.0
)

// Config describes canvas geometry.
type Config struct {
	Columns        int     `toml:"columns" json:"columns"`
	MinColumnWidth int     `toml:"min_width" json:"min_width"`
	DefaultWidth   int     `toml:"default_width" json:"default_width"`
	Gap            float64 `toml:"gap" json:"gap"`
	CanvasWidth    float64 `toml:"canvas_width" json:"canvas_width"`
	MinHeight      float64 `toml:"min_height" json:"min_height"`
	MaxHeight      float64 `toml:"max_height" json:"max_height"`
	DefaultSize    Size    `toml:"default_size" json:"default_size"`
}

// DefaultConfig returns a 12 column canvas with a minimum item width of 6.
func DefaultConfig() Config {
	return Config{
		Columns:        DefaultColumns,
		MinColumnWidth: DefaultMinColumnWidth,
		DefaultWidth:   DefaultItemWidth,
		Gap:            DefaultGap,
		CanvasWidth:    DefaultCanvasWidth,
		MinHeight:      DefaultMinHeight,
		MaxHeight:      DefaultMaxHeight,
		DefaultSize:    Size{Width: DefaultItemPixelW, Height: DefaultItemPixelH},
	}
}

// Validate checks that the geometry is usable.
func (c Config) Validate() error {
	if c.Columns < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "columns must be at least 1, got %d", c.Columns)
	}
	if c.MinColumnWidth < 1 || c.MinColumnWidth > c.Columns {
		return errors.New(errors.ErrCodeInvalidInput, "min_width must be in [1, %d], got %d", c.Columns, c.MinColumnWidth)
	}
	if c.DefaultWidth < c.MinColumnWidth || c.DefaultWidth > c.Columns {
		return errors.New(errors.ErrCodeInvalidInput, "default_width must be in [%d, %d], got %d", c.MinColumnWidth, c.Columns, c.DefaultWidth)
	}
	if c.Gap < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "gap cannot be negative")
	}
	if c.CanvasWidth <= c.Gap*float64(c.Columns-1) {
		return errors.New(errors.ErrCodeInvalidInput, "canvas_width %.0f leaves no room for %d columns", c.CanvasWidth, c.Columns)
	}
	if c.MinHeight > 0 && c.MaxHeight > 0 && c.MinHeight > c.MaxHeight {
		return errors.New(errors.ErrCodeInvalidInput, "min_height exceeds max_height")
	}
	return nil
}

// ColumnPixelWidth returns the width of one column in pixels, gaps excluded.
func (c Config) ColumnPixelWidth() float64 {
	return (c.CanvasWidth - c.Gap*float64(c.Columns-1)) / float64(c.Columns)
}

// PixelRect returns the on-canvas rectangle of an item, in pixels.
// Rows are laid out with the item's own height.
func (c Config) PixelRect(p Position, s Size) (x, y, w, h float64) {
	colW := c.ColumnPixelWidth()
	x = float64(p.Column) * (colW + c.Gap)
	y = float64(p.Row) * (s.Height + c.Gap)
	w = float64(p.Width)*colW + float64(p.Width-1)*c.Gap
	return x, y, w, s.Height
}

// clampHeight bounds a pixel height to the configured range. Zero bounds are ignored.
func (c Config) clampHeight(h float64) float64 {
	if c.MinHeight > 0 && h < c.MinHeight {
		h = c.MinHeight
	}
	if c.MaxHeight > 0 && h > c.MaxHeight {
		h = c.MaxHeight
	}
	return h
}
