package export

import (
	"fmt"
	"math"

	"github.com/matzehuels/exhibitboard/pkg/exhibit"
)

// painter is the drawing surface shared by the SVG and PNG renderers.
// Coordinates are millimetres; anchor is 0 for start, 0.5 for middle and 1
// for end alignment of text on its baseline.
type painter interface {
	rect(x, y, w, h float64, fill, stroke string)
	line(x1, y1, x2, y2 float64, stroke string)
	text(x, y float64, s string, size float64, fill string, anchor float64)
	wedge(cx, cy, r, a0, a1 float64, fill string)
}

// Font sizes in millimetres (20pt, 10pt, 9pt, 8pt).
const (
	sizeTitle      = 7.06
	sizeCaption    = 3.53
	sizeHeading    = 3.18
	sizeDisclaimer = 2.82
	sizeCell       = 2.6
)

var seriesColors = []string{"#1976d2", "#dc004e", "#4caf50", "#ff9800", "#9c27b0", "#00acc1"}

const (
	colorInk    = "#000000"
	colorMuted  = "#646464"
	colorFaint  = "#808080"
	colorRule   = "#c8c8c8"
	colorPanel  = "#f5f5f5"
	colorBorder = "#e0e0e0"
)

// paintSheet draws s with its top edge at dy.
func paintSheet(p painter, s Sheet, cfg PageConfig, dy float64) {
	p.rect(0, dy, cfg.Width, cfg.Height, "#ffffff", colorBorder)
	p.text(cfg.Width/2, dy+cfg.Margin, cfg.Title, sizeTitle, colorInk, 0.5)

	for _, b := range s.Blocks {
		p.text(b.X, dy+b.Y, truncate(b.Title, b.Width, sizeCaption), sizeCaption, colorInk, 0)
		paintBody(p, b, dy+b.Y+titleGap)
	}

	if len(s.Disclaimers) == 0 {
		return
	}
	rule := dy + cfg.ruleY()
	p.line(cfg.Margin, rule, cfg.Width-cfg.Margin, rule, colorRule)
	p.text(cfg.Margin, rule+titleGap, "Disclaimers:", sizeHeading, colorMuted, 0)
	colW := (cfg.Width - 2*cfg.Margin) / 2
	for _, d := range s.Disclaimers {
		p.text(d.X, dy+d.Y, truncate(d.Line(), colW, sizeDisclaimer), sizeDisclaimer, colorFaint, 0)
	}
}

func paintBody(p painter, b Block, top float64) {
	p.rect(b.X, top, b.Width, b.Height, colorPanel, colorBorder)
	switch d := b.Data.(type) {
	case exhibit.TableData:
		paintTable(p, d, b.X, top, b.Width, b.Height)
	case exhibit.ChartData:
		if b.Kind == exhibit.KindPie {
			paintPie(p, d, b.X, top, b.Width, b.Height)
		} else {
			paintBars(p, d, b.X, top, b.Width, b.Height)
		}
	case exhibit.ImageData:
		p.line(b.X, top, b.X+b.Width, top+b.Height, colorRule)
		p.line(b.X, top+b.Height, b.X+b.Width, top, colorRule)
		p.text(b.X+b.Width/2, top+b.Height/2, truncate(d.Alt, b.Width, sizeCell), sizeCell, colorMuted, 0.5)
	default:
		p.text(b.X+b.Width/2, top+b.Height/2, b.Kind.DefaultTitle(), sizeCell, colorMuted, 0.5)
	}
}

func paintTable(p painter, d exhibit.TableData, x, y, w, h float64) {
	cols := d.VisibleColumns()
	if len(cols) == 0 {
		return
	}
	const pad, pitch = 1.5, 5.0
	cw := w / float64(len(cols))
	p.rect(x, y, w, pitch, "#e3f2fd", "")
	for i, c := range cols {
		p.text(x+float64(i)*cw+pad, y+pitch-pad, truncate(c.Title, cw-pad, sizeCell), sizeCell, colorInk, 0)
	}
	for r, row := range d.Rows {
		ry := y + float64(r+2)*pitch - pad
		if ry > y+h {
			break
		}
		for i, c := range cols {
			v := ""
			if cell, ok := row[c.Field]; ok && cell != nil {
				v = fmt.Sprint(cell)
			}
			p.text(x+float64(i)*cw+pad, ry, truncate(v, cw-pad, sizeCell), sizeCell, colorMuted, 0)
		}
	}
}

func paintBars(p painter, d exhibit.ChartData, x, y, w, h float64) {
	if len(d.Values) == 0 {
		return
	}
	maxV := 0.0
	for _, v := range d.Values {
		maxV = math.Max(maxV, v)
	}
	if maxV <= 0 {
		return
	}
	const pad, label = 3.0, 4.0
	base := y + h - label
	slot := (w - 2*pad) / float64(len(d.Values))
	for i, v := range d.Values {
		bh := (base - y - pad) * math.Max(v, 0) / maxV
		bx := x + pad + float64(i)*slot
		p.rect(bx+slot*0.15, base-bh, slot*0.7, bh, seriesColors[0], "")
		if i < len(d.Labels) {
			p.text(bx+slot/2, y+h-1, truncate(d.Labels[i], slot, sizeCell), sizeCell, colorMuted, 0.5)
		}
	}
	p.line(x+pad, base, x+w-pad, base, colorRule)
}

func paintPie(p painter, d exhibit.ChartData, x, y, w, h float64) {
	total := d.Total()
	if total <= 0 {
		return
	}
	r := math.Min(w, h)/2 - 3
	if r <= 0 {
		return
	}
	cx, cy := x+w/2, y+h/2
	a := -math.Pi / 2
	for i, v := range d.Values {
		if v <= 0 {
			continue
		}
		next := a + 2*math.Pi*v/total
		p.wedge(cx, cy, r, a, next, seriesColors[i%len(seriesColors)])
		a = next
	}
}

// truncate shortens s to fit roughly within width at the given font size.
func truncate(s string, width, size float64) string {
	limit := int(width / (size * 0.5))
	if limit < 2 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
