package export

import (
	"bytes"
	"fmt"
	"html"
	"math"
)

// sheetGap separates stacked sheets.
const sheetGap = 10.0

type svgPainter struct{ buf *bytes.Buffer }

func (s svgPainter) rect(x, y, w, h float64, fill, stroke string) {
	if fill == "" {
		fill = "none"
	}
	fmt.Fprintf(s.buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"`, x, y, w, h, fill)
	if stroke != "" {
		fmt.Fprintf(s.buf, ` stroke="%s" stroke-width="0.3"`, stroke)
	}
	s.buf.WriteString("/>\n")
}

func (s svgPainter) line(x1, y1, x2, y2 float64, stroke string) {
	fmt.Fprintf(s.buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="0.3"/>`+"\n", x1, y1, x2, y2, stroke)
}

func (s svgPainter) text(x, y float64, str string, size float64, fill string, anchor float64) {
	if str == "" {
		return
	}
	a := "start"
	switch {
	case anchor >= 1:
		a = "end"
	case anchor > 0:
		a = "middle"
	}
	fmt.Fprintf(s.buf, `  <text x="%.2f" y="%.2f" font-size="%.2f" fill="%s" text-anchor="%s">%s</text>`+"\n",
		x, y, size, fill, a, html.EscapeString(str))
}

func (s svgPainter) wedge(cx, cy, r, a0, a1 float64, fill string) {
	if a1-a0 >= 2*math.Pi-1e-9 {
		fmt.Fprintf(s.buf, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`+"\n", cx, cy, r, fill)
		return
	}
	large := 0
	if a1-a0 > math.Pi {
		large = 1
	}
	fmt.Fprintf(s.buf, `  <path d="M %.2f %.2f L %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f Z" fill="%s"/>`+"\n",
		cx, cy, cx+r*math.Cos(a0), cy+r*math.Sin(a0), r, r, large, cx+r*math.Cos(a1), cy+r*math.Sin(a1), fill)
}

// RenderSVG draws all sheets stacked vertically in one document.
func RenderSVG(sheets []Sheet, cfg PageConfig) []byte {
	height := stackedHeight(len(sheets), cfg)
	var buf bytes.Buffer
	writeSVGHeader(&buf, cfg.Width, height)
	for i, s := range sheets {
		paintSheet(svgPainter{&buf}, s, cfg, float64(i)*(cfg.Height+sheetGap))
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// RenderSheetSVG draws a single sheet at page size.
func RenderSheetSVG(s Sheet, cfg PageConfig) []byte {
	var buf bytes.Buffer
	writeSVGHeader(&buf, cfg.Width, cfg.Height)
	paintSheet(svgPainter{&buf}, s, cfg, 0)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func writeSVGHeader(buf *bytes.Buffer, w, h float64) {
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.1fmm" height="%.1fmm" font-family="Helvetica, Arial, sans-serif">`+"\n",
		w, h, w, h)
}

func stackedHeight(n int, cfg PageConfig) float64 {
	if n < 1 {
		n = 1
	}
	return float64(n)*cfg.Height + float64(n-1)*sheetGap
}
