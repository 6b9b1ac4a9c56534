package export

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// pxPerMM is the raster resolution at scale 1 (96 dpi).
const pxPerMM = 96 / 25.4

type ggPainter struct {
	dc    *gg.Context
	scale float64
	font  *truetype.Font
	faces map[float64]font.Face
}

func (p *ggPainter) rect(x, y, w, h float64, fill, stroke string) {
	s := p.scale
	p.dc.DrawRectangle(x*s, y*s, w*s, h*s)
	if fill != "" {
		p.dc.SetHexColor(fill)
		p.dc.FillPreserve()
	}
	if stroke != "" {
		p.dc.SetHexColor(stroke)
		p.dc.SetLineWidth(1)
		p.dc.StrokePreserve()
	}
	p.dc.ClearPath()
}

func (p *ggPainter) line(x1, y1, x2, y2 float64, stroke string) {
	s := p.scale
	p.dc.SetHexColor(stroke)
	p.dc.SetLineWidth(1)
	p.dc.DrawLine(x1*s, y1*s, x2*s, y2*s)
	p.dc.Stroke()
}

func (p *ggPainter) text(x, y float64, str string, size float64, fill string, anchor float64) {
	if str == "" {
		return
	}
	p.dc.SetFontFace(p.face(size))
	p.dc.SetHexColor(fill)
	p.dc.DrawStringAnchored(str, x*p.scale, y*p.scale, anchor, 0)
}

func (p *ggPainter) wedge(cx, cy, r, a0, a1 float64, fill string) {
	s := p.scale
	p.dc.SetHexColor(fill)
	p.dc.MoveTo(cx*s, cy*s)
	p.dc.DrawArc(cx*s, cy*s, r*s, a0, a1)
	p.dc.ClosePath()
	p.dc.Fill()
}

func (p *ggPainter) face(size float64) font.Face {
	if f, ok := p.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(p.font, &truetype.Options{
		Size:    size * p.scale,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	p.faces[size] = f
	return f
}

// RenderPNG rasterizes all sheets stacked vertically. scale multiplies the
// base resolution of 96 dpi.
func RenderPNG(sheets []Sheet, cfg PageConfig, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = 1
	}
	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	s := scale * pxPerMM
	height := stackedHeight(len(sheets), cfg)
	dc := gg.NewContext(int(cfg.Width*s), int(height*s))
	dc.SetColor(color.White)
	dc.Clear()

	p := &ggPainter{dc: dc, scale: s, font: ttf, faces: make(map[float64]font.Face)}
	for i, sh := range sheets {
		paintSheet(p, sh, cfg, float64(i)*(cfg.Height+sheetGap))
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
