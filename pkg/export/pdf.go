package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/matzehuels/exhibitboard/pkg/errors"
)

// RenderPDF writes one PDF page per sheet by converting each sheet's SVG
// with rsvg-convert.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, sheets []Sheet, cfg PageConfig) ([]byte, error) {
	svgs := make([][]byte, len(sheets))
	for i, s := range sheets {
		svgs[i] = RenderSheetSVG(s, cfg)
	}
	return rsvgConvert(ctx, svgs, "pdf")
}

// rsvgConvert shells out to rsvg-convert. Several inputs produce a
// multi-page document.
func rsvgConvert(ctx context.Context, svgs [][]byte, format string, extraArgs ...string) ([]byte, error) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"%s export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", format)
	}

	dir, err := os.MkdirTemp("", "exhibitboard-*")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create temp dir")
	}
	defer os.RemoveAll(dir)

	args := append([]string{"-f", format}, extraArgs...)
	for i, svg := range svgs {
		path := filepath.Join(dir, fmt.Sprintf("sheet-%03d.svg", i+1))
		if err := os.WriteFile(path, svg, 0o600); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "write sheet %d", i+1)
		}
		args = append(args, path)
	}

	cmd := exec.CommandContext(ctx, "rsvg-convert", args...)
	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "rsvg-convert: %s", errBuf.String())
	}
	return out.Bytes(), nil
}
