package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/exhibitboard/pkg/cache"
	"github.com/matzehuels/exhibitboard/pkg/errors"
	"github.com/matzehuels/exhibitboard/pkg/export"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	output  string          // output file (single format) or base path
	formats []export.Format // svg, png, pdf, json, txt
	scale   float64         // PNG scale factor
	title   string          // sheet title override
	noCache bool
}

// renderCommand exports a board to files.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{scale: 2.0}

	cmd := &cobra.Command{
		Use:   "render [board.json]",
		Short: "Export a board to SVG, PNG, PDF, JSON or text",
		Long: `Export a board to one or more formats.

Grid boards are paginated row by row onto landscape sheets; quadrant boards
produce one sheet per non-empty page. Each sheet lists the disclaimers of the
exhibits it carries. PDF output requires rsvg-convert.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: boardFileArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats, err := parseFormats(formatsStr)
			if err != nil {
				return err
			}
			opts.formats = formats
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json, txt (comma-separated)")
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().StringVar(&opts.title, "title", "", "sheet title (overrides config)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// basePath derives the base output path. An empty output strips the
// extension from input; a known format extension on output is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if _, err := export.ParseFormat(strings.TrimPrefix(ext, ".")); err == nil {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath returns where format f is written. It never returns the input
// board itself.
func outputPath(output, input string, f export.Format, multiple bool) string {
	path := output
	if path == "" || multiple {
		path = basePath(output, input) + "." + string(f)
	}
	if filepath.Clean(path) == filepath.Clean(input) {
		path = basePath("", input) + ".export." + string(f)
	}
	return path
}

func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	if opts.scale <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %v", opts.scale)
	}
	doc, err := loadBoard(input)
	if err != nil {
		return err
	}
	if opts.title != "" {
		c.cfg.Export.Title = opts.title
	}
	exp := c.exportDocument(doc)
	if len(exp.Sheets) == 0 {
		printWarning("Board is empty, rendering a blank sheet")
	}

	store, err := c.newCache(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer store.Close()
	hash, err := cache.HashJSON(exp)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "hash document")
	}
	keyer := cache.NewDefaultKeyer()

	for _, f := range opts.formats {
		path := outputPath(opts.output, input, f, len(opts.formats) > 1)
		if err := errors.ValidateOutputPath(path); err != nil {
			return err
		}

		prog := newProgress(c.Logger)
		var data []byte
		err := withSpinner(ctx, os.Stderr, fmt.Sprintf("Rendering %s...", f), func() error {
			key := keyer.ArtifactKey(hash, cache.ArtifactKeyOpts{Format: string(f), Scale: opts.scale})
			var err error
			data, err = cache.Fetch(ctx, store, key, cache.KeyTypeArtifact, c.cfg.Cache.TTL, func() ([]byte, error) {
				return export.Render(ctx, exp, f, export.WithScale(opts.scale))
			})
			return err
		})
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
		}
		prog.done("Rendered "+string(f), "sheets", len(exp.Sheets), "bytes", len(data))
		printFile(path)
	}
	return nil
}
