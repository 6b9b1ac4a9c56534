package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/exhibitboard/pkg/errors"
	"github.com/matzehuels/exhibitboard/pkg/exhibit"
	"github.com/matzehuels/exhibitboard/pkg/grid"
	boardio "github.com/matzehuels/exhibitboard/pkg/io"
	"github.com/matzehuels/exhibitboard/pkg/quadrant"
)

type newOpts struct {
	variant string
	seed    bool
	force   bool
}

// newCommand creates an empty board file.
func (c *CLI) newCommand() *cobra.Command {
	opts := newOpts{variant: boardio.VariantGrid}

	cmd := &cobra.Command{
		Use:   "new [board.json]",
		Short: "Create a new board",
		Long: `Create a new board file.

A grid board is a free 12 column canvas; --seed places every palette exhibit
with first-fit. A quadrant board starts with one empty page and a source
pool (the configured palette, or eight sample exhibits).`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: boardFileArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runNew(args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.variant, "variant", opts.variant, "board variant: grid, quadrant")
	_ = cmd.RegisterFlagCompletionFunc("variant", completeVariants)
	cmd.Flags().BoolVar(&opts.seed, "seed", false, "place the palette on a new grid board")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "overwrite an existing file")

	return cmd
}

func (c *CLI) runNew(path string, opts newOpts) error {
	if !opts.force {
		if _, err := os.Stat(path); err == nil {
			return errors.New(errors.ErrCodeInvalidPath, "%s already exists (use --force to overwrite)", path)
		}
	}

	doc, err := c.newBoard(opts)
	if err != nil {
		return err
	}
	if err := saveBoard(doc, path); err != nil {
		return err
	}

	printSuccess("Created %s board", doc.Variant)
	printFile(path)
	printNextStep("Edit it", fmt.Sprintf("%s edit %s", appName, path))
	return nil
}

func (c *CLI) newBoard(opts newOpts) (boardio.Document, error) {
	switch opts.variant {
	case boardio.VariantGrid:
		s, err := grid.NewStore(c.cfg.Grid)
		if err != nil {
			return boardio.Document{}, err
		}
		if opts.seed {
			for _, e := range c.cfg.Catalog().All() {
				if _, ch := s.Place(e); !ch.Applied {
					c.Logger.Warn("palette exhibit not placed", "exhibit", e.ID, "reason", ch.Reason)
				}
			}
		}
		return boardio.Document{Variant: boardio.VariantGrid, Grid: s}, nil

	case boardio.VariantQuadrant:
		pool := exhibit.QuadrantSeed()
		if len(c.cfg.Palette) > 0 {
			pool = c.cfg.Catalog().All()
		}
		b, err := quadrant.NewBook(pool...)
		if err != nil {
			return boardio.Document{}, err
		}
		return boardio.Document{Variant: boardio.VariantQuadrant, Book: b}, nil
	}
	return boardio.Document{}, errors.New(errors.ErrCodeInvalidInput, "unknown variant %q (want grid or quadrant)", opts.variant)
}
