package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// summaryCommand prints the text summary of a board.
func (c *CLI) summaryCommand() *cobra.Command {
	var asTable bool

	cmd := &cobra.Command{
		Use:               "summary [board.json]",
		Short:             "Print the layout summary of a board",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: boardFileArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadBoard(args[0])
			if err != nil {
				return err
			}
			exp := c.exportDocument(doc)
			if asTable {
				fmt.Fprintln(cmd.OutOrStdout(), entriesTable(exp.Entries))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), exp.Summary)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asTable, "table", false, "print placed exhibits as a table")

	return cmd
}

// paletteCommand lists the exhibits available for placement.
func (c *CLI) paletteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "List the exhibit palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), paletteTable(c.cfg.Catalog()))
			return nil
		},
	}
}
