package cli

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// editCommand opens the interactive board editor.
func (c *CLI) editCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [board.json]",
		Short: "Edit a board interactively",
		Long: `Edit a board in the terminal.

Grid boards: pick an exhibit from the palette and press enter to drop it at
the first free position; on the canvas, +/- change the width, m re-runs
first-fit, d deletes. Quadrant boards: press 1-4 to drop the highlighted pool
item into a quadrant; on the page, m then 1-4 moves, d returns the item to
the pool, a adds a page. y copies the layout summary to the clipboard.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: boardFileArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			doc, err := loadBoard(path)
			if err != nil {
				return err
			}

			// Handler logs would corrupt the alternate screen.
			h := c.handler(doc, log.New(io.Discard))
			model := newEditorModel(cmd.Context(), doc, h, c.cfg.Catalog(), path)

			final, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}
			if m, ok := final.(editorModel); ok {
				switch {
				case m.dirty:
					printWarning("Discarded unsaved changes")
				case m.saved:
					printSuccess("Saved board")
					printFile(path)
				}
			}
			return nil
		},
	}
}
