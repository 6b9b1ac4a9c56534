package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/exhibitboard/pkg/board"
	"github.com/matzehuels/exhibitboard/pkg/errors"
	boardio "github.com/matzehuels/exhibitboard/pkg/io"
)

type applyOpts struct {
	dryRun bool
	strict bool
}

// applyCommand replays an event log onto a board.
func (c *CLI) applyCommand() *cobra.Command {
	var opts applyOpts

	cmd := &cobra.Command{
		Use:   "apply [board.json] [events.json]",
		Short: "Apply an event log to a board",
		Long: `Apply place, move, resize and delete events to a board in order.

Events are read from a JSON array or one JSON object per line. Rejected
events leave the board unchanged and are reported with their reason.`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: boardFileArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runApply(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "report outcomes without saving the board")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail if any event is rejected")

	return cmd
}

func (c *CLI) runApply(cmd *cobra.Command, boardPath, eventsPath string, opts applyOpts) error {
	doc, err := loadBoard(boardPath)
	if err != nil {
		return err
	}
	events, err := boardio.ImportEvents(eventsPath)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	res, err := board.Replay(cmd.Context(), c.handler(doc, c.Logger), events)
	if err != nil {
		return err
	}
	prog.done("Replayed events", "events", len(events))
	printReplay(res)

	if opts.strict && res.Rejected > 0 {
		return errors.New(errors.ErrCodePlacementRejected, "%d of %d events rejected", res.Rejected, len(events))
	}
	if opts.dryRun {
		printInfo("Dry run, %s not written", boardPath)
		return nil
	}
	if err := saveBoard(doc, boardPath); err != nil {
		return err
	}
	printSuccess("Saved board")
	printFile(boardPath)
	return nil
}
