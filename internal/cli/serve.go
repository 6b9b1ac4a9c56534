package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/exhibitboard/pkg/export"
	"github.com/matzehuels/exhibitboard/pkg/preview"
)

// serveCommand starts the preview server for a board file.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve [board.json]",
		Short: "Serve a live preview of a board over HTTP",
		Long: `Serve a read-only preview of a board.

The board file is re-read on every request, so edits made with "apply" or
"edit" show up on reload. Open /layout.svg, /layout.png, /layout.pdf,
/layout.json, /summary or /entries.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: boardFileArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.cfg.Preview.Addr
			}
			return c.runServe(cmd.Context(), args[0], addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, path, addr string, noCache bool) error {
	if _, err := loadBoard(path); err != nil {
		return err
	}
	store, err := c.newCache(ctx, noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	load := func(context.Context) (export.Document, error) {
		doc, err := loadBoard(path)
		if err != nil {
			return export.Document{}, err
		}
		return c.exportDocument(doc), nil
	}
	srv := preview.NewServer(load,
		preview.WithCache(store, nil),
		preview.WithTTL(c.cfg.Cache.TTL),
		preview.WithLogger(c.Logger),
	)

	printSuccess("Serving %s", path)
	printKeyValue("Address", StyleLink.Render("http://"+displayAddr(addr)+"/layout.svg"))
	printDetail("Press Ctrl+C to stop")
	return srv.ListenAndServe(ctx, addr)
}

// displayAddr turns a listen address such as ":8080" into a browsable host.
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
