// Package cli implements the exhibitboard command-line interface.
//
// Boards live in JSON files (see pkg/io). Commands create a board, apply
// event logs to it, edit it interactively, render it and serve a live
// preview. All commands accept --verbose (-v) for debug logging and
// --config to read a TOML file other than the XDG default.
package cli

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/exhibitboard/pkg/board"
	"github.com/matzehuels/exhibitboard/pkg/buildinfo"
	"github.com/matzehuels/exhibitboard/pkg/cache"
	"github.com/matzehuels/exhibitboard/pkg/config"
	"github.com/matzehuels/exhibitboard/pkg/export"
	boardio "github.com/matzehuels/exhibitboard/pkg/io"
)

// =============================================================================
// Constants
// =============================================================================

const appName = config.AppName

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        config.Config
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Exhibitboard lays out report exhibits on a grid or in quadrants",
		Long:         `Exhibitboard builds report layouts from tables, charts and images, either on a free 12 column grid or on pages of four quadrants, and exports them as SVG, PNG, PDF, JSON or text.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/exhibitboard/config.toml)")

	root.AddCommand(c.newCommand())
	root.AddCommand(c.applyCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.summaryCommand())
	root.AddCommand(c.paletteCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

func (c *CLI) loadConfig() error {
	var err error
	if c.configPath != "" {
		c.cfg, err = config.Load(c.configPath)
	} else {
		c.cfg, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}
	c.Logger.Debug("config loaded", "path", c.configPath, "cache", c.cfg.Cache.Backend)
	return nil
}

// =============================================================================
// Cache Factory
// =============================================================================

func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.None, nil
	}
	switch c.cfg.Cache.Backend {
	case config.BackendNone:
		return cache.None, nil
	case config.BackendRedis:
		return cache.NewRedisCache(ctx, cache.RedisOptions{Addr: c.cfg.Cache.RedisAddr, Prefix: appName + ":"})
	}
	dir, err := c.cfg.CacheDir()
	if err != nil {
		c.Logger.Warn("no cache directory, caching disabled", "err", err)
		return cache.None, nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Boards
// =============================================================================

func loadBoard(path string) (boardio.Document, error) {
	return boardio.ImportDocument(path)
}

func saveBoard(doc boardio.Document, path string) error {
	if doc.Variant == boardio.VariantGrid {
		return boardio.ExportGrid(doc.Grid, path)
	}
	return boardio.ExportBook(doc.Book, path)
}

func (c *CLI) handler(doc boardio.Document, logger *log.Logger) board.Handler {
	if doc.Variant == boardio.VariantGrid {
		return board.NewGridHandler(doc.Grid, c.cfg.Catalog(), logger)
	}
	return board.NewQuadrantHandler(doc.Book, logger)
}

// exportDocument prepares doc for rendering. The sheet uses the board's own
// column count.
func (c *CLI) exportDocument(doc boardio.Document) export.Document {
	page := c.cfg.Export
	if doc.Variant == boardio.VariantGrid {
		page.Columns = doc.Grid.Config().Columns
		return export.FromGrid(doc.Grid.Items(), page)
	}
	return export.FromBook(doc.Book.Pages(), page)
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format list, defaulting to svg.
func parseFormats(s string) ([]export.Format, error) {
	if strings.TrimSpace(s) == "" {
		return []export.Format{export.FormatSVG}, nil
	}
	var out []export.Format
	for _, part := range strings.Split(s, ",") {
		f, err := export.ParseFormat(part)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}
