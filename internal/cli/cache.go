package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/exhibitboard/pkg/cache"
	"github.com/matzehuels/exhibitboard/pkg/config"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the rendered artifact cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.cfg.Cache.Backend != config.BackendFile {
				printWarning("Cache backend is %q; only the file cache can be cleared here", c.cfg.Cache.Backend)
				return nil
			}
			dir, err := c.cfg.CacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fc, err := cache.NewFileCache(dir)
			if err != nil {
				return err
			}
			n, err := fc.Clear()
			if err != nil {
				return err
			}
			if n == 0 {
				printInfo("Cache is empty")
				return nil
			}
			printSuccess("Cleared %d cached entries", n)
			printDetail("Directory: %s", dir)
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := c.cfg.CacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}
