package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/exhibitboard/pkg/export"
	boardio "github.com/matzehuels/exhibitboard/pkg/io"
)

var completionScripts = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash":       func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	"zsh":        func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	"fish":       func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	"powershell": func(root *cobra.Command, w io.Writer) error { return root.GenPowerShellCompletionWithDesc(w) },
}

// completionCommand creates the completion command. Besides subcommands and
// flags, the scripts complete board files and --format and --variant values.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for exhibitboard.

Board arguments complete to .json files, --format to the export formats
(comma-separated lists included) and --variant to grid or quadrant.

Examples:
  $ source <(exhibitboard completion bash)
  $ exhibitboard completion zsh > "${fpath[1]}/_exhibitboard"
  $ exhibitboard completion fish > ~/.config/fish/completions/exhibitboard.fish
  PS> exhibitboard completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return completionScripts[args[0]](cmd.Root(), cmd.OutOrStdout())
		},
	}
	return cmd
}

// boardFileArgs completes the first n positional arguments to JSON files.
func boardFileArgs(n int) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) >= n {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return []string{"json"}, cobra.ShellCompDirectiveFilterFileExt
	}
}

// completeFormats completes the last element of a comma-separated format list.
func completeFormats(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	prefix := ""
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix = toComplete[:i+1]
	}
	var out []string
	for _, f := range export.Formats {
		if strings.Contains(prefix, string(f)) {
			continue
		}
		out = append(out, prefix+string(f))
	}
	return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

func completeVariants(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{boardio.VariantGrid, boardio.VariantQuadrant}, cobra.ShellCompDirectiveNoFileComp
}
