package cmd

import (
	"os"

	"github.com/rnwolfe/hop/internal/ui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hop [query]",
	Short: "Jump to the directories you actually use",
	Long: `hop ranks every directory you have visited against a fuzzy query
and prints the best match, so your shell can cd straight to it.

Pair it with the shell hook: eval "$(hop init zsh)"`,
	Args: cobra.ArbitraryArgs,
	RunE: runJump,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Err(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(pruneCmd)
	rootCmd.AddCommand(trackCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}
