package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rnwolfe/hop/internal/shell"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [shell]",
	Short: "Print the shell integration script",
	Long: `Prints the cd hook and the h() jump function for your shell.

Add to your shell config:
  eval "$(hop init zsh)"     # ~/.zshrc
  eval "$(hop init bash)"    # ~/.bashrc
  hop init fish | source     # config.fish`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(_ *cobra.Command, args []string) error {
	name := ""
	if len(args) > 0 {
		name = args[0]
	} else {
		name = detectShell()
	}
	if name == "" {
		return fmt.Errorf("could not detect shell — pass one of: bash, zsh, fish")
	}

	script, err := shell.InitScript(name)
	if err != nil {
		return err
	}
	fmt.Print(script)
	return nil
}

// detectShell guesses the caller's shell from $SHELL.
func detectShell() string {
	base := filepath.Base(os.Getenv("SHELL"))
	switch {
	case strings.Contains(base, "zsh"):
		return shell.Zsh
	case strings.Contains(base, "bash"):
		return shell.Bash
	case strings.Contains(base, "fish"):
		return shell.Fish
	}
	return ""
}
