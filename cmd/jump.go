package cmd

import (
	"fmt"
	"strings"

	"github.com/rnwolfe/hop/internal/config"
	"github.com/rnwolfe/hop/internal/store"
	"github.com/rnwolfe/hop/internal/tui"
	"github.com/rnwolfe/hop/internal/visit"
	"github.com/spf13/cobra"
)

var jumpPick bool

func init() {
	rootCmd.Flags().BoolVarP(&jumpPick, "pick", "p", false, "Always open the interactive picker")
}

// runJump resolves a query to a single directory and prints it on stdout
// for the shell function to cd into. Everything decorative goes to
// stderr so captured output stays a bare path.
func runJump(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := store.Open()
	if err != nil {
		return err
	}
	defer db.Close()
	visits := visit.NewStore(db.Conn())

	query := strings.Join(args, " ")

	// `hop -` — bounce back to the previous directory.
	if query == "-" {
		prev, err := visits.Previous()
		if err != nil {
			return err
		}
		if prev == "" {
			return fmt.Errorf("no previous directory tracked yet")
		}
		fmt.Println(prev)
		return nil
	}

	// Bare `hop` or --pick on a terminal: interactive selection.
	if jumpPick || (query == "" && cfg.Picker.IsEnabled() && tui.IsTTY()) {
		return pickAndPrint(visits, cfg, query)
	}
	if query == "" {
		return fmt.Errorf("query required (or run on a terminal for the picker)")
	}

	best, err := visits.Best(query)
	if err != nil {
		return err
	}
	fmt.Println(best.Path)
	return nil
}

func pickAndPrint(visits *visit.Store, cfg *config.Config, query string) error {
	all, err := visits.List()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		return fmt.Errorf("nothing tracked yet — cd around for a while, or `hop add` a directory")
	}

	items := make([]tui.Item, len(all))
	for i, v := range all {
		items[i] = v
	}

	chosen, err := tui.Run(items,
		tui.WithTitle("hop"),
		tui.WithQuery(query),
		tui.WithHeight(cfg.Picker.Height),
	)
	if err != nil {
		return err
	}
	if chosen == nil {
		return nil // canceled
	}

	fmt.Println(chosen.(visit.Visit).Path)
	return nil
}
