package cmd

import (
	"fmt"

	"github.com/rnwolfe/hop/internal/store"
	"github.com/rnwolfe/hop/internal/ui"
	"github.com/rnwolfe/hop/internal/visit"
	"github.com/spf13/cobra"
)

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Drop tracked directories that no longer exist",
	Args:  cobra.NoArgs,
	RunE:  runPrune,
}

func runPrune(_ *cobra.Command, _ []string) error {
	db, err := store.Open()
	if err != nil {
		return err
	}
	defer db.Close()

	removed, err := visit.NewStore(db.Conn()).Prune()
	if err != nil {
		return err
	}

	if len(removed) == 0 {
		ui.Inf("nothing to prune")
		return nil
	}
	for _, path := range removed {
		ui.Puts(ui.Muted.Render("  - " + path))
	}
	ui.Ok(fmt.Sprintf("pruned %d directories", len(removed)))
	return nil
}
