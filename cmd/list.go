package cmd

import (
	"fmt"

	"github.com/rnwolfe/hop/internal/config"
	"github.com/rnwolfe/hop/internal/store"
	"github.com/rnwolfe/hop/internal/ui"
	"github.com/rnwolfe/hop/internal/visit"
	"github.com/spf13/cobra"
)

var listScores bool

var listCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "List tracked directories, optionally ranked against a query",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listScores, "scores", false, "Show the raw rank next to each path")
}

func runList(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	showScores := listScores || cfg.Search.ShowScores

	db, err := store.Open()
	if err != nil {
		return err
	}
	defer db.Close()
	visits := visit.NewStore(db.Conn())

	// Ranked listing when a query is given; plain recency order otherwise.
	if len(args) == 1 {
		ranked, err := visits.Search(args[0], cfg.Search.Limit)
		if err != nil {
			return err
		}
		if len(ranked) == 0 {
			ui.Inf("no matches for " + args[0])
			return nil
		}
		for _, r := range ranked {
			if showScores {
				ui.Putsf("%6d  %s", r.Rank, r.Path)
			} else {
				ui.Puts(r.Path)
			}
		}
		return nil
	}

	all, err := visits.List()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		ui.Inf("nothing tracked yet")
		return nil
	}
	for _, v := range all {
		if v.Count > 1 {
			ui.Puts(v.Path + ui.Muted.Render(fmt.Sprintf("  %s %d visits", ui.IconDot, v.Count)))
		} else {
			ui.Puts(v.Path)
		}
	}
	return nil
}
