package cmd

import (
	"github.com/rnwolfe/hop/internal/store"
	"github.com/rnwolfe/hop/internal/ui"
	"github.com/rnwolfe/hop/internal/visit"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [path]",
	Short: "Track a directory without visiting it (defaults to cwd)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAdd,
}

func runAdd(_ *cobra.Command, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	db, err := store.Open()
	if err != nil {
		return err
	}
	defer db.Close()

	v, err := visit.NewStore(db.Conn()).Record(path)
	if err != nil {
		return err
	}

	ui.Ok("tracking " + v.Path)
	return nil
}
