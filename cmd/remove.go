package cmd

import (
	"github.com/rnwolfe/hop/internal/store"
	"github.com/rnwolfe/hop/internal/ui"
	"github.com/rnwolfe/hop/internal/visit"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <path>",
	Aliases: []string{"rm"},
	Short:   "Stop tracking a directory",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func runRemove(_ *cobra.Command, args []string) error {
	db, err := store.Open()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := visit.NewStore(db.Conn()).Remove(args[0]); err != nil {
		return err
	}

	ui.Ok("removed " + args[0])
	return nil
}
