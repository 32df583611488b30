package cmd

import (
	"github.com/rnwolfe/hop/internal/store"
	"github.com/rnwolfe/hop/internal/visit"
	"github.com/spf13/cobra"
)

// trackCmd is called by the shell hook on every directory change. It is
// hidden and silent: the hook runs it in the background and nobody
// should see its output.
var trackCmd = &cobra.Command{
	Use:    "track <path>",
	Short:  "Record a directory visit (called by the shell hook)",
	Hidden: true,
	Args:   cobra.ExactArgs(1),
	RunE:   runTrack,
}

func runTrack(_ *cobra.Command, args []string) error {
	db, err := store.Open()
	if err != nil {
		return err
	}
	defer db.Close()

	visits := visit.NewStore(db.Conn())
	v, err := visits.Record(args[0])
	if err != nil {
		return err
	}
	return visits.MarkCurrent(v.Path)
}
