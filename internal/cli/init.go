package cli

import (
	"fmt"

	"github.com/deadlyhood/carbonlog/internal/logstore"
	"github.com/spf13/cobra"
)

var initCmd = LeafCommand{
	Use:   "init",
	Short: "Initialize the footprint log",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := ResolveStore()
		if err != nil {
			return err
		}
		return runInit(cmd, store)
	},
}.Build()

func runInit(cmd *cobra.Command, store *logstore.Store) error {
	exists, err := store.Exists()
	if err != nil {
		return err
	}
	if exists {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "footprint log already initialized at %s\n", Primary(store.Path()))
		return nil
	}

	if err := store.EnsureInitialized(); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "footprint log created at %s\n", Primary(store.Path()))
	return nil
}
