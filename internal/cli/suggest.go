package cli

import (
	"fmt"
	"time"

	"github.com/deadlyhood/carbonlog/internal/logstore"
	"github.com/deadlyhood/carbonlog/internal/stats"
	"github.com/spf13/cobra"
)

var suggestCmd = LeafCommand{
	Use:   "suggest",
	Short: "Suggest habit changes based on the last week",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := ResolveStore()
		if err != nil {
			return err
		}

		return runSuggest(cmd, store, time.Now)
	},
}.Build()

func runSuggest(cmd *cobra.Command, store *logstore.Store, nowFn func() time.Time) error {
	entries, err := store.ReadAll()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, s := range stats.Suggestions(entries, nowFn()) {
		_, _ = fmt.Fprintf(w, "%s %s\n", Primary("•"), Text(s))
	}

	return nil
}
