package cli

import (
	"fmt"
	"io"

	"github.com/deadlyhood/carbonlog/internal/entry"
	"github.com/deadlyhood/carbonlog/internal/logstore"
	"github.com/deadlyhood/carbonlog/internal/stats"
	"github.com/spf13/cobra"
)

var historyCmd = LeafCommand{
	Use:   "history",
	Short: "Show logged entries, newest first",
	IntFlags: []IntFlag{
		{Name: "limit", Usage: "maximum number of entries to show (0 = all)", Default: 20},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		if limit < 0 {
			return fmt.Errorf("--limit must be 0 or positive")
		}

		store, err := ResolveStore()
		if err != nil {
			return err
		}

		return runHistory(cmd, store, limit)
	},
}.Build()

func runHistory(cmd *cobra.Command, store *logstore.Store, limit int) error {
	entries, err := store.ReadAll()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no entries found")
		return nil
	}

	items := stats.RecentHistory(entries, limit)
	return runHistoryView(cmd, items)
}

// historyLine renders one entry as a single display row.
func historyLine(e entry.Entry) string {
	line := fmt.Sprintf("%s  %s",
		Primary(e.Date),
		Text(fmt.Sprintf("%9s", entry.FormatKg(e.FootprintKg))),
	)
	if e.FootprintKg > 0 {
		line += "  " + Info("top: "+entry.TopContributor(e).String())
	}
	if e.Recycled {
		line += "  " + Primary("♻")
	}
	return line
}

func printStaticHistory(w io.Writer, items []entry.Entry) error {
	for _, e := range items {
		_, _ = fmt.Fprintln(w, historyLine(e))
	}
	return nil
}
