package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/deadlyhood/carbonlog/internal/entry"
	"github.com/deadlyhood/carbonlog/internal/logstore"
	"github.com/deadlyhood/carbonlog/internal/stats"
	"github.com/spf13/cobra"
)

var statusCmd = LeafCommand{
	Use:   "status",
	Short: "Show the log location and current totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := ResolveStore()
		if err != nil {
			return err
		}

		return runStatus(cmd, store, time.Now)
	},
}.Build()

func runStatus(cmd *cobra.Command, store *logstore.Store, nowFn func() time.Time) error {
	w := cmd.OutOrStdout()

	exists, err := store.Exists()
	if err != nil {
		return err
	}
	if !exists {
		_, _ = fmt.Fprintf(w, "%s       %s\n", Silent("Log path:"), Text(store.Path()))
		_, _ = fmt.Fprintln(w, "not initialized (run 'carbonlog init' to create the log)")
		return nil
	}

	entries, rep, err := store.ReadAllReport()
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "%s       %s\n", Silent("Log path:"), Text(store.Path()))
	_, _ = fmt.Fprintf(w, "%s        %s\n", Silent("Entries:"), Text(strconv.Itoa(len(entries))))

	if len(entries) > 0 {
		last := entries[len(entries)-1]
		detail := entry.FormatKg(last.FootprintKg) + " CO2"
		if last.FootprintKg > 0 {
			detail += ", top: " + entry.TopContributor(last).String()
		}
		_, _ = fmt.Fprintf(w, "%s     %s %s\n", Silent("Last entry:"), Primary(last.Date), Text("("+detail+")"))

		now := nowFn()
		today := stats.WindowStats(entries, now, 1)
		week := stats.WindowStats(entries, now, 7)

		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintf(w, "%s          %s\n", Silent("Today:"), Primary(entry.FormatKg(today.SumKg)+" CO2"))
		_, _ = fmt.Fprintf(w, "%s      %s\n", Silent("This week:"),
			Text(fmt.Sprintf("%s CO2 over %d entries", entry.FormatKg(week.SumKg), week.DaysWithEntries)))
		_, _ = fmt.Fprintf(w, "%s   %s\n", Silent("Week average:"),
			Text(entry.FormatKg(week.AvgKgPerDay)+" CO2 per recorded day"))

		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintf(w, "%s       %s\n", Silent("Recycled:"),
			Text(fmt.Sprintf("%d of %d entries", week.RecycleDayCount, week.DaysWithEntries)))
		_, _ = fmt.Fprintf(w, "%s  %s\n", Silent("Transit rides:"), Text(strconv.Itoa(week.PublicTransportTotal)))
		_, _ = fmt.Fprintf(w, "%s %s\n", Silent("Saving actions:"), Text(strconv.Itoa(week.SavedElectricityTotal)))
	}

	if rep.DegradedFields > 0 {
		_, _ = fmt.Fprintf(w, "\n%s %d malformed field(s) in the log were read as zero\n",
			Warning("Warning:"), rep.DegradedFields)
	}

	return nil
}
