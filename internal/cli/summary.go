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

var summaryCmd = LeafCommand{
	Use:   "summary",
	Short: "Show footprint totals for a window of days",
	IntFlags: []IntFlag{
		{Name: "days", Usage: "window length in days", Default: 7},
	},
	BoolFlags: []BoolFlag{
		{Name: "today", Usage: "show today only (same as --days 1)"},
		{Name: "month", Usage: "show the last 30 days (same as --days 30)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := ResolveStore()
		if err != nil {
			return err
		}

		days, _ := cmd.Flags().GetInt("days")
		today, _ := cmd.Flags().GetBool("today")
		month, _ := cmd.Flags().GetBool("month")
		daysChanged := cmd.Flags().Changed("days")

		nDays, err := resolveWindow(days, today, month, daysChanged)
		if err != nil {
			return err
		}

		return runSummary(cmd, store, nDays, time.Now)
	},
}.Build()

// resolveWindow turns the --days/--today/--month flags into a window length.
func resolveWindow(days int, today, month, daysChanged bool) (int, error) {
	if today && month {
		return 0, fmt.Errorf("--today and --month cannot be used together")
	}
	if daysChanged && (today || month) {
		return 0, fmt.Errorf("--days cannot be combined with --today or --month")
	}
	if today {
		return 1, nil
	}
	if month {
		return 30, nil
	}
	if days <= 0 {
		return 0, fmt.Errorf("--days must be positive")
	}
	return days, nil
}

func runSummary(cmd *cobra.Command, store *logstore.Store, nDays int, nowFn func() time.Time) error {
	entries, rep, err := store.ReadAllReport()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(w, "no entries logged yet (use 'carbonlog add' to record a day)")
		return nil
	}

	now := nowFn()
	window := stats.WindowStats(entries, now, nDays)
	totals, maxKg := stats.DailyTotals(entries, now, nDays)

	_, _ = fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("--- %s ---", windowTitle(nDays))))

	if len(totals) == 0 {
		_, _ = fmt.Fprintln(w, "no entries in this window")
	} else {
		for _, dt := range totals {
			line := fmt.Sprintf("%s  %s  %s",
				Text(dt.Date),
				Silent(fmt.Sprintf("%9s", entry.FormatKg(dt.FootprintKg))),
				renderBar(dt.FootprintKg, maxKg, summaryBarWidth),
			)
			if dt.Recycled {
				line += " " + Primary("♻")
			}
			_, _ = fmt.Fprintln(w, line)
		}

		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintf(w, "%s  %s\n", Silent("Total:"), Primary(entry.FormatKg(window.SumKg)+" CO2"))
		_, _ = fmt.Fprintf(w, "%s  %s\n", Silent("Average:"), Text(entry.FormatKg(window.AvgKgPerDay)+" CO2 per recorded day"))
		_, _ = fmt.Fprintf(w, "%s  %s\n", Silent("Entries:"), Text(strconv.Itoa(window.DaysWithEntries)))
		_, _ = fmt.Fprintf(w, "%s  %s\n", Silent("Recycled:"), Text(fmt.Sprintf("%d of %d entries", window.RecycleDayCount, window.DaysWithEntries)))
		_, _ = fmt.Fprintf(w, "%s  %s\n", Silent("Transit rides:"), Text(strconv.Itoa(window.PublicTransportTotal)))
		_, _ = fmt.Fprintf(w, "%s  %s\n", Silent("Saving actions:"), Text(strconv.Itoa(window.SavedElectricityTotal)))
	}

	if rep.DegradedFields > 0 {
		_, _ = fmt.Fprintf(w, "\n%s %d malformed field(s) in the log were read as zero\n",
			Warning("Warning:"), rep.DegradedFields)
	}

	return nil
}

// windowTitle names the window in the report header.
func windowTitle(nDays int) string {
	if nDays == 1 {
		return "Today"
	}
	return fmt.Sprintf("Last %d days", nDays)
}
