package stats

import (
	"time"

	"github.com/deadlyhood/carbonlog/internal/entry"
)

// RecentHistory returns the last limit rows, most recently appended first.
// limit <= 0 returns the whole history. The order is append order, not
// calendar order: rows logged out of chronological sequence show up in the
// sequence they were logged.
func RecentHistory(entries []entry.Entry, limit int) []entry.Entry {
	n := len(entries)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]entry.Entry, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, entries[i])
	}
	return out
}

// ExportLine pairs a stored row's date with its stored footprint.
type ExportLine struct {
	Date        string
	FootprintKg float64
}

// ExportSummary returns one line per stored row in storage order together
// with the grand total of their footprints.
func ExportSummary(entries []entry.Entry) ([]ExportLine, float64) {
	lines := make([]ExportLine, 0, len(entries))
	var total float64
	for _, e := range entries {
		lines = append(lines, ExportLine{Date: e.Date, FootprintKg: e.FootprintKg})
		total += e.FootprintKg
	}
	return lines, total
}

// DailyTotal is one row of the summary chart.
type DailyTotal struct {
	Date        string
	FootprintKg float64
	Recycled    bool
}

// DailyTotals returns the rows included in the nDays window ending at
// reference, in storage order, plus the largest footprint among them for bar
// scaling. Footprints are the stored values, never recomputed.
func DailyTotals(entries []entry.Entry, reference time.Time, nDays int) ([]DailyTotal, float64) {
	included := WindowEntries(entries, reference, nDays)
	totals := make([]DailyTotal, 0, len(included))
	var max float64
	for _, e := range included {
		totals = append(totals, DailyTotal{
			Date:        e.Date,
			FootprintKg: e.FootprintKg,
			Recycled:    e.Recycled,
		})
		if e.FootprintKg > max {
			max = e.FootprintKg
		}
	}
	return totals, max
}
