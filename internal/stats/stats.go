package stats

import (
	"time"

	"github.com/deadlyhood/carbonlog/internal/entry"
)

// Window holds aggregate figures over a contiguous range of calendar days
// ending at a reference date.
type Window struct {
	SumKg                 float64
	DaysWithEntries       int
	AvgKgPerDay           float64
	RecycleDayCount       int
	PublicTransportTotal  int
	SavedElectricityTotal int
}

// WindowStats aggregates the rows whose dates fall within the nDays calendar
// days ending at reference (today plus the nDays-1 days before it). Rows with
// future or unparseable dates are skipped. Duplicate dates are never merged:
// every included row counts on its own.
func WindowStats(entries []entry.Entry, reference time.Time, nDays int) Window {
	var w Window
	for _, e := range WindowEntries(entries, reference, nDays) {
		w.SumKg += e.FootprintKg
		w.DaysWithEntries++
		if e.Recycled {
			w.RecycleDayCount++
		}
		w.PublicTransportTotal += e.PublicTransportCount
		w.SavedElectricityTotal += e.SavedElectricityActions
	}
	if w.DaysWithEntries > 0 {
		w.AvgKgPerDay = w.SumKg / float64(w.DaysWithEntries)
	}
	return w
}

// WindowEntries returns the rows included in the nDays window ending at
// reference, in storage order.
func WindowEntries(entries []entry.Entry, reference time.Time, nDays int) []entry.Entry {
	var included []entry.Entry
	for _, e := range entries {
		if inWindow(e.Date, reference, nDays) {
			included = append(included, e)
		}
	}
	return included
}

// inWindow reports whether date lies within the half-open window of nDays
// calendar days ending at reference: the reference day itself counts, the day
// exactly nDays back does not.
func inWindow(date string, reference time.Time, nDays int) bool {
	day, err := time.Parse(entry.DateLayout, date)
	if err != nil {
		return false
	}
	diff := int(midnight(reference).Sub(midnight(day)).Hours() / 24)
	return diff >= 0 && diff < nDays
}

// midnight strips the time of day and location from t, keeping only the
// calendar day. Rebuilding in UTC keeps the whole-day subtraction exact.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
