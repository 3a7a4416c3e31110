package stats

import (
	"time"

	"github.com/deadlyhood/carbonlog/internal/entry"
)

// SuggestionWindowDays is the window suggestions are derived from.
const SuggestionWindowDays = 7

// Suggestion texts are fixed; which ones appear is driven entirely by the
// logged data, so the same log always yields the same list.
const (
	suggestStart       = "No activity logged in the last 7 days. Log a day to get tailored suggestions."
	suggestCar         = "Most of your travel was by car this week. Swapping short car trips for the bus or train cuts the per-km footprint by 75% or more."
	suggestFlight      = "Flights weigh heavily on a weekly footprint. Batch trips together or take the train where a rail connection exists."
	suggestMeat        = "You ate more meat than vegetarian meals this week. Each swapped meal saves about 3.5 kg CO2."
	suggestPlastic     = "Single-use plastic showed up in your week. Reusable bottles and bags remove it at 6 kg CO2 per kg of plastic."
	suggestElectricity = "You logged electricity use but no saving actions. Unplugging idle devices and switching off lights is the easiest win."
	suggestRecycle     = "You recycled on fewer than half of your logged days. A daily recycling habit is an easy constant."
	suggestKeepItUp    = "Your week looks balanced. Keep logging daily to hold the trend."
)

// Suggestions derives advice from the last SuggestionWindowDays days of
// entries. The rules run in a fixed order and at least one line is always
// returned.
func Suggestions(entries []entry.Entry, reference time.Time) []string {
	included := WindowEntries(entries, reference, SuggestionWindowDays)
	if len(included) == 0 {
		return []string{suggestStart}
	}

	q := sumQuantities(included)
	w := WindowStats(entries, reference, SuggestionWindowDays)

	var out []string
	if q.carKm > 0 && q.carKm > q.busKm+q.trainKm {
		out = append(out, suggestCar)
	}
	if q.flightKm > 0 {
		out = append(out, suggestFlight)
	}
	if q.meatMeals > q.vegMeals {
		out = append(out, suggestMeat)
	}
	if q.plasticKg > 0 {
		out = append(out, suggestPlastic)
	}
	if q.electricityKwh > 0 && w.SavedElectricityTotal == 0 {
		out = append(out, suggestElectricity)
	}
	if w.RecycleDayCount*2 < w.DaysWithEntries {
		out = append(out, suggestRecycle)
	}
	if len(out) == 0 {
		out = append(out, suggestKeepItUp)
	}
	return out
}

// quantities accumulates the raw activity amounts over a set of rows.
type quantities struct {
	carKm, busKm, trainKm, flightKm float64
	electricityKwh, plasticKg       float64
	meatMeals, vegMeals, fishMeals  int
}

func sumQuantities(entries []entry.Entry) quantities {
	var q quantities
	for _, e := range entries {
		q.carKm += e.CarKm
		q.busKm += e.BusKm
		q.trainKm += e.TrainKm
		q.flightKm += e.FlightKm
		q.electricityKwh += e.ElectricityKwh
		q.plasticKg += e.PlasticKg
		q.meatMeals += e.MeatMeals
		q.vegMeals += e.VegMeals
		q.fishMeals += e.FishMeals
	}
	return q
}
