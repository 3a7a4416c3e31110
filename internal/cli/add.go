package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/deadlyhood/carbonlog/internal/entry"
	"github.com/deadlyhood/carbonlog/internal/logstore"
	"github.com/spf13/cobra"
)

// activityFlagNames lists the flags that carry activity data. When none of
// them is set, add switches to the interactive form.
var activityFlagNames = []string{
	"car", "bus", "train", "flight", "electricity", "plastic",
	"meat", "veg", "fish", "recycled", "transit", "saved",
}

var addCmd = LeafCommand{
	Use:   "add",
	Short: "Record a day of activity and its footprint",
	StrFlags: []StringFlag{
		{Name: "date", Usage: "date to record (YYYY-MM-DD, default: today)"},
	},
	FloatFlags: []Float64Flag{
		{Name: "car", Usage: "car travel in km"},
		{Name: "bus", Usage: "bus travel in km"},
		{Name: "train", Usage: "train travel in km"},
		{Name: "flight", Usage: "flight distance in km"},
		{Name: "electricity", Usage: "electricity used in kWh"},
		{Name: "plastic", Usage: "plastic used in kg"},
	},
	IntFlags: []IntFlag{
		{Name: "meat", Usage: "meat meals eaten"},
		{Name: "veg", Usage: "vegetarian meals eaten"},
		{Name: "fish", Usage: "fish meals eaten"},
		{Name: "transit", Usage: "public transport rides taken"},
		{Name: "saved", Usage: "electricity-saving actions taken"},
	},
	BoolFlags: []BoolFlag{
		{Name: "recycled", Usage: "whether you recycled that day"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := ResolveStore()
		if err != nil {
			return err
		}

		var a entry.Activities
		a.Date, _ = cmd.Flags().GetString("date")
		a.CarKm, _ = cmd.Flags().GetFloat64("car")
		a.BusKm, _ = cmd.Flags().GetFloat64("bus")
		a.TrainKm, _ = cmd.Flags().GetFloat64("train")
		a.FlightKm, _ = cmd.Flags().GetFloat64("flight")
		a.ElectricityKwh, _ = cmd.Flags().GetFloat64("electricity")
		a.PlasticKg, _ = cmd.Flags().GetFloat64("plastic")
		a.MeatMeals, _ = cmd.Flags().GetInt("meat")
		a.VegMeals, _ = cmd.Flags().GetInt("veg")
		a.FishMeals, _ = cmd.Flags().GetInt("fish")
		a.Recycled, _ = cmd.Flags().GetBool("recycled")
		a.PublicTransportCount, _ = cmd.Flags().GetInt("transit")
		a.SavedElectricityActions, _ = cmd.Flags().GetInt("saved")

		interactive := true
		for _, name := range activityFlagNames {
			if cmd.Flags().Changed(name) {
				interactive = false
				break
			}
		}

		return runAdd(cmd, store, a, interactive, NewPromptKit(), time.Now)
	},
}.Build()

func runAdd(
	cmd *cobra.Command,
	store *logstore.Store,
	a entry.Activities,
	interactive bool,
	pk PromptKit,
	nowFn func() time.Time,
) error {
	var err error

	// 1. Resolve the date: flag value, prompt answer, or today.
	if a.Date == "" && interactive {
		a.Date, err = pk.Prompt("Date (YYYY-MM-DD, default: today)")
		if err != nil {
			return err
		}
	}
	a.Date, err = resolveEntryDate(a.Date, nowFn())
	if err != nil {
		return err
	}

	// 2. Gather activities interactively when no activity flag was given.
	if interactive {
		if err := promptActivities(&a, pk); err != nil {
			return err
		}
	}

	// 3. Validate and compute the footprint once.
	e, err := entry.New(a)
	if err != nil {
		return err
	}

	// 4. Append to the log.
	if err := store.Append(e); err != nil {
		return err
	}

	printEntrySummary(cmd, e)
	return nil
}

// promptActivities walks through every activity field in schema order.
// Empty answers mean zero.
func promptActivities(a *entry.Activities, pk PromptKit) error {
	floatPrompts := []struct {
		title string
		dst   *float64
	}{
		{"Car travel (km)", &a.CarKm},
		{"Bus travel (km)", &a.BusKm},
		{"Train travel (km)", &a.TrainKm},
		{"Flights (km)", &a.FlightKm},
		{"Electricity used (kWh)", &a.ElectricityKwh},
		{"Plastic used (kg)", &a.PlasticKg},
	}
	for _, p := range floatPrompts {
		answer, err := pk.Prompt(p.title)
		if err != nil {
			return err
		}
		*p.dst, err = parseFloatAnswer(p.title, answer)
		if err != nil {
			return err
		}
	}

	intPrompts := []struct {
		title string
		dst   *int
	}{
		{"Meat meals", &a.MeatMeals},
		{"Vegetarian meals", &a.VegMeals},
		{"Fish meals", &a.FishMeals},
		{"Public transport rides", &a.PublicTransportCount},
		{"Electricity-saving actions", &a.SavedElectricityActions},
	}
	for _, p := range intPrompts {
		answer, err := pk.Prompt(p.title)
		if err != nil {
			return err
		}
		*p.dst, err = parseIntAnswer(p.title, answer)
		if err != nil {
			return err
		}
	}

	recycled, err := pk.Confirm("Did you recycle today?")
	if err != nil {
		return err
	}
	a.Recycled = recycled
	return nil
}

// resolveEntryDate parses the date value into the storage form.
// An empty value means today.
func resolveEntryDate(dateValue string, now time.Time) (string, error) {
	dateValue = strings.TrimSpace(dateValue)
	if dateValue == "" {
		return now.Format(entry.DateLayout), nil
	}
	if _, err := time.Parse(entry.DateLayout, dateValue); err != nil {
		return "", fmt.Errorf("invalid --date format, expected YYYY-MM-DD: %w", err)
	}
	return dateValue, nil
}

func parseFloatAnswer(title, answer string) (float64, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q for %s: expected a number", answer, title)
	}
	return v, nil
}

func parseIntAnswer(title, answer string) (int, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q for %s: expected a whole number", answer, title)
	}
	return v, nil
}

// printEntrySummary shows the stored footprint, a per-category breakdown, and
// the dominant category.
func printEntrySummary(cmd *cobra.Command, e entry.Entry) {
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "logged %s at %s\n", Primary(e.Date), Primary(entry.FormatKg(e.FootprintKg)+" CO2"))

	if e.FootprintKg <= 0 {
		return
	}

	_, breakdown := entry.ComputeFootprint(e.Activities)
	totals := entry.BucketTotals(breakdown)

	var max float64
	for _, v := range totals {
		if v > max {
			max = v
		}
	}

	_, _ = fmt.Fprintln(w)
	for i, v := range totals {
		if v <= 0 {
			continue
		}
		label := entry.Bucket(i).String()
		_, _ = fmt.Fprintf(w, "  %s %s %s\n",
			padRight(label, 13),
			renderBar(v, max, breakdownBarWidth),
			Silent(entry.FormatKg(v)),
		)
	}
	_, _ = fmt.Fprintf(w, "\ntop contributor: %s\n", Info(entry.TopContributor(e).String()))
}
