package entry

import (
	"errors"
	"fmt"
)

// DateLayout is the textual form every entry date uses.
const DateLayout = "2006-01-02"

// Emission factors in kg CO2-equivalent per unit of activity.
// These are fixed constants of the system: stored footprints are computed
// with the factors in force at add-time and are never recomputed on read.
const (
	CarFactor         = 0.21 // per km
	BusFactor         = 0.05 // per km
	TrainFactor       = 0.04 // per km
	FlightFactor      = 0.15 // per km
	ElectricityFactor = 0.85 // per kWh
	PlasticFactor     = 6.00 // per kg
	MeatMealFactor    = 5.0  // per meal
	VegMealFactor     = 1.5  // per meal
	FishMealFactor    = 3.0  // per meal
)

// ErrNegativeValue is returned when an activity quantity is below zero.
var ErrNegativeValue = errors.New("negative value")

// Activities is one day's raw input before footprint computation.
type Activities struct {
	Date                    string
	CarKm                   float64
	BusKm                   float64
	TrainKm                 float64
	FlightKm                float64
	ElectricityKwh          float64
	PlasticKg               float64
	MeatMeals               int
	VegMeals                int
	FishMeals               int
	Recycled                bool
	PublicTransportCount    int
	SavedElectricityActions int
}

// Entry is one recorded day: the activities plus the footprint derived from
// them at creation time.
type Entry struct {
	Activities
	FootprintKg float64
}

// Breakdown carries the per-category sub-totals that sum to the footprint.
type Breakdown struct {
	Car         float64
	Bus         float64
	Train       float64
	Flight      float64
	Electricity float64
	Plastic     float64
	Meat        float64
	Veg         float64
	Fish        float64
}

// Validate checks that every numeric quantity is non-negative. Dates are not
// range-checked here; unparseable dates are simply excluded by aggregation.
func (a Activities) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"car_km", a.CarKm >= 0},
		{"bus_km", a.BusKm >= 0},
		{"train_km", a.TrainKm >= 0},
		{"flight_km", a.FlightKm >= 0},
		{"electricity_kwh", a.ElectricityKwh >= 0},
		{"plastic_kg", a.PlasticKg >= 0},
		{"meat_meals", a.MeatMeals >= 0},
		{"veg_meals", a.VegMeals >= 0},
		{"fish_meals", a.FishMeals >= 0},
		{"public_transport_count", a.PublicTransportCount >= 0},
		{"saved_electricity_actions", a.SavedElectricityActions >= 0},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("%s: %w", c.name, ErrNegativeValue)
		}
	}
	return nil
}

// ComputeFootprint applies the fixed emission factors to one day's
// activities. The total is the exact sum of the breakdown fields.
func ComputeFootprint(a Activities) (float64, Breakdown) {
	b := Breakdown{
		Car:         a.CarKm * CarFactor,
		Bus:         a.BusKm * BusFactor,
		Train:       a.TrainKm * TrainFactor,
		Flight:      a.FlightKm * FlightFactor,
		Electricity: a.ElectricityKwh * ElectricityFactor,
		Plastic:     a.PlasticKg * PlasticFactor,
		Meat:        float64(a.MeatMeals) * MeatMealFactor,
		Veg:         float64(a.VegMeals) * VegMealFactor,
		Fish:        float64(a.FishMeals) * FishMealFactor,
	}
	total := b.Car + b.Bus + b.Train + b.Flight +
		b.Electricity + b.Plastic + b.Meat + b.Veg + b.Fish
	return total, b
}

// New validates the activities and returns an Entry with its footprint
// computed once. The footprint is stored verbatim from here on.
func New(a Activities) (Entry, error) {
	if err := a.Validate(); err != nil {
		return Entry{}, err
	}
	total, _ := ComputeFootprint(a)
	return Entry{Activities: a, FootprintKg: total}, nil
}

// Bucket groups the nine categories into the six contributor buckets used
// for display and suggestions.
type Bucket int

const (
	BucketCar Bucket = iota
	BucketTransit
	BucketFlights
	BucketElectricity
	BucketPlastic
	BucketFood
)

func (b Bucket) String() string {
	switch b {
	case BucketCar:
		return "Car"
	case BucketTransit:
		return "Transit"
	case BucketFlights:
		return "Flights"
	case BucketElectricity:
		return "Electricity"
	case BucketPlastic:
		return "Plastic"
	case BucketFood:
		return "Food (meals)"
	}
	return "Unknown"
}

// BucketTotals folds a breakdown into the six buckets, in bucket order.
func BucketTotals(b Breakdown) [6]float64 {
	return [6]float64{
		b.Car,
		b.Bus + b.Train,
		b.Flight,
		b.Electricity,
		b.Plastic,
		b.Meat + b.Veg + b.Fish,
	}
}

// TopContributor returns the bucket with the strictly greatest sub-total.
// Ties resolve to the earliest bucket in declaration order, so an all-zero
// entry reports Car.
func TopContributor(e Entry) Bucket {
	_, breakdown := ComputeFootprint(e.Activities)
	totals := BucketTotals(breakdown)

	top := BucketCar
	for i := 1; i < len(totals); i++ {
		if totals[i] > totals[top] {
			top = Bucket(i)
		}
	}
	return top
}

// FormatKg converts a kilogram value to a display string with two decimals.
// Examples: 11.35 → "11.35 kg", 0 → "0.00 kg".
func FormatKg(kg float64) string {
	return fmt.Sprintf("%.2f kg", kg)
}
