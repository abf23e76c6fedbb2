package wellness

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// CityView is everything derived for one city: the normalized forecast and
// the model outputs aligned to it. These are the sole inputs the chart layer
// renders from.
type CityView struct {
	City                CityContext    `json:"city"`
	Records             []HourlyRecord `json:"records"`
	Hydration           DerivedSeries  `json:"hydration"`
	HydrationCumulative DerivedSeries  `json:"hydration_cumulative"`
	Comfort             []ComfortScore `json:"comfort"`
	Workout             *RoutineTask   `json:"workout,omitempty"`
}

// Dashboard is one full pass through the pipeline for a two-city comparison.
// Every field is rebuilt per request; nothing is mutated afterwards.
type Dashboard struct {
	ID       string        `json:"id"`
	Profile  UserProfile   `json:"profile"`
	Cities   []CityView    `json:"cities"`
	Energy   DerivedSeries `json:"energy"`
	Plan     []PlannedTask `json:"plan"`
	Warnings []Warning     `json:"warnings,omitempty"`
}

// Service runs the derived-metrics pipeline. It performs no I/O: city
// contexts arrive with their payloads already fetched and the profile already
// loaded.
type Service struct {
	cfg Config
}

// NewService creates a Service after validating the configuration.
func NewService(cfg Config) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Service{cfg: cfg}, nil
}

// Config returns the active configuration.
func (s *Service) Config() Config { return s.cfg }

// BuildDashboard runs normalization and every derived model for both cities.
// A malformed payload fails that city hard, but the dashboard still carries
// the other city's view so the caller can render a partial comparison; the
// call errors only when no city survives.
func (s *Service) BuildDashboard(profile UserProfile, cities []CityContext, now time.Time) (Dashboard, error) {
	clean, warnings := SanitizeProfile(profile)

	dash := Dashboard{
		ID:       uuid.NewString(),
		Profile:  clean,
		Warnings: warnings,
	}

	home, err := LoadZone(s.cfg.HomeTimezone)
	if err != nil {
		return Dashboard{}, err
	}

	var alive []CityContext
	for _, city := range cities {
		view, err := s.buildCityView(clean, city)
		if err != nil {
			log.Printf("dashboard: city %s failed: %v", city.Name, err)
			dash.Warnings = append(dash.Warnings, Warning{
				Field:   "city:" + city.Name,
				Message: err.Error(),
			})
			continue
		}
		dash.Cities = append(dash.Cities, view)
		alive = append(alive, city)
	}
	if len(dash.Cities) == 0 {
		return Dashboard{}, fmt.Errorf("no city could be processed")
	}

	dash.Energy, err = EnergyCurve(clean.SleepStart, clean.SleepEnd, clean.Chronotype, now.In(home), home, s.cfg.Energy)
	if err != nil {
		// Sanitized sleep times should always parse; treat failure as a bug.
		return Dashboard{}, err
	}

	if len(clean.Routine) > 0 {
		dash.Plan, err = PlanRoutine(clean.Routine, alive, now, s.cfg)
		if err != nil {
			return Dashboard{}, err
		}
	}

	return dash, nil
}

// buildCityView normalizes one city's payload and derives its series.
func (s *Service) buildCityView(profile UserProfile, city CityContext) (CityView, error) {
	zone, err := LoadZone(city.Timezone)
	if err != nil {
		return CityView{}, err
	}
	sun := NewSunCalc(city.Lat, city.Lon, zone)

	records, err := Normalize(city, sun)
	if err != nil {
		return CityView{}, err
	}

	hourly, cumulative := HydrationSeries(records, profile.WeightKg, profile.Activity, s.cfg.Hydration)

	comfort, err := ScoreComfort(city.Name, records[0], s.cfg.IdealRanges)
	if err != nil {
		return CityView{}, err
	}

	view := CityView{
		City:                city,
		Records:             records,
		Hydration:           hourly,
		HydrationCumulative: cumulative,
		Comfort:             comfort,
	}
	if workout, ok := SuggestWorkout(records, sun); ok {
		view.Workout = &workout
	}
	return view, nil
}

// Compare builds the unified two-city comparison series for one metric on the
// home time axis.
func (s *Service) Compare(metric string, cities []CityContext, now time.Time) ([]ComparisonRow, error) {
	if len(cities) != 2 {
		return nil, fmt.Errorf("%w: comparison needs exactly two cities", ErrConfiguration)
	}

	series := make([][]HourlyRecord, len(cities))
	for i, city := range cities {
		zone, err := LoadZone(city.Timezone)
		if err != nil {
			return nil, err
		}
		records, err := Normalize(city, NewSunCalc(city.Lat, city.Lon, zone))
		if err != nil {
			return nil, err
		}
		series[i] = records
	}

	align, err := NewAlignment(s.cfg.HomeTimezone, cities[0].Timezone, now)
	if err != nil {
		return nil, err
	}

	return BuildComparison(metric, cities, series, align, s.cfg.SmoothingSpan)
}

// Checklist renders the relocation checklist for a move between the two
// cities, personalizing packing advice with the destination's forecast.
func (s *Service) Checklist(profile UserProfile, from, to CityContext, now time.Time) (string, error) {
	clean, _ := SanitizeProfile(profile)

	zone, err := LoadZone(to.Timezone)
	if err != nil {
		return "", err
	}
	records, err := Normalize(to, NewSunCalc(to.Lat, to.Lon, zone))
	if err != nil {
		return "", err
	}

	hourly, _ := HydrationSeries(records, clean.WeightKg, clean.Activity, s.cfg.Hydration)
	var peak float64
	for _, p := range hourly.Points {
		if p.Value > peak {
			peak = p.Value
		}
	}

	return BuildChecklist(ChecklistInput{
		FromCity:     from.Name,
		ToCity:       to.Name,
		Profile:      clean,
		Records:      records,
		PeakIntakeML: peak,
	}, now), nil
}
