package wellness

import "fmt"

// IdealRange is the comfort band for one metric plus the scale used to
// normalize deviations onto a shared radar axis. A range with Min == Max is a
// point target.
type IdealRange struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Scale float64 `json:"scale"` // normalization denominator in metric units
}

// EnergyConfig tunes the circadian model. The calibration constants come from
// the heuristic model this service started with; they are tunable, not
// contractual.
type EnergyConfig struct {
	// PeakOffsetHours places the primary peak this many hours after wake.
	// Zero means "a quarter of the waking span", the model's default anchor.
	PeakOffsetHours float64 `json:"peak_offset_hours"`
	// DipHour is the clock hour of the early-afternoon dip before chronotype
	// adjustment.
	DipHour float64 `json:"dip_hour"`
	// SleepFloor and WakingFloor are the clamp floors inside and outside the
	// sleep window. SleepFloor must stay below WakingFloor so the curve's
	// minimum lands inside the declared sleep window.
	SleepFloor  float64 `json:"sleep_floor"`
	WakingFloor float64 `json:"waking_floor"`
}

// HydrationConfig tunes the hourly intake model.
type HydrationConfig struct {
	MLPerKg        float64 `json:"ml_per_kg"`        // daily baseline per kg of body weight
	BaseDivisor    float64 `json:"base_divisor"`     // hours the baseline is spread across
	TempThresholdC float64 `json:"temp_threshold_c"` // surcharge starts above this
	TempStepC      float64 `json:"temp_step_c"`      // degrees per surcharge step
	TempStepML     float64 `json:"temp_step_ml"`     // ml added per step
	HumidityLimit  float64 `json:"humidity_limit"`   // surcharge above this relative humidity
	HumidityML     float64 `json:"humidity_ml"`      // flat ml added when humid
	MaxHourlyML    float64 `json:"max_hourly_ml"`    // per-hour clamp
}

// Config carries every tunable the core consumes. It is supplied by the
// caller; the core never reads the environment itself.
type Config struct {
	IdealRanges    map[string]IdealRange `json:"ideal_ranges"`
	CoreHoursStart string                `json:"core_hours_start"` // "HH:MM"
	CoreHoursEnd   string                `json:"core_hours_end"`
	HomeTimezone   string                `json:"home_timezone"`
	Energy         EnergyConfig          `json:"energy"`
	Hydration      HydrationConfig       `json:"hydration"`
	SmoothingSpan  int                   `json:"smoothing_span"` // comparison rolling-mean window
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		IdealRanges: map[string]IdealRange{
			MetricTemperature: {Min: 20, Max: 24, Scale: 10},
			MetricHumidity:    {Min: 40, Max: 60, Scale: 25},
			MetricUVIndex:     {Min: 0, Max: 3, Scale: 5},
			MetricWind:        {Min: 0, Max: 5, Scale: 10},
		},
		CoreHoursStart: "09:00",
		CoreHoursEnd:   "17:00",
		HomeTimezone:   "America/Phoenix",
		Energy: EnergyConfig{
			PeakOffsetHours: 0,
			DipHour:         14,
			SleepFloor:      5,
			WakingFloor:     20,
		},
		Hydration: HydrationConfig{
			MLPerKg:        35,
			BaseDivisor:    16,
			TempThresholdC: 25,
			TempStepC:      5,
			TempStepML:     150,
			HumidityLimit:  60,
			HumidityML:     50,
			MaxHourlyML:    1000,
		},
		SmoothingSpan: 4,
	}
}

// Validate checks the parts of the configuration the models depend on.
func (c Config) Validate() error {
	if len(c.IdealRanges) == 0 {
		return fmt.Errorf("%w: ideal-range table is empty", ErrConfiguration)
	}
	for metric, r := range c.IdealRanges {
		if r.Min > r.Max {
			return fmt.Errorf("%w: ideal range for %s has min %.2f > max %.2f", ErrConfiguration, metric, r.Min, r.Max)
		}
		if r.Scale < 0 {
			return fmt.Errorf("%w: ideal range for %s has negative scale", ErrConfiguration, metric)
		}
	}
	if _, err := ParseClock(c.CoreHoursStart); err != nil {
		return fmt.Errorf("%w: core hours start: %v", ErrConfiguration, err)
	}
	if _, err := ParseClock(c.CoreHoursEnd); err != nil {
		return fmt.Errorf("%w: core hours end: %v", ErrConfiguration, err)
	}
	if c.Hydration.BaseDivisor <= 0 || c.Hydration.TempStepC <= 0 {
		return fmt.Errorf("%w: hydration divisors must be positive", ErrConfiguration)
	}
	return nil
}
