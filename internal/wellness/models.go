package wellness

import (
	"time"
)

// Condition represents a normalized high-level weather condition.
type Condition string

const (
	ConditionUnknown Condition = "unknown"
	ConditionClear   Condition = "clear"
	ConditionCloudy  Condition = "cloudy"
	ConditionRain    Condition = "rain"
	ConditionSnow    Condition = "snow"
	ConditionStorm   Condition = "storm"
)

// Metric names shared by the comfort scorer, the comparison builder and the
// chart layer.
const (
	MetricTemperature = "temperature"
	MetricHumidity    = "humidity"
	MetricUVIndex     = "uv_index"
	MetricWind        = "wind"
)

// CityContext bundles everything known about one city for a single request:
// resolved coordinates, timezone and the raw forecast payload fetched by the
// provider layer. It is created once per query and never mutated afterwards.
type CityContext struct {
	Name     string      `json:"name"`
	Lat      float64     `json:"lat"`
	Lon      float64     `json:"lon"`
	Timezone string      `json:"timezone"`
	Forecast RawForecast `json:"-"`
}

// Key returns a canonical string key for indexing this city in caches.
func (c CityContext) Key() string {
	return c.Name + ":" + c.Timezone
}

// HourlyRecord is one normalized hour of weather for one city. Sequences of
// records are ordered chronologically with strictly increasing timestamps.
type HourlyRecord struct {
	Timestamp   time.Time `json:"timestamp"` // timezone-aware, city-local
	Temperature float64   `json:"temperatureC"`
	Humidity    float64   `json:"humidityPercent"`
	UVIndex     float64   `json:"uvIndex"`
	WindSpeed   float64   `json:"windSpeedMs"`
	Daylight    bool      `json:"daylight"`
	Condition   Condition `json:"condition"`
}

// RoutineTask is one entry of a user's declared daily routine, expressed in
// home-timezone clock time ("HH:MM").
type RoutineTask struct {
	Label string `json:"label" validate:"required"`
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
	Type  string `json:"type"` // work, personal, health
}

// Chronotype shifts the energy curve's peak and afternoon dip.
type Chronotype string

const (
	ChronotypeDefault Chronotype = "default"
	ChronotypeLark    Chronotype = "lark"
	ChronotypeOwl     Chronotype = "owl"
)

// UserProfile carries the user-supplied inputs to the derived models. The core
// treats it as read-only; persistence belongs to the profile store.
type UserProfile struct {
	ID         string        `json:"id,omitempty"`
	Name       string        `json:"name" validate:"required"`
	SleepStart string        `json:"sleep_start"` // "HH:MM", onset of sleep
	SleepEnd   string        `json:"sleep_end"`   // "HH:MM", wake time
	WeightKg   float64       `json:"weight_kg"`
	Chronotype Chronotype    `json:"chronotype,omitempty"`
	Activity   float64       `json:"activity,omitempty"` // hydration multiplier, 1.0 = sedentary
	Routine    []RoutineTask `json:"routine,omitempty"`
}

// SeriesPoint is one (timestamp, value) sample of a derived series.
type SeriesPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// DerivedSeries is the output of a derived model, aligned point-for-point to
// the axis it was computed from: same length, same timestamps, no resampling.
type DerivedSeries struct {
	Name   string        `json:"name"`
	Unit   string        `json:"unit"`
	Points []SeriesPoint `json:"points"`
}

// ComfortScore is the normalized deviation of one metric from its ideal range
// for one city at one instant. Score 0 means inside the range; larger is worse.
type ComfortScore struct {
	City   string  `json:"city"`
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
	Score  float64 `json:"score"`
}

// Warning is a recoverable validation note surfaced to the caller, e.g. a
// clamped profile field. The dashboard stays usable when warnings occur.
type Warning struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
