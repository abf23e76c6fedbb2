package wellness

import (
	"fmt"
	"time"
)

// maxForecastHours caps normalization at seven days of hourly data, the most
// any supported provider returns.
const maxForecastHours = 7 * 24

// RawForecast is the strict decode target for a provider's forecast payload,
// shaped after the One Call hourly/daily structure. Required fields are
// pointers so their absence is detectable instead of silently zero.
type RawForecast struct {
	Timezone string    `json:"timezone"`
	Hourly   []RawHour `json:"hourly"`
	Daily    []RawDay  `json:"daily"`
}

// RawHour is one hour of the raw payload. Dt and Temp are required; the rest
// default to a zero sentinel when absent (providers drop UV at night). The
// condition is already normalized by the provider that fetched the payload.
type RawHour struct {
	Dt        *int64    `json:"dt"`
	Temp      *float64  `json:"temp"`
	Humidity  *float64  `json:"humidity"`
	UVI       *float64  `json:"uvi"`
	WindSpeed *float64  `json:"wind_speed"`
	Condition Condition `json:"condition"`
}

// RawDay carries the per-day astro block.
type RawDay struct {
	Dt      int64 `json:"dt"`
	Sunrise int64 `json:"sunrise"`
	Sunset  int64 `json:"sunset"`
}

// Normalize turns a raw forecast payload into an ordered HourlyRecord
// sequence in the city's local timezone. Missing required fields and
// non-increasing timestamps fail with ErrMalformedPayload; the failure must
// reach the caller because every derived model assumes complete hourly
// coverage. When the payload has no daily astro block, sun is consulted for
// the daylight flag; a nil sun leaves the flag false.
func Normalize(city CityContext, sun *SunCalc) ([]HourlyRecord, error) {
	raw := city.Forecast
	if len(raw.Hourly) == 0 {
		return nil, fmt.Errorf("%w: no hourly data for %s", ErrMalformedPayload, city.Name)
	}

	zone, err := LoadZone(city.Timezone)
	if err != nil {
		return nil, err
	}

	astro := make(map[string]RawDay, len(raw.Daily))
	for _, d := range raw.Daily {
		day := time.Unix(d.Dt, 0).In(zone).Format("2006-01-02")
		astro[day] = d
	}

	hours := raw.Hourly
	if len(hours) > maxForecastHours {
		hours = hours[:maxForecastHours]
	}

	records := make([]HourlyRecord, 0, len(hours))
	var prev time.Time
	for i, h := range hours {
		if h.Dt == nil {
			return nil, fmt.Errorf("%w: hour %d has no timestamp", ErrMalformedPayload, i)
		}
		if h.Temp == nil {
			return nil, fmt.Errorf("%w: hour %d has no temperature", ErrMalformedPayload, i)
		}
		if h.Humidity == nil {
			return nil, fmt.Errorf("%w: hour %d has no humidity", ErrMalformedPayload, i)
		}

		ts := time.Unix(*h.Dt, 0).In(zone)
		if i > 0 && !ts.After(prev) {
			return nil, fmt.Errorf("%w: timestamps not strictly increasing at hour %d", ErrMalformedPayload, i)
		}
		prev = ts

		cond := h.Condition
		if cond == "" {
			cond = ConditionUnknown
		}
		rec := HourlyRecord{
			Timestamp:   ts,
			Temperature: *h.Temp,
			Humidity:    *h.Humidity,
			UVIndex:     deref(h.UVI),
			WindSpeed:   deref(h.WindSpeed),
			Condition:   cond,
		}
		rec.Daylight, err = daylightAt(ts, zone, astro, sun)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

// daylightAt reports whether ts falls between sunrise and sunset, preferring
// the payload's astro block and falling back to computed sun times.
func daylightAt(ts time.Time, zone *time.Location, astro map[string]RawDay, sun *SunCalc) (bool, error) {
	day := ts.Format("2006-01-02")
	if d, ok := astro[day]; ok && d.Sunrise != 0 && d.Sunset != 0 {
		sunrise := time.Unix(d.Sunrise, 0).In(zone)
		sunset := time.Unix(d.Sunset, 0).In(zone)
		return !ts.Before(sunrise) && ts.Before(sunset), nil
	}
	if sun == nil {
		return false, nil
	}
	times, err := sun.TimesFor(ts)
	if err != nil {
		// Polar edge cases: astral cannot always produce an event. Treat as night.
		return false, nil
	}
	return !ts.Before(times.Sunrise) && ts.Before(times.Sunset), nil
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
