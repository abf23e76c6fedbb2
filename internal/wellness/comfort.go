package wellness

import (
	"fmt"
	"sort"
)

// ScoreComfort maps one city's conditions at a single instant onto normalized
// deviation scores, one per metric in the ideal-range table. A value inside
// its range scores exactly 0; outside, the score is the distance to the
// nearest edge divided by the range's scale, so metrics with different units
// share one radar axis. A zero-width range is a point target and uses the
// absolute distance directly. Results are ordered by metric name so radar
// axes are stable across cities.
func ScoreComfort(cityName string, rec HourlyRecord, ranges map[string]IdealRange) ([]ComfortScore, error) {
	if len(ranges) == 0 {
		return nil, fmt.Errorf("%w: ideal-range table is empty", ErrConfiguration)
	}

	values := map[string]float64{
		MetricTemperature: rec.Temperature,
		MetricHumidity:    rec.Humidity,
		MetricUVIndex:     rec.UVIndex,
		MetricWind:        rec.WindSpeed,
	}

	metrics := make([]string, 0, len(ranges))
	for m := range ranges {
		metrics = append(metrics, m)
	}
	sort.Strings(metrics)

	scores := make([]ComfortScore, 0, len(metrics))
	for _, metric := range metrics {
		value, ok := values[metric]
		if !ok {
			return nil, fmt.Errorf("%w: unknown comfort metric %q", ErrConfiguration, metric)
		}
		r := ranges[metric]
		if r.Min > r.Max {
			return nil, fmt.Errorf("%w: ideal range for %s has min > max", ErrConfiguration, metric)
		}

		var distance float64
		switch {
		case value < r.Min:
			distance = r.Min - value
		case value > r.Max:
			distance = value - r.Max
		}

		scale := r.Scale
		if scale <= 0 {
			scale = 1
		}

		scores = append(scores, ComfortScore{
			City:   cityName,
			Metric: metric,
			Value:  value,
			Score:  distance / scale,
		})
	}

	return scores, nil
}
