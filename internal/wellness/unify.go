package wellness

import (
	"fmt"
)

// ComparisonRow is one chart-ready sample of the unified two-city series:
// a smoothed metric value placed on the shared home-hour axis, tagged with
// the city and the home-date label it belongs to, plus the across-days
// average for that (city, hour) slot.
type ComparisonRow struct {
	City    string  `json:"city"`
	Day     string  `json:"day"`  // home-date label, e.g. "Mon 02"
	Hour    float64 `json:"hour"` // clock hour on the home axis
	Value   float64 `json:"value"`
	Average float64 `json:"average"`
}

// BuildComparison merges both cities' hourly series for one metric onto the
// home time axis: each record is converted to home clock time, smoothed with
// a centered rolling mean, and paired with the mean of its (city, hour) slot
// across all forecast days. The output feeds a single overlaid line chart.
func BuildComparison(metric string, cities []CityContext, series [][]HourlyRecord, a Alignment, span int) ([]ComparisonRow, error) {
	if len(cities) != len(series) {
		return nil, fmt.Errorf("%w: %d cities but %d series", ErrConfiguration, len(cities), len(series))
	}
	if span < 1 {
		span = 1
	}

	var rows []ComparisonRow
	for ci, records := range series {
		values := make([]float64, len(records))
		for i, rec := range records {
			v, err := metricValue(metric, rec)
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		smoothed := rollingMean(values, span)

		// Mean per home clock hour across forecast days.
		sums := make(map[float64]float64)
		counts := make(map[float64]int)
		hours := make([]float64, len(records))
		for i, rec := range records {
			local := rec.Timestamp.In(a.Home())
			hours[i] = float64(local.Hour()) + float64(local.Minute())/60
			sums[hours[i]] += smoothed[i]
			counts[hours[i]]++
		}

		for i, rec := range records {
			local := rec.Timestamp.In(a.Home())
			rows = append(rows, ComparisonRow{
				City:    cities[ci].Name,
				Day:     local.Format("Mon 02"),
				Hour:    hours[i],
				Value:   smoothed[i],
				Average: sums[hours[i]] / float64(counts[hours[i]]),
			})
		}
	}

	return rows, nil
}

// metricValue selects one metric from a record by its shared name.
func metricValue(metric string, rec HourlyRecord) (float64, error) {
	switch metric {
	case MetricTemperature:
		return rec.Temperature, nil
	case MetricHumidity:
		return rec.Humidity, nil
	case MetricUVIndex:
		return rec.UVIndex, nil
	case MetricWind:
		return rec.WindSpeed, nil
	default:
		return 0, fmt.Errorf("%w: unknown metric %q", ErrConfiguration, metric)
	}
}

// rollingMean is a centered moving average with partial windows at the edges.
func rollingMean(values []float64, span int) []float64 {
	out := make([]float64, len(values))
	half := span / 2
	for i := range values {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + (span - half - 1)
		if hi > len(values)-1 {
			hi = len(values) - 1
		}
		var sum float64
		for j := lo; j <= hi; j++ {
			sum += values[j]
		}
		out[i] = sum / float64(hi-lo+1)
	}
	return out
}
