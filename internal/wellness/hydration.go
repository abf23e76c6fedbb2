package wellness

import "math"

// HydrationSeries computes the recommended water intake in ml for every hour
// of the record sequence, plus the running cumulative total. The baseline is
// spread from body weight, with monotone surcharges for heat above the comfort
// threshold and for humidity above the comfort band. Values never go negative
// and are clamped to the configured per-hour ceiling. Output timestamps match
// the input axis exactly.
func HydrationSeries(records []HourlyRecord, weightKg, activity float64, cfg HydrationConfig) (hourly, cumulative DerivedSeries) {
	if activity <= 0 {
		activity = 1
	}

	base := weightKg * cfg.MLPerKg / cfg.BaseDivisor

	hourly = DerivedSeries{Name: "hydration", Unit: "ml"}
	cumulative = DerivedSeries{Name: "hydration_cumulative", Unit: "ml"}
	hourly.Points = make([]SeriesPoint, 0, len(records))
	cumulative.Points = make([]SeriesPoint, 0, len(records))

	var total float64
	for _, rec := range records {
		intake := base

		if excess := rec.Temperature - cfg.TempThresholdC; excess > 0 {
			intake += excess / cfg.TempStepC * cfg.TempStepML
		}
		if rec.Humidity > cfg.HumidityLimit {
			intake += cfg.HumidityML
		}

		intake *= activity

		if intake < 0 {
			intake = 0
		}
		if cfg.MaxHourlyML > 0 && intake > cfg.MaxHourlyML {
			intake = cfg.MaxHourlyML
		}
		intake = math.Round(intake)
		total += intake

		hourly.Points = append(hourly.Points, SeriesPoint{Timestamp: rec.Timestamp, Value: intake})
		cumulative.Points = append(cumulative.Points, SeriesPoint{Timestamp: rec.Timestamp, Value: total})
	}

	return hourly, cumulative
}
