package wellness

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constantSeries(zone *time.Location, start time.Time, hours int, temp float64) []HourlyRecord {
	records := make([]HourlyRecord, hours)
	for i := range records {
		records[i] = HourlyRecord{
			Timestamp:   start.Add(time.Duration(i) * time.Hour).In(zone),
			Temperature: temp,
			Humidity:    50,
		}
	}
	return records
}

func TestBuildComparisonConstantSeries(t *testing.T) {
	ref := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	a, err := NewAlignment("America/Phoenix", "Europe/London", ref)
	require.NoError(t, err)

	london, _ := LoadZone("Europe/London")
	ktm, _ := LoadZone("Asia/Kathmandu")

	cities := []CityContext{
		{Name: "London", Timezone: "Europe/London"},
		{Name: "Kathmandu", Timezone: "Asia/Kathmandu"},
	}
	series := [][]HourlyRecord{
		constantSeries(london, ref, 48, 10),
		constantSeries(ktm, ref, 48, 30),
	}

	rows, err := BuildComparison(MetricTemperature, cities, series, a, 4)
	require.NoError(t, err)
	require.Len(t, rows, 96)

	// Constant inputs survive smoothing and averaging untouched.
	for _, row := range rows {
		switch row.City {
		case "London":
			assert.InDelta(t, 10, row.Value, 1e-9)
			assert.InDelta(t, 10, row.Average, 1e-9)
		case "Kathmandu":
			assert.InDelta(t, 30, row.Value, 1e-9)
			assert.InDelta(t, 30, row.Average, 1e-9)
		default:
			t.Fatalf("unexpected city %s", row.City)
		}
		assert.GreaterOrEqual(t, row.Hour, 0.0)
		assert.Less(t, row.Hour, 24.0)
	}
}

func TestBuildComparisonUnknownMetric(t *testing.T) {
	ref := time.Now()
	a, err := NewAlignment("America/Phoenix", "Europe/London", ref)
	require.NoError(t, err)

	cities := []CityContext{{Name: "A"}, {Name: "B"}}
	series := [][]HourlyRecord{{}, {}}
	_, err = BuildComparison("dew_point", cities, series, a, 4)
	assert.NoError(t, err) // empty series never reach metric selection

	series = [][]HourlyRecord{{{Temperature: 20}}, {}}
	_, err = BuildComparison("dew_point", cities, series, a, 4)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestBuildComparisonLengthMismatch(t *testing.T) {
	ref := time.Now()
	a, err := NewAlignment("America/Phoenix", "Europe/London", ref)
	require.NoError(t, err)

	_, err = BuildComparison(MetricTemperature, []CityContext{{Name: "A"}}, nil, a, 4)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestRollingMeanSmoothing(t *testing.T) {
	out := rollingMean([]float64{0, 10, 0, 10, 0, 10}, 2)
	require.Len(t, out, 6)
	// A window of 2 pairs each sample with its predecessor; the first sample
	// has only a partial window.
	assert.InDelta(t, 0, out[0], 1e-9)
	assert.InDelta(t, 5, out[1], 1e-9)
	assert.InDelta(t, 5, out[5], 1e-9)
}
