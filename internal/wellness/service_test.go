package wellness

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(DefaultConfig())
	require.NoError(t, err)
	return svc
}

func testProfile() UserProfile {
	return UserProfile{
		Name:       "alice",
		SleepStart: "23:00",
		SleepEnd:   "07:00",
		WeightKg:   64,
		Routine: []RoutineTask{
			{Label: "Work", Start: "09:00", End: "17:00", Type: "work"},
			{Label: "Dinner", Start: "19:00", End: "20:00", Type: "personal"},
		},
	}
}

func twoTestCities() []CityContext {
	start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	london := testCity(testForecast(start, 48))

	ktmRaw := testForecast(start, 48)
	ktmRaw.Timezone = "Asia/Kathmandu"
	ktm := CityContext{Name: "Kathmandu", Lat: 27.7, Lon: 85.3, Timezone: "Asia/Kathmandu", Forecast: ktmRaw}

	return []CityContext{london, ktm}
}

func TestBuildDashboard(t *testing.T) {
	svc := testService(t)
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	dash, err := svc.BuildDashboard(testProfile(), twoTestCities(), now)
	require.NoError(t, err)

	assert.NotEmpty(t, dash.ID)
	require.Len(t, dash.Cities, 2)
	assert.Empty(t, dash.Warnings)

	for _, view := range dash.Cities {
		assert.Len(t, view.Records, 48)
		assert.Len(t, view.Hydration.Points, 48)
		assert.Len(t, view.HydrationCumulative.Points, 48)
		assert.Len(t, view.Comfort, 4)
	}

	assert.Len(t, dash.Energy.Points, 24)
	require.Len(t, dash.Plan, 2)
	assert.Equal(t, "Work", dash.Plan[0].Label)
}

func TestBuildDashboardPartialFailure(t *testing.T) {
	svc := testService(t)
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	cities := twoTestCities()
	cities[1].Forecast.Hourly[0].Temp = nil

	dash, err := svc.BuildDashboard(testProfile(), cities, now)
	require.NoError(t, err)

	// The broken city is dropped with a warning; the healthy one renders.
	require.Len(t, dash.Cities, 1)
	assert.Equal(t, "London", dash.Cities[0].City.Name)
	require.NotEmpty(t, dash.Warnings)
	assert.Contains(t, dash.Warnings[len(dash.Warnings)-1].Field, "Kathmandu")
}

func TestBuildDashboardAllCitiesFail(t *testing.T) {
	svc := testService(t)
	now := time.Now()

	cities := twoTestCities()
	cities[0].Forecast.Hourly = nil
	cities[1].Forecast.Hourly = nil

	_, err := svc.BuildDashboard(testProfile(), cities, now)
	assert.Error(t, err)
}

func TestBuildDashboardClampsProfile(t *testing.T) {
	svc := testService(t)
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	prof := testProfile()
	prof.WeightKg = 900

	dash, err := svc.BuildDashboard(prof, twoTestCities(), now)
	require.NoError(t, err)
	require.NotEmpty(t, dash.Warnings)
	assert.Equal(t, "weight_kg", dash.Warnings[0].Field)
	assert.Equal(t, float64(defaultWeightKg), dash.Profile.WeightKg)
}

func TestCompare(t *testing.T) {
	svc := testService(t)
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	rows, err := svc.Compare(MetricTemperature, twoTestCities(), now)
	require.NoError(t, err)
	assert.Len(t, rows, 96)

	_, err = svc.Compare(MetricTemperature, twoTestCities()[:1], now)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestChecklist(t *testing.T) {
	svc := testService(t)
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	cities := twoTestCities()
	text, err := svc.Checklist(testProfile(), cities[0], cities[1], now)
	require.NoError(t, err)

	assert.True(t, strings.Contains(text, "Moving from: London"))
	assert.True(t, strings.Contains(text, "Moving to: Kathmandu"))
	assert.True(t, strings.Contains(text, "sleeping at 23:00"))
	assert.True(t, strings.Contains(text, "2026-01-15"))
}
