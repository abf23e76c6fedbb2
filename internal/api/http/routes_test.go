package httpapi

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/moveguider/moveguider/internal/profile"
	"github.com/moveguider/moveguider/internal/store"
	"github.com/moveguider/moveguider/internal/wellness"
	"github.com/moveguider/moveguider/internal/wellness/providers"
)

func ptrF(v float64) *float64 { return &v }
func ptrI(v int64) *int64     { return &v }

// seedCity builds a synthetic resolved city with 48 hours of forecast.
func seedCity(name, tz string) wellness.CityContext {
	start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	raw := wellness.RawForecast{Timezone: tz}
	for i := 0; i < 48; i++ {
		ts := start.Add(time.Duration(i) * time.Hour)
		raw.Hourly = append(raw.Hourly, wellness.RawHour{
			Dt:        ptrI(ts.Unix()),
			Temp:      ptrF(18),
			Humidity:  ptrF(50),
			UVI:       ptrF(2),
			WindSpeed: ptrF(3),
			Condition: wellness.ConditionClear,
		})
	}
	day := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	raw.Daily = []wellness.RawDay{{
		Dt:      day.Unix(),
		Sunrise: day.Add(7 * time.Hour).Unix(),
		Sunset:  day.Add(17 * time.Hour).Unix(),
	}}
	return wellness.CityContext{Name: name, Timezone: tz, Forecast: raw}
}

// newTestApp wires a fiber app with a pre-warmed city cache so handlers run
// end to end without any network access.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	memStore := store.NewMemoryStore(10, time.Hour)
	memStore.Save("London", seedCity("London", "Europe/London"))
	memStore.Save("Kathmandu", seedCity("Kathmandu", "Asia/Kathmandu"))

	cities := providers.NewCachingResolver(providers.NewResolver(nil), memStore)

	svc, err := wellness.NewService(wellness.DefaultConfig())
	if err != nil {
		t.Fatalf("building service: %v", err)
	}

	profiles := profile.NewFileStore(filepath.Join(t.TempDir(), "profiles.json"))

	app := fiber.New()
	RegisterRoutes(app, Deps{Cities: cities, Service: svc, Profiles: profiles})
	return app
}

func TestDashboardValidation(t *testing.T) {
	app := newTestApp(t)

	// Missing city2 should return 400.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?city1=London", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestDashboardFromWarmCache(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?city1=London&city2=Kathmandu", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	for _, want := range []string{`"energy"`, `"hydration"`, `"comfort"`} {
		if !strings.Contains(string(body), want) {
			t.Fatalf("dashboard body missing %s", want)
		}
	}
}

func TestDashboardUnresolvableCity(t *testing.T) {
	app := newTestApp(t)

	// Nowhere is not cached and the test resolver has no providers.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?city1=London&city2=Nowhere", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected status %d, got %d", http.StatusBadGateway, resp.StatusCode)
	}
}

func TestDashboardUnknownProfile(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?city1=London&city2=Kathmandu&profile=ghost", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
}

func TestCompareMetricValidation(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/compare?city1=London&city2=Kathmandu&metric=dew_point", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/compare?city1=London&city2=Kathmandu&metric=temperature", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
}

func TestChecklistEndpoint(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/checklist?from=London&to=Kathmandu", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Moving to: Kathmandu") {
		t.Fatalf("checklist body missing destination, got: %s", body)
	}
}

func TestProfileCRUD(t *testing.T) {
	app := newTestApp(t)

	payload := `{"sleep_start":"23:00","sleep_end":"07:00","weight_kg":64}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/profiles/alice", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/profiles/alice", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `"alice"`) {
		t.Fatalf("profile body missing name, got: %s", body)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/profiles/alice", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/profiles/alice", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
}
