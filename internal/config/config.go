package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/moveguider/moveguider/internal/wellness"
)

// AppConfig carries everything the process is wired with: provider keys,
// cache retention, scheduler settings and the core's tunables.
type AppConfig struct {
	OpenWeatherAPIKey string
	WeatherAPIKey     string
	GoogleAPIKey      string

	// HTTPTimeout bounds outbound provider calls.
	HTTPTimeout time.Duration

	// FavoriteCities are kept warm in cache by the scheduler.
	FavoriteCities  []string
	RefreshInterval time.Duration

	// Forecast cache retention.
	CacheMaxEntries int
	CacheMaxAge     time.Duration

	// ProfilePath is where the JSON profile store lives.
	ProfilePath string

	// Core is handed to the wellness service; the core itself never reads
	// the environment.
	Core wellness.Config

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.WeatherAPIKey = os.Getenv("WEATHERAPI_API_KEY")
	cfg.GoogleAPIKey = os.Getenv("GOOGLE_API_KEY")
	if cfg.OpenWeatherAPIKey == "" && cfg.WeatherAPIKey == "" {
		return nil, fmt.Errorf("at least one of OPENWEATHER_API_KEY or WEATHERAPI_API_KEY must be set")
	}

	var err error
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	if cfg.RefreshInterval, err = getenvDuration("REFRESH_INTERVAL", "30m"); err != nil {
		return nil, err
	}
	if cfg.CacheMaxAge, err = getenvDuration("CACHE_MAX_AGE", "1h"); err != nil {
		return nil, err
	}
	cfg.CacheMaxEntries = getenvInt("CACHE_MAX_ENTRIES", 32)

	if cities := os.Getenv("FAVORITE_CITIES"); cities != "" {
		for _, c := range strings.Split(cities, ",") {
			if c = strings.TrimSpace(c); c != "" {
				cfg.FavoriteCities = append(cfg.FavoriteCities, c)
			}
		}
	}

	cfg.ProfilePath = getenvDefault("PROFILE_PATH", "data/profiles.json")
	cfg.Port = getenvDefault("PORT", "8080")

	cfg.Core = wellness.DefaultConfig()
	cfg.Core.HomeTimezone = getenvDefault("HOME_TIMEZONE", cfg.Core.HomeTimezone)
	cfg.Core.CoreHoursStart = getenvDefault("CORE_HOURS_START", cfg.Core.CoreHoursStart)
	cfg.Core.CoreHoursEnd = getenvDefault("CORE_HOURS_END", cfg.Core.CoreHoursEnd)
	if v := os.Getenv("PEAK_OFFSET_HOURS"); v != "" {
		offset, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid PEAK_OFFSET_HOURS: %w", err)
		}
		cfg.Core.Energy.PeakOffsetHours = offset
	}
	if err := cfg.Core.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
