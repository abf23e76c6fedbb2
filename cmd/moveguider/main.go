package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/moveguider/moveguider/internal/api/http"
	"github.com/moveguider/moveguider/internal/config"
	"github.com/moveguider/moveguider/internal/profile"
	"github.com/moveguider/moveguider/internal/scheduler"
	"github.com/moveguider/moveguider/internal/store"
	"github.com/moveguider/moveguider/internal/wellness"
	"github.com/moveguider/moveguider/internal/wellness/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Forecast provider and geocoders; Google geocoding takes precedence
	// when a key is configured.
	var forecast providers.ForecastProvider
	var geocoders []providers.Geocoder

	if cfg.OpenWeatherAPIKey != "" {
		ow := providers.NewOpenWeatherProvider(httpClient, cfg.OpenWeatherAPIKey)
		forecast = ow
		geocoders = append(geocoders, ow)
	}
	if cfg.WeatherAPIKey != "" && forecast == nil {
		forecast = providers.NewWeatherAPIProvider(httpClient, cfg.WeatherAPIKey)
	}
	if cfg.GoogleAPIKey != "" {
		geocoders = append([]providers.Geocoder{providers.NewGoogleGeocoder(cfg.GoogleAPIKey)}, geocoders...)
	}
	if len(geocoders) == 0 {
		log.Fatal("no geocoder available; set OPENWEATHER_API_KEY or GOOGLE_API_KEY")
	}

	// Cached city source over the in-memory store.
	memStore := store.NewMemoryStore(cfg.CacheMaxEntries, cfg.CacheMaxAge)
	cities := providers.NewCachingResolver(providers.NewResolver(forecast, geocoders...), memStore)

	// Pure derived-metrics pipeline.
	service, err := wellness.NewService(cfg.Core)
	if err != nil {
		log.Fatalf("failed to build wellness service: %v", err)
	}

	// Profile persistence.
	profiles := profile.NewFileStore(cfg.ProfilePath)

	// Scheduler keeping favorite cities warm.
	sched := scheduler.New(cfg.FavoriteCities, cfg.RefreshInterval, cities)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "moveguider",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "moveguider",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, httpapi.Deps{
		Cities:   cities,
		Service:  service,
		Profiles: profiles,
	})

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
