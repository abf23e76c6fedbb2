package httpapi

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/moveguider/moveguider/internal/profile"
	"github.com/moveguider/moveguider/internal/wellness"
	"github.com/moveguider/moveguider/internal/wellness/providers"
)

var validate = validator.New()

// Deps bundles the collaborators the handlers orchestrate: the caching city
// source, the pure wellness service and the profile store.
type Deps struct {
	Cities   *providers.CachingResolver
	Service  *wellness.Service
	Profiles *profile.FileStore
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, deps Deps) {
	v1 := app.Group("/api/v1")

	v1.Get("/dashboard", func(c *fiber.Ctx) error {
		var req cityPairQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		prof, err := loadProfile(deps.Profiles, c.Query("profile"))
		if err != nil {
			return err
		}

		cities, err := resolvePair(c, deps, req)
		if err != nil {
			return err
		}

		dash, err := deps.Service.BuildDashboard(prof, cities, time.Now())
		if err != nil {
			return mapCoreError(err)
		}
		return c.JSON(dash)
	})

	v1.Get("/compare", func(c *fiber.Ctx) error {
		var req compareQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		cities, err := resolvePair(c, deps, req.cityPairQuery)
		if err != nil {
			return err
		}

		rows, err := deps.Service.Compare(req.Metric, cities, time.Now())
		if err != nil {
			return mapCoreError(err)
		}
		return c.JSON(fiber.Map{
			"metric": req.Metric,
			"rows":   rows,
		})
	})

	v1.Get("/checklist", func(c *fiber.Ctx) error {
		req := cityPairQuery{City1: c.Query("from"), City2: c.Query("to")}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "from and to query parameters are required")
		}

		prof, err := loadProfile(deps.Profiles, c.Query("profile"))
		if err != nil {
			return err
		}

		cities, err := resolvePair(c, deps, req)
		if err != nil {
			return err
		}

		text, err := deps.Service.Checklist(prof, cities[0], cities[1], time.Now())
		if err != nil {
			return mapCoreError(err)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(text)
	})

	registerProfileRoutes(v1, deps.Profiles)
}

// cityPairQuery holds the two-city query parameters shared by most endpoints.
type cityPairQuery struct {
	City1 string `validate:"required"`
	City2 string `validate:"required"`
}

func (q *cityPairQuery) bind(c *fiber.Ctx) error {
	q.City1 = c.Query("city1")
	q.City2 = c.Query("city2")
	return validate.Struct(q)
}

// compareQuery adds the metric selector.
type compareQuery struct {
	cityPairQuery
	Metric string `validate:"required,oneof=temperature humidity uv_index wind"`
}

func (q *compareQuery) bind(c *fiber.Ctx) error {
	if err := q.cityPairQuery.bind(c); err != nil {
		return err
	}
	q.Metric = c.Query("metric")
	return validate.Struct(q)
}

// resolvePair resolves both requested cities through the cache.
func resolvePair(c *fiber.Ctx, deps Deps, req cityPairQuery) ([]wellness.CityContext, error) {
	cities := make([]wellness.CityContext, 0, 2)
	for _, name := range []string{req.City1, req.City2} {
		city, err := deps.Cities.City(c.Context(), name)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadGateway, "failed to fetch data for "+name)
		}
		cities = append(cities, city)
	}
	return cities, nil
}

// loadProfile fetches the named profile, falling back to an empty profile
// (the service clamps it to defaults) when no name was given.
func loadProfile(store *profile.FileStore, name string) (wellness.UserProfile, error) {
	if name == "" {
		return wellness.UserProfile{Name: "guest"}, nil
	}
	prof, err := store.Get(name)
	if errors.Is(err, profile.ErrNotFound) {
		return wellness.UserProfile{}, fiber.NewError(fiber.StatusNotFound, "unknown profile "+name)
	}
	if err != nil {
		return wellness.UserProfile{}, fiber.NewError(fiber.StatusInternalServerError, "failed to load profile")
	}
	return prof, nil
}

// mapCoreError translates the core's error taxonomy onto HTTP status codes.
func mapCoreError(err error) error {
	switch {
	case errors.Is(err, wellness.ErrMalformedPayload):
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	case errors.Is(err, wellness.ErrInvalidTimezone),
		errors.Is(err, wellness.ErrInvalidTimeRange),
		errors.Is(err, wellness.ErrConfiguration):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}
