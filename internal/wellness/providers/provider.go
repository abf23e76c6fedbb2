package providers

import (
	"context"
	"fmt"
	"log"

	"github.com/moveguider/moveguider/internal/wellness"
)

// Place is a geocoding result.
type Place struct {
	Name string
	Lat  float64
	Lon  float64
}

// Geocoder resolves a free-form city name to coordinates.
type Geocoder interface {
	Name() string
	Resolve(ctx context.Context, city string) (Place, error)
}

// ForecastProvider fetches a raw hourly forecast for resolved coordinates.
// Implementations translate their native payload into the normalizer's
// RawForecast shape, including condition normalization.
type ForecastProvider interface {
	Name() string
	FetchForecast(ctx context.Context, lat, lon float64) (wellness.RawForecast, error)
}

// Resolver turns a city name into a fully populated CityContext by chaining
// geocoding and forecast fetching. Geocoders are tried in order so a
// configured Google geocoder can take precedence with the OpenWeather one as
// fallback.
type Resolver struct {
	geocoders []Geocoder
	forecast  ForecastProvider
}

// NewResolver creates a Resolver. At least one geocoder and the forecast
// provider are required.
func NewResolver(forecast ForecastProvider, geocoders ...Geocoder) *Resolver {
	return &Resolver{geocoders: geocoders, forecast: forecast}
}

// ResolveCity geocodes the name, fetches its forecast and assembles the
// request-scoped CityContext. The timezone comes from the forecast payload.
func (r *Resolver) ResolveCity(ctx context.Context, city string) (wellness.CityContext, error) {
	if r.forecast == nil {
		return wellness.CityContext{}, fmt.Errorf("no forecast provider configured")
	}

	var place Place
	var geoErr error
	for _, g := range r.geocoders {
		place, geoErr = g.Resolve(ctx, city)
		if geoErr == nil {
			break
		}
		log.Printf("geocoder %s failed for %q: %v", g.Name(), city, geoErr)
	}
	if geoErr != nil || (place.Lat == 0 && place.Lon == 0 && place.Name == "") {
		if geoErr == nil {
			geoErr = fmt.Errorf("no geocoder configured")
		}
		return wellness.CityContext{}, fmt.Errorf("geocoding %q: %w", city, geoErr)
	}

	raw, err := r.forecast.FetchForecast(ctx, place.Lat, place.Lon)
	if err != nil {
		return wellness.CityContext{}, fmt.Errorf("forecast for %q: %w", city, err)
	}
	if raw.Timezone == "" {
		return wellness.CityContext{}, fmt.Errorf("%w: forecast for %q carries no timezone", wellness.ErrMalformedPayload, city)
	}

	name := place.Name
	if name == "" {
		name = city
	}

	return wellness.CityContext{
		Name:     name,
		Lat:      place.Lat,
		Lon:      place.Lon,
		Timezone: raw.Timezone,
		Forecast: raw,
	}, nil
}
