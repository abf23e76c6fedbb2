package providers

import (
	"context"
	"fmt"

	"github.com/kelvins/geocoder"
)

// GoogleGeocoder resolves city names through the Google Maps geocoding API.
// It is wired in front of the OpenWeather geocoder when a Google key is
// configured, since its matching of ambiguous city names is noticeably better.
type GoogleGeocoder struct {
	name string
}

// NewGoogleGeocoder sets the package-level API key the geocoder library uses.
func NewGoogleGeocoder(apiKey string) *GoogleGeocoder {
	geocoder.ApiKey = apiKey
	return &GoogleGeocoder{name: "google"}
}

func (g *GoogleGeocoder) Name() string {
	return g.name
}

// Resolve geocodes the city name. The underlying library does not take a
// context; cancellation is checked before the call.
func (g *GoogleGeocoder) Resolve(ctx context.Context, city string) (Place, error) {
	if geocoder.ApiKey == "" {
		return Place{}, fmt.Errorf("google api key is not configured")
	}
	if err := ctx.Err(); err != nil {
		return Place{}, err
	}

	location, err := geocoder.Geocoding(geocoder.Address{City: city})
	if err != nil {
		return Place{}, fmt.Errorf("google geocoding failed: %w", err)
	}

	return Place{Name: city, Lat: location.Latitude, Lon: location.Longitude}, nil
}
