package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/moveguider/moveguider/internal/wellness"
)

// OpenWeatherProvider implements both geocoding (direct geo API) and forecast
// fetching (One Call 3.0) against OpenWeatherMap.
type OpenWeatherProvider struct {
	name       string
	apiKey     string
	geoURL     string
	onecallURL string
	res        resilience
}

func NewOpenWeatherProvider(client *http.Client, apiKey string) *OpenWeatherProvider {
	return &OpenWeatherProvider{
		name:       "openweathermap",
		apiKey:     apiKey,
		geoURL:     "https://api.openweathermap.org/geo/1.0/direct",
		onecallURL: "https://api.openweathermap.org/data/3.0/onecall",
		res:        newResilience("openweather", client),
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

// Resolve looks up coordinates for a city name via the direct geocoding API.
func (p *OpenWeatherProvider) Resolve(ctx context.Context, city string) (Place, error) {
	if p.apiKey == "" {
		return Place{}, fmt.Errorf("openweather api key is not configured")
	}

	values := url.Values{}
	values.Set("q", city)
	values.Set("limit", "1")
	values.Set("appid", p.apiKey)

	var payload []struct {
		Name string  `json:"name"`
		Lat  float64 `json:"lat"`
		Lon  float64 `json:"lon"`
	}
	if err := p.res.getJSON(ctx, p.geoURL+"?"+values.Encode(), &payload); err != nil {
		return Place{}, err
	}
	if len(payload) == 0 {
		return Place{}, fmt.Errorf("no match for %q", city)
	}

	return Place{Name: payload[0].Name, Lat: payload[0].Lat, Lon: payload[0].Lon}, nil
}

// FetchForecast fetches up to 7 days of hourly data plus daily astro blocks
// from the One Call API and maps it onto the normalizer's raw shape.
func (p *OpenWeatherProvider) FetchForecast(ctx context.Context, lat, lon float64) (wellness.RawForecast, error) {
	if p.apiKey == "" {
		return wellness.RawForecast{}, fmt.Errorf("openweather api key is not configured")
	}

	values := url.Values{}
	values.Set("lat", fmt.Sprintf("%f", lat))
	values.Set("lon", fmt.Sprintf("%f", lon))
	values.Set("exclude", "current,minutely,alerts")
	values.Set("units", "metric")
	values.Set("appid", p.apiKey)

	var payload struct {
		Timezone string `json:"timezone"`
		Hourly   []struct {
			Dt        *int64   `json:"dt"`
			Temp      *float64 `json:"temp"`
			Humidity  *float64 `json:"humidity"`
			UVI       *float64 `json:"uvi"`
			WindSpeed *float64 `json:"wind_speed"`
			Weather   []struct {
				ID int `json:"id"`
			} `json:"weather"`
		} `json:"hourly"`
		Daily []struct {
			Dt      int64 `json:"dt"`
			Sunrise int64 `json:"sunrise"`
			Sunset  int64 `json:"sunset"`
		} `json:"daily"`
	}
	if err := p.res.getJSON(ctx, p.onecallURL+"?"+values.Encode(), &payload); err != nil {
		return wellness.RawForecast{}, err
	}

	raw := wellness.RawForecast{Timezone: payload.Timezone}
	for _, h := range payload.Hourly {
		var conditionID int
		if len(h.Weather) > 0 {
			conditionID = h.Weather[0].ID
		}
		raw.Hourly = append(raw.Hourly, wellness.RawHour{
			Dt:        h.Dt,
			Temp:      h.Temp,
			Humidity:  h.Humidity,
			UVI:       h.UVI,
			WindSpeed: h.WindSpeed,
			Condition: mapOpenWeatherCondition(conditionID),
		})
	}
	for _, d := range payload.Daily {
		raw.Daily = append(raw.Daily, wellness.RawDay{Dt: d.Dt, Sunrise: d.Sunrise, Sunset: d.Sunset})
	}

	return raw, nil
}

// mapOpenWeatherCondition maps OpenWeatherMap condition ids (group by
// hundreds) onto the normalized condition set.
func mapOpenWeatherCondition(id int) wellness.Condition {
	switch {
	case id >= 200 && id < 300:
		return wellness.ConditionStorm
	case (id >= 300 && id < 400) || (id >= 500 && id < 600):
		return wellness.ConditionRain
	case id >= 600 && id < 700:
		return wellness.ConditionSnow
	case id == 800:
		return wellness.ConditionClear
	case id > 800 && id < 900:
		return wellness.ConditionCloudy
	default:
		return wellness.ConditionUnknown
	}
}
