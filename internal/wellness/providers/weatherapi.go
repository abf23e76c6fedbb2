package providers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/moveguider/moveguider/internal/common"
	"github.com/moveguider/moveguider/internal/wellness"
)

// WeatherAPIProvider fetches hourly forecasts from WeatherAPI.com and
// converts them into the normalizer's raw shape. It serves as an alternative
// to OpenWeather when only a WeatherAPI key is configured.
type WeatherAPIProvider struct {
	name    string
	apiKey  string
	baseURL string
	res     resilience
}

func NewWeatherAPIProvider(client *http.Client, apiKey string) *WeatherAPIProvider {
	return &WeatherAPIProvider{
		name:    "weatherapi",
		apiKey:  apiKey,
		baseURL: "https://api.weatherapi.com/v1/forecast.json",
		res:     newResilience("weatherapi", client),
	}
}

func (p *WeatherAPIProvider) Name() string {
	return p.name
}

// FetchForecast fetches the 7-day hourly forecast and flattens the per-day
// hour blocks into one chronological sequence. Wind arrives in kph and is
// converted to m/s; per-day astro times are parsed in the location's zone.
func (p *WeatherAPIProvider) FetchForecast(ctx context.Context, lat, lon float64) (wellness.RawForecast, error) {
	if p.apiKey == "" {
		return wellness.RawForecast{}, fmt.Errorf("weatherapi api key is not configured")
	}

	values := url.Values{}
	values.Set("key", p.apiKey)
	values.Set("q", fmt.Sprintf("%f,%f", lat, lon))
	values.Set("days", "7")

	var payload struct {
		Location struct {
			TzID string `json:"tz_id"`
		} `json:"location"`
		Forecast struct {
			ForecastDay []struct {
				Date      string `json:"date"`
				DateEpoch int64  `json:"date_epoch"`
				Astro     struct {
					Sunrise string `json:"sunrise"` // "07:01 AM"
					Sunset  string `json:"sunset"`
				} `json:"astro"`
				Hour []struct {
					TimeEpoch *int64   `json:"time_epoch"`
					TempC     *float64 `json:"temp_c"`
					Humidity  *float64 `json:"humidity"`
					UV        *float64 `json:"uv"`
					WindKph   *float64 `json:"wind_kph"`
					Condition struct {
						Text string `json:"text"`
					} `json:"condition"`
				} `json:"hour"`
			} `json:"forecastday"`
		} `json:"forecast"`
	}
	if err := p.res.getJSON(ctx, p.baseURL+"?"+values.Encode(), &payload); err != nil {
		return wellness.RawForecast{}, err
	}

	zone, err := time.LoadLocation(payload.Location.TzID)
	if err != nil {
		return wellness.RawForecast{}, fmt.Errorf("weatherapi returned unknown timezone %q", payload.Location.TzID)
	}

	raw := wellness.RawForecast{Timezone: payload.Location.TzID}
	for _, day := range payload.Forecast.ForecastDay {
		rd := wellness.RawDay{Dt: day.DateEpoch}
		if sunrise, err := parseAstroTime(day.Date, day.Astro.Sunrise, zone); err == nil {
			rd.Sunrise = sunrise.Unix()
		} else {
			log.Printf("weatherapi: unparsable sunrise %q for %s: %v", day.Astro.Sunrise, day.Date, err)
		}
		if sunset, err := parseAstroTime(day.Date, day.Astro.Sunset, zone); err == nil {
			rd.Sunset = sunset.Unix()
		}
		raw.Daily = append(raw.Daily, rd)

		for _, h := range day.Hour {
			var wind *float64
			if h.WindKph != nil {
				ms := *h.WindKph / 3.6
				wind = &ms
			}
			raw.Hourly = append(raw.Hourly, wellness.RawHour{
				Dt:        h.TimeEpoch,
				Temp:      h.TempC,
				Humidity:  h.Humidity,
				UVI:       h.UV,
				WindSpeed: wind,
				Condition: mapWeatherAPICondition(h.Condition.Text),
			})
		}
	}

	return raw, nil
}

// parseAstroTime combines a forecast date with a "07:01 AM" astro time in the
// location's zone.
func parseAstroTime(date, clock string, zone *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 03:04 PM", date+" "+clock, zone)
}

func mapWeatherAPICondition(text string) wellness.Condition {
	switch {
	case text == "":
		return wellness.ConditionUnknown
	case common.HasAny(text, "thunder", "storm"):
		return wellness.ConditionStorm
	case common.HasAny(text, "rain", "shower", "drizzle"):
		return wellness.ConditionRain
	case common.HasAny(text, "snow", "sleet", "blizzard"):
		return wellness.ConditionSnow
	case common.HasAny(text, "cloud", "overcast", "mist", "fog"):
		return wellness.ConditionCloudy
	case common.HasAny(text, "sunny", "clear"):
		return wellness.ConditionClear
	default:
		return wellness.ConditionUnknown
	}
}
