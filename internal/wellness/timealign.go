package wellness

import (
	"fmt"
	"time"
)

// LoadZone resolves an IANA timezone identifier, wrapping failures in
// ErrInvalidTimezone.
func LoadZone(id string) (*time.Location, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty identifier", ErrInvalidTimezone)
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, id)
	}
	return loc, nil
}

// Alignment maps instants onto a shared comparison axis: fractional hours
// since midnight of the reference date in the home timezone. Two cities'
// hourly series aligned through the same Alignment can be plotted on one
// chart. The mapping is computed by subtraction of absolute instants, so DST
// transitions and non-integer UTC offsets fall out correctly.
type Alignment struct {
	home         *time.Location
	city         *time.Location
	homeMidnight time.Time
}

// NewAlignment builds an Alignment for the given zones and reference date.
// The reference date is interpreted in the home zone.
func NewAlignment(homeTZ, cityTZ string, ref time.Time) (Alignment, error) {
	home, err := LoadZone(homeTZ)
	if err != nil {
		return Alignment{}, err
	}
	city, err := LoadZone(cityTZ)
	if err != nil {
		return Alignment{}, err
	}
	local := ref.In(home)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, home)
	return Alignment{home: home, city: city, homeMidnight: midnight}, nil
}

// Home returns the home timezone location.
func (a Alignment) Home() *time.Location { return a.home }

// City returns the city timezone location.
func (a Alignment) City() *time.Location { return a.city }

// HomeHour maps an instant to fractional hours since home midnight.
func (a Alignment) HomeHour(t time.Time) float64 {
	return t.Sub(a.homeMidnight).Hours()
}

// CityLocal converts an instant to the city's local time.
func (a Alignment) CityLocal(t time.Time) time.Time {
	return t.In(a.city)
}

// LocalHourOffsets returns, for each of the city's 24 local hours on the
// reference date, the corresponding offset on the home axis. A DST transition
// in either zone shows up as a jump in consecutive offsets.
func (a Alignment) LocalHourOffsets() [24]float64 {
	cityLocal := a.homeMidnight.In(a.city)
	cityMidnight := time.Date(cityLocal.Year(), cityLocal.Month(), cityLocal.Day(), 0, 0, 0, 0, a.city)

	var offsets [24]float64
	for h := 0; h < 24; h++ {
		instant := time.Date(cityMidnight.Year(), cityMidnight.Month(), cityMidnight.Day(), h, 0, 0, 0, a.city)
		offsets[h] = a.HomeHour(instant)
	}
	return offsets
}
