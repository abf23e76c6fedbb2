package wellness

import (
	"fmt"
	"sync"
	"time"

	"github.com/sj14/astral/pkg/astral"
)

// SunTimes holds sunrise and sunset for one date, expressed in city-local time.
type SunTimes struct {
	Sunrise time.Time
	Sunset  time.Time
}

// SunCalc computes and caches sunrise/sunset per date for one observer
// position. It backs the normalizer when a payload carries no astro block and
// the planner's workout suggestion.
type SunCalc struct {
	mu       sync.RWMutex
	cache    map[string]SunTimes
	observer astral.Observer
	zone     *time.Location
}

// NewSunCalc creates a SunCalc for the given coordinates reporting times in zone.
func NewSunCalc(lat, lon float64, zone *time.Location) *SunCalc {
	return &SunCalc{
		cache:    make(map[string]SunTimes),
		observer: astral.Observer{Latitude: lat, Longitude: lon},
		zone:     zone,
	}
}

// TimesFor returns sunrise and sunset for the date of t.
func (sc *SunCalc) TimesFor(t time.Time) (SunTimes, error) {
	key := t.In(sc.zone).Format("2006-01-02")

	sc.mu.RLock()
	cached, ok := sc.cache[key]
	sc.mu.RUnlock()
	if ok {
		return cached, nil
	}

	sunrise, err := astral.Sunrise(sc.observer, t)
	if err != nil {
		return SunTimes{}, fmt.Errorf("sunrise for %s: %w", key, err)
	}
	sunset, err := astral.Sunset(sc.observer, t)
	if err != nil {
		return SunTimes{}, fmt.Errorf("sunset for %s: %w", key, err)
	}

	times := SunTimes{Sunrise: sunrise.In(sc.zone), Sunset: sunset.In(sc.zone)}

	sc.mu.Lock()
	sc.cache[key] = times
	sc.mu.Unlock()

	return times, nil
}
