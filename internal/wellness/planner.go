package wellness

import (
	"fmt"
	"time"
)

// CityTaskTime is one routine task converted into one city's local time.
type CityTaskTime struct {
	City      string    `json:"city"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	DayOffset int       `json:"day_offset"` // local date minus home date, in days
	OffHours  bool      `json:"off_hours"`  // falls (partly) outside core hours locally
}

// PlannedTask is one routine task with its home window and per-city
// conversions. Planned tasks keep the order the user declared them in, which
// is also the chart's display order.
type PlannedTask struct {
	Label     string         `json:"label"`
	Type      string         `json:"type"`
	HomeStart time.Time      `json:"home_start"`
	HomeEnd   time.Time      `json:"home_end"`
	Cities    []CityTaskTime `json:"cities"`
}

// PlanRoutine converts each routine task's home-clock window into both
// cities' local times on the reference date and flags tasks that land outside
// the configured core-hours window in either city. Conversion is pure
// timezone arithmetic; tasks whose local window crosses a day boundary are
// marked with a day offset but never reordered.
func PlanRoutine(routine []RoutineTask, cities []CityContext, ref time.Time, cfg Config) ([]PlannedTask, error) {
	home, err := LoadZone(cfg.HomeTimezone)
	if err != nil {
		return nil, err
	}

	coreStart, err := ParseClock(cfg.CoreHoursStart)
	if err != nil {
		return nil, fmt.Errorf("%w: core hours start: %v", ErrConfiguration, err)
	}
	coreEnd, err := ParseClock(cfg.CoreHoursEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: core hours end: %v", ErrConfiguration, err)
	}

	zones := make([]*time.Location, len(cities))
	for i, c := range cities {
		if zones[i], err = LoadZone(c.Timezone); err != nil {
			return nil, err
		}
	}

	homeDate := ref.In(home)
	planned := make([]PlannedTask, 0, len(routine))
	for _, task := range routine {
		start, err := clockOnDate(task.Start, homeDate, home)
		if err != nil {
			return nil, fmt.Errorf("task %q: %w", task.Label, err)
		}
		end, err := clockOnDate(task.End, homeDate, home)
		if err != nil {
			return nil, fmt.Errorf("task %q: %w", task.Label, err)
		}
		if !end.After(start) {
			// Windows like 23:00-01:00 run into the next home day.
			end = end.AddDate(0, 0, 1)
		}

		pt := PlannedTask{
			Label:     task.Label,
			Type:      task.Type,
			HomeStart: start,
			HomeEnd:   end,
		}

		for i, c := range cities {
			localStart := start.In(zones[i])
			localEnd := end.In(zones[i])
			pt.Cities = append(pt.Cities, CityTaskTime{
				City:      c.Name,
				Start:     localStart,
				End:       localEnd,
				DayOffset: dayDelta(homeDate, localStart),
				OffHours:  !withinCoreHours(localStart, localEnd, coreStart, coreEnd),
			})
		}

		planned = append(planned, pt)
	}

	return planned, nil
}

// SuggestWorkout proposes a workout window starting shortly after local
// sunrise on the first daylight record, following the habit of training in
// early morning light. Returns false when the records carry no daylight.
func SuggestWorkout(records []HourlyRecord, sun *SunCalc) (RoutineTask, bool) {
	for _, rec := range records {
		if !rec.Daylight {
			continue
		}
		sunrise := rec.Timestamp
		if sun != nil {
			if times, err := sun.TimesFor(rec.Timestamp); err == nil {
				sunrise = times.Sunrise
			}
		}
		start := sunrise.Add(15 * time.Minute)
		end := sunrise.Add(90 * time.Minute)
		return RoutineTask{
			Label: "Workout",
			Start: start.Format("15:04"),
			End:   end.Format("15:04"),
			Type:  "health",
		}, true
	}
	return RoutineTask{}, false
}

// withinCoreHours reports whether the whole local window falls inside the
// [coreStart, coreEnd] clock range on its local date.
func withinCoreHours(start, end time.Time, coreStart, coreEnd float64) bool {
	s := float64(start.Hour()) + float64(start.Minute())/60
	e := float64(end.Hour()) + float64(end.Minute())/60
	if e == 0 && end.After(start) {
		e = 24
	}
	if e < s {
		// Crosses local midnight; that can never sit inside a same-day window.
		return false
	}
	return s >= coreStart && e <= coreEnd
}

// dayDelta returns the difference in calendar days between the local
// timestamp's date and the home reference date.
func dayDelta(homeDate, local time.Time) int {
	hy, hm, hd := homeDate.Date()
	ly, lm, ld := local.Date()
	home := time.Date(hy, hm, hd, 0, 0, 0, 0, time.UTC)
	loc := time.Date(ly, lm, ld, 0, 0, 0, 0, time.UTC)
	return int(loc.Sub(home).Hours() / 24)
}
