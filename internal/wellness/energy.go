package wellness

import (
	"fmt"
	"math"
	"time"
)

// chronotype shifts, in hours, applied to the peak and to the afternoon dip.
var chronotypeShifts = map[Chronotype][2]float64{
	ChronotypeDefault: {0, 0},
	ChronotypeLark:    {-1.5, -1},
	ChronotypeOwl:     {2, 1.5},
}

// EnergyCurve models relative cognitive performance across the 24 hours of
// the target date as a 0-100 series with one point per hour. The waking span
// follows a cosine anchored at a peak a fixed offset after wake, with a
// Gaussian early-afternoon dip; the sleep window is a shallow bowl whose
// minimum sits at mid-sleep, so the curve's global minimum always falls inside
// the declared sleep window. Sleep windows crossing midnight wrap modulo 24.
func EnergyCurve(sleepStart, sleepEnd string, chrono Chronotype, date time.Time, zone *time.Location, cfg EnergyConfig) (DerivedSeries, error) {
	onset, err := ParseClock(sleepStart)
	if err != nil {
		return DerivedSeries{}, err
	}
	wake, err := ParseClock(sleepEnd)
	if err != nil {
		return DerivedSeries{}, err
	}
	if onset == wake {
		return DerivedSeries{}, fmt.Errorf("%w: sleep window has zero length", ErrInvalidTimeRange)
	}

	// Unwrap so onset > wake on a continuous scale: waking span is
	// [wake, onset), sleep span is [onset, wake+24).
	if onset < wake {
		onset += 24
	}
	wakingSpan := onset - wake
	sleepSpan := 24 - wakingSpan
	midSleep := math.Mod(onset+sleepSpan/2, 24)

	shift, ok := chronotypeShifts[chrono]
	if !ok {
		shift = chronotypeShifts[ChronotypeDefault]
	}

	peakOffset := cfg.PeakOffsetHours
	if peakOffset <= 0 {
		peakOffset = wakingSpan / 4
	}
	peak := wake + peakOffset + shift[0]
	dipHour := cfg.DipHour + shift[1]

	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, zone)
	points := make([]SeriesPoint, 0, 24)
	for h := 0; h < 24; h++ {
		hour := float64(h)
		// Move the sample into the unwrapped frame when it precedes wake.
		frame := hour
		if frame < wake {
			frame += 24
		}

		var value float64
		if frame < onset {
			phase := (frame - peak) / (wakingSpan / 2) * math.Pi
			circadian := 0.8 * (math.Cos(phase) + 0.1)
			dip := -0.2 * math.Exp(-math.Pow(hour-dipHour, 2)/4)
			value = (circadian + dip) * 100
			if value < cfg.WakingFloor {
				value = cfg.WakingFloor
			}
		} else {
			// Circular distance from mid-sleep, normalized to the half span.
			d := math.Abs(hour - midSleep)
			if d > 12 {
				d = 24 - d
			}
			half := sleepSpan / 2
			value = cfg.SleepFloor + 10*math.Pow(d/half, 2)
		}

		if value > 100 {
			value = 100
		}
		if value < 0 {
			value = 0
		}

		points = append(points, SeriesPoint{
			Timestamp: midnight.Add(time.Duration(h) * time.Hour),
			Value:     math.Round(value*10) / 10,
		})
	}

	return DerivedSeries{Name: "energy", Unit: "score", Points: points}, nil
}
