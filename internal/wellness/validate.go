package wellness

import "fmt"

// Defaults applied when user-supplied profile fields fail validation. The
// dashboard must stay usable, so bad fields are clamped here and surfaced as
// warnings rather than rejected.
const (
	defaultSleepStart = "23:00"
	defaultSleepEnd   = "07:00"
	defaultWeightKg   = 70
	minWeightKg       = 30
	maxWeightKg       = 250
	maxActivity       = 3
)

// SanitizeProfile returns a copy of the profile with invalid user-supplied
// fields replaced by clamped defaults, plus one warning per correction.
func SanitizeProfile(p UserProfile) (UserProfile, []Warning) {
	var warnings []Warning

	if _, err := ParseClock(p.SleepStart); err != nil {
		warnings = append(warnings, Warning{
			Field:   "sleep_start",
			Message: fmt.Sprintf("unusable sleep start %q, using %s", p.SleepStart, defaultSleepStart),
		})
		p.SleepStart = defaultSleepStart
	}
	if _, err := ParseClock(p.SleepEnd); err != nil {
		warnings = append(warnings, Warning{
			Field:   "sleep_end",
			Message: fmt.Sprintf("unusable sleep end %q, using %s", p.SleepEnd, defaultSleepEnd),
		})
		p.SleepEnd = defaultSleepEnd
	}
	if p.SleepStart == p.SleepEnd {
		warnings = append(warnings, Warning{
			Field:   "sleep_end",
			Message: "sleep window has zero length, using defaults",
		})
		p.SleepStart, p.SleepEnd = defaultSleepStart, defaultSleepEnd
	}

	if p.WeightKg < minWeightKg || p.WeightKg > maxWeightKg {
		warnings = append(warnings, Warning{
			Field:   "weight_kg",
			Message: fmt.Sprintf("weight %.1f kg outside %d-%d, using %d", p.WeightKg, minWeightKg, maxWeightKg, defaultWeightKg),
		})
		p.WeightKg = defaultWeightKg
	}

	if p.Activity == 0 {
		p.Activity = 1
	} else if p.Activity < 0 || p.Activity > maxActivity {
		warnings = append(warnings, Warning{
			Field:   "activity",
			Message: fmt.Sprintf("activity multiplier %.2f outside 0-%d, using 1", p.Activity, maxActivity),
		})
		p.Activity = 1
	}

	switch p.Chronotype {
	case ChronotypeDefault, ChronotypeLark, ChronotypeOwl:
	case "":
		p.Chronotype = ChronotypeDefault
	default:
		warnings = append(warnings, Warning{
			Field:   "chronotype",
			Message: fmt.Sprintf("unknown chronotype %q, using default", p.Chronotype),
		})
		p.Chronotype = ChronotypeDefault
	}

	return p, warnings
}
