package wellness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeProfileCleanPassesThrough(t *testing.T) {
	p := UserProfile{
		Name:       "alice",
		SleepStart: "23:30",
		SleepEnd:   "06:45",
		WeightKg:   64,
		Chronotype: ChronotypeLark,
		Activity:   1.5,
	}
	clean, warnings := SanitizeProfile(p)
	assert.Empty(t, warnings)
	assert.Equal(t, p, clean)
}

func TestSanitizeProfileClampsBadFields(t *testing.T) {
	p := UserProfile{
		Name:       "bob",
		SleepStart: "2300",
		SleepEnd:   "07:00",
		WeightKg:   500,
		Chronotype: "vampire",
		Activity:   12,
	}
	clean, warnings := SanitizeProfile(p)

	assert.Equal(t, defaultSleepStart, clean.SleepStart)
	assert.Equal(t, "07:00", clean.SleepEnd)
	assert.Equal(t, float64(defaultWeightKg), clean.WeightKg)
	assert.Equal(t, ChronotypeDefault, clean.Chronotype)
	assert.Equal(t, 1.0, clean.Activity)
	assert.Len(t, warnings, 4)
}

func TestSanitizeProfileZeroLengthSleep(t *testing.T) {
	clean, warnings := SanitizeProfile(UserProfile{
		Name: "carol", SleepStart: "08:00", SleepEnd: "08:00", WeightKg: 70,
	})
	assert.Equal(t, defaultSleepStart, clean.SleepStart)
	assert.Equal(t, defaultSleepEnd, clean.SleepEnd)
	assert.NotEmpty(t, warnings)
}

func TestSanitizeProfileDefaultsForEmpty(t *testing.T) {
	clean, _ := SanitizeProfile(UserProfile{Name: "guest"})
	assert.Equal(t, defaultSleepStart, clean.SleepStart)
	assert.Equal(t, defaultSleepEnd, clean.SleepEnd)
	assert.Equal(t, float64(defaultWeightKg), clean.WeightKg)
	assert.Equal(t, 1.0, clean.Activity)
	assert.Equal(t, ChronotypeDefault, clean.Chronotype)
}
