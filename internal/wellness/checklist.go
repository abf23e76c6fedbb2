package wellness

import (
	"fmt"
	"strings"
	"time"
)

// ChecklistInput collects everything the move checklist is personalized with.
type ChecklistInput struct {
	FromCity string
	ToCity   string
	Profile  UserProfile
	// Records is the destination's normalized forecast, used for packing advice.
	Records []HourlyRecord
	// PeakIntakeML is the destination's highest recommended hourly intake.
	PeakIntakeML float64
}

// BuildChecklist renders a personalized relocation checklist as plain text.
// Packing advice follows the destination's dominant forecast condition and
// temperature span; the wellness section reuses the profile's sleep window.
func BuildChecklist(in ChecklistInput, now time.Time) string {
	var b strings.Builder

	b.WriteString("===============================================\n")
	b.WriteString("    MoveGuider - Your Personalized Move Plan\n")
	b.WriteString("===============================================\n\n")
	fmt.Fprintf(&b, "Moving from: %s\n", in.FromCity)
	fmt.Fprintf(&b, "Moving to: %s\n", in.ToCity)
	fmt.Fprintf(&b, "Generated on: %s\n", now.Format("2006-01-02"))

	section(&b, "1. Logistics & Administration", []string{
		"Research: cost of living, housing and neighborhoods.",
		"Legal: check visa/work permit requirements if applicable.",
		"Address change: update mail service, banks, subscriptions.",
		"Utilities: arrange disconnection and setup (internet, electricity, water, gas).",
		"Employer: notify your team of the move and any working-hours changes.",
	})

	section(&b, "2. Packing & Environmental Prep", packingItems(in.ToCity, in.Records))

	wellness := []string{
		"Update calendars: shift digital events and reminders to the new timezone.",
		"Healthcare: shortlist new doctors and dentists before the move.",
	}
	if in.Profile.SleepStart != "" && in.Profile.SleepEnd != "" {
		wellness = append([]string{fmt.Sprintf(
			"Adjust body clock: your plan assumes sleeping at %s and waking at %s local time.",
			in.Profile.SleepStart, in.Profile.SleepEnd)}, wellness...)
	}
	if in.PeakIntakeML > 0 {
		wellness = append(wellness, fmt.Sprintf(
			"Hydration: plan for up to %.0f ml of water per hour during the hottest part of the day.",
			in.PeakIntakeML))
	}
	section(&b, "3. Routine & Wellness Transition", wellness)

	section(&b, "4. Remote Work Setup", []string{
		"Day 1 connectivity: have a mobile hotspot as a backup.",
		"Test your setup: VPN, video calls, software access.",
		"Find your spots: coffee shops or coworking spaces with good Wi-Fi.",
	})

	return b.String()
}

func packingItems(city string, records []HourlyRecord) []string {
	items := []string{
		fmt.Sprintf("Check the 7-day forecast for %s before you travel.", city),
	}
	if len(records) == 0 {
		items = append(items, "Pack for the immediate weather conditions.")
		return items
	}

	counts := make(map[Condition]int)
	minTemp, maxTemp := records[0].Temperature, records[0].Temperature
	maxUV := 0.0
	for _, rec := range records {
		counts[rec.Condition]++
		if rec.Temperature < minTemp {
			minTemp = rec.Temperature
		}
		if rec.Temperature > maxTemp {
			maxTemp = rec.Temperature
		}
		if rec.UVIndex > maxUV {
			maxUV = rec.UVIndex
		}
	}

	dominant := ConditionUnknown
	best := 0
	for cond, n := range counts {
		if n > best {
			best = n
			dominant = cond
		}
	}

	fmtRange := fmt.Sprintf("Expect %.0f-%.0f°C", minTemp, maxTemp)
	switch dominant {
	case ConditionRain, ConditionStorm:
		items = append(items, fmtRange+" with frequent rain: pack waterproofs and footwear to match.")
	case ConditionSnow:
		items = append(items, fmtRange+" with snow: pack insulated layers and winter boots.")
	case ConditionClear:
		items = append(items, fmtRange+" and mostly clear skies.")
	default:
		items = append(items, fmtRange+".")
	}
	if maxUV >= 6 {
		items = append(items, "High UV forecast: pack sunblock and sunglasses.")
	}
	return items
}

func section(b *strings.Builder, title string, items []string) {
	fmt.Fprintf(b, "\n--- %s ---\n\n", strings.ToUpper(title))
	for _, item := range items {
		fmt.Fprintf(b, "[ ] %s\n", item)
	}
}
