package application

type TimeOfDay string

const (
	Day   TimeOfDay = "Day"
	Night TimeOfDay = "Night"
)

type LightState string

const (
	LightOn  LightState = "ON"
	LightOff LightState = "OFF"
	LightLow LightState = "LOW"
)

// SuggestClimateTarget nudges the setpoint half a degree past the
// preference when the room has drifted more than a degree from it,
// otherwise holds the preference.
func SuggestClimateTarget(current, preferred float64) float64 {
	switch {
	case current < preferred-1.0:
		return preferred + 0.5
	case current > preferred+1.0:
		return preferred - 0.5
	default:
		return preferred
	}
}

// DecideLighting picks a light state from time of day and motion.
// Night motion gets soft light for safety; no motion means off.
func DecideLighting(tod TimeOfDay, motion bool) LightState {
	switch {
	case tod == Night && motion:
		return LightLow
	case tod == Day && motion:
		return LightOn
	default:
		return LightOff
	}
}

// TimeOfDayForHour maps a 24h clock hour to Day for [6,18) and Night
// otherwise. Callers own this policy, not DecideLighting.
func TimeOfDayForHour(hour int) TimeOfDay {
	if hour >= 6 && hour < 18 {
		return Day
	}
	return Night
}
