package utils

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar-date layout used across the API ("YYYY-MM-DD").
const DateLayout = "2006-01-02"

// WeekdayIndex returns the weekday of t with Monday=0 .. Sunday=6.
// time.Weekday counts from Sunday, so the index is rotated.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// minutesOfDay parses an "HH:MM" clock string into minutes since midnight.
func minutesOfDay(clock string) (int, bool) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return h*60 + m, true
}

// HoursBetween returns the duration in hours between two "HH:MM" clock times.
// An end time numerically before the start time is treated as occurring the
// next day (overnight shift), so HoursBetween("20:00", "02:00") = 6.
// Malformed input yields 0.0 rather than an error: historical rows with bad
// time strings must never abort a report or an assignment pass.
func HoursBetween(start, end string) float64 {
	startMin, ok := minutesOfDay(start)
	if !ok {
		LogDebug("HoursBetween: malformed start time, counting 0 hours", map[string]interface{}{"start": start})
		return 0
	}
	endMin, ok := minutesOfDay(end)
	if !ok {
		LogDebug("HoursBetween: malformed end time, counting 0 hours", map[string]interface{}{"end": end})
		return 0
	}
	if endMin < startMin {
		endMin += 24 * 60
	}
	return float64(endMin-startMin) / 60.0
}
