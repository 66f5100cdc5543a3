package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Times of day are stored as minutes from midnight (e.g. 540 for 9:00 AM).
const MinutesPerDay = 24 * 60

// ParseClock converts an "HH:MM" string to minutes from midnight.
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("time %q out of range", s)
	}
	return h*60 + m, nil
}

// FormatClock converts minutes from midnight to "HH:MM".
func FormatClock(mins int) string {
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

// ClockLabel renders minutes from midnight as a 12-hour label, e.g. "9:00 AM".
func ClockLabel(mins int) string {
	h := mins / 60
	m := mins % 60
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	display := h % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, m, suffix)
}

// IntervalLabel renders a start/end pair, e.g. "9:00 AM - 10:00 AM".
func IntervalLabel(start, end int) string {
	return ClockLabel(start) + " - " + ClockLabel(end)
}
