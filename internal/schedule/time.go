package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseClockTime parses a 12-hour clock time like "3:30 PM" and anchors it
// on the given day in the given location. Extra trailing fields after the
// AM/PM marker are ignored, so dropdown text like "10:00 AM (4 spots)" works.
func ParseClockTime(raw string, day time.Time, loc *time.Location) (time.Time, error) {
	fields := strings.Fields(strings.TrimSpace(raw))
	if len(fields) < 2 {
		return time.Time{}, fmt.Errorf("malformed clock time %q", raw)
	}

	hour, minute, err := splitClock(fields[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed clock time %q: %w", raw, err)
	}

	hour, err = to24Hour(hour, fields[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed clock time %q: %w", raw, err)
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc), nil
}

// splitClock splits "3:30" into its hour and minute parts.
func splitClock(raw string) (hour, minute int, err error) {
	parts := strings.SplitN(raw, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected H:MM, got %q", raw)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad hour: %w", err)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad minute: %w", err)
	}
	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("out of range: %q", raw)
	}
	return hour, minute, nil
}

// to24Hour converts a 12-hour clock hour with an AM/PM marker to a 24-hour
// clock hour. Noon stays 12 and midnight becomes 0.
func to24Hour(hour int, period string) (int, error) {
	switch strings.ToUpper(period) {
	case "AM":
		if hour == 12 {
			return 0, nil
		}
		return hour, nil
	case "PM":
		if hour == 12 {
			return 12, nil
		}
		return hour + 12, nil
	default:
		return 0, fmt.Errorf("unknown period %q", period)
	}
}
