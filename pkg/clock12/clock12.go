// Package clock12 converts between the 12-hour clock representation used by
// stylist schedules (hour 1-12, minute, AM/PM) and minutes since midnight.
// Both the slot generator and the booking conflict check build on this package
// so that they agree on the same minute-granularity clock.
package clock12

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Period is the AM/PM half of a 12-hour clock time.
type Period string

const (
	AM Period = "AM"
	PM Period = "PM"
)

// MinutesPerDay is the number of minutes in a calendar day.
const MinutesPerDay = 24 * 60

// ErrInvalidTimeFormat is returned for out-of-range hours/minutes or an
// unknown period. Malformed stored ranges must surface this error instead of
// being silently miscomputed.
var ErrInvalidTimeFormat = errors.New("clock12: invalid time format")

// ParsePeriod parses "AM"/"PM" case-insensitively.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "AM":
		return AM, nil
	case "PM":
		return PM, nil
	default:
		return "", fmt.Errorf("%w: unknown period %q", ErrInvalidTimeFormat, s)
	}
}

// ToMinutes converts a 12-hour clock time to minutes since midnight [0, 1439].
// 12 AM maps to hour 0, 12 PM stays 12, other PM hours add 12.
func ToMinutes(hour, minute int, period Period) (int, error) {
	if hour < 1 || hour > 12 {
		return 0, fmt.Errorf("%w: hour %d out of range 1-12", ErrInvalidTimeFormat, hour)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: minute %d out of range 0-59", ErrInvalidTimeFormat, minute)
	}

	hour24 := hour
	switch period {
	case AM:
		if hour == 12 {
			hour24 = 0
		}
	case PM:
		if hour != 12 {
			hour24 = hour + 12
		}
	default:
		return 0, fmt.Errorf("%w: unknown period %q", ErrInvalidTimeFormat, period)
	}

	return hour24*60 + minute, nil
}

// FromMinutes converts minutes since midnight back to the 12-hour clock.
func FromMinutes(minutes int) (hour, minute int, period Period, err error) {
	if minutes < 0 || minutes >= MinutesPerDay {
		return 0, 0, "", fmt.Errorf("%w: %d minutes out of range 0-1439", ErrInvalidTimeFormat, minutes)
	}

	hour24 := minutes / 60
	minute = minutes % 60

	period = AM
	hour = hour24
	switch {
	case hour24 == 0:
		hour = 12
	case hour24 == 12:
		period = PM
	case hour24 > 12:
		hour = hour24 - 12
		period = PM
	}

	return hour, minute, period, nil
}

// Format renders minutes since midnight as a human display string, e.g. "9:15 AM".
// Out-of-range values render as an empty string; callers validate beforehand.
func Format(minutes int) string {
	hour, minute, period, err := FromMinutes(minutes)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, period)
}

// OnDate places minutes since midnight onto the given calendar date, keeping
// the date's location.
func OnDate(date time.Time, minutes int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, date.Location())
}

// MinutesOfDay returns the minutes since midnight of the given instant in its
// own location.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
