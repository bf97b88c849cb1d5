package domain

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/andrewscodinglab/salon-booking-service/pkg/clock12"
)

var (
	// ErrRangeInverted is returned when a range's end does not come after its
	// start. Ranges must not cross midnight.
	ErrRangeInverted = errors.New("domain: time range end must be after start")

	// ErrRangesOverlap is returned when two ranges within one day overlap.
	ErrRangesOverlap = errors.New("domain: time ranges within a day overlap")
)

// TimeRange is one bookable window within a day, stored in the 12-hour clock
// representation stylists configure.
type TimeRange struct {
	ID          string         `json:"id"`
	StartHour   int            `json:"startHour"`
	StartMinute int            `json:"startMinute"`
	StartPeriod clock12.Period `json:"startPeriod"`
	EndHour     int            `json:"endHour"`
	EndMinute   int            `json:"endMinute"`
	EndPeriod   clock12.Period `json:"endPeriod"`
}

// Minutes converts the range bounds to minutes since midnight. Malformed
// bounds surface clock12.ErrInvalidTimeFormat; an inverted range surfaces
// ErrRangeInverted.
func (r TimeRange) Minutes() (start, end int, err error) {
	start, err = clock12.ToMinutes(r.StartHour, r.StartMinute, r.StartPeriod)
	if err != nil {
		return 0, 0, fmt.Errorf("range %s start: %w", r.ID, err)
	}
	end, err = clock12.ToMinutes(r.EndHour, r.EndMinute, r.EndPeriod)
	if err != nil {
		return 0, 0, fmt.Errorf("range %s end: %w", r.ID, err)
	}
	if start >= end {
		return 0, 0, fmt.Errorf("%w: range %s", ErrRangeInverted, r.ID)
	}
	return start, end, nil
}

// DaySchedule is the recurring availability of a single weekday.
// Enabled=false or an empty Ranges list makes the weekday unbookable.
type DaySchedule struct {
	Enabled bool        `json:"enabled"`
	Ranges  []TimeRange `json:"ranges"`
}

// Bookable returns true if the day can produce slots at all.
func (d DaySchedule) Bookable() bool {
	return d.Enabled && len(d.Ranges) > 0
}

// Validate checks every range of the day and that no two ranges overlap.
func (d DaySchedule) Validate() error {
	type bounds struct{ start, end int }
	all := make([]bounds, 0, len(d.Ranges))

	for _, r := range d.Ranges {
		start, end, err := r.Minutes()
		if err != nil {
			return err
		}
		all = append(all, bounds{start, end})
	}

	sort.Slice(all, func(i, j int) bool { return all[i].start < all[j].start })
	for i := 1; i < len(all); i++ {
		if all[i].start < all[i-1].end {
			return ErrRangesOverlap
		}
	}

	return nil
}

// WeeklySchedule is the recurring weekly availability, one entry per weekday.
type WeeklySchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// Day returns the schedule of the given weekday.
func (w WeeklySchedule) Day(weekday time.Weekday) DaySchedule {
	switch weekday {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return DaySchedule{}
	}
}

// Validate checks all seven days.
func (w WeeklySchedule) Validate() error {
	days := []struct {
		name string
		day  DaySchedule
	}{
		{"monday", w.Monday},
		{"tuesday", w.Tuesday},
		{"wednesday", w.Wednesday},
		{"thursday", w.Thursday},
		{"friday", w.Friday},
		{"saturday", w.Saturday},
		{"sunday", w.Sunday},
	}

	for _, d := range days {
		if err := d.day.Validate(); err != nil {
			return fmt.Errorf("%s: %w", d.name, err)
		}
	}
	return nil
}

// StylistAvailability is the stylist's full availability configuration:
// the recurring weekly pattern plus full-day exception dates. Exceptions
// override the weekly pattern entirely for their date.
type StylistAvailability struct {
	StylistID int64
	Weekly    WeeklySchedule
	// Exceptions are calendar dates (midnight, any location) on which the
	// stylist is unavailable regardless of the weekly schedule.
	Exceptions []time.Time
	UpdatedAt  time.Time
}

// HasException reports whether date falls on an exception day. Only the
// calendar date is compared, not the time of day or location.
func (s *StylistAvailability) HasException(date time.Time) bool {
	y, m, d := date.Date()
	for _, ex := range s.Exceptions {
		ey, em, ed := ex.Date()
		if y == ey && m == em && d == ed {
			return true
		}
	}
	return false
}
