package get_available_slots

import (
	"fmt"
	"sort"
	"time"

	"github.com/andrewscodinglab/salon-booking-service/internal/domain"
	"github.com/andrewscodinglab/salon-booking-service/pkg/clock12"
)

// generateSlots produces the ordered candidate start times for one date.
//
// Candidates step every domain.SlotStepMinutes from each range's start up to
// range end minus the service duration, inclusive. A candidate survives when
// it starts strictly after now and its half-open interval [start, start+d)
// overlaps no scheduled appointment. Back-to-back bookings sharing a boundary
// instant do not conflict.
func generateSlots(
	availability *domain.StylistAvailability,
	date time.Time,
	durationMinutes int,
	existing []*domain.Appointment,
	now time.Time,
) ([]domain.AvailableSlot, error) {
	day := availability.Weekly.Day(date.Weekday())

	// Disabled weekday, empty ranges or a full-day exception are legitimate
	// empty days, not errors.
	if !day.Bookable() || availability.HasException(date) {
		return []domain.AvailableSlot{}, nil
	}

	type window struct{ start, end int }
	windows := make([]window, 0, len(day.Ranges))
	for _, r := range day.Ranges {
		start, end, err := r.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTimeFormat, err)
		}
		windows = append(windows, window{start, end})
	}

	// Stored order is not trusted; sort by start minute.
	sort.Slice(windows, func(i, j int) bool { return windows[i].start < windows[j].start })

	slots := make([]domain.AvailableSlot, 0)
	seen := make(map[int]struct{})

	for _, w := range windows {
		for minute := w.start; minute+durationMinutes <= w.end; minute += domain.SlotStepMinutes {
			if _, ok := seen[minute]; ok {
				continue
			}
			seen[minute] = struct{}{}

			candidateStart := clock12.OnDate(date, minute)
			if !candidateStart.After(now) {
				continue
			}

			candidateEnd := candidateStart.Add(time.Duration(durationMinutes) * time.Minute)
			if overlapsAny(candidateStart, candidateEnd, existing) {
				continue
			}

			slots = append(slots, domain.AvailableSlot{
				StartAt:         candidateStart,
				DurationMinutes: durationMinutes,
				DisplayLabel:    fmt.Sprintf("%s (%d min)", clock12.Format(minute), durationMinutes),
			})
		}
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].StartAt.Before(slots[j].StartAt) })

	return slots, nil
}

// overlapsAny reports whether [start, end) overlaps any scheduled appointment.
func overlapsAny(start, end time.Time, existing []*domain.Appointment) bool {
	for _, appt := range existing {
		if !appt.BlocksSlot() {
			continue
		}
		if appt.Overlaps(start, end) {
			return true
		}
	}
	return false
}

// dayBounds returns the half-open [midnight, next midnight) interval of the
// given date in its own location.
func dayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.AddDate(0, 0, 1)
}
