package create_appointment

import (
	"fmt"
	"time"

	"github.com/andrewscodinglab/salon-booking-service/internal/domain"
)

// validateRequest validates the request data
func validateRequest(req *Request) error {
	if req.StylistID <= 0 {
		return fmt.Errorf("%w: stylistID must be positive", ErrInvalidInput)
	}

	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.StartAt.IsZero() {
		return fmt.Errorf("%w: startDateTime is required", ErrInvalidInput)
	}

	if req.DurationMinutes < domain.MinDurationMinutes || req.DurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}

	if req.ServiceName != nil && len(*req.ServiceName) > domain.MaxServiceNameLength {
		return fmt.Errorf("%w: serviceName exceeds %d characters", ErrInvalidInput, domain.MaxServiceNameLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// findConflict returns the first scheduled appointment whose half-open
// interval overlaps [start, end), or nil. Same rule as the slot generator:
// back-to-back appointments sharing a boundary instant do not conflict.
func findConflict(existing []*domain.Appointment, start, end time.Time) *domain.Appointment {
	for _, appt := range existing {
		if !appt.BlocksSlot() {
			continue
		}
		if appt.Overlaps(start, end) {
			return appt
		}
	}
	return nil
}

// dayBounds returns the half-open [midnight, next midnight) interval of the
// calendar day containing t, in t's location.
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
