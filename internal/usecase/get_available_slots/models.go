package get_available_slots

import (
	"time"

	"github.com/andrewscodinglab/salon-booking-service/internal/domain"
)

// Request asks for the bookable start times of one stylist on one date.
type Request struct {
	StylistID       int64     // stylist whose calendar is queried
	Date            time.Time // calendar date (time-of-day ignored)
	DurationMinutes int       // service duration, supplied by the caller
}

// Response lists the surviving candidate start times, ascending.
type Response struct {
	StylistID       int64
	Date            time.Time
	DurationMinutes int
	Slots           []domain.AvailableSlot
}
