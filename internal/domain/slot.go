package domain

import "time"

// AvailableSlot represents one bookable start time offered to a client.
type AvailableSlot struct {
	StartAt         time.Time // machine start instant on the requested date
	DurationMinutes int
	DisplayLabel    string // human form, e.g. "9:15 AM (60 min)"
}
