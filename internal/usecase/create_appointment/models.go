package create_appointment

import (
	"time"

	"github.com/google/uuid"
)

// Request asks to book one appointment.
type Request struct {
	StylistID       int64
	ClientID        int64
	StartAt         time.Time // absolute start instant picked from a generated slot
	DurationMinutes int
	ServiceName     *string // denormalized metadata, optional
	Notes           *string // optional
}

// Response describes the created appointment.
type Response struct {
	UID             uuid.UUID // public appointment identifier
	StylistID       int64
	ClientID        int64
	StartAt         time.Time
	DurationMinutes int
	Status          string
	ServiceName     *string
	Notes           *string
	CreatedAt       time.Time
}
