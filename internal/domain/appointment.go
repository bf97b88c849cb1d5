package domain

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled      AppointmentStatus = "scheduled"
	StatusCompleted      AppointmentStatus = "completed"
	StatusCancelled      AppointmentStatus = "cancelled"
	StatusPendingPayment AppointmentStatus = "pending_payment"
)

// Appointment represents a client appointment with a stylist.
// Appointments are create-only from the booking engine's perspective: the
// engine writes them in scheduled state and later transitions happen through
// the appointments service.
type Appointment struct {
	ID              int64
	UID             uuid.UUID // public identifier used in URLs and responses
	StylistID       int64
	ClientID        int64
	StartAt         time.Time // absolute start instant
	DurationMinutes int
	Status          AppointmentStatus

	// Denormalized data for history
	ServiceName *string
	Notes       *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndAt returns the appointment end instant (start + duration).
func (a *Appointment) EndAt() time.Time {
	return a.StartAt.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// BlocksSlot returns true if the appointment participates in conflict
// detection. Only scheduled appointments block overlapping bookings;
// cancelled, completed and pending-payment appointments are inert.
func (a *Appointment) BlocksSlot() bool {
	return a.Status == StatusScheduled
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled || a.Status == StatusPendingPayment
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// Overlaps reports whether the half-open interval [StartAt, EndAt) of the
// appointment overlaps [start, end). Back-to-back appointments sharing a
// boundary instant do not overlap.
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return a.StartAt.Before(end) && start.Before(a.EndAt())
}

// StylistAppointmentsFilter filters stylist appointment queries.
type StylistAppointmentsFilter struct {
	StylistID     int64              // required
	StartDate     *time.Time         // period start (inclusive), nil = unbounded
	EndDate       *time.Time         // period end (exclusive), nil = unbounded
	Status        *AppointmentStatus // optional status filter
	IncludeInert  bool               // include cancelled/completed/pending-payment rows
	LockForUpdate bool               // acquire FOR UPDATE inside a transaction
}
