package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/andrewscodinglab/salon-booking-service/internal/domain"
)

var (
	// ErrInvalidStatus is returned for an unknown status string
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// GetClientAppointmentsRequest asks for a client's appointment history
type GetClientAppointmentsRequest struct {
	ClientID int64
	UserID   int64 // authenticated caller
	Status   *string
}

// GetStylistAppointmentsRequest asks for a stylist's calendar
type GetStylistAppointmentsRequest struct {
	StylistID    int64
	UserID       int64 // authenticated caller
	Date         *time.Time
	Status       *string
	IncludeInert bool
}

// CancelAppointmentRequest cancels one appointment
type CancelAppointmentRequest struct {
	UID    uuid.UUID
	UserID int64
	Reason string
}

// AppointmentResponse is the service view of one appointment
type AppointmentResponse struct {
	UID                uuid.UUID  `json:"appointmentUid"`
	StylistID          int64      `json:"stylistId"`
	ClientID           int64      `json:"clientId"`
	StartAt            time.Time  `json:"startAt"`
	DurationMinutes    int        `json:"durationMinutes"`
	Status             string     `json:"status"`
	ServiceName        *string    `json:"serviceName,omitempty"`
	Notes              *string    `json:"notes,omitempty"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// AppointmentListResponse is a list of appointments
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
}

// FromDomainAppointment converts a domain appointment into the service view
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		UID:                appt.UID,
		StylistID:          appt.StylistID,
		ClientID:           appt.ClientID,
		StartAt:            appt.StartAt,
		DurationMinutes:    appt.DurationMinutes,
		Status:             string(appt.Status),
		ServiceName:        appt.ServiceName,
		Notes:              appt.Notes,
		CancellationReason: appt.CancellationReason,
		CancelledAt:        appt.CancelledAt,
		CreatedAt:          appt.CreatedAt,
		UpdatedAt:          appt.UpdatedAt,
	}
}

// FromDomainAppointmentList converts a list of domain appointments
func FromDomainAppointmentList(appts []*domain.Appointment) *AppointmentListResponse {
	list := make([]*AppointmentResponse, len(appts))
	for i, appt := range appts {
		list[i] = FromDomainAppointment(appt)
	}
	return &AppointmentListResponse{Appointments: list}
}

// ToDomainAppointmentStatus parses a status string
func ToDomainAppointmentStatus(s string) (domain.AppointmentStatus, error) {
	switch domain.AppointmentStatus(s) {
	case domain.StatusScheduled, domain.StatusCompleted, domain.StatusCancelled, domain.StatusPendingPayment:
		return domain.AppointmentStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}
