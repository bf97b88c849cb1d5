package create_appointment

import (
	"time"

	"github.com/andrewscodinglab/salon-booking-service/internal/domain"
	createAppointment "github.com/andrewscodinglab/salon-booking-service/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	StylistID       int64   `json:"stylistId"`
	ClientID        int64   `json:"clientId"`
	StartDateTime   string  `json:"startDateTime"` // "2025-10-15T09:15"
	DurationMinutes int     `json:"durationMinutes"`
	ServiceName     *string `json:"serviceName,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	AppointmentUID  string  `json:"appointmentUid"`
	StylistID       int64   `json:"stylistId"`
	ClientID        int64   `json:"clientId"`
	StartDateTime   string  `json:"startDateTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	ServiceName     *string `json:"serviceName,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model,
// parsing the start instant
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	startAt, err := time.ParseInLocation(domain.DateTimeFormat, r.StartDateTime, time.Local)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		StylistID:       r.StylistID,
		ClientID:        r.ClientID,
		StartAt:         startAt,
		DurationMinutes: r.DurationMinutes,
		ServiceName:     r.ServiceName,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		AppointmentUID:  resp.UID.String(),
		StylistID:       resp.StylistID,
		ClientID:        resp.ClientID,
		StartDateTime:   resp.StartAt.Format(domain.DateTimeFormat),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		ServiceName:     resp.ServiceName,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
