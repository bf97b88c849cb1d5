package get_stylist_appointments

import (
	"context"

	"github.com/andrewscodinglab/salon-booking-service/internal/service/appointments/models"
)

type AppointmentService interface {
	GetStylistAppointments(ctx context.Context, req *models.GetStylistAppointmentsRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
