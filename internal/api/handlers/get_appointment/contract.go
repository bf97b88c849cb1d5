package get_appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/andrewscodinglab/salon-booking-service/internal/service/appointments/models"
)

type AppointmentService interface {
	GetByUID(ctx context.Context, uid uuid.UUID, userID int64) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
