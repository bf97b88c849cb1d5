package appointments

import (
	"context"

	"github.com/google/uuid"

	"github.com/andrewscodinglab/salon-booking-service/internal/domain"
)

// AppointmentRepository is the store surface of the read/cancel service
type AppointmentRepository interface {
	GetByUID(ctx context.Context, uid uuid.UUID) (*domain.Appointment, error)
	GetByClientID(ctx context.Context, clientID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error)
	GetByStylistWithFilter(ctx context.Context, filter domain.StylistAppointmentsFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// Logger is the logging interface used by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
