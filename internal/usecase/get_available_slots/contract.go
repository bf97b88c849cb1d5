package get_available_slots

import (
	"context"
	"time"

	"github.com/andrewscodinglab/salon-booking-service/internal/domain"
)

// ScheduleRepository provides the stylist's availability configuration
type ScheduleRepository interface {
	GetByStylist(ctx context.Context, stylistID int64) (*domain.StylistAvailability, error)
}

// AppointmentRepository provides the stylist's existing appointments
type AppointmentRepository interface {
	GetByStylistWithFilter(ctx context.Context, filter domain.StylistAppointmentsFilter) ([]*domain.Appointment, error)
}

// TimeProvider supplies the current time (injected for deterministic tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface used by the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider
type RealTimeProvider struct{}

// Now returns the current wall-clock time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
