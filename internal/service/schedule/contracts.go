package schedule

import (
	"context"

	"github.com/andrewscodinglab/salon-booking-service/internal/domain"
)

// ScheduleRepository is the store surface of the schedule service
type ScheduleRepository interface {
	GetByStylist(ctx context.Context, stylistID int64) (*domain.StylistAvailability, error)
	Upsert(ctx context.Context, availability *domain.StylistAvailability) error
}

// Logger is the logging interface used by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
