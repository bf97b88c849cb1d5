package update_schedule

import (
	"context"

	"github.com/andrewscodinglab/salon-booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	ReplaceStylistSchedule(ctx context.Context, req *models.ReplaceScheduleRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
