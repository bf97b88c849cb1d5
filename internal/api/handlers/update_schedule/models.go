package update_schedule

import (
	"time"

	"github.com/andrewscodinglab/salon-booking-service/internal/domain"
	"github.com/andrewscodinglab/salon-booking-service/internal/service/schedule/models"
)

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	WeeklySchedule domain.WeeklySchedule `json:"weeklySchedule"`
	Exceptions     []string              `json:"exceptions"` // YYYY-MM-DD
}

// ToServiceRequest converts the HTTP request into the service model,
// parsing the exception dates
func (r *UpdateScheduleRequest) ToServiceRequest(stylistID, userID int64) (*models.ReplaceScheduleRequest, error) {
	exceptions := make([]time.Time, len(r.Exceptions))
	for i, raw := range r.Exceptions {
		date, err := time.ParseInLocation(domain.DateFormat, raw, time.Local)
		if err != nil {
			return nil, err
		}
		exceptions[i] = date
	}

	return &models.ReplaceScheduleRequest{
		StylistID:  stylistID,
		UserID:     userID,
		Weekly:     r.WeeklySchedule,
		Exceptions: exceptions,
	}, nil
}
