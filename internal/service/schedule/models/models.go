package models

import (
	"time"

	"github.com/andrewscodinglab/salon-booking-service/internal/domain"
)

// ReplaceScheduleRequest replaces a stylist's weekly pattern and exception days
type ReplaceScheduleRequest struct {
	StylistID  int64
	UserID     int64 // authenticated caller
	Weekly     domain.WeeklySchedule
	Exceptions []time.Time
}

// ScheduleResponse is the service view of a stylist's availability
type ScheduleResponse struct {
	StylistID  int64                 `json:"stylistId"`
	Weekly     domain.WeeklySchedule `json:"weeklySchedule"`
	Exceptions []string              `json:"exceptions"` // YYYY-MM-DD
	UpdatedAt  time.Time             `json:"updatedAt"`
}

// FromDomainAvailability converts domain availability into the service view
func FromDomainAvailability(av *domain.StylistAvailability) *ScheduleResponse {
	exceptions := make([]string, len(av.Exceptions))
	for i, d := range av.Exceptions {
		exceptions[i] = d.Format(domain.DateFormat)
	}
	return &ScheduleResponse{
		StylistID:  av.StylistID,
		Weekly:     av.Weekly,
		Exceptions: exceptions,
		UpdatedAt:  av.UpdatedAt,
	}
}
