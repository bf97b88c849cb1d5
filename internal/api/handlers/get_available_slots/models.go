package get_available_slots

import (
	"time"

	"github.com/andrewscodinglab/salon-booking-service/internal/domain"
	getAvailableSlots "github.com/andrewscodinglab/salon-booking-service/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string          `json:"date"`
	StylistID       int64           `json:"stylistId"`
	DurationMinutes int             `json:"durationMinutes"`
	Slots           []AvailableSlot `json:"slots"`
}

// AvailableSlot is one bookable start time
type AvailableSlot struct {
	StartTime       string `json:"startTime"` // 2025-10-15T09:15
	DisplayLabel    string `json:"displayLabel"`
	DurationMinutes int    `json:"durationMinutes"`
}

// ToUseCaseRequest builds the use case request from URL and query parameters.
// The date is parsed in the server's location, the same one the booking
// endpoint uses for start instants, so the generator's day window and stored
// appointments line up.
func ToUseCaseRequest(stylistID int64, dateStr string, durationMinutes int) (*getAvailableSlots.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, time.Local)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		StylistID:       stylistID,
		Date:            date,
		DurationMinutes: durationMinutes,
	}, nil
}

// FromUseCaseResponse converts the use case response to the HTTP model
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:       slot.StartAt.Format(domain.DateTimeFormat),
			DisplayLabel:    slot.DisplayLabel,
			DurationMinutes: slot.DurationMinutes,
		}
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		StylistID:       resp.StylistID,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
