package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/andrewscodinglab/salon-booking-service/internal/domain"
	scheduleRepo "github.com/andrewscodinglab/salon-booking-service/internal/infra/storage/schedule"
	"github.com/andrewscodinglab/salon-booking-service/pkg/ptr"
)

// UseCase generates the bookable time slots of a stylist for one date.
type UseCase struct {
	scheduleRepo    ScheduleRepository
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the use case with the production time provider.
func NewUseCase(
	schedules ScheduleRepository,
	appointments AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo:    schedules,
		appointmentRepo: appointments,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute runs the slot generation. Read-only: calling it twice with the same
// inputs and no intervening writes yields identical output.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: stylist=%d, date=%s, duration=%d",
		req.StylistID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	availability, err := uc.scheduleRepo.GetByStylist(ctx, req.StylistID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Warn("GetAvailableSlots: no schedule for stylist=%d", req.StylistID)
			return nil, ErrScheduleUnavailable
		}
		uc.logger.Error("GetAvailableSlots: failed to load schedule for stylist=%d: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}

	dayStart, dayEnd := dayBounds(req.Date)
	filter := domain.StylistAppointmentsFilter{
		StylistID: req.StylistID,
		StartDate: &dayStart,
		EndDate:   &dayEnd,
		Status:    ptr.Ptr(domain.StatusScheduled),
	}

	existing, err := uc.appointmentRepo.GetByStylistWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load appointments for stylist=%d: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: failed to load appointments: %v", ErrInternal, err)
	}

	slots, err := generateSlots(availability, req.Date, req.DurationMinutes, existing, now)
	if err != nil {
		// Malformed stored ranges propagate; an empty list would hide the
		// broken configuration from the stylist.
		uc.logger.Error("GetAvailableSlots: slot generation failed for stylist=%d: %v", req.StylistID, err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for stylist=%d, date=%s",
		len(slots), req.StylistID, req.Date.Format(domain.DateFormat))

	return &Response{
		StylistID:       req.StylistID,
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		Slots:           slots,
	}, nil
}
