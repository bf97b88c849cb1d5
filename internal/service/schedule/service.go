package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/andrewscodinglab/salon-booking-service/internal/domain"
	scheduleRepo "github.com/andrewscodinglab/salon-booking-service/internal/infra/storage/schedule"
	"github.com/andrewscodinglab/salon-booking-service/internal/service/schedule/models"
	"github.com/andrewscodinglab/salon-booking-service/pkg/clock12"
)

// Service manages stylist availability configuration: the recurring weekly
// pattern and the full-day exception dates the slot generator consumes.
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService creates a schedule service.
func NewService(schedules ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: schedules,
		logger:       logger,
	}
}

// GetStylistSchedule fetches a stylist's availability configuration.
func (s *Service) GetStylistSchedule(ctx context.Context, stylistID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetStylistSchedule: stylist=%d", stylistID)

	if stylistID <= 0 {
		return nil, fmt.Errorf("%w: stylist id must be positive", ErrInvalidInput)
	}

	availability, err := s.scheduleRepo.GetByStylist(ctx, stylistID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("GetStylistSchedule: no schedule for stylist=%d", stylistID)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("GetStylistSchedule: repository error for stylist=%d: %v", stylistID, err)
		return nil, fmt.Errorf("%w: GetStylistSchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAvailability(availability), nil
}

// ReplaceStylistSchedule replaces the whole availability configuration of a
// stylist. Only the stylist themselves may change it. Every time range is
// validated before anything is written: malformed ranges are rejected as a
// whole, never partially applied.
func (s *Service) ReplaceStylistSchedule(ctx context.Context, req *models.ReplaceScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("ReplaceStylistSchedule: stylist=%d, user=%d", req.StylistID, req.UserID)

	if req.StylistID <= 0 {
		return nil, fmt.Errorf("%w: stylist id must be positive", ErrInvalidInput)
	}

	if req.StylistID != req.UserID {
		s.logger.Warn("ReplaceStylistSchedule: access denied for user=%d to stylist=%d", req.UserID, req.StylistID)
		return nil, ErrAccessDenied
	}

	if err := req.Weekly.Validate(); err != nil {
		s.logger.Warn("ReplaceStylistSchedule: invalid weekly schedule for stylist=%d: %v", req.StylistID, err)
		switch {
		case errors.Is(err, clock12.ErrInvalidTimeFormat):
			return nil, fmt.Errorf("%w: %v", ErrInvalidTimeFormat, err)
		default:
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	availability := &domain.StylistAvailability{
		StylistID:  req.StylistID,
		Weekly:     req.Weekly,
		Exceptions: req.Exceptions,
	}

	if err := s.scheduleRepo.Upsert(ctx, availability); err != nil {
		s.logger.Error("ReplaceStylistSchedule: upsert failed for stylist=%d: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: ReplaceStylistSchedule - repository error: %v", ErrInternal, err)
	}

	stored, err := s.scheduleRepo.GetByStylist(ctx, req.StylistID)
	if err != nil {
		s.logger.Error("ReplaceStylistSchedule: reload failed for stylist=%d: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: ReplaceStylistSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ReplaceStylistSchedule: schedule replaced for stylist=%d", req.StylistID)
	return models.FromDomainAvailability(stored), nil
}
