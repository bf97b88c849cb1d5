package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/andrewscodinglab/salon-booking-service/internal/domain"
	appointmentRepo "github.com/andrewscodinglab/salon-booking-service/internal/infra/storage/appointment"
	"github.com/andrewscodinglab/salon-booking-service/internal/service/appointments/models"
)

// Service handles the read and lifecycle operations on existing appointments.
// Creation goes exclusively through the create_appointment use case; this
// service never writes scheduled rows.
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService creates an appointments service.
func NewService(appointments AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointments,
		logger:          logger,
	}
}

// GetByUID fetches one appointment. Only the booking client or the stylist
// may see it.
func (s *Service) GetByUID(ctx context.Context, uid uuid.UUID, userID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByUID: fetching appointment uid=%s for user=%d", uid, userID)

	appt, err := s.appointmentRepo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByUID: appointment uid=%s not found", uid)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByUID: repository error for uid=%s: %v", uid, err)
		return nil, fmt.Errorf("%w: GetByUID - repository error: %v", ErrInternal, err)
	}

	if appt.ClientID != userID && appt.StylistID != userID {
		s.logger.Warn("GetByUID: access denied for user=%d to appointment uid=%s", userID, uid)
		return nil, ErrAccessDenied
	}

	return models.FromDomainAppointment(appt), nil
}

// GetClientAppointments fetches a client's appointment history, newest first.
func (s *Service) GetClientAppointments(ctx context.Context, req *models.GetClientAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetClientAppointments: client=%d, user=%d", req.ClientID, req.UserID)

	if req.ClientID != req.UserID {
		s.logger.Warn("GetClientAppointments: access denied for user=%d to client=%d", req.UserID, req.ClientID)
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.AppointmentStatus
	if req.Status != nil {
		status, err := models.ToDomainAppointmentStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetClientAppointments: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	appts, err := s.appointmentRepo.GetByClientID(ctx, req.ClientID, domainStatus)
	if err != nil {
		s.logger.Error("GetClientAppointments: repository error for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientAppointments: fetched %d appointments for client=%d", len(appts), req.ClientID)
	return models.FromDomainAppointmentList(appts), nil
}

// GetStylistAppointments fetches a stylist's calendar, optionally restricted
// to one date. Only the stylist themselves may list it.
func (s *Service) GetStylistAppointments(ctx context.Context, req *models.GetStylistAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetStylistAppointments: stylist=%d, user=%d", req.StylistID, req.UserID)

	if req.StylistID != req.UserID {
		s.logger.Warn("GetStylistAppointments: access denied for user=%d to stylist=%d", req.UserID, req.StylistID)
		return nil, ErrAccessDenied
	}

	filter := domain.StylistAppointmentsFilter{
		StylistID:    req.StylistID,
		IncludeInert: req.IncludeInert,
	}

	if req.Date != nil {
		dayStart := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, req.Date.Location())
		dayEnd := dayStart.AddDate(0, 0, 1)
		filter.StartDate = &dayStart
		filter.EndDate = &dayEnd
	}

	if req.Status != nil {
		status, err := models.ToDomainAppointmentStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetStylistAppointments: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	appts, err := s.appointmentRepo.GetByStylistWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetStylistAppointments: repository error for stylist=%d: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: GetStylistAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetStylistAppointments: fetched %d appointments for stylist=%d", len(appts), req.StylistID)
	return models.FromDomainAppointmentList(appts), nil
}

// Cancel cancels an appointment with a reason. Allowed for the booking client
// and the stylist while the appointment is still cancellable.
func (s *Service) Cancel(ctx context.Context, req *models.CancelAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: appointment uid=%s, user=%d", req.UID, req.UserID)

	if len(req.Reason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason exceeds %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	appt, err := s.appointmentRepo.GetByUID(ctx, req.UID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment uid=%s not found", req.UID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for uid=%s: %v", req.UID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if appt.ClientID != req.UserID && appt.StylistID != req.UserID {
		s.logger.Warn("Cancel: access denied for user=%d to appointment uid=%s", req.UserID, req.UID)
		return nil, ErrAccessDenied
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment uid=%s in status=%s cannot be cancelled", req.UID, appt.Status)
		return nil, ErrCannotCancel
	}

	if err := s.appointmentRepo.Cancel(ctx, appt.ID, req.Reason); err != nil {
		s.logger.Error("Cancel: failed to cancel appointment uid=%s: %v", req.UID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	updated, err := s.appointmentRepo.GetByUID(ctx, req.UID)
	if err != nil {
		s.logger.Error("Cancel: failed to reload appointment uid=%s: %v", req.UID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: appointment uid=%s cancelled by user=%d", req.UID, req.UserID)
	return models.FromDomainAppointment(updated), nil
}
