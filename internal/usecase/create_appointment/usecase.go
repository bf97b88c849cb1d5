package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/andrewscodinglab/salon-booking-service/internal/domain"
	"github.com/andrewscodinglab/salon-booking-service/pkg/ptr"
	"github.com/andrewscodinglab/salon-booking-service/pkg/txmanager"
)

// UseCase books appointments. The conflict check and the insert run inside
// one SERIALIZABLE transaction: of two concurrent attempts for overlapping
// intervals, the first committer wins and the loser gets ErrDoubleBooking.
type UseCase struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the use case with the production time provider.
func NewUseCase(
	appointments AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointments,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute books the appointment or fails with a typed error. No intermediate
// state is ever visible: the attempt either commits fully or writes nothing.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: stylist=%d, client=%d, start=%s, duration=%d",
		req.StylistID, req.ClientID, req.StartAt.Format(domain.DateTimeFormat), req.DurationMinutes)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if !req.StartAt.After(now) {
		uc.logger.Warn("CreateAppointment: start %s not in the future", req.StartAt.Format(domain.DateTimeFormat))
		return nil, ErrStartTimeInPast
	}

	requestedEnd := req.StartAt.Add(time.Duration(req.DurationMinutes) * time.Minute)

	var result *domain.Appointment

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Day-scoped conflict read, locked FOR UPDATE inside the transaction.
		// A concurrent attempt for the same stylist and day either sees this
		// transaction's row after commit or aborts with a serialization
		// failure and is retried by the manager.
		dayStart, dayEnd := dayBounds(req.StartAt)
		filter := domain.StylistAppointmentsFilter{
			StylistID:     req.StylistID,
			StartDate:     &dayStart,
			EndDate:       &dayEnd,
			Status:        ptr.Ptr(domain.StatusScheduled),
			LockForUpdate: true,
		}

		existing, err := uc.appointmentRepo.GetByStylistWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: conflict read failed: %v", err)
			return fmt.Errorf("%w: conflict read failed: %v", ErrInternal, err)
		}

		if conflict := findConflict(existing, req.StartAt, requestedEnd); conflict != nil {
			uc.logger.Warn("CreateAppointment: double booking, stylist=%d conflicts with appointment uid=%s",
				req.StylistID, conflict.UID)
			return ErrDoubleBooking
		}

		appt := &domain.Appointment{
			StylistID:       req.StylistID,
			ClientID:        req.ClientID,
			StartAt:         req.StartAt,
			DurationMinutes: req.DurationMinutes,
			Status:          domain.StatusScheduled,
			ServiceName:     req.ServiceName,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: insert failed: %v", err)
			return fmt.Errorf("%w: insert failed: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, txmanager.ErrRetriesExhausted),
			errors.Is(err, txmanager.ErrTimeout),
			errors.Is(err, txmanager.ErrBeginTx),
			errors.Is(err, txmanager.ErrCommitTx):
			// Infrastructure failure: retryable by the caller, never reported
			// as a booking conflict.
			uc.logger.Error("CreateAppointment: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		default:
			return nil, err
		}
	}

	uc.logger.Info("CreateAppointment: created appointment uid=%s for stylist=%d", result.UID, req.StylistID)

	return &Response{
		UID:             result.UID,
		StylistID:       result.StylistID,
		ClientID:        result.ClientID,
		StartAt:         result.StartAt,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ServiceName:     result.ServiceName,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
	}, nil
}
