package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewscodinglab/salon-booking-service/internal/domain"
	appointmentRepo "github.com/andrewscodinglab/salon-booking-service/internal/infra/storage/appointment"
	"github.com/andrewscodinglab/salon-booking-service/internal/service/appointments/models"
	"github.com/andrewscodinglab/salon-booking-service/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	byUID      map[uuid.UUID]*domain.Appointment
	cancelled  []int64
	listResult []*domain.Appointment
	gotFilter  domain.StylistAppointmentsFilter
}

func newFakeRepo(appts ...*domain.Appointment) *fakeRepo {
	r := &fakeRepo{byUID: make(map[uuid.UUID]*domain.Appointment)}
	for _, appt := range appts {
		r.byUID[appt.UID] = appt
	}
	return r
}

func (r *fakeRepo) GetByUID(_ context.Context, uid uuid.UUID) (*domain.Appointment, error) {
	appt, ok := r.byUID[uid]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return appt, nil
}

func (r *fakeRepo) GetByClientID(_ context.Context, _ int64, _ *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	return r.listResult, nil
}

func (r *fakeRepo) GetByStylistWithFilter(_ context.Context, filter domain.StylistAppointmentsFilter) ([]*domain.Appointment, error) {
	r.gotFilter = filter
	return r.listResult, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	for _, appt := range r.byUID {
		if appt.ID == id {
			appt.Status = status
		}
	}
	return nil
}

func (r *fakeRepo) Cancel(_ context.Context, id int64, reason string) error {
	r.cancelled = append(r.cancelled, id)
	for _, appt := range r.byUID {
		if appt.ID == id {
			appt.Status = domain.StatusCancelled
			appt.CancellationReason = &reason
		}
	}
	return nil
}

func scheduledAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:              7,
		UID:             uuid.New(),
		StylistID:       1,
		ClientID:        42,
		StartAt:         time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		Status:          domain.StatusScheduled,
	}
}

func TestGetByUID_AccessControl(t *testing.T) {
	appt := scheduledAppointment()
	svc := NewService(newFakeRepo(appt), noopLogger{})

	// Client and stylist both see it.
	got, err := svc.GetByUID(context.Background(), appt.UID, 42)
	require.NoError(t, err)
	assert.Equal(t, appt.UID, got.UID)

	_, err = svc.GetByUID(context.Background(), appt.UID, 1)
	require.NoError(t, err)

	// Anyone else does not.
	_, err = svc.GetByUID(context.Background(), appt.UID, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByUID_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), noopLogger{})

	_, err := svc.GetByUID(context.Background(), uuid.New(), 42)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetClientAppointments_OwnHistoryOnly(t *testing.T) {
	repo := newFakeRepo()
	repo.listResult = []*domain.Appointment{scheduledAppointment()}
	svc := NewService(repo, noopLogger{})

	got, err := svc.GetClientAppointments(context.Background(), &models.GetClientAppointmentsRequest{
		ClientID: 42,
		UserID:   42,
	})
	require.NoError(t, err)
	assert.Len(t, got.Appointments, 1)

	_, err = svc.GetClientAppointments(context.Background(), &models.GetClientAppointmentsRequest{
		ClientID: 42,
		UserID:   7,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetClientAppointments_RejectsUnknownStatus(t *testing.T) {
	svc := NewService(newFakeRepo(), noopLogger{})

	_, err := svc.GetClientAppointments(context.Background(), &models.GetClientAppointmentsRequest{
		ClientID: 42,
		UserID:   42,
		Status:   ptr.Ptr("bogus"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetStylistAppointments_DateFilter(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, noopLogger{})

	date := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	_, err := svc.GetStylistAppointments(context.Background(), &models.GetStylistAppointmentsRequest{
		StylistID: 1,
		UserID:    1,
		Date:      &date,
	})
	require.NoError(t, err)

	require.NotNil(t, repo.gotFilter.StartDate)
	require.NotNil(t, repo.gotFilter.EndDate)
	assert.Equal(t, date, *repo.gotFilter.StartDate)
	assert.Equal(t, date.AddDate(0, 0, 1), *repo.gotFilter.EndDate)
}

func TestGetStylistAppointments_OwnCalendarOnly(t *testing.T) {
	svc := NewService(newFakeRepo(), noopLogger{})

	_, err := svc.GetStylistAppointments(context.Background(), &models.GetStylistAppointmentsRequest{
		StylistID: 1,
		UserID:    2,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel(t *testing.T) {
	appt := scheduledAppointment()
	repo := newFakeRepo(appt)
	svc := NewService(repo, noopLogger{})

	got, err := svc.Cancel(context.Background(), &models.CancelAppointmentRequest{
		UID:    appt.UID,
		UserID: 42,
		Reason: "client request",
	})
	require.NoError(t, err)

	assert.Equal(t, []int64{7}, repo.cancelled)
	assert.Equal(t, string(domain.StatusCancelled), got.Status)
	require.NotNil(t, got.CancellationReason)
	assert.Equal(t, "client request", *got.CancellationReason)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	appt := scheduledAppointment()
	appt.Status = domain.StatusCancelled
	svc := NewService(newFakeRepo(appt), noopLogger{})

	_, err := svc.Cancel(context.Background(), &models.CancelAppointmentRequest{
		UID:    appt.UID,
		UserID: 42,
	})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_Completed(t *testing.T) {
	appt := scheduledAppointment()
	appt.Status = domain.StatusCompleted
	svc := NewService(newFakeRepo(appt), noopLogger{})

	_, err := svc.Cancel(context.Background(), &models.CancelAppointmentRequest{
		UID:    appt.UID,
		UserID: 42,
	})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_AccessDenied(t *testing.T) {
	appt := scheduledAppointment()
	svc := NewService(newFakeRepo(appt), noopLogger{})

	_, err := svc.Cancel(context.Background(), &models.CancelAppointmentRequest{
		UID:    appt.UID,
		UserID: 99,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_ReasonTooLong(t *testing.T) {
	appt := scheduledAppointment()
	svc := NewService(newFakeRepo(appt), noopLogger{})

	long := make([]byte, domain.MaxCancellationReasonLength+1)
	for i := range long {
		long[i] = 'x'
	}

	_, err := svc.Cancel(context.Background(), &models.CancelAppointmentRequest{
		UID:    appt.UID,
		UserID: 42,
		Reason: string(long),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
