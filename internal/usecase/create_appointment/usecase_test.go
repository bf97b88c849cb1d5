package create_appointment

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewscodinglab/salon-booking-service/internal/domain"
	"github.com/andrewscodinglab/salon-booking-service/pkg/txmanager"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

// memoryRepo is an in-memory appointment store. The mutex in serialTxManager
// makes read-check-insert sequences atomic, mirroring what SERIALIZABLE
// transactions give the real repository.
type memoryRepo struct {
	mu           sync.Mutex
	appointments []*domain.Appointment
	nextID       int64
}

func (r *memoryRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	created := *appt
	created.ID = r.nextID
	if created.UID == uuid.Nil {
		created.UID = uuid.New()
	}
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.appointments = append(r.appointments, &created)
	return &created, nil
}

func (r *memoryRepo) GetByStylistWithFilter(_ context.Context, filter domain.StylistAppointmentsFilter) ([]*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*domain.Appointment
	for _, appt := range r.appointments {
		if appt.StylistID != filter.StylistID {
			continue
		}
		if filter.StartDate != nil && appt.StartAt.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && !appt.StartAt.Before(*filter.EndDate) {
			continue
		}
		if filter.Status != nil && appt.Status != *filter.Status {
			continue
		}
		out = append(out, appt)
	}
	return out, nil
}

func (r *memoryRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.appointments)
}

// serialTxManager serializes transaction bodies with a mutex, standing in for
// the database's SERIALIZABLE isolation.
type serialTxManager struct {
	mu  sync.Mutex
	err error
}

func (m *serialTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

var (
	testNow   = time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	testStart = time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
)

func newTestUseCase(repo *memoryRepo, tx TransactionManager) *UseCase {
	uc := NewUseCase(repo, tx, noopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		StylistID:       1,
		ClientID:        42,
		StartAt:         testStart,
		DurationMinutes: 60,
	}
}

func TestExecute_CreatesAppointment(t *testing.T) {
	repo := &memoryRepo{}
	uc := newTestUseCase(repo, &serialTxManager{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, resp.UID)
	assert.Equal(t, int64(1), resp.StylistID)
	assert.Equal(t, int64(42), resp.ClientID)
	assert.Equal(t, testStart, resp.StartAt)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	assert.Equal(t, 1, repo.count())
}

func TestExecute_RejectsOverlap(t *testing.T) {
	repo := &memoryRepo{}
	uc := newTestUseCase(repo, &serialTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// 10:30 against an existing 10:00-11:00.
	second := validRequest()
	second.StartAt = testStart.Add(30 * time.Minute)

	_, err = uc.Execute(context.Background(), second)
	assert.ErrorIs(t, err, ErrDoubleBooking)
	assert.Equal(t, 1, repo.count())
}

func TestExecute_BackToBackIsNotAConflict(t *testing.T) {
	repo := &memoryRepo{}
	uc := newTestUseCase(repo, &serialTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Starts exactly at the first appointment's end.
	second := validRequest()
	second.StartAt = testStart.Add(60 * time.Minute)

	_, err = uc.Execute(context.Background(), second)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.count())
}

func TestExecute_CancelledAppointmentDoesNotConflict(t *testing.T) {
	repo := &memoryRepo{}
	repo.appointments = append(repo.appointments, &domain.Appointment{
		ID:              1,
		UID:             uuid.New(),
		StylistID:       1,
		StartAt:         testStart,
		DurationMinutes: 60,
		Status:          domain.StatusCancelled,
	})
	repo.nextID = 1
	uc := newTestUseCase(repo, &serialTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
}

func TestExecute_RejectsPastStart(t *testing.T) {
	uc := newTestUseCase(&memoryRepo{}, &serialTxManager{})

	req := validRequest()
	req.StartAt = testNow.Add(-time.Hour)
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStartTimeInPast)

	// Exactly now is not strictly in the future either.
	req.StartAt = testNow
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStartTimeInPast)
}

func TestExecute_ValidatesInput(t *testing.T) {
	uc := newTestUseCase(&memoryRepo{}, &serialTxManager{})

	req := validRequest()
	req.StylistID = 0
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.DurationMinutes = 0
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.DurationMinutes = domain.MaxDurationMinutes + 1
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ConcurrentAttemptsExactlyOneWins(t *testing.T) {
	repo := &memoryRepo{}
	tx := &serialTxManager{}

	const attempts = 16

	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(clientID int64) {
			defer wg.Done()
			uc := newTestUseCase(repo, tx)
			req := validRequest()
			req.ClientID = clientID
			_, err := uc.Execute(context.Background(), req)
			results <- err
		}(int64(i + 1))
	}

	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case assert.ErrorIs(t, err, ErrDoubleBooking):
			conflicts++
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, conflicts)
	assert.Equal(t, 1, repo.count())
}

func TestExecute_InfrastructureFailureIsStoreUnavailable(t *testing.T) {
	for _, txErr := range []error{
		fmt.Errorf("%w: after 3 attempts", txmanager.ErrRetriesExhausted),
		fmt.Errorf("%w: transaction deadline", txmanager.ErrTimeout),
		fmt.Errorf("%w: begin failed", txmanager.ErrBeginTx),
		fmt.Errorf("%w: commit failed", txmanager.ErrCommitTx),
	} {
		uc := newTestUseCase(&memoryRepo{}, &serialTxManager{err: txErr})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrStoreUnavailable)
		assert.NotErrorIs(t, err, ErrDoubleBooking)
	}
}
