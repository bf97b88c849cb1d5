// Package txmanager runs functions inside SERIALIZABLE PostgreSQL
// transactions. Serialization failures are retried transparently a bounded
// number of times; business errors returned by the function are never retried
// and pass through unchanged.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/andrewscodinglab/salon-booking-service/pkg/dbmetrics"
)

var (
	// ErrBeginTx is returned when a transaction cannot be started.
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx is returned when the final commit fails for a reason other
	// than a serialization conflict.
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")

	// ErrRetriesExhausted is returned after all serialization retries failed.
	// Callers should treat it as a retryable infrastructure error, never as a
	// business conflict.
	ErrRetriesExhausted = errors.New("txmanager: serialization retries exhausted")

	// ErrTimeout is returned when the transaction exceeds its deadline. The
	// transaction is rolled back, no partial state is written.
	ErrTimeout = errors.New("txmanager: transaction timed out")
)

const (
	defaultMaxAttempts = 3
	defaultTimeout     = 5 * time.Second
	retryBackoffBase   = 50 * time.Millisecond
)

// TransactionManager begins SERIALIZABLE transactions on a TxBeginner and
// carries them through context for repositories.
type TransactionManager struct {
	db          dbmetrics.TxBeginner
	maxAttempts int
	timeout     time.Duration
}

// Option configures a TransactionManager.
type Option func(*TransactionManager)

// WithTimeout sets the per-attempt transaction deadline.
func WithTimeout(d time.Duration) Option {
	return func(m *TransactionManager) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// WithMaxAttempts sets how many times a serialization conflict is retried.
func WithMaxAttempts(n int) Option {
	return func(m *TransactionManager) {
		if n > 0 {
			m.maxAttempts = n
		}
	}
}

// NewTransactionManager creates a manager with default retry settings.
func NewTransactionManager(db dbmetrics.TxBeginner, opts ...Option) *TransactionManager {
	m := &TransactionManager{
		db:          db,
		maxAttempts: defaultMaxAttempts,
		timeout:     defaultTimeout,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// DoSerializable runs fn inside a SERIALIZABLE transaction. The context passed
// to fn carries the transaction; repositories using dbmetrics.GetExecutor run
// their statements on it. fn returning an error aborts the transaction.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 1; attempt <= m.maxAttempts; attempt++ {
		err := m.runOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if !IsSerializationFailure(err) {
			return err
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", ErrTimeout, ctx.Err())
		case <-time.After(retryBackoffBase * time.Duration(attempt)):
		}
	}

	return fmt.Errorf("%w: %v", ErrRetriesExhausted, lastErr)
}

func (m *TransactionManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) error {
	txCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	tx, err := m.db.BeginTx(txCtx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, err)
	}

	if err := fn(dbmetrics.WithTx(txCtx, tx)); err != nil {
		_ = tx.Rollback()
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(txCtx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		if IsSerializationFailure(err) {
			return err
		}
		if errors.Is(txCtx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return fmt.Errorf("%w: %v", ErrCommitTx, err)
	}

	return nil
}

// PostgreSQL error codes signalling that the transaction should be retried.
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// IsSerializationFailure reports whether err is a PostgreSQL serialization
// conflict or deadlock, i.e. safe to retry.
func IsSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	code := string(pqErr.Code)
	return code == codeSerializationFailure || code == codeDeadlockDetected
}
