package create_appointment

import "errors"

var (
	// ErrDoubleBooking is returned when the requested interval overlaps an
	// existing scheduled appointment. Terminal for this attempt: the caller
	// must pick another slot, the transaction is never retried for it.
	ErrDoubleBooking = errors.New("create_appointment: time slot is already booked")

	// ErrStartTimeInPast is returned when the requested start is not strictly
	// in the future
	ErrStartTimeInPast = errors.New("create_appointment: start time is in the past")

	// ErrStoreUnavailable is returned when the transaction could not complete
	// for infrastructure reasons (timeout, serialization retries exhausted).
	// Retryable by the caller, never conflated with a booking conflict.
	ErrStoreUnavailable = errors.New("create_appointment: appointment store unavailable")

	// ErrInvalidInput is returned for invalid request data
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal is returned for internal use case failures
	ErrInternal = errors.New("create_appointment: internal error")
)
