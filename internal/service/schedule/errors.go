package schedule

import "errors"

var (
	// ErrScheduleNotFound is returned when the stylist has no configured schedule
	ErrScheduleNotFound = errors.New("schedule not found")

	// ErrAccessDenied is returned when the user may not manage the schedule
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidTimeFormat is returned when a time range carries a malformed
	// hour, minute or period
	ErrInvalidTimeFormat = errors.New("invalid time format")

	// ErrInvalidInput is returned for invalid request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for internal service failures
	ErrInternal = errors.New("service: internal error")
)
