package get_available_slots

import "errors"

var (
	// ErrScheduleUnavailable is returned when the stylist has no working-hours
	// configuration. Distinct from an empty slot list: a disabled weekday or an
	// exception date is a legitimate empty day, a missing schedule is an error.
	ErrScheduleUnavailable = errors.New("get_available_slots: schedule unavailable")

	// ErrInvalidTimeFormat is returned when a stored time range is malformed.
	// Propagated instead of being swallowed into an empty list so that the
	// broken configuration is visible.
	ErrInvalidTimeFormat = errors.New("get_available_slots: invalid time format in schedule")

	// ErrInvalidInput is returned for invalid request data
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal is returned for internal use case failures
	ErrInternal = errors.New("get_available_slots: internal error")
)
