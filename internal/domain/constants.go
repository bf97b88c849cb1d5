package domain

// SlotStepMinutes is the fixed candidate-start granularity of the slot
// generator. Candidates step every 15 minutes from a range's start, so a
// 60-minute service offers denser options than back-to-back stepping would.
const SlotStepMinutes = 15

// Business validation constants
const (
	MinDurationMinutes = 5
	MaxDurationMinutes = 480 // 8 hours

	MaxServiceNameLength        = 200
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02T15:04" // local wall-clock start instant
)

// InertStatuses lists statuses that never block a slot. Used when filtering
// rows for conflict detection and availability.
var InertStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusCompleted,
	StatusPendingPayment,
}
