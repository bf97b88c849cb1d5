package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewscodinglab/salon-booking-service/pkg/clock12"
)

func timeRange(id string, startHour, startMinute int, startPeriod clock12.Period, endHour, endMinute int, endPeriod clock12.Period) TimeRange {
	return TimeRange{
		ID:          id,
		StartHour:   startHour,
		StartMinute: startMinute,
		StartPeriod: startPeriod,
		EndHour:     endHour,
		EndMinute:   endMinute,
		EndPeriod:   endPeriod,
	}
}

func TestTimeRange_Minutes(t *testing.T) {
	r := timeRange("r1", 9, 0, clock12.AM, 12, 30, clock12.PM)

	start, end, err := r.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 540, start)
	assert.Equal(t, 750, end)
}

func TestTimeRange_Minutes_Inverted(t *testing.T) {
	r := timeRange("r1", 2, 0, clock12.PM, 9, 0, clock12.AM)

	_, _, err := r.Minutes()
	assert.ErrorIs(t, err, ErrRangeInverted)
}

func TestTimeRange_Minutes_ZeroLength(t *testing.T) {
	r := timeRange("r1", 9, 0, clock12.AM, 9, 0, clock12.AM)

	_, _, err := r.Minutes()
	assert.ErrorIs(t, err, ErrRangeInverted)
}

func TestTimeRange_Minutes_InvalidFormat(t *testing.T) {
	r := timeRange("r1", 13, 0, clock12.AM, 5, 0, clock12.PM)

	_, _, err := r.Minutes()
	assert.ErrorIs(t, err, clock12.ErrInvalidTimeFormat)
}

func TestDaySchedule_Validate_OverlappingRanges(t *testing.T) {
	day := DaySchedule{
		Enabled: true,
		Ranges: []TimeRange{
			timeRange("r1", 9, 0, clock12.AM, 12, 0, clock12.PM),
			timeRange("r2", 11, 0, clock12.AM, 2, 0, clock12.PM),
		},
	}

	assert.ErrorIs(t, day.Validate(), ErrRangesOverlap)
}

func TestDaySchedule_Validate_TouchingRangesOK(t *testing.T) {
	day := DaySchedule{
		Enabled: true,
		Ranges: []TimeRange{
			timeRange("r2", 1, 0, clock12.PM, 5, 0, clock12.PM),
			timeRange("r1", 9, 0, clock12.AM, 1, 0, clock12.PM),
		},
	}

	assert.NoError(t, day.Validate())
}

func TestDaySchedule_Bookable(t *testing.T) {
	assert.False(t, DaySchedule{Enabled: false}.Bookable())
	assert.False(t, DaySchedule{Enabled: true}.Bookable())
	assert.True(t, DaySchedule{
		Enabled: true,
		Ranges:  []TimeRange{timeRange("r1", 9, 0, clock12.AM, 5, 0, clock12.PM)},
	}.Bookable())
}

func TestWeeklySchedule_Validate_NamesBrokenDay(t *testing.T) {
	w := WeeklySchedule{
		Tuesday: DaySchedule{
			Enabled: true,
			Ranges:  []TimeRange{timeRange("r1", 0, 0, clock12.AM, 5, 0, clock12.PM)},
		},
	}

	err := w.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, clock12.ErrInvalidTimeFormat)
	assert.Contains(t, err.Error(), "tuesday")
}

func TestWeeklySchedule_Day(t *testing.T) {
	monday := DaySchedule{
		Enabled: true,
		Ranges:  []TimeRange{timeRange("r1", 9, 0, clock12.AM, 5, 0, clock12.PM)},
	}
	w := WeeklySchedule{Monday: monday}

	assert.Equal(t, monday, w.Day(time.Monday))
	assert.False(t, w.Day(time.Sunday).Bookable())
}

func TestStylistAvailability_HasException(t *testing.T) {
	av := &StylistAvailability{
		Exceptions: []time.Time{
			time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		},
	}

	assert.True(t, av.HasException(time.Date(2026, 3, 9, 15, 30, 0, 0, time.Local)))
	assert.False(t, av.HasException(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)))
}

func TestAppointment_Overlaps(t *testing.T) {
	start := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	appt := &Appointment{StartAt: start, DurationMinutes: 60}

	// Half-open: touching boundaries do not overlap.
	assert.False(t, appt.Overlaps(start.Add(-time.Hour), start))
	assert.False(t, appt.Overlaps(start.Add(time.Hour), start.Add(2*time.Hour)))

	assert.True(t, appt.Overlaps(start.Add(30*time.Minute), start.Add(90*time.Minute)))
	assert.True(t, appt.Overlaps(start.Add(-30*time.Minute), start.Add(30*time.Minute)))
	assert.True(t, appt.Overlaps(start.Add(15*time.Minute), start.Add(30*time.Minute)))
}

func TestAppointment_BlocksSlot(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusScheduled}).BlocksSlot())
	assert.False(t, (&Appointment{Status: StatusCancelled}).BlocksSlot())
	assert.False(t, (&Appointment{Status: StatusCompleted}).BlocksSlot())
	assert.False(t, (&Appointment{Status: StatusPendingPayment}).BlocksSlot())
}

func TestAppointment_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusScheduled}).CanBeCancelled())
	assert.True(t, (&Appointment{Status: StatusPendingPayment}).CanBeCancelled())
	assert.False(t, (&Appointment{Status: StatusCancelled}).CanBeCancelled())
	assert.False(t, (&Appointment{Status: StatusCompleted}).CanBeCancelled())
}
