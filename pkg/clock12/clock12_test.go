package clock12

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		name   string
		hour   int
		minute int
		period Period
		want   int
	}{
		{"midnight is 12 AM", 12, 0, AM, 0},
		{"half past midnight", 12, 30, AM, 30},
		{"noon is 12 PM", 12, 0, PM, 720},
		{"morning hour", 9, 15, AM, 555},
		{"afternoon hour", 5, 30, PM, 1050},
		{"one minute to midnight", 11, 59, PM, 1439},
		{"1 AM", 1, 0, AM, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToMinutes(tt.hour, tt.minute, tt.period)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToMinutes_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		hour   int
		minute int
		period Period
	}{
		{"hour zero", 0, 0, AM},
		{"hour thirteen", 13, 0, AM},
		{"negative hour", -1, 0, PM},
		{"minute sixty", 9, 60, AM},
		{"negative minute", 9, -1, AM},
		{"unknown period", 9, 0, Period("XX")},
		{"empty period", 9, 0, Period("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToMinutes(tt.hour, tt.minute, tt.period)
			require.ErrorIs(t, err, ErrInvalidTimeFormat)
		})
	}
}

func TestFromMinutes_RoundTrip(t *testing.T) {
	for minutes := 0; minutes < MinutesPerDay; minutes += 7 {
		hour, minute, period, err := FromMinutes(minutes)
		require.NoError(t, err)

		back, err := ToMinutes(hour, minute, period)
		require.NoError(t, err)
		require.Equal(t, minutes, back, "round trip for %d minutes", minutes)
	}
}

func TestFromMinutes_Invalid(t *testing.T) {
	_, _, _, err := FromMinutes(-1)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, _, _, err = FromMinutes(MinutesPerDay)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestParsePeriod(t *testing.T) {
	for _, raw := range []string{"AM", "am", " Am "} {
		p, err := ParsePeriod(raw)
		require.NoError(t, err)
		assert.Equal(t, AM, p)
	}

	p, err := ParsePeriod("pm")
	require.NoError(t, err)
	assert.Equal(t, PM, p)

	_, err = ParsePeriod("noon")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "12:00 AM", Format(0))
	assert.Equal(t, "9:15 AM", Format(555))
	assert.Equal(t, "12:00 PM", Format(720))
	assert.Equal(t, "5:30 PM", Format(1050))
	assert.Equal(t, "11:59 PM", Format(1439))
	assert.Equal(t, "", Format(-5))
}

func TestOnDate(t *testing.T) {
	date := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	got := OnDate(date, 555)
	assert.Equal(t, time.Date(2026, 3, 9, 9, 15, 0, 0, time.UTC), got)

	// Time-of-day on the input date is ignored.
	noon := time.Date(2026, 3, 9, 12, 34, 56, 0, time.UTC)
	assert.Equal(t, got, OnDate(noon, 555))
}

func TestMinutesOfDay(t *testing.T) {
	assert.Equal(t, 555, MinutesOfDay(time.Date(2026, 3, 9, 9, 15, 42, 0, time.UTC)))
	assert.Equal(t, 0, MinutesOfDay(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)))
}
