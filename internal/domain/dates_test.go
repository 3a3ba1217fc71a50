package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps_BackToBackStaysDoNotConflict(t *testing.T) {
	// Stay 1: days 1..3, stay 2: days 3..5. Check-out and check-in share
	// day 3 but the ranges are half-open.
	assert.False(t, Overlaps(
		date(2026, 9, 1), date(2026, 9, 3),
		date(2026, 9, 3), date(2026, 9, 5),
	))
}

func TestOverlaps_SharedNightConflicts(t *testing.T) {
	// Stay 1: days 1..3, stay 2: days 2..4 share the night of day 2.
	assert.True(t, Overlaps(
		date(2026, 9, 1), date(2026, 9, 3),
		date(2026, 9, 2), date(2026, 9, 4),
	))
}

func TestOverlaps_ContainedRangeConflicts(t *testing.T) {
	assert.True(t, Overlaps(
		date(2026, 9, 1), date(2026, 9, 10),
		date(2026, 9, 4), date(2026, 9, 5),
	))
}

func TestNights_WholeDays(t *testing.T) {
	assert.Equal(t, 2, Nights(date(2026, 9, 1), date(2026, 9, 3)))
	assert.Equal(t, 1, Nights(date(2026, 9, 1), date(2026, 9, 2)))
}

func TestNights_PartialDayRoundsUp(t *testing.T) {
	checkIn := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, Nights(checkIn, checkOut))

	checkOut = time.Date(2026, 9, 3, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, Nights(checkIn, checkOut))
}

func TestNights_SameDayIsZero(t *testing.T) {
	d := date(2026, 9, 1)
	assert.Equal(t, 0, Nights(d, d))
}

func TestNights_ReversedRangeIsZero(t *testing.T) {
	assert.Equal(t, 0, Nights(date(2026, 9, 3), date(2026, 9, 1)))
}

func TestIsDateInPast(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)

	assert.True(t, IsDateInPast(date(2026, 8, 31), now))
	// Earlier the same day is still "today", not past.
	assert.False(t, IsDateInPast(time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC), now))
	assert.False(t, IsDateInPast(date(2026, 9, 2), now))
}
