package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus_CanonicalNames(t *testing.T) {
	for _, name := range []string{"reservation", "booking", "checked_in", "checked_out", "cancelled"} {
		status, err := NormalizeStatus(name)
		assert.NoError(t, err)
		assert.Equal(t, ReservationStatus(name), status)
	}
}

func TestNormalizeStatus_LegacyNames(t *testing.T) {
	cases := map[string]ReservationStatus{
		"pending":   StatusReservation,
		"confirmed": StatusBooking,
		"completed": StatusCheckedOut,
	}
	for legacy, want := range cases {
		status, err := NormalizeStatus(legacy)
		assert.NoError(t, err)
		assert.Equal(t, want, status)
	}
}

func TestNormalizeStatus_UnknownName(t *testing.T) {
	_, err := NormalizeStatus("archived")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestCanTransitionTo_ForwardFlow(t *testing.T) {
	r := &Reservation{Status: StatusReservation}
	assert.True(t, r.CanTransitionTo(StatusBooking))
	assert.False(t, r.CanTransitionTo(StatusCheckedIn))
	assert.False(t, r.CanTransitionTo(StatusCheckedOut))

	r.Status = StatusBooking
	assert.True(t, r.CanTransitionTo(StatusCheckedIn))
	assert.False(t, r.CanTransitionTo(StatusBooking))

	r.Status = StatusCheckedIn
	assert.True(t, r.CanTransitionTo(StatusCheckedOut))
	assert.False(t, r.CanTransitionTo(StatusCancelled))

	r.Status = StatusCheckedOut
	for _, target := range []ReservationStatus{StatusReservation, StatusBooking, StatusCheckedIn, StatusCancelled} {
		assert.False(t, r.CanTransitionTo(target))
	}
}

func TestCanTransitionTo_CancellationOnlyBeforeCheckIn(t *testing.T) {
	r := &Reservation{Status: StatusReservation}
	assert.True(t, r.CanTransitionTo(StatusCancelled))

	r.Status = StatusBooking
	assert.True(t, r.CanTransitionTo(StatusCancelled))

	r.Status = StatusCheckedIn
	assert.False(t, r.CanTransitionTo(StatusCancelled))

	r.Status = StatusCancelled
	assert.False(t, r.CanTransitionTo(StatusCancelled))
}

func TestIsActive(t *testing.T) {
	for _, status := range ActiveStatuses {
		r := &Reservation{Status: status}
		assert.True(t, r.IsActive(), "status %s", status)
	}
	for _, status := range InactiveStatuses {
		r := &Reservation{Status: status}
		assert.False(t, r.IsActive(), "status %s", status)
	}
}

func TestStatusColor_TotalMapping(t *testing.T) {
	assert.Equal(t, ColorReservation, StatusColor(StatusReservation))
	assert.Equal(t, ColorBooking, StatusColor(StatusBooking))
	assert.Equal(t, ColorCheckedIn, StatusColor(StatusCheckedIn))
	assert.Equal(t, ColorCheckedOut, StatusColor(StatusCheckedOut))
	assert.Equal(t, ColorCancelled, StatusColor(StatusCancelled))

	// Unknown statuses fall back to neutral instead of failing.
	assert.Equal(t, ColorNeutral, StatusColor(ReservationStatus("archived")))
}
