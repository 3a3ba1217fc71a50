package domain

import (
	"errors"
	"time"

	"github.com/avlok/LMS-LodgeService/pkg/money"
)

// ReservationStatus represents the status of a reservation.
type ReservationStatus string

// Canonical status set. Legacy synonyms from older clients are accepted on
// input and normalized by NormalizeStatus.
const (
	StatusReservation ReservationStatus = "reservation" // tentative hold, no payment yet
	StatusBooking     ReservationStatus = "booking"     // confirmed with payment details
	StatusCheckedIn   ReservationStatus = "checked_in"
	StatusCheckedOut  ReservationStatus = "checked_out"
	StatusCancelled   ReservationStatus = "cancelled"
)

// ErrUnknownStatus is returned for status strings outside the canonical set
// and its accepted legacy synonyms.
var ErrUnknownStatus = errors.New("unknown reservation status")

// legacyStatusNames maps older status vocabulary onto the canonical set.
var legacyStatusNames = map[string]ReservationStatus{
	"pending":   StatusReservation,
	"confirmed": StatusBooking,
	"completed": StatusCheckedOut,
}

// NormalizeStatus converts a status string into the canonical set,
// translating accepted legacy names.
func NormalizeStatus(s string) (ReservationStatus, error) {
	status := ReservationStatus(s)
	switch status {
	case StatusReservation, StatusBooking, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return status, nil
	}
	if mapped, ok := legacyStatusNames[s]; ok {
		return mapped, nil
	}
	return "", ErrUnknownStatus
}

// Reservation represents a stay booked for one or more rooms.
type Reservation struct {
	ID         int64
	Reference  string // public identifier handed to guests
	UserID     int64
	GuestCount int
	GuestType  GuestType
	CheckIn    time.Time // date only, half-open interval start
	CheckOut   time.Time // date only, half-open interval end
	Status     ReservationStatus
	Rooms      []RoomAllocation
	TotalCents money.Cents
	Notes      *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the reservation still blocks its rooms.
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled && r.Status != StatusCheckedOut
}

// CancellableStatuses are the states a reservation may be cancelled from.
var CancellableStatuses = []ReservationStatus{StatusReservation, StatusBooking}

// CanBeCancelled reports whether the reservation may still be cancelled.
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusReservation || r.Status == StatusBooking
}

// CanTransitionTo reports whether the status may move to the target state.
// Forward flow is reservation -> booking -> checked_in -> checked_out;
// cancellation is allowed only before check-in.
func (r *Reservation) CanTransitionTo(target ReservationStatus) bool {
	switch target {
	case StatusBooking:
		return r.Status == StatusReservation
	case StatusCheckedIn:
		return r.Status == StatusBooking
	case StatusCheckedOut:
		return r.Status == StatusCheckedIn
	case StatusCancelled:
		return r.CanBeCancelled()
	}
	return false
}

// RoomIDs returns the ids of all allocated rooms.
func (r *Reservation) RoomIDs() []int64 {
	ids := make([]int64, len(r.Rooms))
	for i, alloc := range r.Rooms {
		ids[i] = alloc.RoomID
	}
	return ids
}

// ReservationFilter is the flexible filter for listing reservations.
type ReservationFilter struct {
	RoomType        *string            // nil = all room types
	Status          *ReservationStatus // nil = all statuses (subject to IncludeInactive)
	From            *time.Time         // stay overlap window start (optional)
	To              *time.Time         // stay overlap window end (optional)
	IncludeInactive bool               // include cancelled and checked-out stays
}
