package reservations

import "errors"

var (
	// ErrReservationNotFound is returned when the reservation does not exist.
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrAccessDenied is returned when a user touches someone else's
	// reservation.
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel is returned when the reservation is past the point of
	// cancellation.
	ErrCannotCancel = errors.New("reservation cannot be cancelled")

	// ErrInvalidStatus is returned for status strings outside the known set.
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrInvalidTransition is returned when the requested status does not
	// follow from the current one.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for internal service failures.
	ErrInternal = errors.New("service: internal error")
)
