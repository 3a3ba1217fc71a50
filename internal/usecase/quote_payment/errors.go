package quote_payment

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidStayRange is returned when check-out does not fall after
	// check-in.
	ErrInvalidStayRange = errors.New("check-out must be after check-in")

	// ErrRoomNotFound is returned when an allocation references an unknown
	// room.
	ErrRoomNotFound = errors.New("room not found")

	// ErrChargeNotFound is returned when a selected special charge does not
	// exist.
	ErrChargeNotFound = errors.New("special charge not found")

	// ErrInternal is returned for internal usecase failures.
	ErrInternal = errors.New("usecase: internal error")
)
