package get_available_rooms

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidStayRange is returned when check-out does not fall after
	// check-in. A same-day range is an input error, not a one-night stay.
	ErrInvalidStayRange = errors.New("check-out must be after check-in")

	// ErrInternal is returned for internal usecase failures.
	ErrInternal = errors.New("usecase: internal error")
)
