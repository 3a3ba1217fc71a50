package generate_allocations

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidStayRange is returned when check-out does not fall after
	// check-in.
	ErrInvalidStayRange = errors.New("check-out must be after check-in")

	// ErrInternal is returned for internal usecase failures.
	ErrInternal = errors.New("usecase: internal error")
)
