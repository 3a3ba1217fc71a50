package get_available_rooms

import (
	"fmt"

	"github.com/avlok/LMS-LodgeService/internal/domain"
)

// validateRequest validates the request data.
func validateRequest(req *Request) error {
	if req.CheckIn.IsZero() {
		return fmt.Errorf("%w: checkIn is required", ErrInvalidInput)
	}

	if req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkOut is required", ErrInvalidInput)
	}

	if !req.CheckIn.Before(req.CheckOut) {
		return ErrInvalidStayRange
	}

	if req.GuestCount < domain.MinGuestCount {
		return fmt.Errorf("%w: guestCount must be at least %d", ErrInvalidInput, domain.MinGuestCount)
	}

	if req.GuestCount > domain.MaxGuestCount {
		return fmt.Errorf("%w: guestCount must not exceed %d", ErrInvalidInput, domain.MaxGuestCount)
	}

	if !domain.ValidGuestType(req.GuestType) {
		return fmt.Errorf("%w: unknown guest type %q", ErrInvalidInput, req.GuestType)
	}

	if nights := domain.Nights(req.CheckIn, req.CheckOut); nights > domain.MaxStayNights {
		return fmt.Errorf("%w: stay must not exceed %d nights", ErrInvalidInput, domain.MaxStayNights)
	}

	return nil
}
