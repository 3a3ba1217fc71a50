package create_reservation

import (
	"fmt"
	"time"

	"github.com/avlok/LMS-LodgeService/internal/domain"
)

// validateRequest validates the request data against the current time.
func validateRequest(req *Request, now time.Time) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() {
		return fmt.Errorf("%w: checkIn is required", ErrInvalidInput)
	}

	if req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkOut is required", ErrInvalidInput)
	}

	if !req.CheckIn.Before(req.CheckOut) {
		return ErrInvalidStayRange
	}

	if domain.IsDateInPast(req.CheckIn, now) {
		return fmt.Errorf("%w: checkIn must not be in the past", ErrInvalidInput)
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

	if len(req.Allocations) == 0 {
		return fmt.Errorf("%w: at least one room allocation is required", ErrInvalidInput)
	}

	seen := make(map[int64]struct{}, len(req.Allocations))
	assigned := 0
	for _, alloc := range req.Allocations {
		if alloc.RoomID <= 0 {
			return fmt.Errorf("%w: allocation roomId is required", ErrInvalidInput)
		}
		if _, dup := seen[alloc.RoomID]; dup {
			return fmt.Errorf("%w: room %d allocated more than once", ErrInvalidInput, alloc.RoomID)
		}
		seen[alloc.RoomID] = struct{}{}

		if alloc.GuestCount < 1 {
			return fmt.Errorf("%w: allocation for room %d must hold at least one guest", ErrInvalidInput, alloc.RoomID)
		}
		assigned += alloc.GuestCount
	}

	if assigned != req.GuestCount {
		return fmt.Errorf("%w: allocated guests (%d) must equal guestCount (%d)",
			ErrInvalidInput, assigned, req.GuestCount)
	}

	if !domain.ValidDiscount(req.Discount) {
		return fmt.Errorf("%w: invalid discount", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
