package quote_payment

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

	if len(req.Allocations) == 0 {
		return fmt.Errorf("%w: at least one room allocation is required", ErrInvalidInput)
	}

	seen := make(map[int64]struct{}, len(req.Allocations))
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
	}

	if !domain.ValidDiscount(req.Discount) {
		return fmt.Errorf("%w: invalid discount", ErrInvalidInput)
	}

	return nil
}
