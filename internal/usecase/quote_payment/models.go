package quote_payment

import (
	"time"

	"github.com/avlok/LMS-LodgeService/internal/domain"
)

// AllocationInput is one chosen room with its assigned guests.
type AllocationInput struct {
	RoomID     int64
	GuestCount int
}

// Request asks for a price breakdown without persisting anything.
type Request struct {
	CheckIn          time.Time
	CheckOut         time.Time
	Allocations      []AllocationInput
	SpecialChargeIDs []int64
	Discount         domain.Discount
}

// Response carries the derived payment breakdown.
type Response struct {
	Nights  int
	Guests  int
	Payment domain.PaymentCalculation
	Charges []domain.SpecialCharge
}
