package create_reservation

import (
	"time"

	"github.com/avlok/LMS-LodgeService/internal/domain"
)

// AllocationInput is one chosen room with its assigned guests.
type AllocationInput struct {
	RoomID     int64
	GuestCount int
}

// Request creates a reservation from a confirmed allocation.
type Request struct {
	UserID           int64
	CheckIn          time.Time
	CheckOut         time.Time
	GuestCount       int
	GuestType        domain.GuestType
	Allocations      []AllocationInput
	SpecialChargeIDs []int64
	Discount         domain.Discount
	Notes            *string
}

// Response carries the persisted reservation and its payment breakdown.
type Response struct {
	Reservation *domain.Reservation
	Payment     domain.PaymentCalculation
	Nights      int
}
