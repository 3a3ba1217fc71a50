package create_reservation

import (
	"context"
	"time"

	"github.com/avlok/LMS-LodgeService/internal/domain"
)

// RoomRepository is the room inventory read contract.
type RoomRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Room, error)
}

// ReservationRepository is the reservation write contract.
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetOverlapping(ctx context.Context, roomIDs []int64, checkIn, checkOut time.Time) ([]*domain.Reservation, error)
}

// SpecialChargeRepository resolves the selected special charges.
type SpecialChargeRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.SpecialCharge, error)
}

// PriceCalculator derives the payment breakdown for a stay.
type PriceCalculator interface {
	Compute(allocations []domain.RoomAllocation, charges []domain.SpecialCharge, discount domain.Discount, nights int) domain.PaymentCalculation
}

// TransactionManager runs the availability check and insert atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider abstracts the current time.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging contract.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
