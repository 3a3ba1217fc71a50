package quote_payment

import (
	"context"

	"github.com/avlok/LMS-LodgeService/internal/domain"
)

// RoomRepository is the room inventory read contract.
type RoomRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Room, error)
}

// SpecialChargeRepository resolves the selected special charges.
type SpecialChargeRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.SpecialCharge, error)
}

// PriceCalculator derives the payment breakdown for a stay.
type PriceCalculator interface {
	Compute(allocations []domain.RoomAllocation, charges []domain.SpecialCharge, discount domain.Discount, nights int) domain.PaymentCalculation
}

// Logger is the logging contract.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
