// Package pricing derives the payment breakdown for a stay from its room
// allocations, selected special charges, and an optional discount.
package pricing

import (
	"github.com/avlok/LMS-LodgeService/internal/domain"
	"github.com/avlok/LMS-LodgeService/pkg/money"
)

// Calculator computes payment breakdowns. It holds no mutable state, so a
// single instance is safe for concurrent use.
type Calculator struct {
	perPersonChargesPerNight bool
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithPerPersonChargesPerNight makes per-person charges accumulate each night
// of the stay instead of once per stay.
func WithPerPersonChargesPerNight(enabled bool) Option {
	return func(c *Calculator) {
		c.perPersonChargesPerNight = enabled
	}
}

// NewCalculator creates a calculator with the given options.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compute derives the full payment breakdown. It is a pure function of its
// inputs: recomputing with the same arguments yields the same breakdown.
//
// Room tariff is nightly tariff times nights, summed over allocations.
// Per-day charges accumulate per night; per-person charges accumulate per
// assigned guest, and additionally per night when the calculator is
// configured that way. The discount applies once to the subtotal and is
// clamped so the total never goes negative.
func (c *Calculator) Compute(
	allocations []domain.RoomAllocation,
	charges []domain.SpecialCharge,
	discount domain.Discount,
	nights int,
) domain.PaymentCalculation {
	if nights < 0 {
		nights = 0
	}

	var roomTariff money.Cents
	for _, a := range allocations {
		roomTariff += a.NightlyTariff.Mul(int64(nights))
	}

	guests := domain.AllocationTotalGuests(allocations)

	var chargeTotal money.Cents
	for _, charge := range charges {
		chargeTotal += c.chargeAmount(charge, guests, nights)
	}

	subtotal := roomTariff + chargeTotal
	discountAmount := discountAmount(discount, subtotal)

	return domain.PaymentCalculation{
		RoomTariff:     roomTariff,
		SpecialCharges: chargeTotal,
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		Total:          subtotal - discountAmount,
	}
}

func (c *Calculator) chargeAmount(charge domain.SpecialCharge, guests, nights int) money.Cents {
	switch charge.RateType {
	case domain.ChargePerDay:
		return charge.Rate.Mul(int64(nights))
	case domain.ChargePerPerson:
		amount := charge.Rate.Mul(int64(guests))
		if c.perPersonChargesPerNight {
			amount = amount.Mul(int64(nights))
		}
		return amount
	}
	return 0
}

// discountAmount resolves the discount against the subtotal, clamped to
// [0, subtotal].
func discountAmount(d domain.Discount, subtotal money.Cents) money.Cents {
	var amount money.Cents
	switch d.Kind {
	case domain.DiscountPercentage:
		amount = subtotal.Percent(d.Value)
	case domain.DiscountAmount:
		amount = money.Cents(d.Value)
	default:
		return 0
	}

	if amount < 0 {
		return 0
	}
	if amount > subtotal {
		return subtotal
	}
	return amount
}
