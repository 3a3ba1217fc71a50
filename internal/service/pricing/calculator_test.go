package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avlok/LMS-LodgeService/internal/domain"
	"github.com/avlok/LMS-LodgeService/pkg/money"
)

func allocations() []domain.RoomAllocation {
	return []domain.RoomAllocation{
		{RoomID: 1, RoomNumber: "101", NightlyTariff: money.Cents(8000), GuestCount: 2},
		{RoomID: 2, RoomNumber: "201", NightlyTariff: money.Cents(15000), GuestCount: 2},
	}
}

func noDiscount() domain.Discount {
	return domain.Discount{Kind: domain.DiscountNone}
}

func TestCompute_RoomTariffOnly(t *testing.T) {
	calc := NewCalculator()

	result := calc.Compute(allocations(), nil, noDiscount(), 3)

	assert.Equal(t, money.Cents(69000), result.RoomTariff) // (8000+15000)*3
	assert.Equal(t, money.Cents(0), result.SpecialCharges)
	assert.Equal(t, money.Cents(69000), result.Subtotal)
	assert.Equal(t, money.Cents(0), result.DiscountAmount)
	assert.Equal(t, money.Cents(69000), result.Total)
}

func TestCompute_PerDayCharge(t *testing.T) {
	calc := NewCalculator()
	charges := []domain.SpecialCharge{
		{ID: 1, Name: "kitchen", Rate: money.Cents(500), RateType: domain.ChargePerDay},
	}

	result := calc.Compute(allocations(), charges, noDiscount(), 3)

	assert.Equal(t, money.Cents(1500), result.SpecialCharges)
}

func TestCompute_PerPersonChargeOncePerStay(t *testing.T) {
	calc := NewCalculator() // per-night accumulation off
	charges := []domain.SpecialCharge{
		{ID: 1, Name: "breakfast", Rate: money.Cents(300), RateType: domain.ChargePerPerson},
	}

	result := calc.Compute(allocations(), charges, noDiscount(), 2)

	// 300 x 4 guests, independent of the 2 nights.
	assert.Equal(t, money.Cents(1200), result.SpecialCharges)
}

func TestCompute_PerPersonChargePerNight(t *testing.T) {
	calc := NewCalculator(WithPerPersonChargesPerNight(true))
	charges := []domain.SpecialCharge{
		{ID: 1, Name: "breakfast", Rate: money.Cents(300), RateType: domain.ChargePerPerson},
	}

	result := calc.Compute(allocations(), charges, noDiscount(), 2)

	// 300 x 4 guests x 2 nights.
	assert.Equal(t, money.Cents(2400), result.SpecialCharges)
}

func TestCompute_PercentageDiscount(t *testing.T) {
	calc := NewCalculator()

	result := calc.Compute(allocations(), nil, domain.Discount{Kind: domain.DiscountPercentage, Value: 10}, 1)

	assert.Equal(t, money.Cents(23000), result.Subtotal)
	assert.Equal(t, money.Cents(2300), result.DiscountAmount)
	assert.Equal(t, money.Cents(20700), result.Total)
}

func TestCompute_AmountDiscountClampedToSubtotal(t *testing.T) {
	calc := NewCalculator()

	result := calc.Compute(allocations(), nil, domain.Discount{Kind: domain.DiscountAmount, Value: 999999999}, 1)

	assert.Equal(t, result.Subtotal, result.DiscountAmount)
	assert.Equal(t, money.Cents(0), result.Total)
}

func TestCompute_FullPercentageDiscount(t *testing.T) {
	calc := NewCalculator()

	result := calc.Compute(allocations(), nil, domain.Discount{Kind: domain.DiscountPercentage, Value: 100}, 1)

	assert.Equal(t, money.Cents(0), result.Total)
}

func TestCompute_Idempotent(t *testing.T) {
	calc := NewCalculator(WithPerPersonChargesPerNight(true))
	charges := []domain.SpecialCharge{
		{ID: 1, Name: "breakfast", Rate: money.Cents(300), RateType: domain.ChargePerPerson},
		{ID: 2, Name: "kitchen", Rate: money.Cents(500), RateType: domain.ChargePerDay},
	}
	discount := domain.Discount{Kind: domain.DiscountPercentage, Value: 15}

	first := calc.Compute(allocations(), charges, discount, 3)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, calc.Compute(allocations(), charges, discount, 3))
	}
}

func TestCompute_ZeroNights(t *testing.T) {
	calc := NewCalculator()
	charges := []domain.SpecialCharge{
		{ID: 1, Name: "kitchen", Rate: money.Cents(500), RateType: domain.ChargePerDay},
	}

	result := calc.Compute(allocations(), charges, noDiscount(), 0)

	assert.Equal(t, money.Cents(0), result.RoomTariff)
	assert.Equal(t, money.Cents(0), result.SpecialCharges)
	assert.Equal(t, money.Cents(0), result.Total)
}
