package domain

import (
	"time"

	"github.com/avlok/LMS-LodgeService/pkg/money"
)

// ChargeRateType defines how a special charge accumulates.
type ChargeRateType string

const (
	ChargePerDay    ChargeRateType = "per_day"
	ChargePerPerson ChargeRateType = "per_person"
)

// SpecialCharge is an add-on fee independent of room tariff,
// e.g. kitchen use or an extra bed.
type SpecialCharge struct {
	ID       int64
	Name     string
	Rate     money.Cents
	RateType ChargeRateType

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DiscountKind defines how a discount value is interpreted.
type DiscountKind string

const (
	DiscountNone       DiscountKind = "none"
	DiscountPercentage DiscountKind = "percentage" // Value is whole percent, 0..100
	DiscountAmount     DiscountKind = "amount"     // Value is cents
)

// Discount applies once to the payment subtotal.
type Discount struct {
	Kind  DiscountKind
	Value int64
}

// ValidDiscount reports whether the discount is inside its documented domain.
func ValidDiscount(d Discount) bool {
	switch d.Kind {
	case DiscountNone:
		return true
	case DiscountPercentage:
		return d.Value >= 0 && d.Value <= 100
	case DiscountAmount:
		return d.Value >= 0
	}
	return false
}

// PaymentCalculation is the derived price breakdown for a stay.
// It is recomputed whenever an input changes and never persisted.
type PaymentCalculation struct {
	RoomTariff     money.Cents
	SpecialCharges money.Cents
	Subtotal       money.Cents
	DiscountAmount money.Cents
	Total          money.Cents
}
