package quote_payment

import (
	"fmt"
	"time"

	"github.com/avlok/LMS-LodgeService/internal/domain"
	quotePayment "github.com/avlok/LMS-LodgeService/internal/usecase/quote_payment"
)

// AllocationInput is one chosen room with its assigned guests.
type AllocationInput struct {
	RoomID     int64 `json:"roomId"`
	GuestCount int   `json:"guestCount"`
}

// DiscountInput is the optional discount of a quote.
type DiscountInput struct {
	Kind  string `json:"kind"` // "none", "percentage", "amount"
	Value int64  `json:"value"`
}

// QuotePaymentRequest is the HTTP request model.
type QuotePaymentRequest struct {
	CheckIn          string            `json:"checkIn"`
	CheckOut         string            `json:"checkOut"`
	Allocations      []AllocationInput `json:"allocations"`
	SpecialChargeIDs []int64           `json:"specialChargeIds,omitempty"`
	Discount         *DiscountInput    `json:"discount,omitempty"`
}

// ToUseCaseRequest parses the dates and discount into the usecase model.
func (r *QuotePaymentRequest) ToUseCaseRequest() (*quotePayment.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("parse checkIn: %w", err)
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("parse checkOut: %w", err)
	}

	allocations := make([]quotePayment.AllocationInput, len(r.Allocations))
	for i, alloc := range r.Allocations {
		allocations[i] = quotePayment.AllocationInput{
			RoomID:     alloc.RoomID,
			GuestCount: alloc.GuestCount,
		}
	}

	return &quotePayment.Request{
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		Allocations:      allocations,
		SpecialChargeIDs: r.SpecialChargeIDs,
		Discount:         toDomainDiscount(r.Discount),
	}, nil
}

func toDomainDiscount(d *DiscountInput) domain.Discount {
	if d == nil {
		return domain.Discount{Kind: domain.DiscountNone}
	}
	return domain.Discount{
		Kind:  domain.DiscountKind(d.Kind),
		Value: d.Value,
	}
}

// ChargeResponse is one applied special charge.
type ChargeResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	RateCents int64  `json:"rateCents"`
	RateType  string `json:"rateType"`
}

// QuotePaymentResponse is the HTTP response model.
type QuotePaymentResponse struct {
	Nights              int              `json:"nights"`
	Guests              int              `json:"guests"`
	RoomTariffCents     int64            `json:"roomTariffCents"`
	SpecialChargesCents int64            `json:"specialChargesCents"`
	SubtotalCents       int64            `json:"subtotalCents"`
	DiscountCents       int64            `json:"discountCents"`
	TotalCents          int64            `json:"totalCents"`
	Charges             []ChargeResponse `json:"charges"`
}

// FromUseCaseResponse converts the usecase result.
func FromUseCaseResponse(result *quotePayment.Response) *QuotePaymentResponse {
	charges := make([]ChargeResponse, len(result.Charges))
	for i, charge := range result.Charges {
		charges[i] = ChargeResponse{
			ID:        charge.ID,
			Name:      charge.Name,
			RateCents: int64(charge.Rate),
			RateType:  string(charge.RateType),
		}
	}

	return &QuotePaymentResponse{
		Nights:              result.Nights,
		Guests:              result.Guests,
		RoomTariffCents:     int64(result.Payment.RoomTariff),
		SpecialChargesCents: int64(result.Payment.SpecialCharges),
		SubtotalCents:       int64(result.Payment.Subtotal),
		DiscountCents:       int64(result.Payment.DiscountAmount),
		TotalCents:          int64(result.Payment.Total),
		Charges:             charges,
	}
}
