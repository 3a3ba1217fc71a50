package create_reservation

import (
	"fmt"
	"time"

	"github.com/avlok/LMS-LodgeService/internal/domain"
	createReservation "github.com/avlok/LMS-LodgeService/internal/usecase/create_reservation"
)

// AllocationInput is one chosen room with its assigned guests.
type AllocationInput struct {
	RoomID     int64 `json:"roomId" validate:"required,gt=0"`
	GuestCount int   `json:"guestCount" validate:"required,gte=1"`
}

// DiscountInput is the optional discount of a reservation.
type DiscountInput struct {
	Kind  string `json:"kind" validate:"oneof=none percentage amount"`
	Value int64  `json:"value" validate:"gte=0"`
}

// CreateReservationRequest is the HTTP request model.
type CreateReservationRequest struct {
	CheckIn          string            `json:"checkIn" validate:"required,datetime=2006-01-02"`
	CheckOut         string            `json:"checkOut" validate:"required,datetime=2006-01-02"`
	GuestCount       int               `json:"guestCount" validate:"required,gte=1"`
	GuestType        string            `json:"guestType" validate:"required,oneof=solo couple family group"`
	Allocations      []AllocationInput `json:"allocations" validate:"required,min=1,dive"`
	SpecialChargeIDs []int64           `json:"specialChargeIds,omitempty"`
	Discount         *DiscountInput    `json:"discount,omitempty"`
	Notes            *string           `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// ToUseCaseRequest converts the validated HTTP request, binding the
// authenticated user.
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) (*createReservation.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("parse checkIn: %w", err)
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("parse checkOut: %w", err)
	}

	allocations := make([]createReservation.AllocationInput, len(r.Allocations))
	for i, alloc := range r.Allocations {
		allocations[i] = createReservation.AllocationInput{
			RoomID:     alloc.RoomID,
			GuestCount: alloc.GuestCount,
		}
	}

	discount := domain.Discount{Kind: domain.DiscountNone}
	if r.Discount != nil {
		discount = domain.Discount{
			Kind:  domain.DiscountKind(r.Discount.Kind),
			Value: r.Discount.Value,
		}
	}

	return &createReservation.Request{
		UserID:           userID,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		GuestCount:       r.GuestCount,
		GuestType:        domain.GuestType(r.GuestType),
		Allocations:      allocations,
		SpecialChargeIDs: r.SpecialChargeIDs,
		Discount:         discount,
		Notes:            r.Notes,
	}, nil
}

// AllocationResponse is one persisted room allocation.
type AllocationResponse struct {
	ID                 string `json:"id"`
	RoomID             int64  `json:"roomId"`
	RoomNumber         string `json:"roomNumber"`
	RoomType           string `json:"roomType"`
	GuestCount         int    `json:"guestCount"`
	NightlyTariffCents int64  `json:"nightlyTariffCents"`
}

// PaymentResponse is the payment breakdown of the reservation.
type PaymentResponse struct {
	RoomTariffCents     int64 `json:"roomTariffCents"`
	SpecialChargesCents int64 `json:"specialChargesCents"`
	SubtotalCents       int64 `json:"subtotalCents"`
	DiscountCents       int64 `json:"discountCents"`
	TotalCents          int64 `json:"totalCents"`
}

// CreateReservationResponse is the HTTP response model.
type CreateReservationResponse struct {
	ID         int64                `json:"id"`
	Reference  string               `json:"reference"`
	UserID     int64                `json:"userId"`
	CheckIn    string               `json:"checkIn"`
	CheckOut   string               `json:"checkOut"`
	Nights     int                  `json:"nights"`
	GuestCount int                  `json:"guestCount"`
	GuestType  string               `json:"guestType"`
	Status     string               `json:"status"`
	Rooms      []AllocationResponse `json:"rooms"`
	Payment    PaymentResponse      `json:"payment"`
	Notes      *string              `json:"notes,omitempty"`
	CreatedAt  time.Time            `json:"createdAt"`
}

// FromUseCaseResponse converts the usecase result.
func FromUseCaseResponse(result *createReservation.Response) *CreateReservationResponse {
	reservation := result.Reservation

	rooms := make([]AllocationResponse, len(reservation.Rooms))
	for i, alloc := range reservation.Rooms {
		rooms[i] = AllocationResponse{
			ID:                 alloc.ID,
			RoomID:             alloc.RoomID,
			RoomNumber:         alloc.RoomNumber,
			RoomType:           alloc.RoomType,
			GuestCount:         alloc.GuestCount,
			NightlyTariffCents: int64(alloc.NightlyTariff),
		}
	}

	return &CreateReservationResponse{
		ID:         reservation.ID,
		Reference:  reservation.Reference,
		UserID:     reservation.UserID,
		CheckIn:    reservation.CheckIn.Format(domain.DateFormat),
		CheckOut:   reservation.CheckOut.Format(domain.DateFormat),
		Nights:     result.Nights,
		GuestCount: reservation.GuestCount,
		GuestType:  string(reservation.GuestType),
		Status:     string(reservation.Status),
		Rooms:      rooms,
		Payment: PaymentResponse{
			RoomTariffCents:     int64(result.Payment.RoomTariff),
			SpecialChargesCents: int64(result.Payment.SpecialCharges),
			SubtotalCents:       int64(result.Payment.Subtotal),
			DiscountCents:       int64(result.Payment.DiscountAmount),
			TotalCents:          int64(result.Payment.Total),
		},
		Notes:     reservation.Notes,
		CreatedAt: reservation.CreatedAt,
	}
}
