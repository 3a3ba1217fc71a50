package models

import (
	"time"

	"github.com/avlok/LMS-LodgeService/internal/domain"
)

// Request models

// CancelReservationRequest asks to cancel a reservation.
type CancelReservationRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest asks to move a reservation to a new status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListReservationsRequest filters the reservation listing.
type ListReservationsRequest struct {
	RoomType        *string    `json:"roomType,omitempty"`
	Status          *string    `json:"status,omitempty"`
	From            *time.Time `json:"from,omitempty"`
	To              *time.Time `json:"to,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter converts the request into a domain filter. Legacy status
// names are normalized; "all" clears the status filter.
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationFilter, error) {
	filter := domain.ReservationFilter{
		RoomType:        r.RoomType,
		From:            r.From,
		To:              r.To,
		IncludeInactive: r.IncludeInactive,
	}

	if r.RoomType != nil && *r.RoomType == domain.FilterAll {
		filter.RoomType = nil
	}

	if r.Status != nil && *r.Status != domain.FilterAll {
		status, err := domain.NormalizeStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response models

// AllocationResponse is one room allocation inside a reservation.
type AllocationResponse struct {
	ID                 string `json:"id"`
	RoomID             int64  `json:"roomId"`
	RoomNumber         string `json:"roomNumber"`
	RoomType           string `json:"roomType"`
	Capacity           int    `json:"capacity"`
	NightlyTariffCents int64  `json:"nightlyTariffCents"`
	GuestCount         int    `json:"guestCount"`
}

// ReservationResponse is the outward representation of a reservation.
type ReservationResponse struct {
	ID                 int64                `json:"id"`
	Reference          string               `json:"reference"`
	UserID             int64                `json:"userId"`
	GuestCount         int                  `json:"guestCount"`
	GuestType          string               `json:"guestType"`
	CheckIn            string               `json:"checkIn"`  // YYYY-MM-DD
	CheckOut           string               `json:"checkOut"` // YYYY-MM-DD
	Nights             int                  `json:"nights"`
	Status             string               `json:"status"`
	Rooms              []AllocationResponse `json:"rooms"`
	TotalCents         int64                `json:"totalCents"`
	Notes              *string              `json:"notes,omitempty"`
	CancellationReason *string              `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time           `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time            `json:"createdAt"`
	UpdatedAt          time.Time            `json:"updatedAt"`
}

// FromDomainReservation converts a domain reservation into its response.
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	rooms := make([]AllocationResponse, len(r.Rooms))
	for i, alloc := range r.Rooms {
		rooms[i] = AllocationResponse{
			ID:                 alloc.ID,
			RoomID:             alloc.RoomID,
			RoomNumber:         alloc.RoomNumber,
			RoomType:           alloc.RoomType,
			Capacity:           alloc.Capacity,
			NightlyTariffCents: int64(alloc.NightlyTariff),
			GuestCount:         alloc.GuestCount,
		}
	}

	return &ReservationResponse{
		ID:                 r.ID,
		Reference:          r.Reference,
		UserID:             r.UserID,
		GuestCount:         r.GuestCount,
		GuestType:          string(r.GuestType),
		CheckIn:            r.CheckIn.Format(domain.DateFormat),
		CheckOut:           r.CheckOut.Format(domain.DateFormat),
		Nights:             domain.Nights(r.CheckIn, r.CheckOut),
		Status:             string(r.Status),
		Rooms:              rooms,
		TotalCents:         int64(r.TotalCents),
		Notes:              r.Notes,
		CancellationReason: r.CancellationReason,
		CancelledAt:        r.CancelledAt,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

// FromDomainReservations converts a reservation list.
func FromDomainReservations(reservations []*domain.Reservation) []*ReservationResponse {
	out := make([]*ReservationResponse, len(reservations))
	for i, r := range reservations {
		out[i] = FromDomainReservation(r)
	}
	return out
}
