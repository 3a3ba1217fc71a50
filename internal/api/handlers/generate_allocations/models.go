package generate_allocations

import (
	"fmt"
	"time"

	"github.com/avlok/LMS-LodgeService/internal/domain"
	generateAllocations "github.com/avlok/LMS-LodgeService/internal/usecase/generate_allocations"
)

// GenerateAllocationsRequest is the HTTP request model.
type GenerateAllocationsRequest struct {
	CheckIn    string `json:"checkIn"`  // "2026-09-12"
	CheckOut   string `json:"checkOut"` // "2026-09-15"
	GuestCount int    `json:"guestCount"`
	GuestType  string `json:"guestType"`
}

// ToUseCaseRequest parses the dates into the usecase model.
func (r *GenerateAllocationsRequest) ToUseCaseRequest() (*generateAllocations.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("parse checkIn: %w", err)
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("parse checkOut: %w", err)
	}

	return &generateAllocations.Request{
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		GuestCount: r.GuestCount,
		GuestType:  domain.GuestType(r.GuestType),
	}, nil
}

// AllocationResponse is one room assignment inside an option.
type AllocationResponse struct {
	ID                 string `json:"id"`
	RoomID             int64  `json:"roomId"`
	RoomNumber         string `json:"roomNumber"`
	RoomType           string `json:"roomType"`
	Capacity           int    `json:"capacity"`
	NightlyTariffCents int64  `json:"nightlyTariffCents"`
	GuestCount         int    `json:"guestCount"`
}

// OptionResponse is one allocation option.
type OptionResponse struct {
	Strategy         string               `json:"strategy"`
	Rooms            []AllocationResponse `json:"rooms"`
	TotalTariffCents int64                `json:"totalTariffCents"`
	TotalGuests      int                  `json:"totalGuests"`
}

// GenerateAllocationsResponse is the HTTP response model.
type GenerateAllocationsResponse struct {
	CheckIn  string           `json:"checkIn"`
	CheckOut string           `json:"checkOut"`
	Nights   int              `json:"nights"`
	Options  []OptionResponse `json:"options"`
}

// FromUseCaseResponse converts the usecase result.
func FromUseCaseResponse(result *generateAllocations.Response) *GenerateAllocationsResponse {
	options := make([]OptionResponse, len(result.Options))
	for i, option := range result.Options {
		rooms := make([]AllocationResponse, len(option.Rooms))
		for j, alloc := range option.Rooms {
			rooms[j] = AllocationResponse{
				ID:                 alloc.ID,
				RoomID:             alloc.RoomID,
				RoomNumber:         alloc.RoomNumber,
				RoomType:           alloc.RoomType,
				Capacity:           alloc.Capacity,
				NightlyTariffCents: int64(alloc.NightlyTariff),
				GuestCount:         alloc.GuestCount,
			}
		}
		options[i] = OptionResponse{
			Strategy:         string(option.Strategy),
			Rooms:            rooms,
			TotalTariffCents: int64(option.TotalTariff),
			TotalGuests:      option.TotalGuests,
		}
	}

	return &GenerateAllocationsResponse{
		CheckIn:  result.CheckIn.Format(domain.DateFormat),
		CheckOut: result.CheckOut.Format(domain.DateFormat),
		Nights:   result.Nights,
		Options:  options,
	}
}
