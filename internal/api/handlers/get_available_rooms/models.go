package get_available_rooms

import (
	"fmt"
	"strconv"
	"time"

	"github.com/avlok/LMS-LodgeService/internal/domain"
	getAvailableRooms "github.com/avlok/LMS-LodgeService/internal/usecase/get_available_rooms"
)

// Query parameters of GET /rooms/available.
type queryParams struct {
	CheckIn    string
	CheckOut   string
	GuestCount string
	GuestType  string
}

// ToUseCaseRequest parses the raw query parameters.
func (q queryParams) ToUseCaseRequest() (*getAvailableRooms.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, q.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("parse checkIn: %w", err)
	}

	checkOut, err := time.Parse(domain.DateFormat, q.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("parse checkOut: %w", err)
	}

	guestCount, err := strconv.Atoi(q.GuestCount)
	if err != nil {
		return nil, fmt.Errorf("parse guestCount: %w", err)
	}

	return &getAvailableRooms.Request{
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		GuestCount: guestCount,
		GuestType:  domain.GuestType(q.GuestType),
	}, nil
}

// RoomResponse is one available room.
type RoomResponse struct {
	ID                 int64  `json:"id"`
	Number             string `json:"number"`
	Type               string `json:"type"`
	Capacity           int    `json:"capacity"`
	NightlyTariffCents int64  `json:"nightlyTariffCents"`
}

// AvailableRoomsResponse is the HTTP response model.
type AvailableRoomsResponse struct {
	CheckIn       string         `json:"checkIn"`
	CheckOut      string         `json:"checkOut"`
	Nights        int            `json:"nights"`
	TotalCapacity int            `json:"totalCapacity"`
	Rooms         []RoomResponse `json:"rooms"`
}

// FromUseCaseResponse converts the usecase result.
func FromUseCaseResponse(result *getAvailableRooms.Response) *AvailableRoomsResponse {
	rooms := make([]RoomResponse, len(result.Rooms))
	for i, room := range result.Rooms {
		rooms[i] = RoomResponse{
			ID:                 room.ID,
			Number:             room.Number,
			Type:               room.Type,
			Capacity:           room.Capacity,
			NightlyTariffCents: int64(room.NightlyTariff),
		}
	}

	return &AvailableRoomsResponse{
		CheckIn:       result.CheckIn.Format(domain.DateFormat),
		CheckOut:      result.CheckOut.Format(domain.DateFormat),
		Nights:        result.Nights,
		TotalCapacity: result.TotalCapacity,
		Rooms:         rooms,
	}
}
