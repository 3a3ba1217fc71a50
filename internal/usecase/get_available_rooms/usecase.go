package get_available_rooms

import (
	"context"
	"fmt"

	"github.com/avlok/LMS-LodgeService/internal/domain"
)

// UseCase answers room availability queries.
type UseCase struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewUseCase creates the usecase.
func NewUseCase(roomRepo RoomRepository, logger Logger) *UseCase {
	return &UseCase{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// Execute returns the rooms available for the requested stay.
// An empty room list is a valid result, not an error; repository failures
// surface as ErrInternal so callers can tell "no rooms" from "query failed".
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableRooms: checkIn=%s, checkOut=%s, guests=%d, guestType=%s",
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat),
		req.GuestCount, req.GuestType)

	// 1. Validate the request
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableRooms: validation failed: %v", err)
		return nil, err
	}

	// 2. Query the inventory
	rooms, err := uc.roomRepo.ListAvailable(ctx, req.CheckIn, req.CheckOut)
	if err != nil {
		uc.logger.Error("GetAvailableRooms: failed to list available rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list available rooms: %v", ErrInternal, err)
	}

	totalCapacity := domain.TotalCapacity(rooms)

	uc.logger.Info("GetAvailableRooms: %d rooms available, total capacity %d for %d guests",
		len(rooms), totalCapacity, req.GuestCount)

	return &Response{
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		Nights:        domain.Nights(req.CheckIn, req.CheckOut),
		Rooms:         rooms,
		TotalCapacity: totalCapacity,
	}, nil
}
