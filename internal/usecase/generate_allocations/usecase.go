package generate_allocations

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/avlok/LMS-LodgeService/internal/domain"
)

// UseCase builds candidate room allocations for a stay.
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

// Execute runs each allocation strategy against the rooms available for the
// stay and returns the non-empty options, ordered by fit for the
// guest type. Strategies that cannot cover the guest count contribute no
// option; zero options means the stay cannot be accommodated.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateAllocations: checkIn=%s, checkOut=%s, guests=%d, guestType=%s",
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat),
		req.GuestCount, req.GuestType)

	// 1. Validate the request
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GenerateAllocations: validation failed: %v", err)
		return nil, err
	}

	// 2. Query the available inventory
	rooms, err := uc.roomRepo.ListAvailable(ctx, req.CheckIn, req.CheckOut)
	if err != nil {
		uc.logger.Error("GenerateAllocations: failed to list available rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list available rooms: %v", ErrInternal, err)
	}

	// 3. Run the strategies
	order := strategyOrder(req.GuestType)
	options := make([]domain.AllocationOption, 0, len(order))
	for _, strategy := range order {
		allocations := runStrategy(strategy, rooms, req.GuestCount)
		if len(allocations) == 0 {
			continue
		}
		for i := range allocations {
			allocations[i].ID = uuid.NewString()
		}
		options = append(options, domain.AllocationOption{
			Strategy:    strategy,
			Rooms:       allocations,
			TotalTariff: domain.AllocationTotalTariff(allocations),
			TotalGuests: domain.AllocationTotalGuests(allocations),
		})
	}

	uc.logger.Info("GenerateAllocations: %d options for %d guests over %d rooms",
		len(options), req.GuestCount, len(rooms))

	return &Response{
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Nights:   domain.Nights(req.CheckIn, req.CheckOut),
		Options:  options,
	}, nil
}

// strategyOrder puts the strategy best suited to the guest type first:
// families and groups see the fewest-rooms option up front, solo travellers
// and couples the most comfortable one.
func strategyOrder(guestType domain.GuestType) []domain.StrategyName {
	if guestType.PrefersFewerRooms() {
		return []domain.StrategyName{
			domain.StrategyMinimalRooms,
			domain.StrategyComfortFirst,
			domain.StrategyPriceOptimized,
		}
	}
	return []domain.StrategyName{
		domain.StrategyComfortFirst,
		domain.StrategyPriceOptimized,
		domain.StrategyMinimalRooms,
	}
}

func runStrategy(name domain.StrategyName, rooms []domain.Room, guestCount int) []domain.RoomAllocation {
	switch name {
	case domain.StrategyComfortFirst:
		return comfortFirst(rooms, guestCount)
	case domain.StrategyPriceOptimized:
		return priceOptimized(rooms, guestCount)
	case domain.StrategyMinimalRooms:
		return minimalRooms(rooms, guestCount)
	default:
		return []domain.RoomAllocation{}
	}
}
