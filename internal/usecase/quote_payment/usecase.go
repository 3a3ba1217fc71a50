package quote_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/avlok/LMS-LodgeService/internal/domain"
	specialchargerepo "github.com/avlok/LMS-LodgeService/internal/infra/storage/specialcharge"
)

// UseCase prices a prospective stay. Nothing is persisted; the same request
// always yields the same breakdown.
type UseCase struct {
	roomRepo   RoomRepository
	chargeRepo SpecialChargeRepository
	calculator PriceCalculator
	logger     Logger
}

// NewUseCase creates the usecase.
func NewUseCase(
	roomRepo RoomRepository,
	chargeRepo SpecialChargeRepository,
	calculator PriceCalculator,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:   roomRepo,
		chargeRepo: chargeRepo,
		calculator: calculator,
		logger:     logger,
	}
}

// Execute resolves the rooms and charges, then computes the payment
// breakdown for the stay.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuotePayment: checkIn=%s, checkOut=%s, rooms=%d, charges=%d",
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat),
		len(req.Allocations), len(req.SpecialChargeIDs))

	// 1. Validate the request
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuotePayment: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the rooms
	ids := make([]int64, len(req.Allocations))
	for i, alloc := range req.Allocations {
		ids[i] = alloc.RoomID
	}

	rooms, err := uc.roomRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("QuotePayment: failed to load rooms %v: %v", ids, err)
		return nil, fmt.Errorf("%w: failed to load rooms: %v", ErrInternal, err)
	}

	byID := make(map[int64]domain.Room, len(rooms))
	for _, room := range rooms {
		byID[room.ID] = room
	}

	allocations := make([]domain.RoomAllocation, 0, len(req.Allocations))
	for _, input := range req.Allocations {
		room, ok := byID[input.RoomID]
		if !ok {
			uc.logger.Warn("QuotePayment: room %d not found", input.RoomID)
			return nil, fmt.Errorf("%w: room %d", ErrRoomNotFound, input.RoomID)
		}
		if input.GuestCount > room.Capacity {
			return nil, fmt.Errorf("%w: room %s holds at most %d guests",
				ErrInvalidInput, room.Number, room.Capacity)
		}
		allocations = append(allocations, domain.RoomAllocation{
			RoomID:        room.ID,
			RoomNumber:    room.Number,
			RoomType:      room.Type,
			Capacity:      room.Capacity,
			NightlyTariff: room.NightlyTariff,
			GuestCount:    input.GuestCount,
		})
	}

	// 3. Resolve the charges
	charges, err := uc.chargeRepo.GetByIDs(ctx, req.SpecialChargeIDs)
	if err != nil {
		if errors.Is(err, specialchargerepo.ErrChargeNotFound) {
			uc.logger.Warn("QuotePayment: unknown special charge in %v", req.SpecialChargeIDs)
			return nil, ErrChargeNotFound
		}
		uc.logger.Error("QuotePayment: failed to load special charges: %v", err)
		return nil, fmt.Errorf("%w: failed to load special charges: %v", ErrInternal, err)
	}

	// 4. Compute the breakdown
	nights := domain.Nights(req.CheckIn, req.CheckOut)
	payment := uc.calculator.Compute(allocations, charges, req.Discount, nights)

	uc.logger.Info("QuotePayment: subtotal=%s discount=%s total=%s",
		payment.Subtotal, payment.DiscountAmount, payment.Total)

	return &Response{
		Nights:  nights,
		Guests:  domain.AllocationTotalGuests(allocations),
		Payment: payment,
		Charges: charges,
	}, nil
}
