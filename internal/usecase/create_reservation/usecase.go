package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/avlok/LMS-LodgeService/internal/domain"
	specialchargerepo "github.com/avlok/LMS-LodgeService/internal/infra/storage/specialcharge"
)

// UseCase creates reservations. The availability check and the insert run in
// one serializable transaction with the overlapping rows locked, so two
// concurrent requests for the same room and dates cannot both succeed.
type UseCase struct {
	roomRepo        RoomRepository
	reservationRepo ReservationRepository
	chargeRepo      SpecialChargeRepository
	calculator      PriceCalculator
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the usecase.
func NewUseCase(
	roomRepo RoomRepository,
	reservationRepo ReservationRepository,
	chargeRepo SpecialChargeRepository,
	calculator PriceCalculator,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		chargeRepo:      chargeRepo,
		calculator:      calculator,
		txManager:       txManager,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute validates the request, prices the stay, and persists the
// reservation if every allocated room is still free for the dates.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: userId=%d, checkIn=%s, checkOut=%s, guests=%d, rooms=%d",
		req.UserID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat),
		req.GuestCount, len(req.Allocations))

	// 1. Validate the request
	if err := validateRequest(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the allocated rooms
	allocations, err := uc.buildAllocations(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Resolve the selected special charges
	charges, err := uc.chargeRepo.GetByIDs(ctx, req.SpecialChargeIDs)
	if err != nil {
		if errors.Is(err, specialchargerepo.ErrChargeNotFound) {
			uc.logger.Warn("CreateReservation: unknown special charge in %v", req.SpecialChargeIDs)
			return nil, ErrChargeNotFound
		}
		uc.logger.Error("CreateReservation: failed to load special charges: %v", err)
		return nil, fmt.Errorf("%w: failed to load special charges: %v", ErrInternal, err)
	}

	// 4. Price the stay
	nights := domain.Nights(req.CheckIn, req.CheckOut)
	payment := uc.calculator.Compute(allocations, charges, req.Discount, nights)

	reservation := &domain.Reservation{
		Reference:  uuid.NewString(),
		UserID:     req.UserID,
		GuestCount: req.GuestCount,
		GuestType:  req.GuestType,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Status:     domain.StatusReservation,
		Rooms:      allocations,
		TotalCents: payment.Total,
		Notes:      req.Notes,
	}

	// 5. Check availability and insert atomically
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		overlapping, err := uc.reservationRepo.GetOverlapping(txCtx, reservation.RoomIDs(), req.CheckIn, req.CheckOut)
		if err != nil {
			return fmt.Errorf("%w: failed to check overlapping reservations: %v", ErrInternal, err)
		}
		if len(overlapping) > 0 {
			return ErrRoomNotAvailable
		}

		if _, err := uc.reservationRepo.Create(txCtx, reservation); err != nil {
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrRoomNotAvailable) {
			uc.logger.Warn("CreateReservation: rooms %v not available for %s..%s",
				reservation.RoomIDs(), req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))
			return nil, ErrRoomNotAvailable
		}
		uc.logger.Error("CreateReservation: transaction failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateReservation: created reservation id=%d reference=%s total=%s",
		reservation.ID, reservation.Reference, reservation.TotalCents)

	return &Response{
		Reservation: reservation,
		Payment:     payment,
		Nights:      nights,
	}, nil
}

// buildAllocations resolves the requested room ids against the inventory and
// denormalizes room data into allocations. Guest counts are checked against
// each room's capacity here, where the authoritative capacity is known.
func (uc *UseCase) buildAllocations(ctx context.Context, req *Request) ([]domain.RoomAllocation, error) {
	ids := make([]int64, len(req.Allocations))
	for i, alloc := range req.Allocations {
		ids[i] = alloc.RoomID
	}

	rooms, err := uc.roomRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to load rooms %v: %v", ids, err)
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
			uc.logger.Warn("CreateReservation: room %d not found", input.RoomID)
			return nil, fmt.Errorf("%w: room %d", ErrRoomNotFound, input.RoomID)
		}
		if input.GuestCount > room.Capacity {
			return nil, fmt.Errorf("%w: room %s holds at most %d guests",
				ErrInvalidInput, room.Number, room.Capacity)
		}
		allocations = append(allocations, domain.RoomAllocation{
			ID:            uuid.NewString(),
			RoomID:        room.ID,
			RoomNumber:    room.Number,
			RoomType:      room.Type,
			Capacity:      room.Capacity,
			NightlyTariff: room.NightlyTariff,
			GuestCount:    input.GuestCount,
		})
	}

	return allocations, nil
}
