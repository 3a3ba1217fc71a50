package create_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlok/LMS-LodgeService/internal/domain"
	specialchargerepo "github.com/avlok/LMS-LodgeService/internal/infra/storage/specialcharge"
	"github.com/avlok/LMS-LodgeService/internal/service/pricing"
	"github.com/avlok/LMS-LodgeService/pkg/money"
)

type mockRoomRepo struct {
	getByIDsFn func(ctx context.Context, ids []int64) ([]domain.Room, error)
}

func (m *mockRoomRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Room, error) {
	return m.getByIDsFn(ctx, ids)
}

type mockReservationRepo struct {
	createFn         func(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	getOverlappingFn func(ctx context.Context, roomIDs []int64, checkIn, checkOut time.Time) ([]*domain.Reservation, error)
}

func (m *mockReservationRepo) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	return m.createFn(ctx, res)
}

func (m *mockReservationRepo) GetOverlapping(ctx context.Context, roomIDs []int64, checkIn, checkOut time.Time) ([]*domain.Reservation, error) {
	return m.getOverlappingFn(ctx, roomIDs, checkIn, checkOut)
}

type mockChargeRepo struct {
	getByIDsFn func(ctx context.Context, ids []int64) ([]domain.SpecialCharge, error)
}

func (m *mockChargeRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.SpecialCharge, error) {
	return m.getByIDsFn(ctx, ids)
}

// passthroughTxManager runs the function directly, no transaction semantics.
type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func inventory() []domain.Room {
	return []domain.Room{
		{ID: 1, Number: "101", Type: "standard", Capacity: 2, NightlyTariff: money.Cents(8000)},
		{ID: 2, Number: "201", Type: "deluxe", Capacity: 4, NightlyTariff: money.Cents(15000)},
	}
}

func happyRoomRepo() *mockRoomRepo {
	return &mockRoomRepo{
		getByIDsFn: func(ctx context.Context, ids []int64) ([]domain.Room, error) {
			return inventory(), nil
		},
	}
}

func emptyChargeRepo() *mockChargeRepo {
	return &mockChargeRepo{
		getByIDsFn: func(ctx context.Context, ids []int64) ([]domain.SpecialCharge, error) {
			return []domain.SpecialCharge{}, nil
		},
	}
}

func validRequest() *Request {
	return &Request{
		UserID:     42,
		CheckIn:    time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		GuestCount: 4,
		GuestType:  domain.GuestTypeFamily,
		Allocations: []AllocationInput{
			{RoomID: 1, GuestCount: 2},
			{RoomID: 2, GuestCount: 2},
		},
		Discount: domain.Discount{Kind: domain.DiscountNone},
	}
}

func newUseCase(roomRepo RoomRepository, reservationRepo ReservationRepository, chargeRepo SpecialChargeRepository) *UseCase {
	return NewUseCase(
		roomRepo,
		reservationRepo,
		chargeRepo,
		pricing.NewCalculator(),
		passthroughTxManager{},
		fixedClock{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)},
		nopLogger{},
	)
}

func TestExecute_CreatesReservation(t *testing.T) {
	var created *domain.Reservation
	reservationRepo := &mockReservationRepo{
		getOverlappingFn: func(ctx context.Context, roomIDs []int64, checkIn, checkOut time.Time) ([]*domain.Reservation, error) {
			assert.ElementsMatch(t, []int64{1, 2}, roomIDs)
			return nil, nil
		},
		createFn: func(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
			res.ID = 7
			created = res
			return res, nil
		},
	}

	uc := newUseCase(happyRoomRepo(), reservationRepo, emptyChargeRepo())
	result, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, int64(7), result.Reservation.ID)
	assert.NotEmpty(t, result.Reservation.Reference)
	assert.Equal(t, domain.StatusReservation, created.Status)
	assert.Equal(t, 2, result.Nights)

	// (8000 + 15000) * 2 nights
	assert.Equal(t, money.Cents(46000), result.Payment.Total)
	assert.Equal(t, created.TotalCents, result.Payment.Total)

	for _, alloc := range created.Rooms {
		assert.NotEmpty(t, alloc.ID)
		assert.NotEmpty(t, alloc.RoomNumber)
	}
}

func TestExecute_OverlapConflict(t *testing.T) {
	reservationRepo := &mockReservationRepo{
		getOverlappingFn: func(ctx context.Context, roomIDs []int64, checkIn, checkOut time.Time) ([]*domain.Reservation, error) {
			return []*domain.Reservation{{ID: 99}}, nil
		},
		createFn: func(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
			t.Fatal("create must not run when rooms overlap")
			return nil, nil
		},
	}

	uc := newUseCase(happyRoomRepo(), reservationRepo, emptyChargeRepo())
	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrRoomNotAvailable)
}

func TestExecute_UnknownRoom(t *testing.T) {
	roomRepo := &mockRoomRepo{
		getByIDsFn: func(ctx context.Context, ids []int64) ([]domain.Room, error) {
			return inventory()[:1], nil // room 2 missing
		},
	}

	uc := newUseCase(roomRepo, &mockReservationRepo{}, emptyChargeRepo())
	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_GuestsExceedRoomCapacity(t *testing.T) {
	req := validRequest()
	req.GuestCount = 5
	req.Allocations = []AllocationInput{
		{RoomID: 1, GuestCount: 3}, // room 101 holds 2
		{RoomID: 2, GuestCount: 2},
	}

	uc := newUseCase(happyRoomRepo(), &mockReservationRepo{}, emptyChargeRepo())
	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_AllocationSumMustMatchGuestCount(t *testing.T) {
	req := validRequest()
	req.GuestCount = 3 // allocations still sum to 4

	uc := newUseCase(happyRoomRepo(), &mockReservationRepo{}, emptyChargeRepo())
	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_PastCheckInRejected(t *testing.T) {
	req := validRequest()
	req.CheckIn = time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	req.CheckOut = time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC)

	uc := newUseCase(happyRoomRepo(), &mockReservationRepo{}, emptyChargeRepo())
	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_SameDayStayRejected(t *testing.T) {
	req := validRequest()
	req.CheckOut = req.CheckIn

	uc := newUseCase(happyRoomRepo(), &mockReservationRepo{}, emptyChargeRepo())
	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidStayRange)
}

func TestExecute_UnknownChargeRejected(t *testing.T) {
	chargeRepo := &mockChargeRepo{
		getByIDsFn: func(ctx context.Context, ids []int64) ([]domain.SpecialCharge, error) {
			return nil, specialchargerepo.ErrChargeNotFound
		},
	}

	req := validRequest()
	req.SpecialChargeIDs = []int64{99}

	uc := newUseCase(happyRoomRepo(), &mockReservationRepo{}, chargeRepo)
	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrChargeNotFound)
}

func TestExecute_ChargesAndDiscountInTotal(t *testing.T) {
	chargeRepo := &mockChargeRepo{
		getByIDsFn: func(ctx context.Context, ids []int64) ([]domain.SpecialCharge, error) {
			return []domain.SpecialCharge{
				{ID: 1, Name: "kitchen", Rate: money.Cents(500), RateType: domain.ChargePerDay},
			}, nil
		},
	}
	reservationRepo := &mockReservationRepo{
		getOverlappingFn: func(ctx context.Context, roomIDs []int64, checkIn, checkOut time.Time) ([]*domain.Reservation, error) {
			return nil, nil
		},
		createFn: func(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
			return res, nil
		},
	}

	req := validRequest()
	req.SpecialChargeIDs = []int64{1}
	req.Discount = domain.Discount{Kind: domain.DiscountPercentage, Value: 10}

	uc := newUseCase(happyRoomRepo(), reservationRepo, chargeRepo)
	result, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	// rooms 46000 + kitchen 500*2 = 47000, minus 10% = 42300
	assert.Equal(t, money.Cents(47000), result.Payment.Subtotal)
	assert.Equal(t, money.Cents(4700), result.Payment.DiscountAmount)
	assert.Equal(t, money.Cents(42300), result.Payment.Total)
}

func TestExecute_CreateFailure(t *testing.T) {
	reservationRepo := &mockReservationRepo{
		getOverlappingFn: func(ctx context.Context, roomIDs []int64, checkIn, checkOut time.Time) ([]*domain.Reservation, error) {
			return nil, nil
		},
		createFn: func(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
			return nil, errors.New("connection refused")
		},
	}

	uc := newUseCase(happyRoomRepo(), reservationRepo, emptyChargeRepo())
	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}
