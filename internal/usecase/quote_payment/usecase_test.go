package quote_payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlok/LMS-LodgeService/internal/domain"
	"github.com/avlok/LMS-LodgeService/internal/service/pricing"
	"github.com/avlok/LMS-LodgeService/pkg/money"
)

type mockRoomRepo struct {
	getByIDsFn func(ctx context.Context, ids []int64) ([]domain.Room, error)
}

func (m *mockRoomRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Room, error) {
	return m.getByIDsFn(ctx, ids)
}

type mockChargeRepo struct {
	getByIDsFn func(ctx context.Context, ids []int64) ([]domain.SpecialCharge, error)
}

func (m *mockChargeRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.SpecialCharge, error) {
	return m.getByIDsFn(ctx, ids)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		CheckIn:  time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Allocations: []AllocationInput{
			{RoomID: 1, GuestCount: 2},
		},
		Discount: domain.Discount{Kind: domain.DiscountNone},
	}
}

func newQuoteUseCase(rooms []domain.Room, charges []domain.SpecialCharge) *UseCase {
	roomRepo := &mockRoomRepo{
		getByIDsFn: func(ctx context.Context, ids []int64) ([]domain.Room, error) {
			return rooms, nil
		},
	}
	chargeRepo := &mockChargeRepo{
		getByIDsFn: func(ctx context.Context, ids []int64) ([]domain.SpecialCharge, error) {
			return charges, nil
		},
	}
	return NewUseCase(roomRepo, chargeRepo, pricing.NewCalculator(), nopLogger{})
}

func TestExecute_QuoteBreakdown(t *testing.T) {
	rooms := []domain.Room{
		{ID: 1, Number: "101", Capacity: 2, NightlyTariff: money.Cents(8000)},
	}
	charges := []domain.SpecialCharge{
		{ID: 1, Name: "kitchen", Rate: money.Cents(500), RateType: domain.ChargePerDay},
	}

	req := validRequest()
	req.SpecialChargeIDs = []int64{1}

	uc := newQuoteUseCase(rooms, charges)
	result, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 3, result.Nights)
	assert.Equal(t, 2, result.Guests)
	assert.Equal(t, money.Cents(24000), result.Payment.RoomTariff)
	assert.Equal(t, money.Cents(1500), result.Payment.SpecialCharges)
	assert.Equal(t, money.Cents(25500), result.Payment.Total)
	assert.Len(t, result.Charges, 1)
}

func TestExecute_QuoteIsStateless(t *testing.T) {
	rooms := []domain.Room{
		{ID: 1, Number: "101", Capacity: 2, NightlyTariff: money.Cents(8000)},
	}

	uc := newQuoteUseCase(rooms, nil)
	first, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		again, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestExecute_UnknownRoom(t *testing.T) {
	uc := newQuoteUseCase([]domain.Room{}, nil)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_CapacityEnforced(t *testing.T) {
	rooms := []domain.Room{
		{ID: 1, Number: "101", Capacity: 2, NightlyTariff: money.Cents(8000)},
	}

	req := validRequest()
	req.Allocations[0].GuestCount = 3

	uc := newQuoteUseCase(rooms, nil)
	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_SameDayStayRejected(t *testing.T) {
	req := validRequest()
	req.CheckOut = req.CheckIn

	uc := newQuoteUseCase(nil, nil)
	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidStayRange)
}
