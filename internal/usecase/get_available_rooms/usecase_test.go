package get_available_rooms

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlok/LMS-LodgeService/internal/domain"
	"github.com/avlok/LMS-LodgeService/pkg/money"
)

type mockRoomRepo struct {
	listAvailableFn func(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Room, error)
}

func (m *mockRoomRepo) ListAvailable(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Room, error) {
	return m.listAvailableFn(ctx, checkIn, checkOut)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		CheckIn:    time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		GuestCount: 2,
		GuestType:  domain.GuestTypeCouple,
	}
}

func TestExecute_ReturnsRoomsAndTotals(t *testing.T) {
	rooms := []domain.Room{
		{ID: 1, Number: "101", Type: "standard", Capacity: 2, NightlyTariff: money.Cents(8000)},
		{ID: 2, Number: "201", Type: "deluxe", Capacity: 4, NightlyTariff: money.Cents(15000)},
	}
	repo := &mockRoomRepo{
		listAvailableFn: func(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Room, error) {
			return rooms, nil
		},
	}

	uc := NewUseCase(repo, nopLogger{})
	result, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, rooms, result.Rooms)
	assert.Equal(t, 6, result.TotalCapacity)
	assert.Equal(t, 2, result.Nights)
}

func TestExecute_EmptyResultIsNotAnError(t *testing.T) {
	repo := &mockRoomRepo{
		listAvailableFn: func(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Room, error) {
			return []domain.Room{}, nil
		},
	}

	uc := NewUseCase(repo, nopLogger{})
	result, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Empty(t, result.Rooms)
	assert.Zero(t, result.TotalCapacity)
}

func TestExecute_SameDayStayRejected(t *testing.T) {
	repo := &mockRoomRepo{
		listAvailableFn: func(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Room, error) {
			t.Fatal("repository must not be called for invalid input")
			return nil, nil
		},
	}

	req := validRequest()
	req.CheckOut = req.CheckIn

	uc := NewUseCase(repo, nopLogger{})
	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidStayRange)
}

func TestExecute_GuestCountBounds(t *testing.T) {
	repo := &mockRoomRepo{
		listAvailableFn: func(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Room, error) {
			return nil, nil
		},
	}
	uc := NewUseCase(repo, nopLogger{})

	req := validRequest()
	req.GuestCount = 0
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.GuestCount = domain.MaxGuestCount + 1
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryFailure(t *testing.T) {
	repo := &mockRoomRepo{
		listAvailableFn: func(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Room, error) {
			return nil, errors.New("connection refused")
		},
	}

	uc := NewUseCase(repo, nopLogger{})
	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}
