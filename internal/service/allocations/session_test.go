package allocations

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlok/LMS-LodgeService/internal/domain"
)

type fakeLister struct {
	mu    sync.Mutex
	calls int

	listFn func(ctx context.Context, call int, checkIn, checkOut time.Time) ([]domain.Room, error)
}

func (f *fakeLister) ListAvailable(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Room, error) {
	f.mu.Lock()
	f.calls++
	call := f.calls
	f.mu.Unlock()
	return f.listFn(ctx, call, checkIn, checkOut)
}

func sessionDates(day int) (time.Time, time.Time) {
	return time.Date(2026, 9, day, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, day+2, 0, 0, 0, 0, time.UTC)
}

func TestRefresh_AppliesResult(t *testing.T) {
	rooms := []domain.Room{{ID: 1, Number: "101"}}
	lister := &fakeLister{
		listFn: func(ctx context.Context, call int, checkIn, checkOut time.Time) ([]domain.Room, error) {
			return rooms, nil
		},
	}

	var applied [][]domain.Room
	s := NewSession(lister, func(r []domain.Room) { applied = append(applied, r) })

	checkIn, checkOut := sessionDates(1)
	require.NoError(t, s.Refresh(context.Background(), checkIn, checkOut))

	require.Len(t, applied, 1)
	assert.Equal(t, rooms, applied[0])
}

func TestRefresh_StaleResultDiscarded(t *testing.T) {
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})

	lister := &fakeLister{
		listFn: func(ctx context.Context, call int, checkIn, checkOut time.Time) ([]domain.Room, error) {
			if call == 1 {
				close(firstStarted)
				select {
				case <-releaseFirst:
				case <-ctx.Done():
				}
				return []domain.Room{{ID: 1, Number: "stale"}}, ctx.Err()
			}
			return []domain.Room{{ID: 2, Number: "fresh"}}, nil
		},
	}

	var mu sync.Mutex
	var applied [][]domain.Room
	s := NewSession(lister, func(r []domain.Room) {
		mu.Lock()
		applied = append(applied, r)
		mu.Unlock()
	})

	firstDone := make(chan error, 1)
	go func() {
		checkIn, checkOut := sessionDates(1)
		firstDone <- s.Refresh(context.Background(), checkIn, checkOut)
	}()
	<-firstStarted

	// Second refresh cancels the first in-flight query.
	checkIn, checkOut := sessionDates(10)
	require.NoError(t, s.Refresh(context.Background(), checkIn, checkOut))
	close(releaseFirst)

	require.NoError(t, <-firstDone) // superseded, not an error

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, applied, 1)
	assert.Equal(t, "fresh", applied[0][0].Number)
}

func TestRefresh_QueryFailure(t *testing.T) {
	queryErr := errors.New("connection refused")
	lister := &fakeLister{
		listFn: func(ctx context.Context, call int, checkIn, checkOut time.Time) ([]domain.Room, error) {
			return nil, queryErr
		},
	}

	s := NewSession(lister, func([]domain.Room) {
		t.Fatal("apply must not run on failure")
	})

	checkIn, checkOut := sessionDates(1)
	assert.ErrorIs(t, s.Refresh(context.Background(), checkIn, checkOut), queryErr)
}

func TestRefresh_AfterCloseRejected(t *testing.T) {
	lister := &fakeLister{
		listFn: func(ctx context.Context, call int, checkIn, checkOut time.Time) ([]domain.Room, error) {
			return nil, nil
		},
	}

	s := NewSession(lister, func([]domain.Room) {})
	s.Close()

	checkIn, checkOut := sessionDates(1)
	assert.ErrorIs(t, s.Refresh(context.Background(), checkIn, checkOut), ErrSessionClosed)
	assert.Zero(t, lister.calls)
}

func TestClose_Idempotent(t *testing.T) {
	s := NewSession(&fakeLister{}, func([]domain.Room) {})
	s.Close()
	s.Close()
}
