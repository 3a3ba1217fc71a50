package allocations

import (
	"context"
	"sync"
	"time"

	"github.com/avlok/LMS-LodgeService/internal/domain"
)

// RoomLister is the availability query contract for sessions.
type RoomLister interface {
	ListAvailable(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Room, error)
}

// Session serializes availability refreshes while the caller keeps changing
// the stay dates. Each Refresh cancels the previous in-flight query, and a
// result is applied only if no newer refresh started in the meantime, so a
// slow early response can never overwrite a fresher one.
type Session struct {
	lister RoomLister
	apply  func([]domain.Room)

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	closed bool
}

// NewSession creates a session. apply receives the room list of every refresh
// that was still current when its query finished.
func NewSession(lister RoomLister, apply func([]domain.Room)) *Session {
	return &Session{
		lister: lister,
		apply:  apply,
	}
}

// Refresh queries availability for the given stay. It blocks until the query
// finishes, is cancelled by a newer refresh, or the session closes. Stale
// results are discarded silently.
func (s *Session) Refresh(ctx context.Context, checkIn, checkOut time.Time) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	if s.cancel != nil {
		s.cancel()
	}
	queryCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.seq++
	token := s.seq
	s.mu.Unlock()

	rooms, err := s.lister.ListAvailable(queryCtx, checkIn, checkOut)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || token != s.seq {
		return nil
	}

	if err != nil {
		return err
	}

	s.apply(rooms)
	return nil
}

// Close cancels any in-flight refresh and rejects future ones.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
