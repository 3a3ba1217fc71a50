package calendar

import (
	"sync"

	"github.com/avlok/LMS-LodgeService/internal/domain"
)

// Store is an in-memory view of rooms and reservations with the active
// calendar filters. Reads return copies; safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	rooms        []domain.Room
	reservations []*domain.Reservation

	roomTypeFilter string
	statusFilter   string
}

// NewStore creates an empty store with both filters set to "all".
func NewStore() *Store {
	return &Store{
		roomTypeFilter: domain.FilterAll,
		statusFilter:   domain.FilterAll,
	}
}

// SetData replaces the room and reservation data.
func (s *Store) SetData(rooms []domain.Room, reservations []*domain.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms = append([]domain.Room(nil), rooms...)
	s.reservations = append([]*domain.Reservation(nil), reservations...)
}

// SetRoomTypeFilter sets the room type filter; empty means "all".
func (s *Store) SetRoomTypeFilter(roomType string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if roomType == "" {
		roomType = domain.FilterAll
	}
	s.roomTypeFilter = roomType
}

// SetStatusFilter sets the status filter; empty means "all".
func (s *Store) SetStatusFilter(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status == "" {
		status = domain.FilterAll
	}
	s.statusFilter = status
}

// Rooms returns the rooms passing the room type filter.
func (s *Store) Rooms() []domain.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FilterRoomsByType(append([]domain.Room(nil), s.rooms...), s.roomTypeFilter)
}

// Reservations returns the reservations passing the status filter.
func (s *Store) Reservations() []*domain.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FilterReservationsByStatus(append([]*domain.Reservation(nil), s.reservations...), s.statusFilter)
}

// Events projects the filtered reservations into calendar events.
func (s *Store) Events() []domain.CalendarEvent {
	return Project(s.Reservations())
}
