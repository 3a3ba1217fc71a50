// Package allocations keeps an in-flight room selection consistent while the
// caller tweaks it: switching between generated options, adding and removing
// rooms, and reassigning guests. Every effective mutation produces exactly one
// change notification carrying a snapshot of the new state.
package allocations

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/avlok/LMS-LodgeService/internal/domain"
	"github.com/avlok/LMS-LodgeService/pkg/money"
)

// Snapshot is the observable state of a selector after a mutation.
type Snapshot struct {
	Strategy    domain.StrategyName // strategy of the selected option, "custom" after manual edits
	Rooms       []domain.RoomAllocation
	TotalTariff money.Cents
	TotalGuests int
}

// StrategyCustom marks a selection that diverged from its generated option.
const StrategyCustom domain.StrategyName = "custom"

// RoomUpdate describes a change to one allocation. Nil fields are left
// untouched.
type RoomUpdate struct {
	GuestCount *int
	Room       *domain.Room
}

// OnChange receives a snapshot after every effective mutation.
type OnChange func(Snapshot)

// Selector tracks the working allocation set. Safe for concurrent use.
type Selector struct {
	mu sync.Mutex

	options   []domain.AllocationOption
	available []domain.Room

	strategy domain.StrategyName
	current  []domain.RoomAllocation

	onChange OnChange
}

// NewSelector creates a selector over the generated options and the rooms
// available for the stay. The first option, when present, starts selected;
// no notification fires for this initial state.
func NewSelector(options []domain.AllocationOption, available []domain.Room, onChange OnChange) *Selector {
	s := &Selector{
		options:   options,
		available: available,
		onChange:  onChange,
	}
	if len(options) > 0 {
		s.strategy = options[0].Strategy
		s.current = cloneAllocations(options[0].Rooms)
	}
	return s
}

// SelectOption replaces the working set with the i-th generated option,
// discarding any manual edits.
func (s *Selector) SelectOption(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 || i >= len(s.options) {
		return fmt.Errorf("%w: %d of %d", ErrOptionOutOfRange, i, len(s.options))
	}

	s.strategy = s.options[i].Strategy
	s.current = cloneAllocations(s.options[i].Rooms)
	s.notifyLocked()
	return nil
}

// AddRoom allocates the first available room not already in the selection,
// holding one guest.
func (s *Selector) AddRoom() (domain.RoomAllocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	used := make(map[int64]struct{}, len(s.current))
	for _, alloc := range s.current {
		used[alloc.RoomID] = struct{}{}
	}

	for _, room := range s.available {
		if _, taken := used[room.ID]; taken {
			continue
		}
		alloc := domain.RoomAllocation{
			ID:            uuid.NewString(),
			RoomID:        room.ID,
			RoomNumber:    room.Number,
			RoomType:      room.Type,
			Capacity:      room.Capacity,
			NightlyTariff: room.NightlyTariff,
			GuestCount:    1,
		}
		s.current = append(s.current, alloc)
		s.strategy = StrategyCustom
		s.notifyLocked()
		return alloc, nil
	}

	return domain.RoomAllocation{}, ErrNoRoomAvailable
}

// RemoveRoom drops the allocation with the given id from the selection.
func (s *Selector) RemoveRoom(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, alloc := range s.current {
		if alloc.ID != id {
			continue
		}
		s.current = append(s.current[:i], s.current[i+1:]...)
		s.strategy = StrategyCustom
		s.notifyLocked()
		return nil
	}

	return fmt.Errorf("%w: %s", ErrAllocationNotFound, id)
}

// UpdateRoom applies the update to the allocation with the given id. Swapping
// onto a room the selection already uses is rejected; a guest count must fit
// the (possibly new) room's capacity. No notification fires when the update
// is a no-op.
func (s *Selector) UpdateRoom(id string, update RoomUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, alloc := range s.current {
		if alloc.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("%w: %s", ErrAllocationNotFound, id)
	}

	next := s.current[idx]

	if update.Room != nil && update.Room.ID != next.RoomID {
		for _, alloc := range s.current {
			if alloc.RoomID == update.Room.ID {
				return fmt.Errorf("%w: room %s", ErrRoomAlreadyAllocated, update.Room.Number)
			}
		}
		next.RoomID = update.Room.ID
		next.RoomNumber = update.Room.Number
		next.RoomType = update.Room.Type
		next.Capacity = update.Room.Capacity
		next.NightlyTariff = update.Room.NightlyTariff
	}

	if update.GuestCount != nil {
		next.GuestCount = *update.GuestCount
	}

	if next.GuestCount < 1 || next.GuestCount > next.Capacity {
		return fmt.Errorf("%w: %d guests in room %s (capacity %d)",
			ErrInvalidGuestCount, next.GuestCount, next.RoomNumber, next.Capacity)
	}

	if next == s.current[idx] {
		return nil
	}

	s.current[idx] = next
	s.strategy = StrategyCustom
	s.notifyLocked()
	return nil
}

// Snapshot returns a copy of the current selection state.
func (s *Selector) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Selector) snapshotLocked() Snapshot {
	return Snapshot{
		Strategy:    s.strategy,
		Rooms:       cloneAllocations(s.current),
		TotalTariff: domain.AllocationTotalTariff(s.current),
		TotalGuests: domain.AllocationTotalGuests(s.current),
	}
}

func (s *Selector) notifyLocked() {
	if s.onChange == nil {
		return
	}
	s.onChange(s.snapshotLocked())
}

func cloneAllocations(allocations []domain.RoomAllocation) []domain.RoomAllocation {
	return append([]domain.RoomAllocation(nil), allocations...)
}
