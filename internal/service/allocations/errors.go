package allocations

import "errors"

var (
	// ErrOptionOutOfRange is returned when selecting an option index outside
	// the generated set.
	ErrOptionOutOfRange = errors.New("allocation option out of range")

	// ErrAllocationNotFound is returned when an allocation id is not part of
	// the current selection.
	ErrAllocationNotFound = errors.New("allocation not found")

	// ErrNoRoomAvailable is returned when every available room is already
	// allocated.
	ErrNoRoomAvailable = errors.New("no unallocated room available")

	// ErrRoomAlreadyAllocated is returned when swapping onto a room the
	// selection already uses.
	ErrRoomAlreadyAllocated = errors.New("room already allocated")

	// ErrInvalidGuestCount is returned when a guest count falls outside the
	// room's capacity.
	ErrInvalidGuestCount = errors.New("invalid guest count for room")

	// ErrSessionClosed is returned when refreshing a closed session.
	ErrSessionClosed = errors.New("availability session closed")
)
