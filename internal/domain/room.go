package domain

import (
	"time"

	"github.com/avlok/LMS-LodgeService/pkg/money"
)

// Room represents a physical room in the lodge. Reference data; mutated only
// through administrative edits.
type Room struct {
	ID            int64
	Number        string // display number, e.g. "104"
	Type          string // category name, e.g. "deluxe"
	Capacity      int    // maximum guests
	NightlyTariff money.Cents

	CreatedAt time.Time
	UpdatedAt time.Time
}

// GuestType categorizes the booking party and influences which allocation
// option is presented first.
type GuestType string

const (
	GuestTypeSolo   GuestType = "solo"
	GuestTypeCouple GuestType = "couple"
	GuestTypeFamily GuestType = "family"
	GuestTypeGroup  GuestType = "group"
)

// ValidGuestType reports whether the guest type is one of the known values.
func ValidGuestType(t GuestType) bool {
	switch t {
	case GuestTypeSolo, GuestTypeCouple, GuestTypeFamily, GuestTypeGroup:
		return true
	}
	return false
}

// PrefersFewerRooms reports whether this party should be offered the
// minimal-rooms option first (keep the group together).
func (t GuestType) PrefersFewerRooms() bool {
	return t == GuestTypeFamily || t == GuestTypeGroup
}

// TotalCapacity returns the summed capacity of the given rooms.
func TotalCapacity(rooms []Room) int {
	total := 0
	for _, r := range rooms {
		total += r.Capacity
	}
	return total
}
