package get_available_rooms

import (
	"time"

	"github.com/avlok/LMS-LodgeService/internal/domain"
)

// Request asks for the rooms available for a stay.
type Request struct {
	CheckIn    time.Time        // stay start (date only)
	CheckOut   time.Time        // stay end (date only, exclusive)
	GuestCount int              // total guests to accommodate
	GuestType  domain.GuestType // party category
}

// Response carries the available rooms for the requested stay.
type Response struct {
	CheckIn       time.Time
	CheckOut      time.Time
	Nights        int
	Rooms         []domain.Room
	TotalCapacity int // summed capacity; below GuestCount means no full cover exists
}
