package generate_allocations

import (
	"time"

	"github.com/avlok/LMS-LodgeService/internal/domain"
)

// Request asks for candidate room allocations for a stay.
type Request struct {
	CheckIn    time.Time
	CheckOut   time.Time
	GuestCount int
	GuestType  domain.GuestType
}

// Response carries the candidate options. Zero options is a first-class
// result meaning no room combination can satisfy the request.
type Response struct {
	CheckIn  time.Time
	CheckOut time.Time
	Nights   int
	Options  []domain.AllocationOption
}
