package domain

import "github.com/avlok/LMS-LodgeService/pkg/money"

// RoomAllocation assigns a number of guests to a specific room for a stay.
// Room data is denormalized at allocation time so the allocation stays valid
// even if the room record is later edited.
type RoomAllocation struct {
	ID            string // uuid, assigned when the allocation enters a selector or reservation
	RoomID        int64
	RoomNumber    string
	RoomType      string
	Capacity      int
	NightlyTariff money.Cents
	GuestCount    int
}

// StrategyName identifies the allocation strategy that produced an option.
type StrategyName string

const (
	StrategyComfortFirst   StrategyName = "comfort_first"
	StrategyPriceOptimized StrategyName = "price_optimized"
	StrategyMinimalRooms   StrategyName = "minimal_rooms"
)

// AllocationOption is one candidate allocation set produced by a strategy.
// Multiple options coexist so the caller can switch without recomputation.
type AllocationOption struct {
	Strategy    StrategyName
	Rooms       []RoomAllocation
	TotalTariff money.Cents
	TotalGuests int
}

// AllocationTotalTariff sums the nightly tariffs of the given allocations.
func AllocationTotalTariff(allocations []RoomAllocation) money.Cents {
	var total money.Cents
	for _, a := range allocations {
		total += a.NightlyTariff
	}
	return total
}

// AllocationTotalGuests sums the guests assigned across the allocations.
func AllocationTotalGuests(allocations []RoomAllocation) int {
	total := 0
	for _, a := range allocations {
		total += a.GuestCount
	}
	return total
}
