package generate_allocations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlok/LMS-LodgeService/internal/domain"
	"github.com/avlok/LMS-LodgeService/pkg/money"
)

func room(id int64, number string, capacity int, tariff int64) domain.Room {
	return domain.Room{
		ID:            id,
		Number:        number,
		Type:          "standard",
		Capacity:      capacity,
		NightlyTariff: money.Cents(tariff),
	}
}

func testRooms() []domain.Room {
	return []domain.Room{
		room(1, "101", 2, 8000),
		room(2, "102", 2, 8000),
		room(3, "201", 4, 15000),
		room(4, "202", 4, 14000),
		room(5, "301", 6, 20000),
	}
}

func totalGuests(allocations []domain.RoomAllocation) int {
	return domain.AllocationTotalGuests(allocations)
}

func assertValidAllocation(t *testing.T, allocations []domain.RoomAllocation, guestCount int) {
	t.Helper()
	assert.Equal(t, guestCount, totalGuests(allocations))
	seen := map[int64]bool{}
	for _, alloc := range allocations {
		assert.GreaterOrEqual(t, alloc.GuestCount, 1)
		assert.LessOrEqual(t, alloc.GuestCount, alloc.Capacity)
		assert.False(t, seen[alloc.RoomID], "room %d used twice", alloc.RoomID)
		seen[alloc.RoomID] = true
	}
}

func TestComfortFirst_CoversGuestsWithinCapacity(t *testing.T) {
	for guests := 1; guests <= 18; guests++ {
		allocations := comfortFirst(testRooms(), guests)
		assertValidAllocation(t, allocations, guests)
	}
}

func TestComfortFirst_SpreadsGuests(t *testing.T) {
	// 8 guests over the 6-cap and cheaper 4-cap room: spread 5/3 rather
	// than packing 6/2.
	allocations := comfortFirst(testRooms(), 8)
	require.Len(t, allocations, 2)

	byNumber := map[string]int{}
	for _, alloc := range allocations {
		byNumber[alloc.RoomNumber] = alloc.GuestCount
	}
	assert.Equal(t, 5, byNumber["301"])
	assert.Equal(t, 3, byNumber["202"])
}

func TestMinimalRooms_UsesFewestRooms(t *testing.T) {
	allocations := minimalRooms(testRooms(), 6)
	require.Len(t, allocations, 1)
	assert.Equal(t, "301", allocations[0].RoomNumber)
	assert.Equal(t, 6, allocations[0].GuestCount)

	allocations = minimalRooms(testRooms(), 10)
	assert.Len(t, allocations, 2)
	assertValidAllocation(t, allocations, 10)
}

func TestMinimalRooms_PrefersCheaperAmongMinimal(t *testing.T) {
	// 4 guests fit in one room: 201 (15000), 202 (14000) or 301 (20000).
	// The cheapest single room wins.
	allocations := minimalRooms(testRooms(), 4)
	require.Len(t, allocations, 1)
	assert.Equal(t, "202", allocations[0].RoomNumber)
}

func TestPriceOptimized_MinimizesTotalTariff(t *testing.T) {
	// 4 guests: two doubles cost 16000, room 202 costs 14000.
	allocations := priceOptimized(testRooms(), 4)
	require.Len(t, allocations, 1)
	assert.Equal(t, "202", allocations[0].RoomNumber)

	// 6 guests: 301 alone at 20000 beats 202 + a double at 22000.
	allocations = priceOptimized(testRooms(), 6)
	require.Len(t, allocations, 1)
	assert.Equal(t, "301", allocations[0].RoomNumber)
}

func TestPriceOptimized_ChoosesCheaperSplitOverSingleRoom(t *testing.T) {
	rooms := []domain.Room{
		room(1, "101", 2, 3000),
		room(2, "102", 2, 3000),
		room(3, "201", 4, 9000),
	}
	// Two doubles at 6000 beat the quad at 9000.
	allocations := priceOptimized(rooms, 4)
	require.Len(t, allocations, 2)
	assert.Equal(t, money.Cents(6000), domain.AllocationTotalTariff(allocations))
	assertValidAllocation(t, allocations, 4)
}

func TestStrategies_GuestCountExceedsCapacity(t *testing.T) {
	rooms := testRooms() // total capacity 18
	assert.Empty(t, comfortFirst(rooms, 19))
	assert.Empty(t, priceOptimized(rooms, 19))
	assert.Empty(t, minimalRooms(rooms, 19))
}

func TestStrategies_NoRooms(t *testing.T) {
	assert.Empty(t, comfortFirst(nil, 2))
	assert.Empty(t, priceOptimized(nil, 2))
	assert.Empty(t, minimalRooms(nil, 2))
}

func TestStrategies_Deterministic(t *testing.T) {
	for _, strategy := range []func([]domain.Room, int) []domain.RoomAllocation{
		comfortFirst, priceOptimized, minimalRooms,
	} {
		first := strategy(testRooms(), 7)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, strategy(testRooms(), 7))
		}
	}
}

func TestPriceOptimized_NeverCostsMoreThanComfortFirst(t *testing.T) {
	for guests := 1; guests <= 18; guests++ {
		cheapest := priceOptimized(testRooms(), guests)
		comfortable := comfortFirst(testRooms(), guests)

		assertValidAllocation(t, cheapest, guests)
		assertValidAllocation(t, comfortable, guests)
		assert.LessOrEqual(t,
			domain.AllocationTotalTariff(cheapest),
			domain.AllocationTotalTariff(comfortable),
			"guests=%d", guests)
	}
}

func TestStrategies_ExactCapacityFit(t *testing.T) {
	allocations := comfortFirst(testRooms(), 18)
	assertValidAllocation(t, allocations, 18)
	assert.Len(t, allocations, 5)

	allocations = minimalRooms(testRooms(), 18)
	assertValidAllocation(t, allocations, 18)
	assert.Len(t, allocations, 5)
}
