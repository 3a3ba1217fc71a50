package generate_allocations

import (
	"sort"

	"github.com/avlok/LMS-LodgeService/internal/domain"
	"github.com/avlok/LMS-LodgeService/pkg/money"
)

// The three allocation strategies. All are pure and deterministic: given the
// same room set and guest count they produce the same allocation sequence.
// Each returns allocations summing exactly to guestCount with every room's
// guest_count within its capacity, or an empty list when no combination of
// the given rooms can cover the requested guests.

// comfortFirst prefers rooms with larger capacity headroom relative to the
// assigned guests. It covers the guest count with the largest-capacity rooms
// (ties broken by ascending tariff, then room number) and spreads guests
// evenly across them so no room is packed while another sits near-empty.
func comfortFirst(rooms []domain.Room, guestCount int) []domain.RoomAllocation {
	if guestCount < 1 || domain.TotalCapacity(rooms) < guestCount {
		return []domain.RoomAllocation{}
	}

	sorted := sortedByHeadroom(rooms)

	// Minimal prefix of the headroom ordering that covers the guests.
	selected := make([]domain.Room, 0)
	capacity := 0
	for _, r := range sorted {
		selected = append(selected, r)
		capacity += r.Capacity
		if capacity >= guestCount {
			break
		}
	}

	// Spread guests one at a time onto the room with the most remaining
	// headroom; earlier (larger, cheaper) rooms win ties.
	assigned := make([]int, len(selected))
	for g := 0; g < guestCount; g++ {
		best := -1
		bestHeadroom := 0
		for i, r := range selected {
			headroom := r.Capacity - assigned[i]
			if headroom > bestHeadroom {
				best = i
				bestHeadroom = headroom
			}
		}
		assigned[best]++
	}

	allocations := make([]domain.RoomAllocation, 0, len(selected))
	for i, r := range selected {
		if assigned[i] == 0 {
			continue
		}
		allocations = append(allocations, newAllocation(r, assigned[i]))
	}

	return allocations
}

// minimalRooms minimizes the number of rooms used; among combinations of the
// minimal size it picks the one with the lowest total tariff, then the
// lexicographically smallest room-number sequence.
func minimalRooms(rooms []domain.Room, guestCount int) []domain.RoomAllocation {
	if guestCount < 1 || domain.TotalCapacity(rooms) < guestCount {
		return []domain.RoomAllocation{}
	}

	// The minimal count is how many of the largest capacities are needed.
	sorted := sortedByHeadroom(rooms)
	minCount := 0
	capacity := 0
	for _, r := range sorted {
		minCount++
		capacity += r.Capacity
		if capacity >= guestCount {
			break
		}
	}

	byNumber := sortedByNumber(rooms)

	var best []domain.Room
	var current []domain.Room

	var search func(start, covered int)
	search = func(start, covered int) {
		if len(current) == minCount {
			if covered >= guestCount && betterTariffThenNumbers(current, best) {
				best = append([]domain.Room(nil), current...)
			}
			return
		}
		for i := start; i < len(byNumber); i++ {
			// Not enough rooms left to reach minCount.
			if len(byNumber)-i < minCount-len(current) {
				break
			}
			current = append(current, byNumber[i])
			search(i+1, covered+byNumber[i].Capacity)
			current = current[:len(current)-1]
		}
	}
	search(0, 0)

	return packGuests(best, guestCount)
}

// priceOptimized selects the room combination minimizing total tariff for the
// requested guest count; ties prefer fewer rooms, then the lexicographically
// smallest room-number sequence.
func priceOptimized(rooms []domain.Room, guestCount int) []domain.RoomAllocation {
	if guestCount < 1 || domain.TotalCapacity(rooms) < guestCount {
		return []domain.RoomAllocation{}
	}

	byNumber := sortedByNumber(rooms)

	// Suffix capacity sums for pruning branches that cannot cover the guests.
	suffixCapacity := make([]int, len(byNumber)+1)
	for i := len(byNumber) - 1; i >= 0; i-- {
		suffixCapacity[i] = suffixCapacity[i+1] + byNumber[i].Capacity
	}

	var best []domain.Room
	var bestTariff money.Cents
	haveBest := false

	var current []domain.Room
	var currentTariff money.Cents

	var search func(start, covered int)
	search = func(start, covered int) {
		if covered >= guestCount {
			if !haveBest || betterPrice(current, currentTariff, best, bestTariff) {
				best = append([]domain.Room(nil), current...)
				bestTariff = currentTariff
				haveBest = true
			}
			return
		}
		if covered+suffixCapacity[start] < guestCount {
			return
		}
		if haveBest && currentTariff > bestTariff {
			return
		}
		for i := start; i < len(byNumber); i++ {
			current = append(current, byNumber[i])
			currentTariff += byNumber[i].NightlyTariff
			search(i+1, covered+byNumber[i].Capacity)
			currentTariff -= byNumber[i].NightlyTariff
			current = current[:len(current)-1]
		}
	}
	search(0, 0)

	return packGuests(best, guestCount)
}

// Helpers

func newAllocation(r domain.Room, guests int) domain.RoomAllocation {
	return domain.RoomAllocation{
		RoomID:        r.ID,
		RoomNumber:    r.Number,
		RoomType:      r.Type,
		Capacity:      r.Capacity,
		NightlyTariff: r.NightlyTariff,
		GuestCount:    guests,
	}
}

// sortedByHeadroom orders rooms capacity desc, tariff asc, number asc.
func sortedByHeadroom(rooms []domain.Room) []domain.Room {
	sorted := append([]domain.Room(nil), rooms...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Capacity != sorted[j].Capacity {
			return sorted[i].Capacity > sorted[j].Capacity
		}
		if sorted[i].NightlyTariff != sorted[j].NightlyTariff {
			return sorted[i].NightlyTariff < sorted[j].NightlyTariff
		}
		return sorted[i].Number < sorted[j].Number
	})
	return sorted
}

// sortedByNumber orders rooms by display number ascending.
func sortedByNumber(rooms []domain.Room) []domain.Room {
	sorted := append([]domain.Room(nil), rooms...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Number < sorted[j].Number
	})
	return sorted
}

func totalTariff(rooms []domain.Room) money.Cents {
	var total money.Cents
	for _, r := range rooms {
		total += r.NightlyTariff
	}
	return total
}

// betterTariffThenNumbers reports whether candidate beats incumbent on total
// tariff, then on room-number sequence. A nil incumbent always loses.
func betterTariffThenNumbers(candidate, incumbent []domain.Room) bool {
	if incumbent == nil {
		return true
	}
	ct, it := totalTariff(candidate), totalTariff(incumbent)
	if ct != it {
		return ct < it
	}
	return compareNumbers(candidate, incumbent) < 0
}

// betterPrice reports whether candidate beats incumbent on total tariff, then
// room count, then room-number sequence.
func betterPrice(candidate []domain.Room, candidateTariff money.Cents, incumbent []domain.Room, incumbentTariff money.Cents) bool {
	if candidateTariff != incumbentTariff {
		return candidateTariff < incumbentTariff
	}
	if len(candidate) != len(incumbent) {
		return len(candidate) < len(incumbent)
	}
	return compareNumbers(candidate, incumbent) < 0
}

// compareNumbers compares the sorted room-number sequences of two sets.
func compareNumbers(a, b []domain.Room) int {
	an := make([]string, len(a))
	for i, r := range a {
		an[i] = r.Number
	}
	bn := make([]string, len(b))
	for i, r := range b {
		bn[i] = r.Number
	}
	sort.Strings(an)
	sort.Strings(bn)

	for i := 0; i < len(an) && i < len(bn); i++ {
		if an[i] != bn[i] {
			if an[i] < bn[i] {
				return -1
			}
			return 1
		}
	}
	return len(an) - len(bn)
}

// packGuests fills the chosen rooms capacity-first, the last room absorbing
// the remainder. Rooms left without guests are dropped.
func packGuests(rooms []domain.Room, guestCount int) []domain.RoomAllocation {
	if rooms == nil {
		return []domain.RoomAllocation{}
	}

	ordered := sortedByHeadroom(rooms)
	allocations := make([]domain.RoomAllocation, 0, len(ordered))
	remaining := guestCount

	for _, r := range ordered {
		if remaining == 0 {
			break
		}
		guests := r.Capacity
		if guests > remaining {
			guests = remaining
		}
		remaining -= guests
		allocations = append(allocations, newAllocation(r, guests))
	}

	if remaining > 0 {
		// Chosen set cannot cover the guests; callers prevent this.
		return []domain.RoomAllocation{}
	}

	return allocations
}
