// Package calendar projects reservations into display events and keeps a
// filterable view of them for calendar screens.
package calendar

import (
	"fmt"
	"strings"

	"github.com/avlok/LMS-LodgeService/internal/domain"
)

// Project converts reservations into calendar events. The projection is
// total: every reservation yields exactly one event regardless of status.
func Project(reservations []*domain.Reservation) []domain.CalendarEvent {
	events := make([]domain.CalendarEvent, len(reservations))
	for i, r := range reservations {
		events[i] = domain.CalendarEvent{
			ID:    r.ID,
			Title: eventTitle(r),
			Start: r.CheckIn,
			End:   r.CheckOut,
			Color: domain.StatusColor(r.Status),
		}
	}
	return events
}

// eventTitle builds the display title from the public reference and the
// allocated room numbers.
func eventTitle(r *domain.Reservation) string {
	if len(r.Rooms) == 0 {
		return r.Reference
	}
	numbers := make([]string, len(r.Rooms))
	for i, alloc := range r.Rooms {
		numbers[i] = alloc.RoomNumber
	}
	return fmt.Sprintf("%s · %s", r.Reference, strings.Join(numbers, ", "))
}

// FilterRoomsByType returns the rooms of the given type; the "all" sentinel
// returns the input unchanged.
func FilterRoomsByType(rooms []domain.Room, roomType string) []domain.Room {
	if roomType == "" || roomType == domain.FilterAll {
		return rooms
	}
	filtered := make([]domain.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.Type == roomType {
			filtered = append(filtered, room)
		}
	}
	return filtered
}

// FilterReservationsByStatus returns the reservations in the given status;
// the "all" sentinel returns the input unchanged.
func FilterReservationsByStatus(reservations []*domain.Reservation, status string) []*domain.Reservation {
	if status == "" || status == domain.FilterAll {
		return reservations
	}
	filtered := make([]*domain.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if string(r.Status) == status {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
