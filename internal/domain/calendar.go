package domain

import "time"

// CalendarEvent is the display projection of a reservation.
// Derived, never persisted.
type CalendarEvent struct {
	ID    int64
	Title string
	Start time.Time
	End   time.Time
	Color string
}

// Status colors used by the calendar views.
const (
	ColorReservation = "#f59e0b" // amber
	ColorBooking     = "#3b82f6" // blue
	ColorCheckedIn   = "#22c55e" // green
	ColorCheckedOut  = "#9ca3af" // gray
	ColorCancelled   = "#ef4444" // red
	ColorNeutral     = "#64748b" // fallback for unknown statuses
)

var statusColors = map[ReservationStatus]string{
	StatusReservation: ColorReservation,
	StatusBooking:     ColorBooking,
	StatusCheckedIn:   ColorCheckedIn,
	StatusCheckedOut:  ColorCheckedOut,
	StatusCancelled:   ColorCancelled,
}

// StatusColor maps a reservation status to its display color.
// Total: unknown statuses get the neutral color rather than failing.
func StatusColor(status ReservationStatus) string {
	if color, ok := statusColors[status]; ok {
		return color
	}
	return ColorNeutral
}
