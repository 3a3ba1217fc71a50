package domain

// Business validation constants
const (
	MinGuestCount = 1
	MaxGuestCount = 50 // hard cap for one reservation

	MaxStayNights = 90

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// FilterAll is the sentinel filter value meaning "no filter applied".
const FilterAll = "all"

// InactiveStatuses lists statuses that no longer block room availability.
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
	StatusCheckedOut,
}

// ActiveStatuses lists statuses that block room availability.
var ActiveStatuses = []ReservationStatus{
	StatusReservation,
	StatusBooking,
	StatusCheckedIn,
}
