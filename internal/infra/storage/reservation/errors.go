package reservation

import "errors"

var (
	// ErrReservationNotFound is returned when a reservation does not exist.
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrStatusConflict is returned when a guarded status update matches no
	// row because the reservation moved to another status concurrently.
	ErrStatusConflict = errors.New("reservation.repository: reservation status changed concurrently")

	// ErrBuildQuery is returned when building a SQL query fails.
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails.
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails.
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
