package specialcharge

import "errors"

var (
	// ErrChargeNotFound is returned when a special charge does not exist.
	ErrChargeNotFound = errors.New("specialcharge.repository: charge not found")

	// ErrBuildQuery is returned when building a SQL query fails.
	ErrBuildQuery = errors.New("specialcharge.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails.
	ErrExecQuery = errors.New("specialcharge.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails.
	ErrScanRow = errors.New("specialcharge.repository: failed to scan row")
)
