// Package clock provides the time source used by services and usecases, so
// tests can substitute a fixed one.
package clock

import "time"

// System reads the wall clock.
type System struct{}

// Now returns the current time.
func (System) Now() time.Time {
	return time.Now()
}
