// Package money provides fixed-point currency arithmetic in integer minor
// units. All tariff and charge math in the service is done in Cents so that
// totals are exact and reproducible.
package money

import "fmt"

// Cents is a monetary amount in minor currency units.
type Cents int64

// FromMajor converts whole currency units into Cents.
func FromMajor(units int64) Cents {
	return Cents(units * 100)
}

// Mul multiplies the amount by an integer factor.
func (c Cents) Mul(n int64) Cents {
	return c * Cents(n)
}

// Percent returns the given whole-percent share of the amount.
// Integer division truncates toward zero.
func (c Cents) Percent(p int64) Cents {
	return c * Cents(p) / 100
}

// String formats the amount as major.minor, e.g. "125.00".
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
