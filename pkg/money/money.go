// Package money centralizes the minor-unit conversion applied at the storage
// boundary. Amounts are persisted as integers scaled x100 and exposed to the
// rest of the system in display (major) units; every read and write of a
// monetary column must go through this package exactly once.
package money

import (
	"math"
	"strconv"
)

// ToMinor converts a display amount to stored minor units (x100).
func ToMinor(display float64) int64 {
	return int64(math.Round(display * 100))
}

// FromMinor converts stored minor units back to a display amount.
func FromMinor(minor int64) float64 {
	return float64(minor) / 100
}

// Format renders a display amount with two decimals, the way the back-office
// table columns show balances.
func Format(display float64) string {
	return strconv.FormatFloat(display, 'f', 2, 64)
}
