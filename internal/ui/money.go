package ui

import "strconv"

// Money prints v after the currency prefix using the shortest decimal form
// that round-trips, so 100 prints as "100" and 12.5 as "12.5".
func Money(currency string, v float64) string {
	return currency + strconv.FormatFloat(v, 'f', -1, 64)
}
