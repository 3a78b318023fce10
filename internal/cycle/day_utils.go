package cycle

import "time"

// dateOnly rebuilds the calendar date in UTC. Record dates and query dates
// can arrive in different locations; pinning one zone keeps midnight-to-
// midnight subtraction an exact multiple of 24h, with no DST short days.
func dateOnly(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the signed whole-day distance from a to b.
func daysBetween(a time.Time, b time.Time) int {
	return int(dateOnly(b).Sub(dateOnly(a)).Hours() / 24)
}

func absInt(value int) int {
	if value < 0 {
		return -value
	}
	return value
}

// floorDiv divides rounding toward negative infinity, so projections behind
// the anchor cycle land on the start of the covering span rather than past it.
func floorDiv(a int, b int) int {
	quotient := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		quotient--
	}
	return quotient
}

func roundMean(total int, count int) int {
	if count == 0 {
		return 0
	}
	return int(float64(total)/float64(count) + 0.5)
}
