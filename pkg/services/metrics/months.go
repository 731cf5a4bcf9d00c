package metrics

import "time"

// MonthsBetween returns the number of whole calendar months from earlier to later, truncated
// toward zero. A month is complete once the same day of month (clamped to the month's last day)
// and time of day are reached.
func MonthsBetween(later, earlier time.Time) int {
	later = later.In(earlier.Location())
	sign := 1
	if later.Before(earlier) {
		later, earlier = earlier, later
		sign = -1
	}

	months := (later.Year()-earlier.Year())*12 + int(later.Month()) - int(earlier.Month())
	if months > 0 && addMonths(earlier, months).After(later) {
		months--
	}
	return sign * months
}

func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := daysIn(first); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// DaysBetween counts whole 24h days from earlier to later.
func DaysBetween(later, earlier time.Time) int {
	return int(later.Sub(earlier) / (24 * time.Hour))
}
