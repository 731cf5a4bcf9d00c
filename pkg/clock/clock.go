package clock

import "time"

// Clock supplies the current time to date-based rules.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns the wall clock.
func System() Clock { return systemClock{} }

// Fixed is a Clock frozen at a single instant.
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }

// OrSystem returns c, or the wall clock when c is nil.
func OrSystem(c Clock) Clock {
	if c == nil {
		return System()
	}
	return c
}
