// Package clock supplies the instant stamped on new todo items.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// UTC reads the system clock. Postgres keeps microseconds, so the reading is
// truncated to match what a round-trip returns.
type UTC struct{}

func (UTC) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// Fixed always returns the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f).UTC()
}

// Func adapts a plain function.
type Func func() time.Time

func (f Func) Now() time.Time {
	return f()
}
