// Package clock supplies the current instant to code that must be testable
// against a fixed time.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// Func adapts a plain function to Clock.
type Func func() time.Time

func (f Func) Now() time.Time {
	return f()
}

// System returns the wall clock in UTC.
func System() Clock {
	return Func(func() time.Time { return time.Now().UTC() })
}

// Fixed always returns t.
func Fixed(t time.Time) Clock {
	return Func(func() time.Time { return t })
}

// OrSystem returns c, or the system clock when c is nil.
func OrSystem(c Clock) Clock {
	if c == nil {
		return System()
	}
	return c
}
