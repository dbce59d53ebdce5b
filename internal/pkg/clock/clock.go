// Package clock stamps saved games
package clock

import "time"

// Clock reports the current instant
type Clock interface {
	Now() time.Time
}

// Real reads the system clock
type Real struct{}

func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns the system clock
func New() Clock {
	return &Real{}
}

// Fixed always reports the same instant, so saved snapshots compare equal in tests
type Fixed struct {
	At time.Time
}

func (c *Fixed) Now() time.Time {
	return c.At
}
