// Package clock stamps catalog loads and stores. Tests swap in Fixed.
package clock

import "time"

// Clock reports the current instant
type Clock interface {
	Now() time.Time
}

// New returns the wall clock in UTC
func New() Clock {
	return wall{}
}

type wall struct{}

func (wall) Now() time.Time {
	return time.Now().UTC()
}

// Fixed always reports At
type Fixed struct {
	At time.Time
}

// Now implements Clock
func (c *Fixed) Now() time.Time {
	return c.At
}
