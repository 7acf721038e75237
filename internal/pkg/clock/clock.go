// Package clock provides time utilities for the application
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=clockmock github.com/dungeonforge/dungeon-api/internal/pkg/clock Clock

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed implements Clock with a frozen time, for tests
type Fixed struct {
	T time.Time
}

// Now returns the fixed time
func (c *Fixed) Now() time.Time {
	return c.T
}
