// Package clock lets expiry math run against an injected time source.
package clock

import "time"

// Clocker returns the current time. Production code uses System; tests swap in
// a fixed or advancing clock.
type Clocker interface {
	Now() time.Time
}

type systemClock struct{}

// System returns a Clocker backed by time.Now.
func System() Clocker {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}
