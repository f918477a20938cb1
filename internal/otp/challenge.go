// Package otp issues and verifies time-boxed one-time passcodes keyed by an
// identity (an email address). At most one challenge is live per identity.
package otp

import "time"

const (
	CodeLength   = 6
	ExpiryWindow = 10 * time.Minute
	MaxAttempts  = 5
)

// Challenge is the pending code for one identity. Only a hash of the code is
// kept.
type Challenge struct {
	ID        string    `json:"id"`
	Identity  string    `json:"identity"`
	CodeHash  string    `json:"code_hash"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Attempts  int       `json:"attempts"`
}

// Expired reports whether now is strictly past ExpiresAt.
func (c Challenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// AttemptsRemaining never goes below zero.
func (c Challenge) AttemptsRemaining() int {
	return max(MaxAttempts-c.Attempts, 0)
}
