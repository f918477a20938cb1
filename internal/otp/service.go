package otp

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yabeye/edu_verify_backend/pkg/clock"
	"github.com/yabeye/edu_verify_backend/pkg/constants"
	"github.com/yabeye/edu_verify_backend/pkg/random"
)

// Reason tags the outcome of a verification.
type Reason string

const (
	ReasonVerified         Reason = "verified"
	ReasonNotFound         Reason = "not_found"
	ReasonExpired          Reason = "expired"
	ReasonAttemptsExceeded Reason = "attempts_exceeded"
	ReasonIncorrect        Reason = "incorrect"
)

// VerifyResult is the outcome of VerifyOTP. A failed verification is a
// result, not an error.
type VerifyResult struct {
	Valid             bool
	Reason            Reason
	Message           string
	AttemptsRemaining int
}

// Status describes the live challenge of an identity, if any.
type Status struct {
	Exists               bool
	AttemptsRemaining    int
	TimeRemainingSeconds int
}

// Service defines the OTP lifecycle. Errors are reserved for infrastructure
// failures (random source, store).
type Service interface {
	SendOTP(ctx context.Context, identity string) (string, error)
	VerifyOTP(ctx context.Context, identity, candidate string) (VerifyResult, error)
	GetOTPStatus(ctx context.Context, identity string) (Status, error)
	ClearOTP(ctx context.Context, identity string) error
}

type svc struct {
	store  Store
	clock  clock.Clocker
	genOTP func() (string, error)
	pepper string
}

// New creates the OTP service. The pepper is mixed into stored code hashes.
func New(store Store, clk clock.Clocker, pepper string) Service {
	return &svc{
		store:  store,
		clock:  clk,
		genOTP: random.GenerateOTP,
		pepper: pepper,
	}
}

// SendOTP replaces any challenge of identity with a fresh one and returns the
// plaintext code for delivery. Throttling is the caller's job.
func (s *svc) SendOTP(ctx context.Context, identity string) (string, error) {
	code, err := s.genOTP()
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}

	now := s.clock.Now()
	ch := Challenge{
		ID:        uuid.NewString(),
		Identity:  identity,
		CodeHash:  s.hashCode(identity, code),
		IssuedAt:  now,
		ExpiresAt: now.Add(ExpiryWindow),
	}

	if err := s.store.Set(ctx, identity, ch); err != nil {
		return "", fmt.Errorf("store challenge: %w", err)
	}
	return code, nil
}

// VerifyOTP checks candidate against the live challenge. The attempt counter
// is incremented before the comparison, so a correct code still consumes an
// attempt. Success deletes the challenge.
func (s *svc) VerifyOTP(ctx context.Context, identity, candidate string) (VerifyResult, error) {
	now := s.clock.Now()
	candidateHash := s.hashCode(identity, candidate)

	var res VerifyResult
	err := s.store.Update(ctx, identity, func(ch *Challenge) *Challenge {
		switch {
		case ch == nil:
			res = failure(ReasonNotFound, constants.MsgOTPNotFound, 0)
			return nil
		case ch.Expired(now):
			res = failure(ReasonExpired, constants.MsgOTPExpired, 0)
			return nil
		case ch.Attempts >= MaxAttempts:
			res = failure(ReasonAttemptsExceeded, constants.MsgOTPAttemptsExceed, 0)
			return nil
		}

		next := *ch
		next.Attempts++

		if subtle.ConstantTimeCompare([]byte(next.CodeHash), []byte(candidateHash)) != 1 {
			remaining := next.AttemptsRemaining()
			res = failure(ReasonIncorrect, fmt.Sprintf(constants.MsgOTPIncorrectFormat, remaining), remaining)
			return &next
		}

		res = VerifyResult{
			Valid:             true,
			Reason:            ReasonVerified,
			Message:           constants.MsgEmailVerified,
			AttemptsRemaining: next.AttemptsRemaining(),
		}
		return nil
	})
	if err != nil {
		return VerifyResult{}, fmt.Errorf("verify otp: %w", err)
	}
	return res, nil
}

// GetOTPStatus reports the live challenge. An expired challenge is deleted
// and reported as absent.
func (s *svc) GetOTPStatus(ctx context.Context, identity string) (Status, error) {
	now := s.clock.Now()

	var st Status
	err := s.store.Update(ctx, identity, func(ch *Challenge) *Challenge {
		if ch == nil || ch.Expired(now) {
			st = Status{}
			return nil
		}
		st = Status{
			Exists:               true,
			AttemptsRemaining:    ch.AttemptsRemaining(),
			TimeRemainingSeconds: ceilSeconds(ch.ExpiresAt.Sub(now)),
		}
		return ch
	})
	if err != nil {
		return Status{}, fmt.Errorf("otp status: %w", err)
	}
	return st, nil
}

// ClearOTP drops the challenge of identity. Absent challenges are fine.
func (s *svc) ClearOTP(ctx context.Context, identity string) error {
	if err := s.store.Delete(ctx, identity); err != nil {
		return fmt.Errorf("clear otp: %w", err)
	}
	return nil
}

// hashCode binds the code to its identity so equal codes of different
// identities never share a hash.
func (s *svc) hashCode(identity, code string) string {
	sum := sha256.Sum256([]byte(identity + ":" + code + ":" + s.pepper))
	return hex.EncodeToString(sum[:])
}

func failure(reason Reason, msg string, remaining int) VerifyResult {
	return VerifyResult{Reason: reason, Message: msg, AttemptsRemaining: remaining}
}

func ceilSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}
