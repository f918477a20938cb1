// Package verification exposes the OTP endpoints and keeps a durable record
// of every email that completed verification.
package verification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	repo "github.com/yabeye/edu_verify_backend/internal/database"
)

var ErrNotVerified = errors.New("email not verified")

// Record is the persisted verification state of an email.
type Record struct {
	Email       string
	VerifiedAt  time.Time
	VerifyCount int
}

// Service defines the exported behavior of the verification module
type Service interface {
	MarkVerified(ctx context.Context, email string) (Record, error)
	GetVerification(ctx context.Context, email string) (Record, error)
}

type svc struct {
	repo repo.Querier
}

// New creates a new verification service implementation
func New(repo repo.Querier) Service {
	return &svc{
		repo: repo,
	}
}

func (s *svc) MarkVerified(ctx context.Context, email string) (Record, error) {
	row, err := s.repo.UpsertEmailVerification(ctx, email)
	if err != nil {
		return Record{}, fmt.Errorf("upsert email verification: %w", err)
	}
	return mapRow(row), nil
}

func (s *svc) GetVerification(ctx context.Context, email string) (Record, error) {
	row, err := s.repo.GetEmailVerification(ctx, email)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, ErrNotVerified
	}
	if err != nil {
		return Record{}, fmt.Errorf("get email verification: %w", err)
	}
	return mapRow(row), nil
}

func mapRow(row repo.EmailVerification) Record {
	return Record{
		Email:       row.Email,
		VerifiedAt:  row.VerifiedAt.Time,
		VerifyCount: int(row.VerifyCount),
	}
}
