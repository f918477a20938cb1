package database

import (
	"context"
)

type Querier interface {
	GetEmailVerification(ctx context.Context, email string) (EmailVerification, error)
	UpsertEmailVerification(ctx context.Context, email string) (EmailVerification, error)
}

var _ Querier = (*Queries)(nil)
