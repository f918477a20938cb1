package database

import (
	"context"
)

const getEmailVerification = `-- name: GetEmailVerification :one
SELECT email, verified_at, verify_count, created_at, updated_at
FROM email_verifications
WHERE email = $1
`

func (q *Queries) GetEmailVerification(ctx context.Context, email string) (EmailVerification, error) {
	row := q.db.QueryRow(ctx, getEmailVerification, email)
	var i EmailVerification
	err := row.Scan(
		&i.Email,
		&i.VerifiedAt,
		&i.VerifyCount,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const upsertEmailVerification = `-- name: UpsertEmailVerification :one
INSERT INTO email_verifications (email, verified_at, verify_count)
VALUES ($1, now(), 1)
ON CONFLICT (email) DO UPDATE
SET verified_at  = now(),
    verify_count = email_verifications.verify_count + 1,
    updated_at   = now()
RETURNING email, verified_at, verify_count, created_at, updated_at
`

func (q *Queries) UpsertEmailVerification(ctx context.Context, email string) (EmailVerification, error) {
	row := q.db.QueryRow(ctx, upsertEmailVerification, email)
	var i EmailVerification
	err := row.Scan(
		&i.Email,
		&i.VerifiedAt,
		&i.VerifyCount,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
