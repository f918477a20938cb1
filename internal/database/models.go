package database

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type EmailVerification struct {
	Email       string             `json:"email"`
	VerifiedAt  pgtype.Timestamptz `json:"verified_at"`
	VerifyCount int32              `json:"verify_count"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}
