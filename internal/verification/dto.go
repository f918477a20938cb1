package verification

import (
	"strings"
	"time"
)

// sendOTPRequest represents the payload for requesting a new OTP
// @Name SendOTPRequest
type sendOTPRequest struct {
	Email string `json:"email" validate:"required,email" example:"student@example.com"`
}

// messageResponse is a plain success message
// @Name MessageResponse
type messageResponse struct {
	Message string `json:"message" example:"OTP sent successfully to your email"`
}

// cooldownResponse is returned while a previous OTP is still live
// @Name CooldownResponse
type cooldownResponse struct {
	Error                string `json:"error" example:"Please wait 540 seconds before requesting a new OTP"`
	TimeRemainingSeconds int    `json:"timeRemainingSeconds" example:"540"`
}

// verifyOTPRequest represents the payload to check a code
// @Name VerifyOTPRequest
type verifyOTPRequest struct {
	Email string `json:"email" validate:"required,email" example:"student@example.com"`
	// OTP must be exactly 6 characters
	OTP string `json:"otp" validate:"required,len=6" example:"482913"`
}

// verifySuccessResponse carries the verification token
// @Name VerifySuccessResponse
type verifySuccessResponse struct {
	Valid             bool      `json:"valid" example:"true"`
	Message           string    `json:"message" example:"Email verified successfully."`
	VerificationToken string    `json:"verificationToken" example:"eyJhbGciOiJIUzI1Ni..."`
	ExpiresAt         time.Time `json:"expiresAt" example:"2026-01-01T10:30:00Z"`
}

// verifyFailureResponse describes a rejected code
// @Name VerifyFailureResponse
type verifyFailureResponse struct {
	Valid             bool   `json:"valid" example:"false"`
	Error             string `json:"error" example:"Incorrect OTP. You have 4 attempts remaining."`
	AttemptsRemaining int    `json:"attemptsRemaining" example:"4"`
}

// verificationResponse is the stored verification of an email
// @Name VerificationResponse
type verificationResponse struct {
	Email       string    `json:"email" example:"student@example.com"`
	VerifiedAt  time.Time `json:"verifiedAt" example:"2026-01-01T10:00:00Z"`
	VerifyCount int       `json:"verifyCount" example:"1"`
}

func mapRecord(rec Record) verificationResponse {
	return verificationResponse{
		Email:       rec.Email,
		VerifiedAt:  rec.VerifiedAt.UTC(),
		VerifyCount: rec.VerifyCount,
	}
}

// normalizeEmail makes "A@X.com " and "a@x.com" the same identity.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
