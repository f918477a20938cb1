package constants

// Success Messages
const (
	MsgOTPSent       = "OTP sent successfully to your email"
	MsgEmailVerified = "Email verified successfully."
	MsgOTPCleared    = "Pending OTP cancelled"
)

// Verification outcomes
const (
	MsgOTPNotFound        = "No OTP found for this email. Please request a new one."
	MsgOTPExpired         = "OTP has expired. Please request a new one."
	MsgOTPAttemptsExceed  = "Maximum OTP attempts exceeded. Please request a new OTP."
	MsgOTPIncorrectFormat = "Incorrect OTP. You have %d attempts remaining."
)

// Error Messages
const (
	ErrInvalidJSON        = "Invalid request body"
	ErrInvalidEmail       = "Please provide a valid email address"
	ErrInvalidEmailOrCode = "A valid email address and a 6-character OTP are required"
	ErrCooldownFormat     = "Please wait %d seconds before requesting a new OTP"
	ErrGenerateOTP        = "Failed to generate OTP. Please try again."
	ErrEmailUnavailable   = "Email service is currently unavailable. Please try again later."
	ErrInternal           = "Internal server error"
	ErrVerificationFailed = "Email verified but the verification could not be recorded. Please request a new OTP."
	ErrNotVerified        = "No verification record found for this email"
	ErrUnauthorized       = "Missing or invalid authorization header"
	ErrInvalidToken       = "Verification token expired or invalid"
	ErrWrongTokenType     = "Token cannot be used for this endpoint"
	ErrBodyTooLarge       = "Request body too large"
	ErrRateLimited        = "Too many requests. Please slow down."
	ErrOTPRateLimited     = "Too many OTP requests. Try again in a minute."
)
