package verification

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/yabeye/edu_verify_backend/internal/middlewares"
	"github.com/yabeye/edu_verify_backend/internal/otp"
	"github.com/yabeye/edu_verify_backend/pkg/auth"
	"github.com/yabeye/edu_verify_backend/pkg/clock"
	"github.com/yabeye/edu_verify_backend/pkg/constants"
	"github.com/yabeye/edu_verify_backend/pkg/json"
	"github.com/yabeye/edu_verify_backend/pkg/messenger"
)

const mailSubject = "Your verification code"

type handler struct {
	otp       otp.Service
	service   Service
	logger    *slog.Logger
	validate  *validator.Validate
	messenger messenger.Provider
	auth      auth.TokenManager
	clock     clock.Clocker
}

type Handler interface {
	SendOTP(w http.ResponseWriter, r *http.Request)
	VerifyOTP(w http.ResponseWriter, r *http.Request)
	GetVerification(w http.ResponseWriter, r *http.Request)
	CancelOTP(w http.ResponseWriter, r *http.Request)
}

// NewHandler creates a new verification handler with dependencies
func NewHandler(otpSvc otp.Service, service Service, logger *slog.Logger, messenger messenger.Provider,
	tokenManager auth.TokenManager, clk clock.Clocker,
) Handler {
	return &handler{
		otp:       otpSvc,
		service:   service,
		logger:    logger,
		validate:  validator.New(),
		messenger: messenger,
		auth:      tokenManager,
		clock:     clk,
	}
}

// SendOTP godoc
// @Summary      Send OTP to email
// @Description  Issues a 6-digit code valid for 10 minutes and mails it. A new code cannot be requested while the previous one is live.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      sendOTPRequest  true  "Email address"
// @Success      200      {object}  messageResponse
// @Failure      400      {object}  json.ErrorResponse "Invalid JSON or email"
// @Failure      429      {object}  cooldownResponse "Previous OTP still live"
// @Failure      500      {object}  json.ErrorResponse "Generation, storage or delivery failure"
// @Router       /api/v1/auth/send-otp [post]
func (h *handler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req sendOTPRequest
	if err := json.Read(r, &req); err != nil {
		h.logger.Warn("failed to decode request", "error", err)
		json.WriteError(w, http.StatusBadRequest, constants.ErrInvalidJSON)
		return
	}

	req.Email = normalizeEmail(req.Email)
	if err := h.validate.Struct(req); err != nil {
		json.WriteError(w, http.StatusBadRequest, constants.ErrInvalidEmail)
		return
	}

	ctx := r.Context()

	status, err := h.otp.GetOTPStatus(ctx, req.Email)
	if err != nil {
		h.logger.Error("otp status lookup failed", "email", req.Email, "error", err)
		json.WriteError(w, http.StatusInternalServerError, constants.ErrInternal)
		return
	}
	if status.Exists && status.TimeRemainingSeconds > 0 {
		json.Write(w, http.StatusTooManyRequests, cooldownResponse{
			Error:                fmt.Sprintf(constants.ErrCooldownFormat, status.TimeRemainingSeconds),
			TimeRemainingSeconds: status.TimeRemainingSeconds,
		})
		return
	}

	code, err := h.otp.SendOTP(ctx, req.Email)
	if err != nil {
		h.logger.Error("otp issue failed", "email", req.Email, "error", err)
		json.WriteError(w, http.StatusInternalServerError, constants.ErrGenerateOTP)
		return
	}

	msg := messenger.Message{
		To:      req.Email,
		Subject: mailSubject,
		Body:    fmt.Sprintf("Your verification code is %s. It is valid for 10 minutes.", code),
	}

	// The stored challenge stays; the user can retry once the cooldown ends.
	if err := h.messenger.Send(ctx, msg); err != nil {
		h.logger.Error("failed to deliver otp", "email", req.Email, "error", err)
		json.WriteError(w, http.StatusInternalServerError, constants.ErrEmailUnavailable)
		return
	}

	h.logger.Info("otp sent", "email", req.Email)
	json.Write(w, http.StatusOK, messageResponse{Message: constants.MsgOTPSent})
}

// VerifyOTP godoc
// @Summary      Verify OTP
// @Description  Checks the code. Every call consumes one of the 5 attempts. On success the email is recorded as verified and a verification token is returned.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      verifyOTPRequest  true  "Email and 6-character code"
// @Success      200      {object}  verifySuccessResponse
// @Failure      400      {object}  verifyFailureResponse "Invalid input or rejected code"
// @Failure      500      {object}  json.ErrorResponse "Internal Server Error"
// @Router       /api/v1/auth/verify-otp [post]
func (h *handler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req verifyOTPRequest
	if err := json.Read(r, &req); err != nil {
		json.WriteError(w, http.StatusBadRequest, constants.ErrInvalidJSON)
		return
	}

	req.Email = normalizeEmail(req.Email)
	if err := h.validate.Struct(req); err != nil {
		json.WriteError(w, http.StatusBadRequest, constants.ErrInvalidEmailOrCode)
		return
	}

	ctx := r.Context()

	res, err := h.otp.VerifyOTP(ctx, req.Email, req.OTP)
	if err != nil {
		h.logger.Error("otp verification failed", "email", req.Email, "error", err)
		json.WriteError(w, http.StatusInternalServerError, constants.ErrInternal)
		return
	}

	if !res.Valid {
		remaining := res.AttemptsRemaining
		if status, err := h.otp.GetOTPStatus(ctx, req.Email); err != nil {
			h.logger.Warn("otp status lookup failed", "email", req.Email, "error", err)
		} else {
			remaining = status.AttemptsRemaining
		}

		h.logger.Info("otp rejected", "email", req.Email, "reason", res.Reason)
		json.Write(w, http.StatusBadRequest, verifyFailureResponse{
			Valid:             false,
			Error:             res.Message,
			AttemptsRemaining: remaining,
		})
		return
	}

	// The code is consumed at this point; failures below ask for a new one.
	if _, err := h.service.MarkVerified(ctx, req.Email); err != nil {
		h.logger.Error("failed to record verification", "email", req.Email, "error", err)
		json.WriteError(w, http.StatusInternalServerError, constants.ErrVerificationFailed)
		return
	}

	token, err := h.auth.GenerateVerificationToken(req.Email, h.clock.Now())
	if err != nil {
		h.logger.Error("failed to generate token", "email", req.Email, "error", err)
		json.WriteError(w, http.StatusInternalServerError, constants.ErrInternal)
		return
	}

	h.logger.Info("email verified", "email", req.Email)
	json.Write(w, http.StatusOK, verifySuccessResponse{
		Valid:             true,
		Message:           res.Message,
		VerificationToken: token.Token,
		ExpiresAt:         token.ExpiresAt.UTC(),
	})
}

// GetVerification godoc
// @Summary      Get verification record
// @Description  Returns when the token's email was last verified and how often.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  verificationResponse
// @Failure      401  {object}  json.ErrorResponse "Missing or invalid token"
// @Failure      403  {object}  json.ErrorResponse "Wrong token type"
// @Failure      404  {object}  json.ErrorResponse "No verification record"
// @Failure      500  {object}  json.ErrorResponse "Internal Server Error"
// @Router       /api/v1/auth/verification [get]
func (h *handler) GetVerification(w http.ResponseWriter, r *http.Request) {
	email, ok := middlewares.EmailFromContext(r.Context())
	if !ok {
		json.WriteError(w, http.StatusUnauthorized, constants.ErrUnauthorized)
		return
	}

	rec, err := h.service.GetVerification(r.Context(), email)
	if errors.Is(err, ErrNotVerified) {
		json.WriteError(w, http.StatusNotFound, constants.ErrNotVerified)
		return
	}
	if err != nil {
		h.logger.Error("failed to load verification", "email", email, "error", err)
		json.WriteError(w, http.StatusInternalServerError, constants.ErrInternal)
		return
	}

	json.Write(w, http.StatusOK, mapRecord(rec))
}

// CancelOTP godoc
// @Summary      Cancel pending OTP
// @Description  Drops any pending code for the token's email.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  json.ErrorResponse "Missing or invalid token"
// @Failure      403  {object}  json.ErrorResponse "Wrong token type"
// @Failure      500  {object}  json.ErrorResponse "Internal Server Error"
// @Router       /api/v1/auth/otp [delete]
func (h *handler) CancelOTP(w http.ResponseWriter, r *http.Request) {
	email, ok := middlewares.EmailFromContext(r.Context())
	if !ok {
		json.WriteError(w, http.StatusUnauthorized, constants.ErrUnauthorized)
		return
	}

	if err := h.otp.ClearOTP(r.Context(), email); err != nil {
		h.logger.Error("failed to clear otp", "email", email, "error", err)
		json.WriteError(w, http.StatusInternalServerError, constants.ErrInternal)
		return
	}

	json.Write(w, http.StatusOK, messageResponse{Message: constants.MsgOTPCleared})
}
