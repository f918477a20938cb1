package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/yabeye/edu_verify_backend/internal/middlewares"
	"github.com/yabeye/edu_verify_backend/internal/verification"
	"github.com/yabeye/edu_verify_backend/pkg/constants"
)

// MountRoutes connects the v1 handlers. CORS, logging and the global limits
// are applied by mount.
func MountRoutes(app *application, verificationHandler verification.Handler) http.Handler {
	r := chi.NewRouter()

	r.Route("/auth", func(r chi.Router) {
		// OTP payloads are tiny.
		r.Use(middlewares.LimitRequestSize(10 * 1024))

		r.Group(func(r chi.Router) {
			r.Use(middlewares.RateLimit(10, 1*time.Minute, constants.ErrOTPRateLimited))

			r.Post("/send-otp", verificationHandler.SendOTP)
			r.Post("/verify-otp", verificationHandler.VerifyOTP)
		})

		r.Group(func(r chi.Router) {
			r.Use(middlewares.Auth(app.auth))

			r.Get("/verification", verificationHandler.GetVerification)
			r.Delete("/otp", verificationHandler.CancelOTP)
		})
	})

	return r
}
