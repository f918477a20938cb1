package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/yabeye/edu_verify_backend/pkg/auth"
	"github.com/yabeye/edu_verify_backend/pkg/constants"
	"github.com/yabeye/edu_verify_backend/pkg/json"
)

type contextKey string

const emailKey contextKey = "verified_email"

// Auth admits requests carrying a valid email verification token and stores
// the verified email in the request context.
func Auth(tokenManager auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || strings.TrimSpace(tokenString) == "" {
				json.WriteError(w, http.StatusUnauthorized, constants.ErrUnauthorized)
				return
			}

			claims, err := tokenManager.VerifyToken(strings.TrimSpace(tokenString))
			if err != nil {
				json.WriteError(w, http.StatusUnauthorized, constants.ErrInvalidToken)
				return
			}

			if claims.Type != auth.TokenTypeEmailVerification {
				json.WriteError(w, http.StatusForbidden, constants.ErrWrongTokenType)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithEmail(r.Context(), claims.Email)))
		})
	}
}

// WithEmail returns a copy of ctx carrying the verified email.
func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailKey, email)
}

// EmailFromContext returns the email set by Auth.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailKey).(string)
	return email, ok && email != ""
}
