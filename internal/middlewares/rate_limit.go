package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"

	"github.com/yabeye/edu_verify_backend/pkg/json"
)

// RateLimit caps requests per client IP within window and answers the excess
// with a JSON 429.
func RateLimit(requests int, window time.Duration, message string) func(next http.Handler) http.Handler {
	return httprate.Limit(
		requests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByRealIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			json.WriteError(w, http.StatusTooManyRequests, message)
		}),
	)
}
