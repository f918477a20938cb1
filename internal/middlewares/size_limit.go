package middlewares

import (
	"net/http"

	"github.com/yabeye/edu_verify_backend/pkg/constants"
	"github.com/yabeye/edu_verify_backend/pkg/json"
)

// LimitRequestSize caps request bodies at maxBytes. Reads past the cap fail,
// which the JSON decoder reports as a bad request.
func LimitRequestSize(maxBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				json.WriteError(w, http.StatusRequestEntityTooLarge, constants.ErrBodyTooLarge)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
