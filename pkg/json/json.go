package json

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// ErrorResponse represents the standard error format of the API.
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid request body"`
}

// Write encodes data as JSON and sends it to the client.
func Write(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteError sends a structured error response.
func WriteError(w http.ResponseWriter, code int, msg string) {
	Write(w, code, ErrorResponse{Error: msg})
}

// Read decodes a single JSON object from the request body into dst.
// Unknown fields and trailing data are rejected.
func Read(r *http.Request, dst any) error {
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return err
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}
