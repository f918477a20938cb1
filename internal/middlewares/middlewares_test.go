package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yabeye/edu_verify_backend/pkg/auth"
	"github.com/yabeye/edu_verify_backend/pkg/constants"
)

type stubTokens struct {
	claims *auth.Claims
	err    error
}

func (s stubTokens) GenerateVerificationToken(string, time.Time) (*auth.TokenDetails, error) {
	return nil, nil
}

func (s stubTokens) VerifyToken(string) (*auth.Claims, error) {
	return s.claims, s.err
}

func echoEmail(w http.ResponseWriter, r *http.Request) {
	email, _ := EmailFromContext(r.Context())
	_, _ = w.Write([]byte(email))
}

func TestAuth(t *testing.T) {
	mgr, err := auth.NewJWTManager("secret", time.Minute)
	require.NoError(t, err)
	token, err := mgr.GenerateVerificationToken("a@x.com", time.Now())
	require.NoError(t, err)

	tests := []struct {
		name     string
		tokens   auth.TokenManager
		header   string
		wantCode int
		wantBody string
	}{
		{"missing header", mgr, "", http.StatusUnauthorized, constants.ErrUnauthorized},
		{"not bearer", mgr, "Basic abc", http.StatusUnauthorized, constants.ErrUnauthorized},
		{"garbage token", mgr, "Bearer not-a-jwt", http.StatusUnauthorized, constants.ErrInvalidToken},
		{"wrong type", stubTokens{claims: &auth.Claims{Email: "a@x.com", Type: "access"}}, "Bearer x", http.StatusForbidden, constants.ErrWrongTokenType},
		{"valid", mgr, "Bearer " + token.Token, http.StatusOK, "a@x.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			Auth(tt.tokens)(http.HandlerFunc(echoEmail)).ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestEmailFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := EmailFromContext(req.Context())
	assert.False(t, ok)

	email, ok := EmailFromContext(WithEmail(req.Context(), "a@x.com"))
	assert.True(t, ok)
	assert.Equal(t, "a@x.com", email)
}

func TestRateLimit(t *testing.T) {
	h := RateLimit(2, time.Minute, "slow down")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	var codes []int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		codes = append(codes, w.Code)
		if w.Code == http.StatusTooManyRequests {
			assert.Contains(t, w.Body.String(), "slow down")
		}
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)

	other := httptest.NewRequest(http.MethodPost, "/", nil)
	other.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	h.ServeHTTP(w, other)
	assert.Equal(t, http.StatusNoContent, w.Code, "limits are per client")
}

func TestLimitRequestSize(t *testing.T) {
	h := LimitRequestSize(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		n, err := r.Body.Read(buf)
		if err != nil && n == 0 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("small")))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 64))))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), constants.ErrBodyTooLarge)
}
