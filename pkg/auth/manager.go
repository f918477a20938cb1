package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTypeEmailVerification marks tokens issued after a successful OTP check.
const TokenTypeEmailVerification = "email_verification"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrEmptySecret  = errors.New("token secret must not be empty")
)

// Claims extends standard JWT claims with the verified email
type Claims struct {
	Email string `json:"email"`
	Type  string `json:"typ"`
	jwt.RegisteredClaims
}

// TokenDetails is a signed token together with its expiry.
type TokenDetails struct {
	Token     string
	ExpiresAt time.Time
}

type TokenManager interface {
	GenerateVerificationToken(email string, iat time.Time) (*TokenDetails, error)
	VerifyToken(token string) (*Claims, error)
}

type jwtManager struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
}

// NewJWTManager returns an HS256 TokenManager. Tokens live for ttl.
func NewJWTManager(secret string, ttl time.Duration) (TokenManager, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &jwtManager{
		secretKey: []byte(secret),
		issuer:    "edu_verify",
		ttl:       ttl,
	}, nil
}

func (m *jwtManager) GenerateVerificationToken(email string, iat time.Time) (*TokenDetails, error) {
	expiresAt := iat.Add(m.ttl)

	claims := &Claims{
		Email: email,
		Type:  TokenTypeEmailVerification,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   email,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(iat),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secretKey)
	if err != nil {
		return nil, fmt.Errorf("sign verification token: %w", err)
	}

	return &TokenDetails{Token: signed, ExpiresAt: expiresAt}, nil
}

func (m *jwtManager) VerifyToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secretKey, nil
	}, jwt.WithIssuer(m.issuer))

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
