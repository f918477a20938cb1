package random

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	otpMin = 100000
	otpMax = 999999
)

// GenerateOTP produces a 6-digit numeric string drawn uniformly from
// [100000, 999999] using crypto/rand.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpMax-otpMin+1))
	if err != nil {
		return "", fmt.Errorf("read random source: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+otpMin), nil
}
