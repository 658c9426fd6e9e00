package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
)

const (
	SaltSize   = 16        // Salt size in bytes
	KeySize    = 32        // Derived key size (16 bytes HMAC + 16 bytes AES)
	Iterations = 1_200_000 // PBKDF2 iteration count
)

var (
	ErrInvalidSaltSize      = errors.New("invalid salt size")
	ErrInvalidKeySize       = errors.New("invalid key size")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrMalformedEnvelope    = errors.New("malformed envelope")
)

// NewSalt generates a fresh random salt for one encryption operation
func NewSalt() ([]byte, error) {
	return GenerateRandom(SaltSize)
}

// ClearBytes securely clears a byte slice
func ClearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// ConstantTimeCompare performs a constant-time comparison of two byte slices
func ConstantTimeCompare(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// GenerateRandom generates n random bytes
func GenerateRandom(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return b, nil
}
