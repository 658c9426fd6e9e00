package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// DeriveKey derives an encryption key from a password and salt using
// PBKDF2-HMAC-SHA256. The same (password, salt) pair always yields the
// same key. The iteration count is deliberately high so each guess in an
// offline attack costs real CPU time.
func DeriveKey(password, salt []byte) ([]byte, error) {
	if len(salt) != SaltSize {
		return nil, ErrInvalidSaltSize
	}
	return pbkdf2.Key(password, salt, Iterations, KeySize, sha256.New), nil
}
