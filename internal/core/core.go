package core

import (
	"bytes"
	"errors"

	"github.com/live-labs/rcseal/internal/crypto"
)

var (
	ErrEmptyInput       = errors.New("nothing to encrypt")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// Encrypt seals plaintext under password and returns envelope text:
// base64(salt || token). A fresh salt and IV are used per call, so two
// encryptions of the same input never yield the same envelope.
func Encrypt(password, plaintext []byte) (string, error) {
	if len(bytes.TrimSpace(plaintext)) == 0 {
		return "", ErrEmptyInput
	}

	salt, err := crypto.NewSalt()
	if err != nil {
		return "", err
	}

	key, err := crypto.DeriveKey(password, salt)
	if err != nil {
		return "", err
	}
	defer crypto.ClearBytes(key)

	token, err := crypto.Seal(key, plaintext)
	if err != nil {
		return "", err
	}

	return crypto.EncodeEnvelope(salt, token), nil
}

// Decrypt reverses Encrypt. It returns crypto.ErrMalformedEnvelope when the
// envelope text does not parse and crypto.ErrAuthenticationFailed when the
// password is wrong or the token was tampered with. Callers presenting these
// to a user should collapse both into one generic failure message.
func Decrypt(password []byte, envelope string) ([]byte, error) {
	salt, token, err := crypto.DecodeEnvelope(envelope)
	if err != nil {
		return nil, err
	}

	key, err := crypto.DeriveKey(password, salt)
	if err != nil {
		return nil, err
	}
	defer crypto.ClearBytes(key)

	return crypto.Open(key, token)
}
