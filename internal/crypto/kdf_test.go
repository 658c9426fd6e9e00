package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestDeriveKeyRejectsBadSalt(t *testing.T) {
	for _, salt := range [][]byte{nil, {}, make([]byte, SaltSize-1), make([]byte, SaltSize+1)} {
		if _, err := DeriveKey([]byte("pw"), salt); !errors.Is(err, ErrInvalidSaltSize) {
			t.Errorf("salt length %d: expected ErrInvalidSaltSize, got %v", len(salt), err)
		}
	}
}

func TestDeriveKeyDeterministic(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping slow KDF test in short mode")
	}

	password := []byte("correct-password")
	salt := bytes.Repeat([]byte{0x42}, SaltSize)

	key1, err := DeriveKey(password, salt)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	key2, err := DeriveKey(password, salt)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}

	if len(key1) != KeySize {
		t.Errorf("Expected %d-byte key, got %d", KeySize, len(key1))
	}
	if !bytes.Equal(key1, key2) {
		t.Error("Same password and salt should derive the same key")
	}
}

func TestDeriveKeySensitivity(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping slow KDF test in short mode")
	}

	salt1 := bytes.Repeat([]byte{0x01}, SaltSize)
	salt2 := bytes.Repeat([]byte{0x02}, SaltSize)

	base, err := DeriveKey([]byte("password"), salt1)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}

	otherSalt, err := DeriveKey([]byte("password"), salt2)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	if bytes.Equal(base, otherSalt) {
		t.Error("Different salts should derive different keys")
	}

	otherPassword, err := DeriveKey([]byte("Password"), salt1)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	if bytes.Equal(base, otherPassword) {
		t.Error("Different passwords should derive different keys")
	}
}
