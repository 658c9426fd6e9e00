package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func testKey() []byte {
	key := make([]byte, KeySize)
	for i := range key {
		key[i] = byte(i)
	}
	return key
}

func TestSealOpenRoundTrip(t *testing.T) {
	key := testKey()

	for _, plaintext := range [][]byte{
		[]byte("ABCD-1234-EFGH"),
		[]byte("x"),
		{},
		bytes.Repeat([]byte("0123456789ABCDEF"), 100), // multiple blocks
	} {
		token, err := Seal(key, plaintext)
		if err != nil {
			t.Fatalf("Seal failed: %v", err)
		}

		recovered, err := Open(key, token)
		if err != nil {
			t.Fatalf("Open failed for %d-byte plaintext: %v", len(plaintext), err)
		}
		if !bytes.Equal(recovered, plaintext) {
			t.Errorf("Round trip mismatch: got %q, want %q", recovered, plaintext)
		}
	}
}

func TestSealUsesFreshRandomness(t *testing.T) {
	key := testKey()
	plaintext := []byte("same plaintext")

	token1, err := Seal(key, plaintext)
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}
	token2, err := Seal(key, plaintext)
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}

	if bytes.Equal(token1, token2) {
		t.Error("Two seals of the same plaintext should produce different tokens")
	}
}

func TestOpenRejectsTampering(t *testing.T) {
	key := testKey()
	token, err := Seal(key, []byte("ABCD-1234-EFGH"))
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}

	// Flip one bit at every position in the token
	for i := range token {
		tampered := append([]byte(nil), token...)
		tampered[i] ^= 0x01

		if _, err := Open(key, tampered); !errors.Is(err, ErrAuthenticationFailed) {
			t.Fatalf("Bit flip at byte %d: expected ErrAuthenticationFailed, got %v", i, err)
		}
	}
}

func TestOpenRejectsTruncation(t *testing.T) {
	key := testKey()
	token, err := Seal(key, []byte("ABCD-1234-EFGH"))
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}

	for _, n := range []int{0, 1, minTokenSize - 1, len(token) - 1} {
		if _, err := Open(key, token[:n]); !errors.Is(err, ErrAuthenticationFailed) {
			t.Errorf("Truncation to %d bytes: expected ErrAuthenticationFailed, got %v", n, err)
		}
	}
}

func TestOpenRejectsWrongKey(t *testing.T) {
	key := testKey()
	token, err := Seal(key, []byte("ABCD-1234-EFGH"))
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}

	wrongKey := testKey()
	wrongKey[0] ^= 0xff

	if _, err := Open(wrongKey, token); !errors.Is(err, ErrAuthenticationFailed) {
		t.Errorf("Expected ErrAuthenticationFailed for wrong key, got %v", err)
	}
}

func TestKeySizeValidation(t *testing.T) {
	shortKey := make([]byte, KeySize-1)

	if _, err := Seal(shortKey, []byte("data")); !errors.Is(err, ErrInvalidKeySize) {
		t.Errorf("Seal: expected ErrInvalidKeySize, got %v", err)
	}
	if _, err := Open(shortKey, make([]byte, minTokenSize)); !errors.Is(err, ErrInvalidKeySize) {
		t.Errorf("Open: expected ErrInvalidKeySize, got %v", err)
	}
}

func TestPKCS7Unpad(t *testing.T) {
	// Valid padding
	if out, ok := pkcs7Unpad(append([]byte("abc"), bytes.Repeat([]byte{13}, 13)...), 16); !ok || string(out) != "abc" {
		t.Errorf("Expected valid unpad of 'abc', got %q ok=%v", out, ok)
	}

	// Invalid paddings
	invalid := [][]byte{
		{},
		bytes.Repeat([]byte{0}, 16),    // zero pad byte
		bytes.Repeat([]byte{17}, 16),   // pad byte > block size
		append(bytes.Repeat([]byte{2}, 15), 3), // inconsistent pad bytes
		[]byte("not a block"),          // not block aligned
	}
	for i, data := range invalid {
		if _, ok := pkcs7Unpad(data, 16); ok {
			t.Errorf("Case %d: expected invalid padding, got ok", i)
		}
	}
}
