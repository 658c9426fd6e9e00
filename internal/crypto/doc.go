// Package crypto provides the cryptographic envelope for rcseal.
//
// Key derivation uses PBKDF2-HMAC-SHA256 with:
//   - 16-byte random salt (stored unencrypted in the envelope)
//   - 1,200,000 iterations to slow down offline password guessing
//
// Encryption uses an encrypt-then-MAC token:
//   - AES-128-CBC with a random per-token IV
//   - HMAC-SHA256 over version, timestamp, IV and ciphertext
//   - Open verifies the MAC before decrypting and reports every failure
//     as the same ErrAuthenticationFailed
//
// The wire form is base64(salt || token), produced and parsed by
// EncodeEnvelope / DecodeEnvelope.
//
// Memory safety:
//   - Use ClearBytes() to zero passwords and keys after use
package crypto
