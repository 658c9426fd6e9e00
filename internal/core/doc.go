// Package core provides the rcseal operations on top of the crypto envelope.
//
// Core operations:
//   - Encrypt: salt generation, key derivation, seal, envelope encoding
//   - Decrypt: envelope decoding, key derivation, verified open
//   - Vault: named envelope storage (Save/Show/List/Remove) backed by bbolt
//
// Decrypt keeps failure causes distinct at this layer (malformed envelope vs
// authentication failure); the command layer collapses both into one generic
// "decryption failed" message so errors cannot be used as a password oracle.
package core
