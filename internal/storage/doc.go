// Package storage provides the BBolt database interface for the rcseal vault.
//
// Database structure uses three buckets:
//   - config: version, timestamps, vault ID (unencrypted)
//   - index: entry names, creation times, sizes, labels (unencrypted, for ls)
//   - envelopes: envelope text, already password-encrypted by the caller
//
// The unencrypted index bucket enables rcseal ls to work without requiring
// a password. The vault never sees passwords or derived keys; everything it
// stores in the envelopes bucket is ciphertext.
//
// BBolt provides ACID transactions, file locking, and corruption detection.
package storage
