package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/live-labs/rcseal/internal/storage"
)

const VaultFileName = ".rcseal"

var ErrEntryNotFound = storage.ErrEntryNotFound

// DefaultVaultPath returns the vault location: RCSEAL_VAULT if set,
// otherwise ~/.rcseal.
func DefaultVaultPath() (string, error) {
	if path := os.Getenv("RCSEAL_VAULT"); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, VaultFileName), nil
}

// Vault stores named envelopes in a local database. Only envelope text and
// public metadata go in; passwords and keys never touch the vault.
type Vault struct {
	path string
	db   *storage.Storage
}

// OpenVault opens the vault at path, creating and initializing it on first use
func OpenVault(path string) (*Vault, error) {
	db, err := storage.Open(path)
	if err != nil {
		return nil, err
	}

	initialized, err := db.IsInitialized()
	if err != nil {
		db.Close()
		return nil, err
	}
	if !initialized {
		if err := db.Initialize(); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to initialize vault: %w", err)
		}
	}

	return &Vault{path: path, db: db}, nil
}

// Close releases the vault database
func (v *Vault) Close() error {
	return v.db.Close()
}

// Path returns the vault file location
func (v *Vault) Path() string {
	return v.path
}

// ID returns the vault's stable identifier, generating one on first call.
// Used to key the OS keyring entry for this vault.
func (v *Vault) ID() (string, error) {
	return v.db.GetOrCreateVaultID()
}

// Save encrypts plaintext under password and stores the envelope under name.
// An existing entry with the same name is replaced.
func (v *Vault) Save(name, label string, password, plaintext []byte) error {
	envelope, err := Encrypt(password, plaintext)
	if err != nil {
		return err
	}
	return v.db.PutEnvelope(name, envelope, storage.NewEntryMeta(envelope, label))
}

// Show decrypts the entry stored under name
func (v *Vault) Show(name string, password []byte) ([]byte, error) {
	envelope, err := v.db.GetEnvelope(name)
	if err != nil {
		return nil, err
	}
	return Decrypt(password, envelope)
}

// List returns public metadata for all entries; no password required
func (v *Vault) List() ([]storage.Entry, error) {
	return v.db.ListEntries()
}

// Remove deletes the named entries and compacts the database to reclaim
// space. Returns the number of entries actually removed.
func (v *Vault) Remove(names []string) (int, error) {
	removed := 0
	for _, name := range names {
		switch err := v.db.DeleteEnvelope(name); {
		case err == nil:
			removed++
		case errors.Is(err, storage.ErrEntryNotFound):
			// keep going, report via count
		default:
			return removed, err
		}
	}

	if removed > 0 {
		if err := v.db.Compact(); err != nil {
			return removed, fmt.Errorf("removed %d entries but compaction failed: %w", removed, err)
		}
	}
	return removed, nil
}
