// Package keyring remembers the rcseal password in the OS keyring, keyed by
// vault ID so multiple vaults can coexist.
package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const serviceName = "rcseal"

// SavePassword stores the password for a vault
func SavePassword(vaultID, password string) error {
	if err := keyring.Set(serviceName, vaultID, password); err != nil {
		return fmt.Errorf("failed to store password in keyring: %w", err)
	}
	return nil
}

// GetPassword retrieves the stored password for a vault
func GetPassword(vaultID string) (string, error) {
	return keyring.Get(serviceName, vaultID)
}

// DeletePassword removes the stored password for a vault. Deleting a
// password that was never stored is not an error.
func DeletePassword(vaultID string) error {
	err := keyring.Delete(serviceName, vaultID)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

// HasPassword reports whether a password is stored for a vault. A missing
// entry is not an error; anything else (no usable backend, locked keyring)
// is.
func HasPassword(vaultID string) (bool, error) {
	_, err := keyring.Get(serviceName, vaultID)
	if errors.Is(err, keyring.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
