package cmd

import (
	"fmt"
	"os"

	"github.com/live-labs/rcseal/internal/core"
	"github.com/live-labs/rcseal/internal/crypto"
	"github.com/live-labs/rcseal/internal/keyring"
)

// KeyringSave stores the password in the OS keyring for the default vault
func KeyringSave() {
	vault := OpenVaultOrExit()
	defer vault.Close()

	// Double entry guards against remembering a mistyped password
	password, err := core.ReadPasswordConfirm()
	if err != nil {
		HandleError(err)
	}
	defer crypto.ClearBytes(password)

	vaultID, err := vault.ID()
	if err != nil {
		HandleError(err)
	}

	if err := keyring.SavePassword(vaultID, string(password)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to save to keyring: %s\n", err)
		os.Exit(1)
	}

	fmt.Println("Password saved to keyring")
}

// KeyringDelete removes the password from the OS keyring
func KeyringDelete() {
	vault := OpenVaultOrExit()
	defer vault.Close()

	vaultID, err := vault.ID()
	if err != nil {
		HandleError(err)
	}

	stored, err := keyring.HasPassword(vaultID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: keyring unavailable: %s\n", err)
		os.Exit(1)
	}
	if !stored {
		fmt.Println("No password stored in keyring")
		return
	}

	if err := keyring.DeletePassword(vaultID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to remove from keyring: %s\n", err)
		os.Exit(1)
	}

	fmt.Println("Password removed from keyring")
}

// KeyringStatus checks if a password is stored in the keyring
func KeyringStatus() {
	vault := OpenVaultOrExit()
	defer vault.Close()

	vaultID, err := vault.ID()
	if err != nil {
		fmt.Println("Password: not stored")
		return
	}

	stored, err := keyring.HasPassword(vaultID)
	if err == nil && stored {
		fmt.Println("Password: stored in keyring")
	} else {
		fmt.Println("Password: not stored")
	}
}
