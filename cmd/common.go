package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/live-labs/rcseal/internal/clipboard"
	"github.com/live-labs/rcseal/internal/core"
	"github.com/live-labs/rcseal/internal/crypto"
	"github.com/live-labs/rcseal/internal/keyring"
)

// GetPassword retrieves a password for decryption: environment first, then
// the OS keyring (if a vault exists and has a stored password), then an
// interactive prompt.
// The caller is responsible for calling crypto.ClearBytes on the result.
func GetPassword(prompt string) ([]byte, error) {
	if password := core.GetPasswordFromEnv(); password != nil {
		return password, nil
	}

	if password := passwordFromKeyring(); password != nil {
		return password, nil
	}

	password, err := core.ReadPassword(prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	return password, nil
}

// GetPasswordForEncrypt is like GetPassword but prompts twice so a typo
// cannot lock data behind an unknown password.
func GetPasswordForEncrypt() ([]byte, error) {
	if password := core.GetPasswordFromEnv(); password != nil {
		return password, nil
	}

	if password := passwordFromKeyring(); password != nil {
		return password, nil
	}

	return core.ReadPasswordConfirm()
}

// GetPasswordOrExit is like GetPassword but exits on error
func GetPasswordOrExit(prompt string) []byte {
	password, err := GetPassword(prompt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	return password
}

// GetPasswordForEncryptOrExit is like GetPasswordForEncrypt but exits on error
func GetPasswordForEncryptOrExit() []byte {
	password, err := GetPasswordForEncrypt()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	return password
}

// passwordFromKeyring looks up the remembered password for the default
// vault. Returns nil when there is no vault, no stored password, or no
// usable keyring backend.
func passwordFromKeyring() []byte {
	path, err := core.DefaultVaultPath()
	if err != nil {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	vault, err := core.OpenVault(path)
	if err != nil {
		return nil
	}
	defer vault.Close()

	vaultID, err := vault.ID()
	if err != nil {
		return nil
	}

	password, err := keyring.GetPassword(vaultID)
	if err != nil {
		return nil
	}
	return []byte(password)
}

// OpenVaultOrExit opens the default vault, exiting with a message on failure
func OpenVaultOrExit() *core.Vault {
	path, err := core.DefaultVaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	vault, err := core.OpenVault(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open vault %s: %s\n", path, err)
		os.Exit(1)
	}
	return vault
}

// ReadInput reads plaintext or envelope text from a file, or from the
// clipboard when path is empty. Surrounding whitespace is trimmed.
func ReadInput(path string) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	if !clipboard.Available() {
		return "", errors.New("no clipboard available, use --from to read from a file")
	}
	text, err := clipboard.Read()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// charCount reports the number of characters in data. Status lines report
// what the user sees, not the UTF-8 byte length.
func charCount(data []byte) int {
	return utf8.RuneCount(data)
}

// HandleError prints a user-facing message for common errors and exits.
// Decrypt-time failures are deliberately collapsed into one generic message:
// the caller must not learn whether the envelope was malformed or the
// password was wrong.
func HandleError(err error) {
	switch {
	case errors.Is(err, core.ErrEmptyInput):
		fmt.Fprintf(os.Stderr, "Error: nothing to encrypt\n")
	case errors.Is(err, core.ErrPasswordMismatch):
		fmt.Fprintf(os.Stderr, "Error: passwords do not match\n")
	case errors.Is(err, core.ErrEntryNotFound):
		fmt.Fprintf(os.Stderr, "Error: entry not found\n")
		fmt.Fprintf(os.Stderr, "Use 'rcseal ls' to list vault entries\n")
	case errors.Is(err, crypto.ErrMalformedEnvelope),
		errors.Is(err, crypto.ErrAuthenticationFailed):
		fmt.Fprintf(os.Stderr, "Error: decryption failed\n")
	default:
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
	os.Exit(1)
}
