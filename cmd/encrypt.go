package cmd

import (
	"fmt"
	"os"

	"github.com/live-labs/rcseal/internal/clipboard"
	"github.com/live-labs/rcseal/internal/core"
	"github.com/live-labs/rcseal/internal/crypto"
)

// EncryptOptions controls plaintext source and envelope sink
type EncryptOptions struct {
	From      string // read plaintext from file instead of clipboard
	Save      string // write envelope to file instead of clipboard
	HideInput bool   // show character count instead of the plaintext
}

// Encrypt seals clipboard or file contents under a password and places the
// envelope text on the clipboard or in a file.
func Encrypt(opts EncryptOptions) {
	plaintext, err := ReadInput(opts.From)
	if err != nil {
		HandleError(err)
	}
	if plaintext == "" {
		HandleError(core.ErrEmptyInput)
	}

	if opts.HideInput {
		fmt.Printf("Found %d characters\n", charCount([]byte(plaintext)))
	} else {
		fmt.Println(plaintext)
	}

	password := GetPasswordForEncryptOrExit()
	defer crypto.ClearBytes(password)

	envelope, err := core.Encrypt(password, []byte(plaintext))
	if err != nil {
		HandleError(err)
	}

	if opts.Save != "" {
		if err := os.WriteFile(opts.Save, []byte(envelope), 0600); err != nil {
			HandleError(fmt.Errorf("failed to save envelope: %w", err))
		}
		fmt.Printf("Encrypted data saved to %s\n", opts.Save)
		return
	}

	if err := clipboard.Write(envelope); err != nil {
		HandleError(err)
	}
	fmt.Println("Encrypted data copied to clipboard")
}
