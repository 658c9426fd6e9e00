package cmd

import (
	"fmt"

	"github.com/live-labs/rcseal/internal/core"
	"github.com/live-labs/rcseal/internal/crypto"
)

// Save encrypts clipboard or file contents and stores the envelope in the
// vault under name. An existing entry with the same name is replaced.
func Save(name, from, label string) {
	plaintext, err := ReadInput(from)
	if err != nil {
		HandleError(err)
	}
	if plaintext == "" {
		HandleError(core.ErrEmptyInput)
	}

	password := GetPasswordForEncryptOrExit()
	defer crypto.ClearBytes(password)

	vault := OpenVaultOrExit()
	defer vault.Close()

	if err := vault.Save(name, label, password, []byte(plaintext)); err != nil {
		HandleError(err)
	}

	fmt.Printf("Saved %q to vault %s\n", name, vault.Path())
}
