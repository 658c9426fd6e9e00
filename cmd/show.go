package cmd

import (
	"fmt"

	"github.com/live-labs/rcseal/internal/crypto"
)

// Show decrypts a vault entry to the clipboard or a file
func Show(name, save string, force bool) {
	vault := OpenVaultOrExit()
	defer vault.Close()

	password := GetPasswordOrExit("Enter password: ")
	defer crypto.ClearBytes(password)

	plaintext, err := vault.Show(name, password)
	if err != nil {
		HandleError(err)
	}

	if err := writeDecrypted(plaintext, save, force); err != nil {
		HandleError(err)
	}
	fmt.Printf("%d characters restored\n", charCount(plaintext))
}
