package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/live-labs/rcseal/internal/clipboard"
	"github.com/live-labs/rcseal/internal/core"
	"github.com/live-labs/rcseal/internal/crypto"
)

// DecryptOptions controls envelope source and plaintext sink
type DecryptOptions struct {
	From  string // read envelope from file instead of clipboard
	Save  string // write plaintext to file instead of clipboard
	Force bool   // overwrite an existing differing file without asking
}

// Decrypt opens envelope text from the clipboard or a file and restores the
// plaintext to the clipboard or a file.
func Decrypt(opts DecryptOptions) {
	envelope, err := ReadInput(opts.From)
	if err != nil {
		HandleError(err)
	}
	if envelope == "" {
		HandleError(errors.New("no encrypted data found"))
	}

	password := GetPasswordOrExit("Enter password: ")
	defer crypto.ClearBytes(password)

	plaintext, err := core.Decrypt(password, envelope)
	if err != nil {
		HandleError(err)
	}

	if err := writeDecrypted(plaintext, opts.Save, opts.Force); err != nil {
		HandleError(err)
	}
	fmt.Printf("%d characters restored\n", charCount(plaintext))
}

// writeDecrypted delivers plaintext to a file or the clipboard. When the
// target file exists with different content, the change is shown as a diff
// and the write is refused unless force is set.
func writeDecrypted(plaintext []byte, save string, force bool) error {
	if save == "" {
		if err := clipboard.Write(string(plaintext)); err != nil {
			return err
		}
		fmt.Println("Decrypted data copied to clipboard")
		return nil
	}

	local, err := os.ReadFile(save)
	switch {
	case err == nil && core.SameContent(local, plaintext):
		// Identical content, nothing to do
		fmt.Printf("%s is already up to date\n", save)
		return nil
	case err == nil && !force:
		fmt.Fprintf(os.Stderr, "warning: %s exists and differs from the decrypted data\n", save)
		if core.DetectTextData(local) && core.DetectTextData(plaintext) {
			fmt.Fprint(os.Stderr, core.RenderDiff(local, plaintext))
		}
		return fmt.Errorf("refusing to overwrite %s (use --force)", save)
	case err != nil && !os.IsNotExist(err):
		return fmt.Errorf("failed to check %s: %w", save, err)
	}

	if err := os.WriteFile(save, plaintext, 0600); err != nil {
		return fmt.Errorf("failed to save decrypted data: %w", err)
	}
	fmt.Printf("Decrypted data saved to %s\n", save)
	return nil
}
