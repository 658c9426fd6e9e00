// Package clipboard wraps system clipboard access. The clipboard is the
// default plaintext source and envelope sink for rcseal, matching how people
// actually move recovery codes around.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Read returns the current clipboard contents
func Read() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("failed to read clipboard: %w", err)
	}
	return text, nil
}

// Write replaces the clipboard contents
func Write(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}

// Available reports whether a clipboard backend is usable on this system
func Available() bool {
	return !clipboard.Unsupported
}
