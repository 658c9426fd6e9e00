package cmd

import (
	"fmt"
	"os"
)

// Remove deletes named entries from the vault and compacts it
func Remove(names []string) {
	if len(names) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: rcseal rm <name> [name...]")
		os.Exit(1)
	}

	vault := OpenVaultOrExit()
	defer vault.Close()

	removed, err := vault.Remove(names)
	if err != nil {
		HandleError(err)
	}

	if removed == 0 {
		fmt.Println("No matching entries")
		return
	}
	fmt.Printf("Removed %d of %d entries\n", removed, len(names))
}
