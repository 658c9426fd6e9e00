package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
)

// List prints the vault index. Only public metadata is shown, so no
// password is required.
func List() {
	vault := OpenVaultOrExit()
	defer vault.Close()

	entries, err := vault.List()
	if err != nil {
		HandleError(err)
	}

	if len(entries) == 0 {
		fmt.Printf("Vault %s is empty\n", vault.Path())
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCREATED\tSIZE\tLABEL")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
			e.Name,
			e.Meta.Created.Format("2006-01-02 15:04"),
			e.Meta.Size,
			e.Meta.Label,
		)
	}
	w.Flush()
}
