package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/live-labs/rcseal/cmd"
)

const version = "1.0.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "encrypt":
		runEncrypt(ctx, os.Args[2:])
	case "decrypt":
		runDecrypt(ctx, os.Args[2:])
	case "save":
		runSave(ctx, os.Args[2:])
	case "show":
		runShow(ctx, os.Args[2:])
	case "ls", "list":
		runList(ctx, os.Args[2:])
	case "rm":
		runRm(ctx, os.Args[2:])
	case "keyring":
		runKeyring(ctx, os.Args[2:])
	case "version", "-v", "--version":
		fmt.Printf("rcseal version %s\n", version)
	case "help", "-h", "--help":
		if len(os.Args) <= 2 {
			printUsage()
			return
		}
		printCommandHelp(os.Args[2])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runEncrypt(_ context.Context, args []string) {
	fs := flag.NewFlagSet("encrypt", flag.ExitOnError)
	fromShort := fs.String("f", "", "Read plaintext from file instead of clipboard")
	fromLong := fs.String("from", "", "Read plaintext from file instead of clipboard")
	saveShort := fs.String("s", "", "Save envelope to file instead of clipboard")
	saveLong := fs.String("save", "", "Save envelope to file instead of clipboard")
	hideInput := fs.Bool("hide-input", false, "Show character count instead of the plaintext")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	cmd.Encrypt(cmd.EncryptOptions{
		From:      pick(*fromShort, *fromLong),
		Save:      pick(*saveShort, *saveLong),
		HideInput: *hideInput,
	})
}

func runDecrypt(_ context.Context, args []string) {
	fs := flag.NewFlagSet("decrypt", flag.ExitOnError)
	fromShort := fs.String("f", "", "Read envelope from file instead of clipboard")
	fromLong := fs.String("from", "", "Read envelope from file instead of clipboard")
	saveShort := fs.String("s", "", "Save plaintext to file instead of clipboard")
	saveLong := fs.String("save", "", "Save plaintext to file instead of clipboard")
	force := fs.Bool("force", false, "Overwrite an existing differing file")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	cmd.Decrypt(cmd.DecryptOptions{
		From:  pick(*fromShort, *fromLong),
		Save:  pick(*saveShort, *saveLong),
		Force: *force,
	})
}

func runSave(_ context.Context, args []string) {
	fs := flag.NewFlagSet("save", flag.ExitOnError)
	from := fs.String("f", "", "Read plaintext from file instead of clipboard")
	label := fs.String("label", "", "Attach a label to the vault entry")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: rcseal save [-f FILE] [--label TEXT] <name>")
		os.Exit(1)
	}

	cmd.Save(fs.Arg(0), *from, *label)
}

func runShow(_ context.Context, args []string) {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	save := fs.String("s", "", "Save plaintext to file instead of clipboard")
	force := fs.Bool("force", false, "Overwrite an existing differing file")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: rcseal show [-s FILE] [--force] <name>")
		os.Exit(1)
	}

	cmd.Show(fs.Arg(0), *save, *force)
}

func runList(_ context.Context, args []string) {
	fs := flag.NewFlagSet("ls", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	cmd.List()
}

func runRm(_ context.Context, args []string) {
	fs := flag.NewFlagSet("rm", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	cmd.Remove(fs.Args())
}

func runKeyring(_ context.Context, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: rcseal keyring <set|clear|status>")
		os.Exit(1)
	}

	switch args[0] {
	case "set":
		cmd.KeyringSave()
	case "clear":
		cmd.KeyringDelete()
	case "status":
		cmd.KeyringStatus()
	default:
		fmt.Fprintf(os.Stderr, "Unknown keyring action: %s\n", args[0])
		fmt.Fprintln(os.Stderr, "Usage: rcseal keyring <set|clear|status>")
		os.Exit(1)
	}
}

// pick prefers the short flag when both spellings are given
func pick(short, long string) string {
	if short != "" {
		return short
	}
	return long
}

func printUsage() {
	fmt.Println("rcseal - Password-protect recovery codes and other short secrets")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  rcseal <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  encrypt     Encrypt clipboard or file contents with a password")
	fmt.Println("  decrypt     Decrypt an envelope back to the clipboard or a file")
	fmt.Println("  save        Encrypt and store under a name in the local vault")
	fmt.Println("  show        Decrypt a vault entry")
	fmt.Println("  ls, list    List vault entries (no password needed)")
	fmt.Println("  rm          Remove vault entries")
	fmt.Println("  keyring     Remember the password in the OS keyring")
	fmt.Println("  version     Show version information")
	fmt.Println("  help        Show help for a command")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  rcseal encrypt                  # Encrypt clipboard -> clipboard")
	fmt.Println("  rcseal encrypt -f codes.txt -s codes.enc")
	fmt.Println("  rcseal decrypt                  # Decrypt clipboard -> clipboard")
	fmt.Println("  rcseal save github --label \"GitHub 2FA codes\"")
	fmt.Println("  rcseal show github")
	fmt.Println()
	fmt.Println("The password can also be supplied via the RCSEAL_PASSWORD environment")
	fmt.Println("variable, and the vault location via RCSEAL_VAULT (default ~/.rcseal).")
	fmt.Println()
	fmt.Println("Use 'rcseal help <command>' for more information about a command.")
}

func printCommandHelp(command string) {
	switch command {
	case "encrypt":
		fmt.Println("rcseal encrypt [-f|--from FILE] [-s|--save FILE] [--hide-input]")
		fmt.Println()
		fmt.Println("Encrypts recovery codes with a password.")
		fmt.Println("Reads plaintext from the clipboard unless --from is given, and")
		fmt.Println("places the encrypted envelope on the clipboard unless --save is given.")
		fmt.Println("The password is asked for twice; it is not stored anywhere.")
		fmt.Println()
		fmt.Println("Flags:")
		fmt.Println("  -f, --from FILE   Read plaintext from file")
		fmt.Println("  -s, --save FILE   Save envelope to file")
		fmt.Println("  --hide-input      Show only the character count, not the plaintext")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  rcseal encrypt")
		fmt.Println("  rcseal encrypt -f codes.txt -s codes.enc")
	case "decrypt":
		fmt.Println("rcseal decrypt [-f|--from FILE] [-s|--save FILE] [--force]")
		fmt.Println()
		fmt.Println("Decrypts an envelope produced by rcseal encrypt or rcseal save.")
		fmt.Println("Reads envelope text from the clipboard unless --from is given, and")
		fmt.Println("copies the plaintext to the clipboard unless --save is given.")
		fmt.Println("A wrong password and corrupted data produce the same error on purpose.")
		fmt.Println()
		fmt.Println("Flags:")
		fmt.Println("  -f, --from FILE   Read envelope from file")
		fmt.Println("  -s, --save FILE   Save plaintext to file")
		fmt.Println("  --force           Overwrite an existing file that differs")
		fmt.Println()
		fmt.Println("When saving onto an existing file that differs, rcseal shows a diff")
		fmt.Println("and refuses to overwrite without --force.")
	case "save":
		fmt.Println("rcseal save [-f FILE] [--label TEXT] <name>")
		fmt.Println()
		fmt.Println("Encrypts clipboard or file contents and stores the envelope in the")
		fmt.Println("local vault under <name>. Replaces an existing entry with that name.")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  rcseal save github")
		fmt.Println("  rcseal save aws -f codes.txt --label \"AWS root 2FA\"")
	case "show":
		fmt.Println("rcseal show [-s FILE] [--force] <name>")
		fmt.Println()
		fmt.Println("Decrypts the vault entry <name> to the clipboard or a file.")
		fmt.Println()
		fmt.Println("Example:")
		fmt.Println("  rcseal show github")
	case "ls", "list":
		fmt.Println("rcseal ls")
		fmt.Println()
		fmt.Println("Lists vault entries with creation time, size and label.")
		fmt.Println("Shows only public metadata, so no password is required.")
	case "rm":
		fmt.Println("rcseal rm <name> [name...]")
		fmt.Println()
		fmt.Println("Removes entries from the vault and compacts it.")
		fmt.Println()
		fmt.Println("Example:")
		fmt.Println("  rcseal rm github aws")
	case "keyring":
		fmt.Println("rcseal keyring <set|clear|status>")
		fmt.Println()
		fmt.Println("Remembers the vault password in the OS keyring so encrypt, decrypt,")
		fmt.Println("save and show stop prompting. The keyring entry is keyed by the")
		fmt.Println("vault's identifier.")
		fmt.Println()
		fmt.Println("Actions:")
		fmt.Println("  set      Store the password (asked for twice)")
		fmt.Println("  clear    Remove the stored password")
		fmt.Println("  status   Report whether a password is stored")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
	}
}
