package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tommilligan/crev/cmd"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "review":
		runReview(os.Args[2:])
	case "id":
		runID(os.Args[2:])
	case "keyring":
		runKeyring(os.Args[2:])
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

// oneArg parses args with fs and returns its single positional argument
func oneArg(fs *flag.FlagSet, args []string, usage string) string {
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s\n", usage)
		os.Exit(1)
	}
	return fs.Arg(0)
}

func runReview(args []string) {
	fs := flag.NewFlagSet("review", flag.ExitOnError)
	pkg := fs.String("package", "", "Package name for a new draft")
	version := fs.String("version", "", "Package version for a new draft")
	path := oneArg(fs, args, "crev review [-package NAME] [-version VERSION] <draft>")

	cmd.Review(path, *pkg, *version)
}

func runID(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: crev id <new|show> <identity-file>")
		os.Exit(1)
	}

	switch args[0] {
	case "new":
		fs := flag.NewFlagSet("id new", flag.ExitOnError)
		url := fs.String("url", "", "URL of the proof repository")
		path := oneArg(fs, args[1:], "crev id new [-url URL] <identity-file>")
		cmd.IDNew(path, *url)
	case "show":
		fs := flag.NewFlagSet("id show", flag.ExitOnError)
		cmd.IDShow(oneArg(fs, args[1:], "crev id show <identity-file>"))
	default:
		fmt.Fprintf(os.Stderr, "Unknown id command: %s\n", args[0])
		os.Exit(1)
	}
}

func runKeyring(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: crev keyring <save|delete|status> <identity-file>")
		os.Exit(1)
	}

	fs := flag.NewFlagSet("keyring "+args[0], flag.ExitOnError)
	path := oneArg(fs, args[1:], "crev keyring "+args[0]+" <identity-file>")

	switch args[0] {
	case "save":
		cmd.KeyringSave(path)
	case "delete":
		cmd.KeyringDelete(path)
	case "status":
		cmd.KeyringStatus(path)
	default:
		fmt.Fprintf(os.Stderr, "Unknown keyring command: %s\n", args[0])
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("crev - Author code review drafts and manage review identities")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  crev <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  review      Edit a review draft and save it once it is valid")
	fmt.Println("  id          Create or unlock a passphrase-protected identity")
	fmt.Println("  keyring     Manage the identity passphrase in the OS keyring")
	fmt.Println("  help        Show help for a command")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  CREV_PASSPHRASE   Use this passphrase instead of prompting")
	fmt.Println("  CREV_NO_KEYRING   Never read the passphrase from the OS keyring")
	fmt.Println("  VISUAL, EDITOR    Editor for review drafts (default: vi)")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  crev review -package serde -version 1.0.0 reviews/serde.yaml")
	fmt.Println("  crev id new -url https://github.com/me/crev-proofs ~/.crev/id.yaml")
	fmt.Println("  crev id show ~/.crev/id.yaml")
}

func printCommandHelp(command string) {
	switch command {
	case "review":
		fmt.Println("crev review [-package NAME] [-version VERSION] <draft>")
		fmt.Println()
		fmt.Println("Opens the draft in $VISUAL or $EDITOR. When the edited draft does not")
		fmt.Println("parse, the error is shown and you can reopen it with your edits kept.")
		fmt.Println("Valid drafts are shown as a diff and saved atomically after confirmation.")
		fmt.Println()
		fmt.Println("The draft path must be inside the current directory.")
		fmt.Println("-package is required when the draft does not exist yet.")
	case "id":
		fmt.Println("crev id new [-url URL] <identity-file>")
		fmt.Println("crev id show <identity-file>")
		fmt.Println()
		fmt.Println("new asks for a passphrase twice and writes a locked identity.")
		fmt.Println("show unlocks the identity and prints its public id.")
	case "keyring":
		fmt.Println("crev keyring <save|delete|status> <identity-file>")
		fmt.Println()
		fmt.Println("save verifies the passphrase and stores it in the OS keyring.")
		fmt.Println("id show then unlocks without prompting.")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
	}
}
