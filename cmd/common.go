package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/tommilligan/crev/internal/content"
	"github.com/tommilligan/crev/internal/editor"
	"github.com/tommilligan/crev/internal/id"
	"github.com/tommilligan/crev/internal/keyring"
	"github.com/tommilligan/crev/internal/prompt"
	"github.com/tommilligan/crev/internal/security"
)

// EnvNoKeyring disables the OS keyring when set
const EnvNoKeyring = "CREV_NO_KEYRING"

// newPrompter returns a terminal prompter that may read the passphrase of
// identity account from the OS keyring
func newPrompter(account string) *prompt.Prompter {
	p := prompt.New()
	if _, off := os.LookupEnv(EnvNoKeyring); !off {
		p.Keyring = keyring.Store{}
		p.KeyringAccount = account
	}
	return p
}

// loadID loads an identity file or exits
func loadID(path string) *id.LockedID {
	locked, err := id.Load(path)
	if err != nil {
		HandleError(err)
	}
	return locked
}

// HandleError handles common errors consistently
func HandleError(err error) {
	switch {
	case errors.Is(err, content.ErrUserCanceled):
		fmt.Fprintf(os.Stderr, "Canceled, nothing was saved\n")
	case errors.Is(err, editor.ErrEditorFailed):
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		fmt.Fprintf(os.Stderr, "The draft was not changed\n")
	case errors.Is(err, id.ErrWrongPassphrase):
		fmt.Fprintf(os.Stderr, "Error: wrong passphrase\n")
	case errors.Is(err, prompt.ErrNoTerminal):
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	case errors.Is(err, security.ErrPathEscapes), errors.Is(err, security.ErrAbsolutePath):
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		fmt.Fprintf(os.Stderr, "Drafts must live inside the current directory\n")
	default:
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
	os.Exit(1)
}
