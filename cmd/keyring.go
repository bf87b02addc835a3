package cmd

import (
	"fmt"
	"os"

	"github.com/tommilligan/crev/internal/crypto"
	"github.com/tommilligan/crev/internal/keyring"
	"github.com/tommilligan/crev/internal/prompt"
)

// KeyringSave saves the identity passphrase to the OS keyring
func KeyringSave(path string) {
	locked := loadID(path)

	// Always ask: a stale keyring entry must not vouch for itself
	passphrase, err := prompt.New().ReadPassphrase()
	if err != nil {
		HandleError(err)
	}
	secret := []byte(passphrase)
	defer crypto.ClearBytes(secret)

	if _, err := locked.Unlock(secret); err != nil {
		HandleError(err)
	}

	if err := keyring.SavePassphrase(locked.ID, passphrase); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to save to keyring: %s\n", err)
		os.Exit(1)
	}

	fmt.Fprintln(os.Stderr, "Passphrase saved to keyring")
}

// KeyringDelete removes the identity passphrase from the OS keyring
func KeyringDelete(path string) {
	locked := loadID(path)

	if err := keyring.DeletePassphrase(locked.ID); err != nil {
		fmt.Fprintln(os.Stderr, "No passphrase stored in keyring")
		return
	}

	fmt.Fprintln(os.Stderr, "Passphrase removed from keyring")
}

// KeyringStatus reports whether a passphrase is stored for the identity
func KeyringStatus(path string) {
	locked := loadID(path)

	if keyring.HasPassphrase(locked.ID) {
		fmt.Println("Passphrase: stored in keyring")
	} else {
		fmt.Println("Passphrase: not stored")
	}
}
