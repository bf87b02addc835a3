package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/tommilligan/crev/internal/crypto"
	"github.com/tommilligan/crev/internal/id"
)

// IDNew creates a passphrase-locked identity at path
func IDNew(path, url string) {
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(os.Stderr, "Error: %s already exists\n", path)
		os.Exit(1)
	} else if !errors.Is(err, fs.ErrNotExist) {
		HandleError(err)
	}

	passphrase, err := newPrompter("").ReadNewPassphrase()
	if err != nil {
		HandleError(err)
	}
	secret := []byte(passphrase)
	defer crypto.ClearBytes(secret)

	locked, err := id.Generate(url, secret)
	if err != nil {
		HandleError(err)
	}
	if err := locked.Save(path); err != nil {
		HandleError(err)
	}

	fmt.Fprintf(os.Stderr, "Created identity %s\n", path)
	fmt.Println(locked.ID)
}

// IDShow unlocks the identity at path and prints its public id
func IDShow(path string) {
	locked := loadID(path)

	passphrase, err := newPrompter(locked.ID).ReadPassphrase()
	if err != nil {
		HandleError(err)
	}
	secret := []byte(passphrase)
	defer crypto.ClearBytes(secret)

	if _, err := locked.Unlock(secret); err != nil {
		HandleError(err)
	}

	fmt.Println(locked.ID)
}
