// Package keyring caches identity passphrases in the OS keyring.
package keyring

import (
	"github.com/zalando/go-keyring"
)

const serviceName = "crev"

// Store reads passphrases from the OS keyring
type Store struct{}

// Get retrieves the passphrase saved for the identity id
func (Store) Get(id string) (string, error) {
	return keyring.Get(serviceName, id)
}

// SavePassphrase stores a passphrase for the identity id
func SavePassphrase(id string, passphrase string) error {
	return keyring.Set(serviceName, id, passphrase)
}

// DeletePassphrase removes the passphrase for the identity id
func DeletePassphrase(id string) error {
	return keyring.Delete(serviceName, id)
}

// HasPassphrase checks if a passphrase is stored for the identity id
func HasPassphrase(id string) bool {
	_, err := keyring.Get(serviceName, id)
	return err == nil
}
