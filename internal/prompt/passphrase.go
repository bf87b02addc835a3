package prompt

import (
	"fmt"

	"github.com/tommilligan/crev/internal/crypto"
)

// fromEnv returns the override passphrase, announcing its use
func (p *Prompter) fromEnv() (string, bool) {
	pass, ok := p.LookupEnv(EnvPassphrase)
	if !ok {
		return "", false
	}
	fmt.Fprintf(p.Err, "Using passphrase set in %s\n", EnvPassphrase)
	return pass, true
}

// ReadPassphrase obtains the passphrase of an existing identity
func (p *Prompter) ReadPassphrase() (string, error) {
	if pass, ok := p.fromEnv(); ok {
		return pass, nil
	}

	if p.Keyring != nil && p.KeyringAccount != "" {
		if pass, err := p.Keyring.Get(p.KeyringAccount); err == nil && pass != "" {
			fmt.Fprintln(p.Err, "Using passphrase from system keyring")
			return pass, nil
		}
	}

	return p.readMasked("Enter passphrase to unlock: ")
}

// ReadNewPassphrase asks for a new passphrase twice and returns it once
// both entries match. It re-prompts without limit; automation should set
// CREV_PASSPHRASE instead.
func (p *Prompter) ReadNewPassphrase() (string, error) {
	if pass, ok := p.fromEnv(); ok {
		return pass, nil
	}

	for {
		p1, err := p.readMasked("Enter new passphrase: ")
		if err != nil {
			return "", err
		}
		p2, err := p.readMasked("Enter new passphrase again: ")
		if err != nil {
			return "", err
		}

		if crypto.ConstantTimeCompare([]byte(p1), []byte(p2)) {
			return p1, nil
		}
		fmt.Fprintln(p.Err, "\nPassphrases don't match, try again.")
	}
}
