package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// EnvPassphrase overrides interactive passphrase entry when set
const EnvPassphrase = "CREV_PASSPHRASE"

var ErrNoTerminal = errors.New("cannot read passphrase without a terminal (set " + EnvPassphrase + ")")

// SecretStore looks up a previously saved passphrase
type SecretStore interface {
	Get(account string) (string, error)
}

// Prompter reads answers and passphrases from the operator.
// Ask reads lines from In; passphrases come from ReadSecret; every prompt
// and notice goes to Err. Create one with New and override fields in tests.
type Prompter struct {
	In         io.Reader
	Err        io.Writer
	ReadSecret func() ([]byte, error)
	LookupEnv  func(string) (string, bool)

	// Keyring, when set together with KeyringAccount, is consulted by
	// ReadPassphrase after the environment and before prompting.
	Keyring        SecretStore
	KeyringAccount string

	lines *bufio.Reader
}

// New returns a Prompter bound to the process terminal
func New() *Prompter {
	return &Prompter{
		In:         os.Stdin,
		Err:        os.Stderr,
		ReadSecret: readTerminalSecret,
		LookupEnv:  os.LookupEnv,
	}
}

func readTerminalSecret() ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNoTerminal
	}
	return term.ReadPassword(fd)
}

// readMasked shows label and reads one entry without echo
func (p *Prompter) readMasked(label string) (string, error) {
	fmt.Fprint(p.Err, label)
	secret, err := p.ReadSecret()
	fmt.Fprintln(p.Err) // New line after masked input
	if err != nil {
		return "", fmt.Errorf("failed to read passphrase: %w", err)
	}
	return string(secret), nil
}

// readLine reads one line, keeping buffered input for the next call
func (p *Prompter) readLine() (string, error) {
	if p.lines == nil {
		p.lines = bufio.NewReader(p.In)
	}
	line, err := p.lines.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}
	return line, err
}
