package prompt

import (
	"fmt"
	"strings"
)

// Ask writes msg and reads replies until one is y/Y or n/N.
// It reports true for yes.
func (p *Prompter) Ask(msg string) (bool, error) {
	for {
		fmt.Fprint(p.Err, msg)
		reply, err := p.readLine()
		if err != nil {
			return false, fmt.Errorf("failed to read reply: %w", err)
		}

		switch strings.TrimSpace(reply) {
		case "y", "Y":
			return true, nil
		case "n", "N":
			return false, nil
		}
	}
}
