// Package content runs the edit-and-validate loop that turns operator
// edits into a parsed value.
package content

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrUserCanceled is returned when the operator declines to retry after a
// parse failure
var ErrUserCanceled = errors.New("user canceled")

// RetryPrompt is shown after a parse failure
const RetryPrompt = "Try again (y/n) "

// Content is a value with a canonical text form
type Content interface {
	String() string
}

// Editor lets the operator change text
type Editor interface {
	Edit(text string) (string, error)
}

// Asker asks the operator a yes/no question
type Asker interface {
	Ask(msg string) (bool, error)
}

// Loop wires the editor and the retry question together
type Loop struct {
	Editor Editor
	Asker  Asker
	Err    io.Writer // parse errors; os.Stderr when nil
}

// EditInteractively opens c's text form in the editor until parse accepts
// the result. After each parse failure the error is shown and the operator
// is asked whether to try again; the edited text, not the original, is
// reopened. Declining returns ErrUserCanceled.
func EditInteractively[T Content](l *Loop, c T, parse func(text string) (T, error)) (T, error) {
	var zero T
	errOut := l.Err
	if errOut == nil {
		errOut = os.Stderr
	}

	text := c.String()
	for {
		edited, err := l.Editor.Edit(text)
		if err != nil {
			return zero, err
		}

		parsed, err := parse(edited)
		if err == nil {
			return parsed, nil
		}

		fmt.Fprintf(errOut, "There was an error parsing content: %s\n", err)
		again, err := l.Asker.Ask(RetryPrompt)
		if err != nil {
			return zero, err
		}
		if !again {
			return zero, ErrUserCanceled
		}
		text = edited
	}
}
