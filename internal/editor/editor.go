package editor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// FileName is the name of the scratch file handed to the editor
const FileName = "crev.review"

var (
	ErrEditorFailed = errors.New("editor failed")
	ErrNoEditor     = errors.New("no editor configured")
)

// ExitError reports an editor that exited with a non-zero status
type ExitError struct {
	Command string
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("editor '%s' exited with code %d", e.Command, e.Code)
}

// Is lets errors.Is match any ExitError against ErrEditorFailed
func (e *ExitError) Is(target error) bool {
	return target == ErrEditorFailed
}

// Resolve returns the editor command to use
func Resolve() string {
	// Check VISUAL first
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if runtime.GOOS == "windows" {
		return "notepad"
	}
	return "vi"
}

// Session edits text in an external editor. Streams default to the
// process's own when nil.
type Session struct {
	Command string // empty means Resolve()
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// Edit writes text to a scratch file, opens it in the editor, waits for the
// editor to exit and returns the file's final contents.
func (s *Session) Edit(text string) (string, error) {
	dir, err := os.MkdirTemp("", "crev-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(text), 0600); err != nil {
		return "", fmt.Errorf("failed to write edit buffer: %w", err)
	}

	if err := s.run(path); err != nil {
		return "", err
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read edited file: %w", err)
	}
	return string(edited), nil
}

// run invokes the editor on path and waits for it to finish
func (s *Session) run(path string) error {
	command := s.Command
	if command == "" {
		command = Resolve()
	}

	if strings.TrimSpace(command) == "" {
		return ErrNoEditor
	}

	// Check if editor is available
	if _, err := exec.LookPath(command); err != nil {
		return fmt.Errorf("editor '%s' not found: %w\nPlease set VISUAL or EDITOR environment variable", command, err)
	}

	cmd := exec.Command(command, path)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if s.Stdin != nil {
		cmd.Stdin = s.Stdin
	}
	if s.Stdout != nil {
		cmd.Stdout = s.Stdout
	}
	if s.Stderr != nil {
		cmd.Stderr = s.Stderr
	}

	err := cmd.Run()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Command: command, Code: exitErr.ExitCode()}
	}
	return fmt.Errorf("failed to run editor '%s': %w", command, err)
}
