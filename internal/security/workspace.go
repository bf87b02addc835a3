package security

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrPathEscapes  = errors.New("path escapes workspace")
	ErrAbsolutePath = errors.New("absolute paths are not allowed")
	ErrEmptyPath    = errors.New("empty path not allowed")
)

// Workspace resolves operator-supplied paths inside a root directory.
// Reads go through os.Root, so symlinks cannot lead outside the root either.
type Workspace struct {
	root *os.Root
	path string
}

// New opens the workspace rooted at dir
func New(dir string) (*Workspace, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	root, err := os.OpenRoot(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workspace root: %w", err)
	}

	return &Workspace{root: root, path: absPath}, nil
}

// Close releases the root handle
func (w *Workspace) Close() error {
	if w.root != nil {
		return w.root.Close()
	}
	return nil
}

// Root returns the absolute workspace directory
func (w *Workspace) Root() string {
	return w.path
}

// ValidateAndNormalize returns userPath as a clean, slash-separated path
// relative to the workspace. It rejects empty, absolute and escaping paths
// and Windows reserved names.
func (w *Workspace) ValidateAndNormalize(userPath string) (string, error) {
	if userPath == "" {
		return "", ErrEmptyPath
	}

	if !filepath.IsLocal(userPath) {
		if filepath.IsAbs(userPath) {
			return "", fmt.Errorf("%w: %s", ErrAbsolutePath, userPath)
		}
		return "", fmt.Errorf("%w: %s", ErrPathEscapes, userPath)
	}

	rel, err := filepath.Rel(w.path, filepath.Join(w.path, filepath.Clean(userPath)))
	if err != nil {
		return "", fmt.Errorf("failed to compute relative path: %w", err)
	}
	if strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
		return "", fmt.Errorf("%w: %s", ErrPathEscapes, userPath)
	}

	return filepath.ToSlash(rel), nil
}

// Abs validates userPath and returns its absolute location
func (w *Workspace) Abs(userPath string) (string, error) {
	rel, err := w.ValidateAndNormalize(userPath)
	if err != nil {
		return "", err
	}
	return filepath.Join(w.path, filepath.FromSlash(rel)), nil
}

// ReadFile reads a file inside the workspace
func (w *Workspace) ReadFile(userPath string) ([]byte, error) {
	rel, err := w.ValidateAndNormalize(userPath)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	return w.root.ReadFile(filepath.FromSlash(rel))
}

// Stat stats a file inside the workspace
func (w *Workspace) Stat(userPath string) (os.FileInfo, error) {
	rel, err := w.ValidateAndNormalize(userPath)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	return w.root.Stat(filepath.FromSlash(rel))
}
