package fsutil

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	DirPerm  = 0700 // Directory: owner rwx only
	FilePerm = 0600 // File: owner rw only
	TempExt  = ".tmp"
)

// rename is replaced in tests to simulate a crash before the final step
var rename = os.Rename

// TempPath returns the sibling path used while writing path.
// The extension is replaced by .tmp; dotfiles and extensionless names get
// .tmp appended, and a target already ending in .tmp gets a second one so
// the sibling never coincides with the target.
func TempPath(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)

	tmp := path + TempExt
	if ext != "" && ext != base {
		tmp = strings.TrimSuffix(path, ext) + TempExt
	}
	if tmp == path {
		tmp = path + TempExt
	}
	return tmp
}

// WriteString atomically replaces path with text
func WriteString(path, text string) error {
	return WriteWith(path, func(w io.Writer) error {
		_, err := io.WriteString(w, text)
		return err
	})
}

// WriteFile atomically replaces path with data
func WriteFile(path string, data []byte) error {
	return WriteWith(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// WriteWith atomically replaces path with whatever fn writes.
// If fn or any later step fails, path keeps its previous content and the
// temporary sibling may be left behind.
func WriteWith(path string, fn func(w io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	tmpPath := TempPath(path)
	if err := writeTemp(tmpPath, fn); err != nil {
		return err
	}

	if err := rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

func writeTemp(tmpPath string, fn func(w io.Writer) error) error {
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FilePerm)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	w := bufio.NewWriter(f)
	if err := fn(w); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", tmpPath, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush %s: %w", tmpPath, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("failed to sync %s: %w", tmpPath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpPath, err)
	}
	return nil
}
