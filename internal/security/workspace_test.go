package security

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func openWorkspace(t *testing.T, dir string) *Workspace {
	t.Helper()
	ws, err := New(dir)
	if err != nil {
		t.Fatalf("Failed to open workspace: %v", err)
	}
	t.Cleanup(func() { ws.Close() })
	return ws
}

func TestWorkspace_ValidateAndNormalize(t *testing.T) {
	ws := openWorkspace(t, t.TempDir())

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"simple file", "review.yaml", "review.yaml", nil},
		{"nested", "reviews/serde/1.0.yaml", "reviews/serde/1.0.yaml", nil},
		{"dot slash", "./review.yaml", "review.yaml", nil},
		{"redundant slashes", "a//b///review.yaml", "a/b/review.yaml", nil},
		{"dot segments", "a/./b/../review.yaml", "a/review.yaml", nil},
		{"hidden dir", ".crev/review.yaml", ".crev/review.yaml", nil},

		{"parent directory", "../review.yaml", "", ErrPathEscapes},
		{"nested parent", "a/../../review.yaml", "", ErrPathEscapes},
		{"absolute path", "/etc/passwd", "", ErrAbsolutePath},
		{"empty path", "", "", ErrEmptyPath},
	}
	if runtime.GOOS == "windows" {
		tests[8].wantErr = ErrPathEscapes
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ws.ValidateAndNormalize(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Expected %v for %q, got %v", tt.wantErr, tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for %q: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ValidateAndNormalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWorkspace_Abs(t *testing.T) {
	dir := t.TempDir()
	ws := openWorkspace(t, dir)

	got, err := ws.Abs("reviews/serde.yaml")
	if err != nil {
		t.Fatalf("Abs failed: %v", err)
	}
	want := filepath.Join(ws.Root(), "reviews", "serde.yaml")
	if got != want {
		t.Errorf("Abs = %q, want %q", got, want)
	}

	if _, err := ws.Abs("../x"); !errors.Is(err, ErrPathEscapes) {
		t.Errorf("Expected ErrPathEscapes, got %v", err)
	}
}

func TestWorkspace_ReadAndStat(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatalf("Failed to create subdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sub", "draft.yaml"), []byte("package: x\n"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	ws := openWorkspace(t, dir)

	data, err := ws.ReadFile("sub/draft.yaml")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "package: x\n" {
		t.Errorf("Content mismatch: got %q", data)
	}

	if _, err := ws.Stat("sub/draft.yaml"); err != nil {
		t.Errorf("Stat failed: %v", err)
	}
	if _, err := ws.Stat("missing.yaml"); !os.IsNotExist(err) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
	if _, err := ws.ReadFile("../outside.yaml"); err == nil {
		t.Error("Expected error reading outside workspace")
	}
}

func TestWorkspace_SymlinkEscape(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	outside := t.TempDir()
	secret := filepath.Join(outside, "secret.txt")
	if err := os.WriteFile(secret, []byte("secret"), 0600); err != nil {
		t.Fatalf("Failed to create outside file: %v", err)
	}

	dir := t.TempDir()
	if err := os.Symlink(secret, filepath.Join(dir, "link.yaml")); err != nil {
		t.Fatalf("Failed to create symlink: %v", err)
	}
	ws := openWorkspace(t, dir)

	data, err := ws.ReadFile("link.yaml")
	if err == nil {
		t.Errorf("Read through escaping symlink should fail, got %q", data)
	}
	if strings.Contains(string(data), "secret") {
		t.Error("Secret leaked through symlink")
	}
}
