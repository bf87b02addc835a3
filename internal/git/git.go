package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// IsGitRepo checks if the working directory is inside a git repository
func IsGitRepo(workDir string) bool {
	cmd := exec.Command("git", "rev-parse", "--is-inside-work-tree")
	cmd.Dir = workDir
	err := cmd.Run()
	return err == nil
}

// IsTracked checks if a file is tracked by git
func IsTracked(workDir, path string) bool {
	cmd := exec.Command("git", "ls-files", "--", path)
	cmd.Dir = workDir
	output, err := cmd.Output()

	if err != nil {
		return false
	}

	return len(strings.TrimSpace(string(output))) > 0
}

// IsIgnored checks if a file is ignored by git (handles all .gitignore files)
func IsIgnored(workDir, path string) bool {
	cmd := exec.Command("git", "check-ignore", "-q", "--", path)
	cmd.Dir = workDir
	err := cmd.Run()

	// git check-ignore returns exit code 0 if file is ignored
	return err == nil
}

// TrackingHint returns a one-line note about path's git status, or "" when
// there is nothing to say (not a repository, or already tracked)
func TrackingHint(workDir, path string) string {
	if !IsGitRepo(workDir) {
		return ""
	}
	if IsIgnored(workDir, path) {
		return fmt.Sprintf("warning: %s is ignored by git", path)
	}
	if !IsTracked(workDir, path) {
		return fmt.Sprintf("hint: %s is not tracked (run: git add %s)", path, path)
	}
	return ""
}
