// ABOUTME: Read-only repository queries: repo root detection and tracked/untracked file listing
// ABOUTME: Wraps the git CLI with exec.CommandContext and a short timeout

package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const gitTimeout = 5 * time.Second

// ErrNotRepo is returned when dir is not inside a git work tree or git is missing.
var ErrNotRepo = errors.New("not a git repository")

// RepoRoot returns the repository root for dir.
func RepoRoot(ctx context.Context, dir string) (string, error) {
	out, err := gitCmd(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// ProjectRoot returns the repository root for dir, or dir itself when it is
// not inside a repository.
func ProjectRoot(ctx context.Context, dir string) string {
	if root, err := RepoRoot(ctx, dir); err == nil && root != "" {
		return root
	}
	return dir
}

// ListFiles returns tracked and untracked files under dir, relative to dir,
// honoring .gitignore.
func ListFiles(ctx context.Context, dir string) ([]string, error) {
	out, err := gitCmd(ctx, dir, "ls-files", "--cached", "--others", "--exclude-standard", "-z")
	if err != nil {
		return nil, err
	}

	var files []string
	seen := make(map[string]bool)
	for _, f := range strings.Split(out, "\x00") {
		// Unmerged paths are listed once per stage.
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		files = append(files, f)
	}
	return files, nil
}

// gitCmd runs a validated git command in dir and returns stdout.
func gitCmd(ctx context.Context, dir string, args ...string) (string, error) {
	sanitizedArgs, err := sanitizeGitArgs(args)
	if err != nil {
		return "", fmt.Errorf("git command validation failed: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, gitTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", sanitizedArgs...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) || errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("git %s: %w", args[0], ErrNotRepo)
		}
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}
	return string(out), nil
}
