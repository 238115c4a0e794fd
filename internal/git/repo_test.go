// ABOUTME: Tests for repo root detection and file listing against a scratch repository
// ABOUTME: Skipped when the git binary is not installed

package git

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"testing"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

// initRepo creates a repository with one tracked, one untracked and one
// ignored file.
func initRepo(t *testing.T) string {
	t.Helper()
	requireGit(t)
	dir := t.TempDir()

	run := func(args ...string) {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null", "GIT_CONFIG_NOSYSTEM=1")
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v: %v\n%s", args, err, out)
		}
	}
	write := func(name, content string) {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	run("init", "-q")
	write(".gitignore", "*.log\n")
	write("docs/faq.md", "# FAQ\n")
	write("notes.txt", "untracked\n")
	write("debug.log", "ignored\n")
	run("add", ".gitignore", "docs/faq.md")
	return dir
}

func TestRepoRoot(t *testing.T) {
	dir := initRepo(t)

	root, err := RepoRoot(context.Background(), filepath.Join(dir, "docs"))
	if err != nil {
		t.Fatalf("RepoRoot() error: %v", err)
	}
	want, _ := filepath.EvalSymlinks(dir)
	got, _ := filepath.EvalSymlinks(root)
	if got != want {
		t.Errorf("RepoRoot() = %q; want %q", got, want)
	}
}

func TestRepoRoot_NotRepo(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()

	_, err := RepoRoot(context.Background(), dir)
	if !errors.Is(err, ErrNotRepo) {
		t.Errorf("err = %v; want ErrNotRepo", err)
	}
	if got := ProjectRoot(context.Background(), dir); got != dir {
		t.Errorf("ProjectRoot() = %q; want %q", got, dir)
	}
}

func TestListFiles(t *testing.T) {
	dir := initRepo(t)

	files, err := ListFiles(context.Background(), dir)
	if err != nil {
		t.Fatalf("ListFiles() error: %v", err)
	}
	slices.Sort(files)
	want := []string{".gitignore", "docs/faq.md", "notes.txt"}
	if !slices.Equal(files, want) {
		t.Errorf("ListFiles() = %v; want %v", files, want)
	}
}
