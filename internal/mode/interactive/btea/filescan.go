// ABOUTME: Async file scanning for the attach picker
// ABOUTME: Lists files via git (honoring .gitignore) with a shallow-walk fallback; keeps uploadable types

package btea

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/qnachat/internal/git"
	"github.com/mauromedda/qnachat/internal/staging"
)

// FileScanResultMsg carries the scanned file list back to the Update loop.
type FileScanResultMsg struct {
	Items []FileInfo
}

// scanProjectFilesCmd returns a tea.Cmd that lists uploadable files under root.
func scanProjectFilesCmd(root string) tea.Cmd {
	return func() tea.Msg {
		items := scanGitFiles(root)
		if items == nil {
			items = scanDirFiles(root)
		}
		sort.Slice(items, func(i, j int) bool { return items[i].RelPath < items[j].RelPath })
		return FileScanResultMsg{Items: items}
	}
}

// scanGitFiles lists files via git and returns uploadable entries.
// Returns nil if git is unavailable or root is not a git repo.
func scanGitFiles(root string) []FileInfo {
	files, err := git.ListFiles(context.Background(), root)
	if err != nil || len(files) == 0 {
		return nil
	}

	items := make([]FileInfo, 0, len(files))
	for _, rel := range files {
		if !staging.Allowed(rel) {
			continue
		}
		rel = filepath.FromSlash(rel)
		abs := filepath.Join(root, rel)
		info, err := os.Stat(abs)
		if err != nil || info.IsDir() {
			continue
		}
		items = append(items, FileInfo{
			Path:    abs,
			RelPath: rel,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	return items
}

// scanDirFiles performs a shallow walk (max 2 levels) as a fallback.
func scanDirFiles(root string) []FileInfo {
	var items []FileInfo
	maxDepth := 2

	_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // skip errors
		}

		rel, _ := filepath.Rel(root, path)
		if rel == "." {
			return nil
		}

		name := d.Name()
		if strings.HasPrefix(name, ".") || name == "node_modules" || name == "vendor" || name == "__pycache__" {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if strings.Count(rel, string(filepath.Separator)) >= maxDepth {
				return filepath.SkipDir
			}
			return nil
		}
		if !staging.Allowed(name) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		items = append(items, FileInfo{
			Path:    path,
			RelPath: rel,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
		return nil
	})
	return items
}
