// ABOUTME: File staging manager: deduplicated staged set keyed by name, size and mtime
// ABOUTME: Tracks drift from the baseline recorded at the last successful upload

package staging

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Key is the identity of a staged file. Re-selecting a file with the same
// key is a no-op.
type Key struct {
	Name string
	Size int64
	// LastModified is the modification time in Unix milliseconds.
	LastModified int64
}

func (k Key) String() string {
	return fmt.Sprintf("%s (%d bytes)", k.Name, k.Size)
}

// File is a staged file descriptor.
type File struct {
	Key
	// Path is where the content is read from at upload time.
	Path string
}

// ErrNotStaged is returned by Resolve when nothing matches.
var ErrNotStaged = errors.New("not staged")

// DisallowedError lists the candidates rejected by the allow-list in one batch.
type DisallowedError struct {
	Names []string
}

func (e *DisallowedError) Error() string {
	return fmt.Sprintf("invalid file type: %s (allowed: %s)",
		strings.Join(e.Names, ", "), strings.Join(AllowedExtensions, " "))
}

// Manager holds the staged set and the upload baseline.
type Manager struct {
	mu       sync.Mutex
	order    []Key
	staged   map[Key]File
	baseline map[Key]struct{}
}

// NewManager returns an empty manager with an empty baseline.
func NewManager() *Manager {
	return &Manager{
		staged:   make(map[Key]File),
		baseline: make(map[Key]struct{}),
	}
}

// Add stages every allowed candidate not already staged. Disallowed
// candidates are skipped and reported together as *DisallowedError.
func (m *Manager) Add(candidates []File) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var rejected []string
	for _, f := range candidates {
		if !Allowed(f.Name) {
			rejected = append(rejected, f.Name)
			continue
		}
		if _, ok := m.staged[f.Key]; ok {
			continue
		}
		m.staged[f.Key] = f
		m.order = append(m.order, f.Key)
	}
	if len(rejected) > 0 {
		return &DisallowedError{Names: rejected}
	}
	return nil
}

// Remove unstages key. It returns false when key was not staged.
func (m *Manager) Remove(key Key) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.staged[key]; !ok {
		return false
	}
	delete(m.staged, key)
	m.order = slices.DeleteFunc(m.order, func(k Key) bool { return k == key })
	return true
}

// Clear empties the staged set. The baseline is kept.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	clear(m.staged)
	m.order = nil
}

// IsDirty reports whether the staged key set differs from the baseline.
func (m *Manager) IsDirty() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.staged) != len(m.baseline) {
		return true
	}
	for k := range m.staged {
		if _, ok := m.baseline[k]; !ok {
			return true
		}
	}
	return false
}

// CommitBaseline replaces the baseline with the current staged keys.
func (m *Manager) CommitBaseline() {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := make(map[Key]struct{}, len(m.staged))
	for k := range m.staged {
		next[k] = struct{}{}
	}
	m.baseline = next
}

// ResetBaseline empties the baseline, e.g. after a full reset.
func (m *Manager) ResetBaseline() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.baseline = make(map[Key]struct{})
}

// Staged returns the staged files in the order they were added.
func (m *Manager) Staged() []File {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]File, 0, len(m.order))
	for _, k := range m.order {
		out = append(out, m.staged[k])
	}
	return out
}

// Keys returns the staged keys in the order they were added.
func (m *Manager) Keys() []Key {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.order)
}

// Len returns the number of staged files.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.order)
}

// Labels returns the display label of each staged file in the order they
// were added. A name staged once is its own label; a name staged several
// times (the same file edited between attaches) is labelled "name#n",
// numbering those entries from 1.
func (m *Manager) Labels() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return labels(m.order)
}

func labels(order []Key) []string {
	count := make(map[string]int, len(order))
	for _, k := range order {
		count[k.Name]++
	}
	seen := make(map[string]int, len(order))
	out := make([]string, len(order))
	for i, k := range order {
		if count[k.Name] == 1 {
			out[i] = k.Name
			continue
		}
		seen[k.Name]++
		out[i] = fmt.Sprintf("%s#%d", k.Name, seen[k.Name])
	}
	return out
}

// Resolve maps a label from Labels, or a bare name staged exactly once, to
// its key. A bare name shared by several entries is ambiguous.
func (m *Manager) Resolve(selector string) (Key, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matches []string
	for i, l := range labels(m.order) {
		k := m.order[i]
		if l == selector {
			return k, nil
		}
		if k.Name == selector {
			matches = append(matches, l)
		}
	}
	if len(matches) == 0 {
		return Key{}, fmt.Errorf("%s: %w", selector, ErrNotStaged)
	}
	return Key{}, fmt.Errorf("%s is staged %d times; use one of %s", selector, len(matches), strings.Join(matches, ", "))
}
