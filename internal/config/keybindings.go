// ABOUTME: Keybindings loader: maps TUI actions to key strings from keybindings.yaml
// ABOUTME: Global ~/.qnachat/keybindings.yaml is overridden per action by the project-local file

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// KeyAction represents an action that can be bound to keys
type KeyAction string

const (
	ActionSubmit   KeyAction = "submit"
	ActionNext     KeyAction = "next"
	ActionPrevious KeyAction = "previous"
	ActionDismiss  KeyAction = "dismiss"
	ActionAttach   KeyAction = "attach"
	ActionFallback KeyAction = "fallback"
	ActionPageUp   KeyAction = "pageUp"
	ActionPageDown KeyAction = "pageDown"
	ActionQuit     KeyAction = "quit"
)

// Keybindings holds the keys bound to each action.
type Keybindings struct {
	Bindings map[KeyAction][]string
}

// NewKeybindings creates a new Keybindings with default bindings
func NewKeybindings() *Keybindings {
	kb := &Keybindings{
		Bindings: make(map[KeyAction][]string),
	}
	kb.setDefaultBindings()
	return kb
}

func (kb *Keybindings) setDefaultBindings() {
	kb.Bindings[ActionSubmit] = []string{"enter"}
	kb.Bindings[ActionNext] = []string{"down", "ctrl+n"}
	kb.Bindings[ActionPrevious] = []string{"up", "ctrl+p"}
	kb.Bindings[ActionDismiss] = []string{"esc"}
	kb.Bindings[ActionAttach] = []string{"ctrl+f"}
	kb.Bindings[ActionFallback] = []string{"ctrl+l"}
	kb.Bindings[ActionPageUp] = []string{"pgup"}
	kb.Bindings[ActionPageDown] = []string{"pgdown"}
	kb.Bindings[ActionQuit] = []string{"ctrl+c"}
}

// LoadKeybindings loads keybindings from a file on top of the defaults.
// Unknown actions and empty key lists are ignored.
func LoadKeybindings(path string) (*Keybindings, error) {
	kb := NewKeybindings()
	if err := kb.merge(path); err != nil {
		return nil, err
	}
	return kb, nil
}

// LoadKeybindingsLayered applies the global file then the project file.
// Missing files are skipped.
func LoadKeybindingsLayered(projectRoot string) (*Keybindings, error) {
	kb := NewKeybindings()
	paths := []string{GlobalKeybindingsFile()}
	if projectRoot != "" {
		paths = append(paths, LocalKeybindingsFile(projectRoot))
	}
	for _, p := range paths {
		if err := kb.merge(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return kb, nil
}

func (kb *Keybindings) merge(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	for actionName, keys := range raw {
		action := KeyAction(actionName)
		if _, ok := kb.Bindings[action]; ok && len(keys) > 0 {
			kb.Bindings[action] = keys
		}
	}
	return nil
}

// GetBindings returns the bindings for an action
func (kb *Keybindings) GetBindings(action KeyAction) []string {
	if kb == nil {
		return nil
	}
	return kb.Bindings[action]
}

// ConflictInfo describes a key bound to more than one action.
type ConflictInfo struct {
	Key     string
	Actions []KeyAction
}

// Conflicts detects keys bound to multiple actions, sorted by key.
func (kb *Keybindings) Conflicts() []ConflictInfo {
	keyActions := make(map[string][]KeyAction)
	for action, keys := range kb.Bindings {
		for _, k := range keys {
			keyActions[k] = append(keyActions[k], action)
		}
	}

	var conflicts []ConflictInfo
	for _, k := range slices.Sorted(maps.Keys(keyActions)) {
		actions := keyActions[k]
		if len(actions) > 1 {
			slices.Sort(actions)
			conflicts = append(conflicts, ConflictInfo{Key: k, Actions: actions})
		}
	}
	return conflicts
}

// GlobalKeybindingsFile returns the path to the global keybindings file
func GlobalKeybindingsFile() string {
	return filepath.Join(GlobalDir(), "keybindings.yaml")
}

// LocalKeybindingsFile returns the path to the local keybindings file
func LocalKeybindingsFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), "keybindings.yaml")
}
