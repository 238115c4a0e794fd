// ABOUTME: Key bindings for the interactive TUI built on bubbles/key
// ABOUTME: Up/down drive the suggestion list when it is shown; keys come from config.Keybindings

package btea

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/mauromedda/qnachat/internal/config"
	"github.com/mauromedda/qnachat/internal/log"
)

// KeyMap holds every binding the root model reacts to.
type KeyMap struct {
	Submit   key.Binding
	Next     key.Binding
	Previous key.Binding
	Dismiss  key.Binding
	Attach   key.Binding
	Fallback key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMapFrom(config.NewKeybindings())
}

// KeyMapFrom builds a KeyMap from loaded keybindings. Conflicting keys are
// logged; the first matching case in the key handler wins.
func KeyMapFrom(kb *config.Keybindings) KeyMap {
	if kb == nil {
		kb = config.NewKeybindings()
	}
	for _, c := range kb.Conflicts() {
		log.Warn("keybindings: %q bound to %v", c.Key, c.Actions)
	}
	bind := func(action config.KeyAction, desc string) key.Binding {
		keys := kb.GetBindings(action)
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(helpLabel(keys), desc))
	}
	return KeyMap{
		Submit:   bind(config.ActionSubmit, "send/stop"),
		Next:     bind(config.ActionNext, "next"),
		Previous: bind(config.ActionPrevious, "previous"),
		Dismiss:  bind(config.ActionDismiss, "dismiss"),
		Attach:   bind(config.ActionAttach, "attach"),
		Fallback: bind(config.ActionFallback, "ask LLM"),
		PageUp:   bind(config.ActionPageUp, "scroll up"),
		PageDown: bind(config.ActionPageDown, "scroll down"),
		Quit:     bind(config.ActionQuit, "stop/quit"),
	}
}

var arrowLabels = map[string]string{"up": "↑", "down": "↓", "pgdown": "pgdn"}

func helpLabel(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	if l, ok := arrowLabels[keys[0]]; ok {
		return l
	}
	return strings.ToLower(keys[0])
}

// ShortHelp lists the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Attach, k.Fallback, k.Dismiss, k.Quit}
}
