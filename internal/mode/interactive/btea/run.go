// ABOUTME: Entry point for the Bubble Tea interactive TUI
// ABOUTME: Redirects logging to a file while the alt screen is active, then blocks until exit

package btea

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/qnachat/internal/config"
	"github.com/mauromedda/qnachat/internal/log"
)

// Run starts the Bubble Tea interactive app. Blocks until the user exits.
func Run(deps AppDeps) error {
	restore := redirectLog(config.LogFile())
	defer restore()

	m := NewAppModel(deps)
	defer m.sh.cancel()

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithOutput(os.Stderr),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("bubble tea: %w", err)
	}
	return nil
}

// redirectLog sends log output to path; stderr belongs to the TUI.
// On failure logging is discarded for the session.
func redirectLog(path string) func() {
	if err := config.EnsureDir(filepath.Dir(path)); err != nil {
		prev := log.SetOutput(io.Discard)
		return func() { log.SetOutput(prev) }
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		prev := log.SetOutput(io.Discard)
		return func() { log.SetOutput(prev) }
	}
	prev := log.SetOutput(f)
	return func() {
		log.SetOutput(prev)
		f.Close()
	}
}
