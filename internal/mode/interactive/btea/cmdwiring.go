// ABOUTME: Command wiring infrastructure: builds CommandContext with all callbacks wired to AppModel
// ABOUTME: Uses cmdSideEffects struct to capture signals from callbacks, applied after Dispatch returns

package btea

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/qnachat/internal/api"
	"github.com/mauromedda/qnachat/internal/commands"
	"github.com/mauromedda/qnachat/internal/request"
	"github.com/mauromedda/qnachat/internal/staging"
)

// cmdSideEffects captures signals from command callbacks that need to
// produce tea.Cmd or mutate AppModel after Dispatch returns.
type cmdSideEffects struct {
	quit       bool
	openPicker bool
	attach     []string

	upload       bool
	uploadAction api.UploadAction

	confirm    bool
	confirmAll bool

	fallback bool
}

// buildCommandContext creates a CommandContext with callbacks wired as
// closures over AppModel fields and a shared cmdSideEffects pointer.
func (m AppModel) buildCommandContext() (*commands.CommandContext, *cmdSideEffects) {
	effects := &cmdSideEffects{}

	ctx := &commands.CommandContext{
		ServerURL: m.settings.ServerURL,
		Version:   m.deps.Version,
		Messages:  m.sh.transcript.Len(),
		Staged:    m.sh.staging.Labels(),
		Dirty:     m.sh.staging.IsDirty(),
		Sending:   m.sh.controller.State() == request.Sending,

		ExitFn: func() {
			effects.quit = true
		},

		// --- Staging ---

		OpenPicker: func() {
			effects.openPicker = true
		},

		Attach: func(paths []string) (string, error) {
			effects.attach = paths
			return fmt.Sprintf("Staging %d file(s)...", len(paths)), nil
		},

		Detach: func(selector string) (int, error) {
			k, err := m.sh.staging.Resolve(selector)
			if errors.Is(err, staging.ErrNotStaged) {
				return 0, nil
			}
			if err != nil {
				return 0, err
			}
			m.sh.staging.Remove(k)
			return 1, nil
		},

		Upload: func(action string) error {
			a, err := api.ParseUploadAction(strings.ToLower(action))
			if err != nil {
				return err
			}
			effects.upload = true
			effects.uploadAction = a
			return nil
		},

		// --- Conversation ---

		Clear: func(all bool) {
			effects.confirm = true
			effects.confirmAll = all
		},

		Export: m.exportTranscript,

		Fallback: func() error {
			if err := m.fallbackAvailable(); err != nil {
				return err
			}
			effects.fallback = true
			return nil
		},
	}

	return ctx, effects
}

// handleSlashCommand dispatches text through the registry and applies effects.
func (m AppModel) handleSlashCommand(text string) (tea.Model, tea.Cmd) {
	ctx, effects := m.buildCommandContext()
	result, err := m.cmdRegistry.Dispatch(ctx, text)
	if err != nil {
		m.footer = m.footer.WithAlert(err.Error(), alertError)
		return m.syncStaging(), nil
	}
	return m.applyEffects(effects, result)
}

// applyEffects reads the side-effect flags and mutates AppModel accordingly.
// Returns the updated model and optional tea.Cmd.
func (m AppModel) applyEffects(effects *cmdSideEffects, result string) (tea.Model, tea.Cmd) {
	if effects.quit {
		m.sh.cancel()
		return m, tea.Quit
	}

	m = m.syncStaging()
	switch {
	case strings.Contains(result, "\n"):
		notice, _ := NewNoticeModel(result).Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.overlay = notice
	case result != "":
		m.footer = m.footer.WithAlert(result, alertInfo)
	}

	switch {
	case effects.openPicker:
		return m.openPicker()
	case len(effects.attach) > 0:
		return m.layout(), m.describeCmd(effects.attach)
	case effects.upload:
		return m.startUpload(effects.uploadAction)
	case effects.confirm:
		m.overlay, _ = NewConfirmModel(effects.confirmAll).Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	case effects.fallback:
		return m.triggerFallback()
	}
	return m.layout(), nil
}
