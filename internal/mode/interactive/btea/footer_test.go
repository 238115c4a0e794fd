// ABOUTME: Tests for FooterModel Bubble Tea leaf component
// ABOUTME: Verifies status line content, alert precedence over help, spinner gating and key help

package btea

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/qnachat/internal/config"
)

// Compile-time check: FooterModel must satisfy tea.Model.
var _ tea.Model = FooterModel{}

func TestFooterModel_Init(t *testing.T) {
	if cmd := NewFooterModel().Init(); cmd != nil {
		t.Error("Init() returned non-nil cmd")
	}
}

func TestFooterModel_StatusLine(t *testing.T) {
	m := NewFooterModel().
		WithServer("http://localhost:5000").
		WithState("Uploading...").
		WithStaged([]string{"faq.md", "notes.txt"}, true)

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 2 {
		t.Fatalf("View() has %d lines; want 2", len(lines))
	}
	for _, want := range []string{"http://localhost:5000", "Uploading...", "faq.md, notes.txt", "pending upload"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("line 1 missing %q: %q", want, lines[0])
		}
	}
}

func TestFooterModel_CleanStagingHasNoMarker(t *testing.T) {
	m := NewFooterModel().WithStaged([]string{"faq.md"}, false)
	if strings.Contains(m.View(), "pending upload") {
		t.Error("clean staging shows the pending marker")
	}
}

func TestFooterModel_AlertReplacesHelp(t *testing.T) {
	m := NewFooterModel()
	if !strings.Contains(m.View(), "send/stop") {
		t.Error("idle footer does not show key help")
	}

	m = m.WithAlert("Upload successful.", alertInfo)
	if m.Alert() != "Upload successful." {
		t.Errorf("Alert() = %q", m.Alert())
	}
	if v := m.View(); !strings.Contains(v, "Upload successful.") || strings.Contains(v, "send/stop") {
		t.Errorf("alert did not replace help: %q", v)
	}

	if m = m.ClearAlert(); m.Alert() != "" {
		t.Error("ClearAlert() left the alert")
	}
}

func TestFooterModel_SpinnerStopsWhenIdle(t *testing.T) {
	m := NewFooterModel()
	tick := m.SpinnerTick()()

	if _, cmd := m.Update(tick); cmd != nil {
		t.Error("idle footer kept the spinner running")
	}

	busy := m.WithState("Generating...")
	if _, cmd := busy.Update(tick); cmd == nil {
		t.Error("busy footer stopped the spinner")
	}
	if _, ok := tick.(spinner.TickMsg); !ok {
		t.Errorf("SpinnerTick produced %T", tick)
	}
}

func TestFooterModel_TruncatesToWidth(t *testing.T) {
	updated, _ := NewFooterModel().
		WithServer(strings.Repeat("x", 200)).
		Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	line1 := strings.Split(updated.(FooterModel).View(), "\n")[0]
	if len([]rune(line1)) > 40 {
		t.Errorf("line 1 is %d runes wide; want <= 40", len([]rune(line1)))
	}
}

func TestKeyMapFrom_UsesConfiguredKeys(t *testing.T) {
	kb := config.NewKeybindings()
	kb.Bindings[config.ActionFallback] = []string{"f2"}

	keys := KeyMapFrom(kb)
	if got := keys.Fallback.Keys(); len(got) != 1 || got[0] != "f2" {
		t.Errorf("fallback keys = %v", got)
	}
	if got := keys.Next.Help().Key; got != "↓" {
		t.Errorf("next help = %q", got)
	}

	updated, _ := NewFooterModel().WithKeys(keys).Update(tea.WindowSizeMsg{Width: 200})
	if view := updated.(FooterModel).View(); !strings.Contains(view, "f2") {
		t.Errorf("footer help missing configured key: %q", view)
	}
}
