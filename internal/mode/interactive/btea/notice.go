// ABOUTME: NoticeModel overlay shows multi-line command output such as /help and /status
// ABOUTME: Any key dismisses it by emitting DismissOverlayMsg

package btea

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DismissOverlayMsg closes the current overlay.
type DismissOverlayMsg struct{}

// NoticeModel displays read-only text until a key is pressed.
type NoticeModel struct {
	text  string
	width int
}

// NewNoticeModel creates a notice for text.
func NewNoticeModel(text string) NoticeModel {
	return NoticeModel{text: strings.TrimRight(text, "\n")}
}

// Init returns nil.
func (m NoticeModel) Init() tea.Cmd { return nil }

// Update dismisses on any key.
func (m NoticeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		return m, func() tea.Msg { return DismissOverlayMsg{} }
	}
	return m, nil
}

// View renders the text in a rounded box.
func (m NoticeModel) View() string {
	s := Styles()
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Border.GetForeground()).
		Padding(0, 1)
	if m.width > 4 {
		box = box.MaxWidth(m.width)
	}
	return box.Render(m.text + "\n\n" + s.Dim.Render("press any key to close"))
}
