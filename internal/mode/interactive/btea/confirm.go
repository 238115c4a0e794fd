// ABOUTME: ConfirmModel is a y/n overlay guarding destructive resets
// ABOUTME: Emits ConfirmResultMsg; any key other than y/Y counts as no

package btea

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Confirmation prompts for the two reset commands.
const (
	confirmClearChat = "Are you sure you want to clear the chat history? This action cannot be undone. (y/n)"
	confirmClearAll  = "Are you sure you want to clear all data? This will remove the chat history and uploaded file content. This action cannot be undone. (y/n)"
)

// ConfirmResultMsg carries the answer.
type ConfirmResultMsg struct {
	Yes bool
	All bool
}

// ConfirmModel asks a yes/no question about a reset.
type ConfirmModel struct {
	all   bool
	width int
}

// NewConfirmModel returns a prompt for /clearall when all is true, /clear otherwise.
func NewConfirmModel(all bool) ConfirmModel {
	return ConfirmModel{all: all}
}

// Init returns nil.
func (m ConfirmModel) Init() tea.Cmd { return nil }

// Update resolves on the first key press.
func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = ws.Width
		return m, nil
	}
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	yes := km.String() == "y" || km.String() == "Y"
	all := m.all
	return m, func() tea.Msg { return ConfirmResultMsg{Yes: yes, All: all} }
}

// View renders the prompt.
func (m ConfirmModel) View() string {
	prompt := confirmClearChat
	if m.all {
		prompt = confirmClearAll
	}
	style := Styles().Warning
	if m.width > 0 {
		style = style.Width(m.width)
	}
	return style.Render(prompt)
}
