// ABOUTME: Lipgloss palette for the TUI: speaker labels, selection, alerts and borders
// ABOUTME: Adaptive colours so light and dark terminals both read well

package btea

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// ThemeStyles is the full palette.
type ThemeStyles struct {
	User      lipgloss.Style
	Assistant lipgloss.Style
	History   lipgloss.Style
	System    lipgloss.Style

	Bold      lipgloss.Style
	Dim       lipgloss.Style
	Info      lipgloss.Style
	Secondary lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Selection lipgloss.Style
	Border    lipgloss.Style
	Action    lipgloss.Style
}

var styles = sync.OnceValue(func() ThemeStyles {
	return ThemeStyles{
		User:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "27", Dark: "75"}),
		Assistant: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}),
		History:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "30", Dark: "80"}),
		System:    lipgloss.NewStyle().Italic(true).Foreground(lipgloss.AdaptiveColor{Light: "241", Dark: "245"}),

		Bold:      lipgloss.NewStyle().Bold(true),
		Dim:       lipgloss.NewStyle().Faint(true),
		Info:      lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "26", Dark: "39"}),
		Secondary: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "244", Dark: "242"}),
		Warning:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "166", Dark: "214"}),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "78"}),
		Selection: lipgloss.NewStyle().Reverse(true),
		Border:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "250", Dark: "238"}),
		Action:    lipgloss.NewStyle().Underline(true).Foreground(lipgloss.AdaptiveColor{Light: "92", Dark: "141"}),
	}
})

// Styles returns the palette.
func Styles() ThemeStyles {
	return styles()
}
