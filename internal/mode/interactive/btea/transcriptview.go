// ABOUTME: Renders transcript messages into viewport content with per-message line offsets
// ABOUTME: Assistant answers go through glamour; the fallback action is shown as a key hint

package btea

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/qnachat/internal/render"
	"github.com/mauromedda/qnachat/internal/transcript"
)

// fallbackHint is appended under messages offering the fallback action,
// naming the key currently bound to it.
func fallbackHint(b key.Binding) string {
	return "[" + b.Help().Key + "] Ask LLM for answer"
}

// renderTranscript returns the viewport content and the first line of each
// message, used to scroll to a transcript.ScrollTarget.
func renderTranscript(md *render.Markdown, msgs []transcript.Message, width int, hint string) (string, []int) {
	s := Styles()
	var b strings.Builder
	offsets := make([]int, len(msgs))
	line := 0
	for i, m := range msgs {
		if i > 0 {
			b.WriteString("\n\n")
			line++
		}
		offsets[i] = line
		block := renderMessage(s, md, m, width, hint)
		b.WriteString(block)
		line += lipgloss.Height(block)
	}
	return b.String(), offsets
}

func renderMessage(s ThemeStyles, md *render.Markdown, m transcript.Message, width int, hint string) string {
	label := m.Role.Label() + ":"
	var head lipgloss.Style
	switch m.Role {
	case transcript.User:
		head = s.User
	case transcript.Assistant:
		head = s.Assistant
	case transcript.AssistantFallbackSource:
		head = s.History
	default:
		head = s.System
	}

	var body string
	switch m.Role {
	case transcript.Assistant, transcript.AssistantFallbackSource:
		body = md.Answer(m.Text, max(20, width-2))
	case transcript.System:
		body = s.System.Render(m.Text)
	default:
		body = lipgloss.NewStyle().Width(max(20, width-2)).Render(m.Text)
	}

	out := head.Render(label) + "\n" + body
	if m.ShowFallbackAction {
		out += "\n" + s.Action.Render(hint)
	}
	return out
}

// scrollOffset maps a scroll target to a viewport line.
func scrollOffset(target transcript.ScrollTarget, offsets []int) (int, bool) {
	if target.AtBottom() || target.Index >= len(offsets) {
		return 0, false
	}
	return offsets[target.Index], true
}
