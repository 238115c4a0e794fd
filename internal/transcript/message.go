// ABOUTME: Transcript message model: roles, display labels and server history prefixes
// ABOUTME: Parse maps raw "Human: "/"AI: "/"System: " lines to messages, dropping unknown ones

package transcript

import "strings"

// Role distinguishes display styling and fallback eligibility.
type Role string

const (
	User      Role = "user"
	Assistant Role = "assistant"
	System    Role = "system"
	// AssistantFallbackSource marks assistant lines replayed from server
	// history; only these can carry the fallback action after a rebuild.
	AssistantFallbackSource Role = "assistant_history"
)

// Label returns the sender name shown before the message text.
func (r Role) Label() string {
	switch r {
	case User:
		return "You"
	case Assistant:
		return "AI"
	case AssistantFallbackSource:
		return "ML"
	default:
		return "System"
	}
}

// History line prefixes. The server tags roles by text prefix, so these
// must match byte for byte.
const (
	PrefixHuman  = "Human: "
	PrefixAI     = "AI: "
	PrefixSystem = "System: "
)

// Message is one rendered transcript entry.
type Message struct {
	Role               Role   `json:"role"`
	Text               string `json:"text"`
	ShowFallbackAction bool   `json:"show_fallback_action,omitempty"`
	FallbackQuestion   string `json:"fallback_question,omitempty"`
}

// FallbackContext says whether, and on which text, the fallback action
// should be offered after a rebuild.
type FallbackContext struct {
	Available   bool
	NoMatchText string
	Question    string
}

// Parse converts server history to messages. Every assistant line whose text
// equals fc.NoMatchText gets the fallback action when fc.Available; identical
// texts are not told apart. An empty NoMatchText matches nothing.
func Parse(history []string, fc FallbackContext) []Message {
	out := make([]Message, 0, len(history))
	for _, line := range history {
		switch {
		case strings.HasPrefix(line, PrefixHuman):
			out = append(out, Message{Role: User, Text: line[len(PrefixHuman):]})
		case strings.HasPrefix(line, PrefixAI):
			text := line[len(PrefixAI):]
			m := Message{Role: AssistantFallbackSource, Text: text}
			if fc.Available && fc.NoMatchText != "" && text == fc.NoMatchText {
				m.ShowFallbackAction = true
				m.FallbackQuestion = fc.Question
			}
			out = append(out, m)
		case strings.HasPrefix(line, PrefixSystem):
			out = append(out, Message{Role: System, Text: line[len(PrefixSystem):]})
		}
	}
	return out
}
