// ABOUTME: Transcript reconciler: rebuilds from server history, appends local notes, persists
// ABOUTME: Every mutation is mirrored to the chatHistory slot; persistence failures are logged only

package transcript

import (
	"encoding/json"
	"errors"

	"github.com/mauromedda/qnachat/internal/log"
	"github.com/mauromedda/qnachat/internal/storage"
)

// ScrollTarget tells the view where to scroll after a mutation. Index is a
// message index, or -1 for the bottom.
type ScrollTarget struct {
	Index int
}

// Bottom is the scroll-to-end target.
var Bottom = ScrollTarget{Index: -1}

// AtBottom reports whether the target is the end of the transcript.
func (s ScrollTarget) AtBottom() bool { return s.Index < 0 }

// Reconciler owns the displayed transcript and its persisted copy.
type Reconciler struct {
	store    storage.Store
	messages []Message
}

// NewReconciler returns an empty reconciler persisting to store.
func NewReconciler(store storage.Store) *Reconciler {
	return &Reconciler{store: store}
}

// Rebuild replaces the transcript with the parsed history.
func (r *Reconciler) Rebuild(history []string, fc FallbackContext) ScrollTarget {
	r.messages = Parse(history, fc)
	r.persist()
	return r.latestUser()
}

// Append adds one message without a rebuild.
func (r *Reconciler) Append(m Message) ScrollTarget {
	r.messages = append(r.messages[:len(r.messages):len(r.messages)], m)
	r.persist()
	switch m.Role {
	case User, Assistant, AssistantFallbackSource:
		return r.latestUser()
	default:
		return Bottom
	}
}

// ApplyResponse records a chat answer. With server history the transcript is
// rebuilt from it; without, the answer is appended as a live message.
func (r *Reconciler) ApplyResponse(answer string, history []string, fc FallbackContext) ScrollTarget {
	if history == nil {
		m := Message{Role: Assistant, Text: answer}
		if fc.Available {
			m.ShowFallbackAction = true
			m.FallbackQuestion = fc.Question
		}
		return r.Append(m)
	}
	return r.Rebuild(history, fc)
}

// Restore loads the persisted transcript verbatim. It returns false when
// nothing usable was stored.
func (r *Reconciler) Restore() (ScrollTarget, bool) {
	raw, err := r.store.Get(storage.SlotChatHistory)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Warn("transcript: reading %s: %v", storage.SlotChatHistory, err)
		}
		return Bottom, false
	}
	var msgs []Message
	if err := json.Unmarshal([]byte(raw), &msgs); err != nil {
		log.Warn("transcript: discarding unreadable %s: %v", storage.SlotChatHistory, err)
		return Bottom, false
	}
	if len(msgs) == 0 {
		return Bottom, false
	}
	r.messages = msgs
	return r.latestUser(), true
}

// Reset empties the transcript and deletes the chat slot.
func (r *Reconciler) Reset() {
	r.messages = nil
	if err := r.store.Delete(storage.SlotChatHistory); err != nil {
		log.Warn("transcript: deleting %s: %v", storage.SlotChatHistory, err)
	}
}

// Forget empties the in-memory transcript only; used after a full reset has
// already cleared every slot.
func (r *Reconciler) Forget() {
	r.messages = nil
}

// DisableFallback removes the fallback action from message i once used.
func (r *Reconciler) DisableFallback(i int) bool {
	if i < 0 || i >= len(r.messages) || !r.messages[i].ShowFallbackAction {
		return false
	}
	msgs := r.Messages()
	msgs[i].ShowFallbackAction = false
	r.messages = msgs
	r.persist()
	return true
}

// LatestFallback returns the last message offering the fallback action.
func (r *Reconciler) LatestFallback() (int, Message, bool) {
	for i := len(r.messages) - 1; i >= 0; i-- {
		if r.messages[i].ShowFallbackAction {
			return i, r.messages[i], true
		}
	}
	return -1, Message{}, false
}

// Messages returns a copy of the transcript.
func (r *Reconciler) Messages() []Message {
	return append([]Message(nil), r.messages...)
}

// Len returns the number of messages.
func (r *Reconciler) Len() int { return len(r.messages) }

// Snapshot returns the persisted representation of the transcript.
func (r *Reconciler) Snapshot() (string, error) {
	msgs := r.messages
	if msgs == nil {
		msgs = []Message{}
	}
	data, err := json.Marshal(msgs)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (r *Reconciler) persist() {
	data, err := r.Snapshot()
	if err != nil {
		log.Warn("transcript: encoding: %v", err)
		return
	}
	if err := r.store.Set(storage.SlotChatHistory, data); err != nil {
		log.Warn("transcript: writing %s: %v", storage.SlotChatHistory, err)
	}
}

func (r *Reconciler) latestUser() ScrollTarget {
	for i := len(r.messages) - 1; i >= 0; i-- {
		if r.messages[i].Role == User {
			return ScrollTarget{Index: i}
		}
	}
	return Bottom
}
