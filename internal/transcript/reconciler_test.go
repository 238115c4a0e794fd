// ABOUTME: Tests for history parsing, rebuild/append persistence and scroll targets
// ABOUTME: Persistence equality is checked against the memory store after every mutation

package transcript

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauromedda/qnachat/internal/storage"
)

// assertPersisted checks that the chat slot equals the in-memory transcript.
func assertPersisted(t *testing.T, st storage.Store, r *Reconciler) {
	t.Helper()
	raw, err := st.Get(storage.SlotChatHistory)
	require.NoError(t, err)
	want, err := r.Snapshot()
	require.NoError(t, err)
	assert.JSONEq(t, want, raw)
}

func TestRebuild_FallbackOnMatchingAILine(t *testing.T) {
	t.Parallel()

	st := storage.NewMemory()
	r := NewReconciler(st)
	target := r.Rebuild(
		[]string{"Human: hi", "AI: no match found", "System: note"},
		FallbackContext{Available: true, NoMatchText: "no match found", Question: "hi"},
	)

	msgs := r.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, Message{Role: User, Text: "hi"}, msgs[0])
	assert.Equal(t, Message{Role: AssistantFallbackSource, Text: "no match found", ShowFallbackAction: true, FallbackQuestion: "hi"}, msgs[1])
	assert.Equal(t, Message{Role: System, Text: "note"}, msgs[2])

	withAction := 0
	for _, m := range msgs {
		if m.ShowFallbackAction {
			withAction++
		}
	}
	assert.Equal(t, 1, withAction)
	assert.Equal(t, ScrollTarget{Index: 0}, target)
	assertPersisted(t, st, r)
}

func TestRebuild_NoFallbackWhenUnavailable(t *testing.T) {
	t.Parallel()

	r := NewReconciler(storage.NewMemory())
	r.Rebuild([]string{"AI: no match found"}, FallbackContext{NoMatchText: "no match found"})
	assert.False(t, r.Messages()[0].ShowFallbackAction)
}

func TestRebuild_EmptyNoMatchTextMatchesNothing(t *testing.T) {
	t.Parallel()

	r := NewReconciler(storage.NewMemory())
	r.Rebuild(
		[]string{"Human: hi", "AI: ", "AI: answer"},
		FallbackContext{Available: true, Question: "hi"},
	)
	for i, m := range r.Messages() {
		assert.False(t, m.ShowFallbackAction, "message %d", i)
	}
}

func TestRebuild_IdenticalTextsBothGetAction(t *testing.T) {
	t.Parallel()

	r := NewReconciler(storage.NewMemory())
	r.Rebuild(
		[]string{"Human: a", "AI: nothing", "Human: b", "AI: nothing"},
		FallbackContext{Available: true, NoMatchText: "nothing", Question: "b"},
	)
	msgs := r.Messages()
	assert.True(t, msgs[1].ShowFallbackAction)
	assert.True(t, msgs[3].ShowFallbackAction)
}

func TestRebuild_Idempotent(t *testing.T) {
	t.Parallel()

	history := []string{"Human: hi", "AI: hello", "bogus line", "System: note", "Human:no space"}
	fc := FallbackContext{Available: true, NoMatchText: "hello", Question: "hi"}

	st := storage.NewMemory()
	r := NewReconciler(st)
	r.Rebuild(history, fc)
	first, _ := st.Get(storage.SlotChatHistory)
	r.Rebuild(history, fc)
	second, _ := st.Get(storage.SlotChatHistory)

	assert.Equal(t, first, second)
	assert.Len(t, r.Messages(), 3, "unknown prefixes are dropped")
}

func TestRebuild_PrefixesAreExact(t *testing.T) {
	t.Parallel()

	msgs := Parse([]string{"human: x", "AI:x", "System:  two spaces", "AI: "}, FallbackContext{})
	require.Len(t, msgs, 2)
	assert.Equal(t, " two spaces", msgs[0].Text)
	assert.Equal(t, Message{Role: AssistantFallbackSource, Text: ""}, msgs[1])
}

func TestRebuild_NoUserScrollsToBottom(t *testing.T) {
	t.Parallel()

	r := NewReconciler(storage.NewMemory())
	assert.True(t, r.Rebuild([]string{"System: welcome"}, FallbackContext{}).AtBottom())
	assert.True(t, r.Rebuild(nil, FallbackContext{}).AtBottom())
}

func TestAppend_ScrollRulesAndPersistence(t *testing.T) {
	t.Parallel()

	st := storage.NewMemory()
	r := NewReconciler(st)

	assert.Equal(t, ScrollTarget{Index: 0}, r.Append(Message{Role: User, Text: "q1"}))
	assertPersisted(t, st, r)
	assert.Equal(t, ScrollTarget{Index: 0}, r.Append(Message{Role: Assistant, Text: "a1"}))
	assert.Equal(t, Bottom, r.Append(Message{Role: System, Text: "Generation stopped."}))
	assert.Equal(t, ScrollTarget{Index: 3}, r.Append(Message{Role: User, Text: "q2"}))
	assertPersisted(t, st, r)
	assert.Equal(t, 4, r.Len())
}

func TestApplyResponse_WithoutHistoryAppends(t *testing.T) {
	t.Parallel()

	r := NewReconciler(storage.NewMemory())
	r.Append(Message{Role: User, Text: "does it float?"})
	r.ApplyResponse("No match", nil, FallbackContext{Available: true, NoMatchText: "No match", Question: "does it float?"})

	msgs := r.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, Assistant, msgs[1].Role)
	assert.True(t, msgs[1].ShowFallbackAction)

	r.ApplyResponse("ignored", []string{"Human: x", "AI: y"}, FallbackContext{})
	assert.Equal(t, []Message{{Role: User, Text: "x"}, {Role: AssistantFallbackSource, Text: "y"}}, r.Messages())
}

func TestRestore(t *testing.T) {
	t.Parallel()

	st := storage.NewMemory()
	r := NewReconciler(st)
	_, ok := r.Restore()
	assert.False(t, ok, "nothing stored")

	r.Rebuild([]string{"Human: hi", "AI: hello"}, FallbackContext{})
	restored := NewReconciler(st)
	target, ok := restored.Restore()
	require.True(t, ok)
	assert.Equal(t, r.Messages(), restored.Messages())
	assert.Equal(t, ScrollTarget{Index: 0}, target)

	require.NoError(t, st.Set(storage.SlotChatHistory, "<div>old markup</div>"))
	_, ok = NewReconciler(st).Restore()
	assert.False(t, ok, "unreadable slot is ignored")
}

func TestReset(t *testing.T) {
	t.Parallel()

	st := storage.NewMemory()
	require.NoError(t, st.Set(storage.SlotFileContent, "doc"))
	r := NewReconciler(st)
	r.Append(Message{Role: User, Text: "hi"})
	r.Reset()

	assert.Zero(t, r.Len())
	_, err := st.Get(storage.SlotChatHistory)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	v, err := st.Get(storage.SlotFileContent)
	require.NoError(t, err)
	assert.Equal(t, "doc", v, "chat reset keeps the upload slot")
}

func TestDisableFallback(t *testing.T) {
	t.Parallel()

	st := storage.NewMemory()
	r := NewReconciler(st)
	r.Rebuild([]string{"Human: q", "AI: none"}, FallbackContext{Available: true, NoMatchText: "none", Question: "q"})

	i, m, ok := r.LatestFallback()
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, "q", m.FallbackQuestion)

	assert.True(t, r.DisableFallback(1))
	assert.False(t, r.DisableFallback(1))
	assert.False(t, r.DisableFallback(9))
	_, _, ok = r.LatestFallback()
	assert.False(t, ok)
	assertPersisted(t, st, r)
}

type failingStore struct{ storage.Store }

func (failingStore) Set(string, string) error { return errors.New("disk full") }

func TestPersistenceFailureIsIgnored(t *testing.T) {
	t.Parallel()

	r := NewReconciler(failingStore{storage.NewMemory()})
	r.Append(Message{Role: User, Text: "hi"})
	assert.Equal(t, 1, r.Len())
}

func TestExport(t *testing.T) {
	t.Parallel()

	r := NewReconciler(storage.NewMemory())
	r.Append(Message{Role: User, Text: "hi"})
	r.Append(Message{Role: Assistant, Text: `<span style="color: green;">hello &amp; welcome</span>`})
	r.Append(Message{Role: System, Text: "Generation stopped."})

	var b strings.Builder
	require.NoError(t, r.Export(&b))
	assert.Equal(t, "You: hi\nAI: hello & welcome\nSystem: Generation stopped.\n", b.String())
}
