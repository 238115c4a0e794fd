// ABOUTME: All custom tea.Msg types for the Bubble Tea TUI
// ABOUTME: Debounce ticks, lookup results and completions of chat, upload and clear commands

package btea

import (
	"github.com/mauromedda/qnachat/internal/api"
	"github.com/mauromedda/qnachat/internal/request"
	"github.com/mauromedda/qnachat/internal/staging"
	"github.com/mauromedda/qnachat/internal/suggest"
)

// --- Suggestions ---

// suggestTickMsg fires when a debounce timer elapses.
type suggestTickMsg struct{ seq uint64 }

// suggestResultMsg carries a lookup result for query.
type suggestResultMsg struct {
	query string
	items []suggest.Suggestion
	err   error
}

// --- Chat ---

// chatDoneMsg carries the resolution of a chat request.
type chatDoneMsg struct {
	handle  *request.Handle
	outcome request.Outcome
}

// --- Staging and upload ---

// attachDoneMsg carries descriptors for paths the user asked to stage.
type attachDoneMsg struct {
	files []staging.File
	err   error
}

// uploadDoneMsg carries the upload response. stale lists staged files that
// changed on disk since they were attached; they were not sent. skipped is
// set when nothing was left to send.
type uploadDoneMsg struct {
	action  api.UploadAction
	resp    *api.UploadResponse
	err     error
	stale   []staging.File
	skipped bool
}

// --- Reset ---

// clearDoneMsg carries the result of /clear (all=false) or /clearall.
type clearDoneMsg struct {
	all  bool
	resp *api.StatusResponse
	err  error
}
