// ABOUTME: Dependency injection struct for the Bubble Tea interactive app
// ABOUTME: Backend is the narrow network boundary; *api.Client satisfies it

package btea

import (
	"context"

	"github.com/mauromedda/qnachat/internal/api"
	"github.com/mauromedda/qnachat/internal/config"
	"github.com/mauromedda/qnachat/internal/storage"
)

// Backend is the chat server as seen by the TUI.
type Backend interface {
	Autocomplete(ctx context.Context, query string, limit int) ([]api.Suggestion, error)
	Chat(ctx context.Context, req api.ChatRequest) (*api.ChatResponse, error)
	Upload(ctx context.Context, files []api.UploadFile, action api.UploadAction) (*api.UploadResponse, error)
	ClearChat(ctx context.Context) (*api.StatusResponse, error)
	ClearAll(ctx context.Context) (*api.StatusResponse, error)
}

// AppDeps bundles all dependencies for the Bubble Tea interactive app.
type AppDeps struct {
	Backend     Backend
	Store       storage.Store
	Settings    *config.Settings
	Version     string
	ProjectRoot string
	Keybindings *config.Keybindings
}

func (d AppDeps) settings() *config.Settings {
	if d.Settings == nil {
		return config.Defaults()
	}
	return d.Settings
}
