// ABOUTME: Persisted client slots: rendered transcript and last upload content
// ABOUTME: Store interface with file, sqlite and in-memory backends selected by config

package storage

import (
	"errors"
	"fmt"
)

// Fixed slot names shared with the browser widget's localStorage keys.
const (
	SlotChatHistory = "chatHistory"
	SlotFileContent = "fileContent"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// ErrNotFound is returned by Get when the slot has never been written
// or was deleted.
var ErrNotFound = errors.New("storage: slot not found")

// Store is a string-keyed slot store. Writes are synchronous.
type Store interface {
	Get(slot string) (string, error)
	Set(slot, value string) error
	Delete(slot string) error
	// Clear removes every slot (full reset).
	Clear() error
	Close() error
}

// Open returns the backend named by backend rooted at path.
func Open(backend, path string) (Store, error) {
	switch backend {
	case BackendFile, "":
		return OpenFile(path)
	case BackendSQLite:
		return OpenSQLite(path)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
