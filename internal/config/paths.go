// ABOUTME: Standard filesystem paths for qnachat configuration and data
// ABOUTME: Resolves ~/.qnachat/ (or $QNACHAT_HOME) for global and .qnachat/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".qnachat"
	projectDirName = ".qnachat"

	// HomeEnv overrides the global directory location.
	HomeEnv = "QNACHAT_HOME"
)

// GlobalDir returns the user-global config directory (~/.qnachat/).
func GlobalDir() string {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.qnachat/ in cwd).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), "config.yaml")
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), "config.yaml")
}

// DotEnvFile returns the path of the optional .env file in the project root.
func DotEnvFile(projectRoot string) string {
	return filepath.Join(projectRoot, ".env")
}

// LogFile returns the file the TUI writes logs to.
func LogFile() string {
	return filepath.Join(GlobalDir(), "qnachat.log")
}

// DefaultStoragePath returns the default location for the given backend.
func DefaultStoragePath(backend string) string {
	switch backend {
	case StorageSQLite:
		return filepath.Join(GlobalDir(), "storage.db")
	case StorageMemory:
		return ""
	default:
		return filepath.Join(GlobalDir(), "storage.json")
	}
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o700)
}
