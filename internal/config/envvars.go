// ABOUTME: QNACHAT_* environment overrides and ${VAR} expansion in string settings
// ABOUTME: Unset vars expand to empty; malformed numeric/duration overrides are errors

package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"
)

// Environment variables consulted by applyEnv.
const (
	EnvServerURL       = "QNACHAT_SERVER_URL"
	EnvDebounce        = "QNACHAT_DEBOUNCE"
	EnvSuggestionLimit = "QNACHAT_SUGGESTION_LIMIT"
	EnvStorageBackend  = "QNACHAT_STORAGE"
	EnvStoragePath     = "QNACHAT_STORAGE_PATH"
	EnvLogLevel        = "QNACHAT_LOG_LEVEL"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

func applyEnv(s *Settings) error {
	if v := os.Getenv(EnvServerURL); v != "" {
		s.ServerURL = v
	}
	if v := os.Getenv(EnvDebounce); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebounce, err)
		}
		s.Debounce = d
	}
	if v := os.Getenv(EnvSuggestionLimit); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSuggestionLimit, err)
		}
		s.SuggestionLimit = n
	}
	if v := os.Getenv(EnvStorageBackend); v != "" {
		s.Storage.Backend = v
	}
	if v := os.Getenv(EnvStoragePath); v != "" {
		s.Storage.Path = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		s.LogLevel = v
	}
	return nil
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}
