// ABOUTME: Settings loading with global + project YAML merge, .env and QNACHAT_* overrides
// ABOUTME: Later layers only override keys they set; the result is validated before use

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Storage backends.
const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

// Defaults mirror the behaviour of the browser widget.
const (
	DefaultServerURL        = "http://localhost:5000"
	DefaultDebounce         = 200 * time.Millisecond
	DefaultSuggestionLimit  = 8
	DefaultRequestTimeout   = 5 * time.Minute
	DefaultAutocompleteRate = 10.0
)

// Settings holds the merged configuration.
type Settings struct {
	ServerURL        string          `yaml:"server_url" validate:"required,url"`
	Debounce         time.Duration   `yaml:"debounce" validate:"gte=0"`
	SuggestionLimit  int             `yaml:"suggestion_limit" validate:"gte=1,lte=100"`
	RequestTimeout   time.Duration   `yaml:"request_timeout" validate:"gte=0"`
	AutocompleteRate float64         `yaml:"autocomplete_rate" validate:"gte=0"`
	Theme            string          `yaml:"theme" validate:"omitempty,oneof=auto dark light notty ascii"`
	LogLevel         string          `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	Storage          StorageSettings `yaml:"storage"`
}

// StorageSettings selects where the transcript and upload slots live.
type StorageSettings struct {
	Backend string `yaml:"backend" validate:"oneof=file sqlite memory"`
	Path    string `yaml:"path"`
}

// Overrides carries CLI flag values; zero values leave settings untouched.
type Overrides struct {
	ServerURL      string
	StorageBackend string
	StoragePath    string
	LogLevel       string
}

// Defaults returns the built-in settings.
func Defaults() *Settings {
	return &Settings{
		ServerURL:        DefaultServerURL,
		Debounce:         DefaultDebounce,
		SuggestionLimit:  DefaultSuggestionLimit,
		RequestTimeout:   DefaultRequestTimeout,
		AutocompleteRate: DefaultAutocompleteRate,
		Theme:            "auto",
		Storage:          StorageSettings{Backend: StorageFile},
	}
}

// Load builds settings from defaults, the global file, the project file,
// the project .env, QNACHAT_* variables and finally the CLI overrides.
func Load(projectRoot string, ov Overrides) (*Settings, error) {
	s := Defaults()

	for _, path := range []string{GlobalConfigFile(), ProjectConfigFile(projectRoot)} {
		if err := loadFile(path, s); err != nil {
			return nil, err
		}
	}

	// godotenv never overrides variables already present in the environment.
	if err := godotenv.Load(DotEnvFile(projectRoot)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	if err := applyEnv(s); err != nil {
		return nil, err
	}
	applyOverrides(s, ov)

	s.ServerURL = strings.TrimRight(expandEnv(s.ServerURL), "/")
	s.Storage.Path = expandEnv(s.Storage.Path)
	if s.Storage.Path == "" {
		s.Storage.Path = DefaultStoragePath(s.Storage.Backend)
	}

	if err := Validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

// loadFile decodes path on top of s. Keys absent from the file keep their
// current value. A missing file is not an error.
func loadFile(path string, s *Settings) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func applyOverrides(s *Settings, ov Overrides) {
	if ov.ServerURL != "" {
		s.ServerURL = ov.ServerURL
	}
	if ov.StorageBackend != "" {
		s.Storage.Backend = ov.StorageBackend
	}
	if ov.StoragePath != "" {
		s.Storage.Path = ov.StoragePath
	}
	if ov.LogLevel != "" {
		s.LogLevel = ov.LogLevel
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and reports the first offending key.
func Validate(s *Settings) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("invalid config: %s fails %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
	}
	return fmt.Errorf("invalid config: %w", err)
}
