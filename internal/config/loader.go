package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/dbmrq/cookbook/internal/recipe"
	"github.com/dbmrq/cookbook/internal/session"
	"github.com/dbmrq/cookbook/internal/storage"
)

const (
	// ConfigFileName is the config file name inside the data directory.
	ConfigFileName = "config.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "COOKBOOK"
)

// DefaultConfigPath returns the config file path used when none is given.
func DefaultConfigPath() string {
	return filepath.Join(DefaultDataDir(), ConfigFileName)
}

// Loader handles loading configuration from files and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetConfigType("yaml")

	// COOKBOOK_API_BASE_URL overrides api.base_url and so on.
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only applies to keys viper knows about, so register every
	// key with its default even when no file is read.
	setDefaults(v, NewConfig())

	return &Loader{v: v}
}

// LoadConfig loads configuration from path, merges environment variables,
// applies defaults and validates the result.
// If path is empty the default location is used, and a missing file there
// means "all defaults". An explicitly given path must exist.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, &LoadError{
				Path:    path,
				Message: "failed to read config file",
				Err:     err,
			}
		}
	case errors.Is(statErr, os.ErrNotExist) && !explicit:
		// Defaults and environment only.
	case errors.Is(statErr, os.ErrNotExist):
		return nil, &LoadError{
			Path:    path,
			Message: "config file not found",
			Err:     statErr,
		}
	default:
		return nil, &LoadError{
			Path:    path,
			Message: "failed to access config file",
			Err:     statErr,
		}
	}

	cfg := &Config{}
	if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to parse config file",
			Err:     err,
		}
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "configuration validation failed",
			Err:     err,
		}
	}

	return cfg, nil
}

// ConfigFileUsed returns the file that was read, or "" if defaults were used.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("api.base_url", cfg.API.BaseURL)
	v.SetDefault("api.timeout", cfg.API.Timeout.String())
	v.SetDefault("api.cache_ttl", cfg.API.CacheTTL.String())
	v.SetDefault("storage.driver", string(cfg.Storage.Driver))
	v.SetDefault("storage.dir", cfg.Storage.Dir)
	v.SetDefault("storage.key", cfg.Storage.Key)
	v.SetDefault("ui.theme", string(cfg.UI.Theme))
	v.SetDefault("ui.sort", string(cfg.UI.Sort))
	v.SetDefault("logging.level", cfg.Logging.Level)
	// Empty means "<storage dir>/logs", resolved in ApplyDefaults.
	v.SetDefault("logging.dir", "")
	v.SetDefault("logging.json", cfg.Logging.JSON)
}

// viperDecodeHook provides custom decoding for viper unmarshaling.
// It composes the standard mapstructure hooks with our custom ones.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		stringToCustomTypeHookFunc(),
	)
}

// stringToCustomTypeHookFunc normalizes our enum-like string types.
// Unknown values pass through and are reported by Validate.
func stringToCustomTypeHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}
		s := strings.ToLower(strings.TrimSpace(reflect.ValueOf(data).String()))

		switch to {
		case reflect.TypeOf(storage.Driver("")):
			return storage.Driver(s), nil
		case reflect.TypeOf(session.Theme("")):
			return session.Theme(s), nil
		case reflect.TypeOf(recipe.SortOrder("")):
			return recipe.SortOrder(s), nil
		}

		return data, nil
	}
}

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load is a convenience function that creates a new Loader and loads configuration.
// If path is empty, it uses DefaultConfigPath.
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}

// fileConfig is the on-disk shape written by Save. Durations are written as
// strings like "10s" so the file stays readable.
type fileConfig struct {
	API struct {
		BaseURL  string `yaml:"base_url"`
		Timeout  string `yaml:"timeout"`
		CacheTTL string `yaml:"cache_ttl"`
	} `yaml:"api"`
	Storage StorageConfig `yaml:"storage"`
	UI      struct {
		Theme string `yaml:"theme"`
		Sort  string `yaml:"sort"`
	} `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	var fc fileConfig
	fc.API.BaseURL = cfg.API.BaseURL
	fc.API.Timeout = cfg.API.Timeout.String()
	fc.API.CacheTTL = cfg.API.CacheTTL.String()
	fc.Storage = cfg.Storage
	fc.UI.Theme = string(cfg.UI.Theme)
	fc.UI.Sort = string(cfg.UI.Sort)
	fc.Logging = cfg.Logging

	return yaml.Marshal(&fc)
}

// Save writes cfg to path, creating parent directories.
func Save(path string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
