// Package config provides configuration data structures for cookbook.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dbmrq/cookbook/internal/logging"
	"github.com/dbmrq/cookbook/internal/recipe"
	"github.com/dbmrq/cookbook/internal/session"
	"github.com/dbmrq/cookbook/internal/storage"
)

// Config represents the complete cookbook configuration loaded from config.yaml.
type Config struct {
	API     APIConfig     `mapstructure:"api"     yaml:"api"     json:"api"`
	Storage StorageConfig `mapstructure:"storage" yaml:"storage" json:"storage"`
	UI      UIConfig      `mapstructure:"ui"      yaml:"ui"      json:"ui"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" json:"logging"`
}

// APIConfig configures the recipe API client.
type APIConfig struct {
	// BaseURL is the recipe collection endpoint.
	BaseURL string `mapstructure:"base_url" yaml:"base_url" json:"base_url"`
	// Timeout bounds a single request (default: 10s).
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout" json:"timeout"`
	// CacheTTL is how long a successful response is reused (default: 5m, 0 disables caching).
	CacheTTL time.Duration `mapstructure:"cache_ttl" yaml:"cache_ttl" json:"cache_ttl"`
}

// StorageConfig configures where saved recipes live.
type StorageConfig struct {
	// Driver is file, sqlite or memory (default: file).
	Driver storage.Driver `mapstructure:"driver" yaml:"driver" json:"driver"`
	// Dir is the data directory. A leading ~ is expanded.
	Dir string `mapstructure:"dir" yaml:"dir" json:"dir"`
	// Key is the storage key of the saved collection (default: recipes).
	Key string `mapstructure:"key" yaml:"key" json:"key"`
}

// UIConfig configures the terminal UI.
type UIConfig struct {
	// Theme is the starting theme (default: dark).
	Theme session.Theme `mapstructure:"theme" yaml:"theme" json:"theme"`
	// Sort is the starting sort order: "", asc or desc.
	Sort recipe.SortOrder `mapstructure:"sort" yaml:"sort" json:"sort"`
}

// LoggingConfig configures the file logger.
type LoggingConfig struct {
	// Level is debug, info, warn or error (default: info).
	Level string `mapstructure:"level" yaml:"level" json:"level"`
	// Dir is the log directory (default: <storage dir>/logs).
	Dir string `mapstructure:"dir" yaml:"dir" json:"dir"`
	// JSON switches log files to JSON lines.
	JSON bool `mapstructure:"json" yaml:"json" json:"json"`
}

// Default values.
const (
	DefaultBaseURL  = "https://dummyjson.com/recipes"
	DefaultTimeout  = 10 * time.Second
	DefaultCacheTTL = 5 * time.Minute
	DefaultKey      = "recipes"
	DefaultLevel    = "info"
	appDirName      = "cookbook"
)

// DefaultDataDir returns the per-user data directory, falling back to
// ./.cookbook when the user config directory is unknown.
func DefaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return "." + appDirName
	}
	return filepath.Join(dir, appDirName)
}

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	dataDir := DefaultDataDir()
	return &Config{
		API: APIConfig{
			BaseURL:  DefaultBaseURL,
			Timeout:  DefaultTimeout,
			CacheTTL: DefaultCacheTTL,
		},
		Storage: StorageConfig{
			Driver: storage.DriverFile,
			Dir:    dataDir,
			Key:    DefaultKey,
		},
		UI: UIConfig{
			Theme: session.DefaultTheme,
			Sort:  recipe.SortNone,
		},
		Logging: LoggingConfig{
			Level: DefaultLevel,
			Dir:   filepath.Join(dataDir, "logs"),
			JSON:  false,
		},
	}
}

// ApplyDefaults fills unset fields and expands ~ in paths.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.API.BaseURL == "" {
		c.API.BaseURL = defaults.API.BaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = defaults.API.Timeout
	}

	if c.Storage.Driver == "" {
		c.Storage.Driver = defaults.Storage.Driver
	}
	c.Storage.Driver = storage.Driver(strings.ToLower(string(c.Storage.Driver)))
	if c.Storage.Dir == "" {
		c.Storage.Dir = defaults.Storage.Dir
	}
	c.Storage.Dir = ExpandHome(c.Storage.Dir)
	if c.Storage.Key == "" {
		c.Storage.Key = defaults.Storage.Key
	}

	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}

	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	if c.Logging.Dir == "" {
		c.Logging.Dir = filepath.Join(c.Storage.Dir, "logs")
	}
	c.Logging.Dir = ExpandHome(c.Logging.Dir)
}

// LoggerConfig converts the logging section for logging.New.
func (c *Config) LoggerConfig() *logging.Config {
	lc := logging.DefaultConfig()
	if level, err := logging.ParseLevel(c.Logging.Level); err == nil {
		lc.Level = level
	}
	lc.LogDir = c.Logging.Dir
	lc.JSONFormat = c.Logging.JSON
	return lc
}

// StorageOptions converts the storage section for storage.Open.
func (c *Config) StorageOptions() storage.Options {
	return storage.Options{Driver: c.Storage.Driver, Dir: c.Storage.Dir}
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
	Options []string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if u, err := url.Parse(c.API.BaseURL); err != nil || u.Host == "" ||
		(u.Scheme != "http" && u.Scheme != "https") {
		errs = append(errs, &ValidationError{Field: "api.base_url", Message: "must be an absolute http(s) URL"})
	}
	if c.API.Timeout < 0 {
		errs = append(errs, &ValidationError{Field: "api.timeout", Message: "must be non-negative"})
	}
	if c.API.CacheTTL < 0 {
		errs = append(errs, &ValidationError{Field: "api.cache_ttl", Message: "must be non-negative"})
	}

	if !c.Storage.Driver.IsValid() {
		errs = append(errs, &ValidationError{
			Field:   "storage.driver",
			Message: "must be 'file', 'sqlite', or 'memory'",
			Options: []string{string(storage.DriverFile), string(storage.DriverSQLite), string(storage.DriverMemory)},
		})
	}
	if strings.ContainsAny(c.Storage.Key, `/\`) {
		errs = append(errs, &ValidationError{Field: "storage.key", Message: "must not contain path separators"})
	}

	if !c.UI.Theme.IsValid() {
		errs = append(errs, &ValidationError{
			Field:   "ui.theme",
			Message: "must be 'light' or 'dark'",
			Options: session.ValidThemes(),
		})
	}
	if _, err := recipe.ParseSortOrder(string(c.UI.Sort)); err != nil {
		errs = append(errs, &ValidationError{
			Field:   "ui.sort",
			Message: "must be empty, 'asc', or 'desc'",
			Options: []string{"asc", "desc"},
		})
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, &ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("unknown level %q", c.Logging.Level),
			Options: []string{"debug", "info", "warn", "error"},
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
