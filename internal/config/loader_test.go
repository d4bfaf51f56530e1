package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dbmrq/cookbook/internal/recipe"
	"github.com/dbmrq/cookbook/internal/session"
	"github.com/dbmrq/cookbook/internal/storage"
)

// isolateHome points the user config and home directories at a temp dir so
// tests never read a real config.yaml.
func isolateHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolateHome(t)

	_, err := Load("nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	loadErr, ok := err.(*LoadError)
	if !ok {
		t.Fatalf("expected *LoadError, got %T", err)
	}
	if loadErr.Path != "nonexistent/config.yaml" {
		t.Errorf("expected path 'nonexistent/config.yaml', got %q", loadErr.Path)
	}
	if loadErr.Message != "config file not found" {
		t.Errorf("expected message 'config file not found', got %q", loadErr.Message)
	}
}

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	isolateHome(t)

	l := NewLoader()
	cfg, err := l.LoadConfig("")
	if err != nil {
		t.Fatalf("missing default config should not be an error: %v", err)
	}
	if l.ConfigFileUsed() != "" {
		t.Errorf("no file should have been read, got %q", l.ConfigFileUsed())
	}
	if cfg.API.BaseURL != DefaultBaseURL {
		t.Errorf("expected default base URL, got %q", cfg.API.BaseURL)
	}
	if cfg.UI.Theme != session.ThemeDark {
		t.Errorf("expected dark theme, got %q", cfg.UI.Theme)
	}
	if cfg.Storage.Key != DefaultKey {
		t.Errorf("expected key %q, got %q", DefaultKey, cfg.Storage.Key)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	isolateHome(t)

	path := writeConfig(t, `
api:
  base_url: http://localhost:8080/recipes
  timeout: 3s
  cache_ttl: 1m

storage:
  driver: SQLite
  dir: /tmp/cookbook-test
  key: favorites

ui:
  theme: light
  sort: desc

logging:
  level: debug
  dir: /tmp/cookbook-logs
  json: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.API.BaseURL != "http://localhost:8080/recipes" {
		t.Errorf("expected api.base_url override, got %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 3*time.Second {
		t.Errorf("expected api.timeout 3s, got %v", cfg.API.Timeout)
	}
	if cfg.API.CacheTTL != time.Minute {
		t.Errorf("expected api.cache_ttl 1m, got %v", cfg.API.CacheTTL)
	}
	if cfg.Storage.Driver != storage.DriverSQLite {
		t.Errorf("expected storage.driver sqlite, got %q", cfg.Storage.Driver)
	}
	if cfg.Storage.Dir != "/tmp/cookbook-test" {
		t.Errorf("expected storage.dir, got %q", cfg.Storage.Dir)
	}
	if cfg.Storage.Key != "favorites" {
		t.Errorf("expected storage.key favorites, got %q", cfg.Storage.Key)
	}
	if cfg.UI.Theme != session.ThemeLight {
		t.Errorf("expected ui.theme light, got %q", cfg.UI.Theme)
	}
	if cfg.UI.Sort != recipe.SortDesc {
		t.Errorf("expected ui.sort desc, got %q", cfg.UI.Sort)
	}
	if cfg.Logging.Level != "debug" || !cfg.Logging.JSON || cfg.Logging.Dir != "/tmp/cookbook-logs" {
		t.Errorf("unexpected logging section: %+v", cfg.Logging)
	}
}

func TestLoad_PartialConfig(t *testing.T) {
	isolateHome(t)

	path := writeConfig(t, "ui:\n  theme: light\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.UI.Theme != session.ThemeLight {
		t.Errorf("expected light theme, got %q", cfg.UI.Theme)
	}
	if cfg.API.Timeout != DefaultTimeout {
		t.Errorf("expected default timeout, got %v", cfg.API.Timeout)
	}
	if cfg.API.CacheTTL != DefaultCacheTTL {
		t.Errorf("expected default cache ttl, got %v", cfg.API.CacheTTL)
	}
	if cfg.Storage.Driver != storage.DriverFile {
		t.Errorf("expected file driver, got %q", cfg.Storage.Driver)
	}
	if cfg.Logging.Dir != filepath.Join(cfg.Storage.Dir, "logs") {
		t.Errorf("expected logs under storage dir, got %q", cfg.Logging.Dir)
	}
}

func TestLoad_EmptyConfigFile(t *testing.T) {
	isolateHome(t)

	path := writeConfig(t, "")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("empty config file should load: %v", err)
	}
	if cfg.API.BaseURL != DefaultBaseURL {
		t.Errorf("expected default base URL, got %q", cfg.API.BaseURL)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolateHome(t)
	t.Setenv("COOKBOOK_API_BASE_URL", "https://example.com/recipes")
	t.Setenv("COOKBOOK_API_CACHE_TTL", "30s")
	t.Setenv("COOKBOOK_UI_THEME", "light")
	t.Setenv("COOKBOOK_STORAGE_DRIVER", "memory")
	t.Setenv("COOKBOOK_LOGGING_JSON", "true")

	path := writeConfig(t, "ui:\n  theme: dark\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.API.BaseURL != "https://example.com/recipes" {
		t.Errorf("expected env base URL, got %q", cfg.API.BaseURL)
	}
	if cfg.API.CacheTTL != 30*time.Second {
		t.Errorf("expected env cache ttl 30s, got %v", cfg.API.CacheTTL)
	}
	if cfg.UI.Theme != session.ThemeLight {
		t.Errorf("env should win over file, got theme %q", cfg.UI.Theme)
	}
	if cfg.Storage.Driver != storage.DriverMemory {
		t.Errorf("expected memory driver, got %q", cfg.Storage.Driver)
	}
	if !cfg.Logging.JSON {
		t.Error("expected logging.json from env")
	}
}

func TestLoad_EnvOverridesWithoutFile(t *testing.T) {
	isolateHome(t)
	t.Setenv("COOKBOOK_UI_SORT", "asc")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.UI.Sort != recipe.SortAsc {
		t.Errorf("expected env sort asc, got %q", cfg.UI.Sort)
	}
}

func TestLoad_ValidationError(t *testing.T) {
	isolateHome(t)

	path := writeConfig(t, "ui:\n  theme: neon\nstorage:\n  driver: redis\n")
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected validation error")
	}

	loadErr, ok := err.(*LoadError)
	if !ok {
		t.Fatalf("expected *LoadError, got %T", err)
	}
	if loadErr.Message != "configuration validation failed" {
		t.Errorf("unexpected message %q", loadErr.Message)
	}
	if !strings.Contains(err.Error(), "ui.theme") || !strings.Contains(err.Error(), "storage.driver") {
		t.Errorf("expected both fields in error, got %v", err)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	isolateHome(t)

	path := writeConfig(t, "api:\n  base_url: [unclosed\n")
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
	loadErr, ok := err.(*LoadError)
	if !ok {
		t.Fatalf("expected *LoadError, got %T", err)
	}
	if loadErr.Message != "failed to read config file" {
		t.Errorf("unexpected message %q", loadErr.Message)
	}
}

func TestLoad_BadDuration(t *testing.T) {
	isolateHome(t)

	path := writeConfig(t, "api:\n  timeout: soon\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unparseable duration")
	}
}

func TestLoadError_Error(t *testing.T) {
	err := &LoadError{Path: "a.yaml", Message: "broken"}
	if err.Error() != "a.yaml: broken" {
		t.Errorf("unexpected Error(): %q", err.Error())
	}

	wrapped := &LoadError{Path: "a.yaml", Message: "broken", Err: os.ErrNotExist}
	if !strings.HasSuffix(wrapped.Error(), os.ErrNotExist.Error()) {
		t.Errorf("expected cause in Error(): %q", wrapped.Error())
	}
	if wrapped.Unwrap() != os.ErrNotExist {
		t.Error("Unwrap should return the cause")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	isolateHome(t)

	cfg := NewConfig()
	cfg.UI.Theme = session.ThemeLight
	cfg.API.CacheTTL = 90 * time.Second
	cfg.Storage.Driver = storage.DriverSQLite

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read saved config: %v", err)
	}
	if !strings.Contains(string(data), "cache_ttl: 1m30s") {
		t.Errorf("durations should be written as strings:\n%s", data)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if loaded.UI.Theme != session.ThemeLight || loaded.API.CacheTTL != 90*time.Second ||
		loaded.Storage.Driver != storage.DriverSQLite {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}
