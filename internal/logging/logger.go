// Package logging writes leveled slog records for cookbook to one file per
// run and prunes the files left by earlier runs.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FilePrefix starts the name of every log file.
const FilePrefix = "cookbook_"

// Config controls where and how much is logged.
type Config struct {
	Level  Level
	LogDir string

	// MaxLogFiles and MaxLogAge bound the files kept in LogDir. Zero
	// disables the respective limit.
	MaxLogFiles int
	MaxLogAge   time.Duration

	// Console mirrors records to stderr. It must stay off while the TUI
	// owns the terminal.
	Console bool

	JSONFormat bool
}

// DefaultConfig logs at info into ./logs and keeps a week of files, at most ten.
func DefaultConfig() *Config {
	return &Config{
		Level:       LevelInfo,
		LogDir:      "logs",
		MaxLogFiles: 10,
		MaxLogAge:   7 * 24 * time.Hour,
	}
}

// Logger wraps a slog.Logger and the file it writes to. Loggers derived
// with With or WithContext share the file.
type Logger struct {
	slog    *slog.Logger
	config  *Config
	logFile *os.File
	logPath string
	mu      sync.Mutex
}

// New opens a fresh timestamped file in config.LogDir and starts pruning
// older files in the background.
func New(config *Config) (*Logger, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := os.MkdirAll(config.LogDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	name := FilePrefix + time.Now().Format("20060102_150405") + ".log"
	path := filepath.Join(config.LogDir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	var out io.Writer = f
	if config.Console {
		out = io.MultiWriter(f, os.Stderr)
	}

	l := NewWithWriter(out, config)
	l.logFile, l.logPath = f, path
	go func() { _ = l.Cleanup() }()
	return l, nil
}

// NewWithWriter returns a Logger writing to w. It owns no file.
func NewWithWriter(w io.Writer, config *Config) *Logger {
	if config == nil {
		config = DefaultConfig()
	}
	opts := &slog.HandlerOptions{Level: config.Level.slogLevel()}
	var h slog.Handler = slog.NewTextHandler(w, opts)
	if config.JSONFormat {
		h = slog.NewJSONHandler(w, opts)
	}
	return &Logger{slog: slog.New(h), config: config}
}

// NewNoop returns a Logger that discards everything.
func NewNoop() *Logger {
	return NewWithWriter(io.Discard, nil)
}

// LogPath is the file being written, or "" for writer-backed loggers.
func (l *Logger) LogPath() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.logPath
}

// Close closes the log file. It is safe to call more than once.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.logFile == nil {
		return nil
	}
	err := l.logFile.Close()
	l.logFile = nil
	return err
}

func (l *Logger) Debug(msg string, args ...any) { l.slog.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.slog.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.slog.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.slog.Error(msg, args...) }

// With returns a Logger that adds args to every record.
func (l *Logger) With(args ...any) *Logger {
	return l.derive(l.slog.With(args...))
}

// WithContext returns a Logger tagged with the session and recipe ids in ctx.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	attrs := contextAttrs(ctx)
	if len(attrs) == 0 {
		return l.derive(l.slog)
	}
	return l.derive(l.slog.With(attrs...))
}

func (l *Logger) derive(s *slog.Logger) *Logger {
	return &Logger{slog: s, config: l.config, logFile: l.logFile, logPath: l.logPath}
}
