package logging

import (
	"context"
	"sync/atomic"
)

// global is the process-wide logger. Nil means "not initialized".
var global atomic.Pointer[Logger]

// noop is handed out while no global logger is installed.
var noop = NewNoop()

// Global returns the process-wide logger, or a no-op logger before
// InitGlobal.
func Global() *Logger {
	if l := global.Load(); l != nil {
		return l
	}
	return noop
}

// SetGlobal installs l as the process-wide logger. Nil uninstalls it.
func SetGlobal(l *Logger) {
	global.Store(l)
}

// FromContext returns the global logger carrying ctx's session and recipe ids.
func FromContext(ctx context.Context) *Logger {
	return Global().WithContext(ctx)
}

// InitGlobal opens a file logger for config and installs it.
// If config is nil, default configuration is used.
func InitGlobal(config *Config) error {
	l, err := New(config)
	if err != nil {
		return err
	}
	if old := global.Swap(l); old != nil {
		_ = old.Close()
	}
	return nil
}

// CloseGlobal closes the installed logger and falls back to the no-op logger.
func CloseGlobal() error {
	if old := global.Swap(nil); old != nil {
		return old.Close()
	}
	return nil
}
