package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

type logEntry struct {
	path    string
	modTime time.Time
}

// logFilesIn lists the cookbook log files in dir, newest first.
func logFilesIn(dir string) ([]logEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []logEntry
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, FilePrefix) || filepath.Ext(name) != ".log" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, logEntry{path: filepath.Join(dir, name), modTime: info.ModTime()})
	}

	slices.SortFunc(files, func(a, b logEntry) int {
		return b.modTime.Compare(a.modTime)
	})
	return files, nil
}

// Cleanup deletes log files beyond MaxLogFiles or older than MaxLogAge.
// The file this logger writes to is never removed.
func (l *Logger) Cleanup() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	dir := l.config.LogDir
	if dir == "" {
		return nil
	}
	files, err := logFilesIn(dir)
	if err != nil {
		return fmt.Errorf("listing log directory: %w", err)
	}

	keep, maxAge := l.config.MaxLogFiles, l.config.MaxLogAge
	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for i, f := range files {
		if f.path == l.logPath {
			continue
		}
		expired := maxAge > 0 && f.modTime.Before(cutoff)
		surplus := keep > 0 && i >= keep
		if !expired && !surplus {
			continue
		}
		if os.Remove(f.path) == nil {
			removed++
		}
	}

	if removed > 0 {
		l.slog.Debug("pruned log files", "count", removed, "dir", dir)
	}
	return nil
}
