package logging

import (
	"fmt"
	"log/slog"
	"strings"
)

// Level is a log severity.
type Level int

// Severities, lowest first.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levels = [...]struct {
	name string
	slog slog.Level
}{
	LevelDebug: {"DEBUG", slog.LevelDebug},
	LevelInfo:  {"INFO", slog.LevelInfo},
	LevelWarn:  {"WARN", slog.LevelWarn},
	LevelError: {"ERROR", slog.LevelError},
}

func (l Level) known() bool { return l >= 0 && int(l) < len(levels) }

// String returns the upper-case level name.
func (l Level) String() string {
	if !l.known() {
		return "UNKNOWN"
	}
	return levels[l].name
}

// slogLevel maps l onto slog. Unknown levels log at info.
func (l Level) slogLevel() slog.Level {
	if !l.known() {
		return slog.LevelInfo
	}
	return levels[l].slog
}

// ParseLevel accepts a level name in any case. "warning" is an alias for
// warn and the empty string means info.
func ParseLevel(s string) (Level, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	switch name {
	case "":
		return LevelInfo, nil
	case "WARNING":
		return LevelWarn, nil
	}
	for i, lv := range levels {
		if lv.name == name {
			return Level(i), nil
		}
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}
