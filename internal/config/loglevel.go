package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// ParseLogLevel maps a log_level value onto a slog level. "warning" is kept
// as an alias of "warn".
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log_level must be one of: debug, info, warn, error")
	}
}
