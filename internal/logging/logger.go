// Package logging builds the *slog.Logger that is handed to the loader and
// the pair runner. Nothing in this module logs through a global logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	charmlog "charm.land/log/v2"
)

// Levels accepted by ParseLevel.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// ParseLevel maps a level name onto a charm log level.
func ParseLevel(name string) (charmlog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case LevelDebug:
		return charmlog.DebugLevel, nil
	case LevelInfo, "":
		return charmlog.InfoLevel, nil
	case LevelWarn, "warning":
		return charmlog.WarnLevel, nil
	case LevelError:
		return charmlog.ErrorLevel, nil
	}

	return charmlog.InfoLevel, fmt.Errorf("logging: unknown level %q", name)
}

// New returns a logger writing timestamped lines to w at the given level.
func New(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	handler := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "lcs",
	})

	return slog.New(handler), nil
}
