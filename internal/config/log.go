package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// ParseLevel converts a config level name to a log level.
func ParseLevel(level string) (log.Level, error) {
	if level == "" {
		return log.WarnLevel, nil
	}
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return log.WarnLevel, fmt.Errorf("config: invalid log level %q", level)
	}
	return lvl, nil
}

// NewLogger creates the application logger writing to w.
func NewLogger(w io.Writer, level string) *log.Logger {
	lvl, err := ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           lvl,
	})
}
