// Package logging builds the leveled logger shared by the engine and the
// hosts.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w at the named level ("debug", "info",
// "warn", "error").
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "circlefun",
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
	return logger, nil
}

// Discard is a logger that drops everything, for tests and for hosts
// that own the terminal.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
