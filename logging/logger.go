// Package logging provides the colored prefix logger used by every
// component of the service.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log"
)

const colorReset = "\033[0m"

// Logger writes leveled, prefixed log lines, with the prefix wrapped
// in an ANSI color so interleaved component output stays readable.
type Logger struct {
	base *log.Logger
}

// New creates a logger for one component. The prefix names the
// component, color is an ANSI escape from the config package.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix must not be empty")
	}
	if w == nil {
		return nil, errors.New("logger writer must not be nil")
	}

	return &Logger{
		base: log.New(w, fmt.Sprintf("%s[%s]%s ", color, prefix, colorReset), log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.base.Printf("[INFO] %s", msg)
}

// Warning logs a warning message.
func (l *Logger) Warning(msg string) {
	l.base.Printf("[WARNING] %s", msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.base.Printf("[ERROR] %s", msg)
}
