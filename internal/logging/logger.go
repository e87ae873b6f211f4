// Package logging provides structured logging using bolt. The shell owns the
// terminal, so records go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/felixgeelhaar/bolt/v3"
)

// Config configures the logger.
type Config struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string

	// File receives JSON records. Empty disables logging.
	File string
}

// Logger wraps a bolt logger. The zero value and a nil *Logger discard
// everything, so components can log without checking.
type Logger struct {
	l *bolt.Logger
}

func parseLevel(s string) bolt.Level {
	switch s {
	case "trace":
		return bolt.TRACE
	case "debug":
		return bolt.DEBUG
	case "info":
		return bolt.INFO
	case "warn":
		return bolt.WARN
	case "error":
		return bolt.ERROR
	default:
		return bolt.INFO
	}
}

// ValidLevel reports whether s names a level parseLevel understands.
func ValidLevel(s string) bool {
	switch s {
	case "trace", "debug", "info", "warn", "error":
		return true
	}
	return false
}

// New returns a logger writing JSON records to w.
func New(w io.Writer, level string) *Logger {
	return &Logger{l: bolt.New(bolt.NewJSONHandler(w)).SetLevel(parseLevel(level))}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{}
}

// Open builds the logger described by cfg. The returned close func must be
// called when the program exits.
func Open(cfg Config) (*Logger, func() error, error) {
	if cfg.File == "" {
		return Discard(), func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return New(f, cfg.Level), f.Close, nil
}

func (lg *Logger) event(pick func(*bolt.Logger) *bolt.Event) *Event {
	if lg == nil || lg.l == nil {
		return &Event{}
	}
	return &Event{e: pick(lg.l)}
}

// Debug starts a debug record.
func (lg *Logger) Debug() *Event { return lg.event((*bolt.Logger).Debug) }

// Info starts an info record.
func (lg *Logger) Info() *Event { return lg.event((*bolt.Logger).Info) }

// Warn starts a warning record.
func (lg *Logger) Warn() *Event { return lg.event((*bolt.Logger).Warn) }

// Error starts an error record.
func (lg *Logger) Error() *Event { return lg.event((*bolt.Logger).Error) }

// Event is a record under construction.
type Event struct {
	e *bolt.Event
}

// Add applies a field to the event and returns it for chaining.
func (ev *Event) Add(f Field) *Event {
	if ev.e != nil {
		ev.e = f(ev.e)
	}
	return ev
}

// Msg writes the record.
func (ev *Event) Msg(msg string) {
	if ev.e != nil {
		ev.e.Msg(msg)
	}
}
