// Package log provides structured logging for snipreg on top of log/slog.
// Messages carry a category attribute and are written to stderr. Debug
// messages are only emitted when enabled via --debug or SNIPREG_DEBUG.
package log

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// Category groups related log messages.
type Category string

const (
	CatConfig   Category = "config"   // Configuration loading/saving
	CatFile     Category = "file"     // Snippet file parsing
	CatRegistry Category = "registry" // Layer construction and resolution
)

var (
	mu     sync.Mutex
	level  = new(slog.LevelVar)
	logger = newLogger(os.Stderr)
)

func init() {
	level.Set(slog.LevelWarn)
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Init redirects output to w and sets the minimum level.
func Init(w io.Writer, debug bool) {
	mu.Lock()
	defer mu.Unlock()

	logger = newLogger(w)
	if debug {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelWarn)
	}
}

// DebugEnabled reports whether debug messages are emitted.
func DebugEnabled() bool {
	return level.Level() <= slog.LevelDebug
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	current().Debug(msg, append([]any{"category", string(cat)}, fields...)...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	current().Info(msg, append([]any{"category", string(cat)}, fields...)...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	current().Warn(msg, append([]any{"category", string(cat)}, fields...)...)
}

// ErrorErr logs an error with the error value.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	current().Error(msg, append([]any{"category", string(cat)}, fields...)...)
}

func current() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}
