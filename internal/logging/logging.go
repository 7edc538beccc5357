// Package logging holds the process-wide slog logger.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Config selects where and how log records are written.
type Config struct {
	// Dir receives chart-interpreter.log. Empty means Output.
	Dir string
	// Output is used when Dir is empty. Nil means stderr.
	Output io.Writer
	// Format is "json" or "text".
	Format string
	Debug  bool
}

// FileName is the log file created under Config.Dir.
const FileName = "chart-interpreter.log"

var (
	mu      sync.RWMutex
	global  = discard()
	logFile *os.File
	logPath string
)

// Setup replaces the global logger. The returned cleanup closes the log
// file, if any, and restores the discarding logger.
func Setup(cfg Config) (func() error, error) {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var (
		f    *os.File
		path string
	)

	if cfg.Dir != "" {
		dir := filepath.Clean(cfg.Dir)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			setDiscard()
			return nil, fmt.Errorf("create log dir: %w", err)
		}

		path = filepath.Join(dir, FileName)

		var err error

		f, err = os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			setDiscard()
			return nil, fmt.Errorf("open log file: %w", err)
		}

		out = f
	}

	l := slog.New(newHandler(out, cfg))

	mu.Lock()
	global = l
	logFile = f
	logPath = path
	mu.Unlock()

	l.Debug("logger.initialized", "path", path, "format", cfg.Format)

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		var cerr error
		if logFile != nil {
			cerr = logFile.Close()
		}

		logFile = nil
		logPath = ""
		global = discard()

		return cerr
	}

	return cleanup, nil
}

func newHandler(w io.Writer, cfg Config) slog.Handler {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.Debug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}

			return a
		},
	}

	if cfg.Format == "text" {
		return slog.NewTextHandler(w, opts)
	}

	return slog.NewJSONHandler(w, opts)
}

// L returns the global logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	return global
}

// Path returns the active log file path, or "" when not logging to a file.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()

	return logPath
}

// IsReady reports whether Setup wrote to a log file.
func IsReady() error {
	mu.RLock()
	defer mu.RUnlock()

	if logFile == nil || logPath == "" {
		return errors.New("log file not initialized")
	}

	return nil
}

func setDiscard() {
	mu.Lock()
	defer mu.Unlock()

	global = discard()
	logFile = nil
	logPath = ""
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
