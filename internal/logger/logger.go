// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Config selects where and how verbosely to log.
// An empty Path logs text to Stderr; otherwise JSON is appended to Path.
type Config struct {
	Path   string
	Debug  bool
	Stderr io.Writer
}

var (
	mu         sync.RWMutex
	global     = discard()
	logFile    *os.File
	generation uint64
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Setup installs the global logger and returns a cleanup func that closes
// any log file and restores the discarding logger. A later Setup closes the
// file of the one it replaces, and the replaced cleanup becomes a no-op.
func Setup(cfg Config) (func() error, error) {
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

	var (
		h slog.Handler
		f *os.File
	)
	if cfg.Path == "" {
		w := cfg.Stderr
		if w == nil {
			w = os.Stderr
		}
		h = slog.NewTextHandler(w, opts)
	} else {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, err
		}
		var err error
		f, err = os.OpenFile(cfg.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, err
		}
		h = slog.NewJSONHandler(f, opts)
	}
	l := slog.New(h)

	mu.Lock()
	prev := logFile
	global, logFile = l, f
	generation++
	gen := generation
	mu.Unlock()

	if prev != nil {
		if err := prev.Close(); err != nil {
			l.Warn("logger.close_previous", "err", err)
		}
	}
	l.Debug("logger.initialized", "path", cfg.Path, "debug", cfg.Debug)

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		if gen != generation {
			return nil
		}
		global, logFile = discard(), nil
		if f != nil {
			return f.Close()
		}
		return nil
	}

	return cleanup, nil
}

// L returns the current global logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}
