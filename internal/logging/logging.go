// Package logging builds the slog logger shared by the CLI and the TUI.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/abhisek/wizardquiz/internal/config"
)

// New returns a text logger at cfg's level. Output goes to cfg.LogFile when
// set, otherwise to fallback; a nil fallback discards output. The returned
// closer releases the log file and is always non-nil.
func New(cfg *config.Config, fallback io.Writer) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }

	var w io.Writer = io.Discard
	if fallback != nil {
		w = fallback
	}
	closer := noop

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, noop, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, noop, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = f.Close
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: cfg.Level(),
	}))
	return logger, closer, nil
}
