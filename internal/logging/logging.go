package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dhavanikgithub/fin-ops-sub000/internal/config"
)

// New builds the application slog logger from config.
// An empty file means stderr; an unknown level falls back to info.
func New(cfg config.LogConfig) (*slog.Logger, error) {
	var out io.Writer = os.Stderr
	if cfg.File != "" {
		if dir := filepath.Dir(cfg.File); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create log dir: %w", err)
			}
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
	}

	h := slog.NewTextHandler(out, &slog.HandlerOptions{Level: parseLevel(cfg.Level)})
	return slog.New(h), nil
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
