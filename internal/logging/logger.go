package logging

import (
	"log/slog"
	"os"
	"strings"

	"github.com/skillshare-dao/sdao-cli/internal/config"
)

// NewLogger creates a new logger based on runtime configuration
func NewLogger(cfg *config.RuntimeConfig) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	if val := strings.ToLower(os.Getenv("SDAO_LOG_LEVEL")); val != "" {
		switch val {
		case "debug":
			level = slog.LevelDebug
		case "info":
			level = slog.LevelInfo
		case "warn", "warning":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		default:
			// unknown value, keep default
		}
	}

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time in non-debug mode for cleaner output
			if a.Key == slog.TimeKey && level != slog.LevelDebug {
				return slog.Attr{}
			}
			return a
		},
	}

	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
