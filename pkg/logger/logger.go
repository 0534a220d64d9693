package logger

import (
	"log/slog"
	"os"
	"strings"
)

var Log *slog.Logger

// Init sets up the process-wide JSON logger. LOG_LEVEL (debug, info, warn,
// error) controls verbosity; unset means info.
func Init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: levelFromEnv(),
	})
	Log = slog.New(handler).With("service", "outreach-backend")
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
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
