package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var Logger *slog.Logger

// GlobalContext adds request-scoped attributes to Logger.
var GlobalContext *ContextLogger

// Options controls how InitLogger builds the handler chain.
type Options struct {
	Level       string
	Format      string
	OTelEnabled bool
	Output      io.Writer
}

func InitLogger(opts Options) *slog.Logger {
	level := ParseLevel(opts.Level)
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var stdout slog.Handler
	if strings.EqualFold(opts.Format, "text") {
		stdout = slog.NewTextHandler(out, handlerOpts)
	} else {
		stdout = slog.NewJSONHandler(out, handlerOpts)
	}

	handlers := []slog.Handler{stdout}
	if opts.OTelEnabled {
		handlers = append(handlers, NewOTelHandler(level))
	}

	Logger = slog.New(NewRequestContextHandler(NewMultiHandler(handlers...)))
	slog.SetDefault(Logger)
	GlobalContext = NewContextLogger(Logger)

	Logger.Info("Logger initialized", "level", level.String(), "otel", opts.OTelEnabled)

	return Logger
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Base returns Logger, or slog.Default before InitLogger ran.
func Base() *slog.Logger {
	if Logger == nil {
		return slog.Default()
	}
	return Logger
}
