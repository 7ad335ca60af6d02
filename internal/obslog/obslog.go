// Package obslog is a thin log/slog wrapper shared by the decoder and the
// CLI, ported near-verbatim from ehrlich-b-wingthing/internal/logger:
// a package-global *slog.Logger, a text handler with a short time format,
// and string-keyed level parsing.
package obslog

import (
	"io"
	"log/slog"
	"os"
)

// Log is the process-wide logger. Init must be called once before use;
// until then it defaults to slog.Default() so packages that forget to
// call Init still get usable (if unconfigured) output.
var Log = slog.Default()

// Init configures Log to write level-filtered text lines to stdout (and,
// if logFile is non-empty, also to that file) and returns it.
func Init(level, logFile string) (*slog.Logger, error) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	writers := []io.Writer{os.Stdout}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return nil, err
		}
		writers = append(writers, f)
	}

	handler := slog.NewTextHandler(io.MultiWriter(writers...), &slog.HandlerOptions{
		Level: logLevel,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String("time", a.Value.Time().Format("15:04:05"))
			}
			return a
		},
	})

	Log = slog.New(handler)
	slog.SetDefault(Log)

	return Log, nil
}
