package logger

import (
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// Setup configures the global slog.Logger to write to both stderr and the
// specified log file. Passing a nil logFile logs to stderr only.
func Setup(logFile io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}

	// Console Handler: stderr so command output on stdout stays clean.
	consoleHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})

	var handler slog.Handler = consoleHandler
	if logFile != nil {
		// File Handler: Text format for readability in the local log file.
		// The file always gets Info and above regardless of verbosity.
		fileHandler := slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: slog.LevelInfo})

		// Fanout: Send logs to both handlers.
		handler = slogmulti.Fanout(fileHandler, consoleHandler)
	}

	logger := slog.New(handler)

	// Set as global default so slog.Info() works out of the box if needed.
	slog.SetDefault(logger)

	return logger
}
