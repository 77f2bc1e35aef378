package shortfile

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with shortfile-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogRead logs a read operation. A missing file logs at debug level.
func (l *Logger) LogRead(path string, size int, err error) {
	if KindOf(err) == KindNotFound {
		l.Debug("short file not found",
			"path", path,
			"error", err,
		)
		return
	}
	if err != nil {
		l.Error("short file read failed",
			"path", path,
			"kind", KindOf(err).String(),
			"error", err,
		)
	} else {
		l.Debug("short file read",
			"path", path,
			"bytes", size,
		)
	}
}

// LogWrite logs a write operation.
func (l *Logger) LogWrite(path string, size int, err error) {
	if err != nil {
		l.Error("short file write failed",
			"path", path,
			"kind", KindOf(err).String(),
			"error", err,
		)
	} else {
		l.Debug("short file written",
			"path", path,
			"bytes", size,
		)
	}
}

// LogRemove logs a remove operation.
func (l *Logger) LogRemove(path string, err error) {
	if err != nil {
		l.Error("short file remove failed",
			"path", path,
			"kind", KindOf(err).String(),
			"error", err,
		)
	} else {
		l.Debug("short file removed",
			"path", path,
		)
	}
}

// LogCleanup logs a temporary file that could not be removed after a failed write.
func (l *Logger) LogCleanup(tmp string, err error) {
	l.Warn("temporary file cleanup failed",
		"tmp", tmp,
		"error", err,
	)
}

// LogDirSync logs a directory fsync failure after a completed rename.
func (l *Logger) LogDirSync(dir string, err error) {
	l.Warn("directory sync failed",
		"dir", dir,
		"error", err,
	)
}

// LogChown logs a failure to carry ownership over to the replacement file.
func (l *Logger) LogChown(path string, uid, gid int, err error) {
	l.Debug("ownership not preserved",
		"path", path,
		"uid", uid,
		"gid", gid,
		"error", err,
	)
}
