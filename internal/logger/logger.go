// Package logger provides the process-wide structured logger. Records are
// written as JSON to a size-rotated file so they never reach the terminal
// the editor is drawing on.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Log is the global structured logger
	Log *slog.Logger
	// LogPath is the path to the current log file
	LogPath string

	logWriter *lumberjack.Logger
)

// ParseLevel maps a config value to a slog level. Unknown values mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// Init installs the global logger writing to logPath with rotation.
func Init(level slog.Level, logPath string) error {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return err
	}
	LogPath = logPath

	logWriter = &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
		Compress:   true,
	}
	setup(logWriter, level)
	return nil
}

// InitWriter installs the global logger writing to w. Used by tests.
func InitWriter(w io.Writer, level slog.Level) {
	setup(w, level)
}

func setup(w io.Writer, level slog.Level) {
	Log = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(Log)
}

// Close closes the log file
func Close() {
	if logWriter != nil {
		logWriter.Close()
		logWriter = nil
	}
}

func getLogger() *slog.Logger {
	if Log != nil {
		return Log
	}
	return slog.Default()
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	getLogger().Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	getLogger().Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	getLogger().Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	getLogger().Error(msg, args...)
}

// With creates a new logger with additional attributes
func With(args ...any) *slog.Logger {
	return getLogger().With(args...)
}
