package logging

import "log/slog"

// Collaborators treat their logger as optional, so every log site goes
// through these wrappers instead of nil-checking on its own.

// Info logs at info level when a logger is configured.
func Info(logger *slog.Logger, msg string, args ...any) {
	if logger == nil {
		return
	}
	logger.Info(msg, args...)
}

// Warn logs at warn level when a logger is configured.
func Warn(logger *slog.Logger, msg string, args ...any) {
	if logger == nil {
		return
	}
	logger.Warn(msg, args...)
}

// Error logs at error level when a logger is configured. A non-nil err is
// attached under FieldError.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if logger == nil {
		return
	}
	if err != nil {
		args = append(args, FieldError, err)
	}
	logger.Error(msg, args...)
}
