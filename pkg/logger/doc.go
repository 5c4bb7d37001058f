// Package logger builds configured log/slog loggers: JSON or text output,
// level control, and static attributes applied to every record, all through
// functional options.
package logger
