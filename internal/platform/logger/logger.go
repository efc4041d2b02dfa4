package logger

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type Config struct {
	Service     string
	Environment string
	Level       Level
	Format      Format
}

type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Debug(msg string, fields ...Field)
	Warn(msg string, fields ...Field)

	With(fields ...Field) Logger
	// Sync flushes buffered entries; call it once on shutdown.
	Sync() error
}

type Field struct {
	Key   string
	Value interface{}
}

func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value}
}

func Strings(key string, values []string) Field {
	return Field{Key: key, Value: values}
}

func Error(err error) Field {
	return Field{Key: "error", Value: err}
}

// Redacted marks a field whose value must never reach the log sink, such
// as patient names or allergies. Only the presence of a value is kept.
func Redacted(key, value string) Field {
	if value == "" {
		return Field{Key: key, Value: ""}
	}
	return Field{Key: key, Value: redactedValue}
}

const redactedValue = "[redacted]"

type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

func (l *Level) Decode(value string) error {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		*l = LevelDebug
	case "info", "":
		*l = LevelInfo
	case "warn", "warning":
		*l = LevelWarn
	case "error":
		*l = LevelError
	default:
		return fmt.Errorf("invalid log level: %s", value)
	}
	return nil
}

type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

func (f *Format) Decode(value string) error {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "json", "":
		*f = FormatJSON
	case "text", "console":
		*f = FormatText
	default:
		return fmt.Errorf("invalid log format: %s", value)
	}
	return nil
}

type loggerKey struct{}

func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

func FromContext(ctx context.Context) Logger {
	return FromContextOr(ctx, &nopLogger{})
}

// FromContextOr is FromContext with a caller supplied fallback.
func FromContextOr(ctx context.Context, fallback Logger) Logger {
	if logger, ok := ctx.Value(loggerKey{}).(Logger); ok {
		return logger
	}
	return fallback
}
