// Package telemetry provides structured logging, Prometheus metrics, and a
// minimal chi-routed status endpoint for a running estimate/simulate
// session, per SPEC_FULL.md's ambient-stack expansion.
//
// Logger is grounded on the chaos-utils reporting.Logger
// (jhkimqd-chaos-utils/pkg/reporting/logger.go): a thin struct wrapping
// zerolog.Logger with Level/Format construction and WithField(s) child
// loggers, generalized from chaos-injection event logging to sampler
// iteration/acceptance-rate logging.
package telemetry

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Level mirrors chaos-utils' LogLevel: a small closed set of severities
// instead of exposing the full zerolog.Level range to callers.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Format selects JSON (machine-readable, default) or human-readable console
// output.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// LoggerConfig configures NewLogger.
type LoggerConfig struct {
	Level  Level
	Format Format
	Output io.Writer
}

// Logger wraps a configured zerolog.Logger.
type Logger struct {
	z zerolog.Logger
}

// NewLogger constructs a Logger from cfg, defaulting Output to os.Stdout
// and Level to info.
func NewLogger(cfg LoggerConfig) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	var out io.Writer = cfg.Output
	if cfg.Format == FormatText {
		out = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: time.RFC3339}
	}
	z := zerolog.New(out).With().Timestamp().Logger()
	z = z.Level(levelToZerolog(cfg.Level))
	return &Logger{z: z}
}

func levelToZerolog(l Level) zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// WithField returns a child Logger carrying one additional structured
// field on every subsequent entry, e.g. a run id or a scheme name.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{z: l.z.With().Interface(key, value).Logger()}
}

// Info logs an info-level event with the given fields (key, value, key,
// value, ...).
func (l *Logger) Info(msg string, fields ...interface{}) { l.log(l.z.Info(), msg, fields...) }

// Warn logs a warn-level event.
func (l *Logger) Warn(msg string, fields ...interface{}) { l.log(l.z.Warn(), msg, fields...) }

// Error logs an error-level event.
func (l *Logger) Error(msg string, fields ...interface{}) { l.log(l.z.Error(), msg, fields...) }

// Debug logs a debug-level event.
func (l *Logger) Debug(msg string, fields ...interface{}) { l.log(l.z.Debug(), msg, fields...) }

func (l *Logger) log(event *zerolog.Event, msg string, fields ...interface{}) {
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		event = event.Interface(key, fields[i+1])
	}
	event.Msg(msg)
}
