package cache

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the structured logger the engine logs through. Call sites pass
// alternating key/value pairs, mirroring the field-loop pattern in the
// teacher pack's monitoring.LogError (internal/single/monitoring/logger.go).
type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Error(msg string, kv ...any)
}

// zerologLogger adapts a zerolog.Logger to the Logger interface.
type zerologLogger struct {
	z zerolog.Logger
}

// NewLogger builds a structured logger for the cache engine. pretty selects
// a human-readable console writer (development); otherwise JSON is used
// (production, Loki-compatible), matching the teacher's NewLogger.
func NewLogger(level zerolog.Level, pretty bool) Logger {
	var z zerolog.Logger
	if pretty {
		z = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	} else {
		z = zerolog.New(os.Stdout)
	}
	z = z.Level(level).With().Timestamp().Str("component", "cache").Logger()
	return &zerologLogger{z: z}
}

func (l *zerologLogger) Debug(msg string, kv ...any) { l.log(l.z.Debug(), msg, kv) }
func (l *zerologLogger) Info(msg string, kv ...any)  { l.log(l.z.Info(), msg, kv) }
func (l *zerologLogger) Error(msg string, kv ...any) { l.log(l.z.Error(), msg, kv) }

func (l *zerologLogger) log(event *zerolog.Event, msg string, kv []any) {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		if err, ok := kv[i+1].(error); ok {
			event = event.AnErr(key, err)
			continue
		}
		event = event.Interface(key, kv[i+1])
	}
	event.Msg(msg)
}

// noopLogger discards everything; used as the default when the caller
// passes no Logger to NewEngine.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
