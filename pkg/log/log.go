// Package log provides the library's structured logging facade: a
// slog-compatible interface backed by zerolog, disabled unless the
// process opts in through PUREFP_LOG_LEVEL. Kernel packages never log;
// only the statistics layer and the diagnostic tools emit records.
package log

import (
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Logger is the minimal structured interface the library logs through.
// Fields are alternating key/value pairs, as in log/slog.
type Logger interface {
	Debug(msg string, fields ...any)
	Info(msg string, fields ...any)
	Warn(msg string, fields ...any)
	With(fields ...any) Logger
}

var (
	once   sync.Once
	global Logger
)

// GetLogger returns the process-wide logger. The backing zerolog level
// comes from PUREFP_LOG_LEVEL (debug/info/warn); unset or unrecognized
// values disable output entirely, keeping library calls free of I/O by
// default.
func GetLogger() Logger {
	once.Do(func() {
		level := zerolog.Disabled
		switch strings.ToLower(os.Getenv("PUREFP_LOG_LEVEL")) {
		case "debug":
			level = zerolog.DebugLevel
		case "info":
			level = zerolog.InfoLevel
		case "warn":
			level = zerolog.WarnLevel
		}
		zl := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
		global = &zerologLogger{zl: zl}
	})
	return global
}

type zerologLogger struct {
	zl zerolog.Logger
}

func (l *zerologLogger) Debug(msg string, fields ...any) {
	emit(l.zl.Debug(), msg, fields)
}

func (l *zerologLogger) Info(msg string, fields ...any) {
	emit(l.zl.Info(), msg, fields)
}

func (l *zerologLogger) Warn(msg string, fields ...any) {
	emit(l.zl.Warn(), msg, fields)
}

func (l *zerologLogger) With(fields ...any) Logger {
	ctx := l.zl.With()
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		ctx = ctx.Interface(key, fields[i+1])
	}
	return &zerologLogger{zl: ctx.Logger()}
}

func emit(e *zerolog.Event, msg string, fields []any) {
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, fields[i+1])
	}
	e.Msg(msg)
}
