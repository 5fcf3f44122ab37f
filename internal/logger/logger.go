// Package logger wraps zerolog.Logger with the constructors and context
// helpers used across sogsync.
//
// Logger embeds zerolog.Logger, so the full zerolog API (Debug, Info, Warn,
// Error, ...) is available directly. Components receive a *Logger at
// construction time; nothing in this module logs through a package-level
// global.
package logger

import (
	"context"
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// New constructs a *Logger writing JSON to os.Stdout, tagged with the given
// role label (e.g. "poller"). The caller field records the fully-qualified
// function name instead of file:line.
func New(role string) *Logger {
	return NewWithOutput(role, os.Stdout)
}

// NewWithOutput is New with an explicit output writer.
func NewWithOutput(role string, w io.Writer) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	l := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// Nop returns a *Logger that discards all output. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Child returns a new *Logger inheriting all fields of the receiver. The
// child can be enriched with extra context fields without affecting the
// parent.
func (l *Logger) Child() *Logger {
	return &Logger{l.With().Logger()}
}

// FromContext extracts the zerolog.Logger stored in ctx via zerolog's log.Ctx
// helper. If none was attached, zerolog falls back to its global logger, so
// the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
