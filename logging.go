package cif

import "github.com/rs/zerolog"

// Logger is the leveled logging capability the client emits to. Anything
// exposing these three methods can be injected with WithLogger; the
// default is a no-op, and the client functions identically with it.
//
// Fatalf marks an unrecoverable condition (a failed submission). A Logger
// implementation must not terminate the process from Fatalf; the client
// still returns an error to the caller afterwards.
type Logger interface {
	Debugf(format string, args ...any)
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Errorf(string, ...any) {}
func (nopLogger) Fatalf(string, ...any) {}

// NewZerologLogger adapts a zerolog.Logger to the Logger interface.
// Fatal-level events are written with WithLevel so the process keeps
// running.
func NewZerologLogger(l zerolog.Logger) Logger {
	return &zerologLogger{l: l}
}

type zerologLogger struct {
	l zerolog.Logger
}

func (z *zerologLogger) Debugf(format string, args ...any) {
	z.l.Debug().Msgf(format, args...)
}

func (z *zerologLogger) Errorf(format string, args ...any) {
	z.l.Error().Msgf(format, args...)
}

func (z *zerologLogger) Fatalf(format string, args ...any) {
	z.l.WithLevel(zerolog.FatalLevel).Msgf(format, args...)
}
