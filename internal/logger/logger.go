// Package logger wraps zerolog with the conventions used across the
// client and the gateway: JSON lines carrying a role, a timestamp and the
// calling function.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Logger struct {
	zerolog.Logger
}

func newLogger(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewLogger returns a logger writing to stdout.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger returns a logger writing to logs/<role>.log next to the
// executable. The terminal belongs to the UI, so when the file cannot be
// opened the output is discarded.
func NewClientLogger(role string) *Logger {
	return newLogger(clientLogWriter(role), role)
}

func clientLogWriter(role string) io.Writer {
	execPath, err := os.Executable()
	if err != nil {
		return io.Discard
	}

	dir := filepath.Join(filepath.Dir(execPath), "logs")
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return io.Discard
	}

	logFile, err := os.OpenFile(filepath.Join(dir, role+".log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return io.Discard
	}
	return logFile
}

func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithOwner returns a child logger tagged with a wallet address.
func (l *Logger) WithOwner(owner string) *Logger {
	return &Logger{l.With().Str("owner", owner).Logger()}
}

func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
