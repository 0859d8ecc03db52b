// Package logging builds the zap logger shared by the CLI.
//
// User-facing messages are printed directly; this logger carries diagnostics
// only and writes to stderr so it never interleaves with the banner.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to stderr. Only warnings and errors
// are emitted unless debug is set.
func New(debug bool) *zap.Logger {
	return NewWithWriter(os.Stderr, debug)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, debug bool) *zap.Logger {
	level := zapcore.WarnLevel
	if debug {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = "" // the banner already tells the time of day
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core)
}
