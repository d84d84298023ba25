// Package logging builds the zap logger shared by the CLI and the TUI.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to w.
// Only warnings and errors are emitted unless debug is set.
func New(debug bool, w io.Writer) *zap.Logger {
	level := zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if debug {
		level.SetLevel(zapcore.DebugLevel)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	if !debug {
		encCfg.CallerKey = ""
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)

	opts := []zap.Option{}
	if debug {
		opts = append(opts, zap.AddCaller())
	}
	return zap.New(core, opts...).Named("daytrack")
}
