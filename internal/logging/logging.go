// internal/logging/logging.go
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to w. verbose lowers the level to
// debug; quiet raises it to error so only failures reach the CI log.
func New(w io.Writer, verbose, quiet bool) *zap.SugaredLogger {
	lvl := zapcore.InfoLevel
	switch {
	case quiet:
		lvl = zapcore.ErrorLevel
	case verbose:
		lvl = zapcore.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = "" // CI logs carry their own timestamps
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), lvl)
	return zap.New(core).Sugar()
}

// Nop returns a logger that discards everything; handy in tests.
func Nop() *zap.SugaredLogger { return zap.NewNop().Sugar() }
