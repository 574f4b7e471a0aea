// Common package contains helpers shared by every tool.
// Logs go to their own writer (stderr in the CLI) so they never mix
// with the interactive prompts on stdout.
package common

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels for logger.V
const (
	INFO  = 0
	DEBUG = 1
)

// NewLogger returns a logr.Logger backed by a zap console encoder writing to w.
// verbose enables V(DEBUG) lines.
func NewLogger(w io.Writer, verbose bool) logr.Logger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = "" // keep console output stable
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zapr.NewLogger(zap.New(core))
}
