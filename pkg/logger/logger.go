// pkg/logger/logger.go
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a wrapper around a sugared zap logger. Output goes to stderr so
// stdout stays free for the messages meant for the user.
type Logger struct {
	*zap.SugaredLogger
}

// New creates a named logger. Debug selects a colored development console
// encoder at debug level; otherwise a production JSON encoder at info level.
func New(name string, debug bool) (*Logger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{SugaredLogger: l.Named(name).Sugar()}, nil
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// Install makes l the logger behind zap.L() and zap.S().
func (l *Logger) Install() func() {
	return zap.ReplaceGlobals(l.Desugar())
}
