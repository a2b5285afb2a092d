// Package logging builds the zap loggers used by the gallivant commands
package logging

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Formats accepted by New
const (
	FormatJSON = "json"
	FormatText = "text"
)

// ParseLevel maps debug/info/warn/error to a zap level
func ParseLevel(s string) (zapcore.Level, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q: must be debug, info, warn or error", s)
	}
	return level, nil
}

// New creates a logger writing to w. It does not replace the global logger.
func New(levelStr, format string, w io.Writer) (*zap.Logger, error) {
	level, err := ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	switch strings.ToLower(format) {
	case FormatJSON:
		enc = zapcore.NewJSONEncoder(encCfg)
	case FormatText:
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	default:
		return nil, fmt.Errorf("invalid log format %q: must be text or json", format)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	return zap.New(core), nil
}
