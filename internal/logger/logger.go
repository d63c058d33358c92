package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Output is where CLI logs are written. stdout is reserved for command results.
const Output = "stderr"

// New builds the CLI logger: console or json encoding, info or debug level.
func New(json bool, debug bool) (*zap.Logger, error) {
	cfg := zap.Config{
		Encoding:         encoding(json),
		Level:            zap.NewAtomicLevelAt(level(debug)),
		OutputPaths:      []string{Output},
		ErrorOutputPaths: []string{Output},
		EncoderConfig:    encoderConfig(),
	}

	return cfg.Build()
}

func encoding(json bool) string {
	if json {
		return "json"
	}
	return "console"
}

func level(debug bool) zapcore.Level {
	if debug {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:     "step",
		LevelKey:       "level",
		TimeKey:        "time",
		CallerKey:      "caller",
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}
