// Package logging builds the zap logger used by the triroute command.
package logging

import (
	"fmt"
	"os"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/triroute/config"
)

// New returns a logger for cfg.
//
// Output goes to stderr, or to cfg.File through a size-rotated lumberjack
// writer when a file is set. cfg.JSON selects the JSON encoder; the default
// is the console encoder. Call Sync on the result before exiting.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	return zap.New(
		zapcore.NewCore(encoder(cfg.JSON), sink(cfg), level),
		zap.AddCaller(),
	), nil
}

func encoder(json bool) zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	if json {
		return zapcore.NewJSONEncoder(ec)
	}
	ec.EncodeLevel = zapcore.CapitalLevelEncoder

	return zapcore.NewConsoleEncoder(ec)
}

func sink(cfg config.LogConfig) zapcore.WriteSyncer {
	if cfg.File == "" {
		return zapcore.Lock(os.Stderr)
	}

	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize, // megabytes
		MaxAge:     cfg.MaxAge,  // days
		MaxBackups: cfg.MaxBackups,
	})
}
