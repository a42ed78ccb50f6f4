package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/vi-colony/config"
)

// FileName is the log file created under the configured directory
const FileName = "vi-colony.log"

// New returns a no-op logger unless debug is enabled, in which case JSON lines go to a file
// The terminal owns stdout and stderr while running, so nothing is ever written there
func New(cfg config.LogConfig) (*zap.Logger, error) {
	if !cfg.Debug {
		return zap.NewNop(), nil
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	path := filepath.Join(cfg.Dir, FileName)

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeDuration = zapcore.StringDurationEncoder

	zcfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zap.DebugLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{path},
		DisableCaller:    true,
	}

	log, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log, nil
}

// WithSession tags every entry of log with a fresh run id and returns the id
func WithSession(log *zap.Logger) (*zap.Logger, string) {
	id := uuid.NewString()
	return log.With(
		zap.String("session", id),
		zap.Time("started", time.Now()),
	), id
}
