// Package logging builds the file-backed zap logger. The terminal belongs to
// the UI, so nothing is ever written to stdout or stderr from here.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jask/shoppingcart/internal/config"
)

// New returns a logger writing JSON lines to cfg.Path, or a no-op logger when
// no path is configured.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	if cfg.Path == "" {
		return zap.NewNop(), nil
	}
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir log dir: %w", err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = lvl
	zc.OutputPaths = []string{cfg.Path}
	zc.ErrorOutputPaths = []string{cfg.Path}
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
