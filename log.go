package challenge

import (
	"fmt"

	"go.uber.org/zap"
)

// LogConfig is used to configure the logger.
type LogConfig struct {
	// The minimum level, e.g. "debug", "info" or "warn".
	Level string `yaml:"level"`

	// Whether to use the human readable development encoding.
	Development bool `yaml:"development"`
}

// NewLogger will build a logger from the provided config.
func NewLogger(config LogConfig) (*zap.Logger, error) {
	// prepare config
	cfg := zap.NewProductionConfig()
	if config.Development {
		cfg = zap.NewDevelopmentConfig()
	}

	// set level
	if config.Level != "" {
		level, err := zap.ParseAtomicLevel(config.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
		cfg.Level = level
	}

	// build logger
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger, nil
}
