package cmd

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger builds the production JSON logger at level. An empty level means info.
func NewLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if level != "" {
		atomic, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		cfg.Level = atomic
	}
	return cfg.Build()
}
