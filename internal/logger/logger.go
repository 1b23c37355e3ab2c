package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Initialize replaces the global zap logger with a production logger at the given level.
func Initialize(level string) error {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return fmt.Errorf("error parse log level: %w", err)
	}

	config := zap.NewProductionConfig()
	config.Level = atomicLevel

	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("error build logger: %w", err)
	}

	zap.ReplaceGlobals(logger)

	return nil
}
