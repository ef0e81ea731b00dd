package logging

import (
	"go.uber.org/zap"
)

// New builds the application logger. Production mode emits JSON,
// development mode emits console output with human-readable timestamps.
func New(production bool, service string) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if production {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	return logger.Named(service), nil
}
