package utils

import (
	"context"

	"go.uber.org/zap"
)

func init() {
	zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
}

func GetLogger(ctx context.Context) *zap.Logger {
	return zap.L()
}

// UseDevelopmentLogger swaps the global logger for a human readable one,
// the returned func restores the previous logger.
func UseDevelopmentLogger() (func(), error) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return zap.ReplaceGlobals(logger), nil
}
