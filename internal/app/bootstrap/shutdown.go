// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown releases backend connections during graceful stop.
func Shutdown(ctx context.Context, _ *config.CoreConfig, _ AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.MongoClient != nil {
		if err := deps.MongoClient.Disconnect(ctx); err != nil {
			logger.Warn("mongo disconnect failed", zap.Error(err))
			return err
		}
	}
	return nil
}
