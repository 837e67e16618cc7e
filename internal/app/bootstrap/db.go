// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/amanguptabounteous/benchboard/internal/app/store/audit"
	"github.com/amanguptabounteous/benchboard/internal/bms"
)

// ConnectDB builds the BMS API client and, when configured, the Mongo
// connection for the audit trail. Mongo being down is fatal only when a
// URI was explicitly configured.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	var deps DBDeps

	client, err := bms.New(appCfg.BMSBaseURL, appCfg.BMSTimeout, logger)
	if err != nil {
		return deps, fmt.Errorf("bms client: %w", err)
	}
	deps.BMS = client
	logger.Info("BMS client ready", zap.String("base_url", appCfg.BMSBaseURL))

	if appCfg.MongoURI == "" || appCfg.AuditLogAuth == "off" {
		logger.Info("audit trail disabled")
		return deps, nil
	}

	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	mc, err := mongo.Connect(ctx, opts)
	if err != nil {
		return deps, fmt.Errorf("mongo connect: %w", err)
	}
	if err := mc.Ping(ctx, nil); err != nil {
		return deps, fmt.Errorf("mongo ping: %w", err)
	}

	deps.MongoClient = mc
	deps.MongoDatabase = mc.Database(appCfg.MongoDatabase)
	deps.Audit = audit.New(deps.MongoDatabase, logger)
	logger.Info("audit store connected", zap.String("database", appCfg.MongoDatabase))

	return deps, nil
}

// EnsureSchema creates the audit collection indexes when auditing is on.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.Audit == nil {
		return nil
	}
	if err := deps.Audit.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("audit indexes: %w", err)
	}
	return nil
}
