// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/amanguptabounteous/benchboard/internal/app/resources"
	"github.com/amanguptabounteous/benchboard/internal/app/system/timeouts"
)

// Startup runs one-time application initialization after backends are
// connected but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	// The report/export tier gets the same ceiling as the BMS transport so
	// a handler context never outlives its client call.
	timeouts.Configure(timeouts.Config{Long: appCfg.BMSTimeout})
	return nil
}
