// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for benchboard.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: bms_base_url, session_name, etc.
//   - Environment variables: BENCHBOARD_BMS_BASE_URL, BENCHBOARD_SESSION_NAME, etc.
//   - Command-line flags: --bms_base_url, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "bms_base_url", Default: "http://localhost:8080", Desc: "Base URL of the bench management (BMS) API"},
	{Name: "bms_timeout", Default: "15s", Desc: "Timeout for BMS API calls (e.g., 10s, 1m)"},

	{Name: "mongo_uri", Default: "", Desc: "MongoDB connection URI for the audit trail (blank disables auditing)"},
	{Name: "mongo_database", Default: "benchboard", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "benchboard-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	{Name: "audit_log_auth", Default: "on", Desc: "Audit trail for sign-in and export events: 'on' or 'off'"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles .env files, config
// files, environment variables (WAFFLE_* for core, BENCHBOARD_* for app)
// and command-line flags, merged with precedence: flags > env > files >
// defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "BENCHBOARD", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		BMSBaseURL: appValues.String("bms_base_url"),
		BMSTimeout: appValues.Duration("bms_timeout", 15*time.Second),

		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		AuditLogAuth: appValues.String("audit_log_auth"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation before any
// backends are touched.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if strings.TrimSpace(appCfg.BMSBaseURL) == "" {
		return fmt.Errorf("bms_base_url is required")
	}
	if appCfg.BMSTimeout <= 0 {
		return fmt.Errorf("bms_timeout must be positive")
	}
	if appCfg.MongoURI != "" {
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
	}
	switch appCfg.AuditLogAuth {
	case "on", "off":
	default:
		return fmt.Errorf("audit_log_auth must be 'on' or 'off', got %q", appCfg.AuditLogAuth)
	}
	return nil
}
