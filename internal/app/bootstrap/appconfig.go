// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for benchboard.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (ports, TLS, logging); AppConfig is everything
// specific to this application.
type AppConfig struct {
	// Upstream bench management service
	BMSBaseURL string        // Base URL of the BMS API (scheme://host[:port], no /bms suffix)
	BMSTimeout time.Duration // Transport-level ceiling for BMS calls

	// MongoDB (audit trail only; the BMS owns all bench data)
	MongoURI         string // Connection string; blank disables the audit store
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Session management
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions
	SessionDomain string // Cookie domain (blank means current host)

	// Audit logging: "on" records sign-in/export events, "off" disables
	AuditLogAuth string
}
