package config

import "time"

// Default values applied by [StructuredConfig.setDefaults].
const (
	DefaultHTTPAddress      = "localhost:3000"
	DefaultTokenIssuer      = "go-task-keeper"
	DefaultTokenDuration    = time.Hour
	DefaultPasswordHashCost = 10
	DefaultRequestTimeout   = 30 * time.Second
	DefaultLogLevel         = "debug"
	DefaultVersion          = "dev"
)

// setDefaults fills fields that no source has set. The token signing key and
// the DSN have no defaults.
func (cfg *StructuredConfig) setDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.PasswordHashCost == 0 {
		cfg.App.PasswordHashCost = DefaultPasswordHashCost
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
}
