package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains all authentication and authorization settings.
//
// JWTSecret is base64-encoded; the decoded key must be between 32 and 64
// bytes. TokenLifetime is expressed in hours and must cover at least one
// full day.
type AuthConfig struct {
	JWTSecret          string `mapstructure:"jwt_secret"           validate:"required"`
	TokenLifetimeHours int    `mapstructure:"token_lifetime_hours" validate:"required,gte=24"`
	TokenHeader        string `mapstructure:"token_header"`
}
