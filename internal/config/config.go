package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Tasks    TasksConfig    `mapstructure:"tasks"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                  int    `mapstructure:"port"                    validate:"required,gt=0,lt=65536"`
	LogLevel              string `mapstructure:"log_level"               validate:"required,oneof=debug info warn error"`
	RequestTimeoutSeconds int    `mapstructure:"request_timeout_seconds" validate:"gte=1,lte=300"`
}

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DatabaseConfig contains all database-related configuration settings.
//
// For the postgres driver URL is a connection string; for sqlite it is a file
// path or ":memory:".
type DatabaseConfig struct {
	Driver                 string `mapstructure:"driver"                    validate:"required,oneof=postgres sqlite"`
	URL                    string `mapstructure:"url"                       validate:"required"`
	MaxOpenConns           int    `mapstructure:"max_open_conns"            validate:"gte=1"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns"            validate:"gte=0"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes" validate:"gte=0"`
	AutoMigrate            bool   `mapstructure:"auto_migrate"`
}

// TasksConfig holds task-behaviour switches.
type TasksConfig struct {
	// LenientStatusFilter restores the legacy status search, where any label
	// other than Pending is treated as Done instead of being rejected.
	LenientStatusFilter bool `mapstructure:"lenient_status_filter"`
}
