package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	JWT       JWTConfig
	Roster    RosterConfig
	Telemetry TelemetryConfig
	Alerts    AlertsConfig
	APIKey    APIKeyConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT verification configuration. Tokens are minted by
// the external auth service; this service only verifies them and extracts
// the caller identity claims.
type JWTConfig struct {
	Secret string
	Issuer string
}

// RosterConfig points at the external fleet/roster service that owns
// vehicles, routes, stops, students and guardians.
type RosterConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// TelemetryConfig contains fix ingestion settings
type TelemetryConfig struct {
	IngestTimeoutMs int // per-request budget for applying a fix
}

// AlertsConfig contains alerting policy knobs
type AlertsConfig struct {
	ProximityRadiusKm      float64 // stop radius for "nearby" alerts
	SpeedLimitKmh          float64 // speed warning threshold
	NearbyCooldownMinutes  int
	SpeedCooldownMinutes   int
	AbsenceCooldownMinutes int
}

// APIKeyConfig contains API keys for service-to-service authentication
type APIKeyConfig struct {
	RosterService string
	OpsService    string
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
