package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Development signing key used when AUTH_JWT_SECRET is unset. Only accepted in development.
const devJWTSecret = "dev-secret"

// EnvDevelopment is the APP_ENV value that allows development defaults.
const EnvDevelopment = "development"

// Store drivers.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App          AppConfig
	Store        StoreConfig
	Postgres     PostgresConfig
	SQLite       SQLiteConfig
	Redis        RedisConfig
	Logger       LoggerConfig
	Auth         AuthConfig
	Notification NotificationConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string `env:"APP_NAME" envDefault:"portal-service"`
	Env                   string `env:"APP_ENV" envDefault:"development"`
	Host                  string `env:"APP_HOST" envDefault:"0.0.0.0"`
	Port                  string `env:"APP_PORT" envDefault:"8080"`
	Version               string `env:"APP_VERSION" envDefault:"dev"`
	RequestTimeoutSeconds int    `env:"HTTP_REQUEST_TIMEOUT_SECONDS" envDefault:"30"`
}

// StoreConfig selects the document store backend.
type StoreConfig struct {
	Driver        string `env:"STORE_DRIVER" envDefault:"sqlite"`
	RunMigrations bool   `env:"STORE_RUN_MIGRATIONS" envDefault:"true"`
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string `env:"POSTGRES_DSN"`
	MaxConns       int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	MinConns       int32  `env:"POSTGRES_MIN_CONNS" envDefault:"2"`
	ConnMaxIdleSec int32  `env:"POSTGRES_CONN_MAX_IDLE_SECONDS" envDefault:"30"`
	ConnMaxLifeSec int32  `env:"POSTGRES_CONN_MAX_LIFE_SECONDS" envDefault:"300"`
}

// SQLiteConfig holds the embedded database location.
type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH" envDefault:"portal.db"`
}

// RedisConfig holds Redis connection values. An empty Addr disables the profile cache.
type RedisConfig struct {
	Addr            string `env:"REDIS_ADDR"`
	Password        string `env:"REDIS_PASSWORD"`
	DB              int    `env:"REDIS_DB" envDefault:"0"`
	ProfileCacheTTL int    `env:"REDIS_PROFILE_CACHE_TTL_SECONDS" envDefault:"300"`
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// AuthConfig defines authentication parameters.
type AuthConfig struct {
	JWTSecret        string   `env:"AUTH_JWT_SECRET" envDefault:"dev-secret"`
	TokenIssuer      string   `env:"AUTH_TOKEN_ISSUER" envDefault:"portal-identity"`
	TokenAudience    string   `env:"AUTH_TOKEN_AUDIENCE" envDefault:"portal-service"`
	TokenTTLMinutes  int      `env:"AUTH_TOKEN_TTL_MINUTES" envDefault:"60"`
	BcryptCost       int      `env:"AUTH_BCRYPT_COST" envDefault:"12"`
	LocalProvider    bool     `env:"AUTH_LOCAL_PROVIDER" envDefault:"true"`
	AdminSubjects    []string `env:"AUTH_ADMIN_SUBJECTS" envSeparator:","`
	EnforceAdminRole bool     `env:"AUTH_ENFORCE_ADMIN_ROLE" envDefault:"false"`
}

// NotificationConfig holds notification endpoints.
type NotificationConfig struct {
	EmailFrom       string `env:"NOTIFY_EMAIL_FROM" envDefault:"noreply@example.com"`
	WebhookURL      string `env:"NOTIFY_WEBHOOK_URL"`
	MeetingLinkBase string `env:"NOTIFY_MEETING_LINK_BASE" envDefault:"https://meet.example.com/"`
	AMQPURL         string `env:"RABBITMQ_URL"`
	AMQPExchange    string `env:"RABBITMQ_EXCHANGE" envDefault:"meeting_decisions"`
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints env tags cannot express.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverPostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("POSTGRES_DSN required when STORE_DRIVER=%s", StoreDriverPostgres)
		}
	case StoreDriverSQLite:
		if c.SQLite.Path == "" {
			return fmt.Errorf("SQLITE_PATH required when STORE_DRIVER=%s", StoreDriverSQLite)
		}
	default:
		return fmt.Errorf("invalid STORE_DRIVER %q", c.Store.Driver)
	}
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return fmt.Errorf("AUTH_JWT_SECRET required")
	}
	if c.Auth.JWTSecret == devJWTSecret && c.App.Env != EnvDevelopment {
		return fmt.Errorf("AUTH_JWT_SECRET must be set when APP_ENV=%s", c.App.Env)
	}
	return nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// TokenTTL returns the lifetime of locally minted ID tokens.
func (a AuthConfig) TokenTTL() time.Duration {
	if a.TokenTTLMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(a.TokenTTLMinutes) * time.Minute
}

// ProfileCacheTTLDuration returns the Redis profile cache lifetime.
func (r RedisConfig) ProfileCacheTTLDuration() time.Duration {
	if r.ProfileCacheTTL <= 0 {
		return 0
	}
	return time.Duration(r.ProfileCacheTTL) * time.Second
}
