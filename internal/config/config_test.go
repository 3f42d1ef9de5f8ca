package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"STORE_DRIVER", "AUTH_ADMIN_SUBJECTS", "AUTH_TOKEN_TTL_MINUTES", "HTTP_REQUEST_TIMEOUT_SECONDS", "AUTH_LOCAL_PROVIDER", "APP_HOST", "APP_PORT", "APP_ENV", "AUTH_JWT_SECRET"} {
		unsetEnv(t, key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Store.Driver != StoreDriverSQLite {
		t.Errorf("Store.Driver = %q, want %q", cfg.Store.Driver, StoreDriverSQLite)
	}
	if cfg.App.Addr() != "0.0.0.0:8080" {
		t.Errorf("App.Addr() = %q", cfg.App.Addr())
	}
	if cfg.App.RequestTimeout() != 30*time.Second {
		t.Errorf("RequestTimeout() = %v", cfg.App.RequestTimeout())
	}
	if cfg.Auth.TokenTTL() != time.Hour {
		t.Errorf("TokenTTL() = %v", cfg.Auth.TokenTTL())
	}
	if !cfg.Auth.LocalProvider {
		t.Error("LocalProvider should default to true")
	}
	if len(cfg.Auth.AdminSubjects) != 0 {
		t.Errorf("AdminSubjects = %v, want empty", cfg.Auth.AdminSubjects)
	}
}

func TestLoadOverrides(t *testing.T) {
	unsetEnv(t, "APP_ENV")
	unsetEnv(t, "AUTH_JWT_SECRET")
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("POSTGRES_DSN", "postgres://localhost/portal")
	t.Setenv("AUTH_ADMIN_SUBJECTS", "uid-1,uid-2")
	t.Setenv("AUTH_TOKEN_TTL_MINUTES", "5")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Postgres.DSN != "postgres://localhost/portal" {
		t.Errorf("Postgres.DSN = %q", cfg.Postgres.DSN)
	}
	if len(cfg.Auth.AdminSubjects) != 2 || cfg.Auth.AdminSubjects[1] != "uid-2" {
		t.Errorf("AdminSubjects = %v", cfg.Auth.AdminSubjects)
	}
	if cfg.Auth.TokenTTL() != 5*time.Minute {
		t.Errorf("TokenTTL() = %v", cfg.Auth.TokenTTL())
	}
	if cfg.App.RequestTimeout() != 0 {
		t.Errorf("RequestTimeout() = %v, want 0", cfg.App.RequestTimeout())
	}
}

func TestLoadRejectsDevelopmentSecretOutsideDevelopment(t *testing.T) {
	unsetEnv(t, "AUTH_JWT_SECRET")
	unsetEnv(t, "STORE_DRIVER")
	t.Setenv("APP_ENV", "production")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail without AUTH_JWT_SECRET in production")
	}

	t.Setenv("AUTH_JWT_SECRET", "rotated-secret")
	if _, err := Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "sqlite ok",
			cfg:  Config{Store: StoreConfig{Driver: StoreDriverSQLite}, SQLite: SQLiteConfig{Path: "x.db"}, Auth: AuthConfig{JWTSecret: "s"}},
		},
		{
			name:    "postgres without dsn",
			cfg:     Config{Store: StoreConfig{Driver: StoreDriverPostgres}, Auth: AuthConfig{JWTSecret: "s"}},
			wantErr: true,
		},
		{
			name:    "unknown driver",
			cfg:     Config{Store: StoreConfig{Driver: "mongo"}, Auth: AuthConfig{JWTSecret: "s"}},
			wantErr: true,
		},
		{
			name: "development secret in development",
			cfg:  Config{App: AppConfig{Env: EnvDevelopment}, Store: StoreConfig{Driver: StoreDriverSQLite}, SQLite: SQLiteConfig{Path: "x.db"}, Auth: AuthConfig{JWTSecret: devJWTSecret}},
		},
		{
			name:    "development secret in production",
			cfg:     Config{App: AppConfig{Env: "production"}, Store: StoreConfig{Driver: StoreDriverSQLite}, SQLite: SQLiteConfig{Path: "x.db"}, Auth: AuthConfig{JWTSecret: devJWTSecret}},
			wantErr: true,
		},
		{
			name:    "blank secret",
			cfg:     Config{Store: StoreConfig{Driver: StoreDriverSQLite}, SQLite: SQLiteConfig{Path: "x.db"}, Auth: AuthConfig{JWTSecret: " "}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// unsetEnv removes key for the duration of the test and restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unset %s: %v", key, err)
	}
}
