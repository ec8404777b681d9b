package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
)

// Config carries the settings shared by the API, the worker and the CLI.
type Config struct {
	Port            string         `yaml:"port"             env:"PORT"             env-default:"8080"`
	Environment     string         `yaml:"environment"      env:"ENVIRONMENT"      env-default:"local"`
	LogLevel        string         `yaml:"log_level"        env:"LOG_LEVEL"        env-default:"info"`
	ShutdownTimeout time.Duration  `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
	Database        DatabaseConfig `yaml:"database"`
	Temporal        TemporalConfig `yaml:"temporal"`
	OTel            OTelConfig     `yaml:"otel"`
}

// DatabaseConfig selects the record store backend.
type DatabaseConfig struct {
	PostgresDSN     string `yaml:"postgres_dsn"     env:"POSTGRES_DSN"`
	URL             string `yaml:"url"              env:"DATABASE_URL"`
	SQLitePath      string `yaml:"sqlite_path"      env:"SQLITE_PATH"`
	ConnectAttempts int    `yaml:"connect_attempts" env:"DB_CONNECT_ATTEMPTS" env-default:"3"`
}

// TemporalConfig holds the Temporal client settings.
type TemporalConfig struct {
	Address   string `yaml:"address"   env:"TEMPORAL_ADDRESS"   env-default:"localhost:7233"`
	Namespace string `yaml:"namespace" env:"TEMPORAL_NAMESPACE" env-default:"default"`
	Disabled  bool   `yaml:"disabled"  env:"TEMPORAL_DISABLED"`
}

// OTelConfig holds the trace exporter settings.
type OTelConfig struct {
	Endpoint string `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	Insecure bool   `yaml:"insecure" env:"OTEL_EXPORTER_OTLP_INSECURE" env-default:"true"`
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Validate checks basic constraints after loading.
func (c Config) Validate() error {
	port, err := strconv.Atoi(strings.TrimSpace(c.Port))
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("PORT must be a valid TCP port, got %q", c.Port)
	}
	if c.Database.ConnectAttempts < 1 {
		return fmt.Errorf("DB_CONNECT_ATTEMPTS must be at least 1")
	}
	if _, err := c.Database.ResolveDSN(); err != nil {
		return err
	}
	return nil
}

// ResolveDSN returns the PostgreSQL DSN. POSTGRES_DSN wins; otherwise a
// postgres:// DATABASE_URL is converted to key/value form. Empty means no
// PostgreSQL store is configured.
func (d DatabaseConfig) ResolveDSN() (string, error) {
	if dsn := strings.TrimSpace(d.PostgresDSN); dsn != "" {
		return dsn, nil
	}
	url := strings.TrimSpace(d.URL)
	if url == "" {
		return "", nil
	}
	dsn, err := pq.ParseURL(url)
	if err != nil {
		return "", fmt.Errorf("DATABASE_URL: %w", err)
	}
	return dsn, nil
}
