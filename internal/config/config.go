package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Data source names accepted by DATA_SOURCE.
const (
	DataSourceDatabase = "database"
	DataSourceFixture  = "fixture"
)

// Database drivers accepted by DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	CORS      CORSConfig
	Telemetry TelemetryConfig
}

type DatabaseConfig struct {
	Source       string
	Driver       string
	URL          string
	Host         string
	Port         string
	User         string
	Password     string
	Database     string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	QueryTimeout time.Duration
}

type ServerConfig struct {
	Port         string
	GinMode      string
	AppName      string
	ExposeErrors bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type TelemetryConfig struct {
	Enabled      bool
	OTLPEndpoint string
	SampleRatio  float64
}

// LoadConfig reads the process environment, after merging an optional .env
// file, and validates the values that have to be numeric.
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	driver := strings.ToLower(getEnv("DB_DRIVER", DriverPostgres))
	defaultPort, defaultName := "5432", "maareeye_hospital"
	switch driver {
	case DriverMySQL:
		defaultPort = "3306"
	case DriverSQLite:
		defaultName = "maareeye_hospital.db"
	}

	config := &Config{
		Database: DatabaseConfig{
			Source:   strings.ToLower(getEnv("DATA_SOURCE", DataSourceDatabase)),
			Driver:   driver,
			URL:      os.Getenv("DATABASE_URL"),
			Host:     getEnv("DB_HOST", getEnv("PGHOST", "localhost")),
			Port:     getEnv("DB_PORT", getEnv("PGPORT", defaultPort)),
			User:     getEnv("DB_USER", getEnv("PGUSER", "postgres")),
			Password: getEnv("DB_PASSWORD", getEnv("PGPASSWORD", "password")),
			Database: getEnv("DB_NAME", getEnv("PGDATABASE", defaultName)),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Server: ServerConfig{
			Port:    getEnv("PORT", "3000"),
			GinMode: getEnv("GIN_MODE", "debug"),
			AppName: getEnv("APP_NAME", "Maareeye Hospital System"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "*")),
		},
		Telemetry: TelemetryConfig{
			OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		},
	}

	var err error
	if err = validatePort("PORT", config.Server.Port); err != nil {
		return nil, err
	}
	if config.Database.MaxOpenConns, err = parseInt("DB_MAX_OPEN_CONNS", 10); err != nil {
		return nil, err
	}
	if config.Database.MaxIdleConns, err = parseInt("DB_MAX_IDLE_CONNS", 5); err != nil {
		return nil, err
	}
	if config.Database.QueryTimeout, err = parseDuration("DB_QUERY_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if config.Server.ExposeErrors, err = parseBool("EXPOSE_ERRORS", true); err != nil {
		return nil, err
	}
	if config.Telemetry.Enabled, err = parseBool("OTEL_ENABLED", false); err != nil {
		return nil, err
	}
	if config.Telemetry.SampleRatio, err = parseRatio("OTEL_SAMPLING_RATIO", 1); err != nil {
		return nil, err
	}

	switch config.Database.Source {
	case DataSourceDatabase, DataSourceFixture:
	default:
		return nil, fmt.Errorf("DATA_SOURCE must be %q or %q (got %q)", DataSourceDatabase, DataSourceFixture, config.Database.Source)
	}
	switch config.Database.Driver {
	case DriverPostgres, DriverMySQL, DriverSQLite:
	default:
		return nil, fmt.Errorf("DB_DRIVER must be one of postgres, mysql, sqlite (got %q)", config.Database.Driver)
	}

	return config, nil
}

// DSN builds the driver-specific connection string. DATABASE_URL, when set,
// is used verbatim.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	switch d.Driver {
	case DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			d.User, d.Password, d.Host, d.Port, d.Database)
	case DriverSQLite:
		return d.Database
	default:
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			d.Host, d.Port, d.User, d.Password, d.Database, d.SSLMode)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func validatePort(key, value string) error {
	p, err := strconv.Atoi(value)
	if err != nil || p < 1 || p > 65535 {
		return fmt.Errorf("%s must be a valid TCP port (got %q)", key, value)
	}
	return nil
}

func parseInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer (got %q)", key, v)
	}
	return n, nil
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration (got %q)", key, v)
	}
	return d, nil
}

func parseBool(key string, fallback bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean (got %q)", key, v)
	}
	return b, nil
}

func parseRatio(key string, fallback float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 || f > 1 {
		return 0, fmt.Errorf("%s must be between 0 and 1 (got %q)", key, v)
	}
	return f, nil
}

func parseOrigins(s string) []string {
	origins := []string{}
	for _, origin := range strings.Split(s, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
