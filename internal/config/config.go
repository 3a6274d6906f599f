package config

import (
	"os"
	"strconv"
)

// ServerConfig holds the HTTP listener settings.
// The defaults reproduce the classic fixture address: 127.0.0.1:8888.
type ServerConfig struct {
	Host string
	Port string
}

// DatabaseConfig holds embedded sqlite settings.
type DatabaseConfig struct {
	Path               string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// AppConfig is the centralized configuration struct for the fixture service.
// It is populated from environment variables.
type AppConfig struct {
	Server   ServerConfig
	Database DatabaseConfig

	// Endpoints is the raw comma-separated list of fixture endpoints to enable.
	// Parsing and validation happen in the fixture package.
	Endpoints string
}

// ListenAddr returns the host:port pair the server binds to.
func (c *AppConfig) ListenAddr() string {
	return c.Server.Host + ":" + c.Server.Port
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Host: getEnv("HOST", "127.0.0.1"),
			Port: getEnv("PORT", "8888"),
		},
		Database: DatabaseConfig{
			// In-memory by default; the schema exists only to let the overflow
			// endpoint trigger real constraint errors.
			Path:               getEnv("SQLITE_PATH", ":memory:"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 1),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 1),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 0),
		},
		Endpoints: getEnv("FIXTURE_ENDPOINTS", "crash"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
