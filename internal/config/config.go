package config

import (
	"strconv"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Store drivers accepted in STORE_DRIVER.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MongoConfig holds the document store connection for the default driver.
type MongoConfig struct {
	URL  string
	Name string
}

// SQLiteConfig holds the embedded store location.
type SQLiteConfig struct {
	Path string
}

// StoreConfig selects the document store backend and carries every backend's settings.
type StoreConfig struct {
	Driver   string
	Mongo    MongoConfig
	Postgres DatabaseConfig
	SQLite   SQLiteConfig
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Enabled reports whether image storage was configured at all.
func (c MinIOConfig) Enabled() bool {
	return c.Endpoint != ""
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level    string
	Format   string
	Timezone string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Port      string
	APIPrefix string
	Log       LogConfig
	Store     StoreConfig
	MinIO     MinIOConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	k := koanf.New(".")
	// The env provider never fails; a nil parser keeps raw string values.
	_ = k.Load(env.Provider("", ".", strings.ToLower), nil)

	dbName := getEnv(k, "DB_NAME", "")

	return &AppConfig{
		Port:      getEnv(k, "PORT", "8080"),
		APIPrefix: normalizePrefix(getEnv(k, "API_PREFIX", "/api")),
		Log: LogConfig{
			Level:    getEnv(k, "LOG_LEVEL", "info"),
			Format:   getEnv(k, "LOG_FORMAT", "json"),
			Timezone: getEnv(k, "TIMEZONE", "UTC"),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(getEnv(k, "STORE_DRIVER", DriverMongo)),
			Mongo: MongoConfig{
				URL:  getEnv(k, "MONGO_URL", ""),
				Name: dbName,
			},
			Postgres: DatabaseConfig{
				Host:               getEnv(k, "DB_HOST", ""),
				Port:               getEnv(k, "DB_PORT", "5432"),
				User:               getEnv(k, "DB_USER", ""),
				Password:           getEnv(k, "DB_PASSWORD", ""),
				Name:               dbName,
				SSLMode:            getEnv(k, "DB_SSLMODE", "disable"),
				MaxOpenConns:       getEnvInt(k, "DB_MAX_OPEN_CONNS", 10),
				MaxIdleConns:       getEnvInt(k, "DB_MAX_IDLE_CONNS", 5),
				ConnMaxLifetimeSec: getEnvInt(k, "DB_CONN_MAX_LIFETIME_SEC", 300),
			},
			SQLite: SQLiteConfig{
				Path: getEnv(k, "SQLITE_PATH", "portfolio.db"),
			},
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv(k, "MINIO_ENDPOINT", ""),
			AccessKey: getEnv(k, "MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv(k, "MINIO_SECRET_KEY", ""),
			Bucket:    getEnv(k, "MINIO_BUCKET", ""),
			UseSSL:    getEnvBool(k, "MINIO_USE_SSL", false),
		},
	}
}

// normalizePrefix makes sure the prefix starts with a slash and has none at the end.
// An empty or "/" prefix mounts routes at the root.
func normalizePrefix(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}

func getEnv(k *koanf.Koanf, key, def string) string {
	if v := k.String(strings.ToLower(key)); v != "" {
		return v
	}
	return def
}

func getEnvBool(k *koanf.Koanf, key string, def bool) bool {
	if v := k.String(strings.ToLower(key)); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(k *koanf.Koanf, key string, def int) int {
	if v := k.String(strings.ToLower(key)); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
