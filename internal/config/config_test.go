package config

import (
	"testing"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadEnv(t *testing.T) *koanf.Koanf {
	t.Helper()
	k := koanf.New(".")
	require.NoError(t, k.Load(env.Provider("", ".", func(s string) string { return s }), nil))
	return k
}

func TestLoad(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_NAME", "portfolio")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("API_PREFIX", "v1/")

	cfg := Load()

	assert.Equal(t, DriverPostgres, cfg.Store.Driver)
	assert.Equal(t, "test-host", cfg.Store.Postgres.Host)
	assert.Equal(t, "portfolio", cfg.Store.Postgres.Name)
	assert.Equal(t, "portfolio", cfg.Store.Mongo.Name)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Store.Mongo.URL)
	assert.Equal(t, 20, cfg.Store.Postgres.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, "/v1", cfg.APIPrefix)
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "API_PREFIX", "STORE_DRIVER", "SQLITE_PATH", "LOG_LEVEL", "MINIO_ENDPOINT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.Equal(t, DriverMongo, cfg.Store.Driver)
	assert.Equal(t, "portfolio.db", cfg.Store.SQLite.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.MinIO.Enabled())
}

func TestNormalizePrefix(t *testing.T) {
	assert.Equal(t, "/api", normalizePrefix("/api"))
	assert.Equal(t, "/api", normalizePrefix("api/"))
	assert.Equal(t, "/api/v2", normalizePrefix(" /api/v2/ "))
	assert.Equal(t, "", normalizePrefix("/"))
	assert.Equal(t, "", normalizePrefix(""))
}

func TestGetEnv(t *testing.T) {
	t.Setenv("test_env_var", "value")
	k := loadEnv(t)

	assert.Equal(t, "value", getEnv(k, "TEST_ENV_VAR", "default"))
	assert.Equal(t, "default", getEnv(k, "NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "test_bool_var"

	t.Setenv(key, "true")
	assert.True(t, getEnvBool(loadEnv(t), key, false))

	t.Setenv(key, "false")
	assert.False(t, getEnvBool(loadEnv(t), key, true))

	t.Setenv(key, "invalid")
	assert.True(t, getEnvBool(loadEnv(t), key, true))

	t.Setenv(key, "")
	assert.True(t, getEnvBool(loadEnv(t), key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "test_int_var"

	t.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(loadEnv(t), key, 0))

	t.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(loadEnv(t), key, 10))

	t.Setenv(key, "")
	assert.Equal(t, 10, getEnvInt(loadEnv(t), key, 10))
}
