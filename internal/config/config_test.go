package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := LoadConfig()

		require.Equal(t, "postgres", cfg.DBHost)
		require.Equal(t, "5432", cfg.DBPort)
		require.Equal(t, "db_tracker", cfg.DBName)
		require.Equal(t, "8080", cfg.ServerPort)
		require.Equal(t, "redis:6379", cfg.RedisURL)
		require.Equal(t, "dev", cfg.Env)
		require.Equal(t, 5*time.Minute, cfg.RedisTTL)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("REDIS_TTL", "30s")

		cfg := LoadConfig()

		require.Equal(t, "db.internal", cfg.DBHost)
		require.Equal(t, "9090", cfg.ServerPort)
		require.Equal(t, 30*time.Second, cfg.RedisTTL)
	})

	t.Run("bad ttl falls back", func(t *testing.T) {
		t.Setenv("REDIS_TTL", "not-a-duration")

		cfg := LoadConfig()

		require.Equal(t, 5*time.Minute, cfg.RedisTTL)
	})
}

func TestPostgresDSN(t *testing.T) {
	cfg := Config{
		DBHost: "localhost",
		DBPort: "5433",
		DBUser: "svc",
		DBPass: "secret",
		DBName: "tracker",
	}

	require.Equal(t,
		"host=localhost user=svc password=secret dbname=tracker port=5433 sslmode=disable",
		cfg.PostgresDSN(),
	)
}
