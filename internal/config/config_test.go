package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func setAll(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/pulse")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_PASSWORD", "pw")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("PORT", "9090")
	t.Setenv("WORKER_COUNT", "4")
}

func TestLoadSuccess(t *testing.T) {
	setAll(t)
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "postgres://localhost/pulse", cfg.DatabaseURL)
	require.Equal(t, "s3cret", cfg.JWTSecret)
	require.Equal(t, "localhost:6379", cfg.RedisAddr)
	require.Equal(t, "pw", cfg.RedisPassword)
	require.Equal(t, 2, cfg.RedisDB)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, 4, cfg.WorkerCount)
}

func TestLoadDefaults(t *testing.T) {
	setAll(t)
	t.Setenv("REDIS_PASSWORD", "")
	t.Setenv("REDIS_DB", "")
	t.Setenv("PORT", "")
	t.Setenv("WORKER_COUNT", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "", cfg.RedisPassword)
	require.Equal(t, 0, cfg.RedisDB)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, 1, cfg.WorkerCount)
}

func TestLoadErrors(t *testing.T) {
	setAll(t)

	t.Setenv("DATABASE_URL", "")
	_, err := Load()
	require.Error(t, err)

	setAll(t)
	t.Setenv("JWT_SECRET", "")
	_, err = Load()
	require.Error(t, err)

	setAll(t)
	t.Setenv("REDIS_ADDR", "")
	_, err = Load()
	require.Error(t, err)

	setAll(t)
	t.Setenv("REDIS_DB", "bad")
	_, err = Load()
	require.Error(t, err)

	setAll(t)
	t.Setenv("WORKER_COUNT", "0")
	_, err = Load()
	require.Error(t, err)
}
