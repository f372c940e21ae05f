package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"APP_PORT", "DB_DRIVER", "DB_PATH", "REDIS_ADDR", "REDIS_DB", "CACHE_TTL_SECONDS", "LOG_LEVEL", "IS_PROD"} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "5001", cfg.AppPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "emerge.db", cfg.DBPath)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, 300*time.Second, cfg.CacheTTL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.IsProd)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_USER", "root")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_NAME", "emerge")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CACHE_TTL_SECONDS", "60")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("IS_PROD", "true")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.IsProd)
	assert.Equal(t, "root:secret@tcp(db:3306)/emerge?parseTime=true", cfg.MySQLDSN())
}

func TestLoadConfig_BadTTLFallsBack(t *testing.T) {
	t.Setenv("CACHE_TTL_SECONDS", "soon")
	assert.Equal(t, 300*time.Second, LoadConfig().CacheTTL)

	t.Setenv("CACHE_TTL_SECONDS", "-5")
	assert.Equal(t, 300*time.Second, LoadConfig().CacheTTL)
}
