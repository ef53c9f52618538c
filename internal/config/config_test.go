package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 10, cfg.River.MaxWorkers)
	assert.Equal(t, time.Minute, cfg.Engine.SweepInterval)
	assert.Equal(t, 24*time.Hour, cfg.Engine.CounterRetention)

	// First boot auto-generates the signing key.
	assert.GreaterOrEqual(t, len(cfg.Security.JWTSigningKey), 32)
}

func TestDatabaseDSN(t *testing.T) {
	t.Parallel()

	t.Run("url wins", func(t *testing.T) {
		t.Parallel()
		c := DatabaseConfig{URL: "postgres://u:p@h:5432/db", Host: "ignored"}
		assert.Equal(t, "postgres://u:p@h:5432/db", c.DSN())
	})

	t.Run("constructed from fields", func(t *testing.T) {
		t.Parallel()
		c := DatabaseConfig{Host: "db", Port: 5433, User: "arena", Password: "pw", Database: "arena"}
		assert.Equal(t, "postgres://arena:pw@db:5433/arena?sslmode=disable", c.DSN())
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Security: SecurityConfig{JWTSigningKey: "short"},
		Engine:   EngineConfig{SweepInterval: time.Minute},
	}
	require.Error(t, cfg.Validate())

	cfg.Security.JWTSigningKey = "0123456789abcdef0123456789abcdef"
	require.NoError(t, cfg.Validate())

	cfg.Engine.SweepInterval = 0
	require.Error(t, cfg.Validate())
}
