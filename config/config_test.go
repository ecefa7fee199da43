package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("HTTP_PORT", "")
	t.Setenv("API_BASE_URL", "")
	t.Setenv("SCHEDULE_REFERENCE_DATE", "")
	t.Setenv("POSTGRES_HOST", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("S3_ENDPOINT", "")
	t.Setenv("AUTH_USERS", "")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.HTTP.Port)
	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, "day", cfg.Schedule.DefaultView)
	assert.True(t, cfg.Schedule.ReferenceDate.IsZero())
	assert.Equal(t, 30*time.Minute, cfg.Schedule.ViewIdleTTL)
	assert.False(t, cfg.Postgres.Enabled())
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.S3.Enabled())
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
}

func TestNewConfigOverrides(t *testing.T) {
	t.Setenv("SCHEDULE_REFERENCE_DATE", "2025-05-16")
	t.Setenv("SCHEDULE_GUARDED_TRANSITIONS", "true")
	t.Setenv("API_TIMEOUT", "3s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("AUTH_USERS", "recepcion:$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA;admin:$argon2id$x")
	t.Setenv("REDIS_DB", "3")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 5, 16, 0, 0, 0, 0, time.Local), cfg.Schedule.ReferenceDate)
	assert.True(t, cfg.Schedule.GuardedTransitions)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.HTTP.AllowedOrigins)
	assert.Len(t, cfg.Auth.Users, 2)
	assert.Equal(t, "$argon2id$x", cfg.Auth.Users["admin"])
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestNewConfigInvalidValues(t *testing.T) {
	t.Setenv("SCHEDULE_REFERENCE_DATE", "16/05/2025")
	_, err := NewConfig()
	assert.Error(t, err)

	t.Setenv("SCHEDULE_REFERENCE_DATE", "")
	t.Setenv("AUTH_USERS", "sin-hash")
	_, err = NewConfig()
	assert.Error(t, err)
}
