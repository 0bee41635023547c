package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("REDIS_PASSWORD", "secret")
	t.Setenv("REDIS_DB", "2")

	cfg := LoadConfigFromEnv()
	assert.Equal(t, "cache.internal:6380", cfg.Addr())
	assert.Equal(t, "secret", cfg.Password)
	assert.Equal(t, 2, cfg.DB)
}

func TestNewRedisClient_NotConfigured(t *testing.T) {
	t.Parallel()

	rdb, err := NewRedisClient(context.Background(), Config{})
	assert.Nil(t, rdb)
	assert.ErrorIs(t, err, ErrNotConfigured)
}
