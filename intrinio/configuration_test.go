package intrinio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfiguration_Defaults(t *testing.T) {
	t.Parallel()

	cfg := NewConfiguration()
	assert.Equal(t, DefaultBasePath, cfg.BasePath)
	assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
	assert.Zero(t, cfg.Timeout, "no client timeout unless configured")
	assert.NotNil(t, cfg.ExceptionFactory)
	assert.Empty(t, cfg.APIKey)
}

func TestConfiguration_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Configuration)
		wantErr bool
	}{
		{"valid", func(c *Configuration) {}, false},
		{"missing api key", func(c *Configuration) { c.APIKey = "" }, true},
		{"missing base path", func(c *Configuration) { c.BasePath = "" }, true},
		{"malformed base path", func(c *Configuration) { c.BasePath = "not a url" }, true},
		{"negative timeout", func(c *Configuration) { c.Timeout = -time.Second }, true},
		{"zero timeout", func(c *Configuration) { c.Timeout = 0 }, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfiguration()
			cfg.APIKey = "k"
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvBasePath, "http://localhost:9999")
	t.Setenv(EnvTimeout, "5s")

	cfg := LoadConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "http://localhost:9999", cfg.BasePath)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoadConfig_MalformedTimeoutKeepsDefault(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvBasePath, "")
	t.Setenv(EnvTimeout, "soon")

	cfg := LoadConfig()
	assert.Equal(t, DefaultBasePath, cfg.BasePath)
	assert.Zero(t, cfg.Timeout)
}
