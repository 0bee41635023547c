package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		timeout time.Duration
		want    time.Duration
	}{
		{"explicit timeout", 10 * time.Second, 10 * time.Second},
		{"zero means no client timeout", 0, 0},
		{"negative means no client timeout", -time.Second, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewHTTPClient(tt.timeout)
			assert.Equal(t, tt.want, c.Timeout)
		})
	}
}

func TestNewHTTPClient_Transport(t *testing.T) {
	t.Parallel()

	c := NewHTTPClient(0)

	tr, ok := c.Transport.(*http.Transport)
	require.True(t, ok, "transport should be *http.Transport")
	assert.Equal(t, 10, tr.MaxIdleConnsPerHost)
	assert.NotNil(t, tr.Proxy)
	assert.NotNil(t, tr.DialContext)
}
