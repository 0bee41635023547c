package intrinio

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsync_SameResultAsSync(t *testing.T) {
	t.Parallel()

	api, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"id":"sec_1","ticker":"AAPL"}`)
	})
	ctx := context.Background()

	f := Async(ctx, func(ctx context.Context) (*APIResponse[Security], error) {
		return api.GetSecurityByIDWithHTTPInfo(ctx, "AAPL")
	})
	<-f.Done()

	resp, err := f.Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "sec_1", resp.Data.ID)
}

func TestAsync_AwaitHonoursContext(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	defer close(release)

	f := Async(context.Background(), func(ctx context.Context) (int, error) {
		<-release
		return 1, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAsync_CancelledCallContext(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})
	api, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	})
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	f := Async(ctx, func(ctx context.Context) (*Security, error) {
		return api.GetSecurityByID(ctx, "AAPL")
	})
	cancel()

	_, err := f.Await(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
}
