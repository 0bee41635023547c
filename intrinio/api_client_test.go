package intrinio

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSecurityByID_BuildsRequestAndDecodes(t *testing.T) {
	t.Parallel()

	api, hits := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/securities/AAPL", r.URL.Path)
		assert.Equal(t, testAPIKey, r.URL.Query().Get("api_key"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))

		writeJSON(w, http.StatusOK, `{"id":"sec_123","ticker":"AAPL","name":"Apple Inc","active":true,"first_stock_price":"1980-12-12"}`)
	})

	resp, err := api.GetSecurityByIDWithHTTPInfo(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, "sec_123", resp.Data.ID)
	require.NotNil(t, resp.Data.Ticker)
	assert.Equal(t, "AAPL", *resp.Data.Ticker)
	require.NotNil(t, resp.Data.FirstStockPrice)
	assert.Equal(t, "1980-12-12", resp.Data.FirstStockPrice.Format(time.DateOnly))
	assert.Nil(t, resp.Data.Delisted)
	assert.EqualValues(t, 1, hits.Load())

	sec, err := api.GetSecurityByID(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "sec_123", sec.ID)
}

func TestGetSecurityByID_NotFoundGoesThroughExceptionFactory(t *testing.T) {
	t.Parallel()

	api, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"error":"Not Found","message":"The requested security was not found"}`)
	})

	_, err := api.GetSecurityByID(context.Background(), "NOPE")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "GetSecurityByID", apiErr.Operation)
	assert.Contains(t, string(apiErr.Body), "not found")
}

func TestExceptionFactory_CustomAndDisabled(t *testing.T) {
	t.Parallel()

	var calledWith string
	custom := errors.New("custom failure")

	api, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"id":"ignored"}`)
	})
	cfg := api.client.Configuration()
	cfg.ExceptionFactory = func(operation string, resp *http.Response, body []byte) error {
		calledWith = operation
		if resp.StatusCode == http.StatusNotFound {
			return custom
		}
		return nil
	}
	withFactory := NewSecurityAPI(NewAPIClient(cfg))

	_, err := withFactory.GetSecurityByID(context.Background(), "AAPL")
	assert.ErrorIs(t, err, custom)
	assert.Equal(t, "GetSecurityByID", calledWith)

	cfg.ExceptionFactory = nil
	noFactory := NewSecurityAPI(NewAPIClient(cfg))

	resp, err := noFactory.GetSecurityByIDWithHTTPInfo(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "ignored", resp.Data.ID)
}

func TestDefaultHeadersAndUserAgent(t *testing.T) {
	t.Parallel()

	api, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "abc", r.Header.Get("X-Request-Source"))
		assert.Equal(t, "my-app/2.0", r.Header.Get("User-Agent"))
		writeJSON(w, http.StatusOK, `{"id":"x"}`)
	})
	cfg := api.client.Configuration()
	cfg.AddDefaultHeader("X-Request-Source", "abc")
	cfg.UserAgent = "my-app/2.0"

	_, err := NewSecurityAPI(NewAPIClient(cfg)).GetSecurityByID(context.Background(), "AAPL")
	require.NoError(t, err)
}

func TestNewAPIClient_CopiesConfiguration(t *testing.T) {
	t.Parallel()

	cfg := NewConfiguration()
	cfg.APIKey = "first"
	cfg.AddDefaultHeader("X-A", "1")
	client := NewAPIClient(cfg)

	cfg.APIKey = "second"
	cfg.AddDefaultHeader("X-A", "2")

	got := client.Configuration()
	assert.Equal(t, "first", got.APIKey)
	assert.Equal(t, "1", got.DefaultHeaders["X-A"])
}

func TestNewAPIClient_ZeroTimeoutSetsNoClientTimeout(t *testing.T) {
	t.Parallel()

	cfg := NewConfiguration()
	cfg.APIKey = "key"
	client := NewAPIClient(cfg)
	assert.Zero(t, client.http.Timeout)

	cfg.Timeout = 3 * time.Second
	client = NewAPIClient(cfg)
	assert.Equal(t, 3*time.Second, client.http.Timeout)
}

func TestPathParamsAreEscaped(t *testing.T) {
	t.Parallel()

	api, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/securities/BRK%20B", r.URL.EscapedPath())
		writeJSON(w, http.StatusOK, `{"id":"brk"}`)
	})

	_, err := api.GetSecurityByID(context.Background(), "BRK B")
	require.NoError(t, err)
}

func TestMalformedJSONIsReported(t *testing.T) {
	t.Parallel()

	api, _ := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"id":`)
	})

	_, err := api.GetSecurityByID(context.Background(), "AAPL")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}
