package intrinio

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

const testAPIKey = "test-key"

// newTestAPI points a SecurityAPI at an httptest server running h and counts
// how many requests reached it.
func newTestAPI(t *testing.T, h http.HandlerFunc) (*SecurityAPI, *atomic.Int32) {
	t.Helper()

	hits := &atomic.Int32{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		h(w, r)
	}))
	t.Cleanup(server.Close)

	cfg := NewConfiguration()
	cfg.BasePath = server.URL
	cfg.APIKey = testAPIKey
	cfg.HTTPClient = server.Client()

	return NewSecurityAPI(NewAPIClient(cfg)), hits
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
