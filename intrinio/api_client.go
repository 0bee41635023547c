package intrinio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	platformhttp "intrinio_sdk/internal/platform/http"
)

const (
	contentTypeJSON = "application/json"
	contentTypeText = "text/plain; charset=utf-8"
)

// APIClient executes requests for the Api types. It is safe for concurrent use.
type APIClient struct {
	cfg    *Configuration
	http   *http.Client
	logger *slog.Logger
}

// NewAPIClient copies cfg and prepares the HTTP client. A nil cfg means
// NewConfiguration().
func NewAPIClient(cfg *Configuration) *APIClient {
	if cfg == nil {
		cfg = NewConfiguration()
	}
	cfg = cfg.clone()

	hc := cfg.HTTPClient
	if hc == nil {
		hc = platformhttp.NewHTTPClient(cfg.Timeout)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &APIClient{cfg: cfg, http: hc, logger: logger}
}

// Configuration returns a copy of the settings this client was built with.
func (c *APIClient) Configuration() *Configuration {
	return c.cfg.clone()
}

// APIResponse is the result of a call together with its HTTP metadata.
// RawBody holds the payload exactly as the server sent it.
type APIResponse[T any] struct {
	Data       T
	StatusCode int
	Header     http.Header
	RawBody    []byte
}

func dataOf[T any](resp *APIResponse[T], err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func valueOf[T any](resp *APIResponse[T], err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	return resp.Data, nil
}

// invoke runs a prepared request and decodes the body into T. Argument errors
// collected while building r are returned before anything is sent.
func invoke[T any](ctx context.Context, c *APIClient, r *request) (*APIResponse[T], error) {
	if r.err != nil {
		return nil, r.err
	}

	httpReq, err := c.newHTTPRequest(ctx, r)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("intrinio: %s: %w", r.operation, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			c.logger.Warn("failed to close response body", "operation", r.operation, "error", err)
		}
	}()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("intrinio: %s: read body: %w", r.operation, err)
	}

	c.logger.DebugContext(ctx, "intrinio request",
		"operation", r.operation,
		"method", r.method,
		"path", httpReq.URL.Path,
		"status", res.StatusCode,
		"elapsed", time.Since(start),
	)

	if f := c.cfg.ExceptionFactory; f != nil {
		if err := f(r.operation, res, body); err != nil {
			return nil, err
		}
	}

	out := &APIResponse[T]{
		StatusCode: res.StatusCode,
		Header:     res.Header,
		RawBody:    body,
	}
	if err := decodeBody(body, res.Header.Get("Content-Type"), &out.Data); err != nil {
		return nil, fmt.Errorf("intrinio: %s: decode response: %w", r.operation, err)
	}
	return out, nil
}

func (c *APIClient) newHTTPRequest(ctx context.Context, r *request) (*http.Request, error) {
	path := r.path
	for name, value := range r.pathParams {
		path = strings.ReplaceAll(path, "{"+name+"}", value)
	}

	u, err := url.Parse(strings.TrimRight(c.cfg.BasePath, "/") + path)
	if err != nil {
		return nil, fmt.Errorf("intrinio: %s: build url: %w", r.operation, err)
	}
	q := r.query
	q.Set(apiKeyParam, c.cfg.APIKey)
	u.RawQuery = q.Encode()

	var body io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("intrinio: %s: encode body: %w", r.operation, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("intrinio: %s: %w", r.operation, err)
	}

	for k, v := range c.cfg.DefaultHeaders {
		req.Header.Set(k, v)
	}
	ua := c.cfg.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	req.Header.Set("User-Agent", ua)
	req.Header.Set("Accept", r.accept)
	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}
	return req, nil
}

// decodeBody maps a payload onto out. Scalar targets accept text/plain as
// well as JSON; everything else is JSON.
func decodeBody(body []byte, contentType string, out any) error {
	trimmed := bytes.TrimSpace(body)

	switch v := out.(type) {
	case *string:
		if isJSON(contentType) && len(trimmed) > 0 && trimmed[0] == '"' {
			return json.Unmarshal(trimmed, v)
		}
		*v = string(body)
		return nil
	case *decimal.Decimal:
		s := strings.Trim(string(trimmed), `"`)
		if s == "" {
			return fmt.Errorf("empty number")
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return err
		}
		*v = d
		return nil
	}

	if len(trimmed) == 0 {
		return nil
	}
	return json.Unmarshal(trimmed, out)
}

func isJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == contentTypeJSON || strings.HasSuffix(mt, "+json")
}
