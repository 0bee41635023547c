package intrinio

import (
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultBasePath is the production Intrinio API root.
	DefaultBasePath = "https://api-v2.intrinio.com"
	// DefaultUserAgent is sent when Configuration.UserAgent is empty.
	DefaultUserAgent = "intrinio-sdk-go/1.0"

	apiKeyParam = "api_key"
)

// Environment variables read by LoadConfig.
const (
	EnvAPIKey   = "INTRINIO_API_KEY"
	EnvBasePath = "INTRINIO_BASE_PATH"
	EnvTimeout  = "INTRINIO_TIMEOUT"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Configuration holds everything a request needs. Build it once, hand it to
// NewAPIClient and do not mutate it while requests are in flight; to change
// settings build a new APIClient.
type Configuration struct {
	BasePath       string            `validate:"required,url"`
	APIKey         string            `validate:"required"`
	UserAgent      string            `validate:"-"`
	DefaultHeaders map[string]string `validate:"-"`

	// Timeout is only used when HTTPClient is nil. Zero sets no client
	// timeout; cancellation is left to the request context.
	Timeout    time.Duration `validate:"gte=0"`
	HTTPClient *http.Client  `validate:"-"`

	// ExceptionFactory runs after every response. Nil disables it.
	ExceptionFactory ExceptionFactory `validate:"-"`
	Logger           *slog.Logger     `validate:"-"`
}

// NewConfiguration returns a Configuration pointing at the production API
// with the default exception factory installed.
func NewConfiguration() *Configuration {
	return &Configuration{
		BasePath:         DefaultBasePath,
		UserAgent:        DefaultUserAgent,
		DefaultHeaders:   map[string]string{},
		ExceptionFactory: DefaultExceptionFactory,
	}
}

// LoadConfig builds a Configuration from the environment on top of
// NewConfiguration's defaults.
func LoadConfig() *Configuration {
	cfg := NewConfiguration()
	cfg.APIKey = os.Getenv(EnvAPIKey)
	if v := os.Getenv(EnvBasePath); v != "" {
		cfg.BasePath = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		} else {
			slog.Warn("ignoring malformed timeout", "env", EnvTimeout, "value", v, "error", err)
		}
	}
	return cfg
}

// AddDefaultHeader sets a header sent with every request.
func (c *Configuration) AddDefaultHeader(key, value string) {
	if c.DefaultHeaders == nil {
		c.DefaultHeaders = map[string]string{}
	}
	c.DefaultHeaders[key] = value
}

// Validate reports missing or malformed settings.
func (c *Configuration) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("intrinio: invalid configuration: %w", err)
	}
	return nil
}

// clone gives the client its own copy so later edits by the caller do not
// leak into requests.
func (c *Configuration) clone() *Configuration {
	cp := *c
	cp.DefaultHeaders = maps.Clone(c.DefaultHeaders)
	return &cp
}
