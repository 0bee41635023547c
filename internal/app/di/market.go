// Package di provides dependency injection factories for creating application components.
package di

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	pricesadapters "intrinio_sdk/internal/feature/prices/adapters"
	pricesintrinio "intrinio_sdk/internal/feature/prices/adapters/intrinio"
	pricesusecase "intrinio_sdk/internal/feature/prices/usecase"
	secintrinio "intrinio_sdk/internal/feature/securities/adapters/intrinio"
	secusecase "intrinio_sdk/internal/feature/securities/usecase"
	"intrinio_sdk/internal/platform/cache"
	"intrinio_sdk/internal/shared/ratelimiter"
	"intrinio_sdk/intrinio"
)

// NewSecurityAPI creates a SecurityAPI configured from INTRINIO_* environment variables.
func NewSecurityAPI() (*intrinio.SecurityAPI, error) {
	cfg := intrinio.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return intrinio.NewSecurityAPI(intrinio.NewAPIClient(cfg)), nil
}

// NewSecurityRepository creates a SecurityRepository implementation.
// If Redis is available, lookups are cached until the next daily refresh.
func NewSecurityRepository(api *intrinio.SecurityAPI, rdb *redis.Client) secusecase.SecurityRepository {
	repo := secintrinio.NewSecurityRepository(api)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingSecurityRepository(rdb, 0, repo, "securities").
		WithTTLFunc(cache.TimeUntilNextRefresh)
}

// IngestOptions は日足取り込みの調整値です。
type IngestOptions struct {
	RateLimit    int
	RateInterval time.Duration
	PageSize     int32
	Lookback     time.Duration
	MaxRetries   uint64
}

// NewIngestUsecase wires the market adapter, gorm repositories and rate limiter.
func NewIngestUsecase(api *intrinio.SecurityAPI, db *gorm.DB, opts IngestOptions) (*pricesusecase.IngestUsecase, error) {
	if db == nil {
		return nil, fmt.Errorf("ingest requires a database")
	}
	if opts.RateInterval <= 0 {
		opts.RateInterval = time.Second
	}
	return pricesusecase.NewIngestUsecase(
		pricesintrinio.NewMarketRepository(api, opts.PageSize),
		pricesadapters.NewStockPriceRepository(db),
		pricesadapters.NewTrackedSecurityRepository(db),
		ratelimiter.NewRateLimiter(opts.RateLimit, opts.RateInterval),
		pricesusecase.IngestConfig{Lookback: opts.Lookback, MaxRetries: opts.MaxRetries},
	), nil
}
