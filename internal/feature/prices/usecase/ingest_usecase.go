// Package usecase は株価の取り込み処理を提供します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"intrinio_sdk/internal/feature/prices/domain/entity"
	"intrinio_sdk/internal/shared/ratelimiter"
)

const (
	// DefaultLookback は初回取り込み時に遡る期間です。
	DefaultLookback = 365 * 24 * time.Hour
	// DefaultMaxRetries は 1 銘柄あたりの一時エラーの再試行回数です。
	DefaultMaxRetries = 3
)

// MarketRepository は日足を取得する外部 API の抽象です。
// 一時的な失敗は ErrTemporary でラップして返します。
type MarketRepository interface {
	StockPrices(ctx context.Context, identifier string, from, to time.Time) ([]entity.StockPrice, error)
}

// StockPriceRepository は日足の永続化を担います。
type StockPriceRepository interface {
	UpsertBatch(ctx context.Context, prices []entity.StockPrice) error
	// LatestDate は保存済みの最新日付を返します。未保存なら ok は false です。
	LatestDate(ctx context.Context, identifier string) (latest time.Time, ok bool, err error)
}

// TrackedSecurityRepository は取り込み対象の銘柄を返します。
type TrackedSecurityRepository interface {
	ListActiveIdentifiers(ctx context.Context) ([]string, error)
}

// IngestConfig は IngestUsecase の調整値です。ゼロ値は既定値になります。
type IngestConfig struct {
	Lookback   time.Duration
	MaxRetries uint64
}

// IngestResult は IngestAll の集計です。
type IngestResult struct {
	Securities int
	Failed     int
	Rows       int
}

// IngestUsecase は外部APIから日足を取得し、データベースに永続化します。
type IngestUsecase struct {
	market      MarketRepository
	prices      StockPriceRepository
	tracked     TrackedSecurityRepository
	rateLimiter ratelimiter.RateLimiterInterface

	lookback   time.Duration
	maxRetries uint64
	now        func() time.Time
	newBackOff func() backoff.BackOff
}

// NewIngestUsecase は新しい IngestUsecase を作成します。
func NewIngestUsecase(
	market MarketRepository,
	prices StockPriceRepository,
	tracked TrackedSecurityRepository,
	rateLimiter ratelimiter.RateLimiterInterface,
	cfg IngestConfig,
) *IngestUsecase {
	if cfg.Lookback <= 0 {
		cfg.Lookback = DefaultLookback
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	return &IngestUsecase{
		market:      market,
		prices:      prices,
		tracked:     tracked,
		rateLimiter: rateLimiter,
		lookback:    cfg.Lookback,
		maxRetries:  cfg.MaxRetries,
		now:         time.Now,
		newBackOff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff()
		},
	}
}

// IngestOne は 1 銘柄の未取得分を取り込み、保存した件数を返します。
// 保存済みの最新日の翌日から今日までを対象とし、未保存なら lookback 分遡ります。
func (iu *IngestUsecase) IngestOne(ctx context.Context, identifier string) (int, error) {
	to := truncateDay(iu.now())
	from := truncateDay(iu.now().Add(-iu.lookback))

	latest, ok, err := iu.prices.LatestDate(ctx, identifier)
	if err != nil {
		return 0, fmt.Errorf("failed to read latest date: %w", err)
	}
	if ok {
		from = truncateDay(latest).AddDate(0, 0, 1)
	}
	if from.After(to) {
		return 0, nil
	}

	bars, err := iu.fetchWithRetry(ctx, identifier, from, to)
	if err != nil {
		return 0, err
	}
	for i := range bars {
		bars[i].Identifier = identifier
	}
	if err := iu.prices.UpsertBatch(ctx, bars); err != nil {
		return 0, fmt.Errorf("failed to save prices: %w", err)
	}
	return len(bars), nil
}

func (iu *IngestUsecase) fetchWithRetry(ctx context.Context, identifier string, from, to time.Time) ([]entity.StockPrice, error) {
	var bars []entity.StockPrice
	op := func() error {
		if err := iu.rateLimiter.WaitIfNeeded(ctx); err != nil {
			return backoff.Permanent(err)
		}
		got, err := iu.market.StockPrices(ctx, identifier, from, to)
		if err != nil {
			if errors.Is(err, ErrTemporary) {
				return err
			}
			return backoff.Permanent(err)
		}
		bars = got
		return nil
	}

	b := backoff.WithContext(backoff.WithMaxRetries(iu.newBackOff(), iu.maxRetries), ctx)
	err := backoff.RetryNotify(op, b, func(err error, wait time.Duration) {
		slog.Warn("retrying stock price fetch", "identifier", identifier, "wait", wait, "error", err)
	})
	if err != nil {
		return nil, err
	}
	return bars, nil
}

// IngestAll はアクティブな全銘柄を順に取り込みます。
// 1 銘柄の失敗はログに残して次へ進み、対象一覧の取得失敗とキャンセルのみエラーを返します。
func (iu *IngestUsecase) IngestAll(ctx context.Context) (IngestResult, error) {
	var res IngestResult

	ids, err := iu.tracked.ListActiveIdentifiers(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to list tracked securities: %w", err)
	}

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.Securities++

		n, err := iu.IngestOne(ctx, id)
		if err != nil {
			res.Failed++
			slog.Error("failed to ingest stock prices", "identifier", id, "error", err)
			continue
		}
		res.Rows += n
		slog.Info("ingested stock prices", "identifier", id, "rows", n)
	}
	return res, nil
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
