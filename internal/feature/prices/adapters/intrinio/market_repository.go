// Package intrinio は MarketRepository を Intrinio SDK で実装します。
package intrinio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/oapi-codegen/runtime/types"

	"intrinio_sdk/internal/feature/prices/domain/entity"
	"intrinio_sdk/internal/feature/prices/usecase"
	sdk "intrinio_sdk/intrinio"
)

// DefaultPageSize は 1 ページあたりの取得件数です。
const DefaultPageSize = 100

type marketRepository struct {
	api      *sdk.SecurityAPI
	pageSize int32
}

var _ usecase.MarketRepository = (*marketRepository)(nil)

// NewMarketRepository は日足を next_page に沿って全ページ取得するリポジトリを生成します。
func NewMarketRepository(api *sdk.SecurityAPI, pageSize int32) *marketRepository {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &marketRepository{api: api, pageSize: pageSize}
}

func (r *marketRepository) StockPrices(ctx context.Context, identifier string, from, to time.Time) ([]entity.StockPrice, error) {
	var out []entity.StockPrice

	fetch := func(ctx context.Context, nextPage *string) (*sdk.APIResponse[sdk.ApiResponseSecurityStockPrices], error) {
		return r.api.GetSecurityStockPricesWithHTTPInfo(ctx, identifier, &sdk.GetSecurityStockPricesParams{
			StartDate: &types.Date{Time: from},
			EndDate:   &types.Date{Time: to},
			Frequency: sdk.Ptr("daily"),
			PageSize:  sdk.Ptr(r.pageSize),
			NextPage:  nextPage,
		})
	}
	err := sdk.Paginate[sdk.ApiResponseSecurityStockPrices](ctx, fetch, func(page sdk.ApiResponseSecurityStockPrices) error {
		for _, p := range page.StockPrices {
			out = append(out, fromSummary(p))
		}
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

// mapError は 429 と 5xx を再試行可能なエラーとして印付けします。
func mapError(err error) error {
	var apiErr *sdk.APIError
	switch {
	case errors.Is(err, sdk.ErrInvalidArgument):
		return fmt.Errorf("%w: %v", usecase.ErrInvalidIdentifier, err)
	case errors.As(err, &apiErr):
		if apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("%w: %w", usecase.ErrTemporary, err)
		}
		if apiErr.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %w", usecase.ErrInvalidIdentifier, err)
		}
		return err
	default:
		return err
	}
}

func fromSummary(s sdk.StockPriceSummary) entity.StockPrice {
	d := s.Date.Time
	return entity.StockPrice{
		Date:     time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC),
		Open:     deref(s.Open),
		High:     deref(s.High),
		Low:      deref(s.Low),
		Close:    deref(s.Close),
		AdjClose: deref(s.AdjClose),
		Volume:   int64(deref(s.Volume)),
	}
}

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
