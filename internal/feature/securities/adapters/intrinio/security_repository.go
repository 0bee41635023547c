// Package intrinio は SecurityRepository を Intrinio SDK で実装します。
package intrinio

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oapi-codegen/runtime/types"

	"intrinio_sdk/internal/feature/securities/domain/entity"
	"intrinio_sdk/internal/feature/securities/usecase"
	sdk "intrinio_sdk/intrinio"
)

type securityRepository struct {
	api *sdk.SecurityAPI
}

var _ usecase.SecurityRepository = (*securityRepository)(nil)

// NewSecurityRepository は Intrinio の Security API を使うリポジトリを生成します。
func NewSecurityRepository(api *sdk.SecurityAPI) *securityRepository {
	return &securityRepository{api: api}
}

func (r *securityRepository) FindByIdentifier(ctx context.Context, identifier string) (*entity.Security, error) {
	sec, err := r.api.GetSecurityByID(ctx, identifier)
	if err != nil {
		return nil, mapError(err)
	}
	out := fromSecurity(sec)
	return &out, nil
}

func (r *securityRepository) Search(ctx context.Context, query string, limit int) ([]entity.Security, error) {
	res, err := r.api.SearchSecurities(ctx, query, &sdk.SearchSecuritiesParams{
		PageSize: sdk.Ptr(int32(limit)),
	})
	if err != nil {
		return nil, mapError(err)
	}
	out := make([]entity.Security, 0, len(res.Securities))
	for _, s := range res.Securities {
		out = append(out, fromSummary(s))
	}
	return out, nil
}

func (r *securityRepository) IntradayPrices(ctx context.Context, identifier string, window usecase.IntradayWindow) ([]entity.IntradayPrice, error) {
	params := &sdk.GetSecurityIntradayPricesParams{
		StartDate: toDate(window.StartDate),
		StartTime: optional(window.StartTime),
		EndDate:   toDate(window.EndDate),
		EndTime:   optional(window.EndTime),
	}
	res, err := r.api.GetSecurityIntradayPrices(ctx, identifier, params)
	if err != nil {
		return nil, mapError(err)
	}
	out := make([]entity.IntradayPrice, 0, len(res.IntradayPrices))
	for _, p := range res.IntradayPrices {
		out = append(out, entity.IntradayPrice{
			Time:      p.Time,
			LastPrice: deref(p.LastPrice),
			BidPrice:  deref(p.BidPrice),
			AskPrice:  deref(p.AskPrice),
			Volume:    deref(p.Volume),
			Source:    deref(p.Source),
		})
	}
	return out, nil
}

// mapError は SDK のエラーを usecase のエラーに変換します。
func mapError(err error) error {
	switch {
	case errors.Is(err, sdk.ErrInvalidArgument):
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	case sdk.IsNotFound(err):
		return usecase.ErrSecurityNotFound
	default:
		return err
	}
}

func fromSecurity(s *sdk.Security) entity.Security {
	return entity.Security{
		ID:             s.ID,
		Ticker:         deref(s.Ticker),
		Name:           deref(s.Name),
		CompositeFIGI:  deref(s.CompositeFIGI),
		Currency:       deref(s.Currency),
		ExchangeMIC:    deref(s.ListingExchangeMIC),
		Active:         deref(s.Active),
		FirstPriceDate: fromDate(s.FirstStockPrice),
		LastPriceDate:  fromDate(s.LastStockPrice),
	}
}

func fromSummary(s sdk.SecuritySummary) entity.Security {
	return entity.Security{
		ID:             s.ID,
		Ticker:         deref(s.Ticker),
		Name:           deref(s.Name),
		CompositeFIGI:  deref(s.CompositeFIGI),
		Currency:       deref(s.Currency),
		ExchangeMIC:    deref(s.ListingExchangeMIC),
		Active:         true,
		FirstPriceDate: fromDate(s.FirstStockPrice),
		LastPriceDate:  fromDate(s.LastStockPrice),
	}
}

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toDate(t *time.Time) *types.Date {
	if t == nil {
		return nil
	}
	return &types.Date{Time: *t}
}

func fromDate(d *types.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
