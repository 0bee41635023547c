// Package usecase は銘柄情報の参照ロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"intrinio_sdk/internal/feature/securities/domain/entity"
)

const (
	// DefaultSearchLimit は検索結果のデフォルト件数です。
	DefaultSearchLimit = 20
	// MaxSearchLimit は検索結果の最大件数です。
	MaxSearchLimit = 100
)

// IntradayWindow は日中価格の取得範囲です。Date と Time は両方指定された場合のみ結合されます。
type IntradayWindow struct {
	StartDate *time.Time
	StartTime string
	EndDate   *time.Time
	EndTime   string
}

// SecurityRepository は銘柄データの取得元を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type SecurityRepository interface {
	FindByIdentifier(ctx context.Context, identifier string) (*entity.Security, error)
	Search(ctx context.Context, query string, limit int) ([]entity.Security, error)
	IntradayPrices(ctx context.Context, identifier string, window IntradayWindow) ([]entity.IntradayPrice, error)
}

// SecurityUsecase は銘柄参照のユースケースです。
type SecurityUsecase struct {
	repo SecurityRepository
}

// NewSecurityUsecase は SecurityUsecase の新しいインスタンスを生成します。
func NewSecurityUsecase(repo SecurityRepository) *SecurityUsecase {
	return &SecurityUsecase{repo: repo}
}

// GetSecurity はティッカー、FIGI または Intrinio ID から銘柄を取得します。
func (u *SecurityUsecase) GetSecurity(ctx context.Context, identifier string) (*entity.Security, error) {
	identifier = normalizeIdentifier(identifier)
	if identifier == "" {
		return nil, fmt.Errorf("%w: identifier is required", ErrInvalidInput)
	}
	return u.repo.FindByIdentifier(ctx, identifier)
}

// Search は銘柄名やティッカーで検索します。limit が範囲外の場合はデフォルト値を使います。
func (u *SecurityUsecase) Search(ctx context.Context, query string, limit int) ([]entity.Security, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", ErrInvalidInput)
	}
	if limit <= 0 || limit > MaxSearchLimit {
		limit = DefaultSearchLimit
	}
	return u.repo.Search(ctx, query, limit)
}

// IntradayPrices は指定範囲の日中価格を返します。
func (u *SecurityUsecase) IntradayPrices(ctx context.Context, identifier string, window IntradayWindow) ([]entity.IntradayPrice, error) {
	identifier = normalizeIdentifier(identifier)
	if identifier == "" {
		return nil, fmt.Errorf("%w: identifier is required", ErrInvalidInput)
	}
	if window.StartDate != nil && window.EndDate != nil && window.EndDate.Before(*window.StartDate) {
		return nil, fmt.Errorf("%w: end_date is before start_date", ErrInvalidInput)
	}
	return u.repo.IntradayPrices(ctx, identifier, window)
}

func normalizeIdentifier(s string) string {
	return strings.TrimSpace(s)
}
