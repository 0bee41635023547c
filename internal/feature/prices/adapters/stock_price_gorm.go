// Package adapters はpricesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"intrinio_sdk/internal/feature/prices/domain/entity"
	"intrinio_sdk/internal/feature/prices/usecase"
)

type stockPriceGorm struct {
	db *gorm.DB
}

var _ usecase.StockPriceRepository = (*stockPriceGorm)(nil)

func NewStockPriceRepository(db *gorm.DB) *stockPriceGorm {
	return &stockPriceGorm{db: db}
}

type StockPriceModel struct {
	ID         uint      `gorm:"primaryKey"`
	Identifier string    `gorm:"size:32;not null;uniqueIndex:stock_price_id_date,priority:1"`
	Date       time.Time `gorm:"not null;uniqueIndex:stock_price_id_date,priority:2"`

	Open     float64 `gorm:"not null"`
	High     float64 `gorm:"not null"`
	Low      float64 `gorm:"not null"`
	Close    float64 `gorm:"not null"`
	AdjClose float64 `gorm:"not null"`
	Volume   int64   `gorm:"not null;default:0"`
}

func (StockPriceModel) TableName() string {
	return "stock_prices"
}

func toModel(e entity.StockPrice) StockPriceModel {
	return StockPriceModel{
		Identifier: e.Identifier,
		Date:       e.Date,
		Open:       e.Open,
		High:       e.High,
		Low:        e.Low,
		Close:      e.Close,
		AdjClose:   e.AdjClose,
		Volume:     e.Volume,
	}
}

// UpsertBatch は (identifier, date) が重複する行を上書きします。
func (r *stockPriceGorm) UpsertBatch(ctx context.Context, prices []entity.StockPrice) error {
	if len(prices) == 0 {
		return nil
	}
	ms := make([]StockPriceModel, 0, len(prices))
	for _, e := range prices {
		ms = append(ms, toModel(e))
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "identifier"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"open", "high", "low", "close", "adj_close", "volume"}),
	}).Create(&ms).Error
}

func (r *stockPriceGorm) LatestDate(ctx context.Context, identifier string) (time.Time, bool, error) {
	var m StockPriceModel
	err := r.db.WithContext(ctx).
		Where("identifier = ?", identifier).
		Order("date DESC").
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	return m.Date.UTC(), true, nil
}
