package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"intrinio_sdk/internal/feature/prices/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	err = db.AutoMigrate(&StockPriceModel{}, &entity.TrackedSecurity{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestNewStockPriceRepository(t *testing.T) {
	db := setupTestDB(t)

	repo := NewStockPriceRepository(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestStockPriceGorm_UpsertBatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		prices       []entity.StockPrice
		setupFunc    func(t *testing.T, db *gorm.DB)
		validateFunc func(t *testing.T, db *gorm.DB)
	}{
		{
			name:   "success: empty batch is a no-op",
			prices: nil,
			validateFunc: func(t *testing.T, db *gorm.DB) {
				var count int64
				require.NoError(t, db.Model(&StockPriceModel{}).Count(&count).Error)
				assert.Zero(t, count)
			},
		},
		{
			name: "success: insert multiple bars",
			prices: []entity.StockPrice{
				{Identifier: "AAPL", Date: day(2), Open: 100, High: 110, Low: 90, Close: 105, AdjClose: 104, Volume: 1000},
				{Identifier: "AAPL", Date: day(3), Open: 105, High: 115, Low: 95, Close: 110, AdjClose: 109, Volume: 2000},
			},
			validateFunc: func(t *testing.T, db *gorm.DB) {
				var count int64
				require.NoError(t, db.Model(&StockPriceModel{}).Count(&count).Error)
				assert.EqualValues(t, 2, count)
			},
		},
		{
			name: "success: existing bar is updated",
			setupFunc: func(t *testing.T, db *gorm.DB) {
				require.NoError(t, db.Create(&StockPriceModel{Identifier: "AAPL", Date: day(2), Open: 1, High: 1, Low: 1, Close: 1, AdjClose: 1, Volume: 1}).Error)
			},
			prices: []entity.StockPrice{
				{Identifier: "AAPL", Date: day(2), Open: 100, High: 110, Low: 90, Close: 105, AdjClose: 104, Volume: 1000},
			},
			validateFunc: func(t *testing.T, db *gorm.DB) {
				var rows []StockPriceModel
				require.NoError(t, db.Find(&rows).Error)
				require.Len(t, rows, 1)
				assert.Equal(t, 105.0, rows[0].Close)
				assert.Equal(t, 104.0, rows[0].AdjClose)
				assert.EqualValues(t, 1000, rows[0].Volume)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db := setupTestDB(t)
			if tt.setupFunc != nil {
				tt.setupFunc(t, db)
			}
			repo := NewStockPriceRepository(db)

			err := repo.UpsertBatch(context.Background(), tt.prices)

			require.NoError(t, err)
			tt.validateFunc(t, db)
		})
	}
}

func TestStockPriceGorm_LatestDate(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewStockPriceRepository(db)
	ctx := context.Background()

	_, ok, err := repo.LatestDate(ctx, "AAPL")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.UpsertBatch(ctx, []entity.StockPrice{
		{Identifier: "AAPL", Date: day(3)},
		{Identifier: "AAPL", Date: day(9)},
		{Identifier: "MSFT", Date: day(20)},
	}))

	latest, ok, err := repo.LatestDate(ctx, "AAPL")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, day(9).Equal(latest), "got %v", latest)
}
