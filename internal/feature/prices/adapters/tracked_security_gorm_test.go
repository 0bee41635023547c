package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intrinio_sdk/internal/feature/prices/domain/entity"
)

func TestTrackedSecurityGorm_ListActiveIdentifiers(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewTrackedSecurityRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&[]entity.TrackedSecurity{
		{Identifier: "MSFT", IsActive: true, SortKey: 2},
		{Identifier: "AAPL", IsActive: true, SortKey: 1},
		{Identifier: "DELISTED", IsActive: true, SortKey: 0},
	}).Error)
	// default:true のため、作成後に無効化する
	require.NoError(t, db.Model(&entity.TrackedSecurity{}).
		Where("identifier = ?", "DELISTED").
		Update("is_active", false).Error)

	ids, err := repo.ListActiveIdentifiers(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "MSFT"}, ids)
}

func TestTrackedSecurityGorm_Track(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewTrackedSecurityRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Track(ctx, []string{"AAPL", "MSFT"}))
	// 重複は無視される
	require.NoError(t, repo.Track(ctx, []string{"AAPL"}))
	require.NoError(t, repo.Track(ctx, nil))

	ids, err := repo.ListActiveIdentifiers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "MSFT"}, ids)
}
