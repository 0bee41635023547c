package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"intrinio_sdk/internal/feature/prices/domain/entity"
	"intrinio_sdk/internal/feature/prices/usecase"
)

// trackedSecurityGorm はTrackedSecurityRepositoryインターフェースのgorm実装です。
type trackedSecurityGorm struct {
	db *gorm.DB
}

var _ usecase.TrackedSecurityRepository = (*trackedSecurityGorm)(nil)

// NewTrackedSecurityRepository は指定されたDB接続でリポジトリを生成します。
func NewTrackedSecurityRepository(db *gorm.DB) *trackedSecurityGorm {
	return &trackedSecurityGorm{db: db}
}

// ListActiveIdentifiers はsort_key順にアクティブな銘柄の識別子を返します。
func (r *trackedSecurityGorm) ListActiveIdentifiers(ctx context.Context) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).
		Model(&entity.TrackedSecurity{}).
		Where("is_active = ?", true).
		Order("sort_key ASC").
		Pluck("identifier", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Track は識別子を取り込み対象に加えます。登録済みの識別子は変更しません。
func (r *trackedSecurityGorm) Track(ctx context.Context, identifiers []string) error {
	if len(identifiers) == 0 {
		return nil
	}
	rows := make([]entity.TrackedSecurity, 0, len(identifiers))
	for i, id := range identifiers {
		rows = append(rows, entity.TrackedSecurity{Identifier: id, IsActive: true, SortKey: i})
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "identifier"}}, DoNothing: true}).
		Create(&rows).Error
}
