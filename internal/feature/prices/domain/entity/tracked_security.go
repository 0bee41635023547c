package entity

import "time"

// TrackedSecurity は日次取り込みの対象銘柄です。
type TrackedSecurity struct {
	ID         uint      `gorm:"primaryKey"`
	Identifier string    `gorm:"size:32;not null;uniqueIndex"`
	IsActive   bool      `gorm:"not null;default:true"`
	SortKey    int       `gorm:"not null;default:0"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}
