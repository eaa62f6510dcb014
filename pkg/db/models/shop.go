package models

import (
	"time"

	"gorm.io/gorm"
)

// Shop is a seller storefront. A shop with non-deleted orders cannot be
// removed.
type Shop struct {
	ID          uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"column:name;not null" json:"name"`
	Description *string        `gorm:"column:description" json:"description"`
	OwnerID     uint64         `gorm:"column:owner_id;not null;index" json:"owner_id"`
	Address     *string        `gorm:"column:address" json:"address"`
	Phone       *string        `gorm:"column:phone" json:"phone"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}
