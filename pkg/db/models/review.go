package models

import (
	"time"

	"gorm.io/gorm"
)

// Review is buyer feedback on a gift. Rating is bounded to 1..5 before any
// write reaches this model.
type Review struct {
	ID        uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	GiftID    uint           `gorm:"column:gift_id;not null;index" json:"gift_id"`
	OrderID   *string        `gorm:"column:order_id;size:8" json:"order_id"`
	UserID    uint64         `gorm:"column:user_id;not null;index" json:"user_id"`
	Rating    int            `gorm:"column:rating;not null" json:"rating"`
	Comment   *string        `gorm:"column:comment" json:"comment"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}
