package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Gift is a sellable product within a shop.
type Gift struct {
	ID             uint                `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ShopID         uint                `gorm:"column:shop_id;not null;index" json:"shop_id"`
	CategoryID     *uint               `gorm:"column:category_id;index" json:"category_id"`
	Name           string              `gorm:"column:name;not null" json:"name"`
	Description    *string             `gorm:"column:description" json:"description"`
	Price          decimal.Decimal     `gorm:"column:price;type:numeric(14,2);not null" json:"price"`
	Stock          int                 `gorm:"column:stock;not null;default:0" json:"stock"`
	Specifications []GiftSpecification `gorm:"foreignKey:GiftID" json:"specifications,omitempty"`
	Variants       []GiftVariant       `gorm:"foreignKey:GiftID" json:"variants,omitempty"`
	CreatedAt      time.Time           `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time           `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt      `gorm:"column:deleted_at;index" json:"-"`
}
