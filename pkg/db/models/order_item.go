package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem captures the snapshot of each gift within an order. GiftName and
// GiftPrice are frozen at order time and never recomputed from the live gift.
type OrderItem struct {
	ID             uint            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OrderID        string          `gorm:"column:order_id;size:8;not null;index" json:"order_id"`
	GiftID         *uint           `gorm:"column:gift_id;index" json:"gift_id"`
	GiftName       string          `gorm:"column:gift_name;not null" json:"gift_name"`
	GiftPrice      decimal.Decimal `gorm:"column:gift_price;type:numeric(14,2);not null" json:"gift_price"`
	Quantity       int             `gorm:"column:quantity;not null" json:"quantity"`
	TotalPrice     decimal.Decimal `gorm:"column:total_price;type:numeric(14,2);not null" json:"total_price"`
	DiscountAmount decimal.Decimal `gorm:"column:discount_amount;type:numeric(14,2);not null;default:0" json:"discount_amount"`
	Notes          *string         `gorm:"column:notes" json:"notes"`
	VariantInfo    *string         `gorm:"column:variant_info" json:"variant_info"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
