package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GiftVariant is one selectable option of a gift (e.g. color=red). The
// composite unique index rejects duplicate combinations per gift.
type GiftVariant struct {
	ID         uint            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	GiftID     uint            `gorm:"column:gift_id;not null;uniqueIndex:idx_gift_variant_combo" json:"gift_id"`
	Name       string          `gorm:"column:name;not null;uniqueIndex:idx_gift_variant_combo" json:"name"`
	Value      string          `gorm:"column:value;not null;uniqueIndex:idx_gift_variant_combo" json:"value"`
	PriceDelta decimal.Decimal `gorm:"column:price_delta;type:numeric(14,2);not null;default:0" json:"price_delta"`
	CreatedAt  time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
