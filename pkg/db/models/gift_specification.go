package models

import "time"

// GiftSpecification is a key/value attribute of a gift. The composite unique
// index rejects duplicate keys per gift.
type GiftSpecification struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	GiftID    uint      `gorm:"column:gift_id;not null;uniqueIndex:idx_gift_spec_key" json:"gift_id"`
	Key       string    `gorm:"column:key;not null;uniqueIndex:idx_gift_spec_key" json:"key"`
	Value     string    `gorm:"column:value;not null" json:"value"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
