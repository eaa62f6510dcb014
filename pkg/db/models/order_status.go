package models

import (
	"time"

	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/enums"
)

// OrderStatus is one row of an order's append-only status history. Rows are
// immutable once written; the order's current_status column caches the
// newest row.
type OrderStatus struct {
	ID          uint              `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OrderID     string            `gorm:"column:order_id;size:8;not null;index" json:"order_id"`
	StatusName  enums.OrderStatus `gorm:"column:status_name;size:32;not null" json:"status_name"`
	Description *string           `gorm:"column:description" json:"description"`
	ChangedBy   *uint64           `gorm:"column:changed_by" json:"changed_by"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
