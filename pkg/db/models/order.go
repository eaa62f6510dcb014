package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/enums"
)

// Order is one shop-scoped sub-order within an OrderGroup. Its id is a short
// human-shareable string ("KN" plus six alphanumerics), unique across all
// orders including soft-deleted ones.
type Order struct {
	ID                   string            `gorm:"column:id;size:8;primaryKey" json:"id"`
	InvoiceURL           *string           `gorm:"column:invoice_url" json:"invoice_url"`
	ShipperID            *uint64           `gorm:"column:shipper_id;uniqueIndex" json:"shipper_id"`
	AWB                  *string           `gorm:"column:awb" json:"awb"`
	PickupCode           *string           `gorm:"column:pickup_code" json:"pickup_code"`
	ConfirmationDeadline time.Time         `gorm:"column:confirmation_deadline;not null" json:"confirmation_deadline"`
	DateOrderedFor       time.Time         `gorm:"column:date_ordered_for;not null" json:"date_ordered_for"`
	CurrentStatus        enums.OrderStatus `gorm:"column:current_status;size:32;not null;default:'PENDING'" json:"current_status"`
	ShopID               uint              `gorm:"column:shop_id;not null;index" json:"shop_id"`
	OrderGroupID         uint              `gorm:"column:order_group_id;not null;index" json:"order_group_id"`
	Items                []OrderItem       `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Shipment             *OrderShipment    `gorm:"foreignKey:OrderID" json:"shipment,omitempty"`
	Statuses             []OrderStatus     `gorm:"foreignKey:OrderID" json:"statuses,omitempty"`
	CreatedAt            time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt            gorm.DeletedAt    `gorm:"column:deleted_at;index" json:"-"`
}
