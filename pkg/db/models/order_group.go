package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/enums"
)

// OrderGroup is the checkout-level aggregate. One group fans out into one
// Order per shop represented in the cart.
type OrderGroup struct {
	ID                   uint             `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	BuyerID              uint64           `gorm:"column:buyer_id;not null;index" json:"buyer_id"`
	ReceiverID           *uint64          `gorm:"column:receiver_id;index" json:"receiver_id"`
	IsGift               int              `gorm:"column:is_gift;not null;default:0" json:"is_gift"`
	IsSurprise           int              `gorm:"column:is_surprise;not null;default:0" json:"is_surprise"`
	IsHidden             int              `gorm:"column:is_hidden;not null;default:0" json:"is_hidden"`
	ReferenceCode        string           `gorm:"column:reference_code;size:36;not null;uniqueIndex" json:"reference_code"`
	PaymentGatewayFee    decimal.Decimal  `gorm:"column:payment_gateway_fee;type:numeric(14,2);not null;default:0" json:"payment_gateway_fee"`
	ServiceFee           decimal.Decimal  `gorm:"column:service_fee;type:numeric(14,2);not null;default:0" json:"service_fee"`
	TargetedReceiverName *string          `gorm:"column:targeted_receiver_name" json:"targeted_receiver_name"`
	TypeDevice           enums.DeviceType `gorm:"column:type_device;size:16;not null;default:'MOBILE'" json:"type_device"`
	Message              *string          `gorm:"column:message" json:"message"`
	ReceiverMessage      *string          `gorm:"column:receiver_message" json:"receiver_message"`
	ConfirmGiftBy        *uint64          `gorm:"column:confirm_gift_by" json:"confirm_gift_by"`
	Orders               []Order          `gorm:"foreignKey:OrderGroupID" json:"orders,omitempty"`
	CreatedAt            time.Time        `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time        `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt            gorm.DeletedAt   `gorm:"column:deleted_at;index" json:"-"`
}
