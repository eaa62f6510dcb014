package orders

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/db/models"
	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/types"
)

// CreateOrderGroupInput carries the checkout-level fields for a new group.
// Flag fields accept booleans or 0/1 and are stored numerically.
type CreateOrderGroupInput struct {
	BuyerID              uint64
	ReceiverID           *uint64
	IsGift               types.BoolFlag
	IsSurprise           types.BoolFlag
	IsHidden             types.BoolFlag
	PaymentGatewayFee    *decimal.Decimal
	ServiceFee           *decimal.Decimal
	TargetedReceiverName *string
	TypeDevice           string
	Message              *string
	ReceiverMessage      *string
	ConfirmGiftBy        *uint64
}

// CreateOrderItemInput is one gift line within a new order. GiftName and
// GiftPrice are the snapshot values frozen at order time.
type CreateOrderItemInput struct {
	GiftID         *uint
	GiftName       string
	GiftPrice      decimal.Decimal
	Quantity       int
	TotalPrice     decimal.Decimal
	DiscountAmount decimal.Decimal
	Notes          *string
	VariantInfo    *string
}

// CreateOrderInput carries one shop-scoped order plus its nested items.
// Multi-shop checkouts issue one call per shop against the same group.
type CreateOrderInput struct {
	OrderGroupID         uint
	ShopID               uint
	ConfirmationDeadline time.Time
	DateOrderedFor       time.Time
	InvoiceURL           *string
	Items                []CreateOrderItemInput
}

// UpdateOrderStatusInput appends one row to an order's status history.
type UpdateOrderStatusInput struct {
	OrderID     string
	StatusName  string
	Description *string
	ChangedBy   *uint64
}

// CreateShipmentInput books the courier shipment for an order.
type CreateShipmentInput struct {
	OrderID          string
	OriginLat        *float64
	OriginLng        *float64
	OriginAddress    *string
	OriginArea       *string
	OriginPostalCode *string
	DestLat          *float64
	DestLng          *float64
	DestAddress      *string
	DestArea         *string
	DestPostalCode   *string
	WeightGrams      *int
	HeightCM         *int
	LengthCM         *int
	WidthCM          *int
	Courier          *string
	Rate             *decimal.Decimal
	DeliveryEstimate *string
	UseInsurance     types.BoolFlag
}

// UpdateShipmentInput applies partial field changes to an existing shipment.
// Nil fields are left untouched.
type UpdateShipmentInput struct {
	OriginLat        *float64
	OriginLng        *float64
	OriginAddress    *string
	OriginArea       *string
	OriginPostalCode *string
	DestLat          *float64
	DestLng          *float64
	DestAddress      *string
	DestArea         *string
	DestPostalCode   *string
	WeightGrams      *int
	HeightCM         *int
	LengthCM         *int
	WidthCM          *int
	Courier          *string
	Rate             *decimal.Decimal
	DeliveryEstimate *string
	UseInsurance     *types.BoolFlag
	AWB              *string
	PickupCode       *string
}

// ShopOrderList wraps the paginated shop orders plus the next page cursor.
type ShopOrderList struct {
	Orders     []models.Order `json:"orders"`
	NextCursor string         `json:"next_cursor,omitempty"`
}
