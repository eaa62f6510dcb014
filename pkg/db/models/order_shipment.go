package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderShipment holds the courier booking for an order. The unique index on
// order_id enforces the zero-or-one shipment per order invariant.
type OrderShipment struct {
	ID                 uint            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OrderID            string          `gorm:"column:order_id;size:8;not null;uniqueIndex" json:"order_id"`
	OriginLat          *float64        `gorm:"column:origin_lat" json:"origin_lat"`
	OriginLng          *float64        `gorm:"column:origin_lng" json:"origin_lng"`
	OriginAddress      *string         `gorm:"column:origin_address" json:"origin_address"`
	OriginArea         *string         `gorm:"column:origin_area" json:"origin_area"`
	OriginPostalCode   *string         `gorm:"column:origin_postal_code" json:"origin_postal_code"`
	DestLat            *float64        `gorm:"column:dest_lat" json:"dest_lat"`
	DestLng            *float64        `gorm:"column:dest_lng" json:"dest_lng"`
	DestAddress        *string         `gorm:"column:dest_address" json:"dest_address"`
	DestArea           *string         `gorm:"column:dest_area" json:"dest_area"`
	DestPostalCode     *string         `gorm:"column:dest_postal_code" json:"dest_postal_code"`
	WeightGrams        *int            `gorm:"column:weight_grams" json:"weight_grams"`
	HeightCM           *int            `gorm:"column:height_cm" json:"height_cm"`
	LengthCM           *int            `gorm:"column:length_cm" json:"length_cm"`
	WidthCM            *int            `gorm:"column:width_cm" json:"width_cm"`
	Courier            *string         `gorm:"column:courier" json:"courier"`
	Rate               decimal.Decimal `gorm:"column:rate;type:numeric(14,2);not null;default:0" json:"rate"`
	DeliveryEstimate   *string         `gorm:"column:delivery_estimate" json:"delivery_estimate"`
	UseInsurance       int             `gorm:"column:use_insurance;not null;default:0" json:"use_insurance"`
	CreatedAt          time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
