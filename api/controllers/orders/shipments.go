package orders

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/Rafhi-Arizkia/kenangan-backend/api/responses"
	"github.com/Rafhi-Arizkia/kenangan-backend/api/validators"
	internalorders "github.com/Rafhi-Arizkia/kenangan-backend/internal/orders"
	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/logger"
	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/types"
)

type createShipmentRequest struct {
	OriginLat        *float64         `json:"origin_lat"`
	OriginLng        *float64         `json:"origin_lng"`
	OriginAddress    *string          `json:"origin_address"`
	OriginArea       *string          `json:"origin_area"`
	OriginPostalCode *string          `json:"origin_postal_code"`
	DestLat          *float64         `json:"dest_lat"`
	DestLng          *float64         `json:"dest_lng"`
	DestAddress      *string          `json:"dest_address"`
	DestArea         *string          `json:"dest_area"`
	DestPostalCode   *string          `json:"dest_postal_code"`
	WeightGrams      *int             `json:"weight_grams" validate:"omitempty,min=1"`
	HeightCM         *int             `json:"height_cm" validate:"omitempty,min=1"`
	LengthCM         *int             `json:"length_cm" validate:"omitempty,min=1"`
	WidthCM          *int             `json:"width_cm" validate:"omitempty,min=1"`
	Courier          *string          `json:"courier"`
	Rate             *decimal.Decimal `json:"rate"`
	DeliveryEstimate *string          `json:"delivery_estimate"`
	UseInsurance     types.BoolFlag   `json:"use_insurance"`
}

type updateShipmentRequest struct {
	OriginLat        *float64         `json:"origin_lat"`
	OriginLng        *float64         `json:"origin_lng"`
	OriginAddress    *string          `json:"origin_address"`
	OriginArea       *string          `json:"origin_area"`
	OriginPostalCode *string          `json:"origin_postal_code"`
	DestLat          *float64         `json:"dest_lat"`
	DestLng          *float64         `json:"dest_lng"`
	DestAddress      *string          `json:"dest_address"`
	DestArea         *string          `json:"dest_area"`
	DestPostalCode   *string          `json:"dest_postal_code"`
	WeightGrams      *int             `json:"weight_grams" validate:"omitempty,min=1"`
	HeightCM         *int             `json:"height_cm" validate:"omitempty,min=1"`
	LengthCM         *int             `json:"length_cm" validate:"omitempty,min=1"`
	WidthCM          *int             `json:"width_cm" validate:"omitempty,min=1"`
	Courier          *string          `json:"courier"`
	Rate             *decimal.Decimal `json:"rate"`
	DeliveryEstimate *string          `json:"delivery_estimate"`
	UseInsurance     *types.BoolFlag  `json:"use_insurance"`
	AWB              *string          `json:"awb"`
	PickupCode       *string          `json:"pickup_code"`
}

// CreateShipment books the courier shipment for an order.
func CreateShipment(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := parseOrderID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req createShipmentRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithOrderID(ctx, orderID)
		}

		shipment, err := svc.CreateOrderShipment(ctx, internalorders.CreateShipmentInput{
			OrderID:          orderID,
			OriginLat:        req.OriginLat,
			OriginLng:        req.OriginLng,
			OriginAddress:    req.OriginAddress,
			OriginArea:       req.OriginArea,
			OriginPostalCode: req.OriginPostalCode,
			DestLat:          req.DestLat,
			DestLng:          req.DestLng,
			DestAddress:      req.DestAddress,
			DestArea:         req.DestArea,
			DestPostalCode:   req.DestPostalCode,
			WeightGrams:      req.WeightGrams,
			HeightCM:         req.HeightCM,
			LengthCM:         req.LengthCM,
			WidthCM:          req.WidthCM,
			Courier:          req.Courier,
			Rate:             req.Rate,
			DeliveryEstimate: req.DeliveryEstimate,
			UseInsurance:     req.UseInsurance,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, shipment)
	}
}

// ShipmentDetail returns one shipment by its id.
func ShipmentDetail(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shipmentID, err := parsePathUint(r, "shipmentID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		shipment, err := svc.GetOrderShipment(r.Context(), shipmentID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, shipment)
	}
}

// OrderShipment returns the shipment booked for an order, when one exists.
func OrderShipment(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := parseOrderID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		shipment, err := svc.GetOrderShipmentByOrder(r.Context(), orderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, shipment)
	}
}

// UpdateShipment applies partial changes to an existing shipment.
func UpdateShipment(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shipmentID, err := parsePathUint(r, "shipmentID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req updateShipmentRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		shipment, err := svc.UpdateOrderShipment(r.Context(), shipmentID, internalorders.UpdateShipmentInput{
			OriginLat:        req.OriginLat,
			OriginLng:        req.OriginLng,
			OriginAddress:    req.OriginAddress,
			OriginArea:       req.OriginArea,
			OriginPostalCode: req.OriginPostalCode,
			DestLat:          req.DestLat,
			DestLng:          req.DestLng,
			DestAddress:      req.DestAddress,
			DestArea:         req.DestArea,
			DestPostalCode:   req.DestPostalCode,
			WeightGrams:      req.WeightGrams,
			HeightCM:         req.HeightCM,
			LengthCM:         req.LengthCM,
			WidthCM:          req.WidthCM,
			Courier:          req.Courier,
			Rate:             req.Rate,
			DeliveryEstimate: req.DeliveryEstimate,
			UseInsurance:     req.UseInsurance,
			AWB:              req.AWB,
			PickupCode:       req.PickupCode,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, shipment)
	}
}
