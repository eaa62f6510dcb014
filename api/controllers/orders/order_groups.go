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

type createOrderGroupRequest struct {
	BuyerID              uint64           `json:"buyer_id" validate:"required"`
	ReceiverID           *uint64          `json:"receiver_id"`
	IsGift               types.BoolFlag   `json:"is_gift"`
	IsSurprise           types.BoolFlag   `json:"is_surprise"`
	IsHidden             types.BoolFlag   `json:"is_hidden"`
	PaymentGatewayFee    *decimal.Decimal `json:"payment_gateway_fee"`
	ServiceFee           *decimal.Decimal `json:"service_fee"`
	TargetedReceiverName *string          `json:"targeted_receiver_name"`
	TypeDevice           string           `json:"type_device" validate:"omitempty,oneof=MOBILE WEB"`
	Message              *string          `json:"message"`
	ReceiverMessage      *string          `json:"receiver_message"`
	ConfirmGiftBy        *uint64          `json:"confirm_gift_by"`
}

// CreateGroup opens a new checkout-level order group.
func CreateGroup(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOrderGroupRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithBuyerID(ctx, req.BuyerID)
		}

		group, err := svc.CreateOrderGroup(ctx, internalorders.CreateOrderGroupInput{
			BuyerID:              req.BuyerID,
			ReceiverID:           req.ReceiverID,
			IsGift:               req.IsGift,
			IsSurprise:           req.IsSurprise,
			IsHidden:             req.IsHidden,
			PaymentGatewayFee:    req.PaymentGatewayFee,
			ServiceFee:           req.ServiceFee,
			TargetedReceiverName: req.TargetedReceiverName,
			TypeDevice:           req.TypeDevice,
			Message:              req.Message,
			ReceiverMessage:      req.ReceiverMessage,
			ConfirmGiftBy:        req.ConfirmGiftBy,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, group)
	}
}

// GroupDetail returns one group with its orders preloaded.
func GroupDetail(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID, err := parsePathUint(r, "groupID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		group, err := svc.GetOrderGroup(r.Context(), groupID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, group)
	}
}

// GroupAudit returns the group even when it has been soft deleted.
func GroupAudit(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID, err := parsePathUint(r, "groupID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		group, err := svc.GetOrderGroupAudit(r.Context(), groupID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, group)
	}
}

// GroupOrders lists the per-shop orders booked under a group.
func GroupOrders(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID, err := parsePathUint(r, "groupID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := svc.GetGroupOrders(r.Context(), groupID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// DeleteGroup soft-deletes the group and all of its orders.
func DeleteGroup(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID, err := parsePathUint(r, "groupID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteOrderGroup(r.Context(), groupID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
