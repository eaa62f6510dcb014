package orders

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/Rafhi-Arizkia/kenangan-backend/api/responses"
	"github.com/Rafhi-Arizkia/kenangan-backend/api/validators"
	internalorders "github.com/Rafhi-Arizkia/kenangan-backend/internal/orders"
	pkgerrors "github.com/Rafhi-Arizkia/kenangan-backend/pkg/errors"
	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/logger"
	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/pagination"
)

type createOrderItemRequest struct {
	GiftID         *uint            `json:"gift_id"`
	GiftName       string           `json:"gift_name" validate:"required"`
	GiftPrice      decimal.Decimal  `json:"gift_price" validate:"required"`
	Quantity       int              `json:"quantity" validate:"required,min=1"`
	TotalPrice     decimal.Decimal  `json:"total_price" validate:"required"`
	DiscountAmount *decimal.Decimal `json:"discount_amount"`
	Notes          *string          `json:"notes"`
	VariantInfo    *string          `json:"variant_info"`
}

type createOrderRequest struct {
	OrderGroupID         uint                     `json:"order_group_id" validate:"required"`
	ShopID               uint                     `json:"shop_id" validate:"required"`
	ConfirmationDeadline time.Time                `json:"confirmation_deadline" validate:"required"`
	DateOrderedFor       time.Time                `json:"date_ordered_for" validate:"required"`
	InvoiceURL           *string                  `json:"invoice_url"`
	Items                []createOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type updateOrderStatusRequest struct {
	StatusName  string  `json:"status_name" validate:"required"`
	Description *string `json:"description"`
	ChangedBy   *uint64 `json:"changed_by"`
}

// Create books one shop-scoped order inside an existing group.
func Create(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOrderRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := internalorders.CreateOrderInput{
			OrderGroupID:         req.OrderGroupID,
			ShopID:               req.ShopID,
			ConfirmationDeadline: req.ConfirmationDeadline,
			DateOrderedFor:       req.DateOrderedFor,
			InvoiceURL:           req.InvoiceURL,
			Items:                make([]internalorders.CreateOrderItemInput, len(req.Items)),
		}
		for i, item := range req.Items {
			discount := decimal.Zero
			if item.DiscountAmount != nil {
				discount = *item.DiscountAmount
			}
			input.Items[i] = internalorders.CreateOrderItemInput{
				GiftID:         item.GiftID,
				GiftName:       item.GiftName,
				GiftPrice:      item.GiftPrice,
				Quantity:       item.Quantity,
				TotalPrice:     item.TotalPrice,
				DiscountAmount: discount,
				Notes:          item.Notes,
				VariantInfo:    item.VariantInfo,
			}
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithOrderGroupID(ctx, req.OrderGroupID)
		}

		order, err := svc.CreateOrder(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

// Detail returns one order with its items, shipment and status history.
func Detail(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := parseOrderID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.GetOrder(r.Context(), orderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

// ListByShop pages a shop's orders newest first.
func ListByShop(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shopID, err := parsePathUint(r, "shopID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		cursor := strings.TrimSpace(r.URL.Query().Get("cursor"))

		list, err := svc.ListShopOrders(r.Context(), shopID, pagination.Params{Limit: limit, Cursor: cursor})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// UpdateStatus appends a status row and refreshes the order's current status.
func UpdateStatus(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := parseOrderID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req updateOrderStatusRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithOrderID(ctx, orderID)
		}

		record, err := svc.UpdateOrderStatus(ctx, internalorders.UpdateOrderStatusInput{
			OrderID:     orderID,
			StatusName:  req.StatusName,
			Description: req.Description,
			ChangedBy:   req.ChangedBy,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, record)
	}
}

// ListItems returns the order's line items with their price snapshots.
func ListItems(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := parseOrderID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items, err := svc.GetOrderItems(r.Context(), orderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

// ListStatuses returns the order's status history newest first.
func ListStatuses(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := parseOrderID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		history, err := svc.GetOrderStatuses(r.Context(), orderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, history)
	}
}

func parseOrderID(r *http.Request) (string, error) {
	orderID := strings.TrimSpace(chi.URLParam(r, "orderID"))
	if orderID == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	return orderID, nil
}

func parsePathUint(r *http.Request, key string) (uint, error) {
	raw := strings.TrimSpace(chi.URLParam(r, key))
	if raw == "" {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, key+" is required")
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, key+" must be a positive integer")
	}
	return uint(value), nil
}
