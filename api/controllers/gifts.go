package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/Rafhi-Arizkia/kenangan-backend/api/responses"
	"github.com/Rafhi-Arizkia/kenangan-backend/api/validators"
	"github.com/Rafhi-Arizkia/kenangan-backend/internal/gifts"
	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/logger"
)

type createGiftRequest struct {
	ShopID      uint             `json:"shop_id" validate:"required"`
	CategoryID  *uint            `json:"category_id"`
	Name        string           `json:"name" validate:"required"`
	Description *string          `json:"description"`
	Price       decimal.Decimal  `json:"price" validate:"required"`
	Stock       int              `json:"stock" validate:"omitempty,min=0"`
}

type updateGiftRequest struct {
	CategoryID  *uint            `json:"category_id"`
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
}

type addSpecificationRequest struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value" validate:"required"`
}

type addVariantRequest struct {
	Name       string           `json:"name" validate:"required"`
	Value      string           `json:"value" validate:"required"`
	PriceDelta *decimal.Decimal `json:"price_delta"`
}

func CreateGift(svc gifts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createGiftRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		gift, err := svc.CreateGift(r.Context(), gifts.CreateGiftInput{
			ShopID:      req.ShopID,
			CategoryID:  req.CategoryID,
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Stock:       req.Stock,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, gift)
	}
}

func GiftDetail(svc gifts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		giftID, err := parsePathUint(r, "giftID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		gift, err := svc.GetGift(r.Context(), giftID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, gift)
	}
}

func ListShopGifts(svc gifts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shopID, err := parsePathUint(r, "shopID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.ListShopGifts(r.Context(), shopID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

func UpdateGift(svc gifts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		giftID, err := parsePathUint(r, "giftID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req updateGiftRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		gift, err := svc.UpdateGift(r.Context(), giftID, gifts.UpdateGiftInput{
			CategoryID:  req.CategoryID,
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Stock:       req.Stock,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, gift)
	}
}

func DeleteGift(svc gifts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		giftID, err := parsePathUint(r, "giftID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteGift(r.Context(), giftID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

type createCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

func CreateGiftCategory(svc gifts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createCategoryRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		category, err := svc.CreateCategory(r.Context(), req.Name)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, category)
	}
}

func ListGiftCategories(svc gifts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.ListCategories(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, categories)
	}
}

func AddGiftSpecification(svc gifts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		giftID, err := parsePathUint(r, "giftID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req addSpecificationRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		spec, err := svc.AddSpecification(r.Context(), gifts.AddSpecificationInput{
			GiftID: giftID,
			Key:    req.Key,
			Value:  req.Value,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, spec)
	}
}

func AddGiftVariant(svc gifts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		giftID, err := parsePathUint(r, "giftID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req addVariantRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		priceDelta := decimal.Zero
		if req.PriceDelta != nil {
			priceDelta = *req.PriceDelta
		}

		variant, err := svc.AddVariant(r.Context(), gifts.AddVariantInput{
			GiftID:     giftID,
			Name:       req.Name,
			Value:      req.Value,
			PriceDelta: priceDelta,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, variant)
	}
}
