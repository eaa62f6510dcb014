package gifts

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	pkgdb "github.com/Rafhi-Arizkia/kenangan-backend/pkg/db"
	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/db/models"
	pkgerrors "github.com/Rafhi-Arizkia/kenangan-backend/pkg/errors"
)

type catalogRepository interface {
	CreateGift(ctx context.Context, gift *models.Gift) (*models.Gift, error)
	FindGiftByID(ctx context.Context, id uint) (*models.Gift, error)
	FindGiftsByShop(ctx context.Context, shopID uint) ([]models.Gift, error)
	UpdateGift(ctx context.Context, id uint, updates map[string]any) error
	SoftDeleteGift(ctx context.Context, id uint) error
	CreateCategory(ctx context.Context, category *models.GiftCategory) (*models.GiftCategory, error)
	FindCategoryByID(ctx context.Context, id uint) (*models.GiftCategory, error)
	ListCategories(ctx context.Context) ([]models.GiftCategory, error)
	CreateSpecification(ctx context.Context, spec *models.GiftSpecification) (*models.GiftSpecification, error)
	CreateVariant(ctx context.Context, variant *models.GiftVariant) (*models.GiftVariant, error)
}

type shopFinder interface {
	FindByID(ctx context.Context, id uint) (*models.Shop, error)
}

// Service exposes gift catalog operations.
type Service interface {
	CreateGift(ctx context.Context, input CreateGiftInput) (*models.Gift, error)
	GetGift(ctx context.Context, id uint) (*models.Gift, error)
	ListShopGifts(ctx context.Context, shopID uint) ([]models.Gift, error)
	UpdateGift(ctx context.Context, id uint, input UpdateGiftInput) (*models.Gift, error)
	DeleteGift(ctx context.Context, id uint) error
	CreateCategory(ctx context.Context, name string) (*models.GiftCategory, error)
	ListCategories(ctx context.Context) ([]models.GiftCategory, error)
	AddSpecification(ctx context.Context, input AddSpecificationInput) (*models.GiftSpecification, error)
	AddVariant(ctx context.Context, input AddVariantInput) (*models.GiftVariant, error)
}

type service struct {
	repo  catalogRepository
	shops shopFinder
}

// NewService builds a catalog service with the provided collaborators.
func NewService(repo catalogRepository, shops shopFinder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if shops == nil {
		return nil, fmt.Errorf("shop finder required")
	}
	return &service{repo: repo, shops: shops}, nil
}

// CreateGiftInput captures the fields for a new gift.
type CreateGiftInput struct {
	ShopID      uint
	CategoryID  *uint
	Name        string
	Description *string
	Price       decimal.Decimal
	Stock       int
}

// UpdateGiftInput captures the mutable gift fields. Nil fields are ignored.
type UpdateGiftInput struct {
	CategoryID  *uint
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
}

// AddSpecificationInput adds one key/value attribute to a gift.
type AddSpecificationInput struct {
	GiftID uint
	Key    string
	Value  string
}

// AddVariantInput adds one selectable option to a gift.
type AddVariantInput struct {
	GiftID     uint
	Name       string
	Value      string
	PriceDelta decimal.Decimal
}

func (s *service) CreateGift(ctx context.Context, input CreateGiftInput) (*models.Gift, error) {
	if input.ShopID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shop id required")
	}
	if input.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "gift name required")
	}
	if input.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative")
	}
	if input.Stock < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "stock must not be negative")
	}

	if _, err := s.shops.FindByID(ctx, input.ShopID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "shop not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shop")
	}
	if input.CategoryID != nil {
		if _, err := s.repo.FindCategoryByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load category")
		}
	}

	gift := &models.Gift{
		ShopID:      input.ShopID,
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
	}
	created, err := s.repo.CreateGift(ctx, gift)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create gift")
	}
	return created, nil
}

func (s *service) GetGift(ctx context.Context, id uint) (*models.Gift, error) {
	if id == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "gift id required")
	}
	gift, err := s.repo.FindGiftByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "gift not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load gift")
	}
	return gift, nil
}

func (s *service) ListShopGifts(ctx context.Context, shopID uint) ([]models.Gift, error) {
	if shopID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shop id required")
	}
	gifts, err := s.repo.FindGiftsByShop(ctx, shopID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list gifts")
	}
	return gifts, nil
}

func (s *service) UpdateGift(ctx context.Context, id uint, input UpdateGiftInput) (*models.Gift, error) {
	if _, err := s.GetGift(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if input.Name != nil {
		if *input.Name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "gift name must not be empty")
		}
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative")
		}
		updates["price"] = *input.Price
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "stock must not be negative")
		}
		updates["stock"] = *input.Stock
	}
	if input.CategoryID != nil {
		if _, err := s.repo.FindCategoryByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load category")
		}
		updates["category_id"] = *input.CategoryID
	}

	if len(updates) > 0 {
		if err := s.repo.UpdateGift(ctx, id, updates); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update gift")
		}
	}
	return s.GetGift(ctx, id)
}

func (s *service) DeleteGift(ctx context.Context, id uint) error {
	if _, err := s.GetGift(ctx, id); err != nil {
		return err
	}
	// Order items keep their snapshot fields; deleting the gift only nulls
	// their reference.
	if err := s.repo.SoftDeleteGift(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete gift")
	}
	return nil
}

func (s *service) CreateCategory(ctx context.Context, name string) (*models.GiftCategory, error) {
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category name required")
	}
	created, err := s.repo.CreateCategory(ctx, &models.GiftCategory{Name: name})
	if err != nil {
		if pkgdb.IsUniqueViolation(err, "gift_categories_name_key") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "category name already taken")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create category")
	}
	return created, nil
}

func (s *service) ListCategories(ctx context.Context) ([]models.GiftCategory, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list categories")
	}
	return categories, nil
}

func (s *service) AddSpecification(ctx context.Context, input AddSpecificationInput) (*models.GiftSpecification, error) {
	if input.Key == "" || input.Value == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "specification key and value required")
	}
	if _, err := s.GetGift(ctx, input.GiftID); err != nil {
		return nil, err
	}

	spec := &models.GiftSpecification{
		GiftID: input.GiftID,
		Key:    input.Key,
		Value:  input.Value,
	}
	created, err := s.repo.CreateSpecification(ctx, spec)
	if err != nil {
		if pkgdb.IsUniqueViolation(err, "idx_gift_spec_key") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "specification key already set for gift")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create specification")
	}
	return created, nil
}

func (s *service) AddVariant(ctx context.Context, input AddVariantInput) (*models.GiftVariant, error) {
	if input.Name == "" || input.Value == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "variant name and value required")
	}
	if _, err := s.GetGift(ctx, input.GiftID); err != nil {
		return nil, err
	}

	variant := &models.GiftVariant{
		GiftID:     input.GiftID,
		Name:       input.Name,
		Value:      input.Value,
		PriceDelta: input.PriceDelta,
	}
	created, err := s.repo.CreateVariant(ctx, variant)
	if err != nil {
		if pkgdb.IsUniqueViolation(err, "idx_gift_variant_combo") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "variant already exists for gift")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create variant")
	}
	return created, nil
}
