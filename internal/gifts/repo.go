package gifts

import (
	"context"

	"gorm.io/gorm"

	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/db/models"
)

// Repository handles gift catalog persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to catalog operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx rebinds the repository to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

func (r *Repository) CreateGift(ctx context.Context, gift *models.Gift) (*models.Gift, error) {
	if err := r.db.WithContext(ctx).Create(gift).Error; err != nil {
		return nil, err
	}
	return gift, nil
}

func (r *Repository) FindGiftByID(ctx context.Context, id uint) (*models.Gift, error) {
	var gift models.Gift
	if err := r.db.WithContext(ctx).
		Preload("Specifications").
		Preload("Variants").
		Where("id = ?", id).
		First(&gift).Error; err != nil {
		return nil, err
	}
	return &gift, nil
}

func (r *Repository) FindGiftsByShop(ctx context.Context, shopID uint) ([]models.Gift, error) {
	var gifts []models.Gift
	if err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("created_at DESC, id DESC").
		Find(&gifts).Error; err != nil {
		return nil, err
	}
	return gifts, nil
}

func (r *Repository) UpdateGift(ctx context.Context, id uint, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&models.Gift{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *Repository) SoftDeleteGift(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Gift{}).Error
}

func (r *Repository) CreateCategory(ctx context.Context, category *models.GiftCategory) (*models.GiftCategory, error) {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (r *Repository) FindCategoryByID(ctx context.Context, id uint) (*models.GiftCategory, error) {
	var category models.GiftCategory
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *Repository) ListCategories(ctx context.Context) ([]models.GiftCategory, error) {
	var categories []models.GiftCategory
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *Repository) CreateSpecification(ctx context.Context, spec *models.GiftSpecification) (*models.GiftSpecification, error) {
	if err := r.db.WithContext(ctx).Create(spec).Error; err != nil {
		return nil, err
	}
	return spec, nil
}

func (r *Repository) CreateVariant(ctx context.Context, variant *models.GiftVariant) (*models.GiftVariant, error) {
	if err := r.db.WithContext(ctx).Create(variant).Error; err != nil {
		return nil, err
	}
	return variant, nil
}
