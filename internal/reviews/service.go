package reviews

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/db/models"
	pkgerrors "github.com/Rafhi-Arizkia/kenangan-backend/pkg/errors"
)

type reviewRepository interface {
	Create(ctx context.Context, review *models.Review) (*models.Review, error)
	FindByID(ctx context.Context, id uint) (*models.Review, error)
	FindByGift(ctx context.Context, giftID uint) ([]models.Review, error)
	SoftDelete(ctx context.Context, id uint) error
}

type giftFinder interface {
	GetGift(ctx context.Context, id uint) (*models.Gift, error)
}

type orderFinder interface {
	GetOrder(ctx context.Context, id string) (*models.Order, error)
}

// Service exposes review operations.
type Service interface {
	Create(ctx context.Context, input CreateReviewInput) (*models.Review, error)
	ListByGift(ctx context.Context, giftID uint) ([]models.Review, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo   reviewRepository
	gifts  giftFinder
	orders orderFinder
}

// NewService builds a review service with the provided collaborators.
func NewService(repo reviewRepository, gifts giftFinder, orders orderFinder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("review repository required")
	}
	if gifts == nil {
		return nil, fmt.Errorf("gift finder required")
	}
	if orders == nil {
		return nil, fmt.Errorf("order finder required")
	}
	return &service{repo: repo, gifts: gifts, orders: orders}, nil
}

// CreateReviewInput captures the fields for a new review.
type CreateReviewInput struct {
	GiftID  uint
	OrderID *string
	UserID  uint64
	Rating  int
	Comment *string
}

func (s *service) Create(ctx context.Context, input CreateReviewInput) (*models.Review, error) {
	if input.GiftID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "gift id required")
	}
	if input.UserID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
	}

	if _, err := s.gifts.GetGift(ctx, input.GiftID); err != nil {
		return nil, err
	}
	if input.OrderID != nil {
		if _, err := s.orders.GetOrder(ctx, *input.OrderID); err != nil {
			return nil, err
		}
	}

	review := &models.Review{
		GiftID:  input.GiftID,
		OrderID: input.OrderID,
		UserID:  input.UserID,
		Rating:  input.Rating,
		Comment: input.Comment,
	}
	created, err := s.repo.Create(ctx, review)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create review")
	}
	return created, nil
}

func (s *service) ListByGift(ctx context.Context, giftID uint) ([]models.Review, error) {
	if giftID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "gift id required")
	}
	reviews, err := s.repo.FindByGift(ctx, giftID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list reviews")
	}
	return reviews, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "review id required")
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "review not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load review")
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete review")
	}
	return nil
}
