package shops

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/db/models"
	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/directory"
	pkgerrors "github.com/Rafhi-Arizkia/kenangan-backend/pkg/errors"
)

type shopRepository interface {
	Create(ctx context.Context, shop *models.Shop) (*models.Shop, error)
	FindByID(ctx context.Context, id uint) (*models.Shop, error)
	FindByOwner(ctx context.Context, ownerID uint64) ([]models.Shop, error)
	Update(ctx context.Context, id uint, updates map[string]any) error
	CountOpenOrders(ctx context.Context, shopID uint) (int64, error)
	SoftDelete(ctx context.Context, id uint) error
}

type directoryClient interface {
	FetchUserDetails(ctx context.Context, userID uint64) (*directory.UserRecord, error)
}

// Service exposes shop operations.
type Service interface {
	Create(ctx context.Context, input CreateShopInput) (*models.Shop, error)
	GetByID(ctx context.Context, id uint) (*models.Shop, error)
	ListByOwner(ctx context.Context, ownerID uint64) ([]models.Shop, error)
	Update(ctx context.Context, id uint, input UpdateShopInput) (*models.Shop, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo      shopRepository
	directory directoryClient
}

// NewService builds a shop service with the provided collaborators.
func NewService(repo shopRepository, dir directoryClient) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("shop repository required")
	}
	if dir == nil {
		return nil, fmt.Errorf("directory client required")
	}
	return &service{repo: repo, directory: dir}, nil
}

// CreateShopInput captures the fields for a new shop.
type CreateShopInput struct {
	Name        string
	Description *string
	OwnerID     uint64
	Address     *string
	Phone       *string
}

// UpdateShopInput captures the mutable shop fields. Nil fields are ignored.
type UpdateShopInput struct {
	Name        *string
	Description *string
	Address     *string
	Phone       *string
}

func (s *service) Create(ctx context.Context, input CreateShopInput) (*models.Shop, error) {
	if input.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shop name required")
	}
	if input.OwnerID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "owner id required")
	}
	if _, err := s.directory.FetchUserDetails(ctx, input.OwnerID); err != nil {
		if errors.Is(err, directory.ErrUserNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "owner does not exist")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve owner")
	}

	shop := &models.Shop{
		Name:        input.Name,
		Description: input.Description,
		OwnerID:     input.OwnerID,
		Address:     input.Address,
		Phone:       input.Phone,
	}
	created, err := s.repo.Create(ctx, shop)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create shop")
	}
	return created, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*models.Shop, error) {
	if id == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shop id required")
	}
	shop, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "shop not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shop")
	}
	return shop, nil
}

func (s *service) ListByOwner(ctx context.Context, ownerID uint64) ([]models.Shop, error) {
	if ownerID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "owner id required")
	}
	shops, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list shops")
	}
	return shops, nil
}

func (s *service) Update(ctx context.Context, id uint, input UpdateShopInput) (*models.Shop, error) {
	if id == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shop id required")
	}
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if input.Name != nil {
		if *input.Name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "shop name must not be empty")
		}
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Address != nil {
		updates["address"] = *input.Address
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update shop")
		}
	}
	return s.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "shop id required")
	}
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	open, err := s.repo.CountOpenOrders(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count open orders")
	}
	if open > 0 {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "shop still has open orders")
	}

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete shop")
	}
	return nil
}
