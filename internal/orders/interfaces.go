package orders

import (
	"context"

	"gorm.io/gorm"

	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/db/models"
	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/directory"
	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/enums"
	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/pagination"
)

// Repository defines persistence operations for the order tables.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateOrderGroup(ctx context.Context, group *models.OrderGroup) (*models.OrderGroup, error)
	FindOrderGroupByID(ctx context.Context, id uint) (*models.OrderGroup, error)
	FindOrderGroupByIDUnscoped(ctx context.Context, id uint) (*models.OrderGroup, error)
	SoftDeleteOrderGroup(ctx context.Context, id uint) error
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	CreateOrderItems(ctx context.Context, items []models.OrderItem) error
	OrderIDExists(ctx context.Context, id string) (bool, error)
	FindOrderByID(ctx context.Context, id string) (*models.Order, error)
	FindOrdersByGroup(ctx context.Context, groupID uint) ([]models.Order, error)
	FindOrderItemsByOrder(ctx context.Context, orderID string) ([]models.OrderItem, error)
	CreateOrderStatus(ctx context.Context, status *models.OrderStatus) (*models.OrderStatus, error)
	UpdateOrderCurrentStatus(ctx context.Context, orderID string, status enums.OrderStatus) error
	FindOrderStatuses(ctx context.Context, orderID string) ([]models.OrderStatus, error)
	CreateOrderShipment(ctx context.Context, shipment *models.OrderShipment) (*models.OrderShipment, error)
	FindOrderShipmentByID(ctx context.Context, id uint) (*models.OrderShipment, error)
	FindOrderShipmentByOrder(ctx context.Context, orderID string) (*models.OrderShipment, error)
	UpdateOrderShipment(ctx context.Context, id uint, updates map[string]any) error
	ListOrdersByShop(ctx context.Context, shopID uint, params listOrdersParams) ([]models.Order, error)
}

// txRunner abstracts the transactional boundary the service runs writes in.
type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// directoryClient resolves buyer and receiver accounts from the user directory.
type directoryClient interface {
	FetchUserDetails(ctx context.Context, userID uint64) (*directory.UserRecord, error)
}

// shopFinder checks that an order's shop exists before any rows are written.
type shopFinder interface {
	FindByID(ctx context.Context, id uint) (*models.Shop, error)
}

type listOrdersParams struct {
	Limit  int
	Cursor *pagination.Cursor
}
