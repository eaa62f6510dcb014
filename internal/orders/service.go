package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	pkgdb "github.com/Rafhi-Arizkia/kenangan-backend/pkg/db"
	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/db/models"
	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/directory"
	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/enums"
	pkgerrors "github.com/Rafhi-Arizkia/kenangan-backend/pkg/errors"
	pkgpagination "github.com/Rafhi-Arizkia/kenangan-backend/pkg/pagination"
)

// Service defines the order workflow operations.
type Service interface {
	CreateOrderGroup(ctx context.Context, input CreateOrderGroupInput) (*models.OrderGroup, error)
	CreateOrder(ctx context.Context, input CreateOrderInput) (*models.Order, error)
	GetOrderGroup(ctx context.Context, id uint) (*models.OrderGroup, error)
	GetOrderGroupAudit(ctx context.Context, id uint) (*models.OrderGroup, error)
	GetGroupOrders(ctx context.Context, groupID uint) ([]models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	GetOrderItems(ctx context.Context, orderID string) ([]models.OrderItem, error)
	ListShopOrders(ctx context.Context, shopID uint, params pkgpagination.Params) (*ShopOrderList, error)
	UpdateOrderStatus(ctx context.Context, input UpdateOrderStatusInput) (*models.OrderStatus, error)
	GetOrderStatuses(ctx context.Context, orderID string) ([]models.OrderStatus, error)
	CreateOrderShipment(ctx context.Context, input CreateShipmentInput) (*models.OrderShipment, error)
	UpdateOrderShipment(ctx context.Context, shipmentID uint, input UpdateShipmentInput) (*models.OrderShipment, error)
	GetOrderShipment(ctx context.Context, shipmentID uint) (*models.OrderShipment, error)
	GetOrderShipmentByOrder(ctx context.Context, orderID string) (*models.OrderShipment, error)
	DeleteOrderGroup(ctx context.Context, id uint) error
}

type service struct {
	repo      Repository
	tx        txRunner
	ids       *IDGenerator
	directory directoryClient
	shops     shopFinder
}

// NewService builds the order workflow service with its collaborators.
func NewService(repo Repository, tx txRunner, ids *IDGenerator, dir directoryClient, shops shopFinder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if ids == nil {
		return nil, fmt.Errorf("id generator required")
	}
	if dir == nil {
		return nil, fmt.Errorf("directory client required")
	}
	if shops == nil {
		return nil, fmt.Errorf("shop finder required")
	}
	return &service{
		repo:      repo,
		tx:        tx,
		ids:       ids,
		directory: dir,
		shops:     shops,
	}, nil
}

func (s *service) CreateOrderGroup(ctx context.Context, input CreateOrderGroupInput) (*models.OrderGroup, error) {
	if input.BuyerID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "buyer id required")
	}

	if _, err := s.directory.FetchUserDetails(ctx, input.BuyerID); err != nil {
		if errors.Is(err, directory.ErrUserNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "buyer does not exist")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve buyer")
	}

	// Receiver is optional; orders bought for oneself leave it unset.
	if input.ReceiverID != nil {
		if *input.ReceiverID == 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "receiver id must be positive")
		}
		if _, err := s.directory.FetchUserDetails(ctx, *input.ReceiverID); err != nil {
			if errors.Is(err, directory.ErrUserNotFound) {
				return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "receiver does not exist")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve receiver")
		}
	}

	device := enums.DeviceTypeMobile
	if input.TypeDevice != "" {
		parsed, err := enums.ParseDeviceType(input.TypeDevice)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "type_device must be MOBILE or WEB")
		}
		device = parsed
	}

	group := &models.OrderGroup{
		BuyerID:              input.BuyerID,
		ReceiverID:           input.ReceiverID,
		IsGift:               input.IsGift.Int(),
		IsSurprise:           input.IsSurprise.Int(),
		IsHidden:             input.IsHidden.Int(),
		ReferenceCode:        uuid.NewString(),
		PaymentGatewayFee:    feeOrZero(input.PaymentGatewayFee),
		ServiceFee:           feeOrZero(input.ServiceFee),
		TargetedReceiverName: input.TargetedReceiverName,
		TypeDevice:           device,
		Message:              input.Message,
		ReceiverMessage:      input.ReceiverMessage,
		ConfirmGiftBy:        input.ConfirmGiftBy,
	}
	if group.PaymentGatewayFee.IsNegative() || group.ServiceFee.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "fees must not be negative")
	}

	created, err := s.repo.CreateOrderGroup(ctx, group)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order group")
	}
	return created, nil
}

func (s *service) CreateOrder(ctx context.Context, input CreateOrderInput) (*models.Order, error) {
	if input.OrderGroupID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order group id required")
	}
	if input.ShopID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shop id required")
	}
	if input.ConfirmationDeadline.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "confirmation deadline required")
	}
	if input.DateOrderedFor.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "date ordered for required")
	}
	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order requires at least one item")
	}
	for i, item := range input.Items {
		if err := validateItem(i, item); err != nil {
			return nil, err
		}
	}

	if _, err := s.repo.FindOrderGroupByID(ctx, input.OrderGroupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order group not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order group")
	}
	if _, err := s.shops.FindByID(ctx, input.ShopID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "shop not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shop")
	}

	orderID, err := s.ids.Generate(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "generate order id")
	}

	var created *models.Order
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		order := &models.Order{
			ID:                   orderID,
			InvoiceURL:           input.InvoiceURL,
			ConfirmationDeadline: input.ConfirmationDeadline,
			DateOrderedFor:       input.DateOrderedFor,
			CurrentStatus:        enums.OrderStatusPending,
			ShopID:               input.ShopID,
			OrderGroupID:         input.OrderGroupID,
		}
		if _, err := repo.CreateOrder(ctx, order); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
		}

		items := make([]models.OrderItem, len(input.Items))
		for i, item := range input.Items {
			items[i] = models.OrderItem{
				OrderID:        orderID,
				GiftID:         item.GiftID,
				GiftName:       item.GiftName,
				GiftPrice:      item.GiftPrice,
				Quantity:       item.Quantity,
				TotalPrice:     item.TotalPrice,
				DiscountAmount: item.DiscountAmount,
				Notes:          item.Notes,
				VariantInfo:    item.VariantInfo,
			}
		}
		if err := repo.CreateOrderItems(ctx, items); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order items")
		}

		initial := &models.OrderStatus{
			OrderID:    orderID,
			StatusName: enums.OrderStatusPending,
		}
		if _, err := repo.CreateOrderStatus(ctx, initial); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record initial status")
		}

		order.Items = items
		order.Statuses = []models.OrderStatus{*initial}
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *service) GetOrderGroup(ctx context.Context, id uint) (*models.OrderGroup, error) {
	if id == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order group id required")
	}
	group, err := s.repo.FindOrderGroupByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order group not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order group")
	}
	return group, nil
}

// GetOrderGroupAudit returns the group even after soft deletion.
func (s *service) GetOrderGroupAudit(ctx context.Context, id uint) (*models.OrderGroup, error) {
	if id == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order group id required")
	}
	group, err := s.repo.FindOrderGroupByIDUnscoped(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order group not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order group")
	}
	return group, nil
}

// GetGroupOrders lists the group's live orders oldest first, one per shop.
func (s *service) GetGroupOrders(ctx context.Context, groupID uint) ([]models.Order, error) {
	if groupID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order group id required")
	}
	if _, err := s.repo.FindOrderGroupByID(ctx, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order group not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order group")
	}
	rows, err := s.repo.FindOrdersByGroup(ctx, groupID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list group orders")
	}
	return rows, nil
}

func (s *service) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	if id == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	order, err := s.repo.FindOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return order, nil
}

// GetOrderItems returns the order's line items with their price snapshots.
func (s *service) GetOrderItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	if orderID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	if _, err := s.repo.FindOrderByID(ctx, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	items, err := s.repo.FindOrderItemsByOrder(ctx, orderID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order items")
	}
	return items, nil
}

func (s *service) ListShopOrders(ctx context.Context, shopID uint, params pkgpagination.Params) (*ShopOrderList, error) {
	if shopID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shop id required")
	}

	limit := pkgpagination.NormalizeLimit(params.Limit)
	query := listOrdersParams{Limit: pkgpagination.LimitWithBuffer(params.Limit)}
	if params.Cursor != "" {
		cursor, err := pkgpagination.ParseCursor(params.Cursor)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
		}
		query.Cursor = cursor
	}

	rows, err := s.repo.ListOrdersByShop(ctx, shopID, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list shop orders")
	}

	nextCursor := ""
	if len(rows) > limit {
		nextCursor = pkgpagination.EncodeCursor(pkgpagination.Cursor{
			CreatedAt: rows[limit].CreatedAt,
			ID:        rows[limit].ID,
		})
		rows = rows[:limit]
	}

	return &ShopOrderList{Orders: rows, NextCursor: nextCursor}, nil
}

func (s *service) UpdateOrderStatus(ctx context.Context, input UpdateOrderStatusInput) (*models.OrderStatus, error) {
	if input.OrderID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	status, err := enums.ParseOrderStatus(input.StatusName)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown status name")
	}

	if _, err := s.repo.FindOrderByID(ctx, input.OrderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}

	// The history append and the denormalized current_status update land in
	// one transaction so readers never observe them out of sync.
	var record *models.OrderStatus
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		row := &models.OrderStatus{
			OrderID:     input.OrderID,
			StatusName:  status,
			Description: input.Description,
			ChangedBy:   input.ChangedBy,
		}
		if _, err := repo.CreateOrderStatus(ctx, row); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "append status")
		}
		if err := repo.UpdateOrderCurrentStatus(ctx, input.OrderID, status); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update current status")
		}
		record = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (s *service) GetOrderStatuses(ctx context.Context, orderID string) ([]models.OrderStatus, error) {
	if orderID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	if _, err := s.repo.FindOrderByID(ctx, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	statuses, err := s.repo.FindOrderStatuses(ctx, orderID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load status history")
	}
	return statuses, nil
}

func (s *service) CreateOrderShipment(ctx context.Context, input CreateShipmentInput) (*models.OrderShipment, error) {
	if input.OrderID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	if input.Rate != nil && input.Rate.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rate must not be negative")
	}

	if _, err := s.repo.FindOrderByID(ctx, input.OrderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}

	shipment := &models.OrderShipment{
		OrderID:          input.OrderID,
		OriginLat:        input.OriginLat,
		OriginLng:        input.OriginLng,
		OriginAddress:    input.OriginAddress,
		OriginArea:       input.OriginArea,
		OriginPostalCode: input.OriginPostalCode,
		DestLat:          input.DestLat,
		DestLng:          input.DestLng,
		DestAddress:      input.DestAddress,
		DestArea:         input.DestArea,
		DestPostalCode:   input.DestPostalCode,
		WeightGrams:      input.WeightGrams,
		HeightCM:         input.HeightCM,
		LengthCM:         input.LengthCM,
		WidthCM:          input.WidthCM,
		Courier:          input.Courier,
		Rate:             feeOrZero(input.Rate),
		DeliveryEstimate: input.DeliveryEstimate,
		UseInsurance:     input.UseInsurance.Int(),
	}

	created, err := s.repo.CreateOrderShipment(ctx, shipment)
	if err != nil {
		if pkgdb.IsUniqueViolation(err, "order_shipments_order_id_key") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "order already has a shipment")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create shipment")
	}
	return created, nil
}

func (s *service) UpdateOrderShipment(ctx context.Context, shipmentID uint, input UpdateShipmentInput) (*models.OrderShipment, error) {
	if shipmentID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shipment id required")
	}
	if input.Rate != nil && input.Rate.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rate must not be negative")
	}

	shipment, err := s.repo.FindOrderShipmentByID(ctx, shipmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "shipment not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shipment")
	}

	updates := shipmentUpdates(input)

	// AWB and pickup code live on the order row, not the shipment row.
	orderUpdates := map[string]any{}
	if input.AWB != nil {
		orderUpdates["awb"] = *input.AWB
	}
	if input.PickupCode != nil {
		orderUpdates["pickup_code"] = *input.PickupCode
	}
	if len(updates) == 0 && len(orderUpdates) == 0 {
		return shipment, nil
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if len(updates) > 0 {
			if err := repo.UpdateOrderShipment(ctx, shipmentID, updates); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update shipment")
			}
		}
		if len(orderUpdates) > 0 {
			if err := tx.WithContext(ctx).
				Model(&models.Order{}).
				Where("id = ?", shipment.OrderID).
				Updates(orderUpdates).Error; err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order tracking fields")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.FindOrderShipmentByID(ctx, shipmentID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload shipment")
	}
	return updated, nil
}

func (s *service) GetOrderShipment(ctx context.Context, shipmentID uint) (*models.OrderShipment, error) {
	if shipmentID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shipment id required")
	}
	shipment, err := s.repo.FindOrderShipmentByID(ctx, shipmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "shipment not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shipment")
	}
	return shipment, nil
}

func (s *service) GetOrderShipmentByOrder(ctx context.Context, orderID string) (*models.OrderShipment, error) {
	if orderID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	shipment, err := s.repo.FindOrderShipmentByOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "shipment not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shipment")
	}
	return shipment, nil
}

func (s *service) DeleteOrderGroup(ctx context.Context, id uint) error {
	if id == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "order group id required")
	}
	if _, err := s.repo.FindOrderGroupByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "order group not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order group")
	}

	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).SoftDeleteOrderGroup(ctx, id); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete order group")
		}
		return nil
	})
}

func validateItem(index int, item CreateOrderItemInput) error {
	if item.GiftName == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("item %d: gift name required", index))
	}
	if item.Quantity < 1 {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("item %d: quantity must be at least 1", index))
	}
	if item.GiftPrice.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("item %d: gift price must not be negative", index))
	}
	if item.DiscountAmount.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("item %d: discount must not be negative", index))
	}
	expected := item.GiftPrice.Mul(decimal.NewFromInt(int64(item.Quantity))).Sub(item.DiscountAmount)
	if !item.TotalPrice.Equal(expected) {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("item %d: total price does not match price times quantity less discount", index))
	}
	if item.TotalPrice.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("item %d: total price must not be negative", index))
	}
	return nil
}

func feeOrZero(value *decimal.Decimal) decimal.Decimal {
	if value == nil {
		return decimal.Zero
	}
	return *value
}

func shipmentUpdates(input UpdateShipmentInput) map[string]any {
	updates := map[string]any{}
	setFloat := func(column string, value *float64) {
		if value != nil {
			updates[column] = *value
		}
	}
	setString := func(column string, value *string) {
		if value != nil {
			updates[column] = *value
		}
	}
	setInt := func(column string, value *int) {
		if value != nil {
			updates[column] = *value
		}
	}

	setFloat("origin_lat", input.OriginLat)
	setFloat("origin_lng", input.OriginLng)
	setString("origin_address", input.OriginAddress)
	setString("origin_area", input.OriginArea)
	setString("origin_postal_code", input.OriginPostalCode)
	setFloat("dest_lat", input.DestLat)
	setFloat("dest_lng", input.DestLng)
	setString("dest_address", input.DestAddress)
	setString("dest_area", input.DestArea)
	setString("dest_postal_code", input.DestPostalCode)
	setInt("weight_grams", input.WeightGrams)
	setInt("height_cm", input.HeightCM)
	setInt("length_cm", input.LengthCM)
	setInt("width_cm", input.WidthCM)
	setString("courier", input.Courier)
	setString("delivery_estimate", input.DeliveryEstimate)
	if input.Rate != nil {
		updates["rate"] = *input.Rate
	}
	if input.UseInsurance != nil {
		updates["use_insurance"] = input.UseInsurance.Int()
	}
	if len(updates) > 0 {
		updates["updated_at"] = time.Now().UTC()
	}
	return updates
}
