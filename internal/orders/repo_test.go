package orders

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/db/models"
	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/enums"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	orderGroups := `
CREATE TABLE IF NOT EXISTS order_groups (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  buyer_id INTEGER NOT NULL,
  receiver_id INTEGER,
  is_gift INTEGER NOT NULL DEFAULT 0,
  is_surprise INTEGER NOT NULL DEFAULT 0,
  is_hidden INTEGER NOT NULL DEFAULT 0,
  reference_code TEXT NOT NULL UNIQUE,
  payment_gateway_fee TEXT NOT NULL DEFAULT '0',
  service_fee TEXT NOT NULL DEFAULT '0',
  targeted_receiver_name TEXT,
  type_device TEXT NOT NULL DEFAULT 'MOBILE',
  message TEXT,
  receiver_message TEXT,
  confirm_gift_by INTEGER,
  created_at DATETIME,
  updated_at DATETIME,
  deleted_at DATETIME
);`
	orders := `
CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  invoice_url TEXT,
  shipper_id INTEGER UNIQUE,
  awb TEXT,
  pickup_code TEXT,
  confirmation_deadline DATETIME NOT NULL,
  date_ordered_for DATETIME NOT NULL,
  current_status TEXT NOT NULL DEFAULT 'PENDING',
  shop_id INTEGER NOT NULL,
  order_group_id INTEGER NOT NULL,
  created_at DATETIME,
  updated_at DATETIME,
  deleted_at DATETIME
);`
	orderItems := `
CREATE TABLE IF NOT EXISTS order_items (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  order_id TEXT NOT NULL,
  gift_id INTEGER,
  gift_name TEXT NOT NULL,
  gift_price TEXT NOT NULL,
  quantity INTEGER NOT NULL,
  total_price TEXT NOT NULL,
  discount_amount TEXT NOT NULL DEFAULT '0',
  notes TEXT,
  variant_info TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	orderShipments := `
CREATE TABLE IF NOT EXISTS order_shipments (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  order_id TEXT NOT NULL UNIQUE,
  origin_lat REAL,
  origin_lng REAL,
  origin_address TEXT,
  origin_area TEXT,
  origin_postal_code TEXT,
  dest_lat REAL,
  dest_lng REAL,
  dest_address TEXT,
  dest_area TEXT,
  dest_postal_code TEXT,
  weight_grams INTEGER,
  height_cm INTEGER,
  length_cm INTEGER,
  width_cm INTEGER,
  courier TEXT,
  rate TEXT NOT NULL DEFAULT '0',
  delivery_estimate TEXT,
  use_insurance INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`
	orderStatuses := `
CREATE TABLE IF NOT EXISTS order_statuses (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  order_id TEXT NOT NULL,
  status_name TEXT NOT NULL,
  description TEXT,
  changed_by INTEGER,
  created_at DATETIME
);`
	for _, stmt := range []string{orderGroups, orders, orderItems, orderShipments, orderStatuses} {
		require.NoError(t, db.Exec(stmt).Error)
	}
	t.Cleanup(func() {
		for _, table := range []string{"order_statuses", "order_shipments", "order_items", "orders", "order_groups"} {
			db.Exec("DELETE FROM " + table)
		}
	})
	return db
}

func newGroup(t *testing.T, db *gorm.DB, buyerID uint64) *models.OrderGroup {
	t.Helper()

	group := &models.OrderGroup{
		BuyerID:       buyerID,
		ReferenceCode: fmt.Sprintf("ref-%d-%d", buyerID, time.Now().UnixNano()),
		TypeDevice:    enums.DeviceTypeMobile,
	}
	require.NoError(t, db.Create(group).Error)
	return group
}

func newOrder(t *testing.T, db *gorm.DB, id string, groupID, shopID uint, created time.Time) *models.Order {
	t.Helper()

	order := &models.Order{
		ID:                   id,
		ConfirmationDeadline: created.Add(24 * time.Hour),
		DateOrderedFor:       created.Add(48 * time.Hour),
		CurrentStatus:        enums.OrderStatusPending,
		ShopID:               shopID,
		OrderGroupID:         groupID,
		CreatedAt:            created,
		UpdatedAt:            created,
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func TestRepositoryOrderIDExists_includesSoftDeleted(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	group := newGroup(t, db, 7)
	newOrder(t, db, "KNaaaaaa", group.ID, 1, time.Now().UTC())

	exists, err := repo.OrderIDExists(ctx, "KNaaaaaa")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, db.Delete(&models.Order{ID: "KNaaaaaa"}).Error)

	exists, err = repo.OrderIDExists(ctx, "KNaaaaaa")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.OrderIDExists(ctx, "KNbbbbbb")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRepositoryFindOrderByID_preloads(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	group := newGroup(t, db, 7)
	order := newOrder(t, db, "KNcccccc", group.ID, 1, time.Now().UTC())

	item := models.OrderItem{
		OrderID:    order.ID,
		GiftName:   "Photo Frame",
		GiftPrice:  decimal.NewFromInt(120),
		Quantity:   1,
		TotalPrice: decimal.NewFromInt(120),
	}
	require.NoError(t, db.Create(&item).Error)

	base := time.Now().UTC().Add(-time.Hour)
	for i, name := range []enums.OrderStatus{enums.OrderStatusPending, enums.OrderStatusConfirmed, enums.OrderStatusShipped} {
		status := models.OrderStatus{
			OrderID:    order.ID,
			StatusName: name,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(&status).Error)
	}

	found, err := repo.FindOrderByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "Photo Frame", found.Items[0].GiftName)
	require.Len(t, found.Statuses, 3)
	assert.Equal(t, enums.OrderStatusShipped, found.Statuses[0].StatusName)
	assert.Equal(t, enums.OrderStatusPending, found.Statuses[2].StatusName)
}

func TestRepositoryFindOrderStatuses_newestFirst(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	group := newGroup(t, db, 7)
	order := newOrder(t, db, "KNdddddd", group.ID, 1, time.Now().UTC())

	base := time.Now().UTC().Add(-time.Hour)
	names := []enums.OrderStatus{enums.OrderStatusPending, enums.OrderStatusConfirmed, enums.OrderStatusProcessing}
	for i, name := range names {
		_, err := repo.CreateOrderStatus(ctx, &models.OrderStatus{
			OrderID:    order.ID,
			StatusName: name,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	history, err := repo.FindOrderStatuses(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, enums.OrderStatusProcessing, history[0].StatusName)
	assert.Equal(t, enums.OrderStatusConfirmed, history[1].StatusName)
	assert.Equal(t, enums.OrderStatusPending, history[2].StatusName)
}

func TestRepositoryUpdateOrderCurrentStatus(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	group := newGroup(t, db, 7)
	order := newOrder(t, db, "KNeeeeee", group.ID, 1, time.Now().UTC())

	require.NoError(t, repo.UpdateOrderCurrentStatus(ctx, order.ID, enums.OrderStatusDelivered))

	found, err := repo.FindOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusDelivered, found.CurrentStatus)
}

func TestRepositoryShipmentUniquePerOrder(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	group := newGroup(t, db, 7)
	order := newOrder(t, db, "KNffffff", group.ID, 1, time.Now().UTC())

	_, err := repo.CreateOrderShipment(ctx, &models.OrderShipment{OrderID: order.ID})
	require.NoError(t, err)

	_, err = repo.CreateOrderShipment(ctx, &models.OrderShipment{OrderID: order.ID})
	require.Error(t, err)
}

func TestRepositorySoftDeleteOrderGroup_cascades(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	group := newGroup(t, db, 7)
	order := newOrder(t, db, "KNgggggg", group.ID, 1, time.Now().UTC())

	require.NoError(t, repo.SoftDeleteOrderGroup(ctx, group.ID))

	_, err := repo.FindOrderGroupByID(ctx, group.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.FindOrderByID(ctx, order.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	audit, err := repo.FindOrderGroupByIDUnscoped(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, group.ID, audit.ID)
	assert.True(t, audit.DeletedAt.Valid)
}

func TestRepositoryListOrdersByShop_pagination(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	group := newGroup(t, db, 7)
	now := time.Now().UTC()
	newOrder(t, db, "KNhhhhh1", group.ID, 5, now.Add(-2*time.Hour))
	newOrder(t, db, "KNhhhhh2", group.ID, 5, now.Add(-time.Hour))
	newOrder(t, db, "KNhhhhh3", group.ID, 9, now)

	rows, err := repo.ListOrdersByShop(ctx, 5, listOrdersParams{Limit: 10})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "KNhhhhh2", rows[0].ID)
	assert.Equal(t, "KNhhhhh1", rows[1].ID)
}
