package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	internalorders "github.com/Rafhi-Arizkia/kenangan-backend/internal/orders"
	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/db/models"
	"github.com/Rafhi-Arizkia/kenangan-backend/pkg/pagination"
)

type stubControllerOrdersService struct {
	createGroup  func(ctx context.Context, input internalorders.CreateOrderGroupInput) (*models.OrderGroup, error)
	createOrder  func(ctx context.Context, input internalorders.CreateOrderInput) (*models.Order, error)
	getOrder     func(ctx context.Context, id string) (*models.Order, error)
	listByShop   func(ctx context.Context, shopID uint, params pagination.Params) (*internalorders.ShopOrderList, error)
	updateStatus func(ctx context.Context, input internalorders.UpdateOrderStatusInput) (*models.OrderStatus, error)
	getItems     func(ctx context.Context, orderID string) ([]models.OrderItem, error)
}

func (s *stubControllerOrdersService) CreateOrderGroup(ctx context.Context, input internalorders.CreateOrderGroupInput) (*models.OrderGroup, error) {
	if s.createGroup != nil {
		return s.createGroup(ctx, input)
	}
	return &models.OrderGroup{ID: 1}, nil
}

func (s *stubControllerOrdersService) CreateOrder(ctx context.Context, input internalorders.CreateOrderInput) (*models.Order, error) {
	if s.createOrder != nil {
		return s.createOrder(ctx, input)
	}
	return &models.Order{ID: "KNabc123"}, nil
}

func (s *stubControllerOrdersService) GetOrderGroup(ctx context.Context, id uint) (*models.OrderGroup, error) {
	return &models.OrderGroup{ID: id}, nil
}

func (s *stubControllerOrdersService) GetOrderGroupAudit(ctx context.Context, id uint) (*models.OrderGroup, error) {
	panic("unimplemented")
}

func (s *stubControllerOrdersService) GetGroupOrders(ctx context.Context, groupID uint) ([]models.Order, error) {
	panic("unimplemented")
}

func (s *stubControllerOrdersService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	if s.getOrder != nil {
		return s.getOrder(ctx, id)
	}
	return &models.Order{ID: id}, nil
}

func (s *stubControllerOrdersService) GetOrderItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	if s.getItems != nil {
		return s.getItems(ctx, orderID)
	}
	return nil, nil
}

func (s *stubControllerOrdersService) ListShopOrders(ctx context.Context, shopID uint, params pagination.Params) (*internalorders.ShopOrderList, error) {
	if s.listByShop != nil {
		return s.listByShop(ctx, shopID, params)
	}
	return &internalorders.ShopOrderList{}, nil
}

func (s *stubControllerOrdersService) UpdateOrderStatus(ctx context.Context, input internalorders.UpdateOrderStatusInput) (*models.OrderStatus, error) {
	if s.updateStatus != nil {
		return s.updateStatus(ctx, input)
	}
	return &models.OrderStatus{ID: 1, OrderID: input.OrderID}, nil
}

func (s *stubControllerOrdersService) GetOrderStatuses(ctx context.Context, orderID string) ([]models.OrderStatus, error) {
	return nil, nil
}

func (s *stubControllerOrdersService) CreateOrderShipment(ctx context.Context, input internalorders.CreateShipmentInput) (*models.OrderShipment, error) {
	panic("unimplemented")
}

func (s *stubControllerOrdersService) UpdateOrderShipment(ctx context.Context, shipmentID uint, input internalorders.UpdateShipmentInput) (*models.OrderShipment, error) {
	panic("unimplemented")
}

func (s *stubControllerOrdersService) GetOrderShipment(ctx context.Context, shipmentID uint) (*models.OrderShipment, error) {
	panic("unimplemented")
}

func (s *stubControllerOrdersService) GetOrderShipmentByOrder(ctx context.Context, orderID string) (*models.OrderShipment, error) {
	panic("unimplemented")
}

func (s *stubControllerOrdersService) DeleteOrderGroup(ctx context.Context, id uint) error {
	return nil
}

func newOrdersRouter(svc internalorders.Service) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/v1/order-groups", CreateGroup(svc, nil))
	r.Post("/api/v1/orders", Create(svc, nil))
	r.Get("/api/v1/orders/{orderID}", Detail(svc, nil))
	r.Get("/api/v1/orders/{orderID}/items", ListItems(svc, nil))
	r.Post("/api/v1/orders/{orderID}/statuses", UpdateStatus(svc, nil))
	r.Get("/api/v1/shops/{shopID}/orders", ListByShop(svc, nil))
	return r
}

func TestCreateGroupMapsRequest(t *testing.T) {
	var captured internalorders.CreateOrderGroupInput
	svc := &stubControllerOrdersService{
		createGroup: func(ctx context.Context, input internalorders.CreateOrderGroupInput) (*models.OrderGroup, error) {
			captured = input
			return &models.OrderGroup{ID: 9, BuyerID: input.BuyerID}, nil
		},
	}
	router := newOrdersRouter(svc)

	body := `{"buyer_id":42,"receiver_id":7,"is_gift":true,"is_surprise":1,"type_device":"WEB","service_fee":"2.50"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/order-groups", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if captured.BuyerID != 42 {
		t.Fatalf("unexpected buyer id %d", captured.BuyerID)
	}
	if captured.ReceiverID == nil || *captured.ReceiverID != 7 {
		t.Fatalf("receiver id not mapped")
	}
	if captured.IsGift.Int() != 1 || captured.IsSurprise.Int() != 1 || captured.IsHidden.Int() != 0 {
		t.Fatalf("flags not coerced: gift=%d surprise=%d hidden=%d", captured.IsGift.Int(), captured.IsSurprise.Int(), captured.IsHidden.Int())
	}
	if captured.TypeDevice != "WEB" {
		t.Fatalf("unexpected device %q", captured.TypeDevice)
	}
	if captured.ServiceFee == nil || !captured.ServiceFee.Equal(decimal.RequireFromString("2.50")) {
		t.Fatalf("service fee not mapped")
	}
}

func TestCreateGroupRejectsUnknownField(t *testing.T) {
	router := newOrdersRouter(&stubControllerOrdersService{})
	body := `{"buyer_id":42,"buyre_id":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/order-groups", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown field got %d", resp.Code)
	}
}

func TestCreateGroupRejectsInvalidDevice(t *testing.T) {
	router := newOrdersRouter(&stubControllerOrdersService{})
	body := `{"buyer_id":42,"type_device":"FAX"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/order-groups", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid device got %d", resp.Code)
	}
}

func TestCreateOrderDefaultsDiscountToZero(t *testing.T) {
	var captured internalorders.CreateOrderInput
	svc := &stubControllerOrdersService{
		createOrder: func(ctx context.Context, input internalorders.CreateOrderInput) (*models.Order, error) {
			captured = input
			return &models.Order{ID: "KNabc123"}, nil
		},
	}
	router := newOrdersRouter(svc)

	body := `{
		"order_group_id": 3,
		"shop_id": 5,
		"confirmation_deadline": "2026-09-02T12:00:00Z",
		"date_ordered_for": "2026-09-05T12:00:00Z",
		"items": [
			{"gift_name": "Mug", "gift_price": "10.00", "quantity": 2, "total_price": "20.00"}
		]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if len(captured.Items) != 1 {
		t.Fatalf("expected one item got %d", len(captured.Items))
	}
	if !captured.Items[0].DiscountAmount.IsZero() {
		t.Fatalf("missing discount must default to zero, got %s", captured.Items[0].DiscountAmount)
	}
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	router := newOrdersRouter(&stubControllerOrdersService{})
	body := `{
		"order_group_id": 3,
		"shop_id": 5,
		"confirmation_deadline": "2026-09-02T12:00:00Z",
		"date_ordered_for": "2026-09-05T12:00:00Z",
		"items": []
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty items got %d", resp.Code)
	}
}

func TestUpdateStatusUsesPathOrderID(t *testing.T) {
	var captured internalorders.UpdateOrderStatusInput
	svc := &stubControllerOrdersService{
		updateStatus: func(ctx context.Context, input internalorders.UpdateOrderStatusInput) (*models.OrderStatus, error) {
			captured = input
			return &models.OrderStatus{ID: 2, OrderID: input.OrderID}, nil
		},
	}
	router := newOrdersRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/KNabc123/statuses", strings.NewReader(`{"status_name":"CONFIRMED"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if captured.OrderID != "KNabc123" {
		t.Fatalf("unexpected order id %q", captured.OrderID)
	}
	if captured.StatusName != "CONFIRMED" {
		t.Fatalf("unexpected status %q", captured.StatusName)
	}
}

func TestDetailReturnsEnvelope(t *testing.T) {
	router := newOrdersRouter(&stubControllerOrdersService{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/KNabc123", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data models.Order `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ID != "KNabc123" {
		t.Fatalf("unexpected order id %q", envelope.Data.ID)
	}
}

func TestListItemsUsesPathOrderID(t *testing.T) {
	svc := &stubControllerOrdersService{
		getItems: func(ctx context.Context, orderID string) ([]models.OrderItem, error) {
			if orderID != "KNabc123" {
				t.Fatalf("unexpected order id %q", orderID)
			}
			return []models.OrderItem{{ID: 1, OrderID: orderID, GiftName: "Mug"}}, nil
		},
	}
	router := newOrdersRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/KNabc123/items", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	var envelope struct {
		Data []models.OrderItem `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].GiftName != "Mug" {
		t.Fatalf("unexpected items payload %+v", envelope.Data)
	}
}

func TestListByShopParsesPagination(t *testing.T) {
	var gotShopID uint
	var gotParams pagination.Params
	svc := &stubControllerOrdersService{
		listByShop: func(ctx context.Context, shopID uint, params pagination.Params) (*internalorders.ShopOrderList, error) {
			gotShopID = shopID
			gotParams = params
			return &internalorders.ShopOrderList{}, nil
		},
	}
	router := newOrdersRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/shops/5/orders?limit=10&cursor=abc", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if gotShopID != 5 {
		t.Fatalf("unexpected shop id %d", gotShopID)
	}
	if gotParams.Limit != 10 || gotParams.Cursor != "abc" {
		t.Fatalf("pagination not parsed: %+v", gotParams)
	}
}

func TestListByShopRejectsNonNumericShopID(t *testing.T) {
	router := newOrdersRouter(&stubControllerOrdersService{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/shops/abc/orders", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric shop id got %d", resp.Code)
	}
}
