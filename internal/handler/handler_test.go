package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/VladKvetkin/pedidos/internal/entities"
	"github.com/VladKvetkin/pedidos/internal/notifier"
	"github.com/VladKvetkin/pedidos/internal/services/admin"
	"github.com/VladKvetkin/pedidos/internal/services/orders"
	"github.com/VladKvetkin/pedidos/internal/storage"
	"github.com/VladKvetkin/pedidos/internal/view"
	"github.com/shopspring/decimal"
)

const adminKey = "s3cret"

type failingStorage struct {
	storage.Storage
}

func (failingStorage) CreateOrder(context.Context, entities.NewOrder) (int64, error) {
	return 0, &storage.StorageError{Op: "create order", Err: errors.New("disk full")}
}

func (failingStorage) GetOrders(context.Context) ([]entities.Order, error) {
	return nil, &storage.StorageError{Op: "get orders", Err: errors.New("disk full")}
}

func newTestHandler(t *testing.T, store storage.Storage) *Handler {
	t.Helper()

	renderer, err := view.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	service := orders.NewService(
		store,
		notifier.NewEmailNotifier("", ""),
		notifier.NewTelegramNotifier("http://127.0.0.1:0"),
		orders.Channels{},
	)

	return NewHandler(service, admin.NewGateway(store, adminKey), renderer)
}

func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestIndex(t *testing.T) {
	h := newTestHandler(t, storage.NewMemoryStorage())

	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `action="/pedir"`) {
		t.Error("index page should contain the order form")
	}
}

func TestOrderLifecycle(t *testing.T) {
	store := storage.NewMemoryStorage()
	h := newTestHandler(t, store)

	rec := httptest.NewRecorder()
	h.SubmitOrder(rec, postForm("/pedir", url.Values{
		"nombre":    {"Ana"},
		"telefono":  {"555"},
		"direccion": {"Calle 1"},
		"items":     {"2x Pizza"},
		"total":     {"19.5"},
	}))

	if rec.Code != http.StatusOK {
		t.Fatalf("submit status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "#1") {
		t.Errorf("confirmation should mention the order id, got %q", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h.GetOrders(rec, httptest.NewRequest(http.MethodGet, "/admin?key="+adminKey, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("admin status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Ana") {
		t.Error("admin listing should show the new order")
	}

	created, _ := store.GetOrders(context.Background())
	if created[0].Status != entities.OrderStatusNew || !created[0].Total.Equal(decimal.RequireFromString("19.5")) {
		t.Fatalf("unexpected stored order %+v", created[0])
	}

	rec = httptest.NewRecorder()
	h.UpdateOrderStatus(rec, postForm("/admin/update", url.Values{
		"key":    {adminKey},
		"id":     {"1"},
		"estado": {entities.OrderStatusPrepared},
	}))

	if rec.Code != http.StatusFound {
		t.Fatalf("update status = %d", rec.Code)
	}
	if location := rec.Header().Get("Location"); location != "/admin?key="+adminKey {
		t.Errorf("Location = %q", location)
	}

	updated, _ := store.GetOrders(context.Background())
	want := created[0]
	want.Status = entities.OrderStatusPrepared
	got := updated[0]
	if got.ID != want.ID || got.CustomerName != want.CustomerName || got.Phone != want.Phone ||
		got.Address != want.Address || got.Items != want.Items || !got.Total.Equal(want.Total) ||
		got.Status != want.Status || !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestSubmitOrderMissingTotal(t *testing.T) {
	store := storage.NewMemoryStorage()
	h := newTestHandler(t, store)

	rec := httptest.NewRecorder()
	h.SubmitOrder(rec, postForm("/pedir", url.Values{"nombre": {"Ana"}}))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	stored, _ := store.GetOrders(context.Background())
	if !stored[0].Total.IsZero() {
		t.Errorf("total = %s, want 0", stored[0].Total)
	}
}

func TestSubmitOrderStorageFailure(t *testing.T) {
	h := newTestHandler(t, failingStorage{})

	rec := httptest.NewRecorder()
	h.SubmitOrder(rec, postForm("/pedir", url.Values{"nombre": {"Ana"}}))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestAdminUnauthorized(t *testing.T) {
	h := newTestHandler(t, storage.NewMemoryStorage())

	rec := httptest.NewRecorder()
	h.GetOrders(rec, httptest.NewRequest(http.MethodGet, "/admin?key=wrong", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("list status = %d, want 401", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("401 body should be empty, got %q", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h.UpdateOrderStatus(rec, postForm("/admin/update", url.Values{"key": {"wrong"}, "id": {"1"}}))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("update status = %d, want 401", rec.Code)
	}
}

func TestAdminStorageFailure(t *testing.T) {
	h := newTestHandler(t, failingStorage{})

	rec := httptest.NewRecorder()
	h.GetOrders(rec, httptest.NewRequest(http.MethodGet, "/admin?key="+adminKey, nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestUpdateOrderStatusDefaults(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
		want   string
	}{
		{"missing estado", url.Values{"key": {adminKey}, "id": {"1"}}, entities.OrderStatusPrepared},
		{"free text estado", url.Values{"key": {adminKey}, "id": {"1"}, "estado": {"entregado"}}, "entregado"},
		{"non-numeric id", url.Values{"key": {adminKey}, "id": {"uno"}, "estado": {"entregado"}}, entities.OrderStatusNew},
		{"unknown id", url.Values{"key": {adminKey}, "id": {"42"}, "estado": {"entregado"}}, entities.OrderStatusNew},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storage.NewMemoryStorage()
			if _, err := store.CreateOrder(context.Background(), entities.NewOrder{CustomerName: "Ana"}); err != nil {
				t.Fatalf("CreateOrder: %v", err)
			}
			h := newTestHandler(t, store)

			rec := httptest.NewRecorder()
			h.UpdateOrderStatus(rec, postForm("/admin/update", tt.values))

			if rec.Code != http.StatusFound {
				t.Fatalf("status = %d, want 302", rec.Code)
			}

			stored, _ := store.GetOrders(context.Background())
			if stored[0].Status != tt.want {
				t.Errorf("status = %q, want %q", stored[0].Status, tt.want)
			}
		})
	}
}
