package storage

import (
	"context"
	"sync"
	"time"

	"github.com/VladKvetkin/pedidos/internal/entities"
)

// MemoryStorage keeps orders in process memory. Nothing survives a restart.
type MemoryStorage struct {
	mu     sync.RWMutex
	lastID int64
	orders []entities.Order
	now    func() time.Time
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{now: time.Now}
}

func (s *MemoryStorage) Initialize(context.Context) error {
	return nil
}

func (s *MemoryStorage) CreateOrder(_ context.Context, order entities.NewOrder) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	s.orders = append(s.orders, entities.Order{
		ID:           s.lastID,
		CustomerName: order.CustomerName,
		Phone:        order.Phone,
		Address:      order.Address,
		Items:        order.Items,
		Total:        order.Total,
		Status:       entities.OrderStatusNew,
		CreatedAt:    s.now().UTC(),
	})

	return s.lastID, nil
}

func (s *MemoryStorage) GetOrders(context.Context) ([]entities.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]entities.Order, 0, len(s.orders))
	for i := len(s.orders) - 1; i >= 0; i-- {
		orders = append(orders, s.orders[i])
	}

	return orders, nil
}

func (s *MemoryStorage) UpdateOrderStatus(_ context.Context, orderID int64, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = status
			return nil
		}
	}

	return nil
}
