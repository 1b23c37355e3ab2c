package admin

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/VladKvetkin/pedidos/internal/entities"
	"github.com/VladKvetkin/pedidos/internal/storage"
	"go.uber.org/zap"
)

var ErrUnauthorized = errors.New("unauthorized")

type Gateway struct {
	storage storage.Storage
	key     string
}

func NewGateway(storage storage.Storage, key string) *Gateway {
	return &Gateway{
		storage: storage,
		key:     key,
	}
}

func (g *Gateway) ListOrders(ctx context.Context, key string) ([]entities.Order, error) {
	if !g.authorized(key) {
		return nil, ErrUnauthorized
	}

	orders, err := g.storage.GetOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("error get orders: %w", err)
	}

	return orders, nil
}

// SetStatus stores status verbatim. Unknown ids are silently ignored.
func (g *Gateway) SetStatus(ctx context.Context, key string, orderID int64, status string) error {
	if !g.authorized(key) {
		return ErrUnauthorized
	}

	if err := g.storage.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return fmt.Errorf("error update order status: %w", err)
	}

	zap.L().Info("order status updated", zap.Int64("orderID", orderID), zap.String("status", status))

	return nil
}

func (g *Gateway) authorized(key string) bool {
	return subtle.ConstantTimeCompare([]byte(key), []byte(g.key)) == 1
}
