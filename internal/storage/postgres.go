package storage

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/VladKvetkin/pedidos/internal/entities"
	"github.com/jackc/pgerrcode"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// StorageError reports a failed persistence operation.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

type Storage interface {
	Initialize(context.Context) error
	CreateOrder(context.Context, entities.NewOrder) (int64, error)
	GetOrders(context.Context) ([]entities.Order, error)
	UpdateOrderStatus(context.Context, int64, string) error
}

type pedidoRow struct {
	ID        int64   `db:"id"`
	Nombre    string  `db:"nombre"`
	Telefono  string  `db:"telefono"`
	Direccion string  `db:"direccion"`
	Items     string  `db:"items"`
	Total     float64 `db:"total"`
	Estado    string  `db:"estado"`
	Creado    string  `db:"creado"`
}

func (r pedidoRow) toOrder() (entities.Order, error) {
	if math.IsInf(r.Total, 0) || math.IsNaN(r.Total) {
		return entities.Order{}, fmt.Errorf("invalid total value for order %d: %v", r.ID, r.Total)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, r.Creado)
	if err != nil {
		return entities.Order{}, fmt.Errorf("invalid creado value for order %d: %w", r.ID, err)
	}

	return entities.Order{
		ID:           r.ID,
		CustomerName: r.Nombre,
		Phone:        r.Telefono,
		Address:      r.Direccion,
		Items:        r.Items,
		Total:        decimal.NewFromFloat(r.Total),
		Status:       r.Estado,
		CreatedAt:    createdAt.UTC(),
	}, nil
}

type PostgresStorage struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewPostgresStorage(db *sqlx.DB) (Storage, error) {
	storage := &PostgresStorage{
		db:  db,
		now: time.Now,
	}

	if err := storage.Initialize(context.Background()); err != nil {
		return nil, err
	}

	return storage, nil
}

// Initialize creates the pedidos table if it is missing. It is safe to call repeatedly.
func (s *PostgresStorage) Initialize(ctx context.Context) error {
	_, err := s.db.ExecContext(
		ctx,
		`
		CREATE TABLE IF NOT EXISTS pedidos(
			id BIGSERIAL PRIMARY KEY,
			nombre TEXT,
			telefono TEXT,
			direccion TEXT,
			items TEXT,
			total DOUBLE PRECISION,
			estado TEXT,
			creado TEXT
		);
		`,
	)

	if err != nil {
		// Two processes racing on CREATE TABLE IF NOT EXISTS can both miss the catalog check.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && (pqErr.Code == pgerrcode.UniqueViolation || pqErr.Code == pgerrcode.DuplicateTable) {
			return nil
		}

		return &StorageError{Op: "initialize", Err: err}
	}

	return nil
}

func (s *PostgresStorage) CreateOrder(ctx context.Context, order entities.NewOrder) (int64, error) {
	var orderID int64

	row := s.db.QueryRowxContext(
		ctx,
		`INSERT INTO pedidos (nombre, telefono, direccion, items, total, estado, creado)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;`,
		order.CustomerName,
		order.Phone,
		order.Address,
		order.Items,
		order.Total.InexactFloat64(),
		entities.OrderStatusNew,
		s.now().UTC().Format(time.RFC3339Nano),
	)

	if err := row.Err(); err != nil {
		return 0, &StorageError{Op: "create order", Err: err}
	}

	if err := row.Scan(&orderID); err != nil {
		return 0, &StorageError{Op: "create order", Err: err}
	}

	return orderID, nil
}

func (s *PostgresStorage) GetOrders(ctx context.Context) ([]entities.Order, error) {
	var rows []pedidoRow

	err := s.db.SelectContext(
		ctx,
		&rows,
		"SELECT id, nombre, telefono, direccion, items, total, estado, creado FROM pedidos ORDER BY id DESC;",
	)
	if err != nil {
		return nil, &StorageError{Op: "get orders", Err: err}
	}

	orders := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		order, err := row.toOrder()
		if err != nil {
			return nil, &StorageError{Op: "get orders", Err: err}
		}

		orders = append(orders, order)
	}

	return orders, nil
}

// UpdateOrderStatus sets the status of an order. An unknown id is not an error.
func (s *PostgresStorage) UpdateOrderStatus(ctx context.Context, orderID int64, status string) error {
	result, err := s.db.ExecContext(ctx, `UPDATE pedidos SET estado = $1 WHERE id = $2;`, status, orderID)
	if err != nil {
		return &StorageError{Op: "update order status", Err: err}
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		zap.L().Info("order status update matched no rows", zap.Int64("orderID", orderID))
	}

	return nil
}
