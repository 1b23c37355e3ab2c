package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Known order statuses. The set is open: administrators may store any string.
const (
	OrderStatusNew      = "new"
	OrderStatusPrepared = "prepared"
)

type Order struct {
	ID           int64
	CustomerName string
	Phone        string
	Address      string
	Items        string
	Total        decimal.Decimal
	Status       string
	CreatedAt    time.Time
}

// NewOrder holds the customer supplied fields of an order that is not stored yet.
type NewOrder struct {
	CustomerName string
	Phone        string
	Address      string
	Items        string
	Total        decimal.Decimal
}
