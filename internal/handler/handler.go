package handler

import (
	"context"
	"io"

	"github.com/VladKvetkin/pedidos/internal/entities"
	"github.com/VladKvetkin/pedidos/internal/models"
)

type OrderService interface {
	SubmitOrder(context.Context, models.OrderForm) (int64, error)
}

type AdminGateway interface {
	ListOrders(context.Context, string) ([]entities.Order, error)
	SetStatus(context.Context, string, int64, string) error
}

type Renderer interface {
	Index(io.Writer) error
	OrderReceived(io.Writer, int64) error
	Admin(io.Writer, []entities.Order, string) error
}

type Handler struct {
	orders   OrderService
	admin    AdminGateway
	renderer Renderer
}

func NewHandler(orders OrderService, admin AdminGateway, renderer Renderer) *Handler {
	return &Handler{
		orders:   orders,
		admin:    admin,
		renderer: renderer,
	}
}
