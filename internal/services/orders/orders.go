package orders

import (
	"context"
	"fmt"
	"strings"

	"github.com/VladKvetkin/pedidos/internal/entities"
	"github.com/VladKvetkin/pedidos/internal/models"
	"github.com/VladKvetkin/pedidos/internal/services/converter"
	"github.com/VladKvetkin/pedidos/internal/storage"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type EmailNotifier interface {
	Notify(address, subject, body string)
}

type ChatNotifier interface {
	Notify(chatID, token, text string)
}

// Channels names the notification targets. Empty values disable a channel.
type Channels struct {
	Email          string
	TelegramChatID string
	TelegramToken  string
}

type Service struct {
	storage  storage.Storage
	email    EmailNotifier
	chat     ChatNotifier
	channels Channels
}

func NewService(storage storage.Storage, email EmailNotifier, chat ChatNotifier, channels Channels) *Service {
	return &Service{
		storage:  storage,
		email:    email,
		chat:     chat,
		channels: channels,
	}
}

// SubmitOrder stores a new order and alerts staff. The returned id is valid as
// soon as the order is stored; notification problems never fail the call.
func (s *Service) SubmitOrder(ctx context.Context, form models.OrderForm) (int64, error) {
	order := entities.NewOrder{
		CustomerName: strings.TrimSpace(form.CustomerName),
		Phone:        strings.TrimSpace(form.Phone),
		Address:      strings.TrimSpace(form.Address),
		Items:        strings.TrimSpace(form.Items),
		Total:        converter.ParseTotal(form.Total),
	}

	orderID, err := s.storage.CreateOrder(ctx, order)
	if err != nil {
		return 0, fmt.Errorf("error create order: %w", err)
	}

	zap.L().Info("order created", zap.Int64("orderID", orderID))

	s.notify(orderID, order)

	return orderID, nil
}

func (s *Service) notify(orderID int64, order entities.NewOrder) {
	var (
		subject = fmt.Sprintf("Nuevo pedido #%d - %s", orderID, order.CustomerName)
		text    = FormatSummary(orderID, order)
	)

	var eg errgroup.Group

	if s.channels.Email != "" {
		eg.Go(func() error {
			s.email.Notify(s.channels.Email, subject, text)
			return nil
		})
	}

	if s.channels.TelegramChatID != "" && s.channels.TelegramToken != "" {
		eg.Go(func() error {
			s.chat.Notify(s.channels.TelegramChatID, s.channels.TelegramToken, text)
			return nil
		})
	}

	_ = eg.Wait()
}

func FormatSummary(orderID int64, order entities.NewOrder) string {
	return fmt.Sprintf(
		"Nuevo pedido #%d\nNombre: %s\nTel: %s\nDirección: %s\nItems:\n%s\nTotal: %s",
		orderID,
		order.CustomerName,
		order.Phone,
		order.Address,
		order.Items,
		converter.FormatTotal(order.Total),
	)
}
