package notifier

import (
	"net/url"
	"strings"

	"github.com/VladKvetkin/pedidos/internal/models"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const sendMessageMethod = "sendMessage"

type TelegramNotifier struct {
	apiAddress string
	client     *resty.Client
}

func NewTelegramNotifier(apiAddress string) *TelegramNotifier {
	return &TelegramNotifier{
		apiAddress: apiAddress,
		client:     resty.New(),
	}
}

// Notify sends text to chatID using the bot token. Missing chatID or token skip
// delivery; transport errors and non-2xx replies are logged and dropped.
func (n *TelegramNotifier) Notify(chatID, token, text string) {
	if chatID == "" || token == "" {
		zap.L().Info("telegram is not configured, skip sending")
		return
	}

	url, err := n.sendMessagePath(token)
	if err != nil {
		zap.L().Error("error build telegram url", zap.String("error", redactToken(err.Error(), token)))
		return
	}

	response, err := n.client.R().
		SetBody(models.TelegramSendMessageRequest{ChatID: chatID, Text: text}).
		SetError(&models.TelegramErrorResponse{}).
		Post(url)
	if err != nil {
		zap.L().Error("error send telegram message", zap.String("error", redactToken(err.Error(), token)))
		return
	}

	if !response.IsSuccess() {
		fields := []zap.Field{
			zap.Int("status", response.StatusCode()),
			zap.String("body", response.String()),
		}
		if apiErr, ok := response.Error().(*models.TelegramErrorResponse); ok && apiErr.Description != "" {
			fields = append(fields, zap.String("description", apiErr.Description))
		}

		zap.L().Error("error telegram api response", fields...)
		return
	}

	zap.L().Info("telegram notification sent", zap.String("chatID", chatID))
}

func (n *TelegramNotifier) sendMessagePath(token string) (string, error) {
	return url.JoinPath(n.apiAddress, "bot"+token, sendMessageMethod)
}

// redactToken hides the bot token, which is part of every request URL.
func redactToken(message, token string) string {
	return strings.ReplaceAll(message, token, "<redacted>")
}
