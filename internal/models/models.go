package models

type OrderForm struct {
	CustomerName string
	Phone        string
	Address      string
	Items        string
	Total        string
}

type StatusUpdateForm struct {
	Key    string
	ID     string
	Status string
}

type TelegramSendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

type TelegramErrorResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
}
