package handler

import (
	"net/http"

	"github.com/VladKvetkin/pedidos/internal/models"
	"go.uber.org/zap"
)

func (h *Handler) Index(res http.ResponseWriter, req *http.Request) {
	res.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := h.renderer.Index(res); err != nil {
		zap.L().Error("error render index page", zap.Error(err))

		res.WriteHeader(http.StatusInternalServerError)
	}
}

func (h *Handler) SubmitOrder(res http.ResponseWriter, req *http.Request) {
	if err := req.ParseForm(); err != nil {
		zap.L().Info("cannot parse order form", zap.Error(err))

		res.WriteHeader(http.StatusBadRequest)
		return
	}

	orderID, err := h.orders.SubmitOrder(req.Context(), models.OrderForm{
		CustomerName: req.PostForm.Get("nombre"),
		Phone:        req.PostForm.Get("telefono"),
		Address:      req.PostForm.Get("direccion"),
		Items:        req.PostForm.Get("items"),
		Total:        req.PostForm.Get("total"),
	})
	if err != nil {
		zap.L().Error("error submit order", zap.Error(err))

		res.WriteHeader(http.StatusInternalServerError)
		return
	}

	res.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := h.renderer.OrderReceived(res, orderID); err != nil {
		zap.L().Error("error render order received page", zap.Int64("orderID", orderID), zap.Error(err))

		res.WriteHeader(http.StatusInternalServerError)
	}
}
