package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/VladKvetkin/pedidos/internal/entities"
	"github.com/VladKvetkin/pedidos/internal/models"
	"github.com/VladKvetkin/pedidos/internal/services/admin"
	"go.uber.org/zap"
)

func (h *Handler) GetOrders(res http.ResponseWriter, req *http.Request) {
	key := req.URL.Query().Get("key")

	orders, err := h.admin.ListOrders(req.Context(), key)
	if err != nil {
		if errors.Is(err, admin.ErrUnauthorized) {
			zap.L().Info("admin key mismatch", zap.String("remoteAddr", req.RemoteAddr))

			res.WriteHeader(http.StatusUnauthorized)
			return
		}

		zap.L().Error("error list orders", zap.Error(err))

		res.WriteHeader(http.StatusInternalServerError)
		return
	}

	res.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := h.renderer.Admin(res, orders, key); err != nil {
		zap.L().Error("error render admin page", zap.Error(err))

		res.WriteHeader(http.StatusInternalServerError)
	}
}

func (h *Handler) UpdateOrderStatus(res http.ResponseWriter, req *http.Request) {
	if err := req.ParseForm(); err != nil {
		zap.L().Info("cannot parse status form", zap.Error(err))

		res.WriteHeader(http.StatusBadRequest)
		return
	}

	form := models.StatusUpdateForm{
		Key:    req.PostForm.Get("key"),
		ID:     req.PostForm.Get("id"),
		Status: entities.OrderStatusPrepared,
	}
	if _, ok := req.PostForm["estado"]; ok {
		form.Status = req.PostForm.Get("estado")
	}

	// An id that is not a number cannot match any order, so it behaves like an unknown id.
	orderID, err := strconv.ParseInt(form.ID, 10, 64)
	if err != nil {
		zap.L().Info("order id is not a number", zap.String("id", form.ID))
		orderID = 0
	}

	if err := h.admin.SetStatus(req.Context(), form.Key, orderID, form.Status); err != nil {
		if errors.Is(err, admin.ErrUnauthorized) {
			zap.L().Info("admin key mismatch", zap.String("remoteAddr", req.RemoteAddr))

			res.WriteHeader(http.StatusUnauthorized)
			return
		}

		zap.L().Error("error update order status", zap.Error(err))

		res.WriteHeader(http.StatusInternalServerError)
		return
	}

	http.Redirect(res, req, "/admin?key="+url.QueryEscape(form.Key), http.StatusFound)
}
