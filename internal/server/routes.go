package server

import (
	"compress/gzip"
	"net/http"

	"github.com/VladKvetkin/pedidos/internal/handler"
	"github.com/VladKvetkin/pedidos/internal/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func (s *Server) setupRoutes(handler *handler.Handler) {
	s.setupMiddleware()

	s.mux.Route("/", func(r chi.Router) {
		r.Get("/", http.HandlerFunc(handler.Index))
		r.Post("/pedir", http.HandlerFunc(handler.SubmitOrder))

		r.Route("/admin", func(r chi.Router) {
			r.Get("/", http.HandlerFunc(handler.GetOrders))
			r.Post("/update", http.HandlerFunc(handler.UpdateOrderStatus))
		})
	})
}

func (s *Server) setupMiddleware() {
	s.mux.Use(
		chiMiddleware.RequestID,
		chiMiddleware.Recoverer,
		middleware.Logger,
		chiMiddleware.Compress(gzip.BestCompression, "text/html", "text/plain"),
	)
}
