package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/VladKvetkin/pedidos/internal/config"
	"github.com/VladKvetkin/pedidos/internal/handler"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Server struct {
	config config.Config
	mux    chi.Router
	server *http.Server
}

// WriteTimeout must cover the notification calls made while an order is submitted.
func NewServer(config config.Config, handler *handler.Handler) *Server {
	mux := chi.NewMux()

	server := &Server{
		config: config,
		mux:    mux,
		server: &http.Server{
			Addr:              config.Address,
			Handler:           mux,
			ReadTimeout:       5 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       5 * time.Second,
		},
	}

	server.setupRoutes(handler)

	return server
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) Start() error {
	zap.L().Info("starting server", zap.String("address", s.config.Address))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("error starting server: %w", err)
	}

	return nil
}

func (s *Server) Stop() error {
	zap.L().Info("stopping server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error stopping server: %w", err)
	}

	return nil
}
