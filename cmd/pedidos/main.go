package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"github.com/VladKvetkin/pedidos/internal/config"
	"github.com/VladKvetkin/pedidos/internal/handler"
	"github.com/VladKvetkin/pedidos/internal/logger"
	"github.com/VladKvetkin/pedidos/internal/notifier"
	"github.com/VladKvetkin/pedidos/internal/server"
	"github.com/VladKvetkin/pedidos/internal/services/admin"
	"github.com/VladKvetkin/pedidos/internal/services/orders"
	"github.com/VladKvetkin/pedidos/internal/storage"
	"github.com/VladKvetkin/pedidos/internal/view"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	os.Exit(start())
}

func start() int {
	config, err := config.NewConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error create config:", err)
		return 1
	}

	if err := logger.Initialize(config.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, "error initialize logger:", err)
		return 1
	}

	defer zap.L().Sync()

	if config.DefaultAdminKey() {
		zap.L().Warn("admin key is the default value, set ADMIN_KEY")
	}

	orderStorage, closeStorage, err := openStorage(config.DatabaseURI)
	if err != nil {
		zap.L().Error("error open storage", zap.Error(err))
		return 1
	}

	defer closeStorage()

	renderer, err := view.NewRenderer()
	if err != nil {
		zap.L().Error("error create renderer", zap.Error(err))
		return 1
	}

	var (
		orderService = orders.NewService(
			orderStorage,
			notifier.NewEmailNotifier(config.SMTPUser, config.SMTPPassword),
			notifier.NewTelegramNotifier(config.TelegramAPIURL),
			channels(config),
		)
		adminGateway = admin.NewGateway(orderStorage, config.AdminKey)
	)

	server := server.NewServer(config, handler.NewHandler(orderService, adminGateway, renderer))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		if err := server.Start(); err != nil {
			zap.L().Error("error starting server", zap.Error(err))
			return err
		}

		return nil
	})

	<-ctx.Done()

	eg.Go(func() error {
		if err := server.Stop(); err != nil {
			zap.L().Error("error stopping server", zap.Error(err))
			return err
		}

		return nil
	})

	if err := eg.Wait(); err != nil {
		return 1
	}

	return 0
}

func openStorage(databaseURI string) (storage.Storage, func(), error) {
	if databaseURI == "" {
		zap.L().Warn("DATABASE_URI is empty, orders are kept in memory and lost on restart")
		return storage.NewMemoryStorage(), func() {}, nil
	}

	db, err := sqlx.Connect("postgres", databaseURI)
	if err != nil {
		return nil, nil, fmt.Errorf("error connect to db: %w", err)
	}

	postgresStorage, err := storage.NewPostgresStorage(db)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("error create postgres storage: %w", err)
	}

	return postgresStorage, func() { db.Close() }, nil
}

func channels(config config.Config) orders.Channels {
	var channels orders.Channels

	if config.EmailEnabled() {
		channels.Email = config.NotifyEmail
	} else {
		zap.L().Info("email channel disabled")
	}

	if config.TelegramEnabled() {
		channels.TelegramChatID = config.TelegramChatID
		channels.TelegramToken = config.TelegramToken
	} else {
		zap.L().Info("telegram channel disabled")
	}

	return channels
}
