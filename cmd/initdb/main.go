package main

import (
	"fmt"
	"os"

	_ "github.com/lib/pq"

	"github.com/VladKvetkin/pedidos/internal/config"
	"github.com/VladKvetkin/pedidos/internal/logger"
	"github.com/VladKvetkin/pedidos/internal/storage"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
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

	if config.DatabaseURI == "" {
		zap.L().Error("DATABASE_URI is required")
		return 1
	}

	db, err := sqlx.Connect("postgres", config.DatabaseURI)
	if err != nil {
		zap.L().Error("error connect to db", zap.Error(err))
		return 1
	}

	defer db.Close()

	if _, err := storage.NewPostgresStorage(db); err != nil {
		zap.L().Error("error initialize schema", zap.Error(err))
		return 1
	}

	zap.L().Info("database initialized")

	return 0
}
