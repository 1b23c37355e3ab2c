package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"

	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const defaultAdminKey = "cambiame"

type Config struct {
	Address        string `env:"RUN_ADDRESS"`
	DatabaseURI    string `env:"DATABASE_URI"`
	SMTPUser       string `env:"SMTP_USER"`
	SMTPPassword   string `env:"SMTP_PASS"`
	NotifyEmail    string `env:"NOTIFY_EMAIL"`
	TelegramToken  string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID string `env:"TELEGRAM_CHAT_ID"`
	TelegramAPIURL string `env:"TELEGRAM_API_URL"`
	AdminKey       string `env:"ADMIN_KEY"`
	LogLevel       string `env:"LOG_LEVEL"`
}

func NewConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("error load .env file: %w", err)
	}

	return newConfig(os.Args[1:])
}

func newConfig(args []string) (Config, error) {
	config := Config{
		Address:        "0.0.0.0:5000",
		TelegramAPIURL: "https://api.telegram.org",
		AdminKey:       defaultAdminKey,
		LogLevel:       "info",
	}

	if err := config.parseFlags(args); err != nil {
		return Config{}, err
	}

	if err := env.Parse(&config); err != nil {
		return Config{}, err
	}

	if err := config.validateConfig(); err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c *Config) parseFlags(args []string) error {
	flags := flag.NewFlagSet("pedidos", flag.ContinueOnError)

	flags.StringVar(&c.Address, "a", c.Address, "Service address")
	flags.StringVar(&c.DatabaseURI, "d", c.DatabaseURI, "Database URI")
	flags.StringVar(&c.AdminKey, "k", c.AdminKey, "Admin key")
	flags.StringVar(&c.LogLevel, "l", c.LogLevel, "Log level")

	return flags.Parse(args)
}

func (c *Config) validateConfig() error {
	if _, _, err := net.SplitHostPort(c.Address); err != nil {
		return fmt.Errorf("invalid service address %q: %w", c.Address, err)
	}

	if _, err := url.ParseRequestURI(c.TelegramAPIURL); err != nil {
		return fmt.Errorf("invalid telegram api url: %w", err)
	}

	if _, err := zap.ParseAtomicLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	if c.AdminKey == "" {
		return errors.New("admin key must not be empty")
	}

	return nil
}

func (c Config) EmailEnabled() bool {
	return c.SMTPUser != "" && c.SMTPPassword != "" && c.NotifyEmail != ""
}

func (c Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != ""
}

// DefaultAdminKey reports whether the admin key was left at its insecure default.
func (c Config) DefaultAdminKey() bool {
	return c.AdminKey == defaultAdminKey
}
