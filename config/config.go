package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gitlab.com/avolkov/dau_transfer/internal/transfer"
	"gitlab.com/avolkov/dau_transfer/pkg/log"
)

type Config struct {
	TelegramBotToken string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	LogLevel         string

	OpeningBalanceDAU decimal.Decimal
	Fees              transfer.FeeSchedule

	ToastTTL       time.Duration // lifetime of temporary bot messages
	SessionTimeout time.Duration
}

func Load() *Config {
	_ = godotenv.Load(".env") // load .env, if exists

	cfg, err := parse()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

func parse() (*Config, error) {
	cfg := &Config{
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           os.Getenv("DB_PORT"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASS"),
		DBName:           os.Getenv("DB_NAME"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}

	if cfg.TelegramBotToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	var err error
	if cfg.OpeningBalanceDAU, err = envDecimal("OPENING_BALANCE_DAU", "7"); err != nil {
		return nil, err
	}
	if cfg.OpeningBalanceDAU.IsNegative() {
		return nil, fmt.Errorf("OPENING_BALANCE_DAU must not be negative")
	}

	if cfg.Fees.Standard, err = envFee("FEE_STANDARD_USD", "3.76"); err != nil {
		return nil, err
	}
	if cfg.Fees.Fast, err = envFee("FEE_FAST_USD", "10.3"); err != nil {
		return nil, err
	}
	if cfg.Fees.Transfer, err = envFee("FEE_TRANSFER", "0.005"); err != nil {
		return nil, err
	}

	if cfg.ToastTTL, err = envDuration("TOAST_TTL", "20s"); err != nil {
		return nil, err
	}
	if cfg.SessionTimeout, err = envDuration("SESSION_TIMEOUT", "5m"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envDecimal(key, fallback string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(getEnv(key, fallback))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

// a negative fee would pay the receiver more than was sent
func envFee(key, fallback string) (decimal.Decimal, error) {
	v, err := envDecimal(key, fallback)
	if err != nil {
		return decimal.Zero, err
	}
	if v.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s must not be negative", key)
	}
	return v, nil
}

func envDuration(key, fallback string) (time.Duration, error) {
	v, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}
	return v, nil
}
