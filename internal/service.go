package internal

import (
	"gitlab.com/avolkov/dau_transfer/config"
	"gitlab.com/avolkov/dau_transfer/internal/telegram_bot"
	"gitlab.com/avolkov/dau_transfer/pkg/log"
	"gitlab.com/avolkov/dau_transfer/store"
)

type Services struct {
	TelegramBot *telegram_bot.Service
	Store       *store.Store
}

func New(cfg *config.Config) (*Services, error) {
	db, err := store.New(cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		return nil, err
	}
	log.Info("internal: db connection established")

	tg, err := telegram_bot.New(cfg, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	log.Info("internal: telegram bot is running")

	return &Services{
		TelegramBot: tg,
		Store:       db,
	}, nil
}

func (s *Services) Close() {
	if err := s.Store.Close(); err != nil {
		log.Error("close store:", err)
	}
}
