package telegram_bot

import (
	"context"
	"fmt"
	"time"

	"gitlab.com/avolkov/dau_transfer/config"
	"gitlab.com/avolkov/dau_transfer/internal/transfer"
	"gitlab.com/avolkov/dau_transfer/pkg/log"
	"gitlab.com/avolkov/dau_transfer/pkg/types"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// botAPI is the part of *tgbotapi.BotAPI the screen uses.
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type transferStore interface {
	EnsureUser(ctx context.Context, telegramID int64, username string) (int64, bool, error)
	AddTransfer(ctx context.Context, dbUserID int64, tr *types.TransferRecord) error
	GetLastTransfers(ctx context.Context, dbUserID int64, limit uint64) ([]types.TransferRecord, error)
}

type Service struct {
	bot      botAPI
	botName  string
	store    transferStore
	sessions *SessionManager
	cfg      *config.Config
}

func New(cfg *config.Config, db transferStore) (*Service, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}

	return newService(bot, bot.Self.UserName, db, cfg), nil
}

func newService(bot botAPI, botName string, db transferStore, cfg *config.Config) *Service {
	return &Service{
		bot:     bot,
		botName: botName,
		store:   db,
		sessions: NewSessionManager(func() transfer.State {
			return transfer.NewState(cfg.OpeningBalanceDAU, cfg.Fees)
		}),
		cfg: cfg,
	}
}

// Run long-polls Telegram until ctx is cancelled.
func (s *Service) Run(ctx context.Context) error {
	log.Infof("authorized on account %s", s.botName)

	go func() {
		ticker := time.NewTicker(s.cfg.SessionTimeout)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sessions.cleanOldSessions(s.cfg.SessionTimeout)
			}
		}
	}()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := s.bot.GetUpdatesChan(u)

	// listening = long polling
	for {
		select {
		case <-ctx.Done():
			s.bot.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if err := s.handleUpdate(ctx, update); err != nil {
				log.Error("update handling error:", err)
			}
		}
	}
}
