package telegram_bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"gitlab.com/avolkov/dau_transfer/pkg/log"
)

const (
	btnSendTokens = "Send tokens"
	btnBalance    = "Balance"
	btnHistory    = "History"
	btnHelp       = "Help"
)

func (s *Service) handleUpdate(ctx context.Context, update tgbotapi.Update) error {
	switch {
	case update.CallbackQuery != nil:
		// stop the button spinner
		_, _ = s.bot.Request(tgbotapi.NewCallback(update.CallbackQuery.ID, ""))
		return s.handleCallback(ctx, update.CallbackQuery)

	case update.Message != nil && update.Message.IsCommand():
		return s.handleCommand(ctx, update.Message)

	case update.Message != nil:
		return s.handleMessage(ctx, update.Message)
	}

	return nil
}

func (s *Service) handleCommand(ctx context.Context, msg *tgbotapi.Message) error {
	switch msg.Command() {
	case "start":
		return s.handleStart(ctx, msg)
	case "help":
		return s.showServiceInfo(msg.Chat.ID, msg.From.ID)
	case "balance":
		return s.showBalance(msg.Chat.ID, msg.From.ID)
	case "reset":
		s.sessions.clearSession(msg.From.ID)
		log.Infof("tg_user_id: %d, session reset", msg.From.ID)
		return s.showMainMenu(msg.Chat.ID, msg.From.ID)
	}
	return nil
}

func (s *Service) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	if cb.Message == nil {
		return nil
	}

	tgUserID := cb.From.ID
	chatID := cb.Message.Chat.ID

	r, _ := s.sessions.getOrCreateSession(tgUserID)
	log.Infof("tg_user_id: %d, selected callback: %s", tgUserID, cb.Data)

	switch {
	case cb.Data == "gf_send_tokens":
		return s.askSendCurrency(chatID, tgUserID, r.BotMessageID)

	case strings.HasPrefix(cb.Data, cbSendCurrency):
		return s.chooseSendCurrency(chatID, tgUserID, r.BotMessageID, cb.Data)

	case strings.HasPrefix(cb.Data, cbReceiveCurrency):
		return s.chooseReceiveCurrency(chatID, tgUserID, r.BotMessageID, cb.Data)

	case strings.HasPrefix(cb.Data, cbFeeTier):
		return s.chooseFeeTier(chatID, tgUserID, r.BotMessageID, cb.Data)

	case cb.Data == "transfer_change_fee":
		return s.askFeeTier(chatID, tgUserID, r.BotMessageID)

	case cb.Data == "transfer_confirm":
		return s.transferConfirmed(ctx, chatID, cb.From, r.BotMessageID)

	case cb.Data == "cancel_action":
		s.sessions.resetPending(tgUserID)
		_, _ = s.bot.Request(tgbotapi.NewDeleteMessage(chatID, r.BotMessageID))
		return s.showMainMenu(chatID, tgUserID)
	}

	return nil
}

func (s *Service) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.From == nil {
		return nil
	}

	tgUserID := msg.From.ID
	chatID := msg.Chat.ID
	_, _ = s.bot.Request(tgbotapi.NewDeleteMessage(chatID, msg.MessageID))

	p, _ := s.sessions.getOrCreateSession(tgUserID)

	// main menu buttons work from any state
	switch msg.Text {
	case btnSendTokens:
		log.Infof("main menu: %s", msg.Text)
		return s.askSendCurrency(chatID, tgUserID, p.BotMessageID)

	case btnBalance:
		log.Infof("main menu: %s", msg.Text)
		return s.showBalance(chatID, tgUserID)

	case btnHistory:
		log.Infof("main menu: %s", msg.Text)
		return s.showHistory(ctx, chatID, msg.From, p.BotMessageID)

	case btnHelp:
		return s.showServiceInfo(chatID, tgUserID)
	}

	switch p.State {
	case stateWaitingTransferAmount:
		return s.transferConfirmation(chatID, tgUserID, p.BotMessageID, msg.Text)
	}

	return nil
}
