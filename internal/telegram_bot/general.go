package telegram_bot

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"gitlab.com/avolkov/dau_transfer/internal/converter"
	"gitlab.com/avolkov/dau_transfer/internal/transfer"
	t "gitlab.com/avolkov/dau_transfer/pkg/types"
)

func (s *Service) handleStart(ctx context.Context, msg *tgbotapi.Message) error {
	tgUserID := msg.From.ID

	dbUserID, created, err := s.store.EnsureUser(ctx, tgUserID, msg.From.UserName)
	if err != nil {
		sendErr := s.sendTemporaryMessage(
			tgbotapi.NewMessage(msg.Chat.ID,
				"Failed to create user. Please try again later."),
			tgUserID,
			s.cfg.ToastTTL)

		if sendErr != nil {
			return fmt.Errorf("failed to notify user about user creation error (%v): %w", err, sendErr)
		}
		return fmt.Errorf("failed to create user in DB: %w", err)
	}
	s.sessions.setDBUserID(tgUserID, dbUserID)

	if created {
		return s.showWelcome(msg.Chat.ID, tgUserID)
	}
	return s.showMainMenu(msg.Chat.ID, tgUserID)
}

// userID returns the users.id of the sender, registering them if /start was skipped.
func (s *Service) userID(ctx context.Context, from *tgbotapi.User) (int64, error) {
	if r, ok := s.sessions.getSessionVars(from.ID); ok && r.DBUserID != 0 {
		return r.DBUserID, nil
	}

	dbUserID, _, err := s.store.EnsureUser(ctx, from.ID, from.UserName)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get user from DB")
	}
	s.sessions.setDBUserID(from.ID, dbUserID)
	return dbUserID, nil
}

func (s *Service) showWelcome(chatID, tgUserID int64) error {
	st := s.sessions.getTransfer(tgUserID)
	s.sessions.setState(tgUserID, stateMainMenu)

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf(
		"Welcome! You have *%s DAU* to play with. Let's send some.", st.Balances.DAU))
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = mainMenuKeyboard()

	return s.sendTemporaryMessage(msg, tgUserID, s.cfg.ToastTTL)
}

func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnSendTokens),
			tgbotapi.NewKeyboardButton(btnBalance),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnHistory),
			tgbotapi.NewKeyboardButton(btnHelp),
		),
	)
}

func (s *Service) showMainMenu(chatID, tgUserID int64) error {
	s.sessions.setState(tgUserID, stateMainMenu)

	mainMenu := tgbotapi.NewMessage(chatID, "What would you like to do next?")
	mainMenu.ReplyMarkup = mainMenuKeyboard()

	return s.sendTemporaryMessage(mainMenu, tgUserID, s.cfg.ToastTTL)
}

func (s *Service) showBalance(chatID, tgUserID int64) error {
	st := s.sessions.getTransfer(tgUserID)

	msg := tgbotapi.NewMessage(chatID, balanceText(st.Balances))
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Send tokens", "gf_send_tokens"),
		),
	)

	return s.sendTemporaryMessage(msg, tgUserID, s.cfg.ToastTTL)
}

func balanceText(b transfer.Balances) string {
	return fmt.Sprintf(
		"*Your balance:*\n```\n%s DAU\n%s USD\n```",
		converter.Format(b.DAU, converter.DAU),
		converter.Format(b.USD, converter.USD),
	)
}

func (s *Service) showServiceInfo(chatID, tgUserID int64) error {
	msg := tgbotapi.NewMessage(chatID, t.ServiceDescription)
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 Back", "cancel_action"),
		),
	)

	return s.sendTemporaryMessage(msg, tgUserID, 10*s.cfg.ToastTTL)
}

func (s *Service) sendTemporaryMessage(msg tgbotapi.Chattable, tgUserID int64, delay time.Duration) error {
	sentMsg, err := s.bot.Send(msg)
	if err != nil {
		return fmt.Errorf("failed to send temporary message: %w", err)
	}

	s.sessions.setBotMessageID(tgUserID, sentMsg.MessageID)
	s.deleteLater(sentMsg, delay)

	return nil
}

// sendToast is sendTemporaryMessage that leaves the screen message id alone.
func (s *Service) sendToast(msg tgbotapi.Chattable, delay time.Duration) error {
	sentMsg, err := s.bot.Send(msg)
	if err != nil {
		return fmt.Errorf("failed to send toast: %w", err)
	}

	s.deleteLater(sentMsg, delay)
	return nil
}

func (s *Service) deleteLater(sentMsg tgbotapi.Message, delay time.Duration) {
	if sentMsg.Chat == nil {
		return
	}

	go func() {
		time.Sleep(delay)
		deleteMsg := tgbotapi.NewDeleteMessage(sentMsg.Chat.ID, sentMsg.MessageID)
		_, _ = s.bot.Request(deleteMsg)
	}()
}
