package telegram_bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// chatNotifier shows toasts in one chat.
type chatNotifier struct {
	s      *Service
	chatID int64
}

func (s *Service) notifier(chatID int64) chatNotifier {
	return chatNotifier{s: s, chatID: chatID}
}

func (n chatNotifier) NotifyError(message, category string) error {
	msg := tgbotapi.NewMessage(n.chatID, fmt.Sprintf("❌ *%s*\n%s", category, message))
	msg.ParseMode = "Markdown"
	return n.s.sendToast(msg, n.s.cfg.ToastTTL)
}

func (n chatNotifier) NotifySuccess(message string) error {
	msg := tgbotapi.NewMessage(n.chatID, fmt.Sprintf("✅ *Success*\n%s", message))
	msg.ParseMode = "Markdown"
	return n.s.sendToast(msg, n.s.cfg.ToastTTL)
}
