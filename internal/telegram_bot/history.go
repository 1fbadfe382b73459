package telegram_bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"gitlab.com/avolkov/dau_transfer/internal/transfer"
	t "gitlab.com/avolkov/dau_transfer/pkg/types"
)

func (s *Service) showHistory(ctx context.Context, chatID int64, from *tgbotapi.User, BotMsgID int) error {
	_, _ = s.bot.Request(tgbotapi.NewDeleteMessage(chatID, BotMsgID))

	tgUserID := from.ID
	dbUserID, err := s.userID(ctx, from)
	if err != nil {
		return err
	}

	transfers, err := s.store.GetLastTransfers(ctx, dbUserID, t.HistoryLimit)
	if err != nil {
		return errors.Wrap(err, "failed to get last transfers")
	}

	if len(transfers) == 0 {
		msg := tgbotapi.NewMessage(chatID, "You have not sent anything yet.")
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("Send tokens", "gf_send_tokens"),
			),
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("Back to main menu", "cancel_action"),
			),
		)
		return s.sendTemporaryMessage(msg, tgUserID, s.cfg.ToastTTL)
	}

	msg := tgbotapi.NewMessage(chatID, historyText(transfers))
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Back", "cancel_action"),
		),
	)

	return s.sendTemporaryMessage(msg, tgUserID, s.cfg.ToastTTL)
}

func historyText(transfers []t.TransferRecord) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("*Last %d transfers:*\n```\n", len(transfers)))
	for _, tr := range transfers {
		tierEmoji := "🐢"
		if tr.FeeTier == string(transfer.Fast) {
			tierEmoji = "⚡"
		}
		b.WriteString(fmt.Sprintf("%s %s | %s %s -> %s %s\n",
			tr.CreatedAt.Format("2006-01-02 15:04"),
			tierEmoji,
			tr.Amount, tr.SendCurrency,
			tr.ReceiveAmount, tr.ReceiveCurrency,
		))
	}
	b.WriteString("```")
	return b.String()
}
