package telegram_bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"gitlab.com/avolkov/dau_transfer/internal/converter"
	"gitlab.com/avolkov/dau_transfer/internal/transfer"
	"gitlab.com/avolkov/dau_transfer/pkg/log"
	t "gitlab.com/avolkov/dau_transfer/pkg/types"
)

const (
	cbSendCurrency    = "send_currency::"
	cbReceiveCurrency = "receive_currency::"
	cbFeeTier         = "fee_tier::"
)

func currencyKeyboard(prefix string) tgbotapi.InlineKeyboardMarkup {
	actions := []t.Action{
		{TgText: "DAU", CallBackName: prefix + converter.DAU.String()},
		{TgText: "USD", CallBackName: prefix + converter.USD.String()},
	}

	var row []tgbotapi.InlineKeyboardButton
	for _, a := range actions {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(a.TgText, a.CallBackName))
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		row,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Cancel", "cancel_action"),
		),
	)
}

func (s *Service) askSendCurrency(chatID, tgUserID int64, BotMsgID int) error {
	_, _ = s.bot.Request(tgbotapi.NewDeleteMessage(chatID, BotMsgID))

	st := s.sessions.getTransfer(tgUserID)

	msg := tgbotapi.NewMessage(chatID, balanceText(st.Balances)+"\n\nWhich currency do you want to *send*?")
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = currencyKeyboard(cbSendCurrency)

	s.sessions.setState(tgUserID, stateChoosingSendCurrency)
	return s.sendTemporaryMessage(msg, tgUserID, s.cfg.ToastTTL)
}

func (s *Service) chooseSendCurrency(chatID, tgUserID int64, BotMsgID int, cbData string) error {
	c, err := converter.ParseCurrency(strings.TrimPrefix(cbData, cbSendCurrency))
	if err != nil {
		return transfer.Report(s.notifier(chatID), err)
	}

	st, err := s.sessions.getTransfer(tgUserID).WithSendCurrency(c)
	if err != nil {
		return transfer.Report(s.notifier(chatID), err)
	}
	s.sessions.setTransfer(tgUserID, st)

	return s.askReceiveCurrency(chatID, tgUserID, BotMsgID)
}

func (s *Service) askReceiveCurrency(chatID, tgUserID int64, BotMsgID int) error {
	_, _ = s.bot.Request(tgbotapi.NewDeleteMessage(chatID, BotMsgID))

	st := s.sessions.getTransfer(tgUserID)

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf(
		"Sending *%s*. Which currency should the receiver *get*?", st.Pending.Send))
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = currencyKeyboard(cbReceiveCurrency)

	s.sessions.setState(tgUserID, stateChoosingReceiveCurrency)
	return s.sendTemporaryMessage(msg, tgUserID, s.cfg.ToastTTL)
}

func (s *Service) chooseReceiveCurrency(chatID, tgUserID int64, BotMsgID int, cbData string) error {
	c, err := converter.ParseCurrency(strings.TrimPrefix(cbData, cbReceiveCurrency))
	if err != nil {
		return transfer.Report(s.notifier(chatID), err)
	}

	st, err := s.sessions.getTransfer(tgUserID).WithReceiveCurrency(c)
	if err != nil {
		return transfer.Report(s.notifier(chatID), err)
	}
	s.sessions.setTransfer(tgUserID, st)

	return s.askFeeTier(chatID, tgUserID, BotMsgID)
}

// askFeeTier is the network fee popup.
func (s *Service) askFeeTier(chatID, tgUserID int64, BotMsgID int) error {
	_, _ = s.bot.Request(tgbotapi.NewDeleteMessage(chatID, BotMsgID))

	st := s.sessions.getTransfer(tgUserID)

	actions := []t.Action{
		{TgText: fmt.Sprintf("Standard · %s USD", st.Fees.Standard), CallBackName: cbFeeTier + string(transfer.Standard)},
		{TgText: fmt.Sprintf("Fast · %s USD", st.Fees.Fast), CallBackName: cbFeeTier + string(transfer.Fast)},
		{TgText: "Cancel", CallBackName: "cancel_action"},
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, a := range actions {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(a.TgText, a.CallBackName),
		))
	}

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf(
		"Choose a network fee (now: *%s*). A transfer fee of %s is added on top.",
		st.Pending.Tier, st.Fees.Transfer))
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)

	s.sessions.setState(tgUserID, stateChoosingFeeTier)
	return s.sendTemporaryMessage(msg, tgUserID, s.cfg.ToastTTL)
}

func (s *Service) chooseFeeTier(chatID, tgUserID int64, BotMsgID int, cbData string) error {
	tier, err := transfer.ParseFeeTier(strings.TrimPrefix(cbData, cbFeeTier))
	if err != nil {
		return transfer.Report(s.notifier(chatID), err)
	}

	st, err := s.sessions.getTransfer(tgUserID).WithFeeTier(tier)
	if err != nil {
		return transfer.Report(s.notifier(chatID), err)
	}
	s.sessions.setTransfer(tgUserID, st)

	// came back from the confirmation to change the fee
	if st.Pending.Amount.Valid {
		st, err = st.Quote()
		if err != nil {
			return transfer.Report(s.notifier(chatID), err)
		}
		s.sessions.setTransfer(tgUserID, st)
		return s.showConfirmation(chatID, tgUserID, BotMsgID, st)
	}

	return s.askTransferAmount(chatID, tgUserID, BotMsgID)
}

func (s *Service) askTransferAmount(chatID, tgUserID int64, BotMsgID int) error {
	_, _ = s.bot.Request(tgbotapi.NewDeleteMessage(chatID, BotMsgID))

	st := s.sessions.getTransfer(tgUserID)
	send := st.Pending.Send

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf(
		"Enter the amount in *%s* (you have %s %s).",
		send, converter.Format(st.Balances.In(send), send), send))
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Cancel", "cancel_action"),
		),
	)

	s.sessions.setState(tgUserID, stateWaitingTransferAmount)
	return s.sendTemporaryMessage(msg, tgUserID, s.cfg.ToastTTL)
}

func (s *Service) transferConfirmation(chatID, tgUserID int64, BotMsgID int, msgText string) error {
	amount, err := converter.ParseAmount(msgText)
	if err != nil {
		return transfer.Report(s.notifier(chatID), err)
	}

	st, err := s.sessions.getTransfer(tgUserID).WithAmount(amount).Quote()
	s.sessions.setTransfer(tgUserID, st)
	if err != nil {
		log.Infof("tg_user_id: %d, amount %q rejected: %s", tgUserID, msgText, err)
		return transfer.Report(s.notifier(chatID), err)
	}

	return s.showConfirmation(chatID, tgUserID, BotMsgID, st)
}

func (s *Service) showConfirmation(chatID, tgUserID int64, BotMsgID int, st transfer.State) error {
	_, _ = s.bot.Request(tgbotapi.NewDeleteMessage(chatID, BotMsgID))

	p := st.Pending
	q := p.Quote
	tpl := t.ConfirmationTemplates["send_tokens"]

	text := fmt.Sprintf(tpl.MessageText,
		q.Amount, p.Send,
		q.NetworkFee, p.Receive, p.Tier,
		q.TransferFee, p.Receive,
		q.TotalFee, p.Receive,
		q.Receive, p.Receive,
	)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(tpl.ConfirmText, tpl.ConfirmCallback),
			tgbotapi.NewInlineKeyboardButtonData("Change fee", "transfer_change_fee"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(tpl.CancelText, tpl.CancelCallback),
		),
	)

	s.sessions.setState(tgUserID, tpl.NextState)
	return s.sendTemporaryMessage(msg, tgUserID, s.cfg.ToastTTL)
}

func (s *Service) transferConfirmed(ctx context.Context, chatID int64, from *tgbotapi.User, BotMsgID int) error {
	_, _ = s.bot.Request(tgbotapi.NewDeleteMessage(chatID, BotMsgID))

	tgUserID := from.ID
	st := s.sessions.getTransfer(tgUserID)
	p := st.Pending

	next, q, err := st.Commit()
	if err != nil {
		log.Infof("tg_user_id: %d, transfer rejected: %s", tgUserID, err)
		if reportErr := transfer.Report(s.notifier(chatID), err); reportErr != nil {
			return reportErr
		}
		return s.askTransferAmount(chatID, tgUserID, 0)
	}
	s.sessions.setTransfer(tgUserID, next)

	log.Infof("tg_user_id: %d, sent %s %s, receiver gets %s %s",
		tgUserID, q.Amount, p.Send, q.Receive, p.Receive)

	if err := s.recordTransfer(ctx, from, p, q); err != nil {
		// the session already holds the new balances, history is best effort
		log.Errorf("tg_user_id: %d, could not record transfer: %s", tgUserID, err)
	}

	if err := transfer.Report(s.notifier(chatID), nil); err != nil {
		return err
	}
	return s.showMainMenu(chatID, tgUserID)
}

func (s *Service) recordTransfer(ctx context.Context, from *tgbotapi.User, p transfer.PendingTransfer, q transfer.Quote) error {
	dbUserID, err := s.userID(ctx, from)
	if err != nil {
		return err
	}

	err = s.store.AddTransfer(ctx, dbUserID, &t.TransferRecord{
		SendCurrency:    p.Send.String(),
		ReceiveCurrency: p.Receive.String(),
		FeeTier:         string(p.Tier),
		Amount:          q.Amount,
		TotalFee:        q.TotalFee,
		ReceiveAmount:   q.Receive,
	})
	return errors.Wrap(err, "failed to add transfer")
}
