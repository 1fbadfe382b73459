package transfer

import (
	"github.com/shopspring/decimal"
	"gitlab.com/avolkov/dau_transfer/internal/converter"
)

// PendingTransfer is what the user has chosen so far. Quote is set once the
// amount has been checked against the fee schedule.
type PendingTransfer struct {
	Amount  decimal.NullDecimal
	Send    converter.Currency
	Receive converter.Currency
	Tier    FeeTier
	Quote   *Quote
}

// State is one user's screen. Methods return a new State and never modify
// the receiver.
type State struct {
	Balances Balances
	Pending  PendingTransfer
	Fees     FeeSchedule
}

func NewState(openingDAU decimal.Decimal, fees FeeSchedule) State {
	return State{
		Balances: NewBalances(openingDAU),
		Pending:  newPending(converter.DAU, converter.DAU, Standard),
		Fees:     fees,
	}
}

func newPending(send, receive converter.Currency, tier FeeTier) PendingTransfer {
	return PendingTransfer{
		Send:    send,
		Receive: receive,
		Tier:    tier,
	}
}

// WithSendCurrency drops the entered amount, it was typed in the old currency.
func (s State) WithSendCurrency(c converter.Currency) (State, error) {
	if !c.Valid() {
		return s, converter.ErrUnknownCurrency
	}
	s.Pending = newPending(c, s.Pending.Receive, s.Pending.Tier)
	return s, nil
}

func (s State) WithReceiveCurrency(c converter.Currency) (State, error) {
	if !c.Valid() {
		return s, converter.ErrUnknownCurrency
	}
	s.Pending.Receive = c
	s.Pending.Quote = nil
	return s, nil
}

func (s State) WithFeeTier(t FeeTier) (State, error) {
	if !t.Valid() {
		return s, ErrUnknownFeeTier
	}
	s.Pending.Tier = t
	s.Pending.Quote = nil
	return s, nil
}

func (s State) WithAmount(a decimal.NullDecimal) State {
	s.Pending.Amount = a
	s.Pending.Quote = nil
	return s
}

// Quote computes the fee-adjusted receive amount for the pending transfer.
func (s State) Quote() (State, error) {
	q, err := s.Fees.Quote(s.Pending.Amount, s.Pending.Tier, s.Pending.Send, s.Pending.Receive)
	if err != nil {
		return s, err
	}
	s.Pending.Quote = &q
	return s, nil
}

// Commit settles the pending transfer. On success the pending transfer is
// reset and the selected currencies and tier are kept.
func (s State) Commit() (State, Quote, error) {
	nb, q, err := s.Fees.Settle(s.Pending, s.Balances)
	if err != nil {
		return s, Quote{}, err
	}
	s.Balances = nb
	s.Pending = newPending(s.Pending.Send, s.Pending.Receive, s.Pending.Tier)
	return s, q, nil
}

// Reset discards the pending transfer and keeps the balances.
func (s State) Reset() State {
	s.Pending = newPending(s.Pending.Send, s.Pending.Receive, s.Pending.Tier)
	return s
}
