package transfer

import (
	"github.com/shopspring/decimal"
	"gitlab.com/avolkov/dau_transfer/internal/converter"
)

// Balances are kept consistent: one side is always derived from the other.
type Balances struct {
	DAU decimal.Decimal
	USD decimal.Decimal
}

// NewBalances derives the USD side from dau.
func NewBalances(dau decimal.Decimal) Balances {
	return Balances{
		DAU: dau,
		USD: converter.DauToUsd(dau),
	}
}

func (b Balances) In(c converter.Currency) decimal.Decimal {
	if c == converter.USD {
		return b.USD
	}
	return b.DAU
}

// Settle uses DefaultFeeSchedule.
func Settle(p PendingTransfer, b Balances) (Balances, error) {
	nb, _, err := DefaultFeeSchedule().Settle(p, b)
	return nb, err
}

// Settle validates p against b and returns the balances after the transfer.
// On error b is returned unchanged.
func (f FeeSchedule) Settle(p PendingTransfer, b Balances) (Balances, Quote, error) {
	if !p.Amount.Valid {
		return b, Quote{}, ErrEmptyAmount
	}
	amount := p.Amount.Decimal
	if !amount.IsPositive() {
		return b, Quote{}, ErrNonPositiveAmount
	}
	if !p.Send.Valid() || !p.Receive.Valid() {
		return b, Quote{}, converter.ErrUnknownCurrency
	}
	// keeps both balances on their currency's grid
	if !p.Send.FitsPlaces(amount) {
		return b, Quote{}, ErrInvalidAmount
	}
	if amount.GreaterThan(b.In(p.Send)) {
		return b, Quote{}, ErrInsufficientBalance
	}

	q, err := f.Quote(p.Amount, p.Tier, p.Send, p.Receive)
	if err != nil {
		return b, Quote{}, err
	}
	if !q.Receive.IsPositive() {
		return b, q, ErrInsufficientAfterFees
	}

	var nb Balances
	switch p.Send {
	case converter.DAU:
		nb.DAU = b.DAU.Sub(amount)
		if nb.DAU.IsZero() {
			nb.USD = decimal.Zero
		} else {
			nb.USD = converter.DauToUsd(nb.DAU)
		}
	case converter.USD:
		nb.USD = b.USD.Sub(amount)
		if nb.USD.IsZero() {
			nb.DAU = decimal.Zero
		} else {
			nb.DAU = converter.UsdToDau(nb.USD)
		}
	}

	return nb, q, nil
}
