package transfer

import (
	"strings"

	"github.com/shopspring/decimal"
	"gitlab.com/avolkov/dau_transfer/internal/converter"
)

type FeeTier string

const (
	Standard FeeTier = "standard"
	Fast     FeeTier = "fast"
)

func ParseFeeTier(s string) (FeeTier, error) {
	switch FeeTier(strings.ToLower(strings.TrimSpace(s))) {
	case Standard:
		return Standard, nil
	case Fast:
		return Fast, nil
	}
	return "", ErrUnknownFeeTier
}

func (t FeeTier) Valid() bool {
	return t == Standard || t == Fast
}

// FeeSchedule holds fee amounts in USD terms.
type FeeSchedule struct {
	Standard decimal.Decimal
	Fast     decimal.Decimal
	Transfer decimal.Decimal
}

func DefaultFeeSchedule() FeeSchedule {
	return FeeSchedule{
		Standard: decimal.RequireFromString("3.76"),
		Fast:     decimal.RequireFromString("10.3"),
		Transfer: decimal.RequireFromString("0.005"),
	}
}

// Quote is the fee breakdown of one transfer, in the receive currency.
type Quote struct {
	Amount      decimal.Decimal
	NetworkFee  decimal.Decimal
	TransferFee decimal.Decimal
	TotalFee    decimal.Decimal
	Receive     decimal.Decimal
}

// ComputeReceiveAmount uses DefaultFeeSchedule.
func ComputeReceiveAmount(amount decimal.NullDecimal, tier FeeTier, send, receive converter.Currency) (decimal.Decimal, error) {
	return DefaultFeeSchedule().ComputeReceiveAmount(amount, tier, send, receive)
}

func (f FeeSchedule) ComputeReceiveAmount(amount decimal.NullDecimal, tier FeeTier, send, receive converter.Currency) (decimal.Decimal, error) {
	q, err := f.Quote(amount, tier, send, receive)
	if err != nil {
		return decimal.Zero, err
	}
	return q.Receive, nil
}

// Quote subtracts the fees from amount. A non-positive Receive is returned
// as is; Settle is the one that rejects it. The amount may not carry more
// decimal places than the send currency keeps.
//
// Receiving DAU converts the tier fees to DAU and keeps the transfer fee
// unconverted. Receiving USD converts the transfer fee with the DAU rate.
func (f FeeSchedule) Quote(amount decimal.NullDecimal, tier FeeTier, send, receive converter.Currency) (Quote, error) {
	if !converter.IsValidAmount(amount) {
		return Quote{}, ErrInvalidAmount
	}
	if !tier.Valid() {
		return Quote{}, ErrUnknownFeeTier
	}
	if !send.Valid() || !receive.Valid() {
		return Quote{}, converter.ErrUnknownCurrency
	}
	if !send.FitsPlaces(amount.Decimal) {
		return Quote{}, ErrInvalidAmount
	}

	standard, fast, transferFee := f.Standard, f.Fast, f.Transfer

	switch receive {
	case converter.DAU:
		standard = converter.UsdToDau(standard)
		fast = converter.UsdToDau(fast)
	case converter.USD:
		transferFee = converter.DauToUsd(transferFee)
	}

	network := standard
	if tier == Fast {
		network = fast
	}
	total := transferFee.Add(network)

	return Quote{
		Amount:      amount.Decimal,
		NetworkFee:  network,
		TransferFee: transferFee,
		TotalFee:    total,
		Receive:     amount.Decimal.Sub(total),
	}, nil
}
