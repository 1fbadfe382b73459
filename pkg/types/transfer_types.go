package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferRecord is a completed transfer as kept in history.
type TransferRecord struct {
	ID              int64
	SendCurrency    string
	ReceiveCurrency string
	FeeTier         string
	Amount          decimal.Decimal
	TotalFee        decimal.Decimal
	ReceiveAmount   decimal.Decimal
	CreatedAt       time.Time
}

const HistoryLimit = 5
