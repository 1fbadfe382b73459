// Package converter converts amounts between DAU and USD at a fixed rate
// and validates user-entered amounts.
package converter

import (
	"github.com/shopspring/decimal"
)

const (
	DAUPlaces int32 = 18
	USDPlaces int32 = 2

	rateDivisionPrecision int32 = 40
)

var (
	DauToUsdRate = decimal.RequireFromString("74755.13")
	UsdToDauRate = decimal.NewFromInt(1).DivRound(DauToUsdRate, rateDivisionPrecision)
)

// UsdToDau converts at UsdToDauRate, rounding down to 18 places.
func UsdToDau(amount decimal.Decimal) decimal.Decimal {
	return UsdToDauAt(amount, UsdToDauRate)
}

func UsdToDauAt(amount, rate decimal.Decimal) decimal.Decimal {
	if amount.IsZero() {
		return decimal.Zero
	}
	return amount.Mul(rate).RoundDown(DAUPlaces)
}

// DauToUsd converts at DauToUsdRate, rounding down to 2 places.
func DauToUsd(amount decimal.Decimal) decimal.Decimal {
	return DauToUsdAt(amount, DauToUsdRate)
}

func DauToUsdAt(amount, rate decimal.Decimal) decimal.Decimal {
	if amount.IsZero() {
		return decimal.Zero
	}
	return amount.Mul(rate).RoundDown(USDPlaces)
}

// Convert returns amount expressed in `to`. Same currency is a no-op.
func Convert(amount decimal.Decimal, from, to Currency) (decimal.Decimal, error) {
	if !from.Valid() || !to.Valid() {
		return decimal.Zero, ErrUnknownCurrency
	}
	switch {
	case from == to:
		return amount, nil
	case to == DAU:
		return UsdToDau(amount), nil
	default:
		return DauToUsd(amount), nil
	}
}

// Format renders amount with the fixed number of places used for c.
func Format(amount decimal.Decimal, c Currency) string {
	return amount.StringFixed(c.Places())
}
