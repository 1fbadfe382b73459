package converter

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFinite       = errors.New("amount is not a finite number")
	ErrMalformedAmount = errors.New("amount is not a number")
)

// Input bounds. Anything outside them cannot be a balance and would make
// decimal arithmetic allocate without limit.
const (
	maxIntegerDigits = 20
	maxInputScale    = 2 * DAUPlaces
)

var nonFinite = map[string]struct{}{
	"nan":       {},
	"inf":       {},
	"infinity":  {},
	"+inf":      {},
	"+infinity": {},
	"-inf":      {},
	"-infinity": {},
}

// ParseAmount reads user input. Blank input is an unset amount, not an error.
func ParseAmount(raw string) (decimal.NullDecimal, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return decimal.NullDecimal{}, nil
	}
	if _, ok := nonFinite[strings.ToLower(text)]; ok {
		return decimal.NullDecimal{}, ErrNotFinite
	}

	d, err := decimal.NewFromString(strings.ReplaceAll(text, ",", "."))
	if err != nil {
		return decimal.NullDecimal{}, ErrMalformedAmount
	}

	// exponent first: FractionDigits and String are only cheap inside the bounds
	if d.Exponent() < -maxInputScale || d.NumDigits()+int(d.Exponent()) > maxIntegerDigits {
		return decimal.NullDecimal{}, ErrMalformedAmount
	}
	if FractionDigits(d) > DAUPlaces {
		return decimal.NullDecimal{}, ErrMalformedAmount
	}
	return decimal.NewNullDecimal(d), nil
}

// FractionDigits counts significant digits after the point, so 1.50 has one.
func FractionDigits(d decimal.Decimal) int32 {
	if d.Exponent() >= 0 {
		return 0
	}
	s := d.String()
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return int32(len(s) - i - 1)
	}
	return 0
}

// FitsPlaces reports whether d needs no more decimal places than c keeps.
func (c Currency) FitsPlaces(d decimal.Decimal) bool {
	return FractionDigits(d) <= c.Places()
}

// IsValidAmount reports whether amount is set and strictly positive.
func IsValidAmount(amount decimal.NullDecimal) bool {
	return amount.Valid && amount.Decimal.IsPositive()
}

func IsValidAmountString(raw string) bool {
	amount, err := ParseAmount(raw)
	if err != nil {
		return false
	}
	return IsValidAmount(amount)
}
