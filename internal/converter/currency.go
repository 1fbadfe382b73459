package converter

import (
	"errors"
	"strings"
)

type Currency string

const (
	DAU Currency = "DAU"
	USD Currency = "USD"
)

var ErrUnknownCurrency = errors.New("unknown currency")

// ParseCurrency accepts "dau"/"usd" in any case.
func ParseCurrency(s string) (Currency, error) {
	switch Currency(strings.ToUpper(strings.TrimSpace(s))) {
	case DAU:
		return DAU, nil
	case USD:
		return USD, nil
	}
	return "", ErrUnknownCurrency
}

func (c Currency) Valid() bool {
	return c == DAU || c == USD
}

// Other returns the currency shown next to c on the screen.
func (c Currency) Other() Currency {
	if c == DAU {
		return USD
	}
	return DAU
}

// Places is the number of fractional digits kept for c.
func (c Currency) Places() int32 {
	if c == USD {
		return USDPlaces
	}
	return DAUPlaces
}

func (c Currency) String() string {
	return string(c)
}
