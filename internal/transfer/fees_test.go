package transfer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/avolkov/dau_transfer/internal/converter"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func amt(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(d(s))
}

func TestComputeReceiveAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  decimal.NullDecimal
		tier    FeeTier
		send    converter.Currency
		receive converter.Currency
		want    string
		wantErr error
	}{
		{
			name:    "usd receive converts transfer fee with dau rate",
			amount:  amt("100"),
			tier:    Standard,
			send:    converter.DAU,
			receive: converter.USD,
			want:    "-277.53",
		},
		{
			name:    "usd receive fast",
			amount:  amt("1000"),
			tier:    Fast,
			send:    converter.USD,
			receive: converter.USD,
			want:    "615.93",
		},
		{
			name:    "dau receive standard",
			amount:  amt("7"),
			tier:    Standard,
			send:    converter.DAU,
			receive: converter.DAU,
			want:    "6.994949702448514236",
		},
		{
			name:    "dau receive fast",
			amount:  amt("7"),
			tier:    Fast,
			send:    converter.DAU,
			receive: converter.DAU,
			want:    "6.994862216813749104",
		},
		{
			name:    "fees larger than amount are not clamped",
			amount:  amt("0.005"),
			tier:    Standard,
			send:    converter.DAU,
			receive: converter.DAU,
			want:    "-0.000050297551485764",
		},
		{
			name:    "unset amount",
			amount:  decimal.NullDecimal{},
			tier:    Standard,
			send:    converter.DAU,
			receive: converter.DAU,
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "zero amount",
			amount:  amt("0"),
			tier:    Standard,
			send:    converter.DAU,
			receive: converter.DAU,
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			amount:  amt("-5"),
			tier:    Fast,
			send:    converter.DAU,
			receive: converter.USD,
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "usd amount with three places",
			amount:  amt("1000.001"),
			tier:    Standard,
			send:    converter.USD,
			receive: converter.DAU,
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "usd trailing zeros are fine",
			amount:  amt("1000.000"),
			tier:    Fast,
			send:    converter.USD,
			receive: converter.USD,
			want:    "615.93",
		},
		{
			name:    "unknown tier",
			amount:  amt("5"),
			tier:    "instant",
			send:    converter.DAU,
			receive: converter.USD,
			wantErr: ErrUnknownFeeTier,
		},
		{
			name:    "unknown currency",
			amount:  amt("5"),
			tier:    Fast,
			send:    converter.DAU,
			receive: "EUR",
			wantErr: converter.ErrUnknownCurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeReceiveAmount(tt.amount, tt.tier, tt.send, tt.receive)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, d(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestQuoteBreakdown(t *testing.T) {
	q, err := DefaultFeeSchedule().Quote(amt("100"), Standard, converter.DAU, converter.USD)
	require.NoError(t, err)

	assert.Equal(t, "373.77", q.TransferFee.String())
	assert.Equal(t, "3.76", q.NetworkFee.String())
	assert.Equal(t, "377.53", q.TotalFee.String())
	assert.True(t, q.Amount.Sub(q.TotalFee).Equal(q.Receive))
}

func TestCustomFeeSchedule(t *testing.T) {
	fees := FeeSchedule{
		Standard: d("1"),
		Fast:     d("2"),
		Transfer: decimal.Zero,
	}

	got, err := fees.ComputeReceiveAmount(amt("10"), Fast, converter.USD, converter.USD)
	require.NoError(t, err)
	assert.Equal(t, "8", got.String())
}

func TestParseFeeTier(t *testing.T) {
	tier, err := ParseFeeTier(" Fast ")
	require.NoError(t, err)
	assert.Equal(t, Fast, tier)

	_, err = ParseFeeTier("slow")
	assert.ErrorIs(t, err, ErrUnknownFeeTier)
}
