package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("OPENING_BALANCE_DAU", "")
	t.Setenv("FEE_STANDARD_USD", "")
	t.Setenv("FEE_FAST_USD", "")
	t.Setenv("FEE_TRANSFER", "")
	t.Setenv("TOAST_TTL", "")
	t.Setenv("SESSION_TIMEOUT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := parse()
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.TelegramBotToken)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "7", cfg.OpeningBalanceDAU.String())
	assert.Equal(t, "3.76", cfg.Fees.Standard.String())
	assert.Equal(t, "10.3", cfg.Fees.Fast.String())
	assert.Equal(t, "0.005", cfg.Fees.Transfer.String())
	assert.Equal(t, 20*time.Second, cfg.ToastTTL)
	assert.Equal(t, 5*time.Minute, cfg.SessionTimeout)
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("OPENING_BALANCE_DAU", "12.5")
	t.Setenv("FEE_FAST_USD", "11")
	t.Setenv("TOAST_TTL", "1s")

	cfg, err := parse()
	require.NoError(t, err)

	assert.Equal(t, "db", cfg.DBHost)
	assert.Equal(t, "secret", cfg.DBPassword)
	assert.Equal(t, "12.5", cfg.OpeningBalanceDAU.String())
	assert.Equal(t, "11", cfg.Fees.Fast.String())
	assert.Equal(t, time.Second, cfg.ToastTTL)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing token", map[string]string{"TELEGRAM_BOT_TOKEN": ""}},
		{"bad balance", map[string]string{"OPENING_BALANCE_DAU": "seven"}},
		{"negative balance", map[string]string{"OPENING_BALANCE_DAU": "-1"}},
		{"bad fee", map[string]string{"FEE_STANDARD_USD": "NaN"}},
		{"negative standard fee", map[string]string{"FEE_STANDARD_USD": "-3.76"}},
		{"negative fast fee", map[string]string{"FEE_FAST_USD": "-0.01"}},
		{"negative transfer fee", map[string]string{"FEE_TRANSFER": "-0.005"}},
		{"bad ttl", map[string]string{"TOAST_TTL": "soon"}},
		{"zero timeout", map[string]string{"SESSION_TIMEOUT": "0s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TELEGRAM_BOT_TOKEN", "token")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := parse()
			assert.Error(t, err)
		})
	}
}

func TestParseZeroFees(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("FEE_STANDARD_USD", "0")
	t.Setenv("FEE_TRANSFER", "0")

	cfg, err := parse()
	require.NoError(t, err)
	assert.True(t, cfg.Fees.Standard.IsZero())
	assert.True(t, cfg.Fees.Transfer.IsZero())
}
